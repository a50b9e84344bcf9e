// This file is part of cmgui.
//
// cmgui is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cmgui is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cmgui.  If not, see <https://www.gnu.org/licenses/>.

package command

import (
	"strings"
	"time"
)

// maximum time between calls to Complete() for the next option to be
// returned rather than a new completion being started.
const cycleDuration = 500 * time.Millisecond

// TabCompletion completes the last word of a partial command line using the
// keywords of a command tree.
type TabCompletion struct {
	root *Node

	options    []string
	lastOption int

	// the input with the word being completed removed
	prefix string

	// the last string returned by Complete(). used to decide whether to cycle
	// through the options or to begin a new completion
	lastCompletion string

	lastCompletionTime time.Time
}

// NewTabCompletion is the preferred method of initialisation for
// TabCompletion.
func NewTabCompletion(root *Node) *TabCompletion {
	return &TabCompletion{
		root:    root,
		options: make([]string, 0, len(root.Children)),
	}
}

// Complete transforms the input such that the last word in the input is
// expanded to the closest match in the command tree. Repeated calls cycle
// through the options if there is more than one.
func (tc *TabCompletion) Complete(input string) string {
	// a completion with only one option starts a new completion for the
	// next word
	if input == tc.lastCompletion && time.Since(tc.lastCompletionTime) < cycleDuration && len(tc.options) > 1 {
		tc.lastOption++
		if tc.lastOption >= len(tc.options) {
			tc.lastOption = 0
		}
		return tc.complete()
	}

	tc.Reset()

	words, err := tokeniseInput(input)
	if err != nil {
		return input
	}

	// a trailing space means a new word is being started
	partial := ""
	if len(words) > 0 && !strings.HasSuffix(input, " ") {
		partial = words[len(words)-1]
		words = words[:len(words)-1]
	}
	if !strings.HasSuffix(input, partial) {
		return input
	}

	n := tc.root
	for _, w := range words {
		if n.IsLeaf() {
			break
		}
		if n = n.Child(w); n == nil {
			return input
		}
	}

	var candidates []string
	if n.IsLeaf() {
		if n.Options == nil {
			return input
		}
		candidates = n.Options()
	} else {
		candidates = n.Keywords()
	}

	for _, c := range candidates {
		if strings.HasPrefix(c, partial) {
			tc.options = append(tc.options, c)
		}
	}

	if len(tc.options) == 0 {
		return input
	}

	tc.prefix = strings.TrimSuffix(input, partial)
	return tc.complete()
}

func (tc *TabCompletion) complete() string {
	tc.lastCompletion = tc.prefix + Quote(tc.options[tc.lastOption]) + " "
	tc.lastCompletionTime = time.Now()
	return tc.lastCompletion
}

// Reset is used to clear an implied completion session.
func (tc *TabCompletion) Reset() {
	tc.options = tc.options[:0]
	tc.lastOption = 0
	tc.prefix = ""
	tc.lastCompletion = ""
}
