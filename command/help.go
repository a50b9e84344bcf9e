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
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// HelpLevel indicates how much help has been requested.
type HelpLevel int

// List of valid HelpLevel values.
const (
	HelpNone HelpLevel = iota
	HelpOneLevel
	HelpRecursive
)

// The tokens that request help.
const (
	HelpToken          = "?"
	HelpRecursiveToken = "??"
)

// HelpLevelOf returns the help level requested by the token. Returns HelpNone
// if the token is not a help token.
func HelpLevelOf(tok string) HelpLevel {
	switch tok {
	case HelpToken:
		return HelpOneLevel
	case HelpRecursiveToken:
		return HelpRecursive
	}
	return HelpNone
}

// Help is returned by the parsing functions when a help token is
// encountered. It is not an error condition and should be displayed to the
// user rather than reported as a failure.
type Help struct {
	Level HelpLevel

	// the command path at which help was requested. may be empty
	Path string

	// formatted usage text
	Usage string
}

func (h *Help) Error() string {
	if h.Path == "" {
		return "help requested"
	}
	return fmt.Sprintf("help requested for %s", h.Path)
}

// Prompt is returned by Dispatch() when the input names a command router
// without naming a command beneath it. The caller should enter an
// interactive prompt for the path.
type Prompt struct {
	Path []string
}

func (p *Prompt) Error() string {
	return fmt.Sprintf("prompt requested for %s", strings.Join(p.Path, " "))
}

// Status classifies the result of a command.
type Status int

// List of valid Status values.
const (
	StatusOK Status = iota
	StatusError
	StatusHelp
	StatusPrompt
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusError:
		return "error"
	case StatusHelp:
		return "help"
	case StatusPrompt:
		return "prompt"
	}
	return "unknown"
}

// StatusOf returns the Status for the error returned by Dispatch() or by any
// of the Table parsing functions.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}

	var h *Help
	if errors.As(err, &h) {
		return StatusHelp
	}

	var p *Prompt
	if errors.As(err, &p) {
		return StatusPrompt
	}

	return StatusError
}

// Code returns the traditional integer result for a command. One for
// success, which includes help and prompt requests, and zero for failure.
func Code(err error) int {
	if StatusOf(err) == StatusError {
		return 0
	}
	return 1
}

// help text for router nodes is built on demand and kept for a while.
// leaf usage is never cached because it may change between invocations.
const (
	helpExpiration = 30 * time.Minute
	helpCleanup    = 60 * time.Minute
)

var helpCache = cache.New(helpExpiration, helpCleanup)

func helpCacheKey(n *Node, level HelpLevel) string {
	return fmt.Sprintf("%p/%d", n, level)
}
