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

package script

import (
	"io"
	"os"
	"strings"

	"github.com/cmgui/cmgui/curated"
)

const commentLine = "#"

// Line is a single command in the queue.
type Line struct {
	Entry string

	// the file the command was loaded from. empty if the command was pushed
	Source string

	// line number in the source file. counting from one
	Number int
}

// Batch returns true if the line was loaded from a file.
func (ln Line) Batch() bool {
	return ln.Source != ""
}

// Queue normalises input into commands and dishes out those commands one at
// a time.
type Queue struct {
	lines []Line
}

// More returns true if there are more commands in the queue.
func (q *Queue) More() bool {
	return len(q.lines) > 0
}

// Len returns the number of commands in the queue.
func (q *Queue) Len() int {
	return len(q.lines)
}

// Next command in the queue.
func (q *Queue) Next() (Line, bool) {
	if len(q.lines) > 0 {
		ln := q.lines[0]
		q.lines = q.lines[1:]
		return ln, true
	}
	return Line{}, false
}

// Clear removes all commands from the queue.
func (q *Queue) Clear() {
	q.lines = q.lines[:0]
}

// Push input to the end of the queue.
func (q *Queue) Push(input string) {
	q.lines = append(q.lines, split(input, "")...)
}

// Load the contents of a command file into the queue. The commands are
// inserted before any other commands in the queue so that they are run next.
// The file is inserted repeat times. The filename, as given, is the
// Source of every line. A repeat value of less than one is
// treated as one.
func (q *Queue) Load(filename string, repeat int) error {
	f, err := os.Open(filename)
	if err != nil {
		return curated.Enginef(ScriptFileUnavailable, err)
	}
	defer f.Close()

	s, err := io.ReadAll(f)
	if err != nil {
		return curated.Enginef(ScriptFileError, err)
	}

	lns := split(string(s), filename)

	n := make([]Line, 0, len(lns)*max(repeat, 1)+len(q.lines))
	for i := 0; i < max(repeat, 1); i++ {
		n = append(n, lns...)
	}
	q.lines = append(n, q.lines...)

	return nil
}

// split input into commands. commands are separated by newlines and by
// semi-colons that are not inside quotes. lines beginning with the comment
// symbol and empty commands are ignored.
func split(input string, source string) []Line {
	// replace windows and mac line endings with unix line endings
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")

	lines := make([]Line, 0)

	for i, l := range strings.Split(input, "\n") {
		if strings.HasPrefix(strings.TrimSpace(l), commentLine) {
			continue
		}
		for _, c := range splitSemicolons(l) {
			c = strings.TrimSpace(c)
			if c == "" {
				continue
			}
			ln := Line{Entry: c, Source: source}
			if source != "" {
				ln.Number = i + 1
			}
			lines = append(lines, ln)
		}
	}

	return lines
}

func splitSemicolons(s string) []string {
	var parts []string
	var single, double, escaped bool

	start := 0
	for i, r := range s {
		switch {
		case escaped:
			escaped = false
		case r == '\\' && !single:
			escaped = true
		case r == '\'' && !double:
			single = !single
		case r == '"' && !single:
			double = !double
		case r == ';' && !single && !double:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}

	return append(parts, s[start:])
}
