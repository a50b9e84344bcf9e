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

// Package console defines the operations required by the command interpreter
// for input and output. The plainterm and colorterm sub-packages provide
// implementations for a normal terminal and for an ANSI terminal with line
// editing, history and tab completion.
package console

import (
	"io"
	"os"
	"strings"
)

// Style identifies the type of text being printed.
type Style int

// List of valid Style values.
const (
	// the command line as entered by the user, normalised. echoed when the
	// echo preference is set
	StyleEcho Style = iota

	// the result of a command
	StyleFeedback

	// help text
	StyleHelp

	// error messages. error messages are printed even when the terminal is
	// silenced
	StyleError

	// informational messages from the interpreter itself
	StyleInformation

	// echoed log entries
	StyleLog
)

// Sentinel errors. Returned by TermRead() if caught whilst waiting for input.
const (
	UserInterrupt = "user interrupt"
	UserAbort     = "user abort"
)

// Prompt specifies the prompt text.
type Prompt struct {
	// normally the application name
	Content string

	// the sub-command path when a command prompt has been entered. for
	// example, "gfx create"
	Path []string
}

// String returns the prompt with standard decoration.
func (p Prompt) String() string {
	s := strings.Builder{}
	s.WriteString(p.Content)
	if len(p.Path) > 0 {
		if p.Content != "" {
			s.WriteString(" ")
		}
		s.WriteString(strings.Join(p.Path, " "))
	}
	s.WriteString("> ")
	return s.String()
}

// ReadEvents should be monitored during a TermRead() where possible.
type ReadEvents struct {
	// interrupt signals from the operating system
	IntEvents chan os.Signal
}

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns a line of input without the line terminator. io.EOF is
	// returned when there is no more input.
	TermRead(prompt Prompt, events *ReadEvents) (string, error)

	// IsInteractive should return true for implementations that require user
	// interaction.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the command interpreter.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible.
	CleanUp()

	// Register a tab completion implementation to use with the terminal. Not
	// all implementations need to respond meaningfully to this.
	RegisterTabCompletion(TabCompletion)

	// Silence all output except error messages.
	Silence(silenced bool)
}

// TabCompletion defines the operations required for tab completion. An
// implementation can be found in the command package.
type TabCompletion interface {
	Complete(input string) string
	Reset()
}

// Writer adapts an Output to the io.Writer interface. Each line written is
// printed with the style.
type Writer struct {
	Output Output
	Style  Style
}

func (w Writer) Write(p []byte) (int, error) {
	for _, l := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		w.Output.TermPrintLine(w.Style, l)
	}
	return len(p), nil
}

// make sure Writer satisfies the io.Writer interface
var _ io.Writer = Writer{}
