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

//go:build !windows

// Package colorterm implements the Terminal interface for the command
// interpreter. It supports color output, history and tab completion.
package colorterm

import (
	"bufio"
	"os"

	"github.com/cmgui/cmgui/console"
	"github.com/cmgui/cmgui/console/colorterm/easyterm"
)

// ColorTerminal implements the console.Terminal interface with an ANSI
// terminal.
type ColorTerminal struct {
	easyterm.EasyTerm

	reader         *bufio.Reader
	commandHistory []command
	tabCompletion  console.TabCompletion

	silenced bool
}

type command struct {
	input []rune
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	err := ct.EasyTerm.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	ct.commandHistory = make([]command, 0)
	ct.reader = bufio.NewReader(os.Stdin)

	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.EasyTerm.TermPrint("\r")
	_ = ct.Flush()
	ct.EasyTerm.CleanUp()
}

// RegisterTabCompletion adds an implementation of TabCompletion to the
// ColorTerminal.
func (ct *ColorTerminal) RegisterTabCompletion(tc console.TabCompletion) {
	ct.tabCompletion = tc
}

// IsInteractive implements the console.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the console.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// History returns a copy of the command history.
func (ct *ColorTerminal) History() []string {
	h := make([]string, len(ct.commandHistory))
	for i, c := range ct.commandHistory {
		h[i] = string(c.input)
	}
	return h
}
