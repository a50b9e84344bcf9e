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

//go:build windows

package colorterm

import (
	"fmt"

	"github.com/cmgui/cmgui/console"
)

// ColorTerminal is not available on windows.
type ColorTerminal struct {
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	return fmt.Errorf("color terminal not available on windows")
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
}

// RegisterTabCompletion adds an implementation of TabCompletion to the
// ColorTerminal.
func (ct *ColorTerminal) RegisterTabCompletion(tc console.TabCompletion) {
}

// IsInteractive implements the console.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return false
}

// Silence implements the console.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
}

// TermRead implements the console.Input interface.
func (ct *ColorTerminal) TermRead(prompt console.Prompt, events *console.ReadEvents) (string, error) {
	return "", nil
}

// TermPrintLine implements the console.Output interface.
func (ct *ColorTerminal) TermPrintLine(style console.Style, s string) {
}
