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

package colorterm

import (
	"github.com/cmgui/cmgui/console"
	"github.com/cmgui/cmgui/console/colorterm/easyterm/ansi"
)

// TermPrintLine implements the console.Output interface.
func (ct *ColorTerminal) TermPrintLine(style console.Style, s string) {
	if ct.silenced && style != console.StyleError {
		return
	}

	// the user has already seen the input
	if style == console.StyleEcho {
		return
	}

	ct.EasyTerm.TermPrint("\r")

	switch style {
	case console.StyleHelp:
		ct.EasyTerm.TermPrint(ansi.DimPens["white"])
	case console.StyleInformation:
		ct.EasyTerm.TermPrint(ansi.PenStyles["bold"])
	case console.StyleLog:
		ct.EasyTerm.TermPrint(ansi.DimPens["yellow"])
	case console.StyleError:
		ct.EasyTerm.TermPrint(ansi.Pens["red"])
		ct.EasyTerm.TermPrint("ERROR: ")
	}

	ct.EasyTerm.TermPrint(s)
	ct.EasyTerm.TermPrint(ansi.NormalPen)

	// in raw mode a carriage return is needed as well as a newline
	ct.EasyTerm.TermPrint("\r\n")
}
