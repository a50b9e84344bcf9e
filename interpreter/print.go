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

package interpreter

import (
	"fmt"
	"strings"

	"github.com/cmgui/cmgui/console"
)

// printLine prints the string to the terminal with the style. the string is
// formatted with the arguments if there are any. multi-line strings are
// printed one line at a time.
func (intr *Interpreter) printLine(sty console.Style, s string, a ...any) {
	if len(a) > 0 {
		s = fmt.Sprintf(s, a...)
	}

	s = strings.TrimRight(s, "\n")
	if len(s) == 0 {
		return
	}

	for _, l := range strings.Split(s, "\n") {
		intr.term.TermPrintLine(sty, l)
	}
}

// printStyle returns an io.Writer that prints to the terminal with the style.
func (intr *Interpreter) printStyle(sty console.Style) console.Writer {
	return console.Writer{Output: intr.term, Style: sty}
}
