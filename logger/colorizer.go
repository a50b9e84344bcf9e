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

package logger

import (
	"strings"

	"github.com/cmgui/cmgui/console/colorterm/easyterm/ansi"
)

// colorizeEntry applies basic coloring rules to an entry.
func colorizeEntry(e *Entry) string {
	s := strings.Builder{}
	switch e.Severity {
	case Error:
		s.WriteString(ansi.Pens["red"])
	case Warning:
		s.WriteString(ansi.Pens["yellow"])
	default:
		s.WriteString(ansi.DimPens["white"])
	}
	s.WriteString(strings.TrimSuffix(e.String(), "\n"))
	s.WriteString(ansi.NormalPen)
	s.WriteString("\n")
	return s.String()
}
