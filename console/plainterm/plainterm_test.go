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

package plainterm_test

import (
	"io"
	"strings"
	"testing"

	"github.com/cmgui/cmgui/console"
	"github.com/cmgui/cmgui/console/plainterm"
	"github.com/cmgui/cmgui/test"
)

func TestPlainTerminal(t *testing.T) {
	out := &test.CompareWriter{}
	pt := plainterm.NewPlainTerminal(strings.NewReader("gfx list\r\nquit"), out)
	test.DemandSuccess(t, pt.Initialise())
	defer pt.CleanUp()

	test.ExpectFailure(t, pt.IsInteractive())

	s, err := pt.TermRead(console.Prompt{Content: "cmgui"}, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "gfx list")

	// the last line does not need a terminator
	s, err = pt.TermRead(console.Prompt{Content: "cmgui"}, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "quit")

	_, err = pt.TermRead(console.Prompt{Content: "cmgui"}, nil)
	test.ExpectEquality(t, err, io.EOF)

	pt.TermPrintLine(console.StyleFeedback, "hello")
	pt.TermPrintLine(console.StyleError, "bad")
	test.ExpectSuccess(t, out.Compare("hello\nERROR: bad\n"))

	out.Clear()
	pt.Silence(true)
	pt.TermPrintLine(console.StyleFeedback, "hello")
	pt.TermPrintLine(console.StyleError, "bad")
	test.ExpectSuccess(t, out.Compare("ERROR: bad\n"))
}
