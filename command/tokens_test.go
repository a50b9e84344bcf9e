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

package command_test

import (
	"testing"

	"github.com/cmgui/cmgui/command"
	"github.com/cmgui/cmgui/curated"
	"github.com/cmgui/cmgui/test"
	"github.com/google/go-cmp/cmp"
)

func TestTokeniseInput(t *testing.T) {
	var toks *command.Tokens
	var err error

	toks, err = command.TokeniseInput("gfx create region foo")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, toks.Len(), 4)
	test.ExpectEquality(t, toks.Remaining(), 4)

	// leading and trailing whitespace is ignored
	toks, err = command.TokeniseInput("   gfx    list   ")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, toks.Len(), 2)
	test.ExpectEquality(t, toks.Input(), "gfx    list")

	// quoted tokens can contain whitespace
	toks, err = command.TokeniseInput(`gfx create region "left lung" 'right lung'`)
	test.DemandSuccess(t, err)
	if diff := cmp.Diff([]string{"gfx", "create", "region", "left lung", "right lung"}, toks.RemainingTokens()); diff != "" {
		t.Errorf("unexpected tokens (-want +got):\n%s", diff)
	}

	// escaped quote
	toks, err = command.TokeniseInput(`echo "say \"hello\""`)
	test.DemandSuccess(t, err)
	if diff := cmp.Diff([]string{"echo", `say "hello"`}, toks.RemainingTokens()); diff != "" {
		t.Errorf("unexpected tokens (-want +got):\n%s", diff)
	}

	// environment variables are not expanded
	toks, err = command.TokeniseInput("echo $HOME")
	test.DemandSuccess(t, err)
	if diff := cmp.Diff([]string{"echo", "$HOME"}, toks.RemainingTokens()); diff != "" {
		t.Errorf("unexpected tokens (-want +got):\n%s", diff)
	}

	// shell operators and parentheses are ordinary characters
	toks, err = command.TokeniseInput("gfx create region a>b")
	test.DemandSuccess(t, err)
	if diff := cmp.Diff([]string{"gfx", "create", "region", "a>b"}, toks.RemainingTokens()); diff != "" {
		t.Errorf("unexpected tokens (-want +got):\n%s", diff)
	}

	toks, err = command.TokeniseInput("gfx define field f(x) constant 1")
	test.DemandSuccess(t, err)
	if diff := cmp.Diff([]string{"gfx", "define", "field", "f(x)", "constant", "1"}, toks.RemainingTokens()); diff != "" {
		t.Errorf("unexpected tokens (-want +got):\n%s", diff)
	}

	toks, err = command.TokeniseInput("system ls|wc 2>&1 /tmp/(a) `x` ;")
	test.DemandSuccess(t, err)
	if diff := cmp.Diff([]string{"system", "ls|wc", "2>&1", "/tmp/(a)", "`x`", ";"}, toks.RemainingTokens()); diff != "" {
		t.Errorf("unexpected tokens (-want +got):\n%s", diff)
	}

	// quoted and escaped operators are unchanged
	toks, err = command.TokeniseInput(`echo "a|b" 'c(d)' e\>f`)
	test.DemandSuccess(t, err)
	if diff := cmp.Diff([]string{"echo", "a|b", "c(d)", "e>f"}, toks.RemainingTokens()); diff != "" {
		t.Errorf("unexpected tokens (-want +got):\n%s", diff)
	}

	// unbalanced quotes
	_, err = command.TokeniseInput(`gfx create region "left lung`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, command.MalformedInput))
	test.ExpectEquality(t, curated.KindOf(err), curated.KindParse)

	// empty input
	toks, err = command.TokeniseInput("")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, toks.Len(), 0)
	_, ok := toks.Current()
	test.ExpectFailure(t, ok)
}

func TestTokensRoundTrip(t *testing.T) {
	inputs := []string{
		"gfx create region foo",
		`gfx create region "left lung"`,
		`gfx define field "a \"quoted\" name" constant 1.5`,
		`path 'C:\data\heart'`,
		`empty ""`,
		"system ls ; wc",
		"gfx create region a>b f(x) `y`",
		`quoted "a|b" 'c(d)'`,
		"unicode ἀθήνη 'β γ'",
	}

	for _, in := range inputs {
		a, err := command.TokeniseInput(in)
		test.DemandSuccess(t, err, in)

		b, err := command.TokeniseInput(a.String())
		test.DemandSuccess(t, err, a.String())

		if diff := cmp.Diff(a.RemainingTokens(), b.RemainingTokens()); diff != "" {
			t.Errorf("round trip of %q failed (-want +got):\n%s", in, diff)
		}
	}
}

func TestTokensCursor(t *testing.T) {
	toks := command.NewTokens("a", "b", "c")

	tok, ok := toks.Current()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, tok, "a")

	tok, ok = toks.Get()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, tok, "a")
	test.ExpectEquality(t, toks.Cursor(), 1)
	test.ExpectEquality(t, toks.Remaining(), 2)
	test.ExpectEquality(t, toks.Remainder(), "b c")

	toks.Unget()
	test.ExpectEquality(t, toks.Cursor(), 0)

	// unget at the start of the list has no effect
	toks.Unget()
	test.ExpectEquality(t, toks.Cursor(), 0)

	// shift beyond the end fails and the cursor is not changed
	test.ExpectFailure(t, toks.Shift(4))
	test.ExpectEquality(t, toks.Cursor(), 0)
	test.ExpectFailure(t, toks.Shift(-1))
	test.ExpectEquality(t, toks.Cursor(), 0)

	// shifting to the end is allowed
	test.ExpectSuccess(t, toks.Shift(3))
	test.ExpectEquality(t, toks.Remaining(), 0)
	_, ok = toks.Current()
	test.ExpectFailure(t, ok)
	_, ok = toks.Get()
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, toks.Location(), "a b c []")

	test.ExpectSuccess(t, toks.Shift(-2))
	test.ExpectEquality(t, toks.Location(), "a [b] c")

	m := toks.Mark()
	toks.End()
	test.ExpectEquality(t, toks.Remaining(), 0)
	test.ExpectSuccess(t, toks.Rewind(m))
	test.ExpectEquality(t, toks.Cursor(), 1)
	test.ExpectFailure(t, toks.Rewind(10))
	test.ExpectEquality(t, toks.Cursor(), 1)
}

func TestHelpLevel(t *testing.T) {
	test.ExpectEquality(t, command.HelpLevelOf("?"), command.HelpOneLevel)
	test.ExpectEquality(t, command.HelpLevelOf("??"), command.HelpRecursive)
	test.ExpectEquality(t, command.HelpLevelOf("???"), command.HelpNone)
	test.ExpectEquality(t, command.HelpLevelOf("help"), command.HelpNone)
}
