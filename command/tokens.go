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
	"strings"

	"github.com/cmgui/cmgui/curated"
	"github.com/mattn/go-shellwords"
)

// Sentinel error patterns.
const (
	MalformedInput  = "malformed input: %v"
	UnknownOption   = "unknown option: %s%s"
	MissingArgument = "missing argument: %s"
	InvalidValue    = "invalid value for %s: %s"
	OutOfRange      = "value for %s out of range: %s (%s)"
)

// Tokens represents tokenised input. The cursor always points to the current
// token. When the cursor is equal to the number of tokens there is no current
// token.
type Tokens struct {
	input  string
	tokens []string
	curr   int
}

// characters that go-shellwords gives a shell meaning to when they are not
// quoted. they are escaped before parsing so that they are ordinary
// characters of a token.
const metacharacters = ";&|<>()`"

// escapeMetacharacters returns the input with a backslash before every
// metacharacter that is outside of quotes.
func escapeMetacharacters(input string) string {
	var s strings.Builder
	var escaped, single, double bool

	for _, r := range input {
		switch {
		case escaped:
			escaped = false
		case r == '\\' && !single:
			escaped = true
		case r == '"' && !single:
			double = !double
		case r == '\'' && !double:
			single = !single
		case !single && !double && strings.ContainsRune(metacharacters, r):
			s.WriteRune('\\')
		}
		s.WriteRune(r)
	}

	return s.String()
}

// tokeniseInput is the "raw" tokenising function. used by TokeniseInput() and
// by the TabCompletion type.
func tokeniseInput(input string) ([]string, error) {
	p := shellwords.NewParser()
	p.ParseEnv = false
	p.ParseBacktick = false

	toks, err := p.Parse(escapeMetacharacters(input))
	if err != nil {
		return nil, curated.Parsef(MalformedInput, err)
	}

	return toks, nil
}

// TokeniseInput creates and returns a new Tokens instance. Whitespace
// separates tokens except inside single or double quotes. A backslash escapes
// the following character. Other characters have no special meaning.
// Unbalanced quotes and a trailing backslash are errors.
func TokeniseInput(input string) (*Tokens, error) {
	input = strings.TrimSpace(input)

	toks, err := tokeniseInput(input)
	if err != nil {
		return nil, err
	}

	return &Tokens{
		input:  input,
		tokens: toks,
	}, nil
}

// NewTokens creates a Tokens instance from a list of tokens that have already
// been divided.
func NewTokens(tokens ...string) *Tokens {
	tk := &Tokens{
		tokens: make([]string, len(tokens)),
	}
	copy(tk.tokens, tokens)
	tk.input = tk.String()
	return tk
}

// Input returns the original input string.
func (tk *Tokens) Input() string {
	return tk.input
}

// String re-serialises the tokens. Tokens that would not survive
// re-tokenisation are quoted.
func (tk *Tokens) String() string {
	s := make([]string, len(tk.tokens))
	for i, t := range tk.tokens {
		s[i] = Quote(t)
	}
	return strings.Join(s, " ")
}

// Quote returns the token in a form suitable for TokeniseInput().
func Quote(tok string) string {
	if tok != "" && !strings.ContainsAny(tok, " \t\n\r\"'\\") {
		return tok
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(tok) + `"`
}

// Len returns the total number of tokens.
func (tk *Tokens) Len() int {
	return len(tk.tokens)
}

// Cursor returns the index of the current token.
func (tk *Tokens) Cursor() int {
	return tk.curr
}

// Current returns the token at the cursor and true, or false if there is no
// current token.
func (tk *Tokens) Current() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	return tk.tokens[tk.curr], true
}

// Get returns the current token and advances the cursor.
func (tk *Tokens) Get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

// Unget walks backwards in the token list.
func (tk *Tokens) Unget() {
	if tk.curr > 0 {
		tk.curr--
	}
}

// Shift moves the cursor by n tokens. A negative value moves the cursor
// backwards. Returns false, with the cursor unchanged, if the move would take
// the cursor outside the token list.
func (tk *Tokens) Shift(n int) bool {
	c := tk.curr + n
	if c < 0 || c > len(tk.tokens) {
		return false
	}
	tk.curr = c
	return true
}

// Remaining returns the count of remaining tokens in the token list.
func (tk *Tokens) Remaining() int {
	return len(tk.tokens) - tk.curr
}

// Remainder returns the remaining tokens as a string.
func (tk *Tokens) Remainder() string {
	return NewTokens(tk.tokens[tk.curr:]...).String()
}

// RemainingTokens returns a copy of the remaining tokens.
func (tk *Tokens) RemainingTokens() []string {
	c := make([]string, tk.Remaining())
	copy(c, tk.tokens[tk.curr:])
	return c
}

// Mark returns the current cursor position for use with Rewind().
func (tk *Tokens) Mark() int {
	return tk.curr
}

// Rewind returns the cursor to a position returned by Mark(). Returns false
// if the mark is not valid for this token list.
func (tk *Tokens) Rewind(mark int) bool {
	if mark < 0 || mark > len(tk.tokens) {
		return false
	}
	tk.curr = mark
	return true
}

// End moves the cursor past the last token.
func (tk *Tokens) End() {
	tk.curr = len(tk.tokens)
}

// Location returns the token list with the current token in square brackets.
// If there is no current token an empty pair of brackets is placed at the
// end. Useful for error messages.
func (tk *Tokens) Location() string {
	s := make([]string, 0, len(tk.tokens)+1)
	for i, t := range tk.tokens {
		if i == tk.curr {
			s = append(s, "["+Quote(t)+"]")
		} else {
			s = append(s, Quote(t))
		}
	}
	if tk.curr >= len(tk.tokens) {
		s = append(s, "[]")
	}
	return strings.Join(s, " ")
}
