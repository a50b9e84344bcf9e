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
	"fmt"
	"sort"
	"strings"

	"github.com/cmgui/cmgui/curated"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// EmptyMode specifies what happens when a table or router is asked to parse
// and there are no tokens remaining.
type EmptyMode int

// List of valid EmptyMode values.
const (
	// running out of tokens is not an error
	EmptyAllowed EmptyMode = iota

	// running out of tokens is a MissingArgument error
	EmptyRequired

	// running out of tokens is a request for an interactive prompt. only
	// meaningful for router nodes
	EmptyPrompt
)

// MatchMode specifies how a token is compared to a keyword.
type MatchMode int

// List of valid MatchMode values.
const (
	// the token must equal the keyword. case sensitive
	MatchExact MatchMode = iota

	// an exact match is preferred but a token may be an abbreviation of a
	// keyword. if the abbreviation is ambiguous the keyword registered first
	// is used
	MatchAbbreviation
)

// match returns the index of the keyword matched by the token or -1 if
// there is no match.
func match(keywords []string, tok string, mode MatchMode) int {
	if tok == "" {
		return -1
	}

	for i, k := range keywords {
		if k == tok {
			return i
		}
	}

	if mode == MatchAbbreviation {
		for i, k := range keywords {
			if strings.HasPrefix(k, tok) {
				return i
			}
		}
	}

	return -1
}

// maxSuggestionDistance is the largest edit distance at which a keyword is
// suggested when the token is not a subsequence of any keyword.
const maxSuggestionDistance = 2

// suggest returns the keyword closest to the token or the empty string if no
// keyword is close enough.
func suggest(tok string, keywords []string) string {
	ranks := fuzzy.RankFindFold(tok, keywords)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	best := ""
	dist := maxSuggestionDistance + 1
	for _, k := range keywords {
		if d := fuzzy.LevenshteinDistance(strings.ToLower(tok), strings.ToLower(k)); d < dist {
			best = k
			dist = d
		}
	}
	return best
}

// unknownOption creates the error for an unmatched token. the cursor should
// still point to the token.
func unknownOption(tokens *Tokens, tok string, keywords []string) error {
	detail := fmt.Sprintf(" (%s)", tokens.Location())
	if s := suggest(tok, keywords); s != "" {
		detail = fmt.Sprintf("%s did you mean '%s'?", detail, s)
	}
	return curated.Parsef(UnknownOption, tok, detail)
}

type entry struct {
	// keywords for the entry. the positional entry has no keywords. switch
	// entries have two
	keywords []string
	setter   Setter
}

// Table binds keywords to setters. A new table should be created for every
// invocation of a command and should be discarded after use.
//
// The zero value is not usable. Use NewTable().
type Table struct {
	entries    []entry
	positional *entry
	help       []string

	// what to do when there are no tokens. defaults to EmptyAllowed
	Empty EmptyMode

	// how tokens are compared to keywords. defaults to MatchExact
	Match MatchMode

	// skip over tokens that do not match any keyword in MultiParse(). has
	// no effect if the table has a positional entry
	IgnoreUnmatched bool
}

// NewTable is the preferred method of initialisation for the Table type.
func NewTable() *Table {
	return &Table{
		entries: make([]entry, 0, 8),
		help:    make([]string, 0),
	}
}

// Add binds a keyword to a setter. The keyword must not be empty and must
// not already be in the table. Keywords are matched in the order they were
// added.
func (t *Table) Add(keyword string, setter Setter) error {
	if keyword == "" {
		return curated.Enginef("option table: empty keyword")
	}
	if HelpLevelOf(keyword) != HelpNone {
		return curated.Enginef("option table: reserved keyword (%s)", keyword)
	}
	if t.has(keyword) {
		return curated.Enginef("option table: duplicate keyword (%s)", keyword)
	}
	t.entries = append(t.entries, entry{keywords: []string{keyword}, setter: setter})
	return nil
}

// AddSwitch binds a pair of keywords to a boolean. The first keyword sets the
// value to true and the second sets it to false.
func (t *Table) AddSwitch(on string, off string, target *bool) error {
	if on == "" || off == "" || on == off {
		return curated.Enginef("option table: invalid switch (%s|%s)", on, off)
	}
	if t.has(on) || t.has(off) {
		return curated.Enginef("option table: duplicate keyword (%s|%s)", on, off)
	}
	t.entries = append(t.entries, entry{
		keywords: []string{on, off},
		setter:   switchValue{on: on, target: target},
	})
	return nil
}

// AddDefault binds the positional setter. The positional setter is used
// when the current token does not match any keyword. A table can have at
// most one positional setter.
func (t *Table) AddDefault(setter Setter) error {
	if t.positional != nil {
		return curated.Enginef("option table: positional entry already present")
	}
	t.positional = &entry{setter: setter}
	return nil
}

// AddHelp adds a line of descriptive text that is shown before the usage
// of the table entries.
func (t *Table) AddHelp(text string) {
	t.help = append(t.help, text)
}

func (t *Table) has(keyword string) bool {
	for _, e := range t.entries {
		for _, k := range e.keywords {
			if k == keyword {
				return true
			}
		}
	}
	return false
}

// Keywords returns every keyword in the table in the order they were added.
func (t *Table) Keywords() []string {
	kws := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		kws = append(kws, e.keywords...)
	}
	return kws
}

// lookup returns the entry and keyword matched by the token.
func (t *Table) lookup(tok string) (*entry, string) {
	kws := t.Keywords()
	i := match(kws, tok, t.Match)
	if i < 0 {
		return nil, ""
	}

	kw := kws[i]
	for j := range t.entries {
		for _, k := range t.entries[j].keywords {
			if k == kw {
				return &t.entries[j], kw
			}
		}
	}
	return nil, ""
}

// checkEntry is used at the start of Parse() and MultiParse().
func (t *Table) checkEntry(tokens *Tokens) (bool, error) {
	tok, ok := tokens.Current()
	if !ok {
		if t.Empty == EmptyRequired {
			return false, curated.Parsef(MissingArgument, t.Usage(HelpOneLevel))
		}
		return false, nil
	}

	if lvl := HelpLevelOf(tok); lvl != HelpNone {
		tokens.Shift(1)
		return false, &Help{Level: lvl, Usage: t.Usage(lvl)}
	}

	return true, nil
}

// parseOne handles the current token. returns false if the token was not
// matched by any entry.
func (t *Table) parseOne(tokens *Tokens) (bool, error) {
	tok, _ := tokens.Current()

	if lvl := HelpLevelOf(tok); lvl != HelpNone {
		tokens.Shift(1)
		return true, &Help{Level: lvl, Usage: t.Usage(lvl)}
	}

	if e, kw := t.lookup(tok); e != nil {
		tokens.Shift(1)
		return true, e.setter.Set(tokens, kw)
	}

	if t.positional != nil {
		return true, t.positional.setter.Set(tokens, "")
	}

	return false, unknownOption(tokens, tok, t.Keywords())
}

// Parse handles a single entry. A token that does not match a keyword is
// passed to the positional setter if there is one. If there is no positional
// setter the UnknownOption error is returned and the token is not consumed.
//
// A help token returns a *Help error and no setters are invoked.
func (t *Table) Parse(tokens *Tokens) error {
	if ok, err := t.checkEntry(tokens); !ok {
		return err
	}
	_, err := t.parseOne(tokens)
	return err
}

// MultiParse calls Parse() until the tokens are exhausted or until an error
// occurs.
func (t *Table) MultiParse(tokens *Tokens) error {
	if ok, err := t.checkEntry(tokens); !ok {
		return err
	}

	for tokens.Remaining() > 0 {
		mark := tokens.Mark()
		tok, _ := tokens.Current()

		matched, err := t.parseOne(tokens)
		if !matched && t.IgnoreUnmatched {
			tokens.Shift(1)
			continue
		}
		if err != nil {
			return err
		}

		// a positional setter that consumes nothing would loop forever
		if tokens.Mark() == mark {
			return unknownOption(tokens, tok, t.Keywords())
		}
	}

	return nil
}

// parseKnown handles entries until the current token does not match any
// keyword. unmatched tokens are left for the caller. used by sub-tables.
func (t *Table) parseKnown(tokens *Tokens) error {
	for tokens.Remaining() > 0 {
		tok, _ := tokens.Current()

		if lvl := HelpLevelOf(tok); lvl != HelpNone {
			tokens.Shift(1)
			return &Help{Level: lvl, Usage: t.Usage(lvl)}
		}

		if e, kw := t.lookup(tok); e != nil {
			tokens.Shift(1)
			if err := e.setter.Set(tokens, kw); err != nil {
				return err
			}
			continue
		}

		if t.positional == nil {
			return nil
		}

		mark := tokens.Mark()
		if err := t.positional.setter.Set(tokens, ""); err != nil {
			return err
		}
		if tokens.Mark() == mark {
			return nil
		}
	}

	return nil
}

// Usage returns the formatted usage text of the table. With HelpRecursive
// the usage of any sub-tables is included.
func (t *Table) Usage(level HelpLevel) string {
	var s strings.Builder
	t.usage(&s, level, "")
	return strings.TrimRight(s.String(), "\n")
}

const usageIndent = "  "

func (t *Table) usage(s *strings.Builder, level HelpLevel, indent string) {
	for _, h := range t.help {
		s.WriteString(indent)
		s.WriteString(h)
		s.WriteString("\n")
	}

	for _, e := range t.entries {
		s.WriteString(indent)
		s.WriteString("<")
		s.WriteString(strings.Join(e.keywords, "|"))
		if u := e.setter.Usage(); u != "" {
			s.WriteString(" ")
			s.WriteString(u)
		}
		s.WriteString(">\n")

		if level == HelpRecursive {
			if st, ok := e.setter.(subTable); ok {
				st.table.usage(s, level, indent+usageIndent)
			}
		}
	}

	if t.positional != nil {
		s.WriteString(indent)
		s.WriteString("<")
		s.WriteString(t.positional.setter.Usage())
		s.WriteString(">\n")
	}
}

// AtMostOne returns a validation error if more than one of the flags is set.
// The names are used in the error message.
func AtMostOne(names []string, flags ...bool) error {
	if count(flags) > 1 {
		return curated.Validatef("only one of %s can be specified", strings.Join(names, "|"))
	}
	return nil
}

// ExactlyOne returns a validation error unless exactly one of the flags is
// set. The names are used in the error message.
func ExactlyOne(names []string, flags ...bool) error {
	if count(flags) != 1 {
		return curated.Validatef("exactly one of %s must be specified", strings.Join(names, "|"))
	}
	return nil
}

func count(flags []bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}
