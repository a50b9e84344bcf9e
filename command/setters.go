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
	"math"
	"strconv"
	"strings"

	"github.com/cmgui/cmgui/curated"
	"github.com/cmgui/cmgui/multirange"
	"golang.org/x/exp/constraints"
)

// Setter consumes zero or more tokens and stores the result in a target
// variable. For keyword entries the keyword has already been consumed when
// Set() is called. For the positional entry the keyword argument is the empty
// string and the current token is the first token of the value.
//
// A setter must not change the target if an error is returned.
type Setter interface {
	Set(tokens *Tokens, keyword string) error

	// short description of the tokens consumed. for example "#" or "NAME"
	Usage() string
}

// describe the value for an error message.
func describe(keyword string, usage string) string {
	if keyword == "" {
		return usage
	}
	if usage == "" {
		return keyword
	}
	return keyword + " " + usage
}

// value returns the current token without consuming it. help tokens are
// returned as a *Help error.
func value(tokens *Tokens, keyword string, usage string) (string, error) {
	tok, ok := tokens.Current()
	if !ok {
		return "", curated.Parsef(MissingArgument, describe(keyword, usage))
	}
	if lvl := HelpLevelOf(tok); lvl != HelpNone {
		tokens.Shift(1)
		return "", &Help{Level: lvl, Path: keyword, Usage: describe(keyword, usage)}
	}
	return tok, nil
}

type flagValue struct {
	target *bool
}

// Flag sets the target to true. No tokens are consumed beyond the keyword.
func Flag(target *bool) Setter {
	return flagValue{target: target}
}

func (f flagValue) Set(_ *Tokens, _ string) error {
	*f.target = true
	return nil
}

func (f flagValue) Usage() string {
	return ""
}

type charFlagValue struct {
	target *byte
}

// CharFlag sets the target to one. No tokens are consumed beyond the keyword.
func CharFlag(target *byte) Setter {
	return charFlagValue{target: target}
}

func (f charFlagValue) Set(_ *Tokens, _ string) error {
	*f.target = 1
	return nil
}

func (f charFlagValue) Usage() string {
	return ""
}

type switchValue struct {
	on     string
	target *bool
}

func (s switchValue) Set(_ *Tokens, keyword string) error {
	*s.target = keyword == s.on
	return nil
}

func (s switchValue) Usage() string {
	return ""
}

// Numeric types accepted by the Number() setter.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// parseNumber converts the token to the numeric type. integers are decimal.
// floats must be finite.
func parseNumber[T Numeric](tok string) (T, bool) {
	var z T

	switch any(z).(type) {
	case float32, float64:
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return z, false
		}
		return T(f), true
	case uint, uint8, uint16, uint32, uint64, uintptr:
		u, err := strconv.ParseUint(tok, 10, 64)
		if err != nil || uint64(T(u)) != u {
			return z, false
		}
		return T(u), true
	}

	i, err := strconv.ParseInt(tok, 10, 64)
	if err != nil || int64(T(i)) != i {
		return z, false
	}
	return T(i), true
}

// usage placeholder for a numeric type.
func numericUsage[T Numeric]() string {
	var z T
	switch any(z).(type) {
	case float32, float64:
		return "#.#"
	}
	return "#"
}

type numberValue[T Numeric] struct {
	target *T
	check  func(T) bool
	rule   string
}

// Number consumes one token and stores it in the target. If check is not nil
// it must return true for the value to be accepted. The rule describes the
// check for error messages, for example "> 0".
func Number[T Numeric](target *T, check func(T) bool, rule string) Setter {
	return numberValue[T]{target: target, check: check, rule: rule}
}

func (n numberValue[T]) Set(tokens *Tokens, keyword string) error {
	tok, err := value(tokens, keyword, n.Usage())
	if err != nil {
		return err
	}

	v, ok := parseNumber[T](tok)
	if !ok {
		return curated.Parsef(InvalidValue, describe(keyword, n.Usage()), tok)
	}
	if n.check != nil && !n.check(v) {
		return curated.Parsef(OutOfRange, describe(keyword, n.Usage()), tok, n.rule)
	}

	*n.target = v
	tokens.Shift(1)
	return nil
}

func (n numberValue[T]) Usage() string {
	return numericUsage[T]()
}

// Int consumes one integer token.
func Int(target *int) Setter {
	return Number(target, nil, "")
}

// PositiveInt consumes one integer token. The value must be greater than zero.
func PositiveInt(target *int) Setter {
	return Number(target, func(v int) bool { return v > 0 }, "> 0")
}

// NonNegativeInt consumes one integer token. The value must not be negative.
func NonNegativeInt(target *int) Setter {
	return Number(target, func(v int) bool { return v >= 0 }, ">= 0")
}

// Float consumes one single precision floating-point token.
func Float(target *float32) Setter {
	return Number(target, nil, "")
}

// Double consumes one double precision floating-point token.
func Double(target *float64) Setter {
	return Number(target, nil, "")
}

// NonNegativeDouble consumes one double precision floating-point token. The
// value must not be negative.
func NonNegativeDouble(target *float64) Setter {
	return Number(target, func(v float64) bool { return v >= 0 }, ">= 0")
}

// UnitInterval consumes one double precision floating-point token. The value
// must be between zero and one inclusive.
func UnitInterval(target *float64) Setter {
	return Number(target, func(v float64) bool { return v >= 0 && v <= 1 }, "0 to 1")
}

type vectorValue[T Numeric] struct {
	fixed    []T
	variable *[]T
}

// Vector consumes exactly len(target) numeric tokens.
func Vector[T Numeric](target []T) Setter {
	return vectorValue[T]{fixed: target}
}

// VariableVector consumes numeric tokens until a token that is not a number
// is found. At least one number is required. The target is replaced.
func VariableVector[T Numeric](target *[]T) Setter {
	return vectorValue[T]{variable: target}
}

// DoubleVector consumes exactly len(target) floating-point tokens.
func DoubleVector(target []float64) Setter {
	return Vector(target)
}

// VariableDoubleVector consumes floating-point tokens until a token that is
// not a number is found.
func VariableDoubleVector(target *[]float64) Setter {
	return VariableVector(target)
}

// IntVector consumes exactly len(target) integer tokens.
func IntVector(target []int) Setter {
	return Vector(target)
}

// VariableIntVector consumes integer tokens until a token that is not an
// integer is found.
func VariableIntVector(target *[]int) Setter {
	return VariableVector(target)
}

func (v vectorValue[T]) Set(tokens *Tokens, keyword string) error {
	if v.variable != nil {
		return v.setVariable(tokens, keyword)
	}

	mark := tokens.Mark()
	vals := make([]T, len(v.fixed))
	for i := range vals {
		tok, err := value(tokens, keyword, v.Usage())
		if err != nil {
			tokens.Rewind(mark)
			return err
		}

		n, ok := parseNumber[T](tok)
		if !ok {
			tokens.Rewind(mark)
			return curated.Parsef(InvalidValue, describe(keyword, v.Usage()), tok)
		}
		vals[i] = n
		tokens.Shift(1)
	}

	copy(v.fixed, vals)
	return nil
}

func (v vectorValue[T]) setVariable(tokens *Tokens, keyword string) error {
	tok, err := value(tokens, keyword, v.Usage())
	if err != nil {
		return err
	}

	vals := make([]T, 0)
	for {
		n, ok := parseNumber[T](tok)
		if !ok {
			break
		}
		vals = append(vals, n)
		tokens.Shift(1)

		tok, ok = tokens.Current()
		if !ok {
			break
		}
	}

	if len(vals) == 0 {
		return curated.Parsef(InvalidValue, describe(keyword, v.Usage()), tok)
	}

	*v.variable = vals
	return nil
}

func (v vectorValue[T]) Usage() string {
	if v.variable != nil {
		return numericUsage[T]() + "..."
	}
	s := make([]string, len(v.fixed))
	for i := range s {
		s[i] = numericUsage[T]()
	}
	return strings.Join(s, " ")
}

type stringValue struct {
	target *string
}

// String consumes one token.
func String(target *string) Setter {
	return stringValue{target: target}
}

func (s stringValue) Set(tokens *Tokens, keyword string) error {
	tok, err := value(tokens, keyword, s.Usage())
	if err != nil {
		return err
	}
	*s.target = tok
	tokens.Shift(1)
	return nil
}

func (s stringValue) Usage() string {
	return "STRING"
}

type enumValue struct {
	target *string
	values []string
}

// Enum consumes one token which must be one of the listed values.
func Enum(target *string, values ...string) Setter {
	return enumValue{target: target, values: values}
}

func (e enumValue) Set(tokens *Tokens, keyword string) error {
	tok, err := value(tokens, keyword, e.Usage())
	if err != nil {
		return err
	}

	i := match(e.values, tok, MatchExact)
	if i < 0 {
		return unknownOption(tokens, tok, e.values)
	}

	*e.target = e.values[i]
	tokens.Shift(1)
	return nil
}

func (e enumValue) Usage() string {
	return strings.Join(e.values, "|")
}

type subTable struct {
	table *Table
}

// SubTable parses entries of another table until the current token does not
// match any of its keywords. The unmatched token is left for the enclosing
// table.
func SubTable(table *Table) Setter {
	return subTable{table: table}
}

func (s subTable) Set(tokens *Tokens, _ string) error {
	return s.table.parseKnown(tokens)
}

func (s subTable) Usage() string {
	return "..."
}

type multiRangeValue struct {
	target *multirange.Ranges
}

// MultiRange consumes tokens for as long as they can be parsed as ranges and
// adds the ranges to the target. A token may be a comma separated list of
// values and ranges. Consecutive bare numbers are paired to make a range:
//
//	1..5,9 20 30 41
//
// adds 1 to 5, 9, 20 to 30 and 41.
func MultiRange(target *multirange.Ranges) Setter {
	return multiRangeValue{target: target}
}

func (m multiRangeValue) Set(tokens *Tokens, keyword string) error {
	tok, err := value(tokens, keyword, m.Usage())
	if err != nil {
		return err
	}

	if !multirange.IsRangeText(tok) {
		return curated.Parsef(InvalidValue, describe(keyword, m.Usage()), tok)
	}

	var r multirange.Ranges
	pending := false
	start := 0

	for ok := true; ok && multirange.IsRangeText(tok); tok, ok = tokens.Current() {
		if v, err := strconv.Atoi(tok); err == nil {
			if pending {
				r.Add(start, v)
				pending = false
			} else {
				start = v
				pending = true
			}
		} else {
			if pending {
				r.Add(start, start)
				pending = false
			}
			p, _ := multirange.ParseString(tok)
			r.AddRanges(p)
		}
		tokens.Shift(1)
	}

	if pending {
		r.Add(start, start)
	}

	m.target.AddRanges(r)
	return nil
}

func (m multiRangeValue) Usage() string {
	return "#..#,#"
}

type funcValue struct {
	usage string
	fn    func(tokens *Tokens, keyword string) error
}

// Func calls the function to consume tokens.
func Func(usage string, fn func(tokens *Tokens, keyword string) error) Setter {
	return funcValue{usage: usage, fn: fn}
}

func (f funcValue) Set(tokens *Tokens, keyword string) error {
	return f.fn(tokens, keyword)
}

func (f funcValue) Usage() string {
	return f.usage
}

type labelled struct {
	Setter
	label string
}

// Labelled replaces the usage text of a setter.
func Labelled(label string, setter Setter) Setter {
	return labelled{Setter: setter, label: label}
}

func (l labelled) Usage() string {
	return l.label
}
