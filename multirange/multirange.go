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

// Package multirange implements a set of integers stored as sorted,
// non-overlapping inclusive ranges. It is used to describe node and element
// identifiers, which tend to come in long consecutive runs.
//
// The canonical text form is a comma separated list of single values and
// ranges. Ranges use the ".." separator although "-" is also accepted when
// parsing:
//
//	1..5,7,10..12
package multirange

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Range is a single inclusive range of integers.
type Range struct {
	Start int
	Stop  int
}

func (r Range) String() string {
	if r.Start == r.Stop {
		return strconv.Itoa(r.Start)
	}
	return fmt.Sprintf("%d..%d", r.Start, r.Stop)
}

// Ranges is a set of integers. The zero value is an empty set ready to use.
//
// Invariant: ranges are sorted by Start, do not overlap and are not adjacent.
type Ranges struct {
	r []Range
}

// New returns a Ranges instance containing the specified ranges.
func New(ranges ...Range) Ranges {
	var m Ranges
	for _, r := range ranges {
		m.Add(r.Start, r.Stop)
	}
	return m
}

// Add the inclusive range to the set. If stop is less than start the values
// are swapped.
func (m *Ranges) Add(start, stop int) {
	if stop < start {
		start, stop = stop, start
	}

	m.r = append(m.r, Range{Start: start, Stop: stop})
	sort.Slice(m.r, func(i, j int) bool {
		return m.r[i].Start < m.r[j].Start
	})

	// merge overlapping and adjacent ranges
	merged := m.r[:1]
	for _, r := range m.r[1:] {
		last := &merged[len(merged)-1]
		if r.Start <= last.Stop+1 {
			last.Stop = max(last.Stop, r.Stop)
		} else {
			merged = append(merged, r)
		}
	}
	m.r = merged
}

// AddRanges adds every range in o to the set.
func (m *Ranges) AddRanges(o Ranges) {
	for _, r := range o.r {
		m.Add(r.Start, r.Stop)
	}
}

// Remove the inclusive range from the set. If stop is less than start the
// values are swapped.
func (m *Ranges) Remove(start, stop int) {
	if stop < start {
		start, stop = stop, start
	}

	n := make([]Range, 0, len(m.r)+1)
	for _, r := range m.r {
		if r.Stop < start || r.Start > stop {
			n = append(n, r)
			continue
		}
		if r.Start < start {
			n = append(n, Range{Start: r.Start, Stop: start - 1})
		}
		if r.Stop > stop {
			n = append(n, Range{Start: stop + 1, Stop: r.Stop})
		}
	}
	m.r = n
}

// RemoveRanges removes every range in o from the set.
func (m *Ranges) RemoveRanges(o Ranges) {
	for _, r := range o.r {
		m.Remove(r.Start, r.Stop)
	}
}

// Clear empties the set.
func (m *Ranges) Clear() {
	m.r = m.r[:0]
}

// Contains returns true if the value is in the set.
func (m Ranges) Contains(v int) bool {
	i := sort.Search(len(m.r), func(i int) bool {
		return m.r[i].Stop >= v
	})
	return i < len(m.r) && m.r[i].Start <= v
}

// Empty returns true if there are no values in the set.
func (m Ranges) Empty() bool {
	return len(m.r) == 0
}

// Count returns the number of values in the set.
func (m Ranges) Count() int {
	n := 0
	for _, r := range m.r {
		n += r.Stop - r.Start + 1
	}
	return n
}

// Ranges returns a copy of the ranges in the set.
func (m Ranges) Ranges() []Range {
	c := make([]Range, len(m.r))
	copy(c, m.r)
	return c
}

// Each calls the function for every value in the set, in ascending order.
// Iteration stops if the function returns false.
func (m Ranges) Each(fn func(v int) bool) {
	for _, r := range m.r {
		for v := r.Start; v <= r.Stop; v++ {
			if !fn(v) {
				return
			}
		}
	}
}

// Intersect returns the values found in both sets.
func (m Ranges) Intersect(o Ranges) Ranges {
	var n Ranges
	i, j := 0, 0
	for i < len(m.r) && j < len(o.r) {
		start := max(m.r[i].Start, o.r[j].Start)
		stop := min(m.r[i].Stop, o.r[j].Stop)
		if start <= stop {
			n.r = append(n.r, Range{Start: start, Stop: stop})
		}
		if m.r[i].Stop < o.r[j].Stop {
			i++
		} else {
			j++
		}
	}
	return n
}

// Equal returns true if both sets contain the same values.
func (m Ranges) Equal(o Ranges) bool {
	if len(m.r) != len(o.r) {
		return false
	}
	for i := range m.r {
		if m.r[i] != o.r[i] {
			return false
		}
	}
	return true
}

// String returns the canonical text form of the set.
func (m Ranges) String() string {
	s := make([]string, len(m.r))
	for i, r := range m.r {
		s[i] = r.String()
	}
	return strings.Join(s, ",")
}

// ParseString parses the text form of a set. Both ".." and "-" are accepted as
// range separators.
func ParseString(s string) (Ranges, error) {
	var m Ranges
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		r, err := parseRange(part)
		if err != nil {
			return Ranges{}, err
		}
		m.Add(r.Start, r.Stop)
	}
	return m, nil
}

func parseRange(s string) (Range, error) {
	var a, b string

	if i := strings.Index(s, ".."); i >= 0 {
		a, b = s[:i], s[i+2:]
	} else if i := strings.Index(s[1:], "-"); i >= 0 {
		// the first character is skipped so that a leading minus sign is not
		// mistaken for a separator
		a, b = s[:i+1], s[i+2:]
	} else {
		v, err := strconv.Atoi(s)
		if err != nil {
			return Range{}, fmt.Errorf("invalid range (%s)", s)
		}
		return Range{Start: v, Stop: v}, nil
	}

	start, err := strconv.Atoi(a)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range (%s)", s)
	}
	stop, err := strconv.Atoi(b)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range (%s)", s)
	}
	return Range{Start: start, Stop: stop}, nil
}

// IsRangeText returns true if the string could be parsed by ParseString().
// Used by token consumers that need to decide where a list of ranges ends.
func IsRangeText(s string) bool {
	if s == "" {
		return false
	}
	_, err := ParseString(s)
	return err == nil
}
