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

package model

import (
	"fmt"
	"strings"

	"github.com/cmgui/cmgui/curated"
	"github.com/cmgui/cmgui/multirange"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Domain identifies one of the two identifier sets of a region.
type Domain int

// List of valid Domain values.
const (
	Nodes Domain = iota
	Elements
)

func (d Domain) String() string {
	switch d {
	case Nodes:
		return "nodes"
	case Elements:
		return "elements"
	}
	return "unknown domain"
}

// ParseDomain converts the command keyword to a Domain.
func ParseDomain(s string) (Domain, bool) {
	switch s {
	case "nodes", "node":
		return Nodes, true
	case "elements", "element":
		return Elements, true
	}
	return Nodes, false
}

// PathSeparator divides the names in a region path.
const PathSeparator = "/"

// Region is a node in the region tree. Regions own fields and the node and
// element identifier sets.
type Region struct {
	Counted

	name     string
	parent   *Region
	children map[string]*Region
	fields   map[string]*Field

	identifiers [2]multirange.Ranges
	selections  [2]multirange.Ranges
}

func newRegion(name string, parent *Region) *Region {
	return &Region{
		name:     name,
		parent:   parent,
		children: make(map[string]*Region),
		fields:   make(map[string]*Field),
	}
}

// Name returns the name of the region. The root region has no name.
func (r *Region) Name() string {
	return r.name
}

// Path returns the absolute path of the region.
func (r *Region) Path() string {
	if r.parent == nil {
		return PathSeparator
	}
	p := r.parent.Path()
	if p == PathSeparator {
		return p + r.name
	}
	return p + PathSeparator + r.name
}

// Describe implements the Object interface.
func (r *Region) Describe() string {
	return fmt.Sprintf("region %s", r.Path())
}

// Parent returns the parent region or nil for the root region.
func (r *Region) Parent() *Region {
	return r.parent
}

// ChildNames returns the names of the child regions in alphabetical order.
func (r *Region) ChildNames() []string {
	n := maps.Keys(r.children)
	slices.Sort(n)
	return n
}

// Child returns the named child region or nil.
func (r *Region) Child(name string) *Region {
	return r.children[name]
}

// Walk calls fn for the region and all its descendants, parents before
// children and children in alphabetical order.
func (r *Region) Walk(fn func(*Region)) {
	fn(r)
	for _, n := range r.ChildNames() {
		r.children[n].Walk(fn)
	}
}

// inUse returns the first object in the region's subtree, including fields,
// that has a non-zero access count.
func (r *Region) inUse() Object {
	var o Object
	r.Walk(func(c *Region) {
		if o != nil {
			return
		}
		if c.InUse() {
			o = c
			return
		}
		for _, n := range c.FieldNames() {
			if c.fields[n].InUse() {
				o = c.fields[n]
				return
			}
		}
	})
	return o
}

// Identifiers returns the identifier set of the domain. The returned value
// can be modified.
func (r *Region) Identifiers(d Domain) *multirange.Ranges {
	return &r.identifiers[d]
}

// Selection returns the selected identifiers of the domain. The returned value
// can be modified but Select() and Unselect() should be preferred because
// they keep the selection inside the identifier set.
func (r *Region) Selection(d Domain) *multirange.Ranges {
	return &r.selections[d]
}

// Define adds the identifiers to the domain.
func (r *Region) Define(d Domain, ids multirange.Ranges) {
	r.identifiers[d].AddRanges(ids)
}

// Undefine removes identifiers from the domain. Removed identifiers are also
// removed from the selection.
func (r *Region) Undefine(d Domain, ids multirange.Ranges) {
	r.identifiers[d].RemoveRanges(ids)
	r.selections[d].RemoveRanges(ids)
}

// Select adds identifiers to the selection. Only identifiers that are defined
// in the region are selected. Returns the identifiers that were selected.
func (r *Region) Select(d Domain, ids multirange.Ranges) multirange.Ranges {
	s := r.identifiers[d].Intersect(ids)
	r.selections[d].AddRanges(s)
	return s
}

// Unselect removes identifiers from the selection.
func (r *Region) Unselect(d Domain, ids multirange.Ranges) {
	r.selections[d].RemoveRanges(ids)
}

// validName checks that the name can be used for a region or field. The
// relative path names "." and ".." are not valid.
func validName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.Contains(name, PathSeparator) || strings.TrimSpace(name) != name {
		return curated.Validatef(InvalidName, name)
	}
	return nil
}

// SplitPath divides a region path into names. Leading, trailing and repeated
// separators are ignored. The path "/" names the root region.
func SplitPath(path string) []string {
	p := strings.Split(path, PathSeparator)
	n := make([]string, 0, len(p))
	for _, s := range p {
		if s != "" {
			n = append(n, s)
		}
	}
	return n
}

// FindRegion returns the region at the path. Paths are relative to the
// region.
func (r *Region) FindRegion(path string) (*Region, error) {
	c := r
	for _, n := range SplitPath(path) {
		if n == "." {
			continue
		}
		if n == ".." {
			if c.parent == nil {
				return nil, curated.Validatef(InvalidRegionPath, path)
			}
			c = c.parent
			continue
		}
		if c = c.children[n]; c == nil {
			return nil, curated.Validatef(RegionNotFound, path)
		}
	}
	return c, nil
}

// CreateRegion creates the region at the path. Intermediate regions are
// created as required. It is an error for the final region to exist already.
func (r *Region) CreateRegion(path string) (*Region, error) {
	names := SplitPath(path)
	if len(names) == 0 {
		return nil, curated.Validatef(RegionExists, PathSeparator)
	}

	c := r
	for i, n := range names {
		if n == "." || n == ".." {
			return nil, curated.Validatef(InvalidRegionPath, path)
		}
		if err := validName(n); err != nil {
			return nil, curated.Errorf("%s: %v", path, err)
		}

		child, ok := c.children[n]
		if !ok {
			child = newRegion(n, c)
			c.children[n] = child
		} else if i == len(names)-1 {
			return nil, curated.Validatef(RegionExists, child.Path())
		}
		c = child
	}

	return c, nil
}

// RemoveRegion removes the region at the path along with all its
// descendants. The root region cannot be removed. Fails if any object in
// the subtree is in use.
func (r *Region) RemoveRegion(path string) error {
	c, err := r.FindRegion(path)
	if err != nil {
		return err
	}
	if c.parent == nil {
		return curated.Validatef(InvalidRegionPath, path)
	}
	if o := c.inUse(); o != nil {
		return curated.Enginef(RegionInUse, o.Describe())
	}

	delete(c.parent.children, c.name)
	c.parent = nil
	return nil
}

// FieldNames returns the names of the fields in alphabetical order.
func (r *Region) FieldNames() []string {
	n := maps.Keys(r.fields)
	slices.Sort(n)
	return n
}

// FindField returns the named field.
func (r *Region) FindField(name string) (*Field, error) {
	f, ok := r.fields[name]
	if !ok {
		return nil, curated.Validatef(FieldNotFound, name)
	}
	return f, nil
}

// DefineField creates a constant field or replaces the values of an existing
// field. A field that is in use cannot be redefined.
func (r *Region) DefineField(name string, values []float64) (*Field, error) {
	if err := validName(name); err != nil {
		return nil, err
	}

	if f, ok := r.fields[name]; ok {
		if f.InUse() {
			return nil, curated.Enginef(FieldInUse, f.Describe())
		}
		f.values = slices.Clone(values)
		return f, nil
	}

	f := &Field{
		name:   name,
		region: r,
		values: slices.Clone(values),
	}
	r.fields[name] = f
	return f, nil
}

// RenameField changes the name of a field. The new name must not be in use
// by another field in the region.
func (r *Region) RenameField(name string, newName string) error {
	f, err := r.FindField(name)
	if err != nil {
		return err
	}
	if err := validName(newName); err != nil {
		return err
	}
	if name == newName {
		return nil
	}
	if _, ok := r.fields[newName]; ok {
		return curated.Validatef(FieldExists, newName)
	}

	delete(r.fields, name)
	f.name = newName
	r.fields[newName] = f
	return nil
}

// DestroyField removes the named field. Fails if the field is in use.
func (r *Region) DestroyField(name string) error {
	f, err := r.FindField(name)
	if err != nil {
		return err
	}
	if f.InUse() {
		return curated.Enginef(FieldInUse, f.Describe())
	}
	delete(r.fields, name)
	f.region = nil
	return nil
}

// Field is a constant field defined on a region.
type Field struct {
	Counted

	name   string
	region *Region
	values []float64
}

// Name returns the name of the field.
func (f *Field) Name() string {
	return f.name
}

// Describe implements the Object interface.
func (f *Field) Describe() string {
	if f.region == nil {
		return fmt.Sprintf("field %s", f.name)
	}
	return fmt.Sprintf("field %s in region %s", f.name, f.region.Path())
}

// Values returns a copy of the field's values.
func (f *Field) Values() []float64 {
	return slices.Clone(f.values)
}

// Components returns the number of values in the field.
func (f *Field) Components() int {
	return len(f.values)
}

// True returns whether the field is considered true for the purpose of a
// conditional. A field is true if any component is non-zero.
func (f *Field) True() bool {
	for _, v := range f.values {
		if v != 0 {
			return true
		}
	}
	return false
}

func (f *Field) String() string {
	s := make([]string, len(f.values))
	for i, v := range f.values {
		s[i] = fmt.Sprintf("%g", v)
	}
	return fmt.Sprintf("%s = constant %s", f.name, strings.Join(s, " "))
}
