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
	"io"

	"github.com/cmgui/cmgui/curated"
	"github.com/cmgui/cmgui/multirange"
	"gopkg.in/yaml.v3"
)

// regionDoc is the YAML representation of a region and its descendants.
type regionDoc struct {
	Name     string      `yaml:"name"`
	Nodes    string      `yaml:"nodes,omitempty"`
	Elements string      `yaml:"elements,omitempty"`
	Fields   []fieldDoc  `yaml:"fields,omitempty"`
	Regions  []regionDoc `yaml:"regions,omitempty"`
}

type fieldDoc struct {
	Name   string    `yaml:"name"`
	Values []float64 `yaml:"values,flow"`
}

func newRegionDoc(r *Region) regionDoc {
	d := regionDoc{
		Name:     r.name,
		Nodes:    r.identifiers[Nodes].String(),
		Elements: r.identifiers[Elements].String(),
	}
	for _, n := range r.FieldNames() {
		d.Fields = append(d.Fields, fieldDoc{Name: n, Values: r.fields[n].Values()})
	}
	for _, n := range r.ChildNames() {
		d.Regions = append(d.Regions, newRegionDoc(r.children[n]))
	}
	return d
}

// ExportRegion writes the region at the path, and all its descendants, to the
// writer as YAML. Selections are not exported.
func (s *Store) ExportRegion(w io.Writer, path string) error {
	r, err := s.FindRegion(path)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newRegionDoc(r)); err != nil {
		return curated.Enginef(ExportError, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Enginef(ExportError, err)
	}

	return nil
}

// ImportRegion reads YAML written by ExportRegion() and merges it into the
// region at the path. The region is created if it does not exist. The name
// of the top-level region in the YAML is ignored.
//
// The document is checked before any change is made to the store.
func (s *Store) ImportRegion(rd io.Reader, path string) error {
	var d regionDoc

	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return curated.Enginef(ImportError, err)
	}

	if err := d.check(true); err != nil {
		return curated.Errorf(ImportError, err)
	}

	r, err := s.FindRegion(path)
	if err != nil {
		if !curated.Is(err, RegionNotFound) {
			return err
		}
		if r, err = s.CreateRegion(path); err != nil {
			return err
		}
	}

	// fields in use cannot be redefined
	if err := d.checkFields(r); err != nil {
		return err
	}

	d.merge(r)
	return nil
}

// check the document for errors. the top-level name is not checked.
func (d regionDoc) check(top bool) error {
	if !top {
		if err := validName(d.Name); err != nil {
			return err
		}
	}
	if _, err := multirange.ParseString(d.Nodes); err != nil {
		return curated.Validatef("nodes: %v", err)
	}
	if _, err := multirange.ParseString(d.Elements); err != nil {
		return curated.Validatef("elements: %v", err)
	}
	for _, f := range d.Fields {
		if err := validName(f.Name); err != nil {
			return err
		}
	}
	for _, c := range d.Regions {
		if err := c.check(false); err != nil {
			return err
		}
	}
	return nil
}

func (d regionDoc) checkFields(r *Region) error {
	if r == nil {
		return nil
	}
	for _, f := range d.Fields {
		if e, ok := r.fields[f.Name]; ok && e.InUse() {
			return curated.Enginef(FieldInUse, e.Describe())
		}
	}
	for _, c := range d.Regions {
		if err := c.checkFields(r.children[c.Name]); err != nil {
			return err
		}
	}
	return nil
}

func (d regionDoc) merge(r *Region) {
	// errors have already been checked for
	n, _ := multirange.ParseString(d.Nodes)
	r.Define(Nodes, n)
	e, _ := multirange.ParseString(d.Elements)
	r.Define(Elements, e)

	for _, f := range d.Fields {
		_, _ = r.DefineField(f.Name, f.Values)
	}

	for _, c := range d.Regions {
		child, ok := r.children[c.Name]
		if !ok {
			child = newRegion(c.Name, r)
			r.children[c.Name] = child
		}
		c.merge(child)
	}
}
