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
	"io"

	"github.com/bradleyjkemp/memviz"
)

// Store is the root of the object model.
type Store struct {
	root *Region

	Materials     *Manager[*Material]
	Spectra       *Manager[*Spectrum]
	Tessellations *Manager[*Tessellation]
}

// NewStore is the preferred method of initialisation for the Store type. The
// new store contains the default material, spectrum and tessellation.
func NewStore() *Store {
	s := &Store{
		root:          newRegion("", nil),
		Materials:     newManager[*Material]("material"),
		Spectra:       newManager[*Spectrum]("spectrum"),
		Tessellations: newManager[*Tessellation]("tessellation"),
	}

	_ = s.Materials.Add(NewMaterial("default"))
	_ = s.Spectra.Add(NewSpectrum("default"))
	_ = s.Tessellations.Add(NewTessellation("default"))

	return s
}

// Root returns the root region.
func (s *Store) Root() *Region {
	return s.root
}

// FindRegion returns the region at the path. Paths are relative to the root
// region.
func (s *Store) FindRegion(path string) (*Region, error) {
	return s.root.FindRegion(path)
}

// CreateRegion creates the region at the path.
func (s *Store) CreateRegion(path string) (*Region, error) {
	return s.root.CreateRegion(path)
}

// RemoveRegion removes the region at the path.
func (s *Store) RemoveRegion(path string) error {
	return s.root.RemoveRegion(path)
}

// Outstanding returns a description of every object with a non-zero access
// count. The access count is included in the description.
func (s *Store) Outstanding() []string {
	out := make([]string, 0)

	add := func(o Object) {
		if o.AccessCount() != 0 {
			out = append(out, fmt.Sprintf("%s (%d)", o.Describe(), o.AccessCount()))
		}
	}

	s.root.Walk(func(r *Region) {
		add(r)
		for _, n := range r.FieldNames() {
			add(r.fields[n])
		}
	})
	s.Materials.Each(func(m *Material) { add(m) })
	s.Spectra.Each(func(sp *Spectrum) { add(sp) })
	s.Tessellations.Each(func(t *Tessellation) { add(t) })

	return out
}

// Count returns the number of regions and the number of fields in the store.
func (s *Store) Count() (regions int, fields int) {
	s.root.Walk(func(r *Region) {
		regions++
		fields += len(r.fields)
	})
	return regions, fields
}

// WriteGraph writes a Graphviz description of the store's object graph.
func (s *Store) WriteGraph(w io.Writer) {
	memviz.Map(w, s)
}
