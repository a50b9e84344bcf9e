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

	"github.com/cmgui/cmgui/curated"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Named is implemented by the objects kept in a Manager.
type Named interface {
	Object
	Name() string
}

// Manager is a collection of named objects of the same type.
type Manager[T Named] struct {
	kind    string
	objects map[string]T
}

func newManager[T Named](kind string) *Manager[T] {
	return &Manager[T]{
		kind:    kind,
		objects: make(map[string]T),
	}
}

// Kind returns the kind of object in the manager. For example, "material".
func (m *Manager[T]) Kind() string {
	return m.kind
}

// Add an object to the manager. Fails if an object with the same name is
// already present.
func (m *Manager[T]) Add(o T) error {
	if err := validName(o.Name()); err != nil {
		return err
	}
	if _, ok := m.objects[o.Name()]; ok {
		return curated.Validatef(ObjectExists, m.kind, o.Name())
	}
	m.objects[o.Name()] = o
	return nil
}

// Find returns the named object.
func (m *Manager[T]) Find(name string) (T, error) {
	o, ok := m.objects[name]
	if !ok {
		return o, curated.Validatef(ObjectNotFound, m.kind, name)
	}
	return o, nil
}

// Remove the named object from the manager. Fails if the object is in use.
func (m *Manager[T]) Remove(name string) error {
	o, err := m.Find(name)
	if err != nil {
		return err
	}
	if o.AccessCount() > 0 {
		return curated.Enginef(ObjectInUse, m.kind, name)
	}
	delete(m.objects, name)
	return nil
}

// Names returns the names of all objects in alphabetical order.
func (m *Manager[T]) Names() []string {
	n := maps.Keys(m.objects)
	slices.Sort(n)
	return n
}

// Len returns the number of objects in the manager.
func (m *Manager[T]) Len() int {
	return len(m.objects)
}

// Each calls fn for every object in alphabetical order.
func (m *Manager[T]) Each(fn func(T)) {
	for _, n := range m.Names() {
		fn(m.objects[n])
	}
}

// RGB is a colour with components in the range zero to one.
type RGB [3]float64

func (c RGB) String() string {
	return fmt.Sprintf("%g %g %g", c[0], c[1], c[2])
}

// Material describes the lighting properties of a surface.
type Material struct {
	Counted

	name string

	Ambient   RGB
	Diffuse   RGB
	Emission  RGB
	Specular  RGB
	Alpha     float64
	Shininess float64
}

// NewMaterial returns a material with default properties.
func NewMaterial(name string) *Material {
	return &Material{
		name:     name,
		Ambient:  RGB{1, 1, 1},
		Diffuse:  RGB{1, 1, 1},
		Emission: RGB{0, 0, 0},
		Specular: RGB{0, 0, 0},
		Alpha:    1,
	}
}

// Name returns the name of the material.
func (m *Material) Name() string {
	return m.name
}

// Describe implements the Object interface.
func (m *Material) Describe() string {
	return fmt.Sprintf("material %s", m.name)
}

func (m *Material) String() string {
	return fmt.Sprintf("%s: ambient %s diffuse %s emission %s specular %s alpha %g shininess %g",
		m.name, m.Ambient, m.Diffuse, m.Emission, m.Specular, m.Alpha, m.Shininess)
}

// List of colour maps used by spectra.
var ColourMaps = []string{"rainbow", "grey", "red", "blue"}

// Spectrum maps a range of scalar values to colours.
type Spectrum struct {
	Counted

	name string

	Minimum   float64
	Maximum   float64
	ColourMap string
}

// NewSpectrum returns a spectrum with default properties.
func NewSpectrum(name string) *Spectrum {
	return &Spectrum{
		name:      name,
		Minimum:   0,
		Maximum:   1,
		ColourMap: ColourMaps[0],
	}
}

// Name returns the name of the spectrum.
func (s *Spectrum) Name() string {
	return s.name
}

// Describe implements the Object interface.
func (s *Spectrum) Describe() string {
	return fmt.Sprintf("spectrum %s", s.name)
}

func (s *Spectrum) String() string {
	return fmt.Sprintf("%s: minimum %g maximum %g colour_map %s", s.name, s.Minimum, s.Maximum, s.ColourMap)
}

// Tessellation controls how finely elements are divided for drawing.
type Tessellation struct {
	Counted

	name string

	MinimumDivisions  []int
	RefinementFactors []int
	CircleDivisions   int
}

// NewTessellation returns a tessellation with default properties.
func NewTessellation(name string) *Tessellation {
	return &Tessellation{
		name:              name,
		MinimumDivisions:  []int{1},
		RefinementFactors: []int{1},
		CircleDivisions:   12,
	}
}

// Name returns the name of the tessellation.
func (t *Tessellation) Name() string {
	return t.name
}

// Describe implements the Object interface.
func (t *Tessellation) Describe() string {
	return fmt.Sprintf("tessellation %s", t.name)
}

func (t *Tessellation) String() string {
	return fmt.Sprintf("%s: minimum_divisions %v refinement_factors %v circle_divisions %d",
		t.name, t.MinimumDivisions, t.RefinementFactors, t.CircleDivisions)
}
