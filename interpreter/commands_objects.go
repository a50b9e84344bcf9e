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

package interpreter

import (
	"fmt"

	"github.com/cmgui/cmgui/command"
	"github.com/cmgui/cmgui/console"
	"github.com/cmgui/cmgui/curated"
	"github.com/cmgui/cmgui/model"
)

// Sentinel errors for the graphics object commands.
const (
	NoObjectName     = "%s name required"
	ComponentRange   = "%s must be in the range 0 to 1"
	InvalidDivisions = "%s must be positive"
	DefaultObject    = "cannot destroy the default %s"
	InvalidSpectrum  = "minimum (%g) greater than maximum (%g)"
)

const defaultObjectName = "default"

type materialOptions struct {
	name      string
	ambient   model.RGB
	diffuse   model.RGB
	emission  model.RGB
	specular  model.RGB
	alpha     float64
	shininess float64
}

func newMaterialOptions(m *model.Material) materialOptions {
	return materialOptions{
		ambient:   m.Ambient,
		diffuse:   m.Diffuse,
		emission:  m.Emission,
		specular:  m.Specular,
		alpha:     m.Alpha,
		shininess: m.Shininess,
	}
}

func (o *materialOptions) table() *command.Table {
	t := command.NewTable()
	t.Empty = command.EmptyRequired
	mustAdd(t.Add("ambient", command.Labelled("R G B", command.DoubleVector(o.ambient[:]))))
	mustAdd(t.Add("diffuse", command.Labelled("R G B", command.DoubleVector(o.diffuse[:]))))
	mustAdd(t.Add("emission", command.Labelled("R G B", command.DoubleVector(o.emission[:]))))
	mustAdd(t.Add("specular", command.Labelled("R G B", command.DoubleVector(o.specular[:]))))
	mustAdd(t.Add("alpha", command.UnitInterval(&o.alpha)))
	mustAdd(t.Add("shininess", command.UnitInterval(&o.shininess)))
	mustAdd(t.AddDefault(once("NAME", &o.name)))
	return t
}

func (o *materialOptions) validate() error {
	for _, c := range []struct {
		name string
		rgb  model.RGB
	}{
		{"ambient", o.ambient},
		{"diffuse", o.diffuse},
		{"emission", o.emission},
		{"specular", o.specular},
	} {
		for _, v := range c.rgb {
			if v < 0 || v > 1 {
				return curated.Validatef(ComponentRange, c.name)
			}
		}
	}
	return nil
}

func (o *materialOptions) apply(m *model.Material) {
	m.Ambient = o.ambient
	m.Diffuse = o.diffuse
	m.Emission = o.emission
	m.Specular = o.specular
	m.Alpha = o.alpha
	m.Shininess = o.shininess
}

func (intr *Interpreter) gfxCreateMaterial(tokens *command.Tokens) error {
	opts := newMaterialOptions(model.NewMaterial(""))
	if err := opts.table().MultiParse(tokens); err != nil {
		return err
	}
	if opts.name == "" {
		return curated.Validatef(NoObjectName, intr.store.Materials.Kind())
	}
	if err := opts.validate(); err != nil {
		return err
	}

	m := model.NewMaterial(opts.name)
	opts.apply(m)
	return intr.store.Materials.Add(m)
}

// gfxModifyMaterial parses the options twice. once to find the name of the
// material and again on top of the current properties of the material. the
// material is only changed if every option is valid.
func (intr *Interpreter) gfxModifyMaterial(tokens *command.Tokens) (err error) {
	scope := model.NewScope()
	defer release(scope, &err)

	mark := tokens.Mark()

	var probe materialOptions
	if err := probe.table().MultiParse(tokens); err != nil {
		return err
	}
	if probe.name == "" {
		return curated.Validatef(NoObjectName, intr.store.Materials.Kind())
	}

	m, err := intr.store.Materials.Find(probe.name)
	if err != nil {
		return err
	}
	m = model.Acquire(scope, m)

	tokens.Rewind(mark)

	opts := newMaterialOptions(m)
	if err := opts.table().MultiParse(tokens); err != nil {
		return err
	}
	if err := opts.validate(); err != nil {
		return err
	}

	opts.apply(m)
	return nil
}

type nameOptions struct {
	name string
}

func (o *nameOptions) table() *command.Table {
	t := command.NewTable()
	mustAdd(t.AddDefault(once("NAME", &o.name)))
	return t
}

func (intr *Interpreter) gfxDestroyMaterial(tokens *command.Tokens) error {
	var opts nameOptions
	if err := opts.table().MultiParse(tokens); err != nil {
		return err
	}
	if opts.name == "" {
		return curated.Validatef(NoObjectName, intr.store.Materials.Kind())
	}
	if opts.name == defaultObjectName {
		return curated.Validatef(DefaultObject, intr.store.Materials.Kind())
	}
	return intr.store.Materials.Remove(opts.name)
}

type spectrumOptions struct {
	name      string
	minimum   float64
	maximum   float64
	colourMap string
}

func (o *spectrumOptions) table() *command.Table {
	t := command.NewTable()
	t.Empty = command.EmptyRequired
	mustAdd(t.Add("minimum", command.Double(&o.minimum)))
	mustAdd(t.Add("maximum", command.Double(&o.maximum)))
	mustAdd(t.Add("colour_map", command.Enum(&o.colourMap, model.ColourMaps...)))
	mustAdd(t.AddDefault(once("NAME", &o.name)))
	return t
}

func (intr *Interpreter) gfxCreateSpectrum(tokens *command.Tokens) error {
	def := model.NewSpectrum("")
	opts := spectrumOptions{
		minimum:   def.Minimum,
		maximum:   def.Maximum,
		colourMap: def.ColourMap,
	}
	if err := opts.table().MultiParse(tokens); err != nil {
		return err
	}
	if opts.name == "" {
		return curated.Validatef(NoObjectName, intr.store.Spectra.Kind())
	}
	if opts.minimum > opts.maximum {
		return curated.Validatef(InvalidSpectrum, opts.minimum, opts.maximum)
	}

	s := model.NewSpectrum(opts.name)
	s.Minimum = opts.minimum
	s.Maximum = opts.maximum
	s.ColourMap = opts.colourMap
	return intr.store.Spectra.Add(s)
}

// the smallest number of divisions that describes a circle
const minCircleDivisions = 3

type tessellationOptions struct {
	name              string
	minimumDivisions  []int
	refinementFactors []int
	circleDivisions   int
}

func (o *tessellationOptions) table() *command.Table {
	t := command.NewTable()
	t.Empty = command.EmptyRequired
	mustAdd(t.Add("minimum_divisions", command.VariableIntVector(&o.minimumDivisions)))
	mustAdd(t.Add("refinement_factors", command.VariableIntVector(&o.refinementFactors)))
	mustAdd(t.Add("circle_divisions", command.Number(&o.circleDivisions,
		func(v int) bool { return v >= minCircleDivisions },
		fmt.Sprintf(">= %d", minCircleDivisions))))
	mustAdd(t.AddDefault(once("NAME", &o.name)))
	return t
}

func (intr *Interpreter) gfxCreateTessellation(tokens *command.Tokens) error {
	def := model.NewTessellation("")
	opts := tessellationOptions{
		minimumDivisions:  def.MinimumDivisions,
		refinementFactors: def.RefinementFactors,
		circleDivisions:   def.CircleDivisions,
	}
	if err := opts.table().MultiParse(tokens); err != nil {
		return err
	}
	if opts.name == "" {
		return curated.Validatef(NoObjectName, intr.store.Tessellations.Kind())
	}
	for _, c := range []struct {
		name string
		v    []int
	}{
		{"minimum_divisions", opts.minimumDivisions},
		{"refinement_factors", opts.refinementFactors},
	} {
		for _, v := range c.v {
			if v <= 0 {
				return curated.Validatef(InvalidDivisions, c.name)
			}
		}
	}

	t := model.NewTessellation(opts.name)
	t.MinimumDivisions = opts.minimumDivisions
	t.RefinementFactors = opts.refinementFactors
	t.CircleDivisions = opts.circleDivisions
	return intr.store.Tessellations.Add(t)
}

type listable interface {
	model.Named
	fmt.Stringer
}

// gfxListObjects returns the handler that lists the objects in the manager.
// a single object can be listed by naming it.
func gfxListObjects[T listable](intr *Interpreter, m *model.Manager[T]) command.Handler {
	return func(tokens *command.Tokens) (err error) {
		scope := model.NewScope()
		defer release(scope, &err)

		var opts nameOptions
		if err := opts.table().MultiParse(tokens); err != nil {
			return err
		}

		if opts.name != "" {
			o, err := m.Find(opts.name)
			if err != nil {
				return err
			}
			intr.printLine(console.StyleFeedback, "%s", model.Acquire(scope, o))
			return nil
		}

		m.Each(func(o T) {
			intr.printLine(console.StyleFeedback, "%s", model.Acquire(scope, o))
		})
		return nil
	}
}
