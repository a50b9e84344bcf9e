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

package model_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cmgui/cmgui/curated"
	"github.com/cmgui/cmgui/model"
	"github.com/cmgui/cmgui/multirange"
	"github.com/cmgui/cmgui/test"
	"github.com/google/go-cmp/cmp"
)

func TestScope(t *testing.T) {
	s := model.NewStore()

	r, err := s.CreateRegion("heart")
	test.DemandSuccess(t, err)

	scope := model.NewScope()
	model.Acquire(scope, r)
	model.Acquire(scope, r)
	test.ExpectEquality(t, r.AccessCount(), 2)
	test.ExpectEquality(t, scope.Len(), 2)
	test.ExpectEquality(t, len(s.Outstanding()), 1)
	test.ExpectEquality(t, s.Outstanding()[0], "region /heart (2)")

	test.ExpectSuccess(t, scope.Release())
	test.ExpectEquality(t, r.AccessCount(), 0)
	test.ExpectEquality(t, len(s.Outstanding()), 0)

	// releasing again has no effect
	test.ExpectSuccess(t, scope.Release())
	test.ExpectEquality(t, r.AccessCount(), 0)

	// deaccess without access
	err = model.Deaccess(r)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, model.AccessUnderflow))
	test.ExpectEquality(t, r.AccessCount(), 0)
}

func TestRegions(t *testing.T) {
	s := model.NewStore()

	r, err := s.CreateRegion("/body/heart/left")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.Path(), "/body/heart/left")
	test.ExpectEquality(t, r.Name(), "left")

	// intermediate regions are created
	b, err := s.FindRegion("body")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b.Path(), "/body")

	_, err = s.CreateRegion("body/heart/right")
	test.ExpectSuccess(t, err)

	_, err = s.CreateRegion("body/heart")
	test.ExpectSuccess(t, curated.Is(err, model.RegionExists))

	_, err = s.CreateRegion("/")
	test.ExpectFailure(t, err)

	if diff := cmp.Diff([]string{"left", "right"}, r.Parent().ChildNames()); diff != "" {
		t.Errorf("unexpected children (-want +got):\n%s", diff)
	}

	// relative paths
	l, err := b.FindRegion("heart/../heart/./left")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, l == r)

	_, err = s.FindRegion("body/lung")
	test.ExpectSuccess(t, curated.Is(err, model.RegionNotFound))
	test.ExpectEquality(t, curated.KindOf(err), curated.KindValidation)

	_, err = s.FindRegion("..")
	test.ExpectSuccess(t, curated.Is(err, model.InvalidRegionPath))

	root, err := s.FindRegion("/")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, root == s.Root())

	regions, _ := s.Count()
	test.ExpectEquality(t, regions, 5)
}

func TestRemoveRegion(t *testing.T) {
	s := model.NewStore()

	r, err := s.CreateRegion("body/heart")
	test.DemandSuccess(t, err)
	f, err := r.DefineField("temperature", []float64{37})
	test.DemandSuccess(t, err)

	// a field in use anywhere in the subtree prevents removal
	scope := model.NewScope()
	model.Acquire(scope, f)
	err = s.RemoveRegion("body")
	test.ExpectSuccess(t, curated.Is(err, model.RegionInUse))
	test.ExpectEquality(t, curated.KindOf(err), curated.KindEngine)
	test.ExpectSuccess(t, scope.Release())

	test.ExpectSuccess(t, s.RemoveRegion("body"))
	_, err = s.FindRegion("body/heart")
	test.ExpectFailure(t, err)

	test.ExpectFailure(t, s.RemoveRegion("/"))
	test.ExpectFailure(t, s.RemoveRegion("body"))
}

func TestFields(t *testing.T) {
	s := model.NewStore()
	r := s.Root()

	f, err := r.DefineField("temperature", []float64{37})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, f.Components(), 1)
	test.ExpectSuccess(t, f.True())
	test.ExpectEquality(t, f.String(), "temperature = constant 37")

	// redefinition
	f2, err := r.DefineField("temperature", []float64{0, 0})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, f == f2)
	test.ExpectFailure(t, f.True())

	_, err = r.DefineField("pressure", []float64{1})
	test.DemandSuccess(t, err)

	err = r.RenameField("pressure", "temperature")
	test.ExpectSuccess(t, curated.Is(err, model.FieldExists))

	test.ExpectSuccess(t, r.RenameField("pressure", "stress"))
	if diff := cmp.Diff([]string{"stress", "temperature"}, r.FieldNames()); diff != "" {
		t.Errorf("unexpected fields (-want +got):\n%s", diff)
	}

	scope := model.NewScope()
	model.Acquire(scope, f)
	err = r.DestroyField("temperature")
	test.ExpectSuccess(t, curated.Is(err, model.FieldInUse))
	_, err = r.DefineField("temperature", []float64{1})
	test.ExpectSuccess(t, curated.Is(err, model.FieldInUse))
	test.ExpectSuccess(t, scope.Release())

	test.ExpectSuccess(t, r.DestroyField("temperature"))
	_, err = r.FindField("temperature")
	test.ExpectSuccess(t, curated.Is(err, model.FieldNotFound))

	_, err = r.DefineField("a/b", nil)
	test.ExpectSuccess(t, curated.Is(err, model.InvalidName))
}

func TestSelection(t *testing.T) {
	s := model.NewStore()
	r := s.Root()

	r.Define(model.Nodes, multirange.New(multirange.Range{Start: 1, Stop: 10}))

	sel := r.Select(model.Nodes, multirange.New(multirange.Range{Start: 5, Stop: 20}))
	test.ExpectEquality(t, sel.String(), "5..10")
	test.ExpectEquality(t, r.Selection(model.Nodes).String(), "5..10")
	test.ExpectSuccess(t, r.Selection(model.Elements).Empty())

	r.Unselect(model.Nodes, multirange.New(multirange.Range{Start: 7, Stop: 7}))
	test.ExpectEquality(t, r.Selection(model.Nodes).String(), "5..6,8..10")

	r.Undefine(model.Nodes, multirange.New(multirange.Range{Start: 9, Stop: 10}))
	test.ExpectEquality(t, r.Identifiers(model.Nodes).String(), "1..8")
	test.ExpectEquality(t, r.Selection(model.Nodes).String(), "5..6,8")

	d, ok := model.ParseDomain("elements")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, d, model.Elements)
	_, ok = model.ParseDomain("faces")
	test.ExpectFailure(t, ok)
}

func TestManager(t *testing.T) {
	s := model.NewStore()

	test.ExpectEquality(t, s.Materials.Len(), 1)
	test.ExpectSuccess(t, s.Materials.Add(model.NewMaterial("bone")))

	err := s.Materials.Add(model.NewMaterial("bone"))
	test.ExpectSuccess(t, curated.Is(err, model.ObjectExists))
	test.ExpectEquality(t, err.Error(), "material already exists: bone")

	m, err := s.Materials.Find("bone")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Alpha, 1.0)

	if diff := cmp.Diff([]string{"bone", "default"}, s.Materials.Names()); diff != "" {
		t.Errorf("unexpected names (-want +got):\n%s", diff)
	}

	scope := model.NewScope()
	model.Acquire(scope, m)
	err = s.Materials.Remove("bone")
	test.ExpectSuccess(t, curated.Is(err, model.ObjectInUse))
	test.ExpectEquality(t, len(s.Outstanding()), 1)
	test.ExpectSuccess(t, scope.Release())

	test.ExpectSuccess(t, s.Materials.Remove("bone"))
	_, err = s.Materials.Find("bone")
	test.ExpectSuccess(t, curated.Is(err, model.ObjectNotFound))
}

func TestExportImport(t *testing.T) {
	s := model.NewStore()

	r, err := s.CreateRegion("body/heart")
	test.DemandSuccess(t, err)
	r.Define(model.Nodes, multirange.New(multirange.Range{Start: 1, Stop: 8}))
	r.Define(model.Elements, multirange.New(multirange.Range{Start: 1, Stop: 1}))
	_, err = r.DefineField("temperature", []float64{37, 38})
	test.DemandSuccess(t, err)
	_, err = s.CreateRegion("body/heart/left")
	test.DemandSuccess(t, err)

	var buf bytes.Buffer
	test.DemandSuccess(t, s.ExportRegion(&buf, "body"))
	test.ExpectSuccess(t, strings.Contains(buf.String(), "nodes: 1..8"))
	test.ExpectSuccess(t, strings.Contains(buf.String(), "values: [37, 38]"))

	// import into a new store under a different path
	s2 := model.NewStore()
	test.DemandSuccess(t, s2.ImportRegion(bytes.NewReader(buf.Bytes()), "copy"))

	h, err := s2.FindRegion("copy/heart")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Identifiers(model.Nodes).String(), "1..8")
	test.ExpectEquality(t, h.Identifiers(model.Elements).String(), "1")

	f, err := h.FindField("temperature")
	test.DemandSuccess(t, err)
	if diff := cmp.Diff([]float64{37, 38}, f.Values()); diff != "" {
		t.Errorf("unexpected values (-want +got):\n%s", diff)
	}

	_, err = s2.FindRegion("copy/heart/left")
	test.ExpectSuccess(t, err)

	// a field in use prevents import and nothing is changed
	scope := model.NewScope()
	model.Acquire(scope, f)
	h.Undefine(model.Nodes, multirange.New(multirange.Range{Start: 1, Stop: 8}))
	err = s2.ImportRegion(bytes.NewReader(buf.Bytes()), "copy")
	test.ExpectSuccess(t, curated.Is(err, model.FieldInUse))
	test.ExpectSuccess(t, h.Identifiers(model.Nodes).Empty())
	test.ExpectSuccess(t, scope.Release())

	// malformed documents
	err = s2.ImportRegion(strings.NewReader("name: x\nnodes: 1..y\n"), "bad")
	test.ExpectFailure(t, err)
	_, err = s2.FindRegion("bad")
	test.ExpectFailure(t, err)

	err = s2.ImportRegion(strings.NewReader("name: x\nwibble: 1\n"), "bad")
	test.ExpectSuccess(t, curated.Is(err, model.ImportError))

	// child regions and fields must be path addressable
	s3 := model.NewStore()
	l, err := s3.CreateRegion("heart")
	test.DemandSuccess(t, err)

	for _, doc := range []string{
		"name: x\nregions:\n  - name: \"..\"\n",
		"name: x\nregions:\n  - name: \".\"\n",
		"name: x\nfields:\n  - name: \"..\"\n    values: [1]\n",
	} {
		err = s3.ImportRegion(strings.NewReader(doc), "heart")
		test.ExpectSuccess(t, curated.Has(err, model.InvalidName), doc)
	}

	if diff := cmp.Diff([]string{}, l.ChildNames()); diff != "" {
		t.Error(diff)
	}
	test.ExpectEquality(t, len(l.FieldNames()), 0)
}

func TestWriteGraph(t *testing.T) {
	s := model.NewStore()
	_, err := s.CreateRegion("body/heart")
	test.DemandSuccess(t, err)

	var buf bytes.Buffer
	s.WriteGraph(&buf)
	test.ExpectSuccess(t, strings.Contains(buf.String(), "digraph"))
}
