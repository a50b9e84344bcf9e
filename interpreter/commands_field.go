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
	"github.com/cmgui/cmgui/command"
	"github.com/cmgui/cmgui/console"
	"github.com/cmgui/cmgui/curated"
	"github.com/cmgui/cmgui/model"
)

// Sentinel errors for the field commands.
const (
	NoFieldName   = "field name required"
	NoFieldValues = "constant values required"
	NoNewName     = "rename requires a new name"
)

type defineFieldOptions struct {
	name   string
	values []float64
	region string
}

func (o *defineFieldOptions) table() *command.Table {
	t := command.NewTable()
	t.Empty = command.EmptyRequired
	mustAdd(t.Add("constant", command.VariableDoubleVector(&o.values)))
	mustAdd(t.Add("region", command.Labelled("PATH", command.String(&o.region))))
	mustAdd(t.AddDefault(once("NAME", &o.name)))
	return t
}

func (intr *Interpreter) gfxDefineField(tokens *command.Tokens) (err error) {
	scope := model.NewScope()
	defer release(scope, &err)

	opts := defineFieldOptions{region: model.PathSeparator}
	if err := opts.table().MultiParse(tokens); err != nil {
		return err
	}
	if opts.name == "" {
		return curated.Validatef(NoFieldName)
	}
	if len(opts.values) == 0 {
		return curated.Validatef(NoFieldValues)
	}

	r, err := intr.store.FindRegion(opts.region)
	if err != nil {
		return err
	}
	r = model.Acquire(scope, r)

	_, err = r.DefineField(opts.name, opts.values)
	return err
}

type modifyFieldOptions struct {
	name    string
	newName string
	region  string
}

func (o *modifyFieldOptions) table() *command.Table {
	t := command.NewTable()
	t.Empty = command.EmptyRequired
	mustAdd(t.Add("rename", command.Labelled("NEW_NAME", command.String(&o.newName))))
	mustAdd(t.Add("region", command.Labelled("PATH", command.String(&o.region))))
	mustAdd(t.AddDefault(once("NAME", &o.name)))
	return t
}

func (intr *Interpreter) gfxModifyField(tokens *command.Tokens) (err error) {
	scope := model.NewScope()
	defer release(scope, &err)

	opts := modifyFieldOptions{region: model.PathSeparator}
	if err := opts.table().MultiParse(tokens); err != nil {
		return err
	}
	if opts.name == "" {
		return curated.Validatef(NoFieldName)
	}
	if opts.newName == "" {
		return curated.Validatef(NoNewName)
	}

	r, err := intr.store.FindRegion(opts.region)
	if err != nil {
		return err
	}
	r = model.Acquire(scope, r)

	return r.RenameField(opts.name, opts.newName)
}

type fieldOptions struct {
	name   string
	region string
}

func (o *fieldOptions) table() *command.Table {
	t := command.NewTable()
	mustAdd(t.Add("region", command.Labelled("PATH", command.String(&o.region))))
	mustAdd(t.AddDefault(once("NAME", &o.name)))
	return t
}

func (intr *Interpreter) gfxDestroyField(tokens *command.Tokens) (err error) {
	scope := model.NewScope()
	defer release(scope, &err)

	opts := fieldOptions{region: model.PathSeparator}
	if err := opts.table().MultiParse(tokens); err != nil {
		return err
	}
	if opts.name == "" {
		return curated.Validatef(NoFieldName)
	}

	r, err := intr.store.FindRegion(opts.region)
	if err != nil {
		return err
	}
	r = model.Acquire(scope, r)

	return r.DestroyField(opts.name)
}

func (intr *Interpreter) gfxListField(tokens *command.Tokens) (err error) {
	scope := model.NewScope()
	defer release(scope, &err)

	opts := fieldOptions{region: model.PathSeparator}
	if err := opts.table().MultiParse(tokens); err != nil {
		return err
	}

	r, err := intr.store.FindRegion(opts.region)
	if err != nil {
		return err
	}
	r = model.Acquire(scope, r)

	if opts.name != "" {
		f, err := r.FindField(opts.name)
		if err != nil {
			return err
		}
		f = model.Acquire(scope, f)
		intr.printLine(console.StyleFeedback, "%s", f)
		return nil
	}

	names := r.FieldNames()
	if len(names) == 0 {
		intr.printLine(console.StyleFeedback, "%s: no fields", r.Path())
		return nil
	}
	for _, n := range names {
		f, err := r.FindField(n)
		if err != nil {
			return err
		}
		intr.printLine(console.StyleFeedback, "%s", model.Acquire(scope, f))
	}

	return nil
}
