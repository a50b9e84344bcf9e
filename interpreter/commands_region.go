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
	"strings"

	"github.com/cmgui/cmgui/command"
	"github.com/cmgui/cmgui/console"
	"github.com/cmgui/cmgui/curated"
	"github.com/cmgui/cmgui/model"
	"github.com/cmgui/cmgui/multirange"
)

// NoIdentifiers is returned when a command requires identifiers and none are
// given.
const NoIdentifiers = "no %s specified"

type regionOptions struct {
	path string
}

func (o *regionOptions) table() *command.Table {
	t := command.NewTable()
	t.Empty = command.EmptyRequired
	mustAdd(t.AddDefault(once("PATH", &o.path)))
	return t
}

func (intr *Interpreter) gfxCreateRegion(tokens *command.Tokens) error {
	var opts regionOptions
	if err := opts.table().MultiParse(tokens); err != nil {
		return err
	}
	_, err := intr.store.CreateRegion(opts.path)
	return err
}

func (intr *Interpreter) gfxDestroyRegion(tokens *command.Tokens) error {
	var opts regionOptions
	if err := opts.table().MultiParse(tokens); err != nil {
		return err
	}
	return intr.store.RemoveRegion(opts.path)
}

type listRegionOptions struct {
	path      string
	recursive bool
}

func (o *listRegionOptions) table() *command.Table {
	t := command.NewTable()
	mustAdd(t.Add("recursive", command.Flag(&o.recursive)))
	mustAdd(t.AddDefault(once("PATH", &o.path)))
	return t
}

func (intr *Interpreter) gfxListRegion(tokens *command.Tokens) (err error) {
	scope := model.NewScope()
	defer release(scope, &err)

	opts := listRegionOptions{path: model.PathSeparator}
	if err := opts.table().MultiParse(tokens); err != nil {
		return err
	}

	r, err := intr.store.FindRegion(opts.path)
	if err != nil {
		return err
	}
	r = model.Acquire(scope, r)

	if !opts.recursive {
		intr.printLine(console.StyleFeedback, "%s", r.Path())
		for _, c := range r.ChildNames() {
			intr.printLine(console.StyleFeedback, "  %s", c)
		}
		return nil
	}

	depth := len(model.SplitPath(r.Path()))
	r.Walk(func(c *model.Region) {
		indent := strings.Repeat("  ", len(model.SplitPath(c.Path()))-depth)
		if c == r {
			intr.printLine(console.StyleFeedback, "%s", c.Path())
		} else {
			intr.printLine(console.StyleFeedback, "%s%s", indent, c.Name())
		}
	})

	return nil
}

type identifierOptions struct {
	region string
	ids    multirange.Ranges
}

func (o *identifierOptions) table() *command.Table {
	t := command.NewTable()
	t.Empty = command.EmptyRequired
	mustAdd(t.Add("region", command.Labelled("PATH", command.String(&o.region))))
	mustAdd(t.AddDefault(command.MultiRange(&o.ids)))
	return t
}

// gfxDefineIdentifiers returns the handler for "gfx create nodes" and "gfx
// create elements". undefine is true for the destroy commands.
func (intr *Interpreter) gfxDefineIdentifiers(d model.Domain, undefine bool) command.Handler {
	return func(tokens *command.Tokens) (err error) {
		scope := model.NewScope()
		defer release(scope, &err)

		opts := identifierOptions{region: model.PathSeparator}
		if err := opts.table().MultiParse(tokens); err != nil {
			return err
		}
		if opts.ids.Empty() {
			return curated.Validatef(NoIdentifiers, d)
		}

		r, err := intr.store.FindRegion(opts.region)
		if err != nil {
			return err
		}
		r = model.Acquire(scope, r)

		if undefine {
			r.Undefine(d, opts.ids)
		} else {
			r.Define(d, opts.ids)
		}

		return nil
	}
}

type selectOptions struct {
	region      string
	ids         multirange.Ranges
	all         bool
	conditional string
	add         bool
	remove      bool
}

func (o *selectOptions) table() *command.Table {
	t := command.NewTable()
	t.AddHelp("select by identifier. with no identifiers every identifier is selected")
	mustAdd(t.Add("all", command.Flag(&o.all)))
	mustAdd(t.Add("region", command.Labelled("PATH", command.String(&o.region))))
	mustAdd(t.Add("conditional_field", command.Labelled("FIELD", command.String(&o.conditional))))
	mustAdd(t.Add("add", command.Flag(&o.add)))
	mustAdd(t.Add("remove", command.Flag(&o.remove)))
	mustAdd(t.AddDefault(command.MultiRange(&o.ids)))
	return t
}

// gfxSelect returns the handler for the select and unselect commands.
func (intr *Interpreter) gfxSelect(d model.Domain, unselect bool) command.Handler {
	return func(tokens *command.Tokens) (err error) {
		scope := model.NewScope()
		defer release(scope, &err)

		opts := selectOptions{region: model.PathSeparator}
		if err := opts.table().MultiParse(tokens); err != nil {
			return err
		}
		if err := command.AtMostOne([]string{"add", "remove"}, opts.add, opts.remove); err != nil {
			return err
		}
		if err := command.AtMostOne([]string{"all", "identifiers"}, opts.all, !opts.ids.Empty()); err != nil {
			return err
		}

		r, err := intr.store.FindRegion(opts.region)
		if err != nil {
			return err
		}
		r = model.Acquire(scope, r)

		ids := opts.ids
		if ids.Empty() {
			ids = *r.Identifiers(d)
		}

		// a constant field selects everything or nothing
		if opts.conditional != "" {
			f, err := r.FindField(opts.conditional)
			if err != nil {
				return err
			}
			f = model.Acquire(scope, f)
			if !f.True() {
				ids = multirange.Ranges{}
			}
		}

		if unselect != opts.remove {
			r.Unselect(d, ids)
			intr.printLine(console.StyleFeedback, "%d %s unselected", ids.Count(), d)
			return nil
		}

		s := r.Select(d, ids)
		intr.printLine(console.StyleFeedback, "%d %s selected", s.Count(), d)
		return nil
	}
}

type listIdentifierOptions struct {
	region   string
	selected bool
	all      bool
}

func (o *listIdentifierOptions) table() *command.Table {
	t := command.NewTable()
	mustAdd(t.Add("region", command.Labelled("PATH", command.String(&o.region))))
	mustAdd(t.Add("selected", command.Flag(&o.selected)))
	mustAdd(t.Add("all", command.Flag(&o.all)))
	return t
}

func (intr *Interpreter) gfxListIdentifiers(d model.Domain) command.Handler {
	return func(tokens *command.Tokens) (err error) {
		scope := model.NewScope()
		defer release(scope, &err)

		opts := listIdentifierOptions{region: model.PathSeparator}
		if err := opts.table().MultiParse(tokens); err != nil {
			return err
		}
		if err := command.AtMostOne([]string{"selected", "all"}, opts.selected, opts.all); err != nil {
			return err
		}

		r, err := intr.store.FindRegion(opts.region)
		if err != nil {
			return err
		}
		r = model.Acquire(scope, r)

		ids := r.Identifiers(d)
		label := d.String()
		if opts.selected {
			ids = r.Selection(d)
			label = fmt.Sprintf("selected %s", d)
		}

		if ids.Empty() {
			intr.printLine(console.StyleFeedback, "%s: none", label)
			return nil
		}
		intr.printLine(console.StyleFeedback, "%s: %s (%d)", label, ids, ids.Count())
		return nil
	}
}
