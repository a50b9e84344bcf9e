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
	"os"

	"github.com/cmgui/cmgui/command"
	"github.com/cmgui/cmgui/curated"
	"github.com/cmgui/cmgui/model"
)

// Sentinel errors for the file commands.
const (
	NoFilename = "file name required"
	FileError  = "file: %v"
)

type writeRegionOptions struct {
	path string
	file string
}

func (o *writeRegionOptions) table() *command.Table {
	t := command.NewTable()
	t.Empty = command.EmptyRequired
	mustAdd(t.Add("file", command.Labelled("FILE", command.String(&o.file))))
	mustAdd(t.AddDefault(once("PATH", &o.path)))
	return t
}

func (intr *Interpreter) gfxWriteRegion(tokens *command.Tokens) (err error) {
	scope := model.NewScope()
	defer release(scope, &err)

	opts := writeRegionOptions{path: model.PathSeparator}
	if err := opts.table().MultiParse(tokens); err != nil {
		return err
	}
	if opts.file == "" {
		return curated.Validatef(NoFilename)
	}

	// check the region before creating the file
	r, err := intr.store.FindRegion(opts.path)
	if err != nil {
		return err
	}
	r = model.Acquire(scope, r)

	f, err := os.Create(intr.resolve(opts.file))
	if err != nil {
		return curated.Enginef(FileError, err)
	}
	defer f.Close()

	if err := intr.store.ExportRegion(f, r.Path()); err != nil {
		return err
	}

	if err := f.Sync(); err != nil {
		return curated.Enginef(FileError, err)
	}
	return nil
}

type readRegionOptions struct {
	file   string
	region string
}

func (o *readRegionOptions) table() *command.Table {
	t := command.NewTable()
	t.Empty = command.EmptyRequired
	mustAdd(t.Add("file", command.Labelled("FILE", command.String(&o.file))))
	mustAdd(t.Add("region", command.Labelled("PATH", command.String(&o.region))))
	return t
}

func (intr *Interpreter) gfxReadRegion(tokens *command.Tokens) error {
	opts := readRegionOptions{region: model.PathSeparator}
	if err := opts.table().MultiParse(tokens); err != nil {
		return err
	}
	if opts.file == "" {
		return curated.Validatef(NoFilename)
	}

	f, err := os.Open(intr.resolve(opts.file))
	if err != nil {
		return curated.Enginef(FileError, err)
	}
	defer f.Close()

	return intr.store.ImportRegion(f, opts.region)
}
