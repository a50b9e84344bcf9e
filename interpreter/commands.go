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
	"github.com/cmgui/cmgui/model"
)

// the keywords of the two identifier domains
var domains = []string{"nodes", "elements"}

// commands builds the command tree.
func (intr *Interpreter) commands() *command.Node {
	materials := func() []string { return intr.store.Materials.Names() }
	spectra := func() []string { return intr.store.Spectra.Names() }
	tessellations := func() []string { return intr.store.Tessellations.Names() }
	regions := func() []string { return intr.store.Root().ChildNames() }

	create := command.NewRouter("create", "create graphics objects",
		command.NewLeaf("region", "create a region and any missing parent regions", command.EmptyRequired, intr.gfxCreateRegion).
			WithUsage(usage[regionOptions]()),
		command.NewLeaf("material", "create a material", command.EmptyRequired, intr.gfxCreateMaterial).
			WithUsage(usage[materialOptions]()),
		command.NewLeaf("spectrum", "create a spectrum", command.EmptyRequired, intr.gfxCreateSpectrum).
			WithUsage(usage[spectrumOptions]()),
		command.NewLeaf("tessellation", "create a tessellation", command.EmptyRequired, intr.gfxCreateTessellation).
			WithUsage(usage[tessellationOptions]()),
	)

	destroy := command.NewRouter("destroy", "destroy graphics objects",
		command.NewLeaf("region", "destroy a region and its children", command.EmptyRequired, intr.gfxDestroyRegion).
			WithUsage(usage[regionOptions]()).WithOptions(regions),
		command.NewLeaf("field", "destroy a field", command.EmptyRequired, intr.gfxDestroyField).
			WithUsage(usage[fieldOptions]()),
		command.NewLeaf("material", "destroy a material", command.EmptyRequired, intr.gfxDestroyMaterial).
			WithUsage(usage[nameOptions]()).WithOptions(materials),
	)

	define := command.NewRouter("define", "define fields",
		command.NewLeaf("field", "define a constant field", command.EmptyRequired, intr.gfxDefineField).
			WithUsage(usage[defineFieldOptions]()),
	)

	modify := command.NewRouter("modify", "modify graphics objects",
		command.NewLeaf("field", "rename a field", command.EmptyRequired, intr.gfxModifyField).
			WithUsage(usage[modifyFieldOptions]()),
		command.NewLeaf("material", "change the properties of a material", command.EmptyRequired, intr.gfxModifyMaterial).
			WithUsage(usage[materialOptions]()).WithOptions(materials),
	)

	list := command.NewRouter("list", "list graphics objects",
		command.NewLeaf("region", "list a region and its children", command.EmptyAllowed, intr.gfxListRegion).
			WithUsage(usage[listRegionOptions]()).WithOptions(regions),
		command.NewLeaf("field", "list the fields of a region", command.EmptyAllowed, intr.gfxListField).
			WithUsage(usage[fieldOptions]()),
		command.NewLeaf("material", "list materials", command.EmptyAllowed, gfxListObjects(intr, intr.store.Materials)).
			WithUsage(usage[nameOptions]()).WithOptions(materials),
		command.NewLeaf("spectrum", "list spectra", command.EmptyAllowed, gfxListObjects(intr, intr.store.Spectra)).
			WithUsage(usage[nameOptions]()).WithOptions(spectra),
		command.NewLeaf("tessellation", "list tessellations", command.EmptyAllowed, gfxListObjects(intr, intr.store.Tessellations)).
			WithUsage(usage[nameOptions]()).WithOptions(tessellations),
	)

	sel := command.NewRouter("select", "select nodes or elements")
	unsel := command.NewRouter("unselect", "unselect nodes or elements")

	for _, kw := range domains {
		d, _ := model.ParseDomain(kw)

		create.Add(command.NewLeaf(kw, "define "+kw+" in a region", command.EmptyRequired, intr.gfxDefineIdentifiers(d, false)).
			WithUsage(usage[identifierOptions]()))
		destroy.Add(command.NewLeaf(kw, "remove "+kw+" from a region", command.EmptyRequired, intr.gfxDefineIdentifiers(d, true)).
			WithUsage(usage[identifierOptions]()))
		list.Add(command.NewLeaf(kw, "list the "+kw+" of a region", command.EmptyAllowed, intr.gfxListIdentifiers(d)).
			WithUsage(usage[listIdentifierOptions]()))
		sel.Add(command.NewLeaf(kw, "select "+kw, command.EmptyAllowed, intr.gfxSelect(d, false)).
			WithUsage(usage[selectOptions]()))
		unsel.Add(command.NewLeaf(kw, "unselect "+kw, command.EmptyAllowed, intr.gfxSelect(d, true)).
			WithUsage(usage[selectOptions]()))
	}

	gfx := command.NewRouter("gfx", "graphics commands",
		create, define, destroy, list, modify,
		command.NewRouter("read", "read graphics objects from a file",
			command.NewLeaf("region", "read regions from a file written by gfx write region", command.EmptyRequired, intr.gfxReadRegion).
				WithUsage(usage[readRegionOptions]()),
		),
		sel, unsel,
		command.NewRouter("write", "write graphics objects to a file",
			command.NewLeaf("region", "write a region and its children to a file", command.EmptyRequired, intr.gfxWriteRegion).
				WithUsage(usage[writeRegionOptions]()).WithOptions(regions),
		),
	)

	return command.NewRouter("", "",
		gfx,
		command.NewLeaf("list_memory", "report memory use", command.EmptyAllowed, intr.listMemory).
			WithUsage(usage[memoryOptions]()),
		command.NewLeaf("log", "show the log", command.EmptyAllowed, intr.log).
			WithUsage(usage[logOptions]()),
		command.NewRouter("open", "open files",
			command.NewLeaf("comfile", "run the commands in a file", command.EmptyRequired, intr.openComfile).
				WithUsage(usage[comfileOptions]()).WithOptions(intr.comfiles),
		),
		command.NewLeaf("quit", "leave the program", command.EmptyAllowed, intr.quit),
		command.NewRouter("set", "change settings",
			command.NewLeaf("directory", "set the directory for relative filenames", command.EmptyRequired, intr.setDirectory).
				WithUsage(usage[directoryOptions]()),
			command.NewLeaf("echo", "echo commands run from comfiles", command.EmptyAllowed, intr.setEcho).
				WithUsage(usage[echoOptions]()),
			command.NewLeaf("journal", "record commands to a file", command.EmptyAllowed, intr.setJournal).
				WithUsage(usage[journalOptions]()),
			command.NewLeaf("prefs", "list, change, save or load preferences", command.EmptyAllowed, intr.setPrefs).
				WithUsage(usage[prefsOptions]()).WithOptions(func() []string {
				return append([]string{"save", "load"}, intr.Prefs.Keys()...)
			}),
		),
		command.NewLeaf("system", "run an operating system command", command.EmptyRequired, intr.system).
			WithUsage(func() string { return "<COMMAND ARGS...>" }),
	)
}
