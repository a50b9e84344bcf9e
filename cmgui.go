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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cmgui/cmgui/console"
	"github.com/cmgui/cmgui/console/colorterm"
	"github.com/cmgui/cmgui/console/plainterm"
	"github.com/cmgui/cmgui/curated"
	"github.com/cmgui/cmgui/interpreter"
	"github.com/cmgui/cmgui/logger"
	"github.com/cmgui/cmgui/modalflag"
	"github.com/cmgui/cmgui/model"
	"github.com/cmgui/cmgui/performance"
	"github.com/cmgui/cmgui/prefs"
	"github.com/cmgui/cmgui/script"
	"github.com/cmgui/cmgui/statsview"
	"github.com/cmgui/cmgui/version"
	"golang.org/x/term"
)

// exit values
const (
	exitOK      = 0
	exitStartUp = 10
	exitCheck   = 20
)

// CheckFailed is returned by the CHECK mode if any command does not resolve.
const CheckFailed = "%d command(s) failed to resolve"

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. returns the value
// to be used with os.Exit().
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "CHECK")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitStartUp
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)

	case "CHECK":
		err = check(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		if curated.Is(err, CheckFailed) {
			return exitCheck
		}
		return exitStartUp
	}

	return exitOK
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("comfiles named on the command line are run in order before any interactive input")

	execute := md.AddString("execute", "", "command to run after any comfiles")
	example := md.AddString("example", "", "directory used to resolve relative filenames")
	batch := md.AddBool("batch", false, "quit after running comfiles and the execute command")
	colour := md.AddBool("console", false, "use the colour terminal")
	plain := md.AddBool("plain", false, "use the plain terminal")
	stats := md.AddBool("statsview", false, "launch the statsview server")
	ver := md.AddBool("version", false, "print version and quit")
	log := md.AddBool("log", false, "echo the log to stdout")
	profile := md.AddBool("profile", false, "write cpu and memory profiles of the session")
	prefsOverride := md.AddString("prefs", "", "preference overrides. eg. echo::true; prompt::heart")
	prefsFile := md.AddString("prefsfile", "", "preferences file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *ver {
		fmt.Fprintln(output, version.String())
		return nil
	}

	if *colour && *plain {
		return curated.Errorf("-console and -plain cannot be used together")
	}

	if *log {
		logger.SetEcho(output, true)
	} else {
		logger.SetEcho(nil, false)
	}

	var trm console.Terminal
	switch {
	case *plain:
		trm = plainterm.NewPlainTerminal(nil, nil)
	case *colour:
		trm = &colorterm.ColorTerminal{}
	default:
		if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
			trm = &colorterm.ColorTerminal{}
		} else {
			trm = plainterm.NewPlainTerminal(nil, nil)
		}
	}

	if err := trm.Initialise(); err != nil {
		return err
	}
	defer trm.CleanUp()

	prefs.PushCommandLineStack(*prefsOverride)
	intr, err := interpreter.NewInterpreter(trm, model.NewStore(), *prefsFile)
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "cmgui", "unused preference overrides: %s", unused)
	}
	if err != nil {
		return err
	}

	if *example != "" {
		if err := intr.Prefs.Directory.Set(*example); err != nil {
			return err
		}
	}

	if *stats {
		statsview.Launch(output)
	}

	// comfiles are inserted at the front of the queue
	comfiles := md.RemainingArgs()
	for i := len(comfiles) - 1; i >= 0; i-- {
		if err := intr.LoadComfile(comfiles[i], 1); err != nil {
			return err
		}
	}

	if *execute != "" {
		intr.Queue(*execute)
	}

	if !*profile {
		return intr.Run(*batch)
	}

	err = performance.ProfileCPU("cmgui.cpu.profile", func() error {
		return intr.Run(*batch)
	})
	if err != nil {
		return err
	}
	return performance.ProfileMem("cmgui.mem.profile")
}

// check resolves every command in the comfiles against the command tree
// without running them.
func check(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	prefsFile := md.AddString("prefsfile", "", "preferences file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return curated.Errorf("comfile required for %s mode", md)
	}

	trm := plainterm.NewPlainTerminal(strings.NewReader(""), output)
	if err := trm.Initialise(); err != nil {
		return err
	}

	intr, err := interpreter.NewInterpreter(trm, model.NewStore(), *prefsFile)
	if err != nil {
		return err
	}

	var failed int
	for _, fn := range md.RemainingArgs() {
		var q script.Queue
		if err := q.Load(fn, 1); err != nil {
			return err
		}
		for ln, ok := q.Next(); ok; ln, ok = q.Next() {
			if err := intr.Check(ln.Entry); err != nil {
				fmt.Fprintf(output, "%s:%d: %v\n", ln.Source, ln.Number, err)
				failed++
			}
		}
	}

	if failed > 0 {
		return curated.Errorf(CheckFailed, failed)
	}

	return nil
}
