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
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/cmgui/cmgui/command"
	"github.com/cmgui/cmgui/console"
	"github.com/cmgui/cmgui/curated"
	"github.com/cmgui/cmgui/logger"
	"github.com/cmgui/cmgui/paths"
	"github.com/cmgui/cmgui/script"
	"github.com/cmgui/cmgui/statsview"
)

// Sentinel errors for the general commands.
const (
	SystemError = "system: %v"
	NoCommand   = "command required"
)

// the extension of comfiles
const comfileExtension = "com"

type comfileOptions struct {
	file    string
	execute bool
	repeat  int
}

func (o *comfileOptions) table() *command.Table {
	t := command.NewTable()
	t.Empty = command.EmptyRequired
	mustAdd(t.AddSwitch("execute", "noexecute", &o.execute))
	mustAdd(t.Add("repeat", command.PositiveInt(&o.repeat)))
	mustAdd(t.AddDefault(once("FILE", &o.file)))
	return t
}

func (intr *Interpreter) openComfile(tokens *command.Tokens) error {
	opts := comfileOptions{execute: true, repeat: 1}
	if err := opts.table().MultiParse(tokens); err != nil {
		return err
	}
	if opts.file == "" {
		return curated.Validatef(NoFilename)
	}

	if opts.execute {
		return intr.LoadComfile(opts.file, opts.repeat)
	}

	// list the commands without running them
	var q script.Queue
	if err := q.Load(intr.resolve(opts.file), 1); err != nil {
		return err
	}
	for ln, ok := q.Next(); ok; ln, ok = q.Next() {
		intr.printLine(console.StyleFeedback, "%d: %s", ln.Number, ln.Entry)
	}
	return nil
}

// comfiles returns the names of the comfiles in the current directory.
func (intr *Interpreter) comfiles() []string {
	m, err := filepath.Glob(intr.resolve("*." + comfileExtension))
	if err != nil {
		return nil
	}
	for i := range m {
		m[i] = filepath.Base(m[i])
	}
	return m
}

type directoryOptions struct {
	path string
}

func (o *directoryOptions) table() *command.Table {
	t := command.NewTable()
	t.Empty = command.EmptyRequired
	mustAdd(t.AddDefault(once("PATH", &o.path)))
	return t
}

func (intr *Interpreter) setDirectory(tokens *command.Tokens) error {
	var opts directoryOptions
	if err := opts.table().MultiParse(tokens); err != nil {
		return err
	}
	return intr.Prefs.Directory.Set(opts.path)
}

type echoOptions struct {
	echo bool
}

func (o *echoOptions) table() *command.Table {
	t := command.NewTable()
	mustAdd(t.AddSwitch("on", "off", &o.echo))
	return t
}

func (intr *Interpreter) setEcho(tokens *command.Tokens) error {
	opts := echoOptions{echo: true}
	if err := opts.table().Parse(tokens); err != nil {
		return err
	}
	if tokens.Remaining() > 0 {
		tok, _ := tokens.Current()
		return curated.Parsef(command.UnknownOption, tok, fmt.Sprintf(" (%s)", tokens.Location()))
	}
	return intr.Prefs.Echo.Set(opts.echo)
}

type journalOptions struct {
	file string
	end  bool
}

func (o *journalOptions) table() *command.Table {
	t := command.NewTable()
	mustAdd(t.Add("end", command.Flag(&o.end)))
	mustAdd(t.AddDefault(once("FILE", &o.file)))
	return t
}

// setJournal starts or ends the recording of commands. a journal with a
// unique name is started if no file is given.
func (intr *Interpreter) setJournal(tokens *command.Tokens) error {
	var opts journalOptions
	if err := opts.table().MultiParse(tokens); err != nil {
		return err
	}
	if err := command.AtMostOne([]string{"FILE", "end"}, opts.file != "", opts.end); err != nil {
		return err
	}

	if opts.end {
		fn := intr.scribe.Filename()
		if err := intr.scribe.EndSession(); err != nil {
			return err
		}
		if fn != "" {
			intr.printLine(console.StyleFeedback, "journal ended: %s", fn)
		}
		return nil
	}

	if opts.file == "" {
		opts.file = paths.UniqueFilename("journal", "", comfileExtension)
	}

	fn := intr.resolve(opts.file)
	if err := intr.scribe.StartSession(fn); err != nil {
		return err
	}
	intr.printLine(console.StyleFeedback, "journal started: %s", fn)
	return nil
}

type prefsOptions struct {
	save  bool
	load  bool
	key   string
	value string
}

func (o *prefsOptions) table() *command.Table {
	t := command.NewTable()
	mustAdd(t.Add("save", command.Flag(&o.save)))
	mustAdd(t.Add("load", command.Flag(&o.load)))
	mustAdd(t.AddDefault(command.Func("KEY VALUE", func(tokens *command.Tokens, _ string) error {
		if o.key != "" {
			tok, _ := tokens.Current()
			return curated.Parsef(command.UnknownOption, tok, fmt.Sprintf(" (%s)", tokens.Location()))
		}
		k, _ := tokens.Get()
		v, ok := tokens.Get()
		if !ok {
			return curated.Parsef(command.MissingArgument, fmt.Sprintf("value for %s", k))
		}
		o.key = k
		o.value = v
		return nil
	})))
	return t
}

func (intr *Interpreter) setPrefs(tokens *command.Tokens) error {
	var opts prefsOptions
	if err := opts.table().MultiParse(tokens); err != nil {
		return err
	}
	if err := command.AtMostOne([]string{"save", "load", "KEY VALUE"}, opts.save, opts.load, opts.key != ""); err != nil {
		return err
	}

	switch {
	case opts.save:
		return intr.Prefs.save()
	case opts.load:
		return intr.Prefs.load()
	case opts.key != "":
		return intr.Prefs.Set(opts.key, opts.value)
	}

	intr.printLine(console.StyleFeedback, intr.Prefs.String())
	return nil
}

func (intr *Interpreter) quit(_ *command.Tokens) error {
	intr.running = false
	intr.queue.Clear()
	return nil
}

// system runs the remaining tokens as an operating system command. the
// command is not run through a shell but environment variables are
// expanded.
func (intr *Interpreter) system(tokens *command.Tokens) error {
	args := tokens.RemainingTokens()
	tokens.End()
	if len(args) == 0 {
		return curated.Validatef(NoCommand)
	}
	for i := range args {
		args[i] = os.ExpandEnv(args[i])
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = intr.Prefs.Directory.String()
	out, err := cmd.CombinedOutput()
	intr.printLine(console.StyleFeedback, string(out))
	if err != nil {
		return curated.Enginef(SystemError, err)
	}
	return nil
}

type memoryOptions struct {
	statsview bool
	graph     string
}

func (o *memoryOptions) table() *command.Table {
	t := command.NewTable()
	mustAdd(t.Add("statsview", command.Flag(&o.statsview)))
	mustAdd(t.Add("graph", command.Labelled("FILE", command.String(&o.graph))))
	return t
}

// listMemory reports the contents of the store and the memory used by the
// process. the object graph of the store can be written to a file in the
// graphviz format.
func (intr *Interpreter) listMemory(tokens *command.Tokens) error {
	var opts memoryOptions
	if err := opts.table().MultiParse(tokens); err != nil {
		return err
	}

	regions, fields := intr.store.Count()
	intr.printLine(console.StyleFeedback, "regions: %d, fields: %d", regions, fields)
	intr.printLine(console.StyleFeedback, "materials: %d, spectra: %d, tessellations: %d",
		intr.store.Materials.Len(), intr.store.Spectra.Len(), intr.store.Tessellations.Len())

	for _, o := range intr.store.Outstanding() {
		intr.printLine(console.StyleFeedback, "in use: %s", o)
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	intr.printLine(console.StyleFeedback, "heap: %d KB, total allocated: %d KB, gc cycles: %d",
		m.HeapAlloc/1024, m.TotalAlloc/1024, m.NumGC)

	if opts.graph != "" {
		fn := intr.resolve(opts.graph)
		f, err := os.Create(fn)
		if err != nil {
			return curated.Enginef(FileError, err)
		}
		intr.store.WriteGraph(f)
		if err := f.Close(); err != nil {
			return curated.Enginef(FileError, err)
		}
		intr.printLine(console.StyleFeedback, "object graph written to %s", fn)
	}

	if opts.statsview {
		statsview.Launch(intr.printStyle(console.StyleFeedback))
	}

	return nil
}

type logOptions struct {
	tail  int
	clear bool
}

func (o *logOptions) table() *command.Table {
	t := command.NewTable()
	mustAdd(t.Add("tail", command.PositiveInt(&o.tail)))
	mustAdd(t.Add("clear", command.Flag(&o.clear)))
	return t
}

func (intr *Interpreter) log(tokens *command.Tokens) error {
	var opts logOptions
	if err := opts.table().MultiParse(tokens); err != nil {
		return err
	}

	if opts.clear {
		logger.Clear()
		return nil
	}

	w := intr.printStyle(console.StyleLog)
	if opts.tail > 0 {
		logger.Tail(w, opts.tail)
	} else {
		logger.Write(w)
	}
	return nil
}
