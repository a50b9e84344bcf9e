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
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/cmgui/cmgui/assert"
	"github.com/cmgui/cmgui/command"
	"github.com/cmgui/cmgui/console"
	"github.com/cmgui/cmgui/curated"
	"github.com/cmgui/cmgui/logger"
	"github.com/cmgui/cmgui/model"
	"github.com/cmgui/cmgui/script"
)

// the token that leaves the current command prompt
const promptUp = ".."

// Interpreter reads and executes commands.
type Interpreter struct {
	term  console.Terminal
	store *model.Store
	root  *command.Node

	Prefs *Preferences

	queue  script.Queue
	scribe script.Scribe

	tabCompletion *command.TabCompletion

	// the command path of the current prompt. prefixed to all input
	promptPath []string

	// running is false after the quit command
	running bool

	events console.ReadEvents

	// the interpreter is not safe for concurrent use
	owner assert.Owner
}

// NewInterpreter is the preferred method of initialisation for the
// Interpreter type. The terminal should already have been initialised. An
// empty prefsFile means the default preferences file.
func NewInterpreter(term console.Terminal, store *model.Store, prefsFile string) (*Interpreter, error) {
	intr := &Interpreter{
		term:    term,
		store:   store,
		running: true,
		events: console.ReadEvents{
			IntEvents: make(chan os.Signal, 1),
		},
		owner: assert.NewOwner(),
	}

	var err error
	intr.Prefs, err = newPreferences(intr, prefsFile)
	if err != nil {
		return nil, err
	}

	intr.root = intr.commands()

	intr.tabCompletion = command.NewTabCompletion(intr.root)
	intr.term.RegisterTabCompletion(intr.tabCompletion)

	return intr, nil
}

// Root returns the root of the command tree.
func (intr *Interpreter) Root() *command.Node {
	return intr.root
}

// Store returns the object model used by the interpreter.
func (intr *Interpreter) Store() *model.Store {
	return intr.store
}

// Running returns false once the quit command has been executed.
func (intr *Interpreter) Running() bool {
	return intr.running
}

// PromptPath returns the command path of the current prompt.
func (intr *Interpreter) PromptPath() []string {
	return intr.promptPath
}

func (intr *Interpreter) prompt() console.Prompt {
	return console.Prompt{
		Content: intr.Prefs.Prompt.String(),
		Path:    intr.promptPath,
	}
}

// resolve a filename relative to the directory preference.
func (intr *Interpreter) resolve(filename string) string {
	dir := intr.Prefs.Directory.String()
	if dir == "" || filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(dir, filename)
}

// LoadComfile queues the commands in the file so that they are run next.
func (intr *Interpreter) LoadComfile(filename string, repeat int) error {
	return intr.queue.Load(intr.resolve(filename), repeat)
}

// Queue input to be executed. The input can contain more than one command
// separated by semicolons or newlines.
func (intr *Interpreter) Queue(input string) {
	intr.queue.Push(input)
}

// Execute queues the input and runs every queued command. Returns the
// result of the last command to run.
func (intr *Interpreter) Execute(input string) error {
	intr.queue.Push(input)
	return intr.drain()
}

// drain runs commands until the queue is empty or until quit.
func (intr *Interpreter) drain() error {
	var err error
	for intr.running {
		ln, ok := intr.queue.Next()
		if !ok {
			break
		}
		err = intr.execute(ln)
	}
	return err
}

// Run executes queued commands and then, unless batch is true, reads and
// executes commands from the terminal until quit, end of input or an
// interrupt signal. Any active journal is ended when Run returns.
func (intr *Interpreter) Run(batch bool) error {
	signal.Notify(intr.events.IntEvents, os.Interrupt)
	defer signal.Stop(intr.events.IntEvents)

	defer func() {
		if err := intr.scribe.EndSession(); err != nil {
			logger.Display(logger.Allow, logger.Error, "journal", err)
		}
	}()

	_ = intr.drain()

	for intr.running && !batch {
		input, err := intr.term.TermRead(intr.prompt(), &intr.events)
		if err != nil {
			if errors.Is(err, io.EOF) || curated.Is(err, console.UserInterrupt) {
				return nil
			}
			return err
		}

		_ = intr.Execute(input)
	}

	return nil
}

// execute a single command. the result is reported to the terminal and
// returned. help and prompt requests are returned as *command.Help and
// *command.Prompt.
func (intr *Interpreter) execute(ln script.Line) error {
	intr.owner.Check()

	if ln.Batch() {
		intr.scribe.StartPlayback()
		defer intr.scribe.EndPlayback()

		if intr.Prefs.Echo.Get().(bool) {
			intr.printLine(console.StyleEcho, ln.Entry)
		}
	}

	tokens, err := command.TokeniseInput(ln.Entry)
	if err != nil {
		intr.report(ln, nil, err)
		return err
	}

	if tokens.Len() == 1 {
		if tok, _ := tokens.Current(); tok == promptUp {
			if len(intr.promptPath) > 0 {
				intr.promptPath = intr.promptPath[:len(intr.promptPath)-1]
			}
			return nil
		}
	}

	// comfile lines are always complete commands
	entry := ln.Entry
	if len(intr.promptPath) > 0 && !ln.Batch() {
		words := append(append([]string{}, intr.promptPath...), tokens.RemainingTokens()...)
		tokens = command.NewTokens(words...)
		entry = tokens.String()
	}

	intr.scribe.WriteInput(entry)

	err = intr.root.Dispatch(tokens)

	switch command.StatusOf(err) {
	case command.StatusOK:
		if err := intr.scribe.Commit(); err != nil {
			intr.report(ln, tokens, err)
			return err
		}
	case command.StatusPrompt:
		intr.scribe.Rollback()
		var p *command.Prompt
		errors.As(err, &p)

		// a sub-command prompt has no meaning in a comfile
		if ln.Batch() {
			err = curated.Parsef(command.MissingArgument, strings.Join(p.Path, " "))
			intr.report(ln, tokens, err)
			return err
		}

		intr.promptPath = p.Path
	case command.StatusHelp:
		intr.scribe.Rollback()
		var h *command.Help
		errors.As(err, &h)
		intr.printHelp(tokens, h)
	case command.StatusError:
		intr.scribe.Rollback()
		intr.report(ln, tokens, err)
	}

	return err
}

// Check that the command resolves to a command in the tree without running
// it. Used to verify comfiles.
func (intr *Interpreter) Check(input string) error {
	tokens, err := command.TokeniseInput(input)
	if err != nil {
		return err
	}
	res, err := intr.root.Resolve(tokens)
	if err != nil {
		return err
	}
	if !res.Node.IsLeaf() && res.Help == command.HelpNone {
		return curated.Parsef(command.MissingArgument, res.Node.PathString())
	}
	return nil
}

// commandPath returns the deepest command named by the tokens. the cursor
// of the tokens is not changed.
func (intr *Interpreter) commandPath(tokens *command.Tokens) *command.Node {
	if tokens == nil {
		return intr.root
	}

	mark := tokens.Mark()
	tokens.Rewind(0)
	all := command.NewTokens(tokens.RemainingTokens()...)
	tokens.Rewind(mark)

	res, _ := intr.root.Resolve(all)
	if res.Node == nil {
		return intr.root
	}
	return res.Node
}

// report an error to the terminal and to the log.
func (intr *Interpreter) report(ln script.Line, tokens *command.Tokens, err error) {
	path := intr.commandPath(tokens).PathString()

	var msg string
	if path == "" {
		msg = err.Error()
	} else {
		msg = fmt.Sprintf("%s.  %s", path, err)
	}
	if ln.Batch() {
		msg = fmt.Sprintf("%s:%d: %s", ln.Source, ln.Number, msg)
	}

	intr.printLine(console.StyleError, msg)
	logger.Display(logger.Allow, logger.Error, "interpreter", msg)
}

// printHelp prints the help request. help from an option table or from a
// setter does not include the command path so the path and summary of the
// command are printed first.
func (intr *Interpreter) printHelp(tokens *command.Tokens, h *command.Help) {
	n := intr.commandPath(tokens)

	if h.Path == n.PathString() {
		intr.printLine(console.StyleHelp, h.Usage)
		return
	}

	if h.Path == "" && n.Usage != nil {
		intr.printLine(console.StyleHelp, n.HelpText(h.Level))
		return
	}

	intr.printLine(console.StyleHelp, "%s: %s", n.PathString(), n.Summary)
	for _, l := range strings.Split(h.Usage, "\n") {
		intr.printLine(console.StyleHelp, "  %s", l)
	}
}
