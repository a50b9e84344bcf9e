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

package interpreter_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cmgui/cmgui/command"
	"github.com/cmgui/cmgui/console/plainterm"
	"github.com/cmgui/cmgui/interpreter"
	"github.com/cmgui/cmgui/model"
	"github.com/cmgui/cmgui/test"
	"github.com/google/go-cmp/cmp"
)

// newInterpreter returns an interpreter reading from the input string and
// writing to the returned CompareWriter. preferences are kept in a
// temporary directory which is also returned.
func newInterpreter(t *testing.T, input string) (*interpreter.Interpreter, *test.CompareWriter, string) {
	t.Helper()

	dir := t.TempDir()
	tw := &test.CompareWriter{}
	term := plainterm.NewPlainTerminal(strings.NewReader(input), tw)
	test.DemandSuccess(t, term.Initialise())

	intr, err := interpreter.NewInterpreter(term, model.NewStore(), filepath.Join(dir, "prefs.yaml"))
	test.DemandSuccess(t, err)

	return intr, tw, dir
}

// expectOutstanding fails the test if any object in the store is still
// being accessed.
func expectOutstanding(t *testing.T, intr *interpreter.Interpreter) {
	t.Helper()
	if o := intr.Store().Outstanding(); len(o) > 0 {
		t.Errorf("objects still accessed: %v", o)
	}
}

func TestRegions(t *testing.T) {
	intr, tw, _ := newInterpreter(t, "")

	test.ExpectSuccess(t, intr.Execute("gfx create region heart/left"))
	test.ExpectSuccess(t, intr.Execute("gfx create region heart/right"))
	test.ExpectSuccess(t, intr.Execute("gfx create region lung"))

	tw.Clear()
	test.ExpectSuccess(t, intr.Execute("gfx list region recursive"))
	if diff := cmp.Diff([]string{"/", "  heart", "    left", "    right", "  lung"}, tw.Lines()); diff != "" {
		t.Error(diff)
	}

	tw.Clear()
	test.ExpectSuccess(t, intr.Execute("gfx list region heart"))
	if diff := cmp.Diff([]string{"/heart", "  left", "  right"}, tw.Lines()); diff != "" {
		t.Error(diff)
	}

	// shell operators and parentheses are part of a name
	test.ExpectSuccess(t, intr.Execute("gfx create region a>b(c)"))
	_, err := intr.Store().FindRegion("a>b(c)")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, intr.Execute("gfx destroy region a>b(c)"))

	// abbreviated keywords
	test.ExpectSuccess(t, intr.Execute("gfx des reg lung"))
	_, err = intr.Store().FindRegion("lung")
	test.ExpectFailure(t, err)

	tw.Clear()
	test.ExpectFailure(t, intr.Execute("gfx create region heart/left"))
	test.ExpectSuccess(t, tw.Contains("ERROR: gfx create region.  "))
	test.ExpectSuccess(t, tw.Contains("region already exists"))

	expectOutstanding(t, intr)
}

func TestErrors(t *testing.T) {
	intr, tw, _ := newInterpreter(t, "")

	err := intr.Execute("gfx create regoin heart")
	test.ExpectEquality(t, command.StatusOf(err), command.StatusError)
	test.ExpectSuccess(t, tw.Contains("ERROR: gfx create.  unknown option: regoin"))
	test.ExpectSuccess(t, tw.Contains("did you mean 'region'?"))

	tw.Clear()
	err = intr.Execute("gxf list region")
	test.ExpectEquality(t, command.StatusOf(err), command.StatusError)
	test.ExpectSuccess(t, tw.Contains("did you mean 'gfx'?"))

	tw.Clear()
	err = intr.Execute("gfx create region")
	test.ExpectEquality(t, command.StatusOf(err), command.StatusError)
	test.ExpectSuccess(t, tw.Contains("missing argument"))

	tw.Clear()
	err = intr.Execute("gfx create region heart lung")
	test.ExpectEquality(t, command.StatusOf(err), command.StatusError)
	test.ExpectSuccess(t, tw.Contains("unknown option: lung"))

	// the failed commands had no effect
	test.ExpectEquality(t, len(intr.Store().Root().ChildNames()), 0)

	tw.Clear()
	err = intr.Execute(`gfx create region "heart`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, tw.Contains("ERROR: "))

	expectOutstanding(t, intr)
}

func TestHelp(t *testing.T) {
	intr, tw, _ := newInterpreter(t, "")

	err := intr.Execute("gfx create region ?")
	test.ExpectEquality(t, command.StatusOf(err), command.StatusHelp)
	test.ExpectSuccess(t, tw.Contains("create a region"))
	test.ExpectSuccess(t, tw.Contains("<PATH>"))

	tw.Clear()
	err = intr.Execute("gfx create ?")
	test.ExpectEquality(t, command.StatusOf(err), command.StatusHelp)
	test.ExpectSuccess(t, tw.Contains("region"))
	test.ExpectSuccess(t, tw.Contains("material"))
	test.ExpectSuccess(t, tw.Contains("tessellation"))

	// help part way through the options of a command
	tw.Clear()
	err = intr.Execute("gfx create material gold alpha ?")
	test.ExpectEquality(t, command.StatusOf(err), command.StatusHelp)
	test.ExpectSuccess(t, tw.Contains("gfx create material"))

	// no setters are invoked by a help request
	_, err = intr.Store().Materials.Find("gold")
	test.ExpectFailure(t, err)

	// help is not an error
	test.ExpectSuccess(t, !tw.Contains("ERROR"))

	expectOutstanding(t, intr)
}

func TestPrompt(t *testing.T) {
	intr, tw, _ := newInterpreter(t, "")

	err := intr.Execute("gfx")
	test.ExpectEquality(t, command.StatusOf(err), command.StatusPrompt)
	if diff := cmp.Diff([]string{"gfx"}, intr.PromptPath()); diff != "" {
		t.Error(diff)
	}

	err = intr.Execute("create")
	test.ExpectEquality(t, command.StatusOf(err), command.StatusPrompt)
	if diff := cmp.Diff([]string{"gfx", "create"}, intr.PromptPath()); diff != "" {
		t.Error(diff)
	}

	test.ExpectSuccess(t, intr.Execute("region heart"))
	_, err = intr.Store().FindRegion("heart")
	test.ExpectSuccess(t, err)

	test.ExpectSuccess(t, intr.Execute(".."))
	if diff := cmp.Diff([]string{"gfx"}, intr.PromptPath()); diff != "" {
		t.Error(diff)
	}

	tw.Clear()
	test.ExpectSuccess(t, intr.Execute("list region"))
	test.ExpectSuccess(t, tw.Contains("heart"))

	test.ExpectSuccess(t, intr.Execute(".."))
	test.ExpectEquality(t, len(intr.PromptPath()), 0)

	// leaving the top level does nothing
	test.ExpectSuccess(t, intr.Execute(".."))
	test.ExpectEquality(t, len(intr.PromptPath()), 0)
}

func TestFieldsAndSelection(t *testing.T) {
	intr, tw, _ := newInterpreter(t, "")

	test.ExpectSuccess(t, intr.Execute("gfx create nodes 1..10"))
	test.ExpectSuccess(t, intr.Execute("gfx define field temperature constant 37.5"))
	test.ExpectSuccess(t, intr.Execute("gfx define field zero constant 0"))

	tw.Clear()
	test.ExpectSuccess(t, intr.Execute("gfx list field temperature"))
	test.ExpectSuccess(t, tw.Contains("temperature = constant 37.5"))

	tw.Clear()
	test.ExpectSuccess(t, intr.Execute("gfx select nodes 5 10 conditional_field temperature"))
	test.ExpectSuccess(t, tw.Contains("6 nodes selected"))

	tw.Clear()
	test.ExpectSuccess(t, intr.Execute("gfx list nodes selected"))
	test.ExpectSuccess(t, tw.Contains("selected nodes: 5..10 (6)"))

	tw.Clear()
	test.ExpectSuccess(t, intr.Execute("gfx unselect nodes 5..7"))
	test.ExpectSuccess(t, tw.Contains("3 nodes unselected"))

	tw.Clear()
	test.ExpectSuccess(t, intr.Execute("gfx list nodes selected"))
	test.ExpectSuccess(t, tw.Contains("selected nodes: 8..10 (3)"))

	// a false conditional field selects nothing
	test.ExpectSuccess(t, intr.Execute("gfx unselect nodes"))
	tw.Clear()
	test.ExpectSuccess(t, intr.Execute("gfx select nodes conditional_field zero"))
	test.ExpectSuccess(t, tw.Contains("0 nodes selected"))

	tw.Clear()
	test.ExpectFailure(t, intr.Execute("gfx select nodes add remove"))
	test.ExpectSuccess(t, tw.Contains("only one of add|remove can be specified"))

	tw.Clear()
	test.ExpectSuccess(t, intr.Execute("gfx list elements"))
	test.ExpectSuccess(t, tw.Contains("elements: none"))

	test.ExpectSuccess(t, intr.Execute("gfx modify field zero rename one"))
	tw.Clear()
	test.ExpectSuccess(t, intr.Execute("gfx list field"))
	test.ExpectSuccess(t, tw.Contains("one = constant 0"))
	test.ExpectSuccess(t, !tw.Contains("zero"))

	test.ExpectSuccess(t, intr.Execute("gfx destroy field one"))
	test.ExpectFailure(t, intr.Execute("gfx list field one"))

	expectOutstanding(t, intr)
}

func TestMaterials(t *testing.T) {
	intr, tw, _ := newInterpreter(t, "")

	test.ExpectSuccess(t, intr.Execute("gfx create material gold ambient 1 0.8 0 alpha 0.5"))

	tw.Clear()
	test.ExpectSuccess(t, intr.Execute("gfx list material gold"))
	test.ExpectSuccess(t, tw.Contains("gold: ambient 1 0.8 0 "))
	test.ExpectSuccess(t, tw.Contains("alpha 0.5"))

	// an invalid component leaves the material unchanged
	tw.Clear()
	test.ExpectFailure(t, intr.Execute("gfx modify material gold alpha 0.25 diffuse 2 0 0"))
	test.ExpectSuccess(t, tw.Contains("diffuse must be in the range 0 to 1"))
	m, err := intr.Store().Materials.Find("gold")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Alpha, 0.5)

	test.ExpectSuccess(t, intr.Execute("gfx modify material gold shininess 0.3"))
	test.ExpectEquality(t, m.Shininess, 0.3)
	test.ExpectEquality(t, m.Alpha, 0.5)

	test.ExpectFailure(t, intr.Execute("gfx create material silver alpha 1.5"))
	test.ExpectFailure(t, intr.Execute("gfx destroy material default"))

	test.ExpectSuccess(t, intr.Execute("gfx destroy material gold"))
	_, err = intr.Store().Materials.Find("gold")
	test.ExpectFailure(t, err)

	test.ExpectSuccess(t, intr.Execute("gfx create spectrum heat minimum 0 maximum 100 colour_map red"))
	test.ExpectFailure(t, intr.Execute("gfx create spectrum cold minimum 10 maximum 0"))
	test.ExpectFailure(t, intr.Execute("gfx create spectrum cold colour_map purple"))

	test.ExpectSuccess(t, intr.Execute("gfx create tessellation fine minimum_divisions 2 2 circle_divisions 24"))
	test.ExpectFailure(t, intr.Execute("gfx create tessellation coarse circle_divisions 2"))

	expectOutstanding(t, intr)
}

func TestOutstanding(t *testing.T) {
	intr, _, _ := newInterpreter(t, "")

	for _, c := range []string{
		"gfx create region heart",
		"gfx create nodes 1..5 region heart",
		"gfx define field f constant 1 region heart",
		"gfx list region heart",
		"gfx list nodes region heart",
		"gfx list field region heart",
		"gfx list field f region heart",
		"gfx list field g region heart",
		"gfx select nodes region heart conditional_field f",
		"gfx select nodes region heart conditional_field g",
		"gfx select nodes region lung",
		"gfx modify material default alpha 2",
		"gfx modify material default alpha 0.2",
		"gfx modify material default ?",
		"gfx list material",
		"gfx list nodes region heart ?",
		"gfx destroy region heart",
		"list_memory",
	} {
		_ = intr.Execute(c)
		expectOutstanding(t, intr)
	}
}

func TestComfile(t *testing.T) {
	intr, tw, dir := newInterpreter(t, "")

	fn := filepath.Join(dir, "test.com")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("gfx create region a\n# comment\ngfx list region\n"), 0o644))

	test.ExpectSuccess(t, intr.Execute("set directory "+dir))

	tw.Clear()
	test.ExpectSuccess(t, intr.Execute("open comfile test.com noexecute"))
	test.ExpectSuccess(t, tw.Contains("1: gfx create region a"))
	_, err := intr.Store().FindRegion("a")
	test.ExpectFailure(t, err)

	// the second run fails to create the region and reports the location
	test.ExpectSuccess(t, intr.Execute("set echo"))
	tw.Clear()
	_ = intr.Execute("open comfile test.com repeat 2")
	_, err = intr.Store().FindRegion("a")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, tw.Contains("test.com:1: gfx create region.  "))

	// commands from the comfile are echoed
	test.ExpectSuccess(t, tw.Contains("gfx list region"))

	test.ExpectSuccess(t, intr.Execute("set echo off"))
	tw.Clear()
	test.ExpectSuccess(t, intr.Execute("open comfile test.com noexecute"))
	test.ExpectSuccess(t, intr.Check("gfx create region b"))
	test.ExpectFailure(t, intr.Check("gfx create regoin b"))
	test.ExpectFailure(t, intr.Check("gfx"))
	test.ExpectSuccess(t, intr.Check("gfx ?"))

	test.ExpectFailure(t, intr.Execute("open comfile missing.com"))
	test.ExpectFailure(t, intr.Execute("set echo off on"))
}

func TestComfilePrompt(t *testing.T) {
	intr, tw, dir := newInterpreter(t, "")

	fn := filepath.Join(dir, "a.com")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("gfx\ngfx create region heart\nset echo on\n"), 0o644))

	test.ExpectSuccess(t, intr.Execute("set directory "+dir))
	test.ExpectSuccess(t, intr.Execute("open comfile a.com"))

	// the router line is an error and does not change the prompt
	test.ExpectSuccess(t, tw.Contains("a.com:1: gfx.  missing argument: gfx"))
	test.ExpectEquality(t, len(intr.PromptPath()), 0)

	// the following lines are unaffected
	_, err := intr.Store().FindRegion("heart")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, intr.Prefs.Echo.Get().(bool))
	test.ExpectSuccess(t, !tw.Contains("a.com:2:"))
	test.ExpectSuccess(t, !tw.Contains("a.com:3:"))

	// an interactive prompt does not apply to comfile lines
	test.ExpectSuccess(t, intr.Execute("gfx destroy region heart"))
	test.ExpectEquality(t, command.StatusOf(intr.Execute("gfx")), command.StatusPrompt)

	tw.Clear()
	test.DemandSuccess(t, intr.LoadComfile("a.com", 1))
	test.ExpectSuccess(t, intr.Execute(".."))
	_, err = intr.Store().FindRegion("heart")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, !tw.Contains("a.com:2:"))
	test.ExpectEquality(t, len(intr.PromptPath()), 0)
}

func TestJournal(t *testing.T) {
	intr, _, dir := newInterpreter(t, "")

	test.ExpectSuccess(t, intr.Execute("set directory "+dir))
	test.ExpectSuccess(t, intr.Execute("set journal j.com"))

	// a journal cannot be started on top of an existing file
	test.ExpectFailure(t, intr.Execute("set journal j.com"))

	test.ExpectSuccess(t, intr.Execute("gfx create region x"))
	test.ExpectFailure(t, intr.Execute("gfx create regoin y"))
	_ = intr.Execute("gfx list region ?")
	_ = intr.Execute("gfx create")
	test.ExpectSuccess(t, intr.Execute("region z"))
	test.ExpectSuccess(t, intr.Execute(".."))
	test.ExpectSuccess(t, intr.Execute(".."))
	test.ExpectSuccess(t, intr.Execute("set journal end"))

	b, err := os.ReadFile(filepath.Join(dir, "j.com"))
	test.DemandSuccess(t, err)
	s := string(b)

	test.ExpectSuccess(t, strings.Contains(s, "gfx create region x\n"))
	test.ExpectSuccess(t, strings.Contains(s, "gfx create region z\n"))
	test.ExpectSuccess(t, !strings.Contains(s, "regoin"))
	test.ExpectSuccess(t, !strings.Contains(s, "?"))

	// the journal can be run as a comfile
	intr2, _, _ := newInterpreter(t, "")
	test.ExpectSuccess(t, intr2.Execute("set directory "+dir))
	test.ExpectSuccess(t, intr2.Execute("open comfile j.com"))
	_, err = intr2.Store().FindRegion("z")
	test.ExpectSuccess(t, err)
}

func TestPrefs(t *testing.T) {
	intr, tw, dir := newInterpreter(t, "")

	test.ExpectSuccess(t, intr.Execute("set prefs prompt heart"))
	test.ExpectEquality(t, intr.Prefs.Prompt.String(), "heart")
	test.ExpectFailure(t, intr.Execute("set prefs nonsense 1"))
	test.ExpectFailure(t, intr.Execute("set prefs prompt"))
	test.ExpectFailure(t, intr.Execute("set prefs save load"))
	test.ExpectFailure(t, intr.Execute("set directory "+filepath.Join(dir, "missing")))

	tw.Clear()
	test.ExpectSuccess(t, intr.Execute("set prefs"))
	test.ExpectSuccess(t, tw.Contains("prompt :: heart"))

	test.ExpectSuccess(t, intr.Execute("set prefs save"))
	_, err := os.Stat(filepath.Join(dir, "prefs.yaml"))
	test.ExpectSuccess(t, err)

	test.ExpectSuccess(t, intr.Execute("set prefs prompt lung"))
	test.ExpectSuccess(t, intr.Execute("set prefs load"))
	test.ExpectEquality(t, intr.Prefs.Prompt.String(), "heart")
}

func TestFiles(t *testing.T) {
	intr, tw, dir := newInterpreter(t, "")

	test.ExpectSuccess(t, intr.Execute("set directory "+dir))
	test.ExpectSuccess(t, intr.Execute("gfx create region heart/left"))
	test.ExpectSuccess(t, intr.Execute("gfx create nodes 1..4 region heart/left"))
	test.ExpectSuccess(t, intr.Execute("gfx write region heart file heart.yaml"))
	test.ExpectFailure(t, intr.Execute("gfx write region heart"))

	test.ExpectSuccess(t, intr.Execute("gfx read region file heart.yaml region copy"))
	tw.Clear()
	test.ExpectSuccess(t, intr.Execute("gfx list nodes region copy/left"))
	test.ExpectSuccess(t, tw.Contains("nodes: 1..4 (4)"))

	test.ExpectSuccess(t, intr.Execute("list_memory graph store.dot"))
	b, err := os.ReadFile(filepath.Join(dir, "store.dot"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, len(b) > 0)

	expectOutstanding(t, intr)
}

func TestSystem(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo command not available")
	}

	intr, tw, _ := newInterpreter(t, "")

	t.Setenv("CMGUI_TEST", "hello")
	test.ExpectSuccess(t, intr.Execute("system echo $CMGUI_TEST"))
	test.ExpectSuccess(t, tw.Contains("hello"))
	test.ExpectFailure(t, intr.Execute("system"))
}

func TestRun(t *testing.T) {
	intr, tw, _ := newInterpreter(t, "gfx create region a\ngfx list region\nquit\ngfx create region b\n")

	test.ExpectSuccess(t, intr.Run(false))
	test.ExpectSuccess(t, !intr.Running())
	test.ExpectSuccess(t, tw.Contains("  a"))

	_, err := intr.Store().FindRegion("a")
	test.ExpectSuccess(t, err)
	_, err = intr.Store().FindRegion("b")
	test.ExpectFailure(t, err)

	// end of input finishes the loop
	intr, _, _ = newInterpreter(t, "gfx create region c")
	test.ExpectSuccess(t, intr.Run(false))
	test.ExpectSuccess(t, intr.Running())
	_, err = intr.Store().FindRegion("c")
	test.ExpectSuccess(t, err)

	// batch mode does not read from the terminal
	intr, _, _ = newInterpreter(t, "gfx create region d\n")
	intr.Queue("gfx create region e")
	test.ExpectSuccess(t, intr.Run(true))
	_, err = intr.Store().FindRegion("d")
	test.ExpectFailure(t, err)
	_, err = intr.Store().FindRegion("e")
	test.ExpectSuccess(t, err)
}
