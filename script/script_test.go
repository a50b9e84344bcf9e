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

package script_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cmgui/cmgui/curated"
	"github.com/cmgui/cmgui/script"
	"github.com/cmgui/cmgui/test"
	"github.com/google/go-cmp/cmp"
)

func entries(q *script.Queue) []string {
	e := make([]string, 0)
	for ln, ok := q.Next(); ok; ln, ok = q.Next() {
		e = append(e, ln.Entry)
	}
	return e
}

func TestQueue(t *testing.T) {
	var q script.Queue

	q.Push("gfx create region a; gfx list region\r\n# comment\n   \nquit")
	test.ExpectEquality(t, q.Len(), 3)

	ln, ok := q.Next()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ln.Entry, "gfx create region a")
	test.ExpectFailure(t, ln.Batch())

	if diff := cmp.Diff([]string{"gfx list region", "quit"}, entries(&q)); diff != "" {
		t.Errorf("unexpected queue (-want +got):\n%s", diff)
	}
	test.ExpectFailure(t, q.More())

	// semi-colons inside quotes do not separate commands
	q.Push(`system "echo a;b" ; quit`)
	if diff := cmp.Diff([]string{`system "echo a;b"`, "quit"}, entries(&q)); diff != "" {
		t.Errorf("unexpected queue (-want +got):\n%s", diff)
	}
}

func TestQueueLoad(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "example.com")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("# example\ngfx create region a\n\ngfx list region\n"), 0o644))

	var q script.Queue
	q.Push("quit")

	test.DemandSuccess(t, q.Load(fn, 2))
	test.ExpectEquality(t, q.Len(), 5)

	ln, ok := q.Next()
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, ln.Batch())
	test.ExpectEquality(t, ln.Source, fn)
	test.ExpectEquality(t, ln.Number, 2)

	if diff := cmp.Diff([]string{"gfx list region", "gfx create region a", "gfx list region", "quit"}, entries(&q)); diff != "" {
		t.Errorf("unexpected queue (-want +got):\n%s", diff)
	}

	// files with the same name in different directories are distinguished
	sub := filepath.Join(dir, "sub")
	test.DemandSuccess(t, os.Mkdir(sub, 0o755))
	fn2 := filepath.Join(sub, "example.com")
	test.DemandSuccess(t, os.WriteFile(fn2, []byte("gfx list region\n"), 0o644))

	var q2 script.Queue
	test.DemandSuccess(t, q2.Load(fn, 1))
	test.DemandSuccess(t, q2.Load(fn2, 1))
	ln, _ = q2.Next()
	test.ExpectEquality(t, ln.Source, fn2)
	ln, _ = q2.Next()
	test.ExpectEquality(t, ln.Source, fn)
	test.ExpectInequality(t, fn, fn2)

	err := q.Load(filepath.Join(dir, "missing.com"), 1)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptFileUnavailable))
}

func TestScribe(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "journal.com")

	var scr script.Scribe
	test.ExpectFailure(t, scr.IsActive())

	// writing when not active has no effect
	scr.WriteInput("ignored")
	test.ExpectSuccess(t, scr.Commit())

	test.DemandSuccess(t, scr.StartSession(fn))
	test.ExpectSuccess(t, scr.IsActive())
	test.ExpectFailure(t, scr.StartSession(fn))

	scr.WriteInput("gfx create region a")
	test.ExpectSuccess(t, scr.Commit())

	scr.WriteInput("gfx wibble")
	scr.Rollback()

	scr.WriteInput("open comfile example.com")
	scr.StartPlayback()
	scr.WriteInput("from the comfile")
	scr.EndPlayback()

	scr.WriteInput("quit")
	test.ExpectSuccess(t, scr.EndSession())
	test.ExpectFailure(t, scr.IsActive())

	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), "gfx create region a\nopen comfile example.com\nquit\n")

	// the journal file now exists
	err = scr.StartSession(fn)
	test.ExpectEquality(t, curated.KindOf(err), curated.KindValidation)
}
