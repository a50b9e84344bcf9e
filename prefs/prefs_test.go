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

package prefs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cmgui/cmgui/curated"
	"github.com/cmgui/cmgui/prefs"
	"github.com/cmgui/cmgui/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "prefs", "preferences.yaml")
}

func TestBool(t *testing.T) {
	var v, w, x prefs.Bool

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("ON"))
	test.ExpectEquality(t, v.String(), "true")
	test.ExpectEquality(t, w.String(), "false")
	test.ExpectEquality(t, x.Get().(bool), true)

	err := v.Set(10)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, prefs.InvalidValue))

	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.String(), "false")
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, v.Get().(int), 10)
	test.ExpectSuccess(t, v.Set(" 99 "))
	test.ExpectEquality(t, v.String(), "99")

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.String(), "99")
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectEquality(t, v.Get().(float64), 0.0)
	test.ExpectSuccess(t, v.Set(float32(0.5)))
	test.ExpectEquality(t, v.String(), "0.5")
	test.ExpectSuccess(t, v.Set("1e3"))
	test.ExpectApproximate(t, v.Get().(float64), 1000, 0.001)
	test.ExpectFailure(t, v.Set("x"))
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	// setting a maximum length crops the existing string
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// removing the limit does not restore the cropped string
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}

func TestHooks(t *testing.T) {
	var s prefs.String
	var seen []string

	s.SetHookPre(func(v prefs.Value) error {
		if v.(string) == "bad" {
			return curated.Errorf("rejected")
		}
		return nil
	})
	s.SetHookPost(func(v prefs.Value) error {
		seen = append(seen, v.(string))
		return nil
	})

	test.ExpectSuccess(t, s.Set("good"))
	test.ExpectFailure(t, s.Set("bad"))
	test.ExpectEquality(t, s.String(), "good")
	test.ExpectEquality(t, strings.Join(seen, ","), "good")
}

func TestDiskAdd(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	var a, b prefs.Bool
	test.ExpectSuccess(t, dsk.Add("echo", &a))
	test.ExpectFailure(t, dsk.Add("echo", &b))
	test.ExpectFailure(t, dsk.Add("bad key", &b))
	test.ExpectFailure(t, dsk.Add("bad::key", &b))
	test.ExpectFailure(t, dsk.Add("", &b))

	test.ExpectFailure(t, dsk.Set("missing", "true"))
	test.ExpectSuccess(t, dsk.Set("echo", "true"))
	v, err := dsk.Get("echo")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, "true")
	test.ExpectEquality(t, dsk.String(), "echo :: true\n")

	_, err = prefs.NewDisk("")
	test.ExpectFailure(t, err)
}

func TestDiskSaveLoad(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var echo prefs.Bool
	var dir prefs.String
	var n prefs.Int
	test.ExpectSuccess(t, dsk.Add("echo", &echo))
	test.ExpectSuccess(t, dsk.Add("directory", &dir))
	test.ExpectSuccess(t, dsk.Add("number", &n))

	// loading a missing file is not an error
	test.ExpectSuccess(t, dsk.Load())

	test.ExpectSuccess(t, echo.Set(true))
	test.ExpectSuccess(t, dir.Set("/tmp/examples"))
	test.ExpectSuccess(t, n.Set(42))
	test.DemandSuccess(t, dsk.Save())

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(data), prefs.WarningBoilerPlate))

	var echo2 prefs.Bool
	var dir2 prefs.String
	var n2 prefs.Int
	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, dsk2.Add("echo", &echo2))
	test.ExpectSuccess(t, dsk2.Add("directory", &dir2))
	test.ExpectSuccess(t, dsk2.Add("number", &n2))
	test.ExpectSuccess(t, dsk2.Load())

	test.ExpectEquality(t, echo2.Get().(bool), true)
	test.ExpectEquality(t, dir2.String(), "/tmp/examples")
	test.ExpectEquality(t, n2.Get().(int), 42)
}

// saving from a second disk instance must not clobber the values written by
// the first
func TestDiskPreservesUnboundKeys(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v2 prefs.Bool
	var s2 prefs.String
	test.ExpectSuccess(t, dsk.Add("test", &v2))
	test.ExpectSuccess(t, dsk.Add("foo", &s2))
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v2.Get().(bool), true)
	test.ExpectEquality(t, s2.String(), "bar")
}

func TestDiskCommandLineOverride(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var prompt prefs.String
	test.ExpectSuccess(t, dsk.Add("prompt", &prompt))
	test.ExpectSuccess(t, prompt.Set("cmgui"))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("prompt::test; unused::1")
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, prompt.String(), "test")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::1")

	// without an override the value in the file is used
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, prompt.String(), "cmgui")
}

func TestDiskLoadBadValue(t *testing.T) {
	fn := tmpPrefFile(t)
	test.DemandSuccess(t, os.MkdirAll(filepath.Dir(fn), 0o700))
	test.DemandSuccess(t, os.WriteFile(fn, []byte("number: lots\n"), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var n prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &n))

	err = dsk.Load()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, prefs.InvalidValue))
}
