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

package paths

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cmgui/cmgui/test"
)

func TestResourcePath(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	test.DemandSuccess(t, os.Mkdir(baseResourcePath, 0o700))

	test.ExpectEquality(t, ResourcePath("foo/bar", "baz"), ".cmgui/foo/bar/baz")
	test.ExpectEquality(t, ResourcePath("foo/bar", ""), ".cmgui/foo/bar")
	test.ExpectEquality(t, ResourcePath("", "baz"), ".cmgui/baz")
	test.ExpectEquality(t, ResourcePath(), ".cmgui")
}

func TestResourcePathUserConfig(t *testing.T) {
	cnf, err := os.UserConfigDir()
	if err != nil {
		t.Skip("no user config directory")
	}

	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))

	test.ExpectEquality(t, ResourcePath("preferences.yaml"), filepath.Join(cnf, "cmgui", "preferences.yaml"))
}

func TestUniqueFilename(t *testing.T) {
	n := time.Date(2023, time.March, 4, 5, 6, 7, 0, time.UTC)
	test.ExpectEquality(t, uniqueFilename("journal", "", "com", n), "journal_20230304_050607.com")
	test.ExpectEquality(t, uniqueFilename("graph", " heart ", ".dot", n), "graph_heart_20230304_050607.dot")
	test.ExpectEquality(t, uniqueFilename("x", "", "", n), "x_20230304_050607")
}
