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

	"github.com/cmgui/cmgui/curated"
	"github.com/cmgui/cmgui/paths"
	"github.com/cmgui/cmgui/prefs"
)

// NotADirectory is returned when the directory preference is set to
// something other than a directory.
const NotADirectory = "not a directory: %s"

// Preferences collates the preference values used by the interpreter.
type Preferences struct {
	dsk *prefs.Disk

	// echo commands run from comfiles
	Echo prefs.Bool

	// directory used to resolve relative filenames
	Directory prefs.String

	// prompt content
	Prompt prefs.String

	// precede every journal entry with a timestamp
	JournalTimestamps prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// newPreferences is the preferred method of initialisation for the
// Preferences type. An empty filename means the default preferences file in
// the resource directory.
func newPreferences(intr *Interpreter, filename string) (*Preferences, error) {
	if filename == "" {
		filename = paths.ResourcePath(prefs.DefaultPrefsFile)
	}

	p := &Preferences{}

	var err error
	p.dsk, err = prefs.NewDisk(filename)
	if err != nil {
		return nil, err
	}

	p.Directory.SetHookPre(func(v prefs.Value) error {
		d := v.(string)
		if d == "" {
			return nil
		}
		info, err := os.Stat(d)
		if err != nil || !info.IsDir() {
			return curated.Validatef(NotADirectory, d)
		}
		return nil
	})

	p.JournalTimestamps.SetHookPost(func(v prefs.Value) error {
		intr.scribe.Timestamps = v.(bool)
		return nil
	})

	// defaults. set before binding to the disk so that they are overwritten by
	// values in the file
	if err := p.Prompt.Set("cmgui"); err != nil {
		return nil, err
	}

	if err := p.dsk.Add("echo", &p.Echo); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("directory", &p.Directory); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("prompt", &p.Prompt); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("journal.timestamps", &p.JournalTimestamps); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// Set the value of the preference with the key.
func (p *Preferences) Set(key string, value string) error {
	return p.dsk.Set(key, value)
}

// Keys returns the list of preference keys.
func (p *Preferences) Keys() []string {
	return p.dsk.Keys()
}

func (p *Preferences) load() error {
	return p.dsk.Load()
}

func (p *Preferences) save() error {
	return p.dsk.Save()
}
