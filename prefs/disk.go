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

package prefs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cmgui/cmgui/curated"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Sentinel error patterns for the Disk type.
const (
	DiskError    = "prefs: %v"
	UnknownKey   = "prefs: unknown key (%s)"
	DuplicateKey = "prefs: duplicate key (%s)"
)

// DefaultPrefsFile is the name of the preferences file in the resource
// directory.
const DefaultPrefsFile = "preferences.yaml"

// WarningBoilerPlate is written at the start of every preferences file.
const WarningBoilerPlate = "# preferences file for cmgui. edit with care"

// Disk binds keys to pref values and loads and saves them to a file.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file is not read until Load() is called.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Enginef(DiskError, "empty path")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Path returns the filename of the preferences file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add binds a key to a pref value. Keys must not contain whitespace or the
// command line separators.
func (dsk *Disk) Add(key string, p pref) error {
	if key == "" || strings.ContainsAny(key, " \t\n;") || strings.Contains(key, "::") {
		return curated.Enginef(DiskError, fmt.Sprintf("invalid key (%s)", key))
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Enginef(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// Keys returns the sorted list of bound keys.
func (dsk *Disk) Keys() []string {
	keys := maps.Keys(dsk.entries)
	slices.Sort(keys)
	return keys
}

// Set the value of a bound key from a string.
func (dsk *Disk) Set(key string, value string) error {
	p, ok := dsk.entries[key]
	if !ok {
		return curated.Validatef(UnknownKey, key)
	}
	return p.Set(value)
}

// Get returns the string representation of a bound key.
func (dsk *Disk) Get(key string) (string, error) {
	p, ok := dsk.entries[key]
	if !ok {
		return "", curated.Validatef(UnknownKey, key)
	}
	return p.String(), nil
}

// Reset all bound values to their zero value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.Keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}
	return nil
}

// String returns every bound key and value on its own line.
func (dsk *Disk) String() string {
	var s strings.Builder
	for _, k := range dsk.Keys() {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, dsk.entries[k]))
	}
	return s.String()
}

// read the preferences file. a missing file is not an error.
func (dsk *Disk) read() (map[string]string, error) {
	data := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return data, nil
		}
		return nil, err
	}
	defer f.Close()

	err = yaml.NewDecoder(f).Decode(&data)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return data, nil
}

// Save the bound values to disk. Entries in the existing file that are not
// bound to this Disk are preserved.
func (dsk *Disk) Save() error {
	data, err := dsk.read()
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	var b bytes.Buffer
	b.WriteString(WarningBoilerPlate)
	b.WriteString("\n")
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return curated.Errorf(DiskError, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(DiskError, err)
	}

	if dir := filepath.Dir(dsk.path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}

	if err := os.WriteFile(dsk.path, b.Bytes(), 0o600); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Load bound values from disk. Values on the top of the command line stack
// take precedence over the values in the file. Entries in the file that are
// not bound to this Disk are ignored.
func (dsk *Disk) Load() error {
	data, err := dsk.read()
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	for _, k := range dsk.Keys() {
		p := dsk.entries[k]

		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, err)
			}
			continue
		}

		if v, ok := data[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, err)
			}
		}
	}

	return nil
}
