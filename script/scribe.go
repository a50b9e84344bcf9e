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

package script

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cmgui/cmgui/curated"
)

// Scribe records commands to a journal file.
type Scribe struct {
	file        *os.File
	journalfile string

	// the depth of comfile playback during the writing of a journal.
	// commands from a comfile are not recorded
	playbackDepth int

	inputLine string

	// precede each command with a comment line containing the time
	Timestamps bool
}

// IsActive returns true if a journal is currently being written.
func (scr *Scribe) IsActive() bool {
	return scr.file != nil
}

// Filename returns the name of the current journal file.
func (scr *Scribe) Filename() string {
	return scr.journalfile
}

// StartSession begins a new journal. The file must not already exist.
func (scr *Scribe) StartSession(journalfile string) error {
	if scr.IsActive() {
		return curated.Validatef(ScribeError, "already active")
	}

	_, err := os.Stat(journalfile)
	if !os.IsNotExist(err) {
		return curated.Validatef(ScribeError, "file already exists")
	}

	scr.file, err = os.Create(journalfile)
	if err != nil {
		return curated.Enginef(ScribeError, "cannot create new journal file")
	}
	scr.journalfile = journalfile

	return nil
}

// EndSession the current journal.
func (scr *Scribe) EndSession() error {
	if !scr.IsActive() {
		return nil
	}

	defer func() {
		scr.file = nil
		scr.journalfile = ""
		scr.playbackDepth = 0
		scr.inputLine = ""
	}()

	// make sure everything has been written to the output file
	err := scr.Commit()

	// if Commit() causes an error, continue with the Close() operation and
	// return the Commit() error if the close succeeds
	errClose := scr.file.Close()
	if errClose != nil {
		return curated.Enginef(ScribeError, errClose)
	}

	return err
}

// StartPlayback indicates that a comfile has begun.
func (scr *Scribe) StartPlayback() {
	if !scr.IsActive() {
		return
	}
	_ = scr.Commit()
	scr.playbackDepth++
}

// EndPlayback indicates that a comfile has finished.
func (scr *Scribe) EndPlayback() {
	if !scr.IsActive() || scr.playbackDepth == 0 {
		return
	}
	_ = scr.Commit()
	scr.playbackDepth--
}

// Rollback undoes the most recent call to WriteInput().
func (scr *Scribe) Rollback() {
	scr.inputLine = ""
}

// WriteInput prepares a command to be written to the journal. The command is
// not written until Commit() is called.
func (scr *Scribe) WriteInput(command string) {
	if !scr.IsActive() || scr.playbackDepth > 0 {
		return
	}

	_ = scr.Commit()
	if command != "" {
		if scr.Timestamps {
			scr.inputLine = fmt.Sprintf("%s %s\n%s\n", commentLine, time.Now().Format(time.RFC3339), command)
		} else {
			scr.inputLine = fmt.Sprintf("%s\n", command)
		}
	}
}

// Commit the most recent call to WriteInput().
func (scr *Scribe) Commit() error {
	if !scr.IsActive() {
		return nil
	}

	defer func() {
		scr.inputLine = ""
	}()

	if scr.inputLine != "" {
		n, err := io.WriteString(scr.file, scr.inputLine)
		if err != nil {
			return curated.Enginef(ScribeError, err)
		}
		if n != len(scr.inputLine) {
			return curated.Enginef(ScribeError, "output truncated")
		}
	}

	return nil
}
