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

// Package script manages the sources of commands other than the user. The
// Queue type divides input into commands and dishes out those commands one
// at a time. Command files (comfiles) are loaded into the queue.
//
// The Scribe type records commands to a journal file. A journal is itself a
// valid comfile and can be replayed with the open comfile command. Comment
// lines begin with the # symbol.
package script

// Sentinel error patterns.
const (
	ScriptFileUnavailable = "script: file unavailable: %v"
	ScriptFileError       = "script: %v"
	ScribeError           = "journal: %v"
)
