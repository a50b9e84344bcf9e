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

// Package modalflag wraps the flag package of the standard library. It adds
// program modes, each with its own set of flags.
//
// Arguments are supplied with NewArgs() and parsed with Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "CHECK")
//	p, err := md.Parse()
//
// After flags have been parsed, the first remaining argument is compared
// (case insensitively) with the sub-modes. If it matches, the mode is
// selected and the argument consumed. If it doesn't, the first sub-mode is
// selected as the default. Mode() returns the selected mode.
//
// Each mode can then add its own flags by calling NewMode() followed by the
// Add*() functions and another call to Parse():
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		batch := md.AddBool("batch", false, "exit after running comfiles")
//		p, err := md.Parse()
//	}
//
// Parse() prints help for the "-help" flag and returns ParseHelp. The help
// lists the flags of the current mode and any sub-modes.
package modalflag
