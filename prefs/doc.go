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

// Package prefs holds the preference values of the application and the means
// to persist them.
//
// Values are created with one of the types in the package (Bool, String, Int
// or Float) and bound to a key with a Disk instance:
//
//	var echo prefs.Bool
//	dsk, _ := prefs.NewDisk(paths.ResourcePath("preferences.yaml"))
//	_ = dsk.Add("echo", &echo)
//	_ = dsk.Load()
//
// Preferences can also be specified on the command line in the form
// "key::value; key::value". These are pushed onto a stack with
// PushCommandLineStack() and take precedence over the values in the file the
// next time Load() is called.
package prefs
