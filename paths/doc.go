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

// Package paths prepares the paths to cmgui resources.
//
// ResourcePath() prepends the resource with the base resource directory. For
// example, the path to the preferences file:
//
//	pth := paths.ResourcePath("preferences.yaml")
//
// If a directory named ".cmgui" exists in the current directory then that is
// used as the base. Otherwise the "cmgui" directory in the user's config
// directory is used, as reported by os.UserConfigDir(). On Linux this results
// in:
//
//	/home/user/.config/cmgui/preferences.yaml
//
// The base directory is not created by this package.
package paths
