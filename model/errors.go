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

package model

// Sentinel error patterns.
const (
	RegionNotFound    = "region not found: %s"
	RegionExists      = "region already exists: %s"
	RegionInUse       = "region in use: %s"
	InvalidRegionPath = "invalid region path: %s"
	InvalidName       = "invalid name: %q"

	FieldNotFound = "field not found: %s"
	FieldExists   = "field already exists: %s"
	FieldInUse    = "field in use: %s"

	ObjectNotFound = "%s not found: %s"
	ObjectExists   = "%s already exists: %s"
	ObjectInUse    = "%s in use: %s"

	AccessUnderflow = "deaccess of unaccessed object: %s"

	ExportError = "export: %v"
	ImportError = "import: %v"
)
