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

// Package model is the in-process store of objects manipulated by commands.
// It stands in for the visualisation engine: regions arranged in a tree,
// fields defined on regions, node and element identifiers, and the named
// graphics objects (materials, spectra and tessellations).
//
// Every object carries an access count. Command handlers borrow objects
// through a Scope and release the scope when the handler returns:
//
//	scope := model.NewScope()
//	defer scope.Release()
//
//	region, err := store.FindRegion(path)
//	if err != nil {
//		return err
//	}
//	model.Acquire(scope, region)
//
// Objects with a non-zero access count cannot be destroyed. Outstanding()
// lists every object that is still accessed and should be empty between
// commands.
package model
