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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Patterns used in this way should be stored as a const
// string in the package that owns them, suitably named. For example:
//
//	const RegionNotFound = "unknown region: %s"
//
//	e := curated.Errorf(RegionNotFound, "/heart")
//	if curated.Is(e, RegionNotFound) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
// Every curated error also carries a Kind. The interpreter reports all
// failures through the same channel but it is sometimes useful to know
// whether the user typed something that could not be parsed (KindParse),
// typed something that parsed but made no sense (KindValidation) or whether
// the underlying engine refused the request (KindEngine). Errors created with
// the plain Errorf() function inherit the kind of the first curated error in
// their values, or KindUnspecified if there is none.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For example:
//
//	e := curated.Errorf("gfx: %v", curated.Errorf("gfx: unknown option: foo"))
//
// will print as:
//
//	gfx: unknown option: foo
//
// For the purposes of this package we think of chains as being composed of
// parts separted by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
package curated
