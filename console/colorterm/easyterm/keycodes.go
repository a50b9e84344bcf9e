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

package easyterm

// list of ASCII codes for non-alphanumeric characters.
const (
	KeyInterrupt      = 3 // end-of-text character
	KeyEndOfFile      = 4
	KeySuspend        = 26 // substitute character
	KeyTab            = 9
	KeyCarriageReturn = 13
	KeyEsc            = 27
	KeyBackspace      = 127
	KeyCtrlH          = 8
)

// list of ASCII code for characters that can follow KeyEsc.
const (
	EscCursor = 91
)

// list of ASCII code for characters that can follow EscCursor.
const (
	CursorUp       = 65
	CursorDown     = 66
	CursorForward  = 67
	CursorBackward = 68
	CursorHome     = 72
	CursorEnd      = 70
	CursorDelete   = 51
)
