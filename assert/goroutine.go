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

// Package assert contains checks that are useful during development and
// testing.
package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// GoroutineID returns an identifier for the calling goroutine. The result is
// different between goroutines and consistent for a given goroutine. It
// should only be used for debugging and testing.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner records the goroutine on which it was created. Used by types that
// must only be accessed from one goroutine.
type Owner struct {
	id uint64
}

// NewOwner returns an Owner for the calling goroutine.
func NewOwner() Owner {
	return Owner{id: GoroutineID()}
}

// Check panics if called from a goroutine other than the owner.
func (o Owner) Check() {
	if id := GoroutineID(); id != o.id {
		panic(fmt.Sprintf("assert: called from goroutine %d (owner %d)", id, o.id))
	}
}

// IsOwner returns true if called from the owning goroutine.
func (o Owner) IsOwner() bool {
	return GoroutineID() == o.id
}
