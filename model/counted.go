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

import (
	"fmt"

	"github.com/cmgui/cmgui/curated"
)

// Object is implemented by every type in the store.
type Object interface {
	// a description of the object for messages. for example, "region /heart"
	Describe() string

	AccessCount() int

	access()
	deaccess() error
}

// Counted is embedded in every type in the store and implements the access
// count part of the Object interface.
type Counted struct {
	count int
}

// AccessCount returns the number of outstanding accesses.
func (c *Counted) AccessCount() int {
	return c.count
}

// InUse returns true if the access count is greater than zero.
func (c *Counted) InUse() bool {
	return c.count > 0
}

func (c *Counted) access() {
	c.count++
}

func (c *Counted) deaccess() error {
	if c.count <= 0 {
		return fmt.Errorf("count is %d", c.count)
	}
	c.count--
	return nil
}

// Access increments the access count of the object. Every call must be
// matched by a call to Deaccess(). Prefer using a Scope.
func Access(o Object) {
	o.access()
}

// Deaccess decrements the access count of the object. It is an error to
// deaccess an object that has not been accessed.
func Deaccess(o Object) error {
	if err := o.deaccess(); err != nil {
		return curated.Enginef(AccessUnderflow, o.Describe())
	}
	return nil
}

// Scope records accesses made during a command so that they can all be
// released together. The zero value is ready to use.
type Scope struct {
	borrowed []Object
	released bool
}

// NewScope is the preferred method of initialisation for the Scope type.
func NewScope() *Scope {
	return &Scope{
		borrowed: make([]Object, 0, 4),
	}
}

// Access increments the access count of the object and records it in the
// scope. Objects accessed after Release() has been called are released
// immediately by the next call to Release().
func (s *Scope) Access(o Object) {
	o.access()
	s.borrowed = append(s.borrowed, o)
	s.released = false
}

// Acquire is a convenience wrapper for Scope.Access() that returns the object.
func Acquire[T Object](s *Scope, o T) T {
	s.Access(o)
	return o
}

// Len returns the number of accesses recorded in the scope that have not been
// released.
func (s *Scope) Len() int {
	return len(s.borrowed)
}

// Release deaccesses every recorded object in the reverse order to which they
// were accessed. Calling Release() more than once has no effect.
func (s *Scope) Release() error {
	if s.released {
		return nil
	}
	s.released = true

	var err error
	for i := len(s.borrowed) - 1; i >= 0; i-- {
		if e := Deaccess(s.borrowed[i]); e != nil && err == nil {
			err = e
		}
	}
	s.borrowed = s.borrowed[:0]

	return err
}
