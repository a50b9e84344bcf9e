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

package curated

import (
	"fmt"
	"strings"
)

// Kind classifies a curated error.
type Kind int

// List of valid Kind values.
const (
	KindUnspecified Kind = iota

	// malformed tokens, missing arguments, out-of-range values, unknown
	// keywords
	KindParse

	// arguments parsed but refer to something that doesn't exist or are used
	// in a combination that isn't allowed
	KindValidation

	// the engine could not perform the request
	KindEngine
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindValidation:
		return "validation"
	case KindEngine:
		return "engine"
	}
	return "unspecified"
}

// curated is an implementation of the go language error interface.
type curated struct {
	pattern string
	values  []interface{}
	kind    Kind
}

// Errorf creates a new curated error.
//
// Note that unlike the Errorf() function in the fmt package the first argument
// is named "pattern" not "format". This is because we use the pattern string
// in the Is() and Has() functions where 'pattern' seems to be more descriptive
// name.
func Errorf(pattern string, values ...interface{}) error {
	er := curated{
		pattern: pattern,
		values:  values,
	}

	// inherit kind from any wrapped curated error
	for _, v := range values {
		if e, ok := v.(curated); ok && e.kind != KindUnspecified {
			er.kind = e.kind
			break
		}
	}

	return er
}

// Parsef creates a new curated error of KindParse.
func Parsef(pattern string, values ...interface{}) error {
	return curated{pattern: pattern, values: values, kind: KindParse}
}

// Validatef creates a new curated error of KindValidation.
func Validatef(pattern string, values ...interface{}) error {
	return curated{pattern: pattern, values: values, kind: KindValidation}
}

// Enginef creates a new curated error of KindEngine.
func Enginef(pattern string, values ...interface{}) error {
	return curated{pattern: pattern, values: values, kind: KindEngine}
}

// Error returns the normalised error message. Normalisation being the removal
// of duplicate adjacent error messsage parts in the error message chains. It
// doesn't affect letter-case or white space.
//
// Implements the go language error interface.
func (er curated) Error() string {
	s := fmt.Sprintf(er.pattern, er.values...)

	p := strings.Split(s, ": ")
	n := make([]string, 0, len(p))
	for i := range p {
		if len(n) > 0 && n[len(n)-1] == p[i] {
			continue
		}
		n = append(n, p[i])
	}

	return strings.Join(n, ": ")
}

// Unwrap returns the first error found in the values of the curated error.
// Allows the errors.Is() and errors.As() functions of the standard library to
// see through a curated error.
func (er curated) Unwrap() error {
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			return e
		}
	}
	return nil
}

// IsAny checks if the error is a curated error.
func IsAny(err error) bool {
	if err == nil {
		return false
	}

	if _, ok := err.(curated); ok {
		return true
	}

	return false
}

// Is checks if error is a curated error with a specific pattern.
func Is(err error, pattern string) bool {
	if err == nil {
		return false
	}

	if er, ok := err.(curated); ok {
		return er.pattern == pattern
	}

	return false
}

// Has checks if error is a curated error with a specific pattern somewhere in
// the chain.
func Has(err error, pattern string) bool {
	if err == nil {
		return false
	}

	if !IsAny(err) {
		return false
	}

	if Is(err, pattern) {
		return true
	}

	for i := range err.(curated).values {
		if e, ok := err.(curated).values[i].(curated); ok {
			if Has(e, pattern) {
				return true
			}
		}
	}

	return false
}

// KindOf returns the Kind of the error. Errors that are not curated are
// always KindUnspecified.
func KindOf(err error) Kind {
	if er, ok := err.(curated); ok {
		return er.kind
	}
	return KindUnspecified
}
