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

package curated_test

import (
	"errors"
	"io"
	"testing"

	"github.com/cmgui/cmgui/curated"
	"github.com/cmgui/cmgui/test"
)

const testError = "test error: %s"
const testErrorB = "test error B: %s"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf(testError, e)
	test.ExpectEquality(t, f.Error(), "test error: foo")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectSuccess(t, curated.Is(e, testError))
	test.ExpectFailure(t, curated.Is(e, testErrorB))

	// Has() should fail because we haven't included testErrorB anywhere in the error
	test.ExpectFailure(t, curated.Has(e, testErrorB))

	// packing errors of different types next to each other
	f := curated.Errorf(testErrorB, e)
	test.ExpectFailure(t, curated.Is(f, testError))
	test.ExpectSuccess(t, curated.Is(f, testErrorB))
	test.ExpectSuccess(t, curated.Has(f, testError))
	test.ExpectSuccess(t, curated.Has(f, testErrorB))
}

func TestPlainErrors(t *testing.T) {
	e := errors.New("plain error")
	test.ExpectFailure(t, curated.IsAny(e))

	f := curated.Errorf("curated error: %v", e)
	test.ExpectSuccess(t, curated.IsAny(f))
	test.ExpectSuccess(t, errors.Is(f, e))

	g := curated.Errorf("read failed: %v", io.EOF)
	test.ExpectSuccess(t, errors.Is(g, io.EOF))
}

func TestKinds(t *testing.T) {
	e := curated.Parsef("unknown option: %s", "foo")
	test.ExpectEquality(t, curated.KindOf(e), curated.KindParse)

	// wrapping inherits the kind of the wrapped error
	f := curated.Errorf("gfx create: %v", e)
	test.ExpectEquality(t, curated.KindOf(f), curated.KindParse)

	g := curated.Enginef("cannot write file: %v", f)
	test.ExpectEquality(t, curated.KindOf(g), curated.KindEngine)

	test.ExpectEquality(t, curated.KindOf(errors.New("plain")), curated.KindUnspecified)
	test.ExpectEquality(t, curated.KindOf(curated.Errorf("no kind")), curated.KindUnspecified)
}
