// This file is part of Pixbridge.
//
// Pixbridge is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Pixbridge is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Pixbridge.  If not, see <https://www.gnu.org/licenses/>.

package curated_test

import (
	"errors"
	"os"
	"testing"

	"github.com/jetsetilly/pixbridge/curated"
	"github.com/jetsetilly/pixbridge/test"
)

const testPattern = "device: %s"
const testPatternB = "bridge: %v"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf(testPattern, "fb0")
	test.ExpectEquality(t, e.Error(), "device: fb0")

	// packing errors of the same type next to each other causes one of them
	// to be dropped
	f := curated.Errorf("device: %v", e)
	test.ExpectEquality(t, f.Error(), "device: fb0")

	// non-adjacent duplicates survive
	g := curated.Errorf("device: fb0: bridge: %v", curated.Errorf("fb0"))
	test.ExpectEquality(t, g.Error(), "device: fb0: bridge: fb0")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, "fb0")
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, testPatternB))

	f := curated.Errorf(testPatternB, e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Is(f, testPatternB))

	test.ExpectFailure(t, curated.Is(nil, testPattern))
	test.ExpectFailure(t, curated.Is(errors.New("device: fb0"), testPattern))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, "fb0")
	f := curated.Errorf(testPatternB, e)
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPatternB))
	test.ExpectFailure(t, curated.Has(f, "unused: %v"))
	test.ExpectFailure(t, curated.Has(nil, testPattern))
}

func TestIsAny(t *testing.T) {
	test.ExpectSuccess(t, curated.IsAny(curated.Errorf("curated")))
	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf("fbdev: %v", os.ErrNotExist)
	test.ExpectSuccess(t, errors.Is(e, os.ErrNotExist))

	f := curated.Errorf(testPatternB, e)
	test.ExpectSuccess(t, errors.Is(f, os.ErrNotExist))
}
