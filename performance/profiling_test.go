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

package performance_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/pixbridge/performance"
	"github.com/jetsetilly/pixbridge/test"
)

func TestRunProfiler(t *testing.T) {
	dir := t.TempDir()
	prof := performance.Profile{
		CPU: filepath.Join(dir, "cpu.profile"),
		Mem: filepath.Join(dir, "mem.profile"),
	}

	ran := false
	err := performance.RunProfiler(prof, func() error {
		ran = true
		return nil
	})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ran)

	for _, f := range []string{prof.CPU, prof.Mem} {
		fi, err := os.Stat(f)
		test.DemandSuccess(t, err)
		test.ExpectInequality(t, fi.Size(), int64(0))
	}
}

func TestRunProfilerError(t *testing.T) {
	dir := t.TempDir()
	prof := performance.Profile{Mem: filepath.Join(dir, "mem.profile")}

	failed := errors.New("failed")
	err := performance.RunProfiler(prof, func() error {
		return failed
	})
	test.ExpectEquality(t, err, failed)

	// no heap profile is written if the function fails
	_, err = os.Stat(prof.Mem)
	test.ExpectSuccess(t, errors.Is(err, os.ErrNotExist))
}

func TestNoProfiles(t *testing.T) {
	err := performance.RunProfiler(performance.Profile{}, func() error {
		return nil
	})
	test.ExpectSuccess(t, err)
}
