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

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/pixbridge/paths"
	"github.com/jetsetilly/pixbridge/test"
)

func TestResourcePath(t *testing.T) {
	t.Chdir(t.TempDir())

	// the base directory is only used if it exists
	test.DemandSuccess(t, os.Mkdir(".pixbridge", 0o700))

	test.ExpectEquality(t, paths.ResourcePath("foo/bar", "baz"), ".pixbridge/foo/bar/baz")
	test.ExpectEquality(t, paths.ResourcePath("foo/bar", ""), ".pixbridge/foo/bar")
	test.ExpectEquality(t, paths.ResourcePath("", "baz"), ".pixbridge/baz")
	test.ExpectEquality(t, paths.ResourcePath("", ""), ".pixbridge")
}

func TestConfigDir(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := os.UserConfigDir()
	if err != nil {
		t.Skip("no user config directory")
	}
	test.ExpectEquality(t, paths.ResourcePath("preferences"), filepath.Join(cfg, "pixbridge", "preferences"))
}

func TestPrepare(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "a", "b", "preferences")
	test.DemandSuccess(t, paths.Prepare(pth))

	fi, err := os.Stat(filepath.Dir(pth))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fi.IsDir())
}
