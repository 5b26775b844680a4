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

package performance

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/jetsetilly/pixbridge/curated"
)

// ProfileError is the pattern of errors returned by RunProfiler().
const ProfileError = "performance: %v"

// Profile specifies the profiles RunProfiler() should write. An empty
// filename means the profile is not wanted.
type Profile struct {
	CPU string
	Mem string
}

// RunProfiler runs the function and writes the requested profiles. The error
// of the function is returned in preference to any profiling error.
func RunProfiler(prof Profile, run func() error) error {
	if prof.CPU != "" {
		f, err := os.Create(prof.CPU)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer pprof.StopCPUProfile()
	}

	err := run()
	if err != nil {
		return err
	}

	return memProfile(prof.Mem)
}

func memProfile(outFile string) error {
	if outFile == "" {
		return nil
	}

	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}
	defer f.Close()

	runtime.GC()
	err = pprof.WriteHeapProfile(f)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}
	return nil
}
