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

package performance

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/cmgui/cmgui/curated"
)

// ProfileError is returned when a profile cannot be created.
const ProfileError = "profile: %v"

// ProfileCPU runs the function with the CPU profiler writing to the named
// file. Any error from the function is returned as is.
func ProfileCPU(outFile string, run func() error) error {
	f, err := os.Create(outFile)
	if err != nil {
		return curated.Enginef(ProfileError, err)
	}
	defer f.Close()

	if err := pprof.StartCPUProfile(f); err != nil {
		return curated.Enginef(ProfileError, err)
	}
	defer pprof.StopCPUProfile()

	return run()
}

// ProfileMem writes a heap profile to the named file. A garbage collection
// is forced first so that the profile is up to date.
func ProfileMem(outFile string) error {
	f, err := os.Create(outFile)
	if err != nil {
		return curated.Enginef(ProfileError, err)
	}

	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		_ = f.Close()
		return curated.Enginef(ProfileError, err)
	}

	if err := f.Close(); err != nil {
		return curated.Enginef(ProfileError, err)
	}
	return nil
}
