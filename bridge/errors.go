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

package bridge

// Error patterns returned by Init().
const (
	DeviceNotFound   = "bridge: no device named %q"
	DeviceOpen       = "bridge: cannot open %s: %v"
	DeviceInfo       = "bridge: cannot query %s: %v"
	UnsupportedDepth = "bridge: unsupported bits-per-pixel (%d)"
	DepthMismatch    = "bridge: surface is %dbpp but the engine produces %dbpp (build the engine for %dbpp)"
	AllocationFailed = "bridge: cannot allocate scratch buffer of %dx%d"
	NoLineWriter     = "bridge: %s has no pixel memory and cannot write lines"
	Strategy         = "bridge: %v"
	TickStart        = "bridge: cannot start tick driver: %v"
)

// NoPrefsFile is the pattern of the error returned by SaveFile() when the
// preferences were not loaded from a file.
const NoPrefsFile = "bridge: preferences have no file"
