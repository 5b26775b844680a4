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

// Package fbdev is an output device for the Linux framebuffer (/dev/fb0 and
// similar). The framebuffer memory is mapped into the process and so the
// device is directly addressable.
//
// The device does not change the mode of the framebuffer. The geometry and
// depth are those of the current mode. Packed 24 bit modes, where a pixel
// occupies three bytes, are not supported.
//
// The device is only available on Linux. On other platforms Open() will
// always fail.
package fbdev

// DefaultPath is the framebuffer device used if no other path is given.
const DefaultPath = "/dev/fb0"

// Error patterns.
const (
	NotOpen     = "fbdev: device is not open"
	OpenFailed  = "fbdev: %v"
	Unavailable = "fbdev: framebuffer devices are not available on this platform"
	PackedPixel = "fbdev: packed 24 bit framebuffers are not supported"
)
