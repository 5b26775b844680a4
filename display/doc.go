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

// Package display defines the interface to the physical output surface and a
// registry through which devices are found by name.
//
// The sub-packages contain the concrete devices:
//
//	memfb       in-memory framebuffer, directly addressable
//	fbdev       Linux framebuffer device, directly addressable
//	sdlwin      SDL window, directly addressable or by line through OpenGL
//	serial      panel controller on a serial line, by line only
//	tcellterm   terminal cells, by line only
//
// A device is directly addressable if the Memory field of the descriptor
// returned by Info() is not nil. Other devices must implement the LineWriter
// interface.
package display
