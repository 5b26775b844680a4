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

// Package serial is an output device for a display panel attached to a
// serial line. The panel controller holds the pixel memory so the device is
// written to one line at a time.
//
// Communication is in frames:
//
//	sync     1 byte  (0xa5)
//	command  1 byte
//	length   2 bytes (little endian, length of payload)
//	payload  length bytes
//	check    1 byte  (exclusive-or of command, length and payload bytes)
//
// Commands sent to the panel:
//
//	cmdInfo     no payload. the panel replies with cmdInfoReply
//	cmdLine     x, y, count (2 bytes each) then count pixel words
//	cmdRefresh  x, y, width, height (2 bytes each, signed)
//
// Commands sent by the panel:
//
//	cmdInfoReply  width, height (2 bytes each), bits-per-pixel (1 byte)
//	cmdTouch      phase (1 byte), x, y (2 bytes each, signed)
//
// The touch phase is 0 for release, 1 for press and 2 for movement.
//
// Pixel words are 1, 2 or 4 bytes wide, depending on the depth, and are
// little endian. If the geometry and depth of the panel are known in advance
// they can be given in the Config and the panel will not be queried.
package serial
