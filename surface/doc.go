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

// Package surface describes the physical output surface and the geometry used
// to address it.
//
// A Descriptor is queried once from the output device when the bridge is
// initialised and is never changed afterwards. A surface with a Memory slice
// is directly addressable. A surface without one can only be written to
// through a device's line-write primitive.
//
// Rectangles use inclusive coordinates. A Rect{0, 0, 0, 0} covers exactly one
// pixel. Rectangles supplied by the rendering engine may extend beyond the
// surface in any direction and are confined to it with Clip().
//
// Color is a packed pixel value in the rendering engine's colour depth. The
// flush strategies store it in the surface's depth by truncation (8 and 16
// bits per pixel) or unchanged (24 and 32 bits per pixel).
package surface
