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

// Package flush implements the two ways a colour buffer from the rendering
// engine is transferred to the output surface.
//
// DirectMemory writes into the surface's memory and then asks the device to
// repaint the rectangle. LineBlit hands the buffer to the device one scanline
// at a time. The bridge chooses one of them when it is initialised, depending
// on whether the surface has memory, and never changes it afterwards.
//
// In both cases the colour buffer covers the rectangle as the engine requested
// it, before clipping. A rectangle that misses the surface entirely causes no
// writes and no notification.
//
// Flush() always finishes by calling FlushReady() on the Acknowledger, after
// which the engine is free to reuse the colour buffer. The strategies never
// keep a reference to the buffer.
package flush
