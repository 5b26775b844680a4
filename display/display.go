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

package display

import (
	"context"

	"github.com/jetsetilly/pixbridge/pointer"
	"github.com/jetsetilly/pixbridge/surface"
)

// Device is the physical output surface.
type Device interface {
	Open() error
	Close() error

	// Info returns the geometry, depth and (for directly addressable devices)
	// the pixel memory of the surface. The device must be open.
	Info() (surface.Descriptor, error)

	// UpdateRect asks the device to repaint the rectangle from the pixel
	// memory. The rectangle may lie partly or wholly outside the surface.
	UpdateRect(x, y, width, height int) error
}

// LineWriter is implemented by devices that accept pixels one scanline at a
// time. The pixels slice is only valid for the duration of the call and the
// run lies entirely within the surface.
type LineWriter interface {
	BlitLine(pixels []surface.Color, x, y, length int)
}

// Producer is implemented by devices that are also a source of pointer input.
// Produce() reports pointer samples until the context is cancelled or the
// device is closed.
type Producer interface {
	Produce(ctx context.Context, rep pointer.Reporter) error
}
