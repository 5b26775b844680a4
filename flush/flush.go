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

package flush

import (
	"github.com/jetsetilly/pixbridge/logger"
	"github.com/jetsetilly/pixbridge/surface"
)

// Acknowledger is told when the colour buffer may be reused.
type Acknowledger interface {
	FlushReady()
}

// Notifier is the part of the output device that repaints a rectangle of a
// directly addressable surface.
type Notifier interface {
	UpdateRect(x, y, width, height int) error
}

// LineWriter is the part of the output device that writes a run of pixels to
// a single scanline. The pixels slice is only valid for the duration of the
// call.
type LineWriter interface {
	BlitLine(pixels []surface.Color, x, y, length int)
}

// Strategy is implemented by DirectMemory and LineBlit.
type Strategy interface {
	Flush(area surface.Rect, colors []surface.Color, ack Acknowledger)
}

// start returns the index of the first in-bounds colour of the buffer.
func start(area surface.Rect, act surface.Rect) int {
	return (act.Y1-area.Y1)*area.Width() + (act.X1 - area.X1)
}

// short checks that the colour buffer covers the requested area. A short
// buffer is a fault in the rendering engine and is logged.
func short(area surface.Rect, colors []surface.Color) bool {
	if len(colors) < area.Size() {
		logger.Logf(logger.Allow, "flush", "colour buffer of %d entries too short for %v", len(colors), area)
		return true
	}
	return false
}
