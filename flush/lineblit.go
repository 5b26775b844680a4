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
	"github.com/jetsetilly/pixbridge/surface"
)

// LineBlit writes to the surface one scanline at a time.
type LineBlit struct {
	desc surface.Descriptor
	line LineWriter
}

// NewLineBlit is the preferred method of initialisation for the LineBlit
// type.
func NewLineBlit(desc surface.Descriptor, line LineWriter) *LineBlit {
	return &LineBlit{
		desc: desc,
		line: line,
	}
}

func (s *LineBlit) String() string {
	return "line blit"
}

// Flush implements the Strategy interface.
//
// The line-write primitive is synchronous so the buffer is acknowledged as
// soon as the last line has been written. No repaint notification is made.
func (s *LineBlit) Flush(area surface.Rect, colors []surface.Color, ack Acknowledger) {
	defer ack.FlushReady()

	act, ok := surface.Clip(area, s.desc)
	if !ok || short(area, colors) {
		return
	}

	stride := area.Width()
	length := act.X2 - act.X1 + 1

	i := start(area, act)
	for y := act.Y1; y <= act.Y2; y++ {
		s.line.BlitLine(colors[i:i+length], act.X1, y, length)
		i += stride
	}
}
