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
	"github.com/jetsetilly/pixbridge/curated"
	"github.com/jetsetilly/pixbridge/logger"
	"github.com/jetsetilly/pixbridge/surface"
)

// NotDirect is the pattern of the error returned by NewDirectMemory() when
// the surface has no memory.
const NotDirect = "flush: surface is not directly addressable"

// DirectMemory writes to the memory of the surface.
type DirectMemory struct {
	desc   surface.Descriptor
	notify Notifier
}

// NewDirectMemory is the preferred method of initialisation for the
// DirectMemory type.
func NewDirectMemory(desc surface.Descriptor, notify Notifier) (*DirectMemory, error) {
	if !desc.Direct() {
		return nil, curated.Errorf(NotDirect)
	}
	if err := desc.Validate(); err != nil {
		return nil, curated.Errorf("flush: %v", err)
	}
	return &DirectMemory{
		desc:   desc,
		notify: notify,
	}, nil
}

func (s *DirectMemory) String() string {
	return "direct memory"
}

// Flush implements the Strategy interface.
//
// Pixel writes are complete before the repaint notification is made and the
// notification is made before FlushReady() is called.
func (s *DirectMemory) Flush(area surface.Rect, colors []surface.Color, ack Acknowledger) {
	defer ack.FlushReady()

	act, ok := surface.Clip(area, s.desc)
	if !ok || short(area, colors) {
		return
	}

	mem := s.desc.Memory
	bpp := s.desc.BitsPerPixel

	// columns of each row that are outside the surface. the buffer still
	// holds entries for these columns
	skipLeft := act.X1 - area.X1
	skipRight := area.X2 - act.X2

	i := start(area, act)
	for y := act.Y1; y <= act.Y2; y++ {
		row := y * s.desc.Width
		for x := act.X1; x <= act.X2; x++ {
			surface.Store(mem, bpp, x+row, colors[i])
			i++
		}
		i += skipRight + skipLeft
	}

	// the notification covers the area as requested, not as clipped
	err := s.notify.UpdateRect(area.X1, area.Y1, area.Width(), area.Height())
	if err != nil {
		logger.Logf(logger.Allow, "flush", "repaint notification: %v", err)
	}
}
