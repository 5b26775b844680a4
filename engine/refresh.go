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

package engine

import (
	"time"

	"github.com/jetsetilly/pixbridge/curated"
	"github.com/jetsetilly/pixbridge/surface"
)

type acknowledger struct {
	ready chan bool
}

// FlushReady implements the Acknowledger interface. Calling it more than once
// for a single flush has no additional effect.
func (a acknowledger) FlushReady() {
	select {
	case a.ready <- true:
	default:
	}
}

// Invalidate marks the area of the screen as needing to be repainted. Areas
// that overlap are merged. Invalidations before a display is registered are
// ignored.
func (e *Engine) Invalidate(area surface.Rect) {
	e.crit.Lock()
	defer e.crit.Unlock()

	if e.flush == nil {
		return
	}

	area, ok := surface.Clip(area, e.screen)
	if !ok || area.Empty() {
		return
	}

	// keep merging until the area overlaps nothing else in the list
	for i := 0; i < len(e.dirty); {
		d := e.dirty[i]
		if d.Contains(area) {
			return
		}
		if d.Intersects(area) {
			area = area.Union(d)
			e.dirty = append(e.dirty[:i], e.dirty[i+1:]...)
			i = 0
			continue
		}
		i++
	}

	if len(e.dirty) >= maxDirty {
		e.dirty = append(e.dirty[:0], e.screen.Bounds())
		return
	}
	e.dirty = append(e.dirty, area)
}

// Dirty returns a copy of the list of areas waiting to be repainted.
func (e *Engine) Dirty() []surface.Rect {
	e.crit.Lock()
	defer e.crit.Unlock()
	return append([]surface.Rect(nil), e.dirty...)
}

// Refresh repaints every dirty area. Each area is painted into the scratch
// buffer in bands, the height of which is limited by the size of the buffer.
// Each band is flushed to the display and the next band is not painted until
// the flush has been acknowledged.
func (e *Engine) Refresh(p Painter) error {
	e.crit.Lock()
	if !e.initialised {
		e.crit.Unlock()
		return curated.Errorf(NotInitialised)
	}
	if e.flush == nil {
		e.crit.Unlock()
		return curated.Errorf(NoDisplay)
	}
	dirty := append([]surface.Rect(nil), e.dirty...)
	e.dirty = e.dirty[:0]
	buf := e.buf
	flush := e.flush
	e.crit.Unlock()

	for _, area := range dirty {
		for _, band := range bands(area, len(buf)) {
			colors := buf[:band.Size()]
			p.Paint(band, colors)

			// a stale acknowledgement from a previous flush must not be
			// mistaken for this one
			select {
			case <-e.ack.ready:
			default:
			}

			flush(e.ack, band, colors)
			e.flushes.Add(1)

			select {
			case <-e.ack.ready:
			case <-time.After(flushTimeout):
				e.Log(Warn, "flush of %v not acknowledged", band)
			}
		}
	}

	return nil
}

// bands splits the area into pieces that each fit into a buffer of the given
// size. Areas wider than the buffer are also split horizontally.
func bands(area surface.Rect, size int) []surface.Rect {
	if size <= 0 || area.Empty() {
		return nil
	}

	w := min(area.Width(), size)
	h := max(size/w, 1)

	var b []surface.Rect
	for y := area.Y1; y <= area.Y2; y += h {
		for x := area.X1; x <= area.X2; x += w {
			b = append(b, surface.Rect{
				X1: x,
				Y1: y,
				X2: min(x+w-1, area.X2),
				Y2: min(y+h-1, area.Y2),
			})
		}
	}
	return b
}
