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
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/pixbridge/surface"
)

// Acknowledger is given to the flush callback.
type Acknowledger interface {
	FlushReady()
}

// FlushFunc transfers the colours of an area of the screen to the display.
// The colours slice covers the area in row-major order.
type FlushFunc func(ack Acknowledger, area surface.Rect, colors []surface.Color)

// PointerSample is the state of the pointer as seen by the engine.
type PointerSample struct {
	X, Y    int
	Pressed bool
}

// ReadFunc returns the current state of the pointer. It must not block.
type ReadFunc func() PointerSample

// Painter paints an area of the screen into dst. The dst slice covers the
// area in row-major order.
type Painter interface {
	Paint(area surface.Rect, dst []surface.Color)
}

// the maximum number of separate dirty areas. invalidating more areas than
// this causes the entire screen to be invalidated.
const maxDirty = 32

// the amount of time the engine will wait for a flush to be acknowledged.
const flushTimeout = time.Second

// Engine is the rendering engine.
type Engine struct {
	depth int
	prefs *Preferences

	crit        sync.Mutex
	initialised bool
	sink        LogSink

	// display
	buf    []surface.Color
	screen surface.Descriptor
	flush  FlushFunc
	dirty  []surface.Rect

	// pointer
	read ReadFunc

	// time base in milliseconds
	tick atomic.Uint32

	// acknowledgement of the most recent flush
	ack acknowledger

	// number of areas flushed since the engine was initialised
	flushes atomic.Uint64
}

// New is the preferred method of initialisation for the Engine type. The
// depth is the number of bits per pixel of the colours produced by the
// engine. The engine must be initialised with Init() before use.
func New(depth int, prefs *Preferences) *Engine {
	return &Engine{
		depth: depth,
		prefs: prefs,
		ack: acknowledger{
			ready: make(chan bool, 1),
		},
	}
}

// Init resets the engine. Registrations are cleared.
func (e *Engine) Init() {
	e.crit.Lock()
	defer e.crit.Unlock()

	e.initialised = true
	e.buf = nil
	e.screen = surface.Descriptor{}
	e.flush = nil
	e.dirty = e.dirty[:0]
	e.read = nil
	e.flushes.Store(0)
}

// ColorDepth returns the number of bits per pixel of the colours produced by
// the engine.
func (e *Engine) ColorDepth() int {
	return e.depth
}

// RegisterDisplay registers the scratch buffer, the size of the screen and
// the flush callback. The entire screen is invalidated.
func (e *Engine) RegisterDisplay(buf []surface.Color, width, height int, flush FlushFunc) {
	e.crit.Lock()
	defer e.crit.Unlock()

	e.buf = buf
	e.screen = surface.Descriptor{Width: width, Height: height, BitsPerPixel: e.depth}
	e.flush = flush
	e.dirty = append(e.dirty[:0], e.screen.Bounds())
}

// Screen returns the size of the screen. The size is zero if no display has
// been registered.
func (e *Engine) Screen() (int, int) {
	e.crit.Lock()
	defer e.crit.Unlock()
	return e.screen.Width, e.screen.Height
}

// RegisterPointer registers the function used to read the pointer.
func (e *Engine) RegisterPointer(read ReadFunc) {
	e.crit.Lock()
	defer e.crit.Unlock()
	e.read = read
}

// ReadPointer returns the current state of the pointer. The zero value is
// returned if no pointer has been registered.
func (e *Engine) ReadPointer() PointerSample {
	e.crit.Lock()
	read := e.read
	e.crit.Unlock()

	if read == nil {
		return PointerSample{}
	}
	return read()
}

// TickInc advances the time base by the number of milliseconds.
func (e *Engine) TickInc(period uint32) {
	e.tick.Add(period)
}

// Tick returns the time base.
func (e *Engine) Tick() uint32 {
	return e.tick.Load()
}

// TickElapsed returns the number of milliseconds since the prev value of the
// time base. The time base wraps around.
func (e *Engine) TickElapsed(prev uint32) uint32 {
	return e.tick.Load() - prev
}

// Flushes returns the number of areas flushed since Init().
func (e *Engine) Flushes() uint64 {
	return e.flushes.Load()
}
