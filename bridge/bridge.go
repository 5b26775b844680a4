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

package bridge

import (
	"time"

	"github.com/jetsetilly/pixbridge/curated"
	"github.com/jetsetilly/pixbridge/display"
	"github.com/jetsetilly/pixbridge/engine"
	"github.com/jetsetilly/pixbridge/flush"
	"github.com/jetsetilly/pixbridge/logger"
	"github.com/jetsetilly/pixbridge/pointer"
	"github.com/jetsetilly/pixbridge/surface"
	"github.com/jetsetilly/pixbridge/tick"
	"github.com/jetsetilly/pixbridge/version"
)

// Engine is the registration surface of the rendering engine.
type Engine interface {
	Init()
	ColorDepth() int
	RegisterDisplay(buf []surface.Color, width, height int, flush engine.FlushFunc)
	RegisterPointer(read engine.ReadFunc)
	TickInc(period uint32)
	RegisterLogSink(sink engine.LogSink)
}

// the largest scratch buffer that will be allocated, in pixels
const maxBuffer = 1 << 24

// Bridge is the handle to a bootstrapped bridge. It holds everything that
// would otherwise be process-wide state.
type Bridge struct {
	name   string
	dev    display.Device
	desc   surface.Descriptor
	prefs  *Preferences
	eng    Engine
	buf    []surface.Color
	flush  flush.Strategy
	cache  pointer.Cache
	driver *tick.Driver
}

// Init bootstraps the bridge between the named device and the engine.
//
// The device is closed if the query of the surface fails. Once the surface
// has been queried no other call is made to the device by Init(), even if
// Init() fails; the caller remains responsible for the device.
func Init(reg *display.Registry, name string, eng Engine, prefs *Preferences) (*Bridge, error) {
	dev, ok := reg.Find(name)
	if !ok {
		return nil, curated.Errorf(DeviceNotFound, name)
	}

	err := dev.Open()
	if err != nil {
		return nil, curated.Errorf(DeviceOpen, name, err)
	}

	desc, err := dev.Info()
	if err != nil {
		_ = dev.Close()
		return nil, curated.Errorf(DeviceInfo, name, err)
	}

	if !surface.SupportedDepth(desc.BitsPerPixel) {
		return nil, curated.Errorf(UnsupportedDepth, desc.BitsPerPixel)
	}

	if !Compatible(desc.BitsPerPixel, eng.ColorDepth()) {
		return nil, curated.Errorf(DepthMismatch, desc.BitsPerPixel, eng.ColorDepth(), desc.BitsPerPixel)
	}

	b := &Bridge{
		name:  name,
		dev:   dev,
		desc:  desc,
		prefs: prefs,
		eng:   eng,
	}

	rows := prefs.BufferRows.Get().(int)
	if desc.Width <= 0 || rows <= 0 || desc.Width*rows > maxBuffer {
		return nil, curated.Errorf(AllocationFailed, desc.Width, rows)
	}
	b.buf = make([]surface.Color, desc.Width*rows)

	eng.Init()

	if desc.Direct() {
		b.flush, err = flush.NewDirectMemory(desc, dev)
		if err != nil {
			return nil, curated.Errorf(Strategy, err)
		}
	} else {
		lw, ok := dev.(display.LineWriter)
		if !ok {
			return nil, curated.Errorf(NoLineWriter, name)
		}
		b.flush = flush.NewLineBlit(desc, lw)
	}

	eng.RegisterDisplay(b.buf, desc.Width, desc.Height, b.flushArea)
	eng.RegisterPointer(b.readPointer)
	eng.RegisterLogSink(b.logSink)

	b.driver = tick.NewDriver(eng, time.Duration(prefs.TickPeriod.Get().(int))*time.Millisecond)
	err = b.driver.Start()
	if err != nil {
		return nil, curated.Errorf(TickStart, err)
	}

	logger.Logf(logger.Allow, "bridge", "%s bridge to %s (%s)", version.ApplicationName, name, desc)

	return b, nil
}

// Compatible returns true if the colours of an engine with a depth of
// engineDepth can be written to a surface with a depth of surfaceDepth. The
// depths must be equal or be 24 and 32, which share a pixel word.
func Compatible(surfaceDepth, engineDepth int) bool {
	if surfaceDepth == engineDepth {
		return true
	}
	return (surfaceDepth == 24 && engineDepth == 32) || (surfaceDepth == 32 && engineDepth == 24)
}

func (b *Bridge) flushArea(ack engine.Acknowledger, area surface.Rect, colors []surface.Color) {
	b.flush.Flush(area, colors, ack)
}

func (b *Bridge) readPointer() engine.PointerSample {
	s := b.cache.Poll()
	return engine.PointerSample{X: s.X, Y: s.Y, Pressed: s.Pressed}
}

func (b *Bridge) logSink(level engine.LogLevel, msg string) {
	if level < b.prefs.level() {
		return
	}
	if level == engine.Trace {
		msg = "trace: " + msg
	}
	logger.Log(logger.Allow, "engine", msg)
}

// SendInputEvent records a pointer sample. It is safe to call from any
// goroutine.
func (b *Bridge) SendInputEvent(x, y int, phase pointer.Phase) {
	b.cache.Report(x, y, phase)
}

// Report implements the pointer.Reporter interface.
func (b *Bridge) Report(x, y int, phase pointer.Phase) {
	b.SendInputEvent(x, y, phase)
}

// Surface returns the descriptor of the surface.
func (b *Bridge) Surface() surface.Descriptor {
	return b.desc
}

// Device returns the name of the device.
func (b *Bridge) Device() string {
	return b.name
}

// Ticks returns the number of cycles of the tick driver.
func (b *Bridge) Ticks() uint64 {
	return b.driver.Cycles()
}

// Close the device. The tick driver continues to run.
func (b *Bridge) Close() error {
	return b.dev.Close()
}
