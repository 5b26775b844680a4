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

// Package tcellterm is an output device that draws onto the cells of a text
// terminal. Each cell shows two vertically adjacent pixels using the upper
// half block character, with the foreground colour for the upper pixel and
// the background colour for the lower pixel. The surface is therefore as wide
// as the terminal and twice as high.
//
// The terminal is written to one line at a time and so the device has no
// pixel memory. The screen is redrawn periodically if any line has been
// written since the last redraw.
//
// The device is also a pointer input producer. The primary mouse button is
// the pointer's pressed state.
package tcellterm

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jetsetilly/pixbridge/curated"
	"github.com/jetsetilly/pixbridge/pointer"
	"github.com/jetsetilly/pixbridge/surface"
)

// Error patterns.
const (
	NotOpen    = "tcellterm: device is not open"
	OpenFailed = "tcellterm: %v"
)

// the character used to display two pixels in one cell.
const halfBlock = '▀'

// Redraw is the interval between checks for changes to the screen.
const Redraw = 16 * time.Millisecond

// Terminal is the terminal device.
type Terminal struct {
	// the screen is created when the device is opened unless one was given
	// to New()
	screen tcell.Screen
	create bool
	bpp    int

	crit   sync.Mutex
	open   bool
	width  int
	height int

	dirty atomic.Bool
	quit  chan bool
	done  chan bool
}

// New is the preferred method of initialisation for the Terminal type. If
// screen is nil then a screen for the controlling terminal is created when
// the device is opened.
func New(screen tcell.Screen, bitsPerPixel int) *Terminal {
	return &Terminal{
		screen: screen,
		create: screen == nil,
		bpp:    bitsPerPixel,
	}
}

func (trm *Terminal) String() string {
	return "terminal"
}

// Open implements the display.Device interface.
func (trm *Terminal) Open() error {
	trm.crit.Lock()
	defer trm.crit.Unlock()

	if trm.open {
		return nil
	}

	if trm.create {
		scr, err := tcell.NewScreen()
		if err != nil {
			return curated.Errorf(OpenFailed, err)
		}
		trm.screen = scr
	}

	err := trm.screen.Init()
	if err != nil {
		return curated.Errorf(OpenFailed, err)
	}
	trm.screen.EnableMouse(tcell.MouseDragEvents)
	trm.screen.HideCursor()
	trm.screen.Clear()

	trm.width, trm.height = trm.screen.Size()
	trm.height *= 2
	trm.open = true

	trm.quit = make(chan bool)
	trm.done = make(chan bool)
	go trm.redraw(trm.quit, trm.done)

	return nil
}

func (trm *Terminal) redraw(quit chan bool, done chan bool) {
	defer close(done)

	t := time.NewTicker(Redraw)
	defer t.Stop()

	for {
		select {
		case <-quit:
			return
		case <-t.C:
			if trm.dirty.CompareAndSwap(true, false) {
				trm.screen.Show()
			}
		}
	}
}

// Close implements the display.Device interface.
func (trm *Terminal) Close() error {
	trm.crit.Lock()
	defer trm.crit.Unlock()

	if !trm.open {
		return nil
	}

	close(trm.quit)
	<-trm.done

	trm.screen.Fini()
	trm.open = false

	return nil
}

// Info implements the display.Device interface.
func (trm *Terminal) Info() (surface.Descriptor, error) {
	trm.crit.Lock()
	defer trm.crit.Unlock()

	if !trm.open {
		return surface.Descriptor{}, curated.Errorf(NotOpen)
	}

	return surface.Descriptor{
		Width:        trm.width,
		Height:       trm.height,
		BitsPerPixel: trm.bpp,
	}, nil
}

// UpdateRect implements the display.Device interface. The screen is redrawn
// immediately.
func (trm *Terminal) UpdateRect(x, y, width, height int) error {
	trm.crit.Lock()
	defer trm.crit.Unlock()

	if !trm.open {
		return curated.Errorf(NotOpen)
	}
	trm.dirty.Store(false)
	trm.screen.Show()

	return nil
}

// BlitLine implements the display.LineWriter interface.
func (trm *Terminal) BlitLine(pixels []surface.Color, x, y, length int) {
	trm.crit.Lock()
	defer trm.crit.Unlock()

	if !trm.open {
		return
	}

	cy := y / 2
	upper := y&1 == 0

	for i, c := range pixels[:length] {
		r, g, b := c.RGB(trm.bpp)
		col := tcell.NewRGBColor(int32(r), int32(g), int32(b))

		_, _, style, _ := trm.screen.GetContent(x+i, cy)
		if upper {
			style = style.Foreground(col)
		} else {
			style = style.Background(col)
		}
		trm.screen.SetContent(x+i, cy, halfBlock, nil, style)
	}

	trm.dirty.Store(true)
}

// Produce implements the display.Producer interface. It returns when the
// context is cancelled, when the device is closed, or when the user presses
// the escape key or Ctrl-C.
func (trm *Terminal) Produce(ctx context.Context, rep pointer.Reporter) error {
	trm.crit.Lock()
	if !trm.open {
		trm.crit.Unlock()
		return curated.Errorf(NotOpen)
	}
	scr := trm.screen
	trm.crit.Unlock()

	// wake PollEvent() when the context is cancelled
	stop := context.AfterFunc(ctx, func() {
		_ = scr.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	var pressed bool

	for {
		ev := scr.PollEvent()
		if ev == nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return nil
			}
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return nil
			}
		case *tcell.EventMouse:
			x, y := ev.Position()
			y *= 2
			down := ev.Buttons()&tcell.ButtonPrimary == tcell.ButtonPrimary
			switch {
			case down && !pressed:
				rep.Report(x, y, pointer.Down)
			case !down && pressed:
				rep.Report(x, y, pointer.Move)
				rep.Report(x, y, pointer.Up)
			default:
				rep.Report(x, y, pointer.Move)
			}
			pressed = down
		}
	}
}
