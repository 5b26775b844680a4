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

package sdlwin

import (
	"context"

	"github.com/jetsetilly/pixbridge/pointer"
	"github.com/veandco/go-sdl2/sdl"
)

type sample struct {
	x, y  int
	phase pointer.Phase
}

// the number of samples that can be queued before samples are dropped.
const sampleQueue = 64

// input is embedded by both types of window.
type input struct {
	samples chan sample
	quit    chan bool
	closed  bool
	scale   int
}

func newInput(scale int) input {
	return input{
		samples: make(chan sample, sampleQueue),
		quit:    make(chan bool),
		scale:   max(scale, 1),
	}
}

// must be called from the main thread.
func (in *input) processEvents() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			if !in.closed {
				in.closed = true
				close(in.quit)
			}
		case *sdl.MouseMotionEvent:
			in.push(int(ev.X), int(ev.Y), pointer.Move)
		case *sdl.MouseButtonEvent:
			if ev.Button != sdl.BUTTON_LEFT {
				continue
			}
			if ev.Type == sdl.MOUSEBUTTONDOWN {
				in.push(int(ev.X), int(ev.Y), pointer.Down)
			} else {
				in.push(int(ev.X), int(ev.Y), pointer.Up)
			}
		}
	}
}

// samples are dropped if the queue is full. the main thread must never block
func (in *input) push(x, y int, phase pointer.Phase) {
	select {
	case in.samples <- sample{x: x / in.scale, y: y / in.scale, phase: phase}:
	default:
	}
}

// Produce implements the display.Producer interface. It returns when the
// context is cancelled or the window is closed by the user.
func (in *input) Produce(ctx context.Context, rep pointer.Reporter) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-in.quit:
			return nil
		case s := <-in.samples:
			rep.Report(s.x, s.y, s.phase)
		}
	}
}
