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

package pointer

import (
	"fmt"
	"sync/atomic"
)

// Phase of a pointer report.
type Phase int

// List of valid Phase values.
const (
	Up Phase = iota
	Down
	Move
)

func (p Phase) String() string {
	switch p {
	case Up:
		return "up"
	case Down:
		return "down"
	case Move:
		return "move"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// State of the pointer.
type State struct {
	X, Y    int
	Pressed bool
}

func (s State) String() string {
	if s.Pressed {
		return fmt.Sprintf("%d,%d pressed", s.X, s.Y)
	}
	return fmt.Sprintf("%d,%d", s.X, s.Y)
}

// Reporter is implemented by types that accept pointer reports. Input
// producers are written against this interface.
type Reporter interface {
	Report(x, y int, phase Phase)
}

// Cache is the single slot holding the last known state of the pointer. The
// zero value is ready to use and reports a position of 0,0 and not pressed.
type Cache struct {
	state atomic.Uint64
}

// the packed word is the pressed flag in bit 63, and the x and y coordinates
// as 31 bit two's complement values in bits 31 to 61 and 0 to 30.
const (
	pressedBit = uint64(1) << 63
	coordBits  = 31
	coordMask  = uint64(1)<<coordBits - 1
	coordSign  = uint64(1) << (coordBits - 1)
)

func pack(s State) uint64 {
	v := (uint64(int64(s.X))&coordMask)<<32 | uint64(int64(s.Y))&coordMask
	if s.Pressed {
		v |= pressedBit
	}
	return v
}

func coord(v uint64) int {
	v &= coordMask
	if v&coordSign != 0 {
		return int(int64(v) - int64(coordMask) - 1)
	}
	return int(v)
}

func unpack(v uint64) State {
	return State{
		X:       coord(v >> 32),
		Y:       coord(v),
		Pressed: v&pressedBit == pressedBit,
	}
}

// Report implements the Reporter interface.
//
// Down sets the position and the pressed state. Move sets the position only.
// Up clears the pressed state and leaves the position as it was. An
// unrecognised phase is ignored.
func (c *Cache) Report(x, y int, phase Phase) {
	for {
		old := c.state.Load()
		s := unpack(old)

		switch phase {
		case Up:
			s.Pressed = false
		case Down:
			s.X = x
			s.Y = y
			s.Pressed = true
		case Move:
			s.X = x
			s.Y = y
		default:
			return
		}

		if c.state.CompareAndSwap(old, pack(s)) {
			return
		}
	}
}

// Poll returns the current state. It never blocks.
func (c *Cache) Poll() State {
	return unpack(c.state.Load())
}

// ReporterFunc is an adaptor allowing the use of an ordinary function as a
// Reporter.
type ReporterFunc func(x, y int, phase Phase)

// Report implements the Reporter interface.
func (f ReporterFunc) Report(x, y int, phase Phase) {
	f(x, y, phase)
}
