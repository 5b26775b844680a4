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

package evdev

import (
	"encoding/binary"
	"unsafe"

	"github.com/jetsetilly/pixbridge/pointer"
)

// event types and codes from linux/input-event-codes.h.
const (
	evSyn = 0x00
	evKey = 0x01
	evRel = 0x02
	evAbs = 0x03

	synReport  = 0x00
	synDropped = 0x03

	btnLeft  = 0x110
	btnTouch = 0x14a

	relX = 0x00
	relY = 0x01

	absX           = 0x00
	absY           = 0x01
	absMTPositionX = 0x35
	absMTPositionY = 0x36
)

// struct timeval uses the C long type, which is the same size as int on
// Linux.
type timeval struct {
	sec  int
	usec int
}

// size of struct input_event.
var eventSize = int(unsafe.Sizeof(timeval{})) + 8

// Event is one input_event with the timestamp removed.
type Event struct {
	Type  uint16
	Code  uint16
	Value int32
}

// Parse the input_event structures in the data. Any trailing partial event
// is ignored.
func Parse(data []byte) []Event {
	n := len(data) / eventSize
	ev := make([]Event, 0, n)
	for i := range n {
		b := data[i*eventSize+eventSize-8:]
		ev = append(ev, Event{
			Type:  binary.NativeEndian.Uint16(b[0:]),
			Code:  binary.NativeEndian.Uint16(b[2:]),
			Value: int32(binary.NativeEndian.Uint32(b[4:])),
		})
	}
	return ev
}

// Axis is the range of an absolute axis.
type Axis struct {
	Min int
	Max int
}

func (a Axis) scale(v int, size int) int {
	if a.Max <= a.Min {
		return v
	}
	return (v - a.Min) * (size - 1) / (a.Max - a.Min)
}

// Decoder turns a stream of events into pointer reports. Reports are made
// at the end of each event packet.
type Decoder struct {
	width  int
	height int

	// range of the absolute axes. if the range is empty the values are used
	// unscaled
	X Axis
	Y Axis

	x, y    int
	pressed bool

	// pending changes in the current packet
	moved   bool
	changed bool

	// SYN_DROPPED has been seen and events are ignored until the next
	// SYN_REPORT
	dropped bool
}

// NewDecoder is the preferred method of initialisation for the Decoder type.
func NewDecoder(width, height int) *Decoder {
	return &Decoder{
		width:  width,
		height: height,
	}
}

func (dec *Decoder) clamp() {
	dec.x = min(max(dec.x, 0), dec.width-1)
	dec.y = min(max(dec.y, 0), dec.height-1)
}

// Decode the event, reporting the state of the pointer if the event ends a
// packet.
func (dec *Decoder) Decode(ev Event, rep pointer.Reporter) {
	if dec.dropped {
		if ev.Type == evSyn && ev.Code == synReport {
			dec.dropped = false
		}
		return
	}

	switch ev.Type {
	case evSyn:
		switch ev.Code {
		case synReport:
			dec.report(rep)
		case synDropped:
			dec.dropped = true
			dec.moved = false
			dec.changed = false
		}

	case evKey:
		if ev.Code == btnTouch || ev.Code == btnLeft {
			p := ev.Value != 0
			if p != dec.pressed {
				dec.pressed = p
				dec.changed = true
			}
		}

	case evAbs:
		switch ev.Code {
		case absX, absMTPositionX:
			dec.x = dec.X.scale(int(ev.Value), dec.width)
			dec.moved = true
		case absY, absMTPositionY:
			dec.y = dec.Y.scale(int(ev.Value), dec.height)
			dec.moved = true
		}
		dec.clamp()

	case evRel:
		switch ev.Code {
		case relX:
			dec.x += int(ev.Value)
			dec.moved = true
		case relY:
			dec.y += int(ev.Value)
			dec.moved = true
		}
		dec.clamp()
	}
}

func (dec *Decoder) report(rep pointer.Reporter) {
	switch {
	case dec.changed && dec.pressed:
		rep.Report(dec.x, dec.y, pointer.Down)
	case dec.changed:
		if dec.moved {
			rep.Report(dec.x, dec.y, pointer.Move)
		}
		rep.Report(dec.x, dec.y, pointer.Up)
	case dec.moved:
		rep.Report(dec.x, dec.y, pointer.Move)
	}
	dec.moved = false
	dec.changed = false
}
