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

package evdev_test

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/jetsetilly/pixbridge/input/evdev"
	"github.com/jetsetilly/pixbridge/pointer"
	"github.com/jetsetilly/pixbridge/test"
)

type report struct {
	x, y  int
	phase pointer.Phase
}

type recorder []report

func (r *recorder) Report(x, y int, phase pointer.Phase) {
	*r = append(*r, report{x: x, y: y, phase: phase})
}

// raw encodes the events as the kernel would.
func raw(events ...evdev.Event) []byte {
	tv := int(unsafe.Sizeof(int(0))) * 2
	var b []byte
	for _, ev := range events {
		b = append(b, make([]byte, tv)...)
		b = binary.NativeEndian.AppendUint16(b, ev.Type)
		b = binary.NativeEndian.AppendUint16(b, ev.Code)
		b = binary.NativeEndian.AppendUint32(b, uint32(ev.Value))
	}
	return b
}

var (
	syn     = evdev.Event{Type: 0x00, Code: 0x00}
	dropped = evdev.Event{Type: 0x00, Code: 0x03}
)

func touch(down bool) evdev.Event {
	v := int32(0)
	if down {
		v = 1
	}
	return evdev.Event{Type: 0x01, Code: 0x14a, Value: v}
}

func absX(v int32) evdev.Event { return evdev.Event{Type: 0x03, Code: 0x00, Value: v} }
func absY(v int32) evdev.Event { return evdev.Event{Type: 0x03, Code: 0x01, Value: v} }
func relX(v int32) evdev.Event { return evdev.Event{Type: 0x02, Code: 0x00, Value: v} }
func relY(v int32) evdev.Event { return evdev.Event{Type: 0x02, Code: 0x01, Value: v} }

func TestParse(t *testing.T) {
	in := []evdev.Event{touch(true), absX(-5), syn}
	b := raw(in...)

	// trailing partial event is ignored
	b = append(b, 1, 2, 3)

	out := evdev.Parse(b)
	test.DemandEquality(t, len(out), 3)
	for i := range in {
		test.ExpectEquality(t, out[i], in[i], i)
	}
}

func TestTouch(t *testing.T) {
	var rec recorder
	dec := evdev.NewDecoder(320, 240)

	for _, ev := range []evdev.Event{touch(true), absX(5), absY(7), syn} {
		dec.Decode(ev, &rec)
	}
	test.DemandEquality(t, len(rec), 1)
	test.ExpectEquality(t, rec[0], report{x: 5, y: 7, phase: pointer.Down})

	rec = rec[:0]
	for _, ev := range []evdev.Event{absX(6), syn, touch(false), syn} {
		dec.Decode(ev, &rec)
	}
	test.DemandEquality(t, len(rec), 2)
	test.ExpectEquality(t, rec[0], report{x: 6, y: 7, phase: pointer.Move})
	test.ExpectEquality(t, rec[1], report{x: 6, y: 7, phase: pointer.Up})

	// nothing happens without a SYN_REPORT
	rec = rec[:0]
	dec.Decode(absX(100), &rec)
	test.ExpectEquality(t, len(rec), 0)
}

func TestScale(t *testing.T) {
	var rec recorder
	dec := evdev.NewDecoder(320, 240)
	dec.X = evdev.Axis{Min: 0, Max: 4095}
	dec.Y = evdev.Axis{Min: 0, Max: 4095}

	for _, ev := range []evdev.Event{absX(4095), absY(0), syn} {
		dec.Decode(ev, &rec)
	}
	test.DemandEquality(t, len(rec), 1)
	test.ExpectEquality(t, rec[0], report{x: 319, y: 0, phase: pointer.Move})
}

func TestRelative(t *testing.T) {
	var rec recorder
	dec := evdev.NewDecoder(320, 240)

	for _, ev := range []evdev.Event{relX(10), relY(20), syn, relX(-50), syn} {
		dec.Decode(ev, &rec)
	}
	test.DemandEquality(t, len(rec), 2)
	test.ExpectEquality(t, rec[0], report{x: 10, y: 20, phase: pointer.Move})

	// kept within the surface
	test.ExpectEquality(t, rec[1], report{x: 0, y: 20, phase: pointer.Move})
}

func TestDropped(t *testing.T) {
	var rec recorder
	dec := evdev.NewDecoder(320, 240)

	for _, ev := range []evdev.Event{absX(10), dropped, absX(20), syn, absX(30), syn} {
		dec.Decode(ev, &rec)
	}
	test.DemandEquality(t, len(rec), 1)
	test.ExpectEquality(t, rec[0], report{x: 30, y: 0, phase: pointer.Move})
}
