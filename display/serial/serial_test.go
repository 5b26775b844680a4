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

package serial_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"testing"

	"github.com/jetsetilly/pixbridge/display"
	"github.com/jetsetilly/pixbridge/display/serial"
	"github.com/jetsetilly/pixbridge/pointer"
	"github.com/jetsetilly/pixbridge/surface"
	"github.com/jetsetilly/pixbridge/test"
)

// conn is a connection to a pretend panel. Bytes sent by the panel are
// prepared in advance.
type conn struct {
	in     bytes.Buffer
	out    bytes.Buffer
	closed bool
}

func (c *conn) Read(p []byte) (int, error) {
	return c.in.Read(p)
}

func (c *conn) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

func (c *conn) Close() error {
	c.closed = true
	return nil
}

func frame(cmd byte, payload ...byte) []byte {
	n := len(payload)
	f := []byte{0xa5, cmd, byte(n), byte(n >> 8)}
	f = append(f, payload...)
	chk := cmd ^ byte(n) ^ byte(n>>8)
	for _, b := range payload {
		chk ^= b
	}
	return append(f, chk)
}

func TestInterfaces(t *testing.T) {
	dev := serial.NewWithConn(&conn{}, serial.Config{})
	test.DemandImplements(t, dev, (*display.Device)(nil))
	test.DemandImplements(t, dev, (*display.LineWriter)(nil))
	test.DemandImplements(t, dev, (*display.Producer)(nil))
}

func TestInfoQuery(t *testing.T) {
	c := &conn{}

	// noise and a touch report before the reply are ignored
	c.in.Write([]byte{0x00, 0x13})
	c.in.Write(frame(0x82, 1, 5, 0, 7, 0))
	c.in.Write(frame(0x81, 0x40, 0x01, 0xf0, 0x00, 16))

	dev := serial.NewWithConn(c, serial.Config{})
	test.DemandSuccess(t, dev.Open())

	d, err := dev.Info()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d.Width, 320)
	test.ExpectEquality(t, d.Height, 240)
	test.ExpectEquality(t, d.BitsPerPixel, 16)
	test.ExpectFailure(t, d.Direct())

	// the info request was sent
	test.ExpectEquality(t, c.out.String(), string(frame(0x01)))

	// the panel is not queried a second time
	c.out.Reset()
	_, err = dev.Info()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c.out.Len(), 0)

	test.ExpectSuccess(t, dev.Close())
	test.ExpectSuccess(t, c.closed)
}

func TestInfoMissing(t *testing.T) {
	dev := serial.NewWithConn(&conn{}, serial.Config{})
	test.DemandSuccess(t, dev.Open())
	_, err := dev.Info()
	test.ExpectFailure(t, err)
}

func TestInfoConfigured(t *testing.T) {
	c := &conn{}
	dev := serial.NewWithConn(c, serial.Config{Width: 128, Height: 64, BitsPerPixel: 8})
	test.DemandSuccess(t, dev.Open())

	d, err := dev.Info()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d.Width, 128)
	test.ExpectEquality(t, d.BitsPerPixel, 8)
	test.ExpectEquality(t, c.out.Len(), 0)
}

func TestBlitLine(t *testing.T) {
	c := &conn{}
	dev := serial.NewWithConn(c, serial.Config{Width: 320, Height: 240, BitsPerPixel: 16})
	test.DemandSuccess(t, dev.Open())
	_, err := dev.Info()
	test.DemandSuccess(t, err)

	dev.BlitLine([]surface.Color{0x1234, 0xf800, 0xffff}, 10, 300, 2)

	expected := frame(0x02, 10, 0, 0x2c, 0x01, 2, 0, 0x34, 0x12, 0x00, 0xf8)
	test.ExpectEquality(t, c.out.String(), string(expected))
}

func TestUpdateRect(t *testing.T) {
	c := &conn{}
	dev := serial.NewWithConn(c, serial.Config{Width: 320, Height: 240, BitsPerPixel: 32})
	test.DemandSuccess(t, dev.Open())

	test.DemandSuccess(t, dev.UpdateRect(-1, 2, 3, 4))

	var p [8]byte
	binary.LittleEndian.PutUint16(p[0:], 0xffff)
	binary.LittleEndian.PutUint16(p[2:], 2)
	binary.LittleEndian.PutUint16(p[4:], 3)
	binary.LittleEndian.PutUint16(p[6:], 4)
	test.ExpectEquality(t, c.out.String(), string(frame(0x03, p[:]...)))
}

func TestProduce(t *testing.T) {
	c := &conn{}
	c.in.Write(frame(0x82, 1, 5, 0, 7, 0))

	// a frame with a bad checksum is skipped
	bad := frame(0x82, 2, 9, 0, 9, 0)
	bad[len(bad)-1] ^= 0xff
	c.in.Write(bad)

	c.in.Write(frame(0x82, 0, 0, 0, 0, 0))

	dev := serial.NewWithConn(c, serial.Config{Width: 320, Height: 240, BitsPerPixel: 16})
	test.DemandSuccess(t, dev.Open())

	var cache pointer.Cache
	err := dev.Produce(context.Background(), &cache)
	test.DemandSuccess(t, err)

	// the bad frame was not applied
	test.ExpectEquality(t, cache.Poll(), pointer.State{X: 5, Y: 7, Pressed: false})
}
