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

package serial

import (
	"bufio"
	"context"
	"encoding/binary"
	"errors"
	"io"
	"sync"

	"github.com/jetsetilly/pixbridge/curated"
	"github.com/jetsetilly/pixbridge/logger"
	"github.com/jetsetilly/pixbridge/pointer"
	"github.com/jetsetilly/pixbridge/surface"
	"github.com/pkg/term"
)

// Error patterns.
const (
	NotOpen    = "serial: device is not open"
	OpenFailed = "serial: %v"
	NoInfo     = "serial: panel did not describe itself: %v"
)

// DefaultBaud is the speed of the serial line if none is given.
const DefaultBaud = 115200

// Config for the serial device. Width, Height and BitsPerPixel are optional.
// If they are all set the panel is not queried for its geometry.
type Config struct {
	Port         string
	Baud         int
	Width        int
	Height       int
	BitsPerPixel int
}

// Device is the serial panel.
type Device struct {
	cfg Config

	// the connection is opened by Open() unless one was given to NewWithConn()
	conn io.ReadWriteCloser
	dial bool

	crit sync.Mutex
	open bool
	rd   *bufio.Reader
	desc surface.Descriptor
	info bool

	// frames are built in this buffer. it is protected by crit
	buf []byte
}

// New is the preferred method of initialisation for the Device type.
func New(cfg Config) *Device {
	if cfg.Baud == 0 {
		cfg.Baud = DefaultBaud
	}
	return &Device{
		cfg:  cfg,
		dial: true,
	}
}

// NewWithConn creates a device that communicates over an existing
// connection. The Port and Baud fields of the Config are ignored.
func NewWithConn(conn io.ReadWriteCloser, cfg Config) *Device {
	return &Device{
		cfg:  cfg,
		conn: conn,
	}
}

func (dev *Device) String() string {
	if dev.cfg.Port == "" {
		return "serial"
	}
	return dev.cfg.Port
}

// Open implements the display.Device interface.
func (dev *Device) Open() error {
	dev.crit.Lock()
	defer dev.crit.Unlock()

	if dev.open {
		return nil
	}

	if dev.dial {
		t, err := term.Open(dev.cfg.Port, term.Speed(dev.cfg.Baud), term.RawMode)
		if err != nil {
			return curated.Errorf(OpenFailed, err)
		}
		dev.conn = t
	}

	dev.rd = bufio.NewReader(dev.conn)
	dev.open = true
	dev.info = false

	if dev.cfg.Width > 0 && dev.cfg.Height > 0 && dev.cfg.BitsPerPixel > 0 {
		dev.desc = surface.Descriptor{
			Width:        dev.cfg.Width,
			Height:       dev.cfg.Height,
			BitsPerPixel: dev.cfg.BitsPerPixel,
		}
		dev.info = true
	}

	return nil
}

// Close implements the display.Device interface.
func (dev *Device) Close() error {
	dev.crit.Lock()
	defer dev.crit.Unlock()

	if !dev.open {
		return nil
	}
	dev.open = false

	err := dev.conn.Close()
	if err != nil {
		return curated.Errorf("serial: close: %v", err)
	}
	return nil
}

// Info implements the display.Device interface. The panel is queried the
// first time Info() is called after the device is opened.
func (dev *Device) Info() (surface.Descriptor, error) {
	dev.crit.Lock()
	defer dev.crit.Unlock()

	if !dev.open {
		return surface.Descriptor{}, curated.Errorf(NotOpen)
	}
	if dev.info {
		return dev.desc, nil
	}

	err := dev.send(cmdInfo, nil)
	if err != nil {
		return surface.Descriptor{}, curated.Errorf(NoInfo, err)
	}

	// frames other than the reply are discarded
	for {
		cmd, payload, err := readFrame(dev.rd)
		if err != nil {
			if curated.IsAny(err) {
				logger.Log(logger.Allow, "serial", err)
				continue
			}
			return surface.Descriptor{}, curated.Errorf(NoInfo, err)
		}
		if cmd != cmdInfoReply {
			continue
		}
		if len(payload) != 5 {
			return surface.Descriptor{}, curated.Errorf(NoInfo, curated.Errorf(BadPayload, cmd, len(payload)))
		}
		dev.desc = surface.Descriptor{
			Width:        int(binary.LittleEndian.Uint16(payload[0:])),
			Height:       int(binary.LittleEndian.Uint16(payload[2:])),
			BitsPerPixel: int(payload[4]),
		}
		dev.info = true
		return dev.desc, nil
	}
}

// send must be called with the critical section held.
func (dev *Device) send(cmd byte, payload []byte) error {
	dev.buf = appendFrame(dev.buf[:0], cmd, payload)
	_, err := dev.conn.Write(dev.buf)
	return err
}

// UpdateRect implements the display.Device interface.
func (dev *Device) UpdateRect(x, y, width, height int) error {
	dev.crit.Lock()
	defer dev.crit.Unlock()

	if !dev.open {
		return curated.Errorf(NotOpen)
	}

	var p [8]byte
	binary.LittleEndian.PutUint16(p[0:], uint16(int16(x)))
	binary.LittleEndian.PutUint16(p[2:], uint16(int16(y)))
	binary.LittleEndian.PutUint16(p[4:], uint16(int16(width)))
	binary.LittleEndian.PutUint16(p[6:], uint16(int16(height)))

	err := dev.send(cmdRefresh, p[:])
	if err != nil {
		return curated.Errorf("serial: refresh: %v", err)
	}
	return nil
}

// BlitLine implements the display.LineWriter interface. Write errors are
// logged and otherwise ignored.
func (dev *Device) BlitLine(pixels []surface.Color, x, y, length int) {
	dev.crit.Lock()
	defer dev.crit.Unlock()

	if !dev.open {
		return
	}

	sz := dev.desc.WordSize()
	payload := make([]byte, 6, 6+length*sz)
	binary.LittleEndian.PutUint16(payload[0:], uint16(x))
	binary.LittleEndian.PutUint16(payload[2:], uint16(y))
	binary.LittleEndian.PutUint16(payload[4:], uint16(length))

	for _, c := range pixels[:length] {
		switch sz {
		case 1:
			payload = append(payload, byte(c))
		case 2:
			payload = binary.LittleEndian.AppendUint16(payload, uint16(c))
		case 4:
			payload = binary.LittleEndian.AppendUint32(payload, uint32(c))
		}
	}

	err := dev.send(cmdLine, payload)
	if err != nil {
		logger.Logf(logger.Allow, "serial", "line %d: %v", y, err)
	}
}

// Produce implements the display.Producer interface. Touch reports from the
// panel are forwarded to the reporter until the connection is closed.
//
// Cancelling the context does not interrupt a read that is in progress. The
// device should be closed to stop the producer promptly.
func (dev *Device) Produce(ctx context.Context, rep pointer.Reporter) error {
	dev.crit.Lock()
	if !dev.open {
		dev.crit.Unlock()
		return curated.Errorf(NotOpen)
	}
	rd := dev.rd
	dev.crit.Unlock()

	for ctx.Err() == nil {
		cmd, payload, err := readFrame(rd)
		if err != nil {
			if curated.IsAny(err) {
				logger.Log(logger.Allow, "serial", err)
				continue
			}
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil
			}
			dev.crit.Lock()
			open := dev.open
			dev.crit.Unlock()
			if !open {
				return nil
			}
			return curated.Errorf("serial: %v", err)
		}

		if cmd != cmdTouch {
			continue
		}
		if len(payload) != 5 {
			logger.Log(logger.Allow, "serial", curated.Errorf(BadPayload, cmd, len(payload)))
			continue
		}

		phase := pointer.Phase(payload[0])
		x := int(int16(binary.LittleEndian.Uint16(payload[1:])))
		y := int(int16(binary.LittleEndian.Uint16(payload[3:])))
		rep.Report(x, y, phase)
	}

	return nil
}
