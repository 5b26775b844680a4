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

//go:build linux

package evdev

import (
	"context"
	"unsafe"

	"github.com/jetsetilly/pixbridge/curated"
	"github.com/jetsetilly/pixbridge/logger"
	"github.com/jetsetilly/pixbridge/pointer"
	"golang.org/x/sys/unix"
)

// struct input_absinfo.
type absInfo struct {
	value      int32
	minimum    int32
	maximum    int32
	fuzz       int32
	flat       int32
	resolution int32
}

// EVIOCGABS(abs) from linux/input.h.
func eviocgabs(abs uintptr) uintptr {
	return 2<<30 | unsafe.Sizeof(absInfo{})<<16 | 'E'<<8 | (0x40 + abs)
}

func axis(fd int, abs uintptr) (Axis, bool) {
	var info absInfo
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), eviocgabs(abs), uintptr(unsafe.Pointer(&info)))
	if errno != 0 {
		return Axis{}, false
	}
	return Axis{Min: int(info.minimum), Max: int(info.maximum)}, true
}

// Device is a Linux input device.
type Device struct {
	path   string
	width  int
	height int
}

// New is the preferred method of initialisation for the Device type. The
// width and height are the size of the output surface.
func New(path string, width, height int) *Device {
	return &Device{
		path:   path,
		width:  width,
		height: height,
	}
}

func (dev *Device) String() string {
	return dev.path
}

// Produce implements the display.Producer interface. The device is opened and
// read until the context is cancelled.
func (dev *Device) Produce(ctx context.Context, rep pointer.Reporter) error {
	fd, err := unix.Open(dev.path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return curated.Errorf(OpenFailed, err)
	}
	defer unix.Close(fd)

	dec := NewDecoder(dev.width, dev.height)
	if a, ok := axis(fd, absX); ok {
		dec.X = a
	}
	if a, ok := axis(fd, absY); ok {
		dec.Y = a
	}
	logger.Logf(logger.Allow, "evdev", "%s: x %v, y %v", dev.path, dec.X, dec.Y)

	buf := make([]byte, eventSize*64)
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}

	for ctx.Err() == nil {
		n, err := unix.Poll(fds, 100)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return curated.Errorf(ReadFailed, err)
		}
		if n == 0 {
			continue
		}

		n, err = unix.Read(fd, buf)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return curated.Errorf(ReadFailed, err)
		}

		for _, ev := range Parse(buf[:n]) {
			dec.Decode(ev, rep)
		}
	}

	return nil
}
