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

package fbdev

import (
	"sync"
	"unsafe"

	"github.com/jetsetilly/pixbridge/curated"
	"github.com/jetsetilly/pixbridge/logger"
	"github.com/jetsetilly/pixbridge/surface"
	"golang.org/x/sys/unix"
)

// ioctl request values from linux/fb.h.
const (
	fbioGetVScreenInfo = 0x4600
	fbioGetFScreenInfo = 0x4602
)

type bitfield struct {
	offset   uint32
	length   uint32
	msbRight uint32
}

// fb_var_screeninfo.
type varScreenInfo struct {
	xres         uint32
	yres         uint32
	xresVirtual  uint32
	yresVirtual  uint32
	xoffset      uint32
	yoffset      uint32
	bitsPerPixel uint32
	grayscale    uint32
	red          bitfield
	green        bitfield
	blue         bitfield
	transp       bitfield
	nonstd       uint32
	activate     uint32
	height       uint32
	width        uint32
	accelFlags   uint32
	pixclock     uint32
	leftMargin   uint32
	rightMargin  uint32
	upperMargin  uint32
	lowerMargin  uint32
	hsyncLen     uint32
	vsyncLen     uint32
	sync         uint32
	vmode        uint32
	rotate       uint32
	colorspace   uint32
	reserved     [4]uint32
}

// fb_fix_screeninfo.
type fixScreenInfo struct {
	id           [16]byte
	smemStart    uintptr
	smemLen      uint32
	typ          uint32
	typeAux      uint32
	visual       uint32
	xpanstep     uint16
	ypanstep     uint16
	ywrapstep    uint16
	lineLength   uint32
	mmioStart    uintptr
	mmioLen      uint32
	accel        uint32
	capabilities uint16
	reserved     [2]uint16
}

// Device is the Linux framebuffer.
type Device struct {
	crit sync.Mutex
	path string

	fd     int
	memory []byte
	desc   surface.Descriptor
}

// New is the preferred method of initialisation for the Device type. The
// device is not opened.
func New(path string) *Device {
	if path == "" {
		path = DefaultPath
	}
	return &Device{
		path: path,
		fd:   -1,
	}
}

func (dev *Device) String() string {
	return dev.path
}

func ioctl(fd int, req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

// Open implements the display.Device interface. The framebuffer memory is
// mapped at this point.
func (dev *Device) Open() error {
	dev.crit.Lock()
	defer dev.crit.Unlock()

	if dev.fd >= 0 {
		return nil
	}

	fd, err := unix.Open(dev.path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return curated.Errorf(OpenFailed, err)
	}

	var v varScreenInfo
	var f fixScreenInfo

	err = ioctl(fd, fbioGetVScreenInfo, unsafe.Pointer(&v))
	if err != nil {
		unix.Close(fd)
		return curated.Errorf(OpenFailed, err)
	}
	err = ioctl(fd, fbioGetFScreenInfo, unsafe.Pointer(&f))
	if err != nil {
		unix.Close(fd)
		return curated.Errorf(OpenFailed, err)
	}

	desc, err := describe(v, f)
	if err != nil {
		unix.Close(fd)
		return err
	}

	mem, err := unix.Mmap(fd, 0, int(f.smemLen), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		unix.Close(fd)
		return curated.Errorf(OpenFailed, err)
	}

	// the visible area may not be at the start of the framebuffer memory
	offset := int(v.yoffset)*int(f.lineLength) + int(v.xoffset)*desc.WordSize()
	desc.Memory = mem[offset:]

	dev.fd = fd
	dev.memory = mem
	dev.desc = desc

	logger.Logf(logger.Allow, "fbdev", "%s: %s", dev.path, desc)

	return nil
}

// describe the surface from the screen information. The Memory field is
// not set.
func describe(v varScreenInfo, f fixScreenInfo) (surface.Descriptor, error) {
	desc := surface.Descriptor{
		Width:        int(v.xres),
		Height:       int(v.yres),
		BitsPerPixel: int(v.bitsPerPixel),
	}

	sz := desc.WordSize()
	if sz == 0 {
		// the caller decides what to do with an unsupported depth
		return desc, nil
	}

	if desc.BitsPerPixel == 24 && int(f.lineLength) < desc.Width*sz {
		return desc, curated.Errorf(PackedPixel)
	}

	// pixels are addressed as x + y*width so a line length with padding is
	// treated as a wider surface
	if stride := int(f.lineLength) / sz; stride > desc.Width {
		desc.Width = stride
	}

	return desc, nil
}

// Close implements the display.Device interface.
func (dev *Device) Close() error {
	dev.crit.Lock()
	defer dev.crit.Unlock()

	if dev.fd < 0 {
		return nil
	}

	var err error
	if dev.memory != nil {
		err = unix.Munmap(dev.memory)
		dev.memory = nil
	}
	if cerr := unix.Close(dev.fd); err == nil {
		err = cerr
	}
	dev.fd = -1
	dev.desc = surface.Descriptor{}

	if err != nil {
		return curated.Errorf("fbdev: close: %v", err)
	}
	return nil
}

// Info implements the display.Device interface.
func (dev *Device) Info() (surface.Descriptor, error) {
	dev.crit.Lock()
	defer dev.crit.Unlock()

	if dev.fd < 0 {
		return surface.Descriptor{}, curated.Errorf(NotOpen)
	}
	return dev.desc, nil
}

// UpdateRect implements the display.Device interface. Writes to the mapped
// memory are visible immediately so there is nothing to do.
func (dev *Device) UpdateRect(x, y, width, height int) error {
	return nil
}
