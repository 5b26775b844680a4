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

//go:build !linux

package fbdev

import (
	"github.com/jetsetilly/pixbridge/curated"
	"github.com/jetsetilly/pixbridge/surface"
)

// Device is the Linux framebuffer. On this platform it can not be opened.
type Device struct {
	path string
}

// New is the preferred method of initialisation for the Device type.
func New(path string) *Device {
	if path == "" {
		path = DefaultPath
	}
	return &Device{path: path}
}

func (dev *Device) String() string {
	return dev.path
}

// Open implements the display.Device interface.
func (dev *Device) Open() error {
	return curated.Errorf(Unavailable)
}

// Close implements the display.Device interface.
func (dev *Device) Close() error {
	return nil
}

// Info implements the display.Device interface.
func (dev *Device) Info() (surface.Descriptor, error) {
	return surface.Descriptor{}, curated.Errorf(NotOpen)
}

// UpdateRect implements the display.Device interface.
func (dev *Device) UpdateRect(x, y, width, height int) error {
	return curated.Errorf(NotOpen)
}
