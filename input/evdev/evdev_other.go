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

package evdev

import (
	"context"

	"github.com/jetsetilly/pixbridge/curated"
	"github.com/jetsetilly/pixbridge/pointer"
)

// Device is a Linux input device. On this platform it produces no input.
type Device struct {
	path string
}

// New is the preferred method of initialisation for the Device type.
func New(path string, width, height int) *Device {
	return &Device{path: path}
}

func (dev *Device) String() string {
	return dev.path
}

// Produce implements the display.Producer interface.
func (dev *Device) Produce(ctx context.Context, rep pointer.Reporter) error {
	return curated.Errorf(Unavailable)
}
