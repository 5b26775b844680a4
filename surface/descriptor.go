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

package surface

import (
	"fmt"

	"github.com/jetsetilly/pixbridge/curated"
)

// UnsupportedDepth is the pattern of the error returned by Validate() when
// the bits-per-pixel value is not one of 8, 16, 24 or 32.
const UnsupportedDepth = "surface: unsupported bits-per-pixel (%d)"

// InvalidGeometry is the pattern of the error returned by Validate() when the
// width or height of the surface is not positive or the memory is too small.
const InvalidGeometry = "surface: invalid geometry: %s"

// Descriptor is the record of the physical output surface.
type Descriptor struct {
	Width        int
	Height       int
	BitsPerPixel int

	// Memory is the directly addressable pixel memory of the surface. It is
	// nil if the surface can only be written to one line at a time.
	//
	// The memory is addressed in pixel words of WordSize() bytes, in the
	// native byte order of the host. Pixel (x, y) is at word x + y*Width.
	Memory []byte
}

func (d Descriptor) String() string {
	s := fmt.Sprintf("%dx%d %dbpp", d.Width, d.Height, d.BitsPerPixel)
	if d.Direct() {
		s = fmt.Sprintf("%s direct (%d bytes)", s, len(d.Memory))
	} else {
		s = fmt.Sprintf("%s line-blit", s)
	}
	return s
}

// Direct returns true if the surface is directly addressable.
func (d Descriptor) Direct() bool {
	return d.Memory != nil
}

// WordSize returns the number of bytes used to store one pixel in Memory. The
// value is zero for an unsupported depth.
func (d Descriptor) WordSize() int {
	return WordSize(d.BitsPerPixel)
}

// WordSize returns the number of bytes used to store one pixel for the given
// depth. Both 24 and 32 bits per pixel use a 32 bit word. The value is zero
// for an unsupported depth.
func WordSize(bitsPerPixel int) int {
	switch bitsPerPixel {
	case 8:
		return 1
	case 16:
		return 2
	case 24, 32:
		return 4
	}
	return 0
}

// SupportedDepth returns true if the depth is one of 8, 16, 24 or 32.
func SupportedDepth(bitsPerPixel int) bool {
	return WordSize(bitsPerPixel) != 0
}

// Validate the descriptor. The Memory slice, if present, must be large enough
// to hold every pixel of the surface.
func (d Descriptor) Validate() error {
	if !SupportedDepth(d.BitsPerPixel) {
		return curated.Errorf(UnsupportedDepth, d.BitsPerPixel)
	}
	if d.Width <= 0 || d.Height <= 0 {
		return curated.Errorf(InvalidGeometry, fmt.Sprintf("%dx%d", d.Width, d.Height))
	}
	if d.Memory != nil && len(d.Memory) < d.Width*d.Height*d.WordSize() {
		return curated.Errorf(InvalidGeometry, fmt.Sprintf("memory of %d bytes is too small", len(d.Memory)))
	}
	return nil
}

// Bounds returns the rectangle covering the entire surface.
func (d Descriptor) Bounds() Rect {
	return Rect{X1: 0, Y1: 0, X2: d.Width - 1, Y2: d.Height - 1}
}
