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

package sdlwin

import (
	"github.com/jetsetilly/pixbridge/surface"
	"github.com/veandco/go-sdl2/sdl"
)

// pixelFormat returns the SDL pixel format for the depth. 24 and 32 bit
// colours are both stored in 32 bit words.
func pixelFormat(bitsPerPixel int) (uint32, int32, bool) {
	switch bitsPerPixel {
	case 8:
		return uint32(sdl.PIXELFORMAT_RGB332), 8, true
	case 16:
		return uint32(sdl.PIXELFORMAT_RGB565), 16, true
	case 24, 32:
		return uint32(sdl.PIXELFORMAT_RGB888), 32, true
	}
	return 0, 0, false
}

// toRGBA converts the pixels to RGBA bytes, appending them to dst.
func toRGBA(dst []byte, pixels []surface.Color, bitsPerPixel int) []byte {
	for _, c := range pixels {
		r, g, b := c.RGB(bitsPerPixel)
		dst = append(dst, r, g, b, 0xff)
	}
	return dst
}
