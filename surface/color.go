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
	"encoding/binary"
)

// Color is one packed pixel value.
//
//	 8 bits per pixel: RGB332
//	16 bits per pixel: RGB565
//	24/32 bits per pixel: XRGB8888
type Color uint32

// FromRGB packs the 8 bit components for the given depth.
func FromRGB(bitsPerPixel int, r, g, b uint8) Color {
	switch bitsPerPixel {
	case 8:
		return Color(r&0xe0 | (g&0xe0)>>3 | b>>6)
	case 16:
		return Color(uint16(r&0xf8)<<8 | uint16(g&0xfc)<<3 | uint16(b>>3))
	}
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB unpacks the colour for the given depth. Narrow components are widened
// by replicating their high bits.
func (c Color) RGB(bitsPerPixel int) (r, g, b uint8) {
	switch bitsPerPixel {
	case 8:
		r = uint8(c) & 0xe0
		g = uint8(c<<3) & 0xe0
		b = uint8(c<<6) & 0xc0
		return r | r>>3 | r>>6, g | g>>3 | g>>6, b | b>>2 | b>>4 | b>>6
	case 16:
		r = uint8(c>>8) & 0xf8
		g = uint8(c>>3) & 0xfc
		b = uint8(c<<3) & 0xf8
		return r | r>>5, g | g>>6, b | b>>5
	}
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Store the colour at pixel word i of memory, in the given depth. 8 bit
// surfaces store the low byte, 16 bit surfaces store the low 16 bits and 24
// and 32 bit surfaces store the full value.
func Store(memory []byte, bitsPerPixel int, i int, c Color) {
	switch bitsPerPixel {
	case 8:
		memory[i] = uint8(c)
	case 16:
		binary.NativeEndian.PutUint16(memory[i*2:], uint16(c))
	case 24, 32:
		binary.NativeEndian.PutUint32(memory[i*4:], uint32(c))
	}
}

// Load the value at pixel word i of memory.
func Load(memory []byte, bitsPerPixel int, i int) Color {
	switch bitsPerPixel {
	case 8:
		return Color(memory[i])
	case 16:
		return Color(binary.NativeEndian.Uint16(memory[i*2:]))
	case 24, 32:
		return Color(binary.NativeEndian.Uint32(memory[i*4:]))
	}
	return 0
}
