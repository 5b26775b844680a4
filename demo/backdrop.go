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

package demo

import (
	"image/color"

	"github.com/gogpu/gg"
	"github.com/jetsetilly/pixbridge/logger"
	"github.com/jetsetilly/pixbridge/surface"
	"golang.org/x/image/colornames"
)

// spacing of the tiles in the backdrop pattern
const tileSize = 32

// rasterise the backdrop for a screen of the given size. the colours are
// packed for the given depth.
func backdrop(width, height, depth int) []surface.Color {
	dc := gg.NewContext(width, height)
	defer func() {
		if err := dc.Close(); err != nil {
			logger.Logf(logger.Allow, "demo", "backdrop: %v", err)
		}
	}()

	dc.SetColor(colornames.Midnightblue)
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	fill(dc)

	tiles := []color.Color{
		colornames.Steelblue,
		colornames.Slategray,
		colornames.Darkslateblue,
	}

	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			i := (x/tileSize + y/tileSize) % len(tiles)
			dc.SetColor(tiles[i])
			dc.DrawRoundedRectangle(float64(x+2), float64(y+2), tileSize-4, tileSize-4, 4)
			fill(dc)
		}
	}

	dc.SetColor(colornames.Gold)
	dc.DrawCircle(float64(width)/2, float64(height)/2, float64(min(width, height))/6)
	fill(dc)

	if err := dc.FlushGPU(); err != nil {
		logger.Logf(logger.Allow, "demo", "backdrop: %v", err)
	}

	img := dc.Image()
	colors := make([]surface.Color, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			colors[x+y*width] = surface.FromRGB(depth, uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}

	return colors
}

func fill(dc *gg.Context) {
	if err := dc.Fill(); err != nil {
		logger.Logf(logger.Allow, "demo", "backdrop: %v", err)
	}
}
