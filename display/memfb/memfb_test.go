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

package memfb_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/pixbridge/curated"
	"github.com/jetsetilly/pixbridge/display"
	"github.com/jetsetilly/pixbridge/display/memfb"
	"github.com/jetsetilly/pixbridge/surface"
	"github.com/jetsetilly/pixbridge/test"
	"golang.org/x/image/bmp"
)

func TestInterfaces(t *testing.T) {
	fb := memfb.New(8, 8, 16, true)
	test.DemandImplements(t, fb, (*display.Device)(nil))
	test.DemandImplements(t, fb, (*display.LineWriter)(nil))
}

func TestNotOpen(t *testing.T) {
	fb := memfb.New(8, 8, 16, true)
	_, err := fb.Info()
	test.ExpectSuccess(t, curated.Is(err, memfb.NotOpen))
	test.ExpectFailure(t, fb.UpdateRect(0, 0, 1, 1))

	test.DemandSuccess(t, fb.Open())
	test.ExpectSuccess(t, curated.Is(fb.Open(), memfb.AlreadyOpen))
}

func TestInfo(t *testing.T) {
	fb := memfb.New(32, 24, 24, true)
	test.DemandSuccess(t, fb.Open())

	d, err := fb.Info()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d.Width, 32)
	test.ExpectEquality(t, d.Height, 24)
	test.ExpectEquality(t, d.BitsPerPixel, 24)
	test.ExpectSuccess(t, d.Direct())
	test.ExpectEquality(t, len(d.Memory), 32*24*4)
	test.ExpectSuccess(t, d.Validate())

	fb = memfb.New(32, 24, 24, false)
	test.DemandSuccess(t, fb.Open())
	d, err = fb.Info()
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, d.Direct())
}

func TestUpdates(t *testing.T) {
	fb := memfb.New(32, 24, 16, true)
	test.DemandSuccess(t, fb.Open())

	n, r := fb.Updates()
	test.ExpectEquality(t, n, 0)
	test.ExpectSuccess(t, r.Empty())

	test.ExpectSuccess(t, fb.UpdateRect(1, 2, 3, 4))
	test.ExpectSuccess(t, fb.UpdateRect(10, 10, 2, 2))
	n, r = fb.Updates()
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, r, surface.Rect{X1: 1, Y1: 2, X2: 11, Y2: 11})
}

func TestBlitLine(t *testing.T) {
	fb := memfb.New(16, 4, 32, false)
	test.DemandSuccess(t, fb.Open())

	fb.BlitLine([]surface.Color{0x10, 0x20, 0x30, 0x40}, 5, 2, 3)
	test.ExpectEquality(t, fb.Lines(), 1)
	test.ExpectEquality(t, fb.Pixel(4, 2), surface.Color(0))
	test.ExpectEquality(t, fb.Pixel(5, 2), surface.Color(0x10))
	test.ExpectEquality(t, fb.Pixel(7, 2), surface.Color(0x30))
	test.ExpectEquality(t, fb.Pixel(8, 2), surface.Color(0))
}

func TestSnapshot(t *testing.T) {
	fb := memfb.New(4, 2, 16, false)
	test.DemandSuccess(t, fb.Open())

	red := surface.FromRGB(16, 255, 0, 0)
	fb.BlitLine([]surface.Color{red}, 1, 1, 1)

	var b bytes.Buffer
	test.DemandSuccess(t, fb.Snapshot(&b))

	img, err := bmp.Decode(&b)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 4)
	test.ExpectEquality(t, img.Bounds().Dy(), 2)

	r, g, bl, _ := img.At(1, 1).RGBA()
	test.ExpectEquality(t, r>>8, uint32(255))
	test.ExpectEquality(t, g>>8, uint32(0))
	test.ExpectEquality(t, bl>>8, uint32(0))

	r, _, _, _ = img.At(0, 0).RGBA()
	test.ExpectEquality(t, r, uint32(0))
}
