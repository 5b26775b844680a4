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

// Package memfb is an output device backed by ordinary memory. It is useful
// for testing and for running without a physical display. The contents of the
// framebuffer can be saved as a BMP file.
package memfb

import (
	"image"
	"image/color"
	"io"
	"sync"

	"github.com/jetsetilly/pixbridge/curated"
	"github.com/jetsetilly/pixbridge/surface"
	"golang.org/x/image/bmp"
)

// Error patterns.
const (
	NotOpen     = "memfb: device is not open"
	AlreadyOpen = "memfb: device is already open"
)

// FB is the in-memory framebuffer device. If the device is created as being
// directly addressable the pixel memory is exposed through Info(). Otherwise
// the memory is private and written to by BlitLine().
type FB struct {
	crit sync.Mutex

	width  int
	height int
	bpp    int
	direct bool

	open   bool
	memory []byte

	updates int
	dirty   surface.Rect
	lines   int
}

// New is the preferred method of initialisation for the FB type. The device
// is not open.
func New(width, height, bitsPerPixel int, direct bool) *FB {
	return &FB{
		width:  width,
		height: height,
		bpp:    bitsPerPixel,
		direct: direct,
	}
}

func (fb *FB) String() string {
	if fb.direct {
		return "memfb"
	}
	return "memfb (line)"
}

// Open implements the display.Device interface.
func (fb *FB) Open() error {
	fb.crit.Lock()
	defer fb.crit.Unlock()

	if fb.open {
		return curated.Errorf(AlreadyOpen)
	}

	// an unsupported depth is allowed at this stage. it is the job of the
	// caller to reject the device after Info() has been called
	sz := surface.WordSize(fb.bpp)
	if sz == 0 {
		sz = 4
	}
	fb.memory = make([]byte, fb.width*fb.height*sz)
	fb.open = true
	fb.updates = 0
	fb.lines = 0
	fb.dirty = surface.Rect{X1: 0, Y1: 0, X2: -1, Y2: -1}

	return nil
}

// Close implements the display.Device interface.
func (fb *FB) Close() error {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	fb.open = false
	return nil
}

// Info implements the display.Device interface.
func (fb *FB) Info() (surface.Descriptor, error) {
	fb.crit.Lock()
	defer fb.crit.Unlock()

	if !fb.open {
		return surface.Descriptor{}, curated.Errorf(NotOpen)
	}

	d := surface.Descriptor{
		Width:        fb.width,
		Height:       fb.height,
		BitsPerPixel: fb.bpp,
	}
	if fb.direct {
		d.Memory = fb.memory
	}
	return d, nil
}

// UpdateRect implements the display.Device interface. The device keeps a
// count of updates and the union of all updated rectangles.
func (fb *FB) UpdateRect(x, y, width, height int) error {
	fb.crit.Lock()
	defer fb.crit.Unlock()

	if !fb.open {
		return curated.Errorf(NotOpen)
	}

	r := surface.Rect{X1: x, Y1: y, X2: x + width - 1, Y2: y + height - 1}
	if fb.dirty.Empty() {
		fb.dirty = r
	} else {
		fb.dirty = fb.dirty.Union(r)
	}
	fb.updates++

	return nil
}

// BlitLine implements the display.LineWriter interface.
func (fb *FB) BlitLine(pixels []surface.Color, x, y, length int) {
	fb.crit.Lock()
	defer fb.crit.Unlock()

	if !fb.open {
		return
	}

	i := x + y*fb.width
	for _, c := range pixels[:length] {
		surface.Store(fb.memory, fb.bpp, i, c)
		i++
	}
	fb.lines++
}

// Updates returns the number of calls to UpdateRect() since the device was
// opened and the union of the rectangles. The rectangle is empty if there
// have been no updates.
func (fb *FB) Updates() (int, surface.Rect) {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	return fb.updates, fb.dirty
}

// Lines returns the number of calls to BlitLine() since the device was
// opened.
func (fb *FB) Lines() int {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	return fb.lines
}

// Pixel returns the colour of the pixel at x, y.
func (fb *FB) Pixel(x, y int) surface.Color {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	if !fb.open || x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return 0
	}
	return surface.Load(fb.memory, fb.bpp, x+y*fb.width)
}

// Image returns a copy of the framebuffer as an image.
func (fb *FB) Image() (*image.RGBA, error) {
	fb.crit.Lock()
	defer fb.crit.Unlock()

	if !fb.open {
		return nil, curated.Errorf(NotOpen)
	}

	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := range fb.height {
		for x := range fb.width {
			r, g, b := surface.Load(fb.memory, fb.bpp, x+y*fb.width).RGB(fb.bpp)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img, nil
}

// Snapshot writes the contents of the framebuffer in BMP format.
func (fb *FB) Snapshot(w io.Writer) error {
	img, err := fb.Image()
	if err != nil {
		return curated.Errorf("memfb: snapshot: %v", err)
	}
	err = bmp.Encode(w, img)
	if err != nil {
		return curated.Errorf("memfb: snapshot: %v", err)
	}
	return nil
}
