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
	"sync"

	"github.com/jetsetilly/pixbridge/curated"
	"github.com/jetsetilly/pixbridge/surface"
	"github.com/veandco/go-sdl2/sdl"
)

// Window is an SDL window with directly addressable pixel memory.
type Window struct {
	input

	main   MainThread
	width  int
	height int
	bpp    int

	crit   sync.Mutex
	window *sdl.Window
	shadow *sdl.Surface
	desc   surface.Descriptor
}

// NewSurface is the preferred method of initialisation for the Window type.
// The window is not opened. Each pixel of the surface is shown as a square of
// scale by scale pixels in the window.
func NewSurface(main MainThread, width, height, bitsPerPixel, scale int) *Window {
	return &Window{
		input:  newInput(scale),
		main:   main,
		width:  width,
		height: height,
		bpp:    bitsPerPixel,
	}
}

func (win *Window) String() string {
	return "sdl"
}

// Open implements the display.Device interface.
func (win *Window) Open() error {
	win.crit.Lock()
	defer win.crit.Unlock()

	if win.window != nil {
		return nil
	}

	// an unsupported depth is not rejected here. the depth is reported by
	// Info() and the caller will reject it
	format, depth, ok := pixelFormat(win.bpp)
	if !ok {
		format, depth, _ = pixelFormat(32)
	}

	var err error

	win.main.Run(func() {
		err = sdl.Init(sdl.INIT_VIDEO)
		if err != nil {
			return
		}

		win.window, err = sdl.CreateWindow("Pixbridge",
			sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
			int32(win.width*win.scale), int32(win.height*win.scale),
			uint32(sdl.WINDOW_SHOWN))
		if err != nil {
			sdl.Quit()
			return
		}

		win.shadow, err = sdl.CreateRGBSurfaceWithFormat(0, int32(win.width), int32(win.height), depth, format)
		if err != nil {
			_ = win.window.Destroy()
			win.window = nil
			sdl.Quit()
			return
		}
	})

	if err != nil {
		return curated.Errorf(SDLError, err)
	}

	// the pitch of the shadow surface may include padding
	w := int(win.shadow.Pitch) / surface.WordSize(int(depth))
	win.desc = surface.Descriptor{
		Width:        w,
		Height:       win.height,
		BitsPerPixel: win.bpp,
		Memory:       win.shadow.Pixels(),
	}

	return nil
}

// Close implements the display.Device interface.
func (win *Window) Close() error {
	win.crit.Lock()
	defer win.crit.Unlock()

	if win.window == nil {
		return nil
	}

	var err error
	win.main.Run(func() {
		win.shadow.Free()
		err = win.window.Destroy()
		sdl.Quit()
	})
	win.window = nil
	win.shadow = nil
	win.desc = surface.Descriptor{}

	if err != nil {
		return curated.Errorf(SDLError, err)
	}
	return nil
}

// Info implements the display.Device interface.
func (win *Window) Info() (surface.Descriptor, error) {
	win.crit.Lock()
	defer win.crit.Unlock()

	if win.window == nil {
		return surface.Descriptor{}, curated.Errorf(NotOpen)
	}
	return win.desc, nil
}

// UpdateRect implements the display.Device interface.
func (win *Window) UpdateRect(x, y, width, height int) error {
	win.crit.Lock()
	defer win.crit.Unlock()

	if win.window == nil {
		return curated.Errorf(NotOpen)
	}

	r := surface.Rect{X1: x, Y1: y, X2: x + width - 1, Y2: y + height - 1}
	act, ok := surface.Clip(r, surface.Descriptor{Width: win.width, Height: win.height})
	if !ok {
		return nil
	}

	src := sdl.Rect{
		X: int32(act.X1),
		Y: int32(act.Y1),
		W: int32(act.Width()),
		H: int32(act.Height()),
	}
	dst := sdl.Rect{
		X: src.X * int32(win.scale),
		Y: src.Y * int32(win.scale),
		W: src.W * int32(win.scale),
		H: src.H * int32(win.scale),
	}

	var err error
	win.main.Run(func() {
		var ws *sdl.Surface
		ws, err = win.window.GetSurface()
		if err != nil {
			return
		}
		err = win.shadow.BlitScaled(&src, ws, &dst)
		if err != nil {
			return
		}
		err = win.window.UpdateSurfaceRects([]sdl.Rect{dst})
	})

	if err != nil {
		return curated.Errorf(SDLError, err)
	}
	return nil
}

// Service must be called periodically from the main thread.
func (win *Window) Service() {
	win.processEvents()
}
