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

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/pixbridge/curated"
	"github.com/jetsetilly/pixbridge/surface"
	"github.com/veandco/go-sdl2/sdl"
)

// GLWindow is an SDL window that is written to one line at a time through
// an OpenGL texture.
type GLWindow struct {
	input

	main   MainThread
	width  int
	height int
	bpp    int

	crit    sync.Mutex
	window  *sdl.Window
	context sdl.GLContext
	texture uint32
	fbo     uint32

	// a line has been uploaded since the texture was last presented. only
	// accessed on the main thread
	dirty bool

	// conversion buffer for BlitLine(). protected by crit
	line []byte
}

// NewGL is the preferred method of initialisation for the GLWindow type. The
// window is not opened. Each pixel of the surface is shown as a square of
// scale by scale pixels in the window.
func NewGL(main MainThread, width, height, bitsPerPixel, scale int) *GLWindow {
	return &GLWindow{
		input:  newInput(scale),
		main:   main,
		width:  width,
		height: height,
		bpp:    bitsPerPixel,
		line:   make([]byte, 0, width*4),
	}
}

func (win *GLWindow) String() string {
	return "sdl (opengl)"
}

// Open implements the display.Device interface.
func (win *GLWindow) Open() error {
	win.crit.Lock()
	defer win.crit.Unlock()

	if win.window != nil {
		return nil
	}

	var err error

	win.main.Run(func() {
		err = sdl.Init(sdl.INIT_VIDEO)
		if err != nil {
			return
		}

		_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
		_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
		_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
		_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
		_ = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

		win.window, err = sdl.CreateWindow("Pixbridge",
			sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
			int32(win.width*win.scale), int32(win.height*win.scale),
			uint32(sdl.WINDOW_SHOWN|sdl.WINDOW_OPENGL))
		if err != nil {
			sdl.Quit()
			return
		}

		win.context, err = win.window.GLCreateContext()
		if err != nil {
			win.destroy()
			return
		}
		err = win.window.GLMakeCurrent(win.context)
		if err != nil {
			win.destroy()
			return
		}
		_ = sdl.GLSetSwapInterval(1)

		err = gl.Init()
		if err != nil {
			win.destroy()
			return
		}

		gl.GenTextures(1, &win.texture)
		gl.BindTexture(gl.TEXTURE_2D, win.texture)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
		gl.TexImage2D(gl.TEXTURE_2D, 0,
			gl.RGBA, int32(win.width), int32(win.height), 0,
			gl.RGBA, gl.UNSIGNED_BYTE,
			nil)

		// the texture is presented by blitting from this framebuffer
		gl.GenFramebuffers(1, &win.fbo)
		gl.BindFramebuffer(gl.READ_FRAMEBUFFER, win.fbo)
		gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, win.texture, 0)
		gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	})

	if err != nil {
		return curated.Errorf(SDLError, err)
	}
	return nil
}

// must be called from the main thread.
func (win *GLWindow) destroy() {
	if win.texture != 0 {
		gl.DeleteTextures(1, &win.texture)
		win.texture = 0
	}
	if win.fbo != 0 {
		gl.DeleteFramebuffers(1, &win.fbo)
		win.fbo = 0
	}
	if win.context != nil {
		sdl.GLDeleteContext(win.context)
		win.context = nil
	}
	if win.window != nil {
		_ = win.window.Destroy()
		win.window = nil
	}
	sdl.Quit()
}

// Close implements the display.Device interface.
func (win *GLWindow) Close() error {
	win.crit.Lock()
	defer win.crit.Unlock()

	if win.window == nil {
		return nil
	}
	win.main.Run(win.destroy)
	return nil
}

// Info implements the display.Device interface.
func (win *GLWindow) Info() (surface.Descriptor, error) {
	win.crit.Lock()
	defer win.crit.Unlock()

	if win.window == nil {
		return surface.Descriptor{}, curated.Errorf(NotOpen)
	}

	return surface.Descriptor{
		Width:        win.width,
		Height:       win.height,
		BitsPerPixel: win.bpp,
	}, nil
}

// UpdateRect implements the display.Device interface. The texture is
// presented on the next call to Service().
func (win *GLWindow) UpdateRect(x, y, width, height int) error {
	win.crit.Lock()
	defer win.crit.Unlock()

	if win.window == nil {
		return curated.Errorf(NotOpen)
	}
	win.main.Run(func() {
		win.dirty = true
	})
	return nil
}

// BlitLine implements the display.LineWriter interface.
func (win *GLWindow) BlitLine(pixels []surface.Color, x, y, length int) {
	win.crit.Lock()
	defer win.crit.Unlock()

	if win.window == nil {
		return
	}

	win.line = toRGBA(win.line[:0], pixels[:length], win.bpp)

	win.main.Run(func() {
		gl.BindTexture(gl.TEXTURE_2D, win.texture)
		gl.TexSubImage2D(gl.TEXTURE_2D, 0,
			int32(x), int32(y), int32(length), 1,
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(win.line))
		win.dirty = true
	})
}

// Service must be called periodically from the main thread.
func (win *GLWindow) Service() {
	win.processEvents()

	if !win.dirty || win.window == nil {
		return
	}
	win.dirty = false

	w, h := win.window.GLGetDrawableSize()

	// the texture has the first line at the bottom so it is flipped during the
	// blit
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, win.fbo)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	gl.BlitFramebuffer(
		0, 0, int32(win.width), int32(win.height),
		0, h, w, 0,
		gl.COLOR_BUFFER_BIT, gl.NEAREST)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

	win.window.GLSwap()
}
