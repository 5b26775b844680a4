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

// Package sdlwin is an output device that draws into an SDL window. There
// are two types of window.
//
// A Window created with NewSurface() is directly addressable. The pixel
// memory is an SDL surface of the requested depth. UpdateRect() copies the
// rectangle to the window surface and presents it.
//
// A Window created with NewGL() is written to one line at a time. Each line
// is uploaded to an OpenGL texture and the texture is presented by blitting
// it to the window's framebuffer.
//
// SDL requires that windows are created and serviced from the main thread of
// the program. The Window is given a MainThread implementation for this
// purpose and the Service() function must be called periodically from the
// main thread.
//
// Both types of window are producers of pointer input. The primary mouse
// button is the pointer's pressed state.
package sdlwin

// Error patterns.
const (
	NotOpen  = "sdlwin: window is not open"
	SDLError = "sdlwin: %v"
)
