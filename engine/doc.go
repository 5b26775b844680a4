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

// Package engine is a small retained-mode rendering engine. It owns the time
// base, the list of dirty areas of the screen and the scratch buffer into
// which areas of the screen are painted. It knows nothing about the physical
// display or the pointing device: both are registered with it as callbacks.
//
// The display is registered with RegisterDisplay(). The flush callback is
// given a rectangle and the colours for that rectangle. The callback must
// call FlushReady() on the Acknowledger when it no longer needs the colours,
// after which the engine may reuse the buffer.
//
// The pointer is registered with RegisterPointer(). The engine reads it at
// the period given by the engine.indevperiod preference.
//
// The engine's time base is advanced by calls to TickInc(). Run() uses the
// time base to decide when to update and repaint the Scene, so an engine
// whose time base is not advanced will never update.
package engine
