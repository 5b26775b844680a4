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

// Package evdev is a pointer input producer for Linux input devices
// (/dev/input/event*). Touch screens, which report absolute positions, and
// mice, which report relative movement, are both supported.
//
// Absolute positions are scaled from the range reported by the device to the
// size of the output surface. Relative movement is accumulated and kept
// within the surface.
package evdev
