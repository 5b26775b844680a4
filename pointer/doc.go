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

// Package pointer holds the most recent state of the pointing device.
//
// Input producers report samples to the Cache from whatever goroutine they
// run in. The rendering engine polls the Cache from its own goroutine. There
// is no queue: a report overwrites the previous state and a poll returns the
// state as it is at that moment.
//
// The state is held in a single word that is replaced atomically, so a poll
// never sees the position of one report together with the pressed state of
// another.
package pointer
