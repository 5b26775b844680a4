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

// Package prefs holds the configuration values of the bridge and the
// rendering engine.
//
// Each value is one of the types Bool, Int, Float or String. Values are safe
// to read and write from any goroutine. Hooks can be attached to a value to
// validate a new value before it is stored (SetHookPre) or to react to it
// after it is stored (SetHookPost).
//
// Values are grouped into a Collection under a dotted key name:
//
//	c := prefs.NewCollection()
//	c.Add("bridge.bufferrows", &p.BufferRows)
//
// A collection can be loaded from and saved to a simple text format, one
// entry per line:
//
//	bridge.bufferrows :: 10
//	bridge.tickperiod :: 1
//
// Values can also be supplied on the command line with the -prefs flag. The
// flag's argument is pushed onto the command line stack with
// PushCommandLineStack() and taken by the collection when ApplyCommandLine()
// is called:
//
//	-prefs "bridge.bufferrows::20; engine.refresh::16"
package prefs
