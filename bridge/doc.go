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

// Package bridge joins a rendering engine to an output device and to the
// pointer input of the program.
//
// Init() is the one-time bootstrap. It finds the device by name in a
// display.Registry, opens it, queries the surface once and checks that the
// surface is usable by the engine. A scratch buffer is allocated for the
// engine and the flush strategy suited to the surface is registered: direct
// memory writes when the device exposes its pixel memory, line writes
// otherwise. The pointer cache is registered as the engine's pointer and the
// tick driver is started.
//
// Every failure during Init() is fatal. There is no partial bring-up and
// nothing is retried. Errors are curated errors and can be tested against the
// patterns exported by this package.
//
// Input producers report pointer samples with SendInputEvent(). The engine
// reads the most recent sample at its own pace.
package bridge
