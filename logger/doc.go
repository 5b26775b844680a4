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

// Package logger is the central log for the bridge, its devices and the
// rendering engine's diagnostic sink.
//
// Entries are made up of a tag and a detail. The tag is a short name for the
// component making the entry (eg. "bridge", "flush", "fbdev") and the detail
// is the message. Consecutive identical entries are folded into one entry with
// a repeat count:
//
//	flush: notification failed: device closed (repeat x3)
//
// Every call to Log() or Logf() requires a Permission. Use logger.Allow when
// an entry should always be made. Components that log from a hot path (the
// flush path for example) can supply their own Permission implementation to
// throttle logging.
//
// The log is bounded. Once the maximum number of entries has been reached the
// oldest entries are discarded.
package logger
