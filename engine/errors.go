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

package engine

import "github.com/jetsetilly/pixbridge/curated"

// Error patterns.
const (
	NotInitialised = "engine: not initialised"
	NoDisplay      = "engine: no display registered"
	NotPositive    = "engine: value must be positive"
	NoPrefsFile    = "engine: preferences have no file"
)

var errNotPositive = curated.Errorf(NotPositive)
