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

package surface

import "fmt"

// Rect is a rectangle with inclusive bounds.
type Rect struct {
	X1, Y1 int
	X2, Y2 int
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.X1, r.Y1, r.X2, r.Y2)
}

// Width of the rectangle in pixels.
func (r Rect) Width() int {
	return r.X2 - r.X1 + 1
}

// Height of the rectangle in pixels.
func (r Rect) Height() int {
	return r.Y2 - r.Y1 + 1
}

// Size returns Width() * Height().
func (r Rect) Size() int {
	return r.Width() * r.Height()
}

// Empty is true if the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.X2 < r.X1 || r.Y2 < r.Y1
}

// Intersects is true if the two rectangles share at least one pixel.
func (r Rect) Intersects(o Rect) bool {
	return r.X1 <= o.X2 && o.X1 <= r.X2 && r.Y1 <= o.Y2 && o.Y1 <= r.Y2
}

// Union returns the smallest rectangle covering both rectangles.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X1: min(r.X1, o.X1),
		Y1: min(r.Y1, o.Y1),
		X2: max(r.X2, o.X2),
		Y2: max(r.Y2, o.Y2),
	}
}

// Contains is true if o lies entirely within r.
func (r Rect) Contains(o Rect) bool {
	return o.X1 >= r.X1 && o.Y1 >= r.Y1 && o.X2 <= r.X2 && o.Y2 <= r.Y2
}

// Clip the rectangle against the bounds of the surface. The second return
// value is false if the rectangle does not intersect the surface at all, in
// which case the returned rectangle is meaningless.
//
// The rectangle passed to Clip is not changed, so the caller still has the
// unclipped bounds. These are needed to step through a colour buffer that was
// sized for the unclipped rectangle.
func Clip(r Rect, d Descriptor) (Rect, bool) {
	if r.X2 < 0 || r.Y2 < 0 || r.X1 > d.Width-1 || r.Y1 > d.Height-1 {
		return Rect{}, false
	}

	return Rect{
		X1: max(r.X1, 0),
		Y1: max(r.Y1, 0),
		X2: min(r.X2, d.Width-1),
		Y2: min(r.Y2, d.Height-1),
	}, true
}
