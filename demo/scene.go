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

package demo

import (
	"github.com/jetsetilly/pixbridge/engine"
	"github.com/jetsetilly/pixbridge/surface"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/colornames"
)

// size of the tweened box in pixels
const boxSize = 16

// distance from the pointer to the edge of the marker
const markerReach = 4

// time taken for the box to cross the screen, in seconds
const crossing = 2.0

// Scene implements the engine.Scene interface.
type Scene struct {
	depth int

	width  int
	height int
	back   []surface.Color

	tween    *gween.Tween
	leftward bool
	lastTick uint32
	started  bool

	box    surface.Rect
	marker surface.Rect
	pos    engine.PointerSample
	seen   bool

	boxColor    surface.Color
	markerColor surface.Color
	pressColor  surface.Color
}

// NewScene is the preferred method of initialisation for the Scene type. The
// colours painted by the scene are packed for the given depth.
func NewScene(depth int) *Scene {
	pack := func(c interface{ RGBA() (r, g, b, a uint32) }) surface.Color {
		r, g, b, _ := c.RGBA()
		return surface.FromRGB(depth, uint8(r>>8), uint8(g>>8), uint8(b>>8))
	}

	return &Scene{
		depth:       depth,
		boxColor:    pack(colornames.Orangered),
		markerColor: pack(colornames.White),
		pressColor:  pack(colornames.Lime),
	}
}

// Box returns the area covered by the tweened box.
func (sc *Scene) Box() surface.Rect {
	return sc.box
}

// Marker returns the area covered by the pointer marker. The area is empty if
// the pointer has not been seen.
func (sc *Scene) Marker() surface.Rect {
	if !sc.seen {
		return surface.Rect{X1: 0, Y1: 0, X2: -1, Y2: -1}
	}
	return sc.marker
}

func (sc *Scene) resize(e *engine.Engine, width, height int) {
	sc.width = width
	sc.height = height
	sc.back = backdrop(width, height, sc.depth)
	sc.leftward = false
	sc.tween = sc.leg()
	sc.box = sc.boxAt(0)
	e.Invalidate(surface.Rect{X1: 0, Y1: 0, X2: width - 1, Y2: height - 1})
	e.Log(engine.Info, "demo: backdrop for %dx%d", width, height)
}

// one crossing of the screen in the current direction
func (sc *Scene) leg() *gween.Tween {
	end := float32(max(sc.width-boxSize, 0))
	if sc.leftward {
		return gween.New(end, 0, crossing, ease.OutBounce)
	}
	return gween.New(0, end, crossing, ease.OutBounce)
}

func (sc *Scene) boxAt(x float32) surface.Rect {
	y := (sc.height - boxSize) / 2
	return surface.Rect{X1: int(x), Y1: y, X2: int(x) + boxSize - 1, Y2: y + boxSize - 1}
}

// Update implements the engine.Scene interface.
func (sc *Scene) Update(e *engine.Engine, tick uint32, p engine.PointerSample) {
	w, h := e.Screen()
	if w == 0 || h == 0 {
		return
	}
	if w != sc.width || h != sc.height {
		sc.resize(e, w, h)
	}

	var elapsed uint32
	if sc.started {
		elapsed = tick - sc.lastTick
	}
	sc.started = true
	sc.lastTick = tick

	x, finished := sc.tween.Update(float32(elapsed) / 1000)
	if finished {
		sc.leftward = !sc.leftward
		sc.tween = sc.leg()
	}

	box := sc.boxAt(x)
	if box != sc.box {
		e.Invalidate(sc.box)
		e.Invalidate(box)
		sc.box = box
	}

	marker := surface.Rect{
		X1: p.X - markerReach, Y1: p.Y - markerReach,
		X2: p.X + markerReach, Y2: p.Y + markerReach,
	}
	if !sc.seen || p != sc.pos {
		if sc.seen {
			e.Invalidate(sc.marker)
		}
		e.Invalidate(marker)
		sc.marker = marker
		sc.pos = p
		sc.seen = true
	}
}

// Paint implements the engine.Scene interface.
func (sc *Scene) Paint(area surface.Rect, dst []surface.Color) {
	i := 0
	for y := area.Y1; y <= area.Y2; y++ {
		for x := area.X1; x <= area.X2; x++ {
			dst[i] = sc.at(x, y)
			i++
		}
	}
}

func (sc *Scene) at(x, y int) surface.Color {
	if sc.seen && (x == sc.pos.X || y == sc.pos.Y) &&
		x >= sc.marker.X1 && x <= sc.marker.X2 && y >= sc.marker.Y1 && y <= sc.marker.Y2 {
		if sc.pos.Pressed {
			return sc.pressColor
		}
		return sc.markerColor
	}

	if x >= sc.box.X1 && x <= sc.box.X2 && y >= sc.box.Y1 && y <= sc.box.Y2 {
		return sc.boxColor
	}

	if x < 0 || y < 0 || x >= sc.width || y >= sc.height {
		return 0
	}
	return sc.back[x+y*sc.width]
}
