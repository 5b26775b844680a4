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

import (
	"context"
	"time"
)

// Scene is updated and painted by Run().
type Scene interface {
	Painter

	// Update is called once per refresh, before the screen is repainted. The
	// Scene should call Invalidate() for every area that has changed.
	Update(e *Engine, tick uint32, p PointerSample)
}

// the interval at which Run() checks the time base.
const handlerPeriod = 5 * time.Millisecond

// Run the scene until the context is cancelled. The scene is updated and the
// screen refreshed every engine.refresh milliseconds of engine time. The
// pointer is read every engine.indevperiod milliseconds of engine time.
func (e *Engine) Run(ctx context.Context, scene Scene) error {
	t := time.NewTicker(handlerPeriod)
	defer t.Stop()

	lastRefresh := e.Tick()
	lastIndev := e.Tick()
	p := e.ReadPointer()

	e.Log(Info, "running at refresh period of %dms", e.prefs.Refresh.Get().(int))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		}

		if e.TickElapsed(lastIndev) >= uint32(e.prefs.IndevPeriod.Get().(int)) {
			lastIndev = e.Tick()
			p = e.ReadPointer()
		}

		if e.TickElapsed(lastRefresh) < uint32(e.prefs.Refresh.Get().(int)) {
			continue
		}
		lastRefresh = e.Tick()

		scene.Update(e, lastRefresh, p)
		err := e.Refresh(scene)
		if err != nil {
			return err
		}
	}
}
