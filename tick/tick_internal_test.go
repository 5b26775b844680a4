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

package tick

import (
	"testing"
	"time"

	"github.com/jetsetilly/pixbridge/test"
)

type counter struct {
	ticks uint32
}

func (c *counter) TickInc(period uint32) {
	c.ticks += period
}

func TestCycle(t *testing.T) {
	c := &counter{}
	d := NewDriver(c, time.Millisecond)

	const N = 1234
	for range N {
		d.cycle()
	}
	test.ExpectEquality(t, c.ticks, uint32(N))
	test.ExpectEquality(t, d.Cycles(), uint64(N))
}

func TestAmount(t *testing.T) {
	c := &counter{}
	d := NewDriver(c, 5*time.Millisecond)
	d.cycle()
	test.ExpectEquality(t, c.ticks, uint32(5))

	// sub-millisecond periods still advance the engine
	c = &counter{}
	d = NewDriver(c, 100*time.Microsecond)
	d.cycle()
	test.ExpectEquality(t, c.ticks, uint32(1))
}
