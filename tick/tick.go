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
	"sync/atomic"
	"time"

	"github.com/jetsetilly/pixbridge/curated"
)

// Error patterns returned by Start().
const (
	InvalidPeriod  = "tick: invalid period (%v)"
	AlreadyRunning = "tick: driver already running"
)

// Advancer is implemented by the rendering engine.
type Advancer interface {
	TickInc(period uint32)
}

// Driver calls TickInc() on the Advancer once every period.
type Driver struct {
	target Advancer
	period time.Duration

	// the amount by which the target is advanced each cycle, in milliseconds
	amount uint32

	running atomic.Bool
	cycles  atomic.Uint64
}

// NewDriver is the preferred method of initialisation for the Driver type.
//
// The amount the target is advanced by each cycle is the period in whole
// milliseconds, with a minimum of one.
func NewDriver(target Advancer, period time.Duration) *Driver {
	return &Driver{
		target: target,
		period: period,
		amount: uint32(max(period.Milliseconds(), 1)),
	}
}

// Period returns the period of the driver.
func (d *Driver) Period() time.Duration {
	return d.period
}

// Start the driver in a new goroutine. There is no way of stopping a driver
// once it has started.
func (d *Driver) Start() error {
	if d.period <= 0 {
		return curated.Errorf(InvalidPeriod, d.period)
	}
	if !d.running.CompareAndSwap(false, true) {
		return curated.Errorf(AlreadyRunning)
	}

	go func() {
		t := time.NewTicker(d.period)
		defer t.Stop()
		for range t.C {
			d.cycle()
		}
	}()

	return nil
}

func (d *Driver) cycle() {
	d.target.TickInc(d.amount)
	d.cycles.Add(1)
}

// Cycles returns the number of cycles completed since the driver was
// started.
func (d *Driver) Cycles() uint64 {
	return d.cycles.Load()
}
