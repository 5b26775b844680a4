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

package pointer_test

import (
	"sync"
	"testing"

	"github.com/jetsetilly/pixbridge/pointer"
	"github.com/jetsetilly/pixbridge/test"
)

func TestZeroValue(t *testing.T) {
	var c pointer.Cache
	test.ExpectEquality(t, c.Poll(), pointer.State{})
}

func TestDownUp(t *testing.T) {
	var c pointer.Cache

	c.Report(5, 7, pointer.Down)
	test.ExpectEquality(t, c.Poll(), pointer.State{X: 5, Y: 7, Pressed: true})

	// up keeps the position. the coordinates of the up report are ignored
	c.Report(100, 100, pointer.Up)
	test.ExpectEquality(t, c.Poll(), pointer.State{X: 5, Y: 7, Pressed: false})
}

func TestMove(t *testing.T) {
	var c pointer.Cache

	c.Report(10, 20, pointer.Move)
	test.ExpectEquality(t, c.Poll(), pointer.State{X: 10, Y: 20})

	c.Report(1, 2, pointer.Down)
	c.Report(3, 4, pointer.Move)
	test.ExpectEquality(t, c.Poll(), pointer.State{X: 3, Y: 4, Pressed: true})

	// unknown phase changes nothing
	c.Report(9, 9, pointer.Phase(99))
	test.ExpectEquality(t, c.Poll(), pointer.State{X: 3, Y: 4, Pressed: true})
}

func TestNegativeCoordinates(t *testing.T) {
	var c pointer.Cache

	c.Report(-1, -32768, pointer.Down)
	test.ExpectEquality(t, c.Poll(), pointer.State{X: -1, Y: -32768, Pressed: true})

	c.Report(65535, -5, pointer.Move)
	test.ExpectEquality(t, c.Poll(), pointer.State{X: 65535, Y: -5, Pressed: true})
}

func TestReporter(t *testing.T) {
	var c pointer.Cache
	var r pointer.Reporter
	test.DemandImplements(t, &c, &r)
}

func TestConcurrent(t *testing.T) {
	var c pointer.Cache
	var wg sync.WaitGroup

	// every report has x == y so a torn read would be detected
	for i := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 1000 {
				v := i*1000 + j
				c.Report(v, v, pointer.Move)
			}
		}()
	}

	done := make(chan bool)
	polled := make(chan bool)
	go func() {
		defer close(polled)
		for {
			select {
			case <-done:
				return
			default:
			}
			s := c.Poll()
			if s.X != s.Y {
				t.Errorf("torn read: %v", s)
				return
			}
		}
	}()

	wg.Wait()
	close(done)
	<-polled
}
