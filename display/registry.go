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

package display

import (
	"slices"
	"sync"

	"github.com/jetsetilly/pixbridge/curated"
)

// DuplicateDevice is the error pattern returned by Register() when a device
// with the same name has already been registered.
const DuplicateDevice = "display: device already registered (%s)"

// Registry of devices, keyed by name.
type Registry struct {
	crit    sync.Mutex
	devices map[string]Device
}

// NewRegistry is the preferred method of initialisation for the Registry
// type.
func NewRegistry() *Registry {
	return &Registry{
		devices: make(map[string]Device),
	}
}

// Register the device under the name.
func (reg *Registry) Register(name string, dev Device) error {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	if _, ok := reg.devices[name]; ok {
		return curated.Errorf(DuplicateDevice, name)
	}
	reg.devices[name] = dev
	return nil
}

// Find the device with the name. Returns false if there is no such device.
func (reg *Registry) Find(name string) (Device, bool) {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	dev, ok := reg.devices[name]
	return dev, ok
}

// Names returns the names of all registered devices in alphabetical order.
func (reg *Registry) Names() []string {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	n := make([]string, 0, len(reg.devices))
	for k := range reg.devices {
		n = append(n, k)
	}
	slices.Sort(n)
	return n
}
