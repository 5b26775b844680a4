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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"
)

// separator between key and value in the saved format.
const separator = " :: "

// DefaultPrefsFile is the name of the file shared by every collection.
const DefaultPrefsFile = "preferences"

// Collection groups preference values under key names.
type Collection struct {
	crit    sync.Mutex
	entries map[string]pref
}

// NewCollection is the preferred method of initialisation for the Collection
// type.
func NewCollection() *Collection {
	return &Collection{
		entries: make(map[string]pref),
	}
}

// Add a preference value to the collection. Returns an error if the key is
// already in use.
func (c *Collection) Add(key string, p pref) error {
	c.crit.Lock()
	defer c.crit.Unlock()

	if _, ok := c.entries[key]; ok {
		return fmt.Errorf("prefs: %s already in collection", key)
	}
	c.entries[key] = p
	return nil
}

// Keys returns the sorted list of keys in the collection.
func (c *Collection) Keys() []string {
	c.crit.Lock()
	defer c.crit.Unlock()

	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ApplyCommandLine sets any values found on the top of the command line
// stack. Entries for keys in the collection are consumed.
func (c *Collection) ApplyCommandLine() error {
	for _, k := range c.Keys() {
		if ok, v := GetCommandLinePref(k); ok {
			c.crit.Lock()
			p := c.entries[k]
			c.crit.Unlock()
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}
	return nil
}

// Load values from io.Reader. Keys not in the collection are ignored, as are
// malformed lines.
func (c *Collection) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), separator, 2)
		if len(kv) != 2 {
			continue
		}

		c.crit.Lock()
		p, ok := c.entries[strings.TrimSpace(kv[0])]
		c.crit.Unlock()
		if !ok {
			continue
		}

		if err := p.Set(kv[1]); err != nil {
			return fmt.Errorf("prefs: %s: %w", kv[0], err)
		}
	}
	return scanner.Err()
}

// Save all values to io.Writer, sorted by key.
func (c *Collection) Save(w io.Writer) error {
	for _, k := range c.Keys() {
		c.crit.Lock()
		p := c.entries[k]
		c.crit.Unlock()
		if _, err := fmt.Fprintf(w, "%s%s%s\n", k, separator, p.String()); err != nil {
			return err
		}
	}
	return nil
}

func (c *Collection) String() string {
	s := &strings.Builder{}
	_ = c.Save(s)
	return s.String()
}

// LoadFile loads values from the named file. A missing file is not an error.
func (c *Collection) LoadFile(pth string) error {
	f, err := os.Open(pth)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()
	return c.Load(f)
}

// SaveFile saves values to the named file. The file can be shared between
// collections: lines for keys not in this collection are preserved, in their
// original order, before the values of this collection.
func (c *Collection) SaveFile(pth string) error {
	var others []string

	data, err := os.ReadFile(pth)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("prefs: %w", err)
	}
	for _, l := range strings.Split(string(data), "\n") {
		kv := strings.SplitN(l, separator, 2)
		if len(kv) != 2 {
			continue
		}
		c.crit.Lock()
		_, ok := c.entries[strings.TrimSpace(kv[0])]
		c.crit.Unlock()
		if !ok {
			others = append(others, l)
		}
	}

	s := &strings.Builder{}
	for _, l := range others {
		s.WriteString(l)
		s.WriteString("\n")
	}
	_ = c.Save(s)

	err = os.WriteFile(pth, []byte(s.String()), 0o600)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	return nil
}
