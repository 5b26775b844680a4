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
	"io"

	"github.com/jetsetilly/pixbridge/curated"
	"github.com/jetsetilly/pixbridge/prefs"
)

// Preferences for the engine.
type Preferences struct {
	col *prefs.Collection

	// the file the preferences were loaded from. empty if the preferences are
	// not backed by a file
	file string

	// period of screen refreshes in milliseconds of engine time
	Refresh prefs.Int

	// period between reads of the pointer in milliseconds of engine time
	IndevPeriod prefs.Int
}

func (p *Preferences) String() string {
	return p.col.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values on the top of the command line stack are applied.
func NewPreferences() (*Preferences, error) {
	return newPreferences("")
}

// NewPreferencesFromFile is like NewPreferences but values are loaded from
// the file before the command line stack is applied. SaveFile() writes the
// values back to the same file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{
		col:  prefs.NewCollection(),
		file: pth,
	}
	p.SetDefaults()

	err := p.col.Add("engine.refresh", &p.Refresh)
	if err != nil {
		return nil, err
	}
	err = p.col.Add("engine.indevperiod", &p.IndevPeriod)
	if err != nil {
		return nil, err
	}

	positive := func(v prefs.Value) error {
		if v.(int) <= 0 {
			return errNotPositive
		}
		return nil
	}
	p.Refresh.SetHookPre(positive)
	p.IndevPeriod.SetHookPre(positive)

	if p.file != "" {
		err = p.col.LoadFile(p.file)
		if err != nil {
			return nil, err
		}
	}

	err = p.col.ApplyCommandLine()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.Refresh.Set(30)
	p.IndevPeriod.Set(30)
}

// Load values from io.Reader.
func (p *Preferences) Load(r io.Reader) error {
	return p.col.Load(r)
}

// Save values to io.Writer.
func (p *Preferences) Save(w io.Writer) error {
	return p.col.Save(w)
}

// SaveFile writes the values to the file they were loaded from. Other values
// in the file are preserved.
func (p *Preferences) SaveFile() error {
	if p.file == "" {
		return curated.Errorf(NoPrefsFile)
	}
	return p.col.SaveFile(p.file)
}
