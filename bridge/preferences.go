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

package bridge

import (
	"fmt"
	"io"

	"github.com/jetsetilly/pixbridge/curated"
	"github.com/jetsetilly/pixbridge/engine"
	"github.com/jetsetilly/pixbridge/prefs"
)

// Preferences for the bridge.
type Preferences struct {
	col *prefs.Collection

	// the file the preferences were loaded from. empty if the preferences are
	// not backed by a file
	file string

	// number of rows of the surface the scratch buffer can hold
	BufferRows prefs.Int

	// period of the tick driver in milliseconds
	TickPeriod prefs.Int

	// the least important level of engine message that is written to the log
	LogLevel prefs.String
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

	err := p.col.Add("bridge.bufferrows", &p.BufferRows)
	if err != nil {
		return nil, err
	}
	err = p.col.Add("bridge.tickperiod", &p.TickPeriod)
	if err != nil {
		return nil, err
	}
	err = p.col.Add("engine.loglevel", &p.LogLevel)
	if err != nil {
		return nil, err
	}

	p.BufferRows.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("bridge.bufferrows must be positive")
		}
		return nil
	})
	p.TickPeriod.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("bridge.tickperiod must be positive")
		}
		return nil
	})
	p.LogLevel.SetHookPre(func(v prefs.Value) error {
		if _, ok := engine.ParseLogLevel(v.(string)); !ok {
			return fmt.Errorf("engine.loglevel: unknown level %q", v)
		}
		return nil
	})

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
	p.BufferRows.Set(10)
	p.TickPeriod.Set(1)
	p.LogLevel.Set(engine.Info.String())
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

func (p *Preferences) level() engine.LogLevel {
	l, _ := engine.ParseLogLevel(p.LogLevel.String())
	return l
}
