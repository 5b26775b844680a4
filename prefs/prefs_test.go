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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/pixbridge/prefs"
	"github.com/jetsetilly/pixbridge/test"
)

func TestBool(t *testing.T) {
	var p prefs.Bool
	test.ExpectEquality(t, p.Get().(bool), false)
	test.ExpectSuccess(t, p.Set(true))
	test.ExpectEquality(t, p.String(), "true")
	test.ExpectSuccess(t, p.Set("FALSE"))
	test.ExpectEquality(t, p.Get().(bool), false)
	test.ExpectFailure(t, p.Set(10))
}

func TestInt(t *testing.T) {
	var p prefs.Int
	test.ExpectSuccess(t, p.Set(10))
	test.ExpectEquality(t, p.Get().(int), 10)
	test.ExpectSuccess(t, p.Set(" 20 "))
	test.ExpectEquality(t, p.Get().(int), 20)
	test.ExpectFailure(t, p.Set("twenty"))
	test.ExpectEquality(t, p.Get().(int), 20)
	test.ExpectSuccess(t, p.Reset())
	test.ExpectEquality(t, p.String(), "0")
}

func TestFloat(t *testing.T) {
	var p prefs.Float
	test.ExpectEquality(t, p.String(), "0.000")
	test.ExpectSuccess(t, p.Set("1.5"))
	test.ExpectEquality(t, p.Get().(float64), 1.5)
}

func TestString(t *testing.T) {
	var p prefs.String
	test.ExpectSuccess(t, p.Set("fb0"))
	test.ExpectEquality(t, p.String(), "fb0")
	p.SetMaxLen(2)
	test.ExpectEquality(t, p.String(), "fb")
	test.ExpectSuccess(t, p.Set("sdl"))
	test.ExpectEquality(t, p.String(), "sd")
}

func TestHooks(t *testing.T) {
	var p prefs.Int
	p.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("must be positive")
		}
		return nil
	})

	var post int
	p.SetHookPost(func(v prefs.Value) error {
		post = v.(int)
		return nil
	})

	test.ExpectSuccess(t, p.Set(5))
	test.ExpectEquality(t, post, 5)
	test.ExpectFailure(t, p.Set(-1))
	test.ExpectEquality(t, p.Get().(int), 5)
	test.ExpectEquality(t, post, 5)
}

func TestCommandLineStackValues(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("foo::bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// additional space is trimmed
	prefs.PushCommandLineStack("   foo:: bar ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// remaining entries are sorted
	prefs.PushCommandLineStack("foo::bar; baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux; foo::bar")

	// invalid entries are dropped
	prefs.PushCommandLineStack("foo_bar;baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")

	prefs.PushCommandLineStack("foo::bar;baz_qux")
	ok, _ := prefs.GetCommandLinePref("baz")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
}

func TestCommandLineStack(t *testing.T) {
	prefs.PushCommandLineStack("foo::bar")
	prefs.PushCommandLineStack("baz::qux")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
}

func TestCollection(t *testing.T) {
	var rows prefs.Int
	var name prefs.String

	c := prefs.NewCollection()
	test.ExpectSuccess(t, c.Add("bridge.bufferrows", &rows))
	test.ExpectSuccess(t, c.Add("bridge.device", &name))
	test.ExpectFailure(t, c.Add("bridge.device", &name))

	err := c.Load(strings.NewReader("bridge.bufferrows :: 20\nunknown :: 1\nmalformed\nbridge.device :: fb0\n"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rows.Get().(int), 20)
	test.ExpectEquality(t, name.String(), "fb0")

	w := &strings.Builder{}
	test.ExpectSuccess(t, c.Save(w))
	test.ExpectEquality(t, w.String(), "bridge.bufferrows :: 20\nbridge.device :: fb0\n")

	// command line values override loaded values and are consumed
	prefs.PushCommandLineStack("bridge.bufferrows::5; other::1")
	test.ExpectSuccess(t, c.ApplyCommandLine())
	test.ExpectEquality(t, rows.Get().(int), 5)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "other::1")

	prefs.PushCommandLineStack("bridge.bufferrows::many")
	test.ExpectFailure(t, c.ApplyCommandLine())
	prefs.PopCommandLineStack()
}

func TestSharedFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	var rows, refresh prefs.Int
	a := prefs.NewCollection()
	test.DemandSuccess(t, a.Add("bridge.bufferrows", &rows))
	b := prefs.NewCollection()
	test.DemandSuccess(t, b.Add("engine.refresh", &refresh))

	// a missing file is not an error
	test.ExpectSuccess(t, a.LoadFile(pth))

	test.DemandSuccess(t, rows.Set(20))
	test.DemandSuccess(t, refresh.Set(16))
	test.DemandSuccess(t, a.SaveFile(pth))
	test.DemandSuccess(t, b.SaveFile(pth))

	// saving the first collection again does not lose the second
	test.DemandSuccess(t, rows.Set(5))
	test.DemandSuccess(t, a.SaveFile(pth))

	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "engine.refresh :: 16\nbridge.bufferrows :: 5\n")

	test.DemandSuccess(t, rows.Set(0))
	test.DemandSuccess(t, refresh.Set(0))
	test.DemandSuccess(t, a.LoadFile(pth))
	test.DemandSuccess(t, b.LoadFile(pth))
	test.ExpectEquality(t, rows.Get().(int), 5)
	test.ExpectEquality(t, refresh.Get().(int), 16)
}
