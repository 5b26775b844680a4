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

package main

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/pixbridge/demo"
	"github.com/jetsetilly/pixbridge/display/memfb"
	"github.com/jetsetilly/pixbridge/modalflag"
	"github.com/jetsetilly/pixbridge/prefs"
	"github.com/jetsetilly/pixbridge/test"
)

func parseOptions(t *testing.T, args ...string) *options {
	t.Helper()
	md := &modalflag.Modes{}
	md.NewArgs(args)
	opts := addOptions(md)
	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, p, modalflag.ParseContinue)
	return opts
}

// run the test in a directory with its own resource directory so that the
// preferences of the user are not touched
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".pixbridge", 0o700))
}

func TestRegistry(t *testing.T) {
	opts := parseOptions(t)
	reg, err := newRegistry(opts, &mainSync{})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Join(reg.Names(), " "), "fbdev memfb memline sdl sdlgl serial tcell")
}

func TestBootstrap(t *testing.T) {
	isolate(t)

	opts := parseOptions(t, "-device", "memline", "-width", "64", "-height", "48", "-saveprefs",
		"-prefs", "engine.refresh::10")
	opts.apply()
	defer prefs.PopCommandLineStack()

	b, eng, dev, end, err := bootstrap(opts, &mainSync{})
	test.DemandSuccess(t, err)
	defer end()

	test.ExpectEquality(t, b.Surface().Width, 64)
	test.ExpectEquality(t, b.Surface().Direct(), false)

	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()
	test.ExpectSuccess(t, eng.Run(ctx, demo.NewScene(*opts.depth)))
	test.ExpectInequality(t, eng.Flushes(), uint64(0))

	fb, ok := dev.(*memfb.FB)
	test.DemandSuccess(t, ok)
	test.ExpectInequality(t, fb.Lines(), 0)

	data, err := os.ReadFile(".pixbridge/preferences")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "bridge.bufferrows :: 10"))
	test.ExpectSuccess(t, strings.Contains(string(data), "engine.refresh :: 10"))
}

func TestBootstrapFailure(t *testing.T) {
	isolate(t)

	opts := parseOptions(t, "-device", "memfb", "-depth", "12")
	opts.apply()
	defer prefs.PopCommandLineStack()

	_, _, _, _, err := bootstrap(opts, &mainSync{})
	test.ExpectFailure(t, err)
}
