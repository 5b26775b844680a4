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
	"os"

	"github.com/jetsetilly/pixbridge/display"
	"github.com/jetsetilly/pixbridge/display/fbdev"
	"github.com/jetsetilly/pixbridge/display/memfb"
	"github.com/jetsetilly/pixbridge/display/sdlwin"
	"github.com/jetsetilly/pixbridge/display/serial"
	"github.com/jetsetilly/pixbridge/display/tcellterm"
	"github.com/jetsetilly/pixbridge/logger"
	"github.com/jetsetilly/pixbridge/modalflag"
	"github.com/jetsetilly/pixbridge/prefs"
)

// options common to every mode that creates devices.
type options struct {
	device    *string
	depth     *int
	width     *int
	height    *int
	scale     *int
	prefs     *string
	saveprefs *bool
	log       *bool
	serial    *string
	baud      *int
	fb        *string
	evdev     *string
}

func addOptions(md *modalflag.Modes) *options {
	return &options{
		device:    md.AddString("device", "memfb", "output device: memfb, memline, fbdev, sdl, sdlgl, serial, tcell"),
		depth:     md.AddInt("depth", 16, "bits per pixel produced by the engine"),
		width:     md.AddInt("width", 320, "width of devices that have no fixed size"),
		height:    md.AddInt("height", 240, "height of devices that have no fixed size"),
		scale:     md.AddInt("scale", 2, "pixel scaling of sdl windows"),
		prefs:     md.AddString("prefs", "", "preferences: key::value; key::value"),
		saveprefs: md.AddBool("saveprefs", false, "save preferences to disk"),
		log:       md.AddBool("log", false, "echo log to stdout"),
		serial:    md.AddString("serial", "/dev/ttyUSB0", "serial port of the serial device"),
		baud:      md.AddInt("baud", serial.DefaultBaud, "speed of the serial port"),
		fb:        md.AddString("fb", fbdev.DefaultPath, "framebuffer of the fbdev device"),
		evdev:     md.AddString("evdev", "", "event device to read pointer input from"),
	}
}

// apply the options that affect global state. PopCommandLineStack() must be
// called when the mode is finished.
func (opts *options) apply() {
	prefs.PushCommandLineStack(*opts.prefs)
	if *opts.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}
}

// the registry contains one instance of every device. devices do not acquire
// any resources until they are opened.
func newRegistry(opts *options, sync *mainSync) (*display.Registry, error) {
	w, h, d := *opts.width, *opts.height, *opts.depth

	devs := []struct {
		name string
		dev  display.Device
	}{
		{"memfb", memfb.New(w, h, d, true)},
		{"memline", memfb.New(w, h, d, false)},
		{"fbdev", fbdev.New(*opts.fb)},
		{"sdl", sdlwin.NewSurface(sync, w, h, d, *opts.scale)},
		{"sdlgl", sdlwin.NewGL(sync, w, h, d, *opts.scale)},
		{"serial", serial.New(serial.Config{Port: *opts.serial, Baud: *opts.baud})},
		{"tcell", tcellterm.New(nil, d)},
	}

	reg := display.NewRegistry()
	for _, r := range devs {
		err := reg.Register(r.name, r.dev)
		if err != nil {
			return nil, err
		}
	}

	return reg, nil
}
