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
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/pixbridge/bridge"
	"github.com/jetsetilly/pixbridge/demo"
	"github.com/jetsetilly/pixbridge/display"
	"github.com/jetsetilly/pixbridge/display/memfb"
	"github.com/jetsetilly/pixbridge/engine"
	"github.com/jetsetilly/pixbridge/input/evdev"
	"github.com/jetsetilly/pixbridge/logger"
	"github.com/jetsetilly/pixbridge/modalflag"
	"github.com/jetsetilly/pixbridge/paths"
	"github.com/jetsetilly/pixbridge/performance"
	"github.com/jetsetilly/pixbridge/prefs"
	"github.com/jetsetilly/pixbridge/statsview"
	"github.com/jetsetilly/pixbridge/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// Servicer is implemented by devices that must do some of their work on the
// main thread. Service() must not block.
type Servicer interface {
	Service()
}

// the interval at which the main thread services the current Servicer
const serviceInterval = 5 * time.Millisecond

// communication between the main() function and the launch() function. this is
// required because SDL requires window creation and event handling to occur on
// the main thread.
type mainSync struct {
	state   chan stateRequest
	service chan Servicer
	run     chan func()
}

// Run implements the sdlwin.MainThread interface.
func (sync *mainSync) Run(f func()) {
	done := make(chan bool)
	sync.run <- func() {
		f()
		done <- true
	}
	<-done
}

// #mainthread
func main() {
	sync := &mainSync{
		state:   make(chan stateRequest),
		service: make(chan Servicer),
		run:     make(chan func()),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// the first interrupt cancels the context given to launch(). the second
	// ends the program immediately
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	ctx, cancel := context.WithCancel(context.Background())
	interrupted := false

	go launch(ctx, sync)

	svcTick := time.NewTicker(serviceInterval)
	defer svcTick.Stop()

	done := false
	var svc Servicer
	for !done {
		select {
		case <-intChan:
			fmt.Print("\r")
			if interrupted {
				done = true
				exitVal = 30
			}
			interrupted = true
			cancel()

		case f := <-sync.run:
			f()

		case s := <-sync.service:
			svc = s

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}

		case <-svcTick.C:
			if svc != nil {
				svc.Service()
			}
		}
	}

	cancel()
	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// run functions on the main thread and to quit.
func launch(ctx context.Context, sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "INFO", "DEVICES")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md, sync)

	case "INFO":
		err = info(md, sync)

	case "DEVICES":
		err = devices(md, sync)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// bootstrap the bridge to the device named in the options. the returned
// function must be called when the bridge is finished with.
func bootstrap(opts *options, sync *mainSync) (*bridge.Bridge, *engine.Engine, display.Device, func(), error) {
	reg, err := newRegistry(opts, sync)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	pth := paths.ResourcePath(prefs.DefaultPrefsFile)

	bprefs, err := bridge.NewPreferencesFromFile(pth)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	eprefs, err := engine.NewPreferencesFromFile(pth)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	// values from the command line are saved along with everything else
	if *opts.saveprefs {
		err = paths.Prepare(pth)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		err = bprefs.SaveFile()
		if err != nil {
			return nil, nil, nil, nil, err
		}
		err = eprefs.SaveFile()
		if err != nil {
			return nil, nil, nil, nil, err
		}
		logger.Logf(logger.Allow, "main", "preferences saved to %s", pth)
	}

	eng := engine.New(*opts.depth, eprefs)

	b, err := bridge.Init(reg, *opts.device, eng, bprefs)
	if err != nil {
		// the device may have been left open
		if dev, ok := reg.Find(*opts.device); ok {
			_ = dev.Close()
		}
		return nil, nil, nil, nil, err
	}

	dev, _ := reg.Find(*opts.device)

	logger.Logf(logger.Allow, "main", "bridge preferences: %s", bprefs)
	logger.Logf(logger.Allow, "main", "engine preferences: %s", eprefs)

	svc, isSvc := dev.(Servicer)
	if isSvc {
		sync.service <- svc
	}

	end := func() {
		if isSvc {
			sync.service <- nil
		}
		err := b.Close()
		if err != nil {
			logger.Log(logger.Allow, "main", err)
		}
	}

	return b, eng, dev, end, nil
}

func run(ctx context.Context, md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	opts := addOptions(md)
	snapshot := md.AddString("snapshot", "", "write BMP snapshot of memfb device on exit")
	memvizOut := md.AddString("memviz", "", "write graphviz structure of the bridge to file")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	cpuProfile := md.AddString("cpuprofile", "", "write cpu profile to file")
	memProfile := md.AddString("memprofile", "", "write heap profile to file on exit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	opts.apply()
	defer prefs.PopCommandLineStack()

	if *stats {
		statsview.Launch(os.Stdout)
	}

	b, eng, dev, end, err := bootstrap(opts, sync)
	if err != nil {
		return err
	}
	defer end()

	if *memvizOut != "" {
		f, err := os.Create(*memvizOut)
		if err != nil {
			return err
		}
		memviz.Map(f, b)
		err = f.Close()
		if err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// a device that produces input ends the program when it stops producing.
	// for example, when the window is closed
	if pr, ok := dev.(display.Producer); ok {
		go func() {
			err := pr.Produce(ctx, b)
			if err != nil {
				logger.Log(logger.Allow, "main", err)
			}
			cancel()
		}()
	}

	if *opts.evdev != "" {
		desc := b.Surface()
		ev := evdev.New(*opts.evdev, desc.Width, desc.Height)
		go func() {
			err := ev.Produce(ctx, b)
			if err != nil {
				logger.Log(logger.Allow, "main", err)
			}
		}()
	}

	prof := performance.Profile{CPU: *cpuProfile, Mem: *memProfile}
	err = performance.RunProfiler(prof, func() error {
		return eng.Run(ctx, demo.NewScene(*opts.depth))
	})
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "main", "%d flushes, %d ticks", eng.Flushes(), b.Ticks())

	if *snapshot != "" {
		fb, ok := dev.(*memfb.FB)
		if !ok {
			return fmt.Errorf("snapshot only available for memfb device")
		}
		f, err := os.Create(*snapshot)
		if err != nil {
			return err
		}
		defer f.Close()
		return fb.Snapshot(f)
	}

	return nil
}

func info(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	opts := addOptions(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	opts.apply()
	defer prefs.PopCommandLineStack()

	b, _, _, end, err := bootstrap(opts, sync)
	if err != nil {
		return err
	}
	defer end()

	v, r, _ := version.Version()
	fmt.Printf("%s %s (%s)\n", version.ApplicationName, v, r)
	fmt.Printf("%s: %s\n", b.Device(), b.Surface())

	return nil
}

func devices(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	opts := addOptions(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	opts.apply()
	defer prefs.PopCommandLineStack()

	reg, err := newRegistry(opts, sync)
	if err != nil {
		return err
	}
	for _, n := range reg.Names() {
		fmt.Println(n)
	}

	return nil
}
