// Copyright (c) 2026, ZoomStack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command zoomstack is a desktop viewer for infinite-zoom image
// stacks. It renders the image set from a TOML config, maps the mouse
// wheel and arrow keys onto the zoom, and swaps in a fresh session
// whenever the config file changes.
package main

import (
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/zoomstack/zoomstack/base/errors"
	"github.com/zoomstack/zoomstack/events"
	"github.com/zoomstack/zoomstack/gpu"
	"github.com/zoomstack/zoomstack/view"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

// simTiltDeg is the simulated tilt magnitude in degrees while an
// arrow key is held, comfortably past the dead zone.
const simTiltDeg = 15

func main() {
	path := "zoomstack.toml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if err := run(path); err != nil {
		errors.Log(err)
		os.Exit(1)
	}
}

func run(path string) error {
	cfg, err := OpenConfig(path)
	if err != nil {
		return err
	}

	if err := gpu.Init(); err != nil {
		return err
	}
	gp := gpu.NewGPU()
	window, wsf, fbSize, err := gpu.NewGLFWWindow(gp, cfg.WindowSize(), cfg.Title)
	if err != nil {
		gpu.Terminate()
		return err
	}
	sf, err := gpu.NewSurface(gp, wsf, fbSize)
	if err != nil {
		window.Destroy()
		gp.Release()
		gpu.Terminate()
		return err
	}
	slog.Info("zoomstack: rendering", "format", sf.Format, "size", fbSize)

	// simulated tilt from arrow keys; only read on the frame thread
	var simTilt float32

	newSession := func(cfg *Config) (*view.Session, error) {
		s, err := view.NewSession(sf, view.Config{
			Sources:   cfg.Sources,
			SceneSize: cfg.SceneSize(),
			Handheld:  cfg.Handheld,
			Enabled:   cfg.Enabled,
			OnReady: func() {
				slog.Info("zoomstack: all layers settled", "layers", len(cfg.Sources))
			},
		})
		if err != nil {
			return nil, err
		}
		s.SetOrientation(func() (float32, float32, bool) {
			// keyboard tilt drives the zoom only, never rotation
			return simTilt, 0, simTilt != 0
		})
		return s, nil
	}

	session, err := newSession(cfg)
	if err != nil {
		sf.Release()
		window.Destroy()
		gp.Release()
		gpu.Terminate()
		return err
	}

	// glfw callbacks run on this thread inside PollEvents, so they can
	// touch session directly.
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		// scrolling up zooms in
		session.Events().Send(events.NewScroll(float32(-yoff), events.DeltaLine))
	})
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		session.Events().Send(events.NewResize(image.Point{width, height}))
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		switch key {
		case glfw.KeyEscape:
			if action == glfw.Press {
				w.SetShouldClose(true)
			}
		case glfw.KeySpace:
			if action == glfw.Press {
				enabled := !session.Config.Enabled
				session.Config.Enabled = enabled
				session.SetEnabled(enabled)
			}
		case glfw.KeyUp:
			switch action {
			case glfw.Press:
				simTilt = -simTiltDeg
			case glfw.Release:
				simTilt = 0
			}
		case glfw.KeyDown:
			switch action {
			case glfw.Press:
				simTilt = simTiltDeg
			case glfw.Release:
				simTilt = 0
			}
		}
	})

	// the watcher is best-effort: without it the viewer still runs,
	// just without live reload
	reloadC := make(chan struct{}, 1)
	if watcher := errors.Log1(fsnotify.NewWatcher()); watcher != nil {
		defer watcher.Close()
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			slog.Warn("zoomstack: config watch unavailable", "err", err)
		} else {
			go watchConfig(watcher, filepath.Base(path), reloadC)
		}
	}

	destroy := func() {
		session.Release()
		sf.Release()
		window.Destroy()
		gp.Release()
		gpu.Terminate()
	}

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()
	for {
		select {
		case <-reloadC:
			ncfg, err := OpenConfig(path)
			if err != nil {
				errors.Log(err)
				continue
			}
			ns, err := newSession(ncfg)
			if err != nil {
				errors.Log(err)
				continue
			}
			session.Release()
			session = ns
			slog.Info("zoomstack: config reloaded", "layers", len(ncfg.Sources))
		case <-ticker.C:
			if window.ShouldClose() {
				destroy()
				return nil
			}
			glfw.PollEvents()
			if err := session.Frame(); err != nil {
				destroy()
				return err
			}
		}
	}
}

// watchConfig forwards write events for the config file as reload
// requests, coalescing bursts into one pending reload.
func watchConfig(watcher *fsnotify.Watcher, name string, reloadC chan<- struct{}) {
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != name {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			select {
			case reloadC <- struct{}{}:
			default:
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("zoomstack: config watch error", "err", err)
		}
	}
}
