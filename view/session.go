// Copyright (c) 2026, ZoomStack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package view implements the rendering session for an infinite-zoom
// image stack: asynchronous texture loading, per-frame input fusion,
// and the WebGPU compositor drawing the nested layers.
package view

import (
	"errors"
	"image"
	"log/slog"

	"github.com/chewxy/math32"
	zerrors "github.com/zoomstack/zoomstack/base/errors"
	"github.com/zoomstack/zoomstack/events"
	"github.com/zoomstack/zoomstack/gpu"
	"github.com/zoomstack/zoomstack/zoom"
)

// Config configures a rendering [Session].
type Config struct {
	// Sources are the layer image sources (paths or http(s) URLs),
	// ordered deepest first: the first source is the innermost image.
	Sources []string

	// SceneSize is the nominal pixel size of the layer images, used
	// for aspect correction. Zero means use the surface size.
	SceneSize image.Point

	// Handheld selects the rotation-invariant zoom bounds for devices
	// that rotate on screen.
	Handheld bool

	// Enabled sets the initial input-enabled state.
	Enabled bool

	// Open decodes one image source. Nil means the default opener,
	// which fetches http(s) URLs and reads anything else as a file.
	Open func(source string) (image.Image, error)

	// OnReady is called exactly once per session, when every layer
	// source has settled (loaded or failed). With no sources it is
	// called synchronously during construction.
	OnReady func()

	// OnZoomChange is called once per rendered frame, once textures
	// are ready, with the current zoom exponent and the active range.
	OnZoomChange func(exponent float32, rng zoom.Range)
}

// Session is one rendering session over a surface: it owns the layer
// stack, the input aggregator, the texture loader, and the compositor.
// The surface is borrowed from the caller and survives the session, so
// sessions can be swapped over a live window. All methods except
// [Session.Events] posting must be called from the frame goroutine.
type Session struct {
	// Config is the configuration the session was created with.
	Config Config

	// Surface is the borrowed rendering surface.
	Surface *gpu.Surface

	layers    []zoom.Layer
	agg       *zoom.Aggregator
	comp      *compositor
	queue     *events.Queue
	loader    *loader
	installed []bool
	rotation  float32

	// orientation, when set, is polled once per frame for the clamped
	// tilt driving the zoom and the raw tilt driving scene rotation,
	// both in degrees; ok=false means no reading this frame.
	orientation func() (tilt, raw float32, ok bool)

	ready    bool
	released bool
}

// NewSession creates a session rendering the given layer sources onto
// the given surface. Shader compilation, pipeline creation, or buffer
// allocation failure is fatal: the error is returned and no session
// exists. Texture loading starts immediately and proceeds while
// frames render. An empty source list creates no GPU resources and
// reports ready synchronously, before returning.
func NewSession(sf *gpu.Surface, cfg Config) (*Session, error) {
	if sf == nil {
		return nil, errors.New("view: nil surface")
	}
	s := newSession(sf, cfg)

	if len(cfg.Sources) == 0 {
		s.ready = true
		if cfg.OnReady != nil {
			cfg.OnReady()
		}
		return s, nil
	}

	comp, err := newCompositor(sf, s.layers, s.Config.SceneSize)
	if err != nil {
		return nil, err
	}
	s.comp = comp

	open := cfg.Open
	if open == nil {
		open = openSource
	}
	s.loader = newLoader(cfg.Sources, open)
	return s, nil
}

// newSession builds the session state: layer stack, zoom range, input
// queue, and the per-layer install table. It creates no GPU resources;
// [NewSession] adds the compositor and loader on top.
func newSession(sf *gpu.Surface, cfg Config) *Session {
	s := &Session{Config: cfg, Surface: sf, queue: &events.Queue{}}
	if s.Config.SceneSize.X <= 0 || s.Config.SceneSize.Y <= 0 {
		s.Config.SceneSize = sf.Size
	}
	if s.Config.SceneSize.X <= 0 || s.Config.SceneSize.Y <= 0 {
		s.Config.SceneSize = image.Point{1, 1}
	}
	s.layers = zoom.BuildLayers(cfg.Sources)
	s.agg = zoom.NewAggregator(zoom.CalcRange(sf.Size, s.sceneAspect(), s.layers, cfg.Handheld))
	s.agg.Enabled = cfg.Enabled
	s.installed = make([]bool, len(s.layers))
	return s
}

func (s *Session) sceneAspect() float32 {
	return float32(s.Config.SceneSize.X) / float32(s.Config.SceneSize.Y)
}

// Events returns the input queue for this session. Events may be
// posted to it from any goroutine; they take effect on the next frame.
func (s *Session) Events() *events.Queue {
	return s.queue
}

// Ready reports whether all layer sources have settled.
func (s *Session) Ready() bool {
	return s.ready
}

// ZoomExponent returns the current zoom exponent.
func (s *Session) ZoomExponent() float32 {
	return s.agg.State.Current
}

// SetEnabled sets whether input affects the zoom. Disabling also
// drops accumulated momentum and any active pinch, so the zoom
// freezes rather than coasting.
func (s *Session) SetEnabled(on bool) {
	s.agg.Enabled = on
	if !on {
		s.agg.State.Momentum = 0
		s.agg.PinchEnd()
	}
}

// SetOrientation sets the device-orientation provider, polled once per
// frame. tilt is the clamped tilt in degrees driving the zoom; raw is
// the unclamped tilt driving scene rotation. ok=false means no reading
// this frame, which disables tilt-driven zoom without affecting wheel
// or pinch.
func (s *Session) SetOrientation(provider func() (tilt, raw float32, ok bool)) {
	s.orientation = provider
}

// Frame advances the session by one frame: drains input, installs any
// newly decoded layer textures, applies tilt, integrates the zoom, and
// renders. No drawing happens until the layer sources have settled. A
// temporarily unavailable surface skips the frame without error. Must
// be called from the frame goroutine.
func (s *Session) Frame() error {
	if s.released {
		return errors.New("view: session released")
	}

	for _, ev := range s.queue.Drain() {
		s.handleEvent(ev)
	}

	s.drainLoads()
	if !s.ready {
		if !s.loader.settled() {
			return nil
		}
		s.ready = true
		if s.Config.OnReady != nil {
			s.Config.OnReady()
		}
	}

	if s.orientation != nil {
		if tilt, raw, ok := s.orientation(); ok {
			s.agg.Tilt(tilt)
			s.rotation = raw * (math32.Pi / 180)
		}
	}

	factor := s.agg.Step()
	if s.comp != nil {
		err := s.comp.render(factor, s.rotation)
		if err != nil {
			if errors.Is(err, gpu.ErrSurfaceLost) {
				return nil
			}
			return err
		}
	}
	if s.Config.OnZoomChange != nil {
		s.Config.OnZoomChange(s.agg.State.Current, s.agg.Range)
	}
	return nil
}

func (s *Session) handleEvent(ev events.Event) {
	switch e := ev.(type) {
	case *events.ScrollEvent:
		s.agg.Wheel(e.Delta, e.Mode)
	case *events.TouchEvent:
		s.handleTouch(e)
	case *events.ResizeEvent:
		s.resize(e.Size)
	}
}

// handleTouch maps two-point touch events onto the pinch gesture.
// Gaining a second point starts a pinch; the gesture ends only when
// fewer than two points remain on the surface.
func (s *Session) handleTouch(e *events.TouchEvent) {
	if len(e.Points) < 2 {
		s.agg.PinchEnd()
		return
	}
	d := touchDistance(e.Points[0], e.Points[1])
	switch e.Type() {
	case events.TouchStart:
		s.agg.PinchStart(d)
	case events.TouchMove:
		if !s.agg.Pinch.Active {
			s.agg.PinchStart(d)
			return
		}
		s.agg.PinchMove(d)
	case events.TouchEnd:
		// a lifted finger changes which points remain, so re-anchor
		// at the new spread to avoid a discontinuous jump
		s.agg.PinchStart(d)
	}
}

func touchDistance(a, b events.TouchPoint) float32 {
	return math32.Hypot(b.X-a.X, b.Y-a.Y)
}

// resize reconfigures the surface to the new device-pixel size and
// recomputes the zoom range, re-clamping the zoom state into it.
func (s *Session) resize(size image.Point) {
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	s.Surface.SetSize(size)
	s.agg.SetRange(zoom.CalcRange(size, s.sceneAspect(), s.layers, s.Config.Handheld))
}

// drainLoads installs decoded layer images that have arrived since the
// last frame, marking each successfully installed slot. A failed layer
// is logged and its slot stays empty; the session still becomes ready
// once every source has settled.
func (s *Session) drainLoads() {
	if s.loader == nil {
		return
	}
	for _, res := range s.loader.drain() {
		if res.err != nil {
			slog.Warn("view: layer image failed to load",
				"source", s.layers[res.index].Source, "err", res.err)
			continue
		}
		if s.comp != nil {
			if zerrors.Log(s.comp.install(res.index, s.layers[res.index].Source, res.img)) != nil {
				continue
			}
		}
		s.installed[res.index] = true
	}
}

// Release cancels in-flight loads and releases all GPU resources the
// session owns. The borrowed surface is left intact for the next
// session. Safe to call more than once.
func (s *Session) Release() {
	if s.released {
		return
	}
	s.released = true
	if s.loader != nil {
		s.loader.cancel()
	}
	if s.comp != nil {
		s.comp.Release()
		s.Surface.Device.WaitDone()
	}
}
