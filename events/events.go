// Copyright (c) 2026, ZoomStack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"
)

// Event is the interface for all input events.
type Event interface {
	// Type returns the type of the event.
	Type() Types
}

// Base is the base type for all events, holding the type.
type Base struct {
	Typ Types
}

func (ev *Base) Type() Types { return ev.Typ }

// ScrollEvent is a wheel scrolling event, recording the vertical delta
// in the units given by Mode.
type ScrollEvent struct {
	Base

	// Delta is the amount of vertical scrolling, in Mode units.
	// Positive deltas scroll outward (reduce magnification).
	Delta float32

	// Mode is the unit of Delta.
	Mode DeltaModes
}

func (ev *ScrollEvent) String() string {
	return fmt.Sprintf("%v{Delta: %g, Mode: %v}", ev.Type(), ev.Delta, ev.Mode)
}

// NewScroll returns a new [ScrollEvent] with the given delta and unit.
func NewScroll(delta float32, mode DeltaModes) *ScrollEvent {
	ev := &ScrollEvent{}
	ev.Typ = Scroll
	ev.Delta = delta
	ev.Mode = mode
	return ev
}

// TouchPoint is one active touch point, in surface pixels.
type TouchPoint struct {
	X, Y float32
}

// TouchEvent is a low-level touch event, carrying all currently active
// touch points. Two-point events drive pinch zoom.
type TouchEvent struct {
	Base

	// Points are the active touch points after this event.
	Points []TouchPoint
}

func (ev *TouchEvent) String() string {
	return fmt.Sprintf("%v{Points: %d}", ev.Type(), len(ev.Points))
}

// NewTouch returns a new [TouchEvent] of the given type
// (TouchStart, TouchMove, or TouchEnd) with the given points.
func NewTouch(typ Types, points ...TouchPoint) *TouchEvent {
	ev := &TouchEvent{}
	ev.Typ = typ
	ev.Points = points
	return ev
}

// ResizeEvent is a change in drawing surface size, in device pixels
// (i.e., window size already multiplied by the device pixel ratio).
type ResizeEvent struct {
	Base

	// Size is the new surface size in device pixels.
	Size image.Point
}

func (ev *ResizeEvent) String() string {
	return fmt.Sprintf("%v{Size: %v}", ev.Type(), ev.Size)
}

// NewResize returns a new [ResizeEvent] with the given size.
func NewResize(size image.Point) *ResizeEvent {
	ev := &ResizeEvent{}
	ev.Typ = Resize
	ev.Size = size
	return ev
}
