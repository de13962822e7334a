// Copyright (c) 2026, ZoomStack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the input events consumed by a rendering
// session, and a queue that fuses asynchronous event posting with
// single-threaded per-frame consumption.
package events

// Types is the type of an input event.
type Types int32

const (
	// Unknown is an unset event type.
	Unknown Types = iota

	// Scroll is a mouse wheel or trackpad scrolling event.
	Scroll

	// TouchStart is when one or more touch points go down.
	TouchStart

	// TouchMove is when active touch points move.
	TouchMove

	// TouchEnd is when touch points are lifted.
	TouchEnd

	// Resize is a change in the drawing surface size, in device pixels.
	Resize
)

func (t Types) String() string {
	switch t {
	case Scroll:
		return "Scroll"
	case TouchStart:
		return "TouchStart"
	case TouchMove:
		return "TouchMove"
	case TouchEnd:
		return "TouchEnd"
	case Resize:
		return "Resize"
	default:
		return "Unknown"
	}
}

// DeltaModes is the unit of a scroll delta, following the wheel event
// convention of pixel, line, and page units.
type DeltaModes int32

const (
	// DeltaPixel is a scroll delta in pixels.
	DeltaPixel DeltaModes = iota

	// DeltaLine is a scroll delta in text lines.
	DeltaLine

	// DeltaPage is a scroll delta in pages.
	DeltaPage
)

func (d DeltaModes) String() string {
	switch d {
	case DeltaLine:
		return "Line"
	case DeltaPage:
		return "Page"
	default:
		return "Pixel"
	}
}
