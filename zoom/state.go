// Copyright (c) 2026, ZoomStack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zoom

// State is the mutable zoom state of one rendering session.
// Current and Target are zoom exponents; Momentum is residual wheel
// velocity in exponent units per frame. The input aggregator writes
// Target and Momentum; the integrator writes Current and decays
// Momentum. All access happens on the session's frame goroutine.
type State struct {
	// Current is the zoom exponent being rendered this frame.
	Current float32

	// Target is the zoom exponent that Current eases toward.
	Target float32

	// Momentum is residual wheel velocity, applied to Target each
	// frame and damped geometrically.
	Momentum float32
}

// PinchState is the transient state of an active two-point pinch
// gesture, reset when the gesture ends.
type PinchState struct {
	// Active is whether a two-point gesture is in progress.
	Active bool

	// StartDistance is the distance between the two touch points
	// when the gesture began, in surface pixels.
	StartDistance float32

	// StartExponent is the zoom exponent when the gesture began.
	StartExponent float32
}
