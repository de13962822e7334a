// Copyright (c) 2026, ZoomStack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zoom

import (
	"github.com/chewxy/math32"

	"github.com/zoomstack/zoomstack/events"
)

var (
	// WheelSensitivity converts a normalized wheel delta in pixels
	// into zoom-exponent momentum.
	WheelSensitivity = float32(1.0 / 600.0)

	// WheelMaxDelta is the magnitude a normalized wheel delta is
	// clamped to before applying sensitivity, so a single coarse
	// wheel step cannot jump the zoom.
	WheelMaxDelta = float32(120)

	// MomentumDamping is the geometric decay applied to wheel
	// momentum each frame.
	MomentumDamping = float32(0.88)

	// TiltDeadZone is the tilt magnitude in degrees below which
	// tilt produces no zoom motion.
	TiltDeadZone = float32(3)

	// TiltRate converts tilt degrees into zoom-exponent change per
	// frame.
	TiltRate = float32(0.0006)

	// TiltMinSpeed is the minimum zoom-exponent change per frame
	// once tilt exceeds the dead zone, so small tilts still produce
	// perceptible motion.
	TiltMinSpeed = float32(0.004)
)

// Wheel delta unit conversions to pixels, following the wheel event
// line and page conventions.
const (
	wheelLineScale = 16
	wheelPageScale = 800

	// momentumEpsilon is the magnitude below which momentum is
	// zeroed to stop residual drift.
	momentumEpsilon = 1e-4
)

// Aggregator fuses wheel, pinch, and tilt input into a single target
// zoom exponent plus residual momentum, and integrates the current
// exponent toward the target once per frame. It is owned by one
// rendering session and must only be used from its frame goroutine.
type Aggregator struct {
	// State is the fused zoom state.
	State State

	// Pinch is the transient two-point gesture state.
	Pinch PinchState

	// Range is the admissible zoom-exponent interval, replaced
	// wholesale on resize via [Aggregator.SetRange].
	Range Range

	// Enabled gates all input processing. When false, wheel, pinch,
	// and tilt input is ignored entirely.
	Enabled bool
}

// NewAggregator returns an Aggregator starting fully zoomed out at the
// top of the given range.
func NewAggregator(rng Range) *Aggregator {
	ag := &Aggregator{Range: rng, Enabled: true}
	ag.State.Current = rng.Max
	ag.State.Target = rng.Max
	return ag
}

// SetRange replaces the admissible range, re-clamping the current and
// target exponents and any active pinch start exponent so no stale
// unclamped value persists across a resize.
func (ag *Aggregator) SetRange(rng Range) {
	ag.Range = rng
	ag.State.Current = rng.Clamp(ag.State.Current)
	ag.State.Target = rng.Clamp(ag.State.Target)
	if ag.Pinch.Active {
		ag.Pinch.StartExponent = rng.Clamp(ag.Pinch.StartExponent)
	}
}

// Wheel processes one wheel event: the delta is normalized to pixels
// according to its unit, clamped to [WheelMaxDelta], scaled by
// [WheelSensitivity], and accumulated into momentum. Wheel input is
// inertial: it never writes the target directly.
func (ag *Aggregator) Wheel(delta float32, mode events.DeltaModes) {
	if !ag.Enabled {
		return
	}
	switch mode {
	case events.DeltaLine:
		delta *= wheelLineScale
	case events.DeltaPage:
		delta *= wheelPageScale
	}
	delta = math32.Min(math32.Max(delta, -WheelMaxDelta), WheelMaxDelta)
	ag.State.Momentum += delta * WheelSensitivity
}

// PinchStart begins a two-point gesture at the given inter-point
// distance, recording the current exponent as the gesture origin.
func (ag *Aggregator) PinchStart(distance float32) {
	if !ag.Enabled {
		return
	}
	ag.Pinch.Active = true
	ag.Pinch.StartDistance = distance
	ag.Pinch.StartExponent = ag.State.Target
}

// PinchMove updates the target from the current inter-point distance:
// target = startExponent - log2(distance/startDistance), clamped to
// the range. Pinch input is absolute, not inertial. A zero distance or
// a non-finite ratio is ignored so transient touch noise never
// propagates NaN into the zoom state.
func (ag *Aggregator) PinchMove(distance float32) {
	if !ag.Enabled || !ag.Pinch.Active {
		return
	}
	if ag.Pinch.StartDistance == 0 || distance <= 0 {
		return
	}
	ratio := distance / ag.Pinch.StartDistance
	exp := ag.Pinch.StartExponent - math32.Log2(ratio)
	if math32.IsNaN(exp) || math32.IsInf(exp, 0) {
		return
	}
	ag.State.Target = ag.Range.Clamp(exp)
}

// PinchEnd ends the gesture, resetting the transient pinch state.
func (ag *Aggregator) PinchEnd() {
	ag.Pinch = PinchState{}
}

// Tilt applies one frame of tilt-driven zoom for the given tilt in
// degrees. Within [TiltDeadZone] of level it does nothing; beyond it,
// the per-frame exponent delta is proportional to tilt magnitude with
// a [TiltMinSpeed] floor, added directly to the target and clamped.
func (ag *Aggregator) Tilt(deg float32) {
	if !ag.Enabled {
		return
	}
	mag := math32.Abs(deg)
	if mag <= TiltDeadZone {
		return
	}
	speed := math32.Max(mag*TiltRate, TiltMinSpeed)
	if deg < 0 {
		speed = -speed
	}
	ag.State.Target = ag.Range.Clamp(ag.State.Target + speed)
}

// applyMomentum applies accumulated wheel momentum to the target
// (clamped to the range), then damps it geometrically, zeroing it
// below epsilon to stop residual drift. Called once per frame from
// [Aggregator.Step].
func (ag *Aggregator) applyMomentum() {
	if ag.State.Momentum == 0 {
		return
	}
	ag.State.Target = ag.Range.Clamp(ag.State.Target + ag.State.Momentum)
	ag.State.Momentum *= MomentumDamping
	if math32.Abs(ag.State.Momentum) < momentumEpsilon {
		ag.State.Momentum = 0
	}
}
