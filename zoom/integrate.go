// Copyright (c) 2026, ZoomStack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zoom

import "github.com/chewxy/math32"

var (
	// Easing is the per-frame fraction of the remaining distance the
	// current exponent moves toward the target.
	Easing = float32(0.08)

	// SnapBackRate is the faster easing used to pull an out-of-range
	// target back to the nearest bound when no gesture is pinning it
	// outside.
	SnapBackRate = float32(0.25)

	// SnapTolerance is the residual below which easing snaps exactly,
	// preventing perpetual sub-pixel drift.
	SnapTolerance = float32(0.001)
)

// Step advances the zoom state by one frame: momentum is applied to
// the target and damped, an out-of-range target snaps back toward the
// nearest bound when neither a pinch nor momentum holds it outside,
// and the current exponent eases toward the target, snapping exactly
// within tolerance. It returns the multiplicative zoom factor
// Factor^current for the compositor.
func (ag *Aggregator) Step() float32 {
	ag.applyMomentum()

	st := &ag.State
	if !ag.Pinch.Active && st.Momentum == 0 && !ag.Range.Contains(st.Target) {
		bound := ag.Range.Nearest(st.Target)
		st.Target += (bound - st.Target) * SnapBackRate
		if math32.Abs(bound-st.Target) < SnapTolerance {
			st.Target = bound
		}
	}

	st.Current += (st.Target - st.Current) * Easing
	if math32.Abs(st.Target-st.Current) < SnapTolerance {
		st.Current = st.Target
	}
	return ag.ZoomFactor()
}

// ZoomFactor returns the multiplicative zoom factor Factor^current.
func (ag *Aggregator) ZoomFactor() float32 {
	return math32.Pow(Factor, ag.State.Current)
}
