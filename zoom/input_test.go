// Copyright (c) 2026, ZoomStack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zoom

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zoomstack/zoomstack/events"
)

func testRange() Range { return Range{Min: 0, Max: 4} }

func TestAggregatorStart(t *testing.T) {
	ag := NewAggregator(testRange())
	assert.Equal(t, float32(4), ag.State.Current)
	assert.Equal(t, float32(4), ag.State.Target)
	assert.Equal(t, float32(0), ag.State.Momentum)
	assert.True(t, ag.Enabled)
}

func TestWheelMomentum(t *testing.T) {
	ag := NewAggregator(testRange())

	ag.Wheel(0, events.DeltaPixel)
	assert.Equal(t, float32(0), ag.State.Momentum)

	ag.Wheel(-60, events.DeltaPixel)
	assert.Less(t, ag.State.Momentum, float32(0))

	// coarse deltas are clamped, so one step is bounded
	m := ag.State.Momentum
	ag.State.Momentum = 0
	ag.Wheel(-100000, events.DeltaPixel)
	assert.Equal(t, -WheelMaxDelta*WheelSensitivity, ag.State.Momentum)
	assert.Less(t, m, float32(0))
}

func TestWheelUnits(t *testing.T) {
	ag := NewAggregator(testRange())
	ag.Wheel(-1, events.DeltaLine)
	line := ag.State.Momentum

	ag.State.Momentum = 0
	ag.Wheel(-1, events.DeltaPixel)
	pixel := ag.State.Momentum

	assert.Less(t, line, pixel)
}

func TestMomentumDecaysToZero(t *testing.T) {
	ag := NewAggregator(testRange())
	ag.Wheel(-60, events.DeltaPixel)
	for i := 0; i < 200 && ag.State.Momentum != 0; i++ {
		ag.Step()
	}
	assert.Equal(t, float32(0), ag.State.Momentum)
	assert.Less(t, ag.State.Target, float32(4))
	assert.GreaterOrEqual(t, ag.State.Target, float32(0))
}

func TestPinch(t *testing.T) {
	ag := NewAggregator(testRange())
	ag.State.Target = 2
	ag.State.Current = 2

	ag.PinchStart(100)
	assert.True(t, ag.Pinch.Active)

	// unchanged distance leaves the target alone
	ag.PinchMove(100)
	assert.Equal(t, float32(2), ag.State.Target)

	// doubling the distance zooms in one octave
	ag.PinchMove(200)
	assert.InDelta(t, 1, ag.State.Target, 1e-6)

	// absolute, not incremental: same distance, same target
	ag.PinchMove(200)
	assert.InDelta(t, 1, ag.State.Target, 1e-6)

	ag.PinchEnd()
	assert.False(t, ag.Pinch.Active)
}

func TestPinchDegenerate(t *testing.T) {
	ag := NewAggregator(testRange())
	ag.State.Target = 2

	// zero start distance: all moves ignored
	ag.PinchStart(0)
	ag.PinchMove(50)
	assert.Equal(t, float32(2), ag.State.Target)
	ag.PinchEnd()

	// zero or negative move distance ignored
	ag.PinchStart(100)
	ag.PinchMove(0)
	ag.PinchMove(-5)
	assert.Equal(t, float32(2), ag.State.Target)
	ag.PinchEnd()

	// move without a start is a no-op
	ag.PinchMove(100)
	assert.Equal(t, float32(2), ag.State.Target)
}

func TestPinchClamped(t *testing.T) {
	ag := NewAggregator(testRange())
	ag.State.Target = 1
	ag.PinchStart(100)
	ag.PinchMove(100000)
	assert.Equal(t, float32(0), ag.State.Target)
	ag.PinchMove(1e-6)
	assert.Equal(t, float32(4), ag.State.Target)
}

func TestTilt(t *testing.T) {
	ag := NewAggregator(testRange())
	ag.State.Target = 2

	// inside the dead zone: nothing
	ag.Tilt(TiltDeadZone - 1)
	assert.Equal(t, float32(2), ag.State.Target)

	// beyond the dead zone: at least the minimum speed
	ag.Tilt(TiltDeadZone + 1)
	assert.GreaterOrEqual(t, ag.State.Target, 2+TiltMinSpeed)

	// negative tilt moves the other way
	before := ag.State.Target
	ag.Tilt(-45)
	assert.Less(t, ag.State.Target, before)
}

func TestTiltClamped(t *testing.T) {
	ag := NewAggregator(testRange())
	ag.State.Target = 4
	for i := 0; i < 10000; i++ {
		ag.Tilt(80)
	}
	assert.Equal(t, float32(4), ag.State.Target)
}

func TestDisabledGatesInput(t *testing.T) {
	ag := NewAggregator(testRange())
	ag.Enabled = false
	ag.State.Target = 2

	ag.Wheel(-500, events.DeltaPixel)
	assert.Equal(t, float32(0), ag.State.Momentum)

	ag.PinchStart(100)
	assert.False(t, ag.Pinch.Active)
	ag.PinchMove(200)
	assert.Equal(t, float32(2), ag.State.Target)

	ag.Tilt(45)
	assert.Equal(t, float32(2), ag.State.Target)
}

func TestSetRangeReclamps(t *testing.T) {
	ag := NewAggregator(testRange())
	ag.State.Current = 3.5
	ag.State.Target = 4
	ag.PinchStart(100)

	ag.SetRange(Range{Min: 0, Max: 2})
	assert.Equal(t, float32(2), ag.State.Current)
	assert.Equal(t, float32(2), ag.State.Target)
	assert.Equal(t, float32(2), ag.Pinch.StartExponent)
}
