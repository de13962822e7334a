// Copyright (c) 2026, ZoomStack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zoom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepConvergesExactly(t *testing.T) {
	ag := NewAggregator(testRange())
	ag.State.Target = 1

	var last float32 = -1
	for i := 0; i < 500; i++ {
		ag.Step()
		if ag.State.Current == 1 {
			break
		}
		// monotone approach from above
		if last >= 0 {
			assert.LessOrEqual(t, ag.State.Current, last)
		}
		last = ag.State.Current
	}
	// easing snaps exactly, no perpetual residual
	assert.Equal(t, float32(1), ag.State.Current)
}

func TestStepReturnsZoomFactor(t *testing.T) {
	ag := NewAggregator(Range{Min: 0, Max: 3})
	ag.State.Current = 3
	ag.State.Target = 3
	assert.InDelta(t, 8, ag.Step(), 1e-5)

	ag.State.Current = 0
	ag.State.Target = 0
	assert.InDelta(t, 1, ag.Step(), 1e-5)
}

func TestSnapBack(t *testing.T) {
	ag := NewAggregator(testRange())
	ag.State.Target = 6 // outside the range
	ag.State.Current = 4

	for i := 0; i < 1000 && (ag.State.Target != 4 || ag.State.Current != 4); i++ {
		ag.Step()
	}
	assert.Equal(t, float32(4), ag.State.Target)
	assert.Equal(t, float32(4), ag.State.Current)
}

func TestNoSnapBackDuringPinch(t *testing.T) {
	ag := NewAggregator(testRange())
	ag.State.Target = 6
	ag.Pinch.Active = true

	ag.Step()
	assert.Equal(t, float32(6), ag.State.Target)

	ag.Pinch.Active = false
	ag.Step()
	assert.Less(t, ag.State.Target, float32(6))
}
