// Copyright (c) 2026, ZoomStack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueFIFO(t *testing.T) {
	q := &Queue{}
	q.Send(NewResize(image.Point{100, 100}))
	q.Send(NewTouch(TouchStart, TouchPoint{0, 0}, TouchPoint{10, 0}))

	evs := q.Drain()
	assert.Equal(t, 2, len(evs))
	assert.Equal(t, Resize, evs[0].Type())
	assert.Equal(t, TouchStart, evs[1].Type())
	assert.Nil(t, q.Drain())
}

func TestQueueScrollCoalescing(t *testing.T) {
	q := &Queue{}
	q.Send(NewScroll(-1, DeltaLine))
	q.Send(NewScroll(-2, DeltaLine))
	q.Send(NewScroll(-3, DeltaLine))

	evs := q.Drain()
	assert.Equal(t, 1, len(evs))
	sc := evs[0].(*ScrollEvent)
	assert.Equal(t, float32(-6), sc.Delta)
	assert.Equal(t, DeltaLine, sc.Mode)
}

func TestQueueScrollDifferentModes(t *testing.T) {
	q := &Queue{}
	q.Send(NewScroll(-1, DeltaLine))
	q.Send(NewScroll(-10, DeltaPixel))
	assert.Equal(t, 2, len(q.Drain()))
}

func TestQueueScrollNotCoalescedAcrossOthers(t *testing.T) {
	q := &Queue{}
	q.Send(NewScroll(-1, DeltaLine))
	q.Send(NewResize(image.Point{50, 50}))
	q.Send(NewScroll(-1, DeltaLine))
	assert.Equal(t, 3, len(q.Drain()))
}
