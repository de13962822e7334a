// Copyright (c) 2026, ZoomStack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zoom

import (
	"image"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestRangeClamp(t *testing.T) {
	r := Range{Min: -1, Max: 3}
	assert.Equal(t, float32(-1), r.Clamp(-5))
	assert.Equal(t, float32(3), r.Clamp(7))
	assert.Equal(t, float32(2), r.Clamp(2))
	assert.True(t, r.Contains(0))
	assert.False(t, r.Contains(3.5))
	assert.Equal(t, float32(-1), r.Nearest(-2))
	assert.Equal(t, float32(3), r.Nearest(4))
}

func TestAspectStretch(t *testing.T) {
	assert.Equal(t, float32(2), AspectStretch(2, 1))
	assert.Equal(t, float32(2), AspectStretch(1, 2))
	assert.Equal(t, float32(1), AspectStretch(1.5, 1.5))
	assert.GreaterOrEqual(t, AspectStretch(1.78, 1.33), float32(1))
}

func TestCalcRangeFixed(t *testing.T) {
	layers := BuildLayers([]string{"a", "b", "c"})
	// square viewport, square scene: no stretch
	r := CalcRange(image.Point{800, 800}, 1, layers, false)
	assert.InDelta(t, 0, r.Min, 1e-6)
	assert.InDelta(t, 2, r.Max, 1e-6)

	// wide viewport over a square scene raises the minimum
	r = CalcRange(image.Point{1600, 800}, 1, layers, false)
	assert.InDelta(t, 1, r.Min, 1e-6)
	assert.InDelta(t, 2, r.Max, 1e-6)
	assert.LessOrEqual(t, r.Min, r.Max)
}

func TestCalcRangeHandheld(t *testing.T) {
	layers := BuildLayers([]string{"a", "b", "c"})
	r := CalcRange(image.Point{800, 800}, 1, layers, true)
	assert.InDelta(t, 0, r.Min, 1e-6)
	assert.InDelta(t, 2-math32.Log2(math32.Sqrt(2)), r.Max, 1e-5)
	assert.LessOrEqual(t, r.Min, r.Max)
}

func TestCalcRangeDegenerate(t *testing.T) {
	// single layer in handheld mode inverts the raw formulas;
	// the result must still be ordered
	layers := BuildLayers([]string{"only"})
	r := CalcRange(image.Point{800, 800}, 1, layers, true)
	assert.LessOrEqual(t, r.Min, r.Max)

	r = CalcRange(image.Point{800, 800}, 1, nil, true)
	assert.LessOrEqual(t, r.Min, r.Max)

	// zero-size viewport must not produce NaN bounds
	r = CalcRange(image.Point{}, 1, layers, false)
	assert.False(t, math32.IsNaN(r.Min))
	assert.False(t, math32.IsNaN(r.Max))
	assert.LessOrEqual(t, r.Min, r.Max)
}
