// Copyright (c) 2026, ZoomStack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zoom

import (
	"image"

	"github.com/chewxy/math32"
)

// Range is the admissible zoom-exponent interval. Min <= Max always
// holds: a derivation yielding the reverse is swapped. A Range is
// recomputed wholesale on every viewport resize, never mutated.
type Range struct {
	Min float32
	Max float32
}

// Contains reports whether the given exponent lies within the range.
func (r Range) Contains(exp float32) bool {
	return exp >= r.Min && exp <= r.Max
}

// Clamp returns the given exponent clamped into the range.
func (r Range) Clamp(exp float32) float32 {
	return math32.Min(math32.Max(exp, r.Min), r.Max)
}

// Nearest returns the bound of the range nearest to the given exponent.
func (r Range) Nearest(exp float32) float32 {
	if exp < r.Min {
		return r.Min
	}
	return r.Max
}

// AspectStretch returns the aspect mismatch between viewport and
// scene: max(canvasAspect, sceneAspect) / min(canvasAspect, sceneAspect),
// always >= 1.
func AspectStretch(canvasAspect, sceneAspect float32) float32 {
	if canvasAspect > sceneAspect {
		return canvasAspect / sceneAspect
	}
	return sceneAspect / canvasAspect
}

// CalcRange computes the admissible zoom-exponent interval for the
// given viewport size (device pixels), scene aspect ratio, and layer
// stack bounds. handheld selects the rotation-invariant bound variant
// for devices that rotate on screen.
//
// Fixed-surface mode: the minimum admissible scale is
// innerScale*aspectStretch, so the innermost layer still fully covers
// the viewport after aspect correction (the fit bound); the maximum is
// outerScale, where the outermost layer edge reaches the viewport edge
// (the cover bound).
//
// Handheld mode: the bounds must hold under arbitrary rotation. The
// minimum is innerScale (image height matches viewport height at zero
// rotation, the worst case); the maximum is outerScale/sqrt(2), so the
// image's inscribed circle always covers the viewport's circumscribed
// circle regardless of rotation angle.
func CalcRange(size image.Point, sceneAspect float32, layers []Layer, handheld bool) Range {
	canvasAspect := float32(1)
	if size.X > 0 && size.Y > 0 {
		canvasAspect = float32(size.X) / float32(size.Y)
	}
	inner := InnerScale(layers)
	outer := OuterScale(layers)

	var minScale, maxScale float32
	if handheld {
		minScale = inner
		maxScale = outer / math32.Sqrt(2)
	} else {
		minScale = inner * AspectStretch(canvasAspect, sceneAspect)
		maxScale = outer
	}

	e1 := math32.Log2(minScale)
	e2 := math32.Log2(maxScale)
	// degenerate stacks (0 or 1 layers) can invert the formulas
	return Range{Min: math32.Min(e1, e2), Max: math32.Max(e1, e2)}
}
