// Copyright (c) 2026, ZoomStack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zoom implements the zoom mathematics for an infinite-zoom
// image stack: the scale pyramid of nested layers, the admissible
// zoom-exponent range for a given viewport, and the fusion of wheel,
// pinch, and tilt input into a smoothly integrated zoom depth.
//
// Zoom depth is expressed throughout as a base-2 exponent of the zoom
// scale factor, so wheel and pinch deltas are additive. Zooming in
// (magnifying) decreases the exponent.
package zoom

import "github.com/chewxy/math32"

// Factor is the geometric growth factor between successive layer
// scales: each layer covers Factor times the extent of the one
// nested inside it.
const Factor = 2

// Layer is one image in the zoom stack: an opaque source reference
// and the scale at which it is composited. Layers are immutable once
// built and are owned by a single rendering session.
type Layer struct {
	// Source is an opaque reference to the layer image (URL or path).
	Source string

	// Scale is Factor^index: layer 0 is the innermost (deepest)
	// image, and scale grows geometrically moving outward.
	Scale float32
}

// BuildLayers derives the layer stack from an ordered list of image
// sources, deepest first. layers[i].Scale = Factor^i, strictly
// increasing. An empty source list yields an empty stack, which a
// session treats as "nothing to render" and reports ready immediately.
func BuildLayers(sources []string) []Layer {
	layers := make([]Layer, len(sources))
	for i, src := range sources {
		layers[i] = Layer{
			Source: src,
			Scale:  math32.Pow(Factor, float32(i)),
		}
	}
	return layers
}

// InnerScale returns the scale of the innermost (deepest) layer,
// or 1 for an empty stack.
func InnerScale(layers []Layer) float32 {
	if len(layers) == 0 {
		return 1
	}
	return layers[0].Scale
}

// OuterScale returns the scale of the outermost layer,
// or 1 for an empty stack.
func OuterScale(layers []Layer) float32 {
	if len(layers) == 0 {
		return 1
	}
	return layers[len(layers)-1].Scale
}
