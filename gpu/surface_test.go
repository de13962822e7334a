// Copyright (c) 2026, ZoomStack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// GPU-backed surface behavior needs a device; the frame-texture
// bookkeeping does not.

func TestAbandonTextureIdempotent(t *testing.T) {
	sf := &Surface{}
	sf.AbandonTexture()
	sf.AbandonTexture()
	assert.Nil(t, sf.curTexture)
}
