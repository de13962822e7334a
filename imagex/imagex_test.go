// Copyright (c) 2026, ZoomStack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtToFormat(t *testing.T) {
	for ext, want := range map[string]Formats{
		".png": PNG, "png": PNG, "JPG": JPEG, "jpeg": JPEG,
		".gif": GIF, "bmp": BMP, ".tif": TIFF, "tiff": TIFF, "webp": WebP,
	} {
		f, err := ExtToFormat(ext)
		assert.NoError(t, err, ext)
		assert.Equal(t, want, f, ext)
	}

	_, err := ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat(".docx")
	assert.Error(t, err)
}

func TestReadPNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	for x := 0; x < 8; x++ {
		src.Set(x, 1, color.NRGBA{R: uint8(x * 30), A: 255})
	}
	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, src))

	img, f, err := Read(&buf)
	assert.NoError(t, err)
	assert.Equal(t, PNG, f)
	assert.Equal(t, image.Point{8, 4}, img.Bounds().Size())
}

func TestReadGarbage(t *testing.T) {
	_, _, err := Read(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}

func TestAsRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(2, 2, 10, 6))
	rimg := AsRGBA(src)
	assert.Equal(t, image.Point{}, rimg.Rect.Min)
	assert.Equal(t, image.Point{8, 4}, rimg.Rect.Size())

	// already-RGBA images pass through untouched
	direct := image.NewRGBA(image.Rect(0, 0, 4, 4))
	assert.Same(t, direct, AsRGBA(direct))
}
