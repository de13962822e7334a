// Copyright (c) 2026, ZoomStack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex decodes the layer images composing a zoom stack.
// png, jpeg, gif, bmp, tiff, and webp formats are supported.
package imagex

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Formats are the supported image decoding formats.
type Formats int32

const (
	None Formats = iota
	PNG
	JPEG
	GIF
	BMP
	TIFF
	WebP
)

func (f Formats) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case GIF:
		return "gif"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	case WebP:
		return "webp"
	default:
		return "none"
	}
}

// ExtToFormat returns a Format based on a filename extension,
// which can start with a . or not.
func ExtToFormat(ext string) (Formats, error) {
	if ext == "" {
		return None, errors.New("imagex.ExtToFormat: ext is empty")
	}
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ext {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	case "webp":
		return WebP, nil
	}
	return None, fmt.Errorf("imagex.ExtToFormat: extension %q not recognized", ext)
}

// formatFromName maps an [image.Decode] registered format name to Formats.
func formatFromName(name string) Formats {
	f, err := ExtToFormat(name)
	if err != nil {
		return None
	}
	return f
}

// Read decodes an image from the given reader, inferring the format
// from the encoded content.
func Read(r io.Reader) (image.Image, Formats, error) {
	img, name, err := image.Decode(bufio.NewReader(r))
	if err != nil {
		return nil, None, err
	}
	return img, formatFromName(name), nil
}

// Open opens an image from the given filename,
// inferring the format from the encoded content.
func Open(filename string) (image.Image, Formats, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer file.Close()
	return Read(file)
}

// AsRGBA returns the image as an [image.RGBA], converting
// only if it is not already one.
func AsRGBA(img image.Image) *image.RGBA {
	if rimg, ok := img.(*image.RGBA); ok {
		return rimg
	}
	rimg := image.NewRGBA(image.Rectangle{Max: img.Bounds().Size()})
	draw.Draw(rimg, rimg.Bounds(), img, img.Bounds().Min, draw.Src)
	return rimg
}
