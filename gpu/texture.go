// Copyright (c) 2026, ZoomStack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/zoomstack/zoomstack/imagex"
)

// Texture is a WebGPU texture with an associated view, in device
// memory, in RGBA8 sRGB format.
type Texture struct {
	// Name of the texture, for debug labels. Set to the source
	// name when loaded from an image source.
	Name string

	// Size is the size of the texture in pixels.
	Size image.Point

	texture *wgpu.Texture
	view    *wgpu.TextureView

	device *Device
}

// NewTexture returns a new Texture on the given device.
func NewTexture(dev *Device, name string) *Texture {
	return &Texture{Name: name, device: dev}
}

// View returns the texture view for binding.
func (tx *Texture) View() *wgpu.TextureView {
	return tx.view
}

// SetFromGoImage allocates the device texture at the image size and
// uploads the image pixels. An *image.RGBA uploads directly; other
// formats are converted first.
func (tx *Texture) SetFromGoImage(img image.Image) error {
	rimg := imagex.AsRGBA(img)
	sz := rimg.Rect.Size()
	tx.Size = sz

	if err := tx.createTexture(wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst); err != nil {
		return err
	}

	tx.device.Queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Aspect:   wgpu.TextureAspectAll,
			Texture:  tx.texture,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{X: 0, Y: 0, Z: 0},
		},
		rimg.Pix,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  4 * uint32(sz.X),
			RowsPerImage: uint32(sz.Y),
		},
		&wgpu.Extent3D{
			Width:              uint32(sz.X),
			Height:             uint32(sz.Y),
			DepthOrArrayLayers: 1,
		},
	)
	return nil
}

// createTexture creates the device texture at the current size,
// and a view of it. Releases any prior texture first.
func (tx *Texture) createTexture(usage wgpu.TextureUsage) error {
	tx.Release()

	t, err := tx.device.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label: tx.Name,
		Size: wgpu.Extent3D{
			Width:              uint32(tx.Size.X),
			Height:             uint32(tx.Size.Y),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatRGBA8UnormSrgb,
		Usage:         usage,
	})
	if err != nil {
		return err
	}
	tx.texture = t
	vw, err := t.CreateView(nil)
	if err != nil {
		tx.Release()
		return err
	}
	tx.view = vw
	return nil
}

// Release releases the texture view and the device texture.
func (tx *Texture) Release() {
	if tx.view != nil {
		tx.view.Release()
		tx.view = nil
	}
	if tx.texture != nil {
		tx.texture.Release()
		tx.texture = nil
	}
}

// NewSampler returns a linearly filtering sampler with clamp-to-edge
// addressing, so sampling at layer edges never wraps content from the
// opposite side.
func NewSampler(dev *Device, name string) (*wgpu.Sampler, error) {
	return dev.Device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         name,
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeLinear,
		MaxAnisotropy: 1,
	})
}
