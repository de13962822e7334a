// Copyright (c) 2026, ZoomStack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"errors"
	"image"

	"github.com/cogentcore/webgpu/wgpu"
)

// ErrSurfaceLost is returned when the surface cannot provide a texture
// to render into, e.g., while a window is minimized.
var ErrSurfaceLost = errors.New("gpu: no surface texture available")

// Surface is the rendering target associated with a window.
// It owns the logical device used for rendering to it.
// The surface is configured at the backing (device pixel) resolution:
// window size multiplied by the device pixel ratio.
type Surface struct {
	// GPU is the physical GPU this surface renders on.
	GPU *GPU

	// Device is the logical device owned by this surface.
	Device *Device

	// Format is the texture format of the surface.
	Format wgpu.TextureFormat

	// Size is the current size of the surface in device pixels.
	Size image.Point

	surface *wgpu.Surface

	// current frame texture, between acquire and present.
	curTexture *wgpu.Texture
}

// NewSurface configures a rendering surface of the given size in
// device pixels, selecting the GPU adapter and creating the logical
// device if needed. A failure here means rendering is unavailable.
func NewSurface(gp *GPU, sp *wgpu.Surface, size image.Point) (*Surface, error) {
	if err := gp.init(sp); err != nil {
		return nil, err
	}
	dev, err := NewDevice(gp)
	if err != nil {
		return nil, err
	}
	sf := &Surface{GPU: gp, Device: dev, surface: sp}
	caps := sp.GetCapabilities(gp.Adapter)
	if len(caps.Formats) == 0 {
		dev.Release()
		return nil, ErrNoAdapter
	}
	sf.Format = caps.Formats[0]
	sf.SetSize(size)
	return sf, nil
}

// SetSize reconfigures the surface to the given size in device pixels.
// Call on every window resize; WebGPU has no internal mechanism for
// tracking this, so it must be driven from external events.
func (sf *Surface) SetSize(size image.Point) {
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	sf.Size = size
	sf.surface.Configure(sf.GPU.Adapter, sf.Device.Device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      sf.Format,
		Width:       uint32(size.X),
		Height:      uint32(size.Y),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   wgpu.CompositeAlphaModeAuto,
	})
}

// AcquireNextTexture returns a view of the next frame's texture,
// to use as the render attachment. Call [Surface.Present] after
// rendering to it, or [Surface.AbandonTexture] if rendering fails
// partway, so the acquired texture is always returned to the surface.
func (sf *Surface) AcquireNextTexture() (*wgpu.TextureView, error) {
	tx, err := sf.surface.GetCurrentTexture()
	if err != nil {
		return nil, ErrSurfaceLost
	}
	sf.curTexture = tx
	view, err := tx.CreateView(nil)
	if err != nil {
		sf.AbandonTexture()
		return nil, err
	}
	return view, nil
}

// Present presents the current frame texture to the window.
func (sf *Surface) Present() {
	sf.surface.Present()
	sf.AbandonTexture()
}

// AbandonTexture releases the texture acquired by
// [Surface.AcquireNextTexture] without presenting it. No-op when no
// texture is held.
func (sf *Surface) AbandonTexture() {
	if sf.curTexture != nil {
		sf.curTexture.Release()
		sf.curTexture = nil
	}
}

// Release releases the surface and its device.
func (sf *Surface) Release() {
	if sf.surface == nil {
		return
	}
	sf.surface.Release()
	sf.surface = nil
	sf.Device.Release()
}
