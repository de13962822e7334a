// Copyright (c) 2026, ZoomStack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	_ "embed"
	"errors"
	"image"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/zoomstack/zoomstack/gpu"
	"github.com/zoomstack/zoomstack/zoom"
)

//go:embed shaders/zoom.wgsl
var zoomShader string

// edgeFeather is the feather band width in texture coordinates applied
// to every layer except the outermost, so the hard edge of a nested
// layer fades into the layer behind it.
const edgeFeather = 0.05

// background is the fixed clear color behind the layer stack.
var background = wgpu.Color{R: 0.02, G: 0.02, B: 0.025, A: 1}

// quad geometry shared by all layers: a viewport-filling quad in
// clip space, with texture v flipped to match image orientation.
var (
	quadPositions = []float32{
		-1, -1,
		1, -1,
		-1, 1,
		1, 1,
	}
	quadTexCoords = []float32{
		0, 1,
		1, 1,
		0, 0,
		1, 0,
	}
	quadIndices = []uint16{0, 1, 2, 2, 1, 3}
)

// layerUniforms is the per-layer uniform block, matching the WGSL
// Uniforms struct layout.
type layerUniforms struct {
	CanvasSize  [2]float32
	BaseSize    [2]float32
	Scale       float32
	Zoom        float32
	Rotation    float32
	EdgeFeather float32
}

// layerSlot holds the GPU resources of one layer in the stack.
// texture and textureGroup stay nil until the layer image has been
// decoded and uploaded; the compositor skips empty slots.
type layerSlot struct {
	scale        float32
	uniforms     *wgpu.Buffer
	uniformGroup *wgpu.BindGroup
	texture      *gpu.Texture
	textureGroup *wgpu.BindGroup
}

// compositor owns the render pipeline and per-layer GPU resources,
// and draws the layer stack back to front each frame. All methods
// must be called from the frame goroutine.
type compositor struct {
	surface  *gpu.Surface
	pipeline *gpu.Pipeline
	sampler  *wgpu.Sampler

	positions *wgpu.Buffer
	texCoords *wgpu.Buffer
	indices   *wgpu.Buffer

	baseSize image.Point
	slots    []layerSlot
}

// newCompositor builds the pipeline, shared quad geometry, and one
// uniform buffer and bind group per layer. Shader compilation or
// pipeline creation failure is fatal to session construction.
func newCompositor(sf *gpu.Surface, layers []zoom.Layer, baseSize image.Point) (*compositor, error) {
	cp := &compositor{surface: sf, baseSize: baseSize}
	dev := sf.Device

	cp.pipeline = gpu.NewPipeline("zoom-composite", dev)
	if err := cp.pipeline.AddShader("zoom", zoomShader); err != nil {
		cp.Release()
		return nil, err
	}
	if err := cp.pipeline.Config(sf.Format, "vs_main", "fs_main"); err != nil {
		cp.Release()
		return nil, err
	}

	var err error
	if cp.positions, err = gpu.NewVertexBuffer(dev, "quad-pos", quadPositions); err != nil {
		cp.Release()
		return nil, err
	}
	if cp.texCoords, err = gpu.NewVertexBuffer(dev, "quad-tc", quadTexCoords); err != nil {
		cp.Release()
		return nil, err
	}
	if cp.indices, err = gpu.NewIndexBuffer(dev, "quad-idx", quadIndices); err != nil {
		cp.Release()
		return nil, err
	}
	if cp.sampler, err = gpu.NewSampler(dev, "zoom-sampler"); err != nil {
		cp.Release()
		return nil, err
	}

	cp.slots = make([]layerSlot, len(layers))
	for i, ly := range layers {
		sl := &cp.slots[i]
		sl.scale = ly.Scale
		u := layerUniforms{Scale: ly.Scale, Zoom: 1}
		if sl.uniforms, err = gpu.NewUniformBuffer(dev, ly.Source, &u); err != nil {
			cp.Release()
			return nil, err
		}
		if sl.uniformGroup, err = cp.pipeline.UniformBindGroup(sl.uniforms); err != nil {
			cp.Release()
			return nil, err
		}
	}
	return cp, nil
}

// install uploads a decoded layer image to a texture and makes its
// slot drawable. Replaces any texture already installed at the index.
func (cp *compositor) install(index int, name string, img image.Image) error {
	if index < 0 || index >= len(cp.slots) {
		return errors.New("view: layer index out of range")
	}
	sl := &cp.slots[index]

	tx := gpu.NewTexture(cp.surface.Device, name)
	if err := tx.SetFromGoImage(img); err != nil {
		tx.Release()
		return err
	}
	tg, err := cp.pipeline.TextureBindGroup(tx, cp.sampler)
	if err != nil {
		tx.Release()
		return err
	}
	if sl.textureGroup != nil {
		sl.textureGroup.Release()
	}
	if sl.texture != nil {
		sl.texture.Release()
	}
	sl.texture = tx
	sl.textureGroup = tg
	return nil
}

// render draws one frame of the layer stack at the given zoom factor,
// outermost layer first so nested layers composite on top. Layers
// whose images have not arrived yet are skipped. Returns
// [gpu.ErrSurfaceLost] when no surface texture is available, which the
// caller treats as a skipped frame, not a failure.
func (cp *compositor) render(zoomFactor, rotation float32) error {
	view, err := cp.surface.AcquireNextTexture()
	if err != nil {
		return err
	}
	defer view.Release()

	dev := cp.surface.Device
	enc, err := dev.Device.CreateCommandEncoder(nil)
	if err != nil {
		cp.surface.AbandonTexture()
		return err
	}
	defer enc.Release()

	rp := enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: background,
		}},
	})
	cp.pipeline.BindPipeline(rp)
	rp.SetVertexBuffer(0, cp.positions, 0, wgpu.WholeSize)
	rp.SetVertexBuffer(1, cp.texCoords, 0, wgpu.WholeSize)
	rp.SetIndexBuffer(cp.indices, wgpu.IndexFormatUint16, 0, wgpu.WholeSize)

	canvas := [2]float32{float32(cp.surface.Size.X), float32(cp.surface.Size.Y)}
	base := [2]float32{float32(cp.baseSize.X), float32(cp.baseSize.Y)}

	for i := len(cp.slots) - 1; i >= 0; i-- {
		sl := &cp.slots[i]
		if sl.textureGroup == nil {
			continue
		}
		feather := float32(edgeFeather)
		if i == len(cp.slots)-1 {
			feather = 0
		}
		u := layerUniforms{
			CanvasSize:  canvas,
			BaseSize:    base,
			Scale:       sl.scale,
			Zoom:        zoomFactor,
			Rotation:    rotation,
			EdgeFeather: feather,
		}
		gpu.SetValueFrom(dev, sl.uniforms, &u)
		rp.SetBindGroup(0, sl.uniformGroup, nil)
		rp.SetBindGroup(1, sl.textureGroup, nil)
		rp.DrawIndexed(uint32(len(quadIndices)), 1, 0, 0, 0)
	}
	rp.End()
	rp.Release()

	cmd, err := enc.Finish(nil)
	if err != nil {
		cp.surface.AbandonTexture()
		return err
	}
	dev.Queue.Submit(cmd)
	cmd.Release()
	cp.surface.Present()
	return nil
}

// Release releases all GPU resources owned by the compositor.
func (cp *compositor) Release() {
	for i := range cp.slots {
		sl := &cp.slots[i]
		if sl.textureGroup != nil {
			sl.textureGroup.Release()
			sl.textureGroup = nil
		}
		if sl.texture != nil {
			sl.texture.Release()
			sl.texture = nil
		}
		if sl.uniformGroup != nil {
			sl.uniformGroup.Release()
			sl.uniformGroup = nil
		}
		if sl.uniforms != nil {
			sl.uniforms.Release()
			sl.uniforms = nil
		}
	}
	cp.slots = nil
	if cp.sampler != nil {
		cp.sampler.Release()
		cp.sampler = nil
	}
	if cp.indices != nil {
		cp.indices.Release()
		cp.indices = nil
	}
	if cp.texCoords != nil {
		cp.texCoords.Release()
		cp.texCoords = nil
	}
	if cp.positions != nil {
		cp.positions.Release()
		cp.positions = nil
	}
	if cp.pipeline != nil {
		cp.pipeline.Release()
		cp.pipeline = nil
	}
}
