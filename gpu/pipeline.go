// Copyright (c) 2026, ZoomStack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// Pipeline is a render pipeline for textured-quad compositing, with
// two vertex attributes (position and texCoord, shader locations 0
// and 1) and two bind groups: group 0 holds the per-draw uniform
// struct, group 1 holds the sampled texture and its sampler.
//
// Construction is fail-fast: a shader that does not declare the
// expected attributes and bindings fails pipeline creation, which is a
// fatal construction error — the session must not proceed to render.
type Pipeline struct {
	// Name is the unique name of the pipeline, used as the debug label.
	Name string

	// Shader is the compiled shader module holding both entry points.
	Shader *Shader

	device *Device

	uniformLayout *wgpu.BindGroupLayout
	textureLayout *wgpu.BindGroupLayout
	layout        *wgpu.PipelineLayout
	pipeline      *wgpu.RenderPipeline
}

// NewPipeline returns a new Pipeline with the given name.
func NewPipeline(name string, dev *Device) *Pipeline {
	return &Pipeline{Name: name, device: dev}
}

// AddShader adds a shader with the given name, compiling the given
// WGSL source. On failure the error is returned and the pipeline is
// unusable.
func (pl *Pipeline) AddShader(name, code string) error {
	sh := NewShader(name, pl.device)
	if err := sh.OpenCode(code); err != nil {
		return err
	}
	pl.Shader = sh
	return nil
}

// Config builds the bind group layouts and the render pipeline
// targeting the given surface format, using the given vertex and
// fragment entry point names. Alpha blending is enabled so feathered
// layer edges blend into the layers behind them. Any mismatch between
// the shader interface and the expected attribute/binding layout is a
// fatal construction error.
func (pl *Pipeline) Config(format wgpu.TextureFormat, vertexEntry, fragmentEntry string) error {
	dev := pl.device.Device

	var err error
	pl.uniformLayout, err = dev.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: pl.Name + ":uniform",
		Entries: []wgpu.BindGroupLayoutEntry{{
			Binding:    0,
			Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
			Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform},
		}},
	})
	if err != nil {
		return fmt.Errorf("gpu: pipeline %q uniform layout: %w", pl.Name, err)
	}
	pl.textureLayout, err = dev.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: pl.Name + ":texture",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Sampler:    wgpu.SamplerBindingLayout{Type: wgpu.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: pipeline %q texture layout: %w", pl.Name, err)
	}
	pl.layout, err = dev.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            pl.Name,
		BindGroupLayouts: []*wgpu.BindGroupLayout{pl.uniformLayout, pl.textureLayout},
	})
	if err != nil {
		return fmt.Errorf("gpu: pipeline %q layout: %w", pl.Name, err)
	}

	vertexBuffers := []wgpu.VertexBufferLayout{
		{
			ArrayStride: 2 * 4,
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
			},
		},
		{
			ArrayStride: 2 * 4,
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 1},
			},
		},
	}

	pl.pipeline, err = dev.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  pl.Name,
		Layout: pl.layout,
		Vertex: wgpu.VertexState{
			Module:     pl.Shader.Module,
			EntryPoint: vertexEntry,
			Buffers:    vertexBuffers,
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		Fragment: &wgpu.FragmentState{
			Module:     pl.Shader.Module,
			EntryPoint: fragmentEntry,
			Targets: []wgpu.ColorTargetState{{
				Format: format,
				Blend: &wgpu.BlendState{
					Color: wgpu.BlendComponent{
						SrcFactor: wgpu.BlendFactorSrcAlpha,
						DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						Operation: wgpu.BlendOperationAdd,
					},
					Alpha: wgpu.BlendComponent{
						SrcFactor: wgpu.BlendFactorOne,
						DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						Operation: wgpu.BlendOperationAdd,
					},
				},
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: pipeline %q creation failed: %w", pl.Name, err)
	}
	return nil
}

// BindPipeline binds this pipeline as the one to use for the next
// draw commands in the given render pass.
func (pl *Pipeline) BindPipeline(rp *wgpu.RenderPassEncoder) {
	rp.SetPipeline(pl.pipeline)
}

// UniformBindGroup returns a bind group for group 0, holding the
// given uniform buffer.
func (pl *Pipeline) UniformBindGroup(buf *wgpu.Buffer) (*wgpu.BindGroup, error) {
	return pl.device.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  pl.Name + ":uniform",
		Layout: pl.uniformLayout,
		Entries: []wgpu.BindGroupEntry{{
			Binding: 0,
			Buffer:  buf,
			Size:    wgpu.WholeSize,
		}},
	})
}

// TextureBindGroup returns a bind group for group 1, holding the
// given texture and sampler.
func (pl *Pipeline) TextureBindGroup(tx *Texture, sampler *wgpu.Sampler) (*wgpu.BindGroup, error) {
	return pl.device.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  pl.Name + ":" + tx.Name,
		Layout: pl.textureLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: tx.View()},
			{Binding: 1, Sampler: sampler},
		},
	})
}

// Release releases the pipeline, its layouts, and its shader.
func (pl *Pipeline) Release() {
	if pl.pipeline != nil {
		pl.pipeline.Release()
		pl.pipeline = nil
	}
	if pl.layout != nil {
		pl.layout.Release()
		pl.layout = nil
	}
	if pl.textureLayout != nil {
		pl.textureLayout.Release()
		pl.textureLayout = nil
	}
	if pl.uniformLayout != nil {
		pl.uniformLayout.Release()
		pl.uniformLayout = nil
	}
	if pl.Shader != nil {
		pl.Shader.Release()
		pl.Shader = nil
	}
}
