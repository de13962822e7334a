// Copyright (c) 2026, ZoomStack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// NewVertexBuffer returns a device buffer initialized with the given
// vertex data, usable as a vertex buffer.
func NewVertexBuffer[E any](dev *Device, name string, data []E) (*wgpu.Buffer, error) {
	return dev.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    name,
		Contents: wgpu.ToBytes(data),
		Usage:    wgpu.BufferUsageVertex,
	})
}

// NewIndexBuffer returns a device buffer initialized with the given
// index data, usable as an index buffer.
func NewIndexBuffer(dev *Device, name string, data []uint16) (*wgpu.Buffer, error) {
	return dev.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    name,
		Contents: wgpu.ToBytes(data),
		Usage:    wgpu.BufferUsageIndex,
	})
}

// NewUniformBuffer returns a device buffer initialized with the given
// uniform value, usable as a uniform binding and updatable with
// [SetValueFrom].
func NewUniformBuffer[E any](dev *Device, name string, value *E) (*wgpu.Buffer, error) {
	return dev.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    name,
		Contents: wgpu.ToBytes([]E{*value}),
		Usage:    wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
}

// SetValueFrom writes the given value into the buffer via the queue.
// The write is ordered before any subsequently submitted command
// buffers.
func SetValueFrom[E any](dev *Device, buf *wgpu.Buffer, value *E) {
	dev.Queue.WriteBuffer(buf, 0, wgpu.ToBytes([]E{*value}))
}
