// Copyright (c) 2026, ZoomStack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// Device is a logical GPU device and its command queue.
type Device struct {
	// Device is the logical WebGPU device.
	Device *wgpu.Device

	// Queue is the command queue for this device.
	Queue *wgpu.Queue
}

// NewDevice returns a new logical device from the GPU adapter.
func NewDevice(gp *GPU) (*Device, error) {
	dev, err := gp.Adapter.RequestDevice(nil)
	if err != nil {
		return nil, err
	}
	return &Device{Device: dev, Queue: dev.GetQueue()}, nil
}

// WaitDone blocks until the device is done with all submitted work.
func (dv *Device) WaitDone() {
	if dv.Device != nil {
		dv.Device.Poll(true, nil)
	}
}

// Release waits for pending work and releases the device.
func (dv *Device) Release() {
	if dv.Device == nil {
		return
	}
	dv.WaitDone()
	dv.Device.Release()
	dv.Device = nil
	dv.Queue = nil
}
