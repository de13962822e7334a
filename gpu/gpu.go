// Copyright (c) 2026, ZoomStack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu provides a thin WebGPU layer for the zoom compositor:
// device and surface setup, shader compilation, render pipeline
// construction, and buffer and texture management, over
// github.com/cogentcore/webgpu.
package gpu

import (
	"errors"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
)

// Debug enables additional logging of GPU setup and rendering.
var Debug = false

// ErrNoAdapter is returned when no suitable GPU adapter is available,
// meaning rendering is unavailable on this system.
var ErrNoAdapter = errors.New("gpu: no suitable GPU adapter found")

// GPU represents the physical GPU hardware.
// One GPU is shared across the rendering sessions of a process.
type GPU struct {
	// Instance is the WebGPU instance, created once.
	Instance *wgpu.Instance

	// Adapter is the physical GPU adapter, selected for compatibility
	// with the first surface.
	Adapter *wgpu.Adapter
}

// NewGPU returns a new GPU with a WebGPU instance.
// The adapter is selected when the first surface is created.
func NewGPU() *GPU {
	gp := &GPU{}
	gp.Instance = wgpu.CreateInstance(nil)
	return gp
}

// init selects the adapter, compatible with the given surface.
// It is a no-op if an adapter has already been selected.
func (gp *GPU) init(surface *wgpu.Surface) error {
	if gp.Adapter != nil {
		return nil
	}
	ad, err := gp.Instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil || ad == nil {
		return ErrNoAdapter
	}
	gp.Adapter = ad
	if Debug {
		slog.Info("gpu: adapter selected")
	}
	return nil
}

// Release releases the adapter and instance.
func (gp *GPU) Release() {
	if gp.Adapter != nil {
		gp.Adapter.Release()
		gp.Adapter = nil
	}
	if gp.Instance != nil {
		gp.Instance.Release()
		gp.Instance = nil
	}
}
