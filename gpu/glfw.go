// Copyright (c) 2026, ZoomStack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

package gpu

import (
	"image"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// This file contains the glfw dependencies, for desktop platform
// builds. Other platforms need to provide their own window surface.

// Init initializes glfw for window and surface creation.
// Must be called on the main initial thread.
func Init() error {
	return glfw.Init()
}

// Terminate shuts down glfw. Call as the last thing before quitting.
// Must be called on the main initial thread.
func Terminate() {
	glfw.Terminate()
}

// NewGLFWWindow makes a new glfw window of the given size in window
// coordinates, with no client graphics API so WebGPU owns the surface,
// and creates a WebGPU surface for it. The returned size is the
// framebuffer size in device pixels, which on high-DPI displays is
// larger than the window size by the device pixel ratio. The surface
// must be configured at the framebuffer size.
func NewGLFWWindow(gp *GPU, size image.Point, title string) (*glfw.Window, *wgpu.Surface, image.Point, error) {
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(size.X, size.Y, title, nil, nil)
	if err != nil {
		return nil, nil, image.Point{}, err
	}
	surface := gp.Instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))
	fbw, fbh := window.GetFramebufferSize()
	return window, surface, image.Point{fbw, fbh}, nil
}
