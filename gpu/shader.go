// Copyright (c) 2026, ZoomStack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// Shader is a compiled WGSL shader module. A single module can hold
// both the vertex and fragment entry points.
type Shader struct {
	// Name is the unique name of the shader, used as the debug label.
	Name string

	// Module is the compiled shader module.
	Module *wgpu.ShaderModule

	device *Device
}

// NewShader returns a new Shader with the given name,
// to be compiled with [Shader.OpenCode].
func NewShader(name string, dev *Device) *Shader {
	return &Shader{Name: name, device: dev}
}

// OpenCode compiles the given WGSL source. A compilation failure is a
// fatal construction error carrying the compiler diagnostic: the
// caller must abort session setup.
func (sh *Shader) OpenCode(code string) error {
	module, err := sh.device.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          sh.Name,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: code},
	})
	if err != nil {
		return fmt.Errorf("gpu: shader %q failed to compile: %w", sh.Name, err)
	}
	sh.Module = module
	return nil
}

// Release releases the shader module.
func (sh *Shader) Release() {
	if sh.Module == nil {
		return
	}
	sh.Module.Release()
	sh.Module = nil
}
