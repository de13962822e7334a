// Copyright (c) 2026, ZoomStack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the TOML viewer configuration: the window, the image set,
// and the zoom-bound mode. The sources list is ordered deepest first.
type Config struct {
	// Title is the window title.
	Title string `toml:"title"`

	// Width and Height are the initial window size in window
	// coordinates (the framebuffer may be larger on high-DPI
	// displays).
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// SceneWidth and SceneHeight are the nominal pixel size of the
	// layer images, for aspect correction. Zero means use the
	// framebuffer size.
	SceneWidth  int `toml:"scene-width"`
	SceneHeight int `toml:"scene-height"`

	// Handheld selects rotation-invariant zoom bounds.
	Handheld bool `toml:"handheld"`

	// Enabled sets whether input affects the zoom at startup.
	Enabled bool `toml:"enabled"`

	// Sources are the layer image sources, deepest first.
	Sources []string `toml:"sources"`
}

// Defaults sets default values prior to loading.
func (cf *Config) Defaults() {
	cf.Title = "ZoomStack"
	cf.Width = 1024
	cf.Height = 768
	cf.Enabled = true
}

// WindowSize returns the configured window size.
func (cf *Config) WindowSize() image.Point {
	return image.Point{cf.Width, cf.Height}
}

// SceneSize returns the configured scene size, which may be zero.
func (cf *Config) SceneSize() image.Point {
	return image.Point{cf.SceneWidth, cf.SceneHeight}
}

// OpenConfig loads the TOML config at the given path over defaults.
func OpenConfig(path string) (*Config, error) {
	cf := &Config{}
	cf.Defaults()
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(b, cf); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	if cf.Width <= 0 || cf.Height <= 0 {
		return nil, fmt.Errorf("config %q: window size must be positive", path)
	}
	return cf, nil
}
