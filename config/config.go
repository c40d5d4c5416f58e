// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration struct for spintri.
package config

import (
	"image"

	"cogentcore.org/core/base/errors"
	"github.com/pelletier/go-toml/v2"
)

// ConfigFile is the default config file, read if present.
const ConfigFile = "config.toml"

// Config is the configuration for spintri, set from `default:` tags,
// the config file, and command line flags, in that order.
type Config struct {

	// the title of the window
	Title string `default:"Window"`

	// the initial width of the window, in screen coordinates
	Width int `default:"1600"`

	// the initial height of the window, in screen coordinates
	Height int `default:"900"`

	// whether to start fullscreen on the primary monitor;
	// F11 toggles fullscreen at any time
	Fullscreen bool

	// a WGSL shader file to use instead of the embedded triangle shader;
	// it must have vs_main and fs_main entry points
	Shader string

	// whether to prefer a low-power adapter over a high-performance one
	LowPower bool

	// whether to log debug messages, including every pointer movement
	Debug bool
}

// Size returns the initial window size.
func (cfg *Config) Size() image.Point {
	return image.Pt(cfg.Width, cfg.Height)
}

// TOML returns the configuration in the TOML format of [ConfigFile].
func (cfg *Config) TOML() (string, error) {
	b, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Log(err)
	}
	return string(b), nil
}
