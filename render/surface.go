// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image"
	"log/slog"
)

// SurfaceConfig is the configuration of the presentable surface.
// Width and Height must always equal the drawable size of the window.
type SurfaceConfig struct {
	Usage       TextureUsages
	Format      TextureFormat
	Width       uint32
	Height      uint32
	PresentMode PresentModes
}

// Size returns the configured size as an image.Point.
func (sc SurfaceConfig) Size() image.Point {
	return image.Pt(int(sc.Width), int(sc.Height))
}

// Surface manages the configuration of a [Swapchain] across
// window resizes and fullscreen transitions, and the acquisition
// of presentable textures with recovery from stale configurations.
//
// The configuration is the one piece of mutable state shared with
// rendering, so it must only be changed between frames.
type Surface struct {
	swapchain Swapchain

	// current configuration
	config SurfaceConfig

	// last drawable size set, which may be zero when minimized
	size image.Point

	// whether config has been applied to the swapchain
	configured bool
}

// NewSurface returns a new Surface for the given swapchain,
// configured for the given initial drawable size, with render
// attachment usage, the preferred format, and FIFO (vsync) present mode.
// A zero-area size defers configuration until the first non-zero [Surface.SetSize].
func NewSurface(sc Swapchain, size image.Point) (*Surface, error) {
	sf := &Surface{swapchain: sc, size: size}
	sf.config = SurfaceConfig{
		Usage:       RenderAttachment,
		Format:      sc.PreferredFormat(),
		PresentMode: PresentModeFifo,
	}
	if err := sf.Reconfigure(); err != nil {
		return nil, err
	}
	return sf, nil
}

// Config returns the current configuration.
func (sf *Surface) Config() SurfaceConfig {
	return sf.config
}

// Size returns the last drawable size set.
func (sf *Surface) Size() image.Point {
	return sf.size
}

// Renderable returns whether frames can be acquired: the surface
// has been configured and the drawable size is not zero.
func (sf *Surface) Renderable() bool {
	return sf.configured && sf.size.X > 0 && sf.size.Y > 0
}

// SetSize sets the drawable size after a window resize or fullscreen
// transition, and reconfigures the surface to match it.
// A zero-area size (minimized window) keeps the previous configuration
// and disables rendering until a non-zero size is set.
// Returns whether the surface was reconfigured.
func (sf *Surface) SetSize(size image.Point) (bool, error) {
	sf.size = size
	if size.X <= 0 || size.Y <= 0 {
		slog.Debug("render.Surface: zero-area drawable, rendering paused", "size", size)
		return false, nil
	}
	if err := sf.Reconfigure(); err != nil {
		return false, err
	}
	return true, nil
}

// Reconfigure applies the configuration to the swapchain
// using the last drawable size set. It does nothing for a zero-area size.
func (sf *Surface) Reconfigure() error {
	if sf.size.X <= 0 || sf.size.Y <= 0 {
		return nil
	}
	sf.config.Width = uint32(sf.size.X)
	sf.config.Height = uint32(sf.size.Y)
	if err := sf.swapchain.Configure(&sf.config); err != nil {
		return Fatal(SurfaceStage, err)
	}
	sf.configured = true
	slog.Debug("render.Surface: configured", "width", sf.config.Width, "height", sf.config.Height)
	return nil
}

// AcquireNextTexture returns the next presentable texture.
// Failures are handled by kind:
//   - Timeout: returns an error wrapping [ErrFrameSkipped];
//     nothing changes and the next loop iteration tries again.
//   - Outdated, Lost: reconfigures at the last drawable size and
//     retries once; a second stale failure is fatal.
//   - OutOfMemory, DeviceLost: returns a [FatalError].
func (sf *Surface) AcquireNextTexture() (Texture, error) {
	if !sf.Renderable() {
		return nil, ErrFrameSkipped
	}
	tex, err := sf.swapchain.CurrentTexture()
	if err == nil {
		return tex, nil
	}
	status := AcquireStatusOf(err)
	switch status.Kind() {
	case Transient:
		slog.Debug("render.Surface: skipping frame", "status", status)
		return nil, fmt.Errorf("%w: %w", ErrFrameSkipped, err)
	case Unrecoverable:
		return nil, Fatal(AcquireStage, err)
	}
	slog.Info("render.Surface: reconfiguring stale surface", "status", status, "width", sf.size.X, "height", sf.size.Y)
	if err := sf.Reconfigure(); err != nil {
		return nil, err
	}
	tex, err = sf.swapchain.CurrentTexture()
	if err == nil {
		return tex, nil
	}
	if AcquireStatusOf(err).Kind() == Transient {
		return nil, fmt.Errorf("%w: %w", ErrFrameSkipped, err)
	}
	return nil, Fatal(AcquireStage, err)
}
