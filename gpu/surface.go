// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/triangle/render"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// NewWindowSurface returns a new WebGPU surface for the given glfw
// window, which must have been created with no client API.
func NewWindowSurface(window *glfw.Window) *wgpu.Surface {
	return Instance().CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))
}

// Surface is the [render.Swapchain] of a window on a [GPU].
type Surface struct {
	// GPU is the graphics context the surface is configured for.
	GPU *GPU

	// Surface is the WebGPU surface of the window.
	Surface *wgpu.Surface

	// Caps are the capabilities of the surface on the GPU adapter.
	Caps wgpu.SurfaceCapabilities
}

// NewSurface returns a new Surface for the given WebGPU surface,
// reading its capabilities on the GPU adapter.
func NewSurface(gp *GPU, ws *wgpu.Surface) *Surface {
	sf := &Surface{GPU: gp, Surface: ws}
	sf.Caps = ws.GetCapabilities(gp.Adapter)
	return sf
}

// PreferredFormat returns the first format the surface supports,
// which is the preferred one for the adapter.
func (sf *Surface) PreferredFormat() render.TextureFormat {
	if len(sf.Caps.Formats) == 0 {
		return render.TextureFormat(wgpu.TextureFormatBGRA8UnormSrgb)
	}
	return render.TextureFormat(sf.Caps.Formats[0])
}

// Format returns the preferred format as a WebGPU texture format.
func (sf *Surface) Format() wgpu.TextureFormat {
	return wgpu.TextureFormat(sf.PreferredFormat())
}

func (sf *Surface) Configure(cfg *render.SurfaceConfig) error {
	if cfg.Width == 0 || cfg.Height == 0 {
		return errors.New("gpu.Surface: cannot configure a zero-area surface")
	}
	alpha := wgpu.CompositeAlphaModeAuto
	if len(sf.Caps.AlphaModes) > 0 {
		alpha = sf.Caps.AlphaModes[0]
	}
	sf.Surface.Configure(sf.GPU.Adapter, sf.GPU.Device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsage(cfg.Usage),
		Format:      wgpu.TextureFormat(cfg.Format),
		Width:       cfg.Width,
		Height:      cfg.Height,
		PresentMode: presentModes[cfg.PresentMode],
		AlphaMode:   alpha,
	})
	return nil
}

var presentModes = map[render.PresentModes]wgpu.PresentMode{
	render.PresentModeFifo:      wgpu.PresentModeFifo,
	render.PresentModeImmediate: wgpu.PresentModeImmediate,
	render.PresentModeMailbox:   wgpu.PresentModeMailbox,
}

// CurrentTexture acquires the next surface texture and creates its view.
// The binding does not return the acquisition status of the texture,
// so a failure is classified from the error text. Creating a view of
// the null texture returned for a stale surface fails, and is
// classified the same way.
func (sf *Surface) CurrentTexture() (render.Texture, error) {
	tex, err := sf.Surface.GetCurrentTexture()
	if err != nil {
		return nil, render.NewAcquireError(ClassifyAcquireError(err), err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		return nil, render.NewAcquireError(ClassifyAcquireError(err), err)
	}
	return &Texture{surface: sf, Texture: tex, View: view}, nil
}

// acquireStatuses maps the WebGPU acquisition statuses that can be
// named in an error to their [render.AcquireStatus], most severe first.
var acquireStatuses = []struct {
	wgpu   wgpu.SurfaceGetCurrentTextureStatus
	status render.AcquireStatus
}{
	{wgpu.SurfaceGetCurrentTextureStatusOutOfMemory, render.AcquireOutOfMemory},
	{wgpu.SurfaceGetCurrentTextureStatusDeviceLost, render.AcquireDeviceLost},
	{wgpu.SurfaceGetCurrentTextureStatusTimeout, render.AcquireTimeout},
	{wgpu.SurfaceGetCurrentTextureStatusOutdated, render.AcquireOutdated},
}

// statusSpelling removes the separators between words, so that
// "out-of-memory", "OutOfMemory" and "out of memory" all match.
var statusSpelling = strings.NewReplacer(" ", "", "-", "", "_", "")

// ClassifyAcquireError returns the acquisition status named in an error
// from getting the current surface texture, matched against the WebGPU
// status names. Errors naming no known status are treated as a lost surface.
func ClassifyAcquireError(err error) render.AcquireStatus {
	if err == nil {
		return render.AcquireSuccess
	}
	msg := statusSpelling.Replace(strings.ToLower(err.Error()))
	for _, as := range acquireStatuses {
		if strings.Contains(msg, statusSpelling.Replace(as.wgpu.String())) {
			return as.status
		}
	}
	return render.AcquireLost
}

// Release releases the WebGPU surface.
func (sf *Surface) Release() {
	if sf.Surface == nil {
		return
	}
	sf.Surface.Release()
	sf.Surface = nil
}

// Texture is an acquired surface texture and its view.
type Texture struct {
	surface *Surface

	Texture *wgpu.Texture
	View    *wgpu.TextureView
}

func (tx *Texture) Present() {
	tx.surface.Surface.Present()
}

// Release releases the view. The surface texture itself is owned
// by the surface and must not be released.
func (tx *Texture) Release() {
	if tx.View != nil {
		tx.View.Release()
		tx.View = nil
	}
	tx.Texture = nil
}
