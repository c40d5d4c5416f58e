// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

// This file has the interfaces implemented by the GPU backend
// (package gpu, on WebGPU). They mirror the WebGPU objects used
// for one frame, so that the surface and frame logic here can be
// driven by a recording backend in tests.

// TextureFormat is a backend texture format identifier.
// For the WebGPU backend it is a wgpu.TextureFormat value.
type TextureFormat uint32

// PresentModes are the presentation cadence policies.
type PresentModes int32

const (
	// PresentModeFifo waits for vertical blank: vsync-locked, never tears.
	PresentModeFifo PresentModes = iota

	// PresentModeImmediate presents as soon as possible, may tear.
	PresentModeImmediate

	// PresentModeMailbox replaces the pending frame at each present.
	PresentModeMailbox
)

// TextureUsages are the usages for the surface textures.
type TextureUsages uint32

const (
	// RenderAttachment usage: the texture is a render pass color target.
	RenderAttachment TextureUsages = 1 << 4
)

// Color is an RGBA color with float components in [0,1].
type Color struct {
	R, G, B, A float64
}

// Swapchain is the presentable surface bound to the window.
type Swapchain interface {
	// PreferredFormat returns the preferred texture format
	// of the surface for the adapter.
	PreferredFormat() TextureFormat

	// Configure applies the given configuration to the surface.
	Configure(cfg *SurfaceConfig) error

	// CurrentTexture returns the next presentable texture.
	// Failures are returned as an [*AcquireError].
	CurrentTexture() (Texture, error)
}

// Texture is an acquired presentable texture: the target of one frame.
type Texture interface {
	// Present shows the texture on the surface.
	Present()

	// Release releases the texture; it must be called after Present,
	// or instead of it if the frame is abandoned.
	Release()
}

// Pipeline is a compiled render pipeline.
type Pipeline interface {
	Name() string
}

// Buffer is a GPU buffer.
type Buffer interface {
	// Size returns the size in bytes.
	Size() uint64

	Release()
}

// CommandBuffer is a finished, submittable command buffer.
type CommandBuffer interface {
	Release()
}

// PassDescriptor describes a render pass on a texture that
// clears the texture to ClearColor first.
type PassDescriptor struct {
	Label      string
	Target     Texture
	ClearColor Color
}

// RenderPass records the commands of a render pass.
type RenderPass interface {
	SetPipeline(pl Pipeline)
	SetVertexBuffer(slot uint32, buf Buffer)
	Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32)

	// End ends the render pass. It must be called before Release.
	End() error
	Release()
}

// CommandEncoder records commands into a [CommandBuffer].
type CommandEncoder interface {
	BeginRenderPass(desc *PassDescriptor) RenderPass
	Finish() (CommandBuffer, error)
	Release()
}

// Device is the logical GPU device and its queue.
type Device interface {
	// NewVertexBuffer returns a new buffer initialized with the given
	// contents, with vertex and copy-destination usage.
	NewVertexBuffer(label string, contents []byte) (Buffer, error)

	NewCommandEncoder(label string) (CommandEncoder, error)

	// Submit submits the given command buffers to the queue.
	Submit(cmds ...CommandBuffer)
}
