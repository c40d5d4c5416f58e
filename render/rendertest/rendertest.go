// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rendertest provides a recording implementation of the
// render backend interfaces, for testing without a GPU.
package rendertest

import (
	"errors"

	"cogentcore.org/triangle/render"
)

// Format is the preferred format reported by [Swapchain].
const Format render.TextureFormat = 24

// Swapchain records configurations and returns acquisition
// results from a scripted list of statuses.
type Swapchain struct {
	// Configs has every configuration applied, in order.
	Configs []render.SurfaceConfig

	// Statuses are returned by successive CurrentTexture calls;
	// once used up, every call succeeds.
	Statuses []render.AcquireStatus

	// ConfigureErr is returned by Configure if set.
	ConfigureErr error

	// Acquires is the number of CurrentTexture calls.
	Acquires int

	// Presents is the number of textures presented.
	Presents int

	// Textures are all the textures returned.
	Textures []*Texture
}

// NewSwapchain returns a new Swapchain that fails acquisitions
// with the given statuses before succeeding.
func NewSwapchain(statuses ...render.AcquireStatus) *Swapchain {
	return &Swapchain{Statuses: statuses}
}

func (sc *Swapchain) PreferredFormat() render.TextureFormat { return Format }

func (sc *Swapchain) Configure(cfg *render.SurfaceConfig) error {
	if sc.ConfigureErr != nil {
		return sc.ConfigureErr
	}
	sc.Configs = append(sc.Configs, *cfg)
	return nil
}

// LastConfig returns the last configuration applied.
func (sc *Swapchain) LastConfig() render.SurfaceConfig {
	if len(sc.Configs) == 0 {
		return render.SurfaceConfig{}
	}
	return sc.Configs[len(sc.Configs)-1]
}

func (sc *Swapchain) CurrentTexture() (render.Texture, error) {
	sc.Acquires++
	if len(sc.Statuses) > 0 {
		st := sc.Statuses[0]
		sc.Statuses = sc.Statuses[1:]
		if st != render.AcquireSuccess {
			return nil, render.NewAcquireError(st, errors.New("rendertest: scripted failure"))
		}
	}
	tex := &Texture{swapchain: sc, Config: sc.LastConfig()}
	sc.Textures = append(sc.Textures, tex)
	return tex, nil
}

// Texture is a presentable texture from [Swapchain].
type Texture struct {
	swapchain *Swapchain

	// Config is the swapchain configuration when it was acquired.
	Config render.SurfaceConfig

	Presented bool
	Released  bool
}

func (tx *Texture) Present() {
	tx.Presented = true
	tx.swapchain.Presents++
}

func (tx *Texture) Release() { tx.Released = true }

// Pipeline is a named pipeline.
type Pipeline struct {
	Label string
}

func (pl *Pipeline) Name() string { return pl.Label }

// Buffer is a recorded buffer.
type Buffer struct {
	Label    string
	Data     []byte
	Released bool
}

func (bf *Buffer) Size() uint64 { return uint64(len(bf.Data)) }

func (bf *Buffer) Release() { bf.Released = true }

// Draw is a recorded draw call.
type Draw struct {
	VertexCount, InstanceCount, FirstVertex, FirstInstance uint32
}

// Pass is a recorded render pass.
type Pass struct {
	Desc          render.PassDescriptor
	Pipeline      render.Pipeline
	VertexBuffers map[uint32]render.Buffer
	Draws         []Draw
	Ended         bool
	Released      bool

	endErr error
}

func (ps *Pass) SetPipeline(pl render.Pipeline) { ps.Pipeline = pl }

func (ps *Pass) SetVertexBuffer(slot uint32, buf render.Buffer) {
	ps.VertexBuffers[slot] = buf
}

func (ps *Pass) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	ps.Draws = append(ps.Draws, Draw{vertexCount, instanceCount, firstVertex, firstInstance})
}

func (ps *Pass) End() error {
	ps.Ended = true
	return ps.endErr
}

func (ps *Pass) Release() { ps.Released = true }

// Encoder is a recorded command encoder.
type Encoder struct {
	device *Device

	Label    string
	Passes   []*Pass
	Finished bool
	Released bool
}

func (en *Encoder) BeginRenderPass(desc *render.PassDescriptor) render.RenderPass {
	ps := &Pass{Desc: *desc, VertexBuffers: map[uint32]render.Buffer{}, endErr: en.device.EndErr}
	en.Passes = append(en.Passes, ps)
	return ps
}

func (en *Encoder) Finish() (render.CommandBuffer, error) {
	en.Finished = true
	return &CommandBuffer{Encoder: en}, nil
}

func (en *Encoder) Release() { en.Released = true }

// CommandBuffer is a finished [Encoder].
type CommandBuffer struct {
	Encoder  *Encoder
	Released bool
}

func (cb *CommandBuffer) Release() { cb.Released = true }

// Device records buffers, encoders and submissions.
type Device struct {
	Buffers   []*Buffer
	Encoders  []*Encoder
	Submitted []*CommandBuffer

	// BufferErr is returned by NewVertexBuffer if set.
	BufferErr error

	// EndErr is returned by the End of every render pass if set.
	EndErr error
}

func (dv *Device) NewVertexBuffer(label string, contents []byte) (render.Buffer, error) {
	if dv.BufferErr != nil {
		return nil, dv.BufferErr
	}
	bf := &Buffer{Label: label, Data: append([]byte(nil), contents...)}
	dv.Buffers = append(dv.Buffers, bf)
	return bf, nil
}

func (dv *Device) NewCommandEncoder(label string) (render.CommandEncoder, error) {
	en := &Encoder{device: dv, Label: label}
	dv.Encoders = append(dv.Encoders, en)
	return en, nil
}

func (dv *Device) Submit(cmds ...render.CommandBuffer) {
	for _, c := range cmds {
		dv.Submitted = append(dv.Submitted, c.(*CommandBuffer))
	}
}

// LastPass returns the last recorded render pass, or nil.
func (dv *Device) LastPass() *Pass {
	for i := len(dv.Encoders) - 1; i >= 0; i-- {
		ps := dv.Encoders[i].Passes
		if len(ps) > 0 {
			return ps[len(ps)-1]
		}
	}
	return nil
}
