// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/triangle/render"
	"github.com/cogentcore/webgpu/wgpu"
)

// Device is the [render.Device] of a [GPU]: it makes the per-frame
// vertex buffers and command encoders, and submits to the queue.
type Device struct {
	GPU *GPU
}

// NewDevice returns a new Device for the given GPU.
func NewDevice(gp *GPU) *Device {
	return &Device{GPU: gp}
}

func (dv *Device) NewVertexBuffer(label string, contents []byte) (render.Buffer, error) {
	buf, err := dv.GPU.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    label,
		Contents: contents,
		Usage:    wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if errors.Log(err) != nil {
		return nil, err
	}
	return &Buffer{Buffer: buf, size: uint64(len(contents))}, nil
}

func (dv *Device) NewCommandEncoder(label string) (render.CommandEncoder, error) {
	cmd, err := dv.GPU.Device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: label,
	})
	if errors.Log(err) != nil {
		return nil, err
	}
	return &CommandEncoder{Encoder: cmd}, nil
}

func (dv *Device) Submit(cmds ...render.CommandBuffer) {
	wcs := make([]*wgpu.CommandBuffer, 0, len(cmds))
	for _, c := range cmds {
		wcs = append(wcs, c.(*CommandBuffer).Buffer)
	}
	dv.GPU.Queue.Submit(wcs...)
}

// Buffer is a WebGPU buffer.
type Buffer struct {
	Buffer *wgpu.Buffer
	size   uint64
}

func (bf *Buffer) Size() uint64 { return bf.size }

func (bf *Buffer) Release() {
	if bf.Buffer == nil {
		return
	}
	bf.Buffer.Release()
	bf.Buffer = nil
}

// CommandEncoder records the commands for one frame.
type CommandEncoder struct {
	Encoder *wgpu.CommandEncoder
}

// BeginRenderPass begins a render pass with one color attachment,
// the view of the target texture, which is cleared to the clear color
// and stored at the end of the pass.
func (ce *CommandEncoder) BeginRenderPass(desc *render.PassDescriptor) render.RenderPass {
	tex := desc.Target.(*Texture)
	cc := desc.ClearColor
	rp := ce.Encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: desc.Label,
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       tex.View,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: wgpu.Color{R: cc.R, G: cc.G, B: cc.B, A: cc.A},
		}},
	})
	return &RenderPass{Pass: rp}
}

func (ce *CommandEncoder) Finish() (render.CommandBuffer, error) {
	cb, err := ce.Encoder.Finish(nil)
	if errors.Log(err) != nil {
		return nil, err
	}
	return &CommandBuffer{Buffer: cb}, nil
}

func (ce *CommandEncoder) Release() {
	if ce.Encoder == nil {
		return
	}
	ce.Encoder.Release()
	ce.Encoder = nil
}

// CommandBuffer is a finished command buffer.
type CommandBuffer struct {
	Buffer *wgpu.CommandBuffer
}

func (cb *CommandBuffer) Release() {
	if cb.Buffer == nil {
		return
	}
	cb.Buffer.Release()
	cb.Buffer = nil
}

// RenderPass records the commands of a render pass.
type RenderPass struct {
	Pass *wgpu.RenderPassEncoder
}

func (rp *RenderPass) SetPipeline(pl render.Pipeline) {
	rp.Pass.SetPipeline(pl.(*GraphicsPipeline).Pipeline)
}

func (rp *RenderPass) SetVertexBuffer(slot uint32, buf render.Buffer) {
	rp.Pass.SetVertexBuffer(slot, buf.(*Buffer).Buffer, 0, wgpu.WholeSize)
}

func (rp *RenderPass) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	rp.Pass.Draw(vertexCount, instanceCount, firstVertex, firstInstance)
}

func (rp *RenderPass) End() error {
	return errors.Log(rp.Pass.End())
}

func (rp *RenderPass) Release() {
	if rp.Pass == nil {
		return
	}
	rp.Pass.Release()
	rp.Pass = nil
}
