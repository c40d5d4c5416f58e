// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "cogentcore.org/triangle/geom"

const (
	// VertexBufferLabel is the label of the per-frame vertex buffer.
	VertexBufferLabel = "Bullet Vertex Buffer"

	// EncoderLabel is the label of the per-frame command encoder.
	EncoderLabel = "command_encoder"
)

// ClearColor is the default color the frame is cleared to: a dark gray.
var ClearColor = Color{R: 0.03, G: 0.03, B: 0.03, A: 1}

// Renderer renders one frame at a time: it animates the geometry,
// uploads it to a new vertex buffer, acquires a texture from the
// Surface, records a render pass drawing the geometry, submits it
// and presents the texture.
//
// The only state kept between frames is the Animation: the vertex
// buffer and the animated geometry are created fresh for each frame,
// so a buffer is never written while a prior submission may read it.
type Renderer struct {
	// Device is the GPU device used for buffers and commands.
	Device Device

	// Surface is the render target.
	Surface *Surface

	// Pipeline is the render pipeline, built once.
	Pipeline Pipeline

	// Source has the base geometry.
	Source *geom.Source

	// Animation is the animation state, advanced once per frame.
	Animation *geom.Animation

	// ClearColor is the color the frame is cleared to.
	ClearColor Color
}

// NewRenderer returns a new Renderer with a new [geom.Animation]
// and the default [ClearColor].
func NewRenderer(dev Device, sf *Surface, pl Pipeline, src *geom.Source) *Renderer {
	return &Renderer{
		Device:     dev,
		Surface:    sf,
		Pipeline:   pl,
		Source:     src,
		Animation:  geom.NewAnimation(),
		ClearColor: ClearColor,
	}
}

// Angle returns the current animation angle.
func (rd *Renderer) Angle() float32 {
	return rd.Animation.Angle
}

// RenderFrame renders one frame. The animation always advances,
// even when the frame is skipped. An error wrapping [ErrFrameSkipped]
// means try again next iteration; a [FatalError] must end the loop.
func (rd *Renderer) RenderFrame() error {
	angle := rd.Animation.Advance()
	verts := rd.Source.Animate(angle)
	buf, err := rd.Device.NewVertexBuffer(VertexBufferLabel, geom.Bytes(verts))
	if err != nil {
		return Fatal(BufferStage, err)
	}
	defer buf.Release()

	tex, err := rd.Surface.AcquireNextTexture()
	if err != nil {
		return err
	}
	defer tex.Release()
	if err := rd.record(tex, buf, len(verts)); err != nil {
		return err
	}
	tex.Present()
	return nil
}

// record records the render pass for the frame into a new
// command encoder and submits it.
func (rd *Renderer) record(tex Texture, buf Buffer, n int) error {
	cmd, err := rd.Device.NewCommandEncoder(EncoderLabel)
	if err != nil {
		return Fatal(RecordStage, err)
	}
	defer cmd.Release()

	rp := cmd.BeginRenderPass(&PassDescriptor{Target: tex, ClearColor: rd.ClearColor})
	rp.SetPipeline(rd.Pipeline)
	rp.SetVertexBuffer(0, buf)
	rp.Draw(uint32(n), 1, 0, 0)
	err = rp.End()
	rp.Release() // must happen before Finish
	if err != nil {
		return Fatal(RecordStage, err)
	}
	cb, err := cmd.Finish()
	if err != nil {
		return Fatal(RecordStage, err)
	}
	rd.Device.Submit(cb)
	cb.Release()
	return nil
}
