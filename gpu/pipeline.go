// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/triangle/geom"
	"cogentcore.org/triangle/render"
	"github.com/cogentcore/webgpu/wgpu"
)

const (
	// VertexEntry is the vertex shader entry point.
	VertexEntry = "vs_main"

	// FragmentEntry is the fragment shader entry point.
	FragmentEntry = "fs_main"

	// ShaderLabel is the label of the shader module.
	ShaderLabel = "shader"

	// LayoutLabel is the label of the pipeline layout.
	LayoutLabel = "Render Pipeline Layout"
)

// GraphicsPipeline is the render pipeline drawing the vertex list:
// the shader module, a layout with no bind groups, and the compiled
// pipeline. It is built once at startup and is immutable afterwards.
type GraphicsPipeline struct {
	// Label of the pipeline.
	Label string

	// Format of the color target, which is the surface format.
	Format wgpu.TextureFormat

	// Primitive has the primitive assembly and culling settings.
	Primitive wgpu.PrimitiveState

	// Multisample has the multisampling settings.
	Multisample wgpu.MultisampleState

	module *wgpu.ShaderModule

	layout *wgpu.PipelineLayout

	// Pipeline is the compiled pipeline.
	Pipeline *wgpu.RenderPipeline
}

// NewGraphicsPipeline compiles the given WGSL shader source, which must
// have [VertexEntry] and [FragmentEntry] entry points, and builds a
// pipeline drawing [geom.Vertex] lists as triangles to a color target
// of the given format. Shader errors are a [render.FatalError] at
// [render.ShaderStage], other errors at [render.PipelineStage].
func NewGraphicsPipeline(gp *GPU, label, src string, format wgpu.TextureFormat) (*GraphicsPipeline, error) {
	pl := &GraphicsPipeline{Label: label, Format: format}
	pl.SetGraphicsDefaults()

	mod, err := gp.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          ShaderLabel,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: src},
	})
	if errors.Log(err) != nil {
		return nil, render.Fatal(render.ShaderStage, err)
	}
	pl.module = mod

	pl.layout, err = gp.Device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label: LayoutLabel,
	})
	if errors.Log(err) != nil {
		pl.Release()
		return nil, render.Fatal(render.PipelineStage, err)
	}

	pl.Pipeline, err = gp.Device.CreateRenderPipeline(pl.Descriptor())
	if err != nil {
		slog.Error("gpu.GraphicsPipeline: " + err.Error())
		pl.Release()
		return nil, render.Fatal(render.PipelineStage, err)
	}
	return pl, nil
}

// SetGraphicsDefaults sets the primitive and multisample settings:
// triangle lists with counter-clockwise front faces, back faces culled,
// and no multisampling.
func (pl *GraphicsPipeline) SetGraphicsDefaults() *GraphicsPipeline {
	pl.Primitive = wgpu.PrimitiveState{
		Topology:  wgpu.PrimitiveTopologyTriangleList,
		FrontFace: wgpu.FrontFaceCCW,
		CullMode:  wgpu.CullModeBack,
	}
	pl.Multisample = wgpu.MultisampleState{
		Count:                  1,
		Mask:                   0xFFFFFFFF,
		AlphaToCoverageEnabled: false,
	}
	return pl
}

// Descriptor returns the descriptor of the render pipeline.
// Color output replaces the target contents, with no blending.
func (pl *GraphicsPipeline) Descriptor() *wgpu.RenderPipelineDescriptor {
	return &wgpu.RenderPipelineDescriptor{
		Label:  pl.Label,
		Layout: pl.layout,
		Vertex: wgpu.VertexState{
			Module:     pl.module,
			EntryPoint: VertexEntry,
			Buffers:    VertexLayout(),
		},
		Primitive:   pl.Primitive,
		Multisample: pl.Multisample,
		Fragment: &wgpu.FragmentState{
			Module:     pl.module,
			EntryPoint: FragmentEntry,
			Targets: []wgpu.ColorTargetState{{
				Format:    pl.Format,
				Blend:     &wgpu.BlendStateReplace,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
	}
}

// VertexLayout returns the layout of the vertex buffer: one
// per-vertex buffer of [geom.Vertex], with the position at shader
// location 0 and the color at shader location 1.
func VertexLayout() []wgpu.VertexBufferLayout {
	return []wgpu.VertexBufferLayout{{
		ArrayStride: geom.VertexSize,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: geom.PosOffset, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x3, Offset: geom.ColorOffset, ShaderLocation: 1},
		},
	}}
}

func (pl *GraphicsPipeline) Name() string { return pl.Label }

func (pl *GraphicsPipeline) Release() {
	if pl.Pipeline != nil {
		pl.Pipeline.Release()
		pl.Pipeline = nil
	}
	if pl.layout != nil {
		pl.layout.Release()
		pl.layout = nil
	}
	if pl.module != nil {
		pl.module.Release()
		pl.module = nil
	}
}
