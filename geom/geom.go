// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the vertex data for the triangle,
// and the per-frame animation of that data.
package geom

import (
	"encoding/binary"
	"math"

	"cogentcore.org/core/math32"
)

const (
	// VertexSize is the number of bytes for one packed [Vertex]:
	// 3 float32 position followed by 3 float32 color, no padding.
	VertexSize = 24

	// PosOffset is the byte offset of the position attribute.
	PosOffset = 0

	// ColorOffset is the byte offset of the color attribute.
	ColorOffset = 12
)

// Vertex is one vertex of the triangle. The byte layout produced
// by [Bytes] must match the vertex layout of the render pipeline,
// which is built once and never renegotiated.
type Vertex struct {
	// Pos is the position in clip space.
	Pos math32.Vector3

	// Color is the linear RGB color.
	Color math32.Vector3
}

// Triangle returns the base (undeformed) triangle:
// red at the top, green bottom-left, blue bottom-right.
func Triangle() []Vertex {
	return []Vertex{
		{Pos: math32.Vec3(0, 0.5, 0), Color: math32.Vec3(1, 0, 0)},
		{Pos: math32.Vec3(-0.5, -0.5, 0), Color: math32.Vec3(0, 1, 0)},
		{Pos: math32.Vec3(0.5, -0.5, 0), Color: math32.Vec3(0, 0, 1)},
	}
}

// Source owns the immutable base geometry and produces
// animated copies of it.
type Source struct {
	base []Vertex
}

// NewSource returns a new Source holding a copy of the given base geometry.
func NewSource(base []Vertex) *Source {
	return &Source{base: append([]Vertex(nil), base...)}
}

// Base returns a copy of the base geometry.
func (src *Source) Base() []Vertex {
	return append([]Vertex(nil), src.base...)
}

// Len returns the number of vertices.
func (src *Source) Len() int {
	return len(src.base)
}

// Animate returns the base geometry animated for the given angle.
// See [Animate].
func (src *Source) Animate(angle float32) []Vertex {
	return Animate(src.base, angle)
}

// Animate returns a new slice with each base vertex position rotated
// about the Z (view normal) axis by sin(angle) radians, so the triangle
// oscillates back and forth rather than spinning. Colors are copied unchanged.
func Animate(base []Vertex, angle float32) []Vertex {
	q := math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), math32.Sin(angle))
	verts := make([]Vertex, len(base))
	for i, v := range base {
		verts[i] = Vertex{Pos: v.Pos.MulQuat(q), Color: v.Color}
	}
	return verts
}

// Bytes returns the packed little-endian bytes for the given vertices,
// [VertexSize] bytes per vertex, suitable for a vertex buffer.
func Bytes(verts []Vertex) []byte {
	b := make([]byte, 0, len(verts)*VertexSize)
	for _, v := range verts {
		b = appendVector3(b, v.Pos)
		b = appendVector3(b, v.Color)
	}
	return b
}

func appendVector3(b []byte, v math32.Vector3) []byte {
	b = binary.LittleEndian.AppendUint32(b, math.Float32bits(v.X))
	b = binary.LittleEndian.AppendUint32(b, math.Float32bits(v.Y))
	return binary.LittleEndian.AppendUint32(b, math.Float32bits(v.Z))
}
