// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package mesh describes the indexed triangle soup the render pipeline
// consumes. A Mesh is produced by a loader (see the load package),
// referenced by one or more scene objects, and never mutated during
// rendering.
package mesh

import "github.com/galvlogic/qpixel/math/lin"

// Type is a bitmask recording which optional per-vertex data a Mesh carries.
type Type uint32

// Mesh type bits. A mesh with neither bit set has positions only.
const (
	Texcoord Type = 1 << iota
	Normal
)

// Has reports whether every bit in want is set in t.
func (t Type) Has(want Type) bool { return t&want == want }

// Mesh is an indexed triangle mesh: three parallel, corner-major index
// lists of length 3*NumFaces select into the Vertices/Normals/Texcoords
// arrays. Indices are stored exactly as read from the source asset --
// 1-based, matching the Wavefront OBJ convention -- so callers must
// subtract 1 before indexing into the data slices.
type Mesh struct {
	Name string

	Vertices  []lin.V3 // object-space positions.
	Normals   []lin.V3 // optional; empty unless Kind.Has(Normal).
	Texcoords []lin.V2 // optional; empty unless Kind.Has(Texcoord).

	VertexIdx   []uint32 // length 3*NumFaces, 1-based.
	NormalIdx   []uint32 // length 3*NumFaces when present, 1-based.
	TexcoordIdx []uint32 // length 3*NumFaces when present, 1-based.

	NumFaces uint32
	Kind     Type
}

// New returns an empty mesh ready to be filled in by a loader.
func New(name string) *Mesh { return &Mesh{Name: name} }

// Corner returns the 0-based vertex, normal, and texcoord indices for
// face f's corner c (c is 0, 1, or 2). Normal and texcoord are -1 when
// the mesh does not carry that data.
func (m *Mesh) Corner(f, c uint32) (vertex int, normal int, texcoord int) {
	i := f*3 + c
	vertex = int(m.VertexIdx[i]) - 1
	normal, texcoord = -1, -1
	if m.Kind.Has(Normal) {
		normal = int(m.NormalIdx[i]) - 1
	}
	if m.Kind.Has(Texcoord) {
		texcoord = int(m.TexcoordIdx[i]) - 1
	}
	return vertex, normal, texcoord
}

// AABB is an axis-aligned bounding box described by its minimum and
// maximum corners.
type AABB struct {
	Min lin.V3
	Max lin.V3
}

// Bounds returns the axis-aligned bounding box of the mesh's positions.
// Bounds returns the zero AABB for an empty mesh.
func (m *Mesh) Bounds() AABB {
	if len(m.Vertices) == 0 {
		return AABB{}
	}
	box := AABB{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		box.Min.X, box.Max.X = minf(box.Min.X, v.X), maxf(box.Max.X, v.X)
		box.Min.Y, box.Max.Y = minf(box.Min.Y, v.Y), maxf(box.Max.Y, v.Y)
		box.Min.Z, box.Max.Z = minf(box.Min.Z, v.Z), maxf(box.Max.Z, v.Z)
	}
	return box
}

// Center returns the midpoint of the mesh's position AABB.
func (m *Mesh) Center() lin.V3 {
	box := m.Bounds()
	return lin.V3{
		X: 0.5 * (box.Min.X + box.Max.X),
		Y: 0.5 * (box.Min.Y + box.Max.Y),
		Z: 0.5 * (box.Min.Z + box.Max.Z),
	}
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
