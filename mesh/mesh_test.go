// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/galvlogic/qpixel/math/lin"
)

func cube() *Mesh {
	m := New("cube")
	m.Vertices = []lin.V3{
		{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1},
		{X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1},
		{X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
	}
	m.Normals = []lin.V3{{Z: -1}, {Z: 1}}
	m.Texcoords = []lin.V2{{X: 0, Y: 0}, {X: 1, Y: 1}}
	m.Kind = Normal | Texcoord
	// two triangles of the front face, reusing one normal/texcoord pair.
	m.VertexIdx = []uint32{1, 2, 3, 1, 3, 4}
	m.NormalIdx = []uint32{1, 1, 1, 1, 1, 1}
	m.TexcoordIdx = []uint32{1, 2, 1, 1, 1, 2}
	m.NumFaces = 2
	return m
}

func TestCornerIsZeroBased(t *testing.T) {
	m := cube()
	v, n, tc := m.Corner(0, 0)
	assert.Equal(t, 0, v)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, tc)
}

func TestCornerWithoutOptionalData(t *testing.T) {
	m := cube()
	m.Kind = 0
	_, n, tc := m.Corner(1, 2)
	assert.Equal(t, -1, n)
	assert.Equal(t, -1, tc)
}

func TestBoundsAndCenter(t *testing.T) {
	m := cube()
	box := m.Bounds()
	assert.Equal(t, lin.V3{X: -1, Y: -1, Z: -1}, box.Min)
	assert.Equal(t, lin.V3{X: 1, Y: 1, Z: 1}, box.Max)
	assert.Equal(t, lin.V3{}, m.Center())
}

func TestBoundsOfEmptyMesh(t *testing.T) {
	m := New("empty")
	assert.Equal(t, AABB{}, m.Bounds())
}

func TestTypeHas(t *testing.T) {
	kind := Normal | Texcoord
	assert.True(t, kind.Has(Normal))
	assert.True(t, kind.Has(Texcoord))
	assert.False(t, (Normal).Has(Texcoord))
}
