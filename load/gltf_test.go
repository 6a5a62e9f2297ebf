// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package load

import (
	"encoding/binary"
	"math"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galvlogic/qpixel/mesh"
)

// triangleGLTF builds a minimal single-triangle glTF document: three
// positions, three identical (0, 0, 1) normals, and a 3-element
// uint16 index buffer. It round-trips through the gltf package's own
// encoder so the fixture is guaranteed to have the byte layout the real
// library produces, not a hand-computed one.
func triangleGLTF(t *testing.T) *gltf.Document {
	t.Helper()
	putFloat32 := func(buf []byte, off int, f float32) {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(f))
	}

	posBuf := make([]byte, 3*3*4)
	positions := [3][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	for i, p := range positions {
		for j, c := range p {
			putFloat32(posBuf, (i*3+j)*4, c)
		}
	}
	normBuf := make([]byte, 3*3*4)
	for i := 0; i < 3; i++ {
		putFloat32(normBuf, i*3*4+8, 1) // (0, 0, 1) per vertex
	}
	idxBuf := make([]byte, 3*2)
	binary.LittleEndian.PutUint16(idxBuf[0:], 0)
	binary.LittleEndian.PutUint16(idxBuf[2:], 1)
	binary.LittleEndian.PutUint16(idxBuf[4:], 2)

	data := append(append(append([]byte{}, posBuf...), normBuf...), idxBuf...)

	bufIdx := uint32(0)
	posViewIdx, normViewIdx, idxViewIdx := uint32(0), uint32(1), uint32(2)
	posAccIdx, normAccIdx, idxAccIdx := uint32(0), uint32(1), uint32(2)

	doc := &gltf.Document{
		Asset: gltf.Asset{Version: "2.0"},
		Buffers: []*gltf.Buffer{
			{ByteLength: uint32(len(data)), Data: data},
		},
		BufferViews: []*gltf.BufferView{
			{Buffer: bufIdx, ByteOffset: 0, ByteLength: uint32(len(posBuf))},
			{Buffer: bufIdx, ByteOffset: uint32(len(posBuf)), ByteLength: uint32(len(normBuf))},
			{Buffer: bufIdx, ByteOffset: uint32(len(posBuf) + len(normBuf)), ByteLength: uint32(len(idxBuf))},
		},
		Accessors: []*gltf.Accessor{
			{BufferView: &posViewIdx, ComponentType: gltf.ComponentFloat, Type: gltf.AccessorVec3, Count: 3},
			{BufferView: &normViewIdx, ComponentType: gltf.ComponentFloat, Type: gltf.AccessorVec3, Count: 3},
			{BufferView: &idxViewIdx, ComponentType: gltf.ComponentUshort, Type: gltf.AccessorScalar, Count: 3},
		},
		Meshes: []*gltf.Mesh{
			{
				Primitives: []*gltf.Primitive{
					{
						Attributes: gltf.Attribute{
							gltf.POSITION: posAccIdx,
							gltf.NORMAL:   normAccIdx,
						},
						Indices: &idxAccIdx,
						Mode:    gltf.PrimitiveTriangles,
					},
				},
			},
		},
	}
	return doc
}

func TestGLTFTriangle(t *testing.T) {
	doc := triangleGLTF(t)
	path := filepath.Join(t.TempDir(), "triangle.glb")
	require.NoError(t, gltf.Save(doc, path))

	m, err := GLTF(path)
	require.NoError(t, err)

	assert.Equal(t, "triangle", m.Name)
	assert.Equal(t, uint32(1), m.NumFaces)
	assert.True(t, m.Kind.Has(mesh.Normal))
	assert.False(t, m.Kind.Has(mesh.Texcoord))
	require.Len(t, m.Vertices, 3)
	assert.InDelta(t, 1.0, m.Vertices[1].X, 1e-6)
	assert.InDelta(t, 1.0, m.Vertices[2].Y, 1e-6)
	require.Len(t, m.Normals, 3)
	assert.InDelta(t, 1.0, m.Normals[0].Z, 1e-6)

	// glTF indices are 0-based; the mesh package stores them 1-based.
	assert.Equal(t, []uint32{1, 2, 3}, m.VertexIdx)
	assert.Equal(t, []uint32{1, 2, 3}, m.NormalIdx)

	v, n, tc := m.Corner(0, 2)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, n)
	assert.Equal(t, -1, tc)
}

func TestGLTFMissingMeshes(t *testing.T) {
	doc := &gltf.Document{Asset: gltf.Asset{Version: "2.0"}}
	path := filepath.Join(t.TempDir(), "empty.glb")
	require.NoError(t, gltf.Save(doc, path))

	_, err := GLTF(path)
	assert.Error(t, err)
}

func TestGLTFMissingFile(t *testing.T) {
	_, err := GLTF(filepath.Join(t.TempDir(), "nope.glb"))
	assert.Error(t, err)
}
