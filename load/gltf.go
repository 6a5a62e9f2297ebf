// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package load

import (
	"encoding/binary"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"

	"github.com/galvlogic/qpixel/math/lin"
	"github.com/galvlogic/qpixel/mesh"
)

// GLTF reads the first triangle-list primitive of the first mesh in a
// glTF 2.0 asset, either the JSON form (.gltf, with buffers embedded as
// data URIs or resolved relative to path) or the binary form (.glb, with
// buffers packed into the container). It adapts the format's single
// shared index buffer to the corner-major, per-attribute index triple
// that mesh.Mesh stores -- a position/normal/texcoord corner that shares
// one glTF vertex index gets that same 1-based value in all three of
// VertexIdx, NormalIdx, and TexcoordIdx.
func GLTF(path string) (*mesh.Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load.GLTF: %w", err)
	}
	if len(doc.Meshes) == 0 {
		return nil, fmt.Errorf("load.GLTF: %s has no meshes", path)
	}
	var prim *gltf.Primitive
	for i := range doc.Meshes[0].Primitives {
		p := doc.Meshes[0].Primitives[i]
		// the default primitive mode, when omitted from the source
		// document, is triangle-list (glTF represents it as 0 too).
		if p.Mode == gltf.PrimitiveTriangles || p.Mode == 0 {
			prim = p
			break
		}
	}
	if prim == nil {
		return nil, fmt.Errorf("load.GLTF: %s has no triangle-list primitive", path)
	}

	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, fmt.Errorf("load.GLTF: primitive has no POSITION attribute")
	}
	positions, err := readVec3(doc, posIdx)
	if err != nil {
		return nil, fmt.Errorf("load.GLTF: positions: %w", err)
	}

	var normals []lin.V3
	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		if normals, err = readVec3(doc, idx); err != nil {
			return nil, fmt.Errorf("load.GLTF: normals: %w", err)
		}
	}
	var texcoords []lin.V2
	if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		if texcoords, err = readVec2(doc, idx); err != nil {
			return nil, fmt.Errorf("load.GLTF: texcoords: %w", err)
		}
	}
	if prim.Indices == nil {
		return nil, fmt.Errorf("load.GLTF: non-indexed primitives are not supported")
	}
	indices, err := readIndices(doc, uint32(*prim.Indices))
	if err != nil {
		return nil, fmt.Errorf("load.GLTF: indices: %w", err)
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("load.GLTF: index count %d is not a multiple of 3", len(indices))
	}

	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	m := mesh.New(name)
	m.Vertices = positions
	if len(normals) > 0 {
		m.Normals = normals
		m.Kind |= mesh.Normal
	}
	if len(texcoords) > 0 {
		m.Texcoords = texcoords
		m.Kind |= mesh.Texcoord
	}
	m.NumFaces = uint32(len(indices) / 3)
	m.VertexIdx = make([]uint32, len(indices))
	if m.Kind.Has(mesh.Normal) {
		m.NormalIdx = make([]uint32, len(indices))
	}
	if m.Kind.Has(mesh.Texcoord) {
		m.TexcoordIdx = make([]uint32, len(indices))
	}
	for i, idx := range indices {
		// glTF indices are 0-based; the mesh package's convention is
		// 1-based, matching the Wavefront OBJ loader.
		v := idx + 1
		m.VertexIdx[i] = v
		if m.Kind.Has(mesh.Normal) {
			m.NormalIdx[i] = v
		}
		if m.Kind.Has(mesh.Texcoord) {
			m.TexcoordIdx[i] = v
		}
	}
	return m, nil
}

func accessorData(doc *gltf.Document, accessorIdx uint32) (*gltf.Accessor, []byte, int, error) {
	acc := doc.Accessors[accessorIdx]
	if acc.BufferView == nil {
		return nil, nil, 0, fmt.Errorf("accessor %d has no buffer view", accessorIdx)
	}
	bv := doc.BufferViews[*acc.BufferView]
	buf := doc.Buffers[bv.Buffer]
	if buf.Data == nil {
		return nil, nil, 0, fmt.Errorf("buffer %d has no resolved data", bv.Buffer)
	}
	start := bv.ByteOffset + acc.ByteOffset
	return acc, buf.Data, int(start), nil
}

func readVec3(doc *gltf.Document, accessorIdx uint32) ([]lin.V3, error) {
	acc, data, start, err := accessorData(doc, accessorIdx)
	if err != nil {
		return nil, err
	}
	if acc.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("accessor %d: want VEC3, got %v", accessorIdx, acc.Type)
	}
	stride := gltfStride(doc, accessorIdx, 12)
	out := make([]lin.V3, acc.Count)
	for i := 0; i < int(acc.Count); i++ {
		off := start + i*stride
		out[i] = lin.V3{
			X: float64(readFloat32(data[off:])),
			Y: float64(readFloat32(data[off+4:])),
			Z: float64(readFloat32(data[off+8:])),
		}
	}
	return out, nil
}

func readVec2(doc *gltf.Document, accessorIdx uint32) ([]lin.V2, error) {
	acc, data, start, err := accessorData(doc, accessorIdx)
	if err != nil {
		return nil, err
	}
	if acc.Type != gltf.AccessorVec2 {
		return nil, fmt.Errorf("accessor %d: want VEC2, got %v", accessorIdx, acc.Type)
	}
	stride := gltfStride(doc, accessorIdx, 8)
	out := make([]lin.V2, acc.Count)
	for i := 0; i < int(acc.Count); i++ {
		off := start + i*stride
		out[i] = lin.V2{
			X: float64(readFloat32(data[off:])),
			Y: float64(readFloat32(data[off+4:])),
		}
	}
	return out, nil
}

func readIndices(doc *gltf.Document, accessorIdx uint32) ([]uint32, error) {
	acc, data, start, err := accessorData(doc, accessorIdx)
	if err != nil {
		return nil, err
	}
	if acc.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("accessor %d: want SCALAR, got %v", accessorIdx, acc.Type)
	}
	out := make([]uint32, acc.Count)
	switch acc.ComponentType {
	case gltf.ComponentUbyte:
		stride := gltfStride(doc, accessorIdx, 1)
		for i := 0; i < int(acc.Count); i++ {
			out[i] = uint32(data[start+i*stride])
		}
	case gltf.ComponentUshort:
		stride := gltfStride(doc, accessorIdx, 2)
		for i := 0; i < int(acc.Count); i++ {
			off := start + i*stride
			out[i] = uint32(binary.LittleEndian.Uint16(data[off:]))
		}
	case gltf.ComponentUint:
		stride := gltfStride(doc, accessorIdx, 4)
		for i := 0; i < int(acc.Count); i++ {
			off := start + i*stride
			out[i] = binary.LittleEndian.Uint32(data[off:])
		}
	default:
		return nil, fmt.Errorf("accessor %d: unsupported index component type %v", accessorIdx, acc.ComponentType)
	}
	return out, nil
}

func gltfStride(doc *gltf.Document, accessorIdx uint32, tight int) int {
	acc := doc.Accessors[accessorIdx]
	if acc.BufferView == nil {
		return tight
	}
	if bv := doc.BufferViews[*acc.BufferView]; bv.ByteStride != 0 {
		return int(bv.ByteStride)
	}
	return tight
}

func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
