// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package raster

import (
	"github.com/galvlogic/qpixel/math/lin"
	"github.com/galvlogic/qpixel/mesh"
	"github.com/galvlogic/qpixel/qlog"
)

// Drawer marshals one mesh's per-triangle data into the device's
// uniform, attribute, and vertex slots and drives DrawTriangle. It is
// installed once per device and invoked by DrawMesh for every mesh the
// scene driver submits.
type Drawer[U any, A any, V Varying[V]] func(d *Device[U, A, V], m *mesh.Mesh)

// VertexProgram computes one corner's varying value from that corner's
// attribute value.
type VertexProgram[U any, A any, V Varying[V]] func(unif U, attr A) V

// FragmentProgram computes one fragment's linear RGB color, each
// channel in [0, 1], from the perspective-corrected varying value and
// the interpolated camera-space 1/z.
type FragmentProgram[U any, V Varying[V]] func(unif U, vary V, w float64) (r, g, b float64)

// Device owns the color buffer (borrowed from the host), the depth
// buffer (owned), the current camera/projection/world matrices, the
// per-frame counters, and the pluggable shader triple. U, A, and V are
// the uniform, per-vertex attribute, and per-vertex varying types the
// installed shader triple agrees on.
type Device[U any, A any, V Varying[V]] struct {
	Width, Height int

	// Color is borrowed from the host: width*height*4 bytes, BGRA,
	// row-major, top-left origin. It must outlive the device and must
	// not be mutated by the host while a frame is in flight.
	Color []byte
	// Depth is owned by the device: width*height 1/z values, cleared to
	// 0 (infinitely far) and updated by the depth test.
	Depth []float32

	MProject *lin.Mat4
	MCamera  *lin.Mat4
	// MWorld is camera * object-world, refreshed by the scene driver
	// before each object is drawn.
	MWorld *lin.Mat4

	Uniform U
	Attr    [3]A
	// Vertex holds one triangle's object-space corner positions, set by
	// the drawer before each DrawTriangle call.
	Vertex [3]lin.V3

	Drawer Drawer[U, A, V]
	VS     VertexProgram[U, A, V]
	FS     FragmentProgram[U, V]

	TriangleCount int
	TexelCount    int
}

// New allocates a device over a caller-owned color buffer sized exactly
// width*height*4 bytes.
func New[U any, A any, V Varying[V]](width, height int, color []byte) *Device[U, A, V] {
	if len(color) != width*height*4 {
		panic("raster: color buffer size does not match width*height*4")
	}
	return &Device[U, A, V]{
		Width:    width,
		Height:   height,
		Color:    color,
		Depth:    make([]float32, width*height),
		MProject: lin.NewMat4I(),
		MCamera:  lin.NewMat4I(),
		MWorld:   lin.NewMat4I(),
	}
}

// Clear fills the color buffer with opaque mid-gray, the depth buffer
// with 0 (infinitely far under the 1/z convention), and resets the
// per-frame triangle and texel counters.
func (d *Device[U, A, V]) Clear() {
	for i := 0; i+3 < len(d.Color); i += 4 {
		d.Color[i+0] = 127
		d.Color[i+1] = 127
		d.Color[i+2] = 127
		d.Color[i+3] = 255
	}
	for i := range d.Depth {
		d.Depth[i] = 0
	}
	d.TriangleCount = 0
	d.TexelCount = 0
}

// DrawMesh dispatches m through the installed drawer.
func (d *Device[U, A, V]) DrawMesh(m *mesh.Mesh) {
	if d.Drawer == nil {
		qlog.L.Warnw("raster: DrawMesh called with no drawer installed")
		return
	}
	d.Drawer(d, m)
}
