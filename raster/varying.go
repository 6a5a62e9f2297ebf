// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package raster implements the software rendering pipeline: the
// pluggable-shader device, homogeneous-space clipping, back-face
// culling, and scanline rasterization with perspective-correct
// interpolation.
package raster

// Varying is a per-vertex value a vertex program produces and the
// rasterizer linearly interpolates across a triangle for per-pixel use
// by the fragment program. Implementations should treat the receiver as
// immutable and return a new value from both methods -- the pipeline
// calls these at every clip split and every scanline step, so a
// mutating implementation would corrupt in-flight vertices that still
// share state.
//
// The host supplies the concrete type; this is the typed replacement
// for passing raw, unsized float buffers between pipeline stages.
type Varying[V any] interface {
	Scale(f float64) V
	Add(other V) V
}

func lerpVarying[V Varying[V]](a, b V, t float64) V {
	return a.Scale(1 - t).Add(b.Scale(t))
}
