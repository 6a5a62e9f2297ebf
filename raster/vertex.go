// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package raster

import "github.com/galvlogic/qpixel/math/lin"

// pVertex is one pipeline-internal vertex. pndc holds the homogeneous
// point -- un-normalized clip-space coordinates until the perspective
// divide, normalized device coordinates after. ps is the screen-space
// position, valid only after the perspective divide. w stores 1/z in
// camera space after the divide. vary is the per-vertex varying value,
// pre-multiplied by w between the vertex stage and the fragment stage
// so that linear interpolation of vary stays perspective-correct.
//
// Each pVertex owns its vary value outright: cloning (via the value
// semantics of V, a Varying) and interpolation both produce a new,
// independent vertex, matching the ownership-exclusive vertex model the
// clipper and scanline walker depend on.
type pVertex[V Varying[V]] struct {
	pndc lin.V4
	ps   lin.V2
	w    float64
	vary V
}

func addPVertex[V Varying[V]](a, b pVertex[V]) pVertex[V] {
	var pndc lin.V4
	pndc.Add(&a.pndc, &b.pndc)
	return pVertex[V]{
		pndc: pndc,
		ps:   lin.V2{X: a.ps.X + b.ps.X, Y: a.ps.Y + b.ps.Y},
		w:    a.w + b.w,
		vary: a.vary.Add(b.vary),
	}
}

func scalePVertex[V Varying[V]](a pVertex[V], s float64) pVertex[V] {
	var pndc lin.V4
	pndc.Scale(&a.pndc, s)
	return pVertex[V]{
		pndc: pndc,
		ps:   lin.V2{X: a.ps.X * s, Y: a.ps.Y * s},
		w:    a.w * s,
		vary: a.vary.Scale(s),
	}
}

func subPVertex[V Varying[V]](a, b pVertex[V]) pVertex[V] {
	return addPVertex(a, scalePVertex(b, -1))
}

// lerpPVertex interpolates every component of a pipeline vertex --
// pndc, ps, w, and vary -- by ratio t, producing a new, independently
// owned vertex.
func lerpPVertex[V Varying[V]](a, b pVertex[V], t float64) pVertex[V] {
	var pndc lin.V4
	pndc.Lerp(&a.pndc, &b.pndc, t)
	return pVertex[V]{
		pndc: pndc,
		ps:   lin.V2{X: lin.Lerp(a.ps.X, b.ps.X, t), Y: lin.Lerp(a.ps.Y, b.ps.Y, t)},
		w:    lin.Lerp(a.w, b.w, t),
		vary: lerpVarying(a.vary, b.vary, t),
	}
}
