// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package raster

import "github.com/galvlogic/qpixel/math/lin"

// DrawTriangle runs the full per-triangle pipeline over the three
// object-space positions currently staged in d.Vertex and the three
// attribute values staged in d.Attr: world and projection transform,
// vertex program, homogeneous clipping, perspective divide and screen
// mapping, fan triangulation, back-face culling, and rasterization.
// d.Attr and d.Vertex are scratch the drawer owns; they are only read
// here, never retained past this call.
func (d *Device[U, A, V]) DrawTriangle() {
	var corners [3]pVertex[V]
	for i := 0; i < 3; i++ {
		// stage 1: world transform (d.MWorld already equals camera * object world).
		camera := d.MWorld.MulV4(d.Vertex[i].Homogeneous(1))
		// stage 2: projection.
		pndc := d.MProject.MulV4(camera)
		corners[i] = pVertex[V]{pndc: *pndc}
		// stage 3: vertex program.
		corners[i].vary = d.VS(d.Uniform, d.Attr[i])
	}

	// stage 4: homogeneous clipping.
	poly := clipPolygon([]pVertex[V]{corners[0], corners[1], corners[2]})
	if len(poly) < 3 {
		return
	}

	// stage 5: perspective divide & screen mapping.
	for i := range poly {
		v := &poly[i]
		w := 1 / v.pndc.W
		v.vary = v.vary.Scale(w)
		v.pndc.PerspectiveDivide(&v.pndc)
		v.w = w
		v.ps.X = lin.Clip(v.pndc.X*0.5+0.5, 0, 1) * float64(d.Width)
		v.ps.Y = lin.Clip(v.pndc.Y*0.5+0.5, 0, 1) * float64(d.Height)
	}

	// stage 6: fan triangulation.
	for i := 1; i < len(poly)-1; i++ {
		a, b, c := poly[0], poly[i], poly[i+1]

		// stage 7: back-face culling.
		e1x, e1y := b.ps.X-a.ps.X, b.ps.Y-a.ps.Y
		e2x, e2y := c.ps.X-a.ps.X, c.ps.Y-a.ps.Y
		crossZ := e1x*e2y - e1y*e2x
		if crossZ >= 0 {
			continue
		}

		// stage 8: rasterization.
		d.TriangleCount++
		d.rasterizeTriangle(a, b, c)
	}
}
