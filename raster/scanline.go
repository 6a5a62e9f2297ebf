// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package raster

import "math"

// rasterizeTriangle splits a, b, c into the top and bottom trapezoids
// used by the scanline walker. Vertices are first sorted by screen y
// ascending; a zero-height triangle (all three vertices share a y) is a
// degenerate edge and is silently skipped, matching the pipeline's
// guard-and-skip error handling for zero-length edges.
func (d *Device[U, A, V]) rasterizeTriangle(a, b, c pVertex[V]) {
	if a.ps.Y > b.ps.Y {
		a, b = b, a
	}
	if b.ps.Y > c.ps.Y {
		b, c = c, b
	}
	if a.ps.Y > b.ps.Y {
		a, b = b, a
	}

	if c.ps.Y == a.ps.Y {
		return
	}
	t := (b.ps.Y - a.ps.Y) / (c.ps.Y - a.ps.Y)
	mid := lerpPVertex(a, c, t)

	left, right := b, mid
	if left.ps.X > right.ps.X {
		left, right = right, left
	}

	d.rasterizeTrapezoid(a, a, left, right)
	d.rasterizeTrapezoid(left, right, c, c)
}

// rasterizeTrapezoid scans a trapezoid whose top edge runs from leftTop
// to rightTop and whose bottom edge runs from leftBottom to
// rightBottom -- either edge may be degenerate (its two endpoints
// equal), which is how a plain triangle is represented by the caller.
func (d *Device[U, A, V]) rasterizeTrapezoid(leftTop, rightTop, leftBottom, rightBottom pVertex[V]) {
	topY, bottomY := leftTop.ps.Y, leftBottom.ps.Y
	if topY == bottomY {
		return
	}
	invHeight := 1 / (bottomY - topY)
	leftStep := scalePVertex(subPVertex(leftBottom, leftTop), invHeight)
	rightStep := scalePVertex(subPVertex(rightBottom, rightTop), invHeight)

	startY := math.Ceil(topY)
	left := addPVertex(leftTop, scalePVertex(leftStep, startY-topY))
	right := addPVertex(rightTop, scalePVertex(rightStep, startY-topY))

	for iy := int(startY); float64(iy) <= bottomY; iy++ {
		if iy >= 0 && iy < d.Height {
			d.rasterizeScanline(iy, left, right)
		}
		left = addPVertex(left, leftStep)
		right = addPVertex(right, rightStep)
	}
}

// rasterizeScanline walks one horizontal span from left to right at
// screen row iy, running the depth test and fragment program at every
// covered pixel.
func (d *Device[U, A, V]) rasterizeScanline(iy int, left, right pVertex[V]) {
	if left.ps.X == right.ps.X {
		return
	}
	invWidth := 1 / (right.ps.X - left.ps.X)
	step := scalePVertex(subPVertex(right, left), invWidth)

	startX := math.Ceil(left.ps.X)
	cur := addPVertex(left, scalePVertex(step, startX-left.ps.X))

	row := d.Height - 1 - iy
	for ix := int(startX); float64(ix) <= right.ps.X; ix++ {
		if ix >= 0 && ix < d.Width {
			d.shadeFragment(row, ix, cur)
		}
		cur = addPVertex(cur, step)
	}
}

func (d *Device[U, A, V]) shadeFragment(row, col int, v pVertex[V]) {
	idx := row*d.Width + col
	if v.w <= float64(d.Depth[idx]) {
		return
	}
	// undo the pre-multiplication by 1/z applied after the vertex
	// stage, restoring perspective-correct varying values.
	z := 1 / v.w
	vary := v.vary.Scale(z)
	r, g, b := d.FS(d.Uniform, vary, v.w)

	pix := idx * 4
	d.Color[pix+0] = toByte(b)
	d.Color[pix+1] = toByte(g)
	d.Color[pix+2] = toByte(r)
	d.Color[pix+3] = 255

	d.Depth[idx] = float32(v.w)
	d.TexelCount++
}

func toByte(c float64) byte {
	c = math.Max(0, math.Min(1, c))
	return byte(math.Round(c * 255))
}
