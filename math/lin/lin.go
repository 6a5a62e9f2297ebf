// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package lin provides the linear math library backing the rasterizer:
// vectors, a 4x4 matrix, a quaternion, and the few scalar utilities the
// render pipeline needs. Linear math operations are useful in 3D
// applications for describing and transforming virtual objects.
//
// Package lin is provided as part of the qpixel software rasterizer.
package lin

// Design Notes:
//
// 1) This is a CPU based 3D math library. It is most often called from
//    per-triangle and per-pixel rendering loops where performance is key.
//    Some general guidelines, verified with benchmarks, can be seen
//    throughout the library.
//     - avoid instantiating new structures
//     - use pointers to structures
//     - prefer multiply over divide
//
// 2) Wikipedia states: "In linear algebra, real numbers are called scalars...".
//    Currently the default scalar size is float64 since the underlying go math
//    package uses this size.

import "math"

// Various linear math constants.
const (

	// PI and its commonly needed varients.
	PI     float64 = math.Pi
	PIx2   float64 = PI * 2
	DegRad float64 = PIx2 / 360.0 // X degrees * DegRad = Y radians
	RadDeg float64 = 360.0 / PIx2 // Y radians * RadDeg = X degrees

	// Epsilon is used to distinguish when a float is close enough to a number.
	Epsilon float64 = 0.000001
)

// Rad converts degrees to radians.
func Rad(deg float64) float64 { return deg * DegRad }

// Deg converts radians to degrees.
func Deg(rad float64) float64 { return rad * RadDeg }

// Aeq (~=) almost-equals returns true if the difference between a and b is
// so small that it doesn't matter.
func Aeq(a, b float64) bool { return math.Abs(a-b) < Epsilon }

// Lerp returns the linear interpolation of a to b by the given ratio:
// (1-ratio)*a + ratio*b.
func Lerp(a, b, ratio float64) float64 { return (1-ratio)*a + ratio*b }

// Clip returns x clamped to the closed range [lo, hi]. Callers are expected
// to pass lo <= hi; values outside the range are pulled to the nearer bound.
func Clip(x, lo, hi float64) float64 {
	switch {
	case x < lo:
		return lo
	case x > hi:
		return hi
	}
	return x
}
