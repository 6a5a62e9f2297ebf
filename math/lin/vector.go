// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Vector performs the 2, 3, and 4 element vector math the render pipeline
// needs: points, normals, homogeneous clip-space coordinates and
// homogeneous plane normals all live in these three types.

import "math"

// V2 is a 2 element vector, used for texture coordinates.
type V2 struct {
	X float64
	Y float64
}

// V3 is a 3 element vector. This can also be used as a point or a normal.
type V3 struct {
	X float64
	Y float64
	Z float64
}

// V4 is a 4 element vector. It is used for homogeneous points (W holds the
// clip-space w) and for homogeneous plane normals used during clipping.
type V4 struct {
	X float64
	Y float64
	Z float64
	W float64
}

// Eq (==) returns true if v and a have identical elements.
func (v *V3) Eq(a *V3) bool { return v.X == a.X && v.Y == a.Y && v.Z == a.Z }

// Aeq (~=) returns true if every element of v is within Epsilon of the
// corresponding element of a.
func (v *V3) Aeq(a *V3) bool { return Aeq(v.X, a.X) && Aeq(v.Y, a.Y) && Aeq(v.Z, a.Z) }

// SetS (=) explicitly sets vector v's elements to the given scalars.
// The updated vector v is returned.
func (v *V2) SetS(x, y float64) *V2 {
	v.X, v.Y = x, y
	return v
}

// SetS (=) explicitly sets vector v's elements to the given scalars.
// The updated vector v is returned.
func (v *V3) SetS(x, y, z float64) *V3 {
	v.X, v.Y, v.Z = x, y, z
	return v
}

// SetS (=) explicitly sets vector v's elements to the given scalars.
// The updated vector v is returned.
func (v *V4) SetS(x, y, z, w float64) *V4 {
	v.X, v.Y, v.Z, v.W = x, y, z, w
	return v
}

// Set (=, copy) sets the elements of vector v to have the same values
// as the elements of vector a. The updated vector v is returned.
func (v *V3) Set(a *V3) *V3 {
	v.X, v.Y, v.Z = a.X, a.Y, a.Z
	return v
}

// Set (=, copy) sets the elements of vector v to have the same values
// as the elements of vector a. The updated vector v is returned.
func (v *V4) Set(a *V4) *V4 {
	v.X, v.Y, v.Z, v.W = a.X, a.Y, a.Z, a.W
	return v
}

// V3 returns the first three elements of v as a standalone V3.
func (v *V4) V3() *V3 { return &V3{v.X, v.Y, v.Z} }

// Homogeneous lifts v to a V4 with the given w. Used to turn an object-space
// position into a homogeneous point (w=1) before a matrix multiply.
func (v *V3) Homogeneous(w float64) *V4 { return &V4{v.X, v.Y, v.Z, w} }

// Add (+) adds vectors a and b storing the result in v. Vector v may be
// used as one or both of the input vectors. The updated vector v is returned.
func (v *V3) Add(a, b *V3) *V3 {
	v.X, v.Y, v.Z = a.X+b.X, a.Y+b.Y, a.Z+b.Z
	return v
}

// Add (+) adds vectors a and b storing the result in v. Same behaviour
// as V3.Add().
func (v *V4) Add(a, b *V4) *V4 {
	v.X, v.Y, v.Z, v.W = a.X+b.X, a.Y+b.Y, a.Z+b.Z, a.W+b.W
	return v
}

// Sub (-) subtracts b from a storing the result in v. Vector v may be
// used as one or both of the input vectors. The updated vector v is returned.
func (v *V3) Sub(a, b *V3) *V3 {
	v.X, v.Y, v.Z = a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return v
}

// Sub (-) subtracts b from a storing the result in v. Same behaviour
// as V3.Sub().
func (v *V4) Sub(a, b *V4) *V4 {
	v.X, v.Y, v.Z, v.W = a.X-b.X, a.Y-b.Y, a.Z-b.Z, a.W-b.W
	return v
}

// Scale (*) multiplies each element of vector a by the scalar s, storing
// the result in v. The updated vector v is returned.
func (v *V3) Scale(a *V3, s float64) *V3 {
	v.X, v.Y, v.Z = a.X*s, a.Y*s, a.Z*s
	return v
}

// Scale (*) multiplies each element of vector a by the scalar s, storing
// the result in v. Same behaviour as V3.Scale().
func (v *V4) Scale(a *V4, s float64) *V4 {
	v.X, v.Y, v.Z, v.W = a.X*s, a.Y*s, a.Z*s, a.W*s
	return v
}

// Div (/) divides each element of vector a by the scalar s, storing the
// result in v. Dividing by zero leaves v as the zero vector.
func (v *V3) Div(a *V3, s float64) *V3 {
	if s == 0 {
		v.X, v.Y, v.Z = 0, 0, 0
		return v
	}
	inv := 1 / s
	v.X, v.Y, v.Z = a.X*inv, a.Y*inv, a.Z*inv
	return v
}

// Div (/) divides each element of vector a by the scalar s, storing the
// result in v. Same behaviour as V3.Div().
func (v *V4) Div(a *V4, s float64) *V4 {
	if s == 0 {
		v.X, v.Y, v.Z, v.W = 0, 0, 0, 0
		return v
	}
	inv := 1 / s
	v.X, v.Y, v.Z, v.W = a.X*inv, a.Y*inv, a.Z*inv, a.W*inv
	return v
}

// PerspectiveDivide normalizes the homogeneous point a by its own w,
// storing the result in v: v = a / a.w. This is the "vec4_normalize" of
// the projective pipeline -- despite the name it has nothing to do with
// unit length.
func (v *V4) PerspectiveDivide(a *V4) *V4 {
	return v.Div(a, a.W)
}

// Cross (x) sets v to be the cross product of a and b. v must not alias
// a or b. The updated vector v is returned.
func (v *V3) Cross(a, b *V3) *V3 {
	v.X, v.Y, v.Z = a.Y*b.Z-a.Z*b.Y, a.Z*b.X-a.X*b.Z, a.X*b.Y-a.Y*b.X
	return v
}

// Dot returns the dot product of v and a. Both vectors are unchanged.
func (v *V3) Dot(a *V3) float64 { return v.X*a.X + v.Y*a.Y + v.Z*a.Z }

// Dot returns the dot product of v and a. Both vectors are unchanged.
func (v *V4) Dot(a *V4) float64 { return v.X*a.X + v.Y*a.Y + v.Z*a.Z + v.W*a.W }

// Len returns the length of vector v.
func (v *V3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Unit updates vector v to be the normalized (unit length) version of a.
// v is set to a (the zero vector) if a has zero length. The updated vector v is returned.
func (v *V3) Unit(a *V3) *V3 {
	length := a.Len()
	if length == 0 {
		return v.Set(a)
	}
	return v.Scale(a, 1/length)
}

// Lerp sets v to the linear interpolation between a and b by ratio t:
// v = (1-t)*a + t*b. The updated vector v is returned.
func (v *V3) Lerp(a, b *V3, t float64) *V3 {
	v.X = Lerp(a.X, b.X, t)
	v.Y = Lerp(a.Y, b.Y, t)
	v.Z = Lerp(a.Z, b.Z, t)
	return v
}

// Lerp sets v to the linear interpolation between a and b by ratio t.
// Same behaviour as V3.Lerp().
func (v *V4) Lerp(a, b *V4, t float64) *V4 {
	v.X = Lerp(a.X, b.X, t)
	v.Y = Lerp(a.Y, b.Y, t)
	v.Z = Lerp(a.Z, b.Z, t)
	v.W = Lerp(a.W, b.W, t)
	return v
}

// Clip updates v to be vector a with every element clamped to [lo, hi].
// The updated vector v is returned.
func (v *V3) Clip(a *V3, lo, hi float64) *V3 {
	v.X, v.Y, v.Z = Clip(a.X, lo, hi), Clip(a.Y, lo, hi), Clip(a.Z, lo, hi)
	return v
}

// NewV2 returns a new, zeroed, 2 element vector.
func NewV2() *V2 { return &V2{} }

// NewV3 returns a new, zeroed, 3 element vector.
func NewV3() *V3 { return &V3{} }

// NewV4 returns a new, zeroed, 4 element vector.
func NewV4() *V4 { return &V4{} }
