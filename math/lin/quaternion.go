// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Quaternion deals with unit quaternion math used to track and apply
// object rotations. For a nice explanation of quaternions see
// http://3dgep.com/?p=1815

import "math"

// Quat is a unit length quaternion (w, x, y, z) representing an angle of
// rotation and an axis of rotation. Quaternions are used in preference to
// Euler angles to avoid gimbal lock and to compose smoothly.
type Quat struct {
	W float64 // cos(angle/2) of the rotation.
	X float64 // axis, x component.
	Y float64 // axis, y component.
	Z float64 // axis, z component.
}

// QuatI is the reference identity quaternion: no rotation. It must never
// be mutated.
var QuatI = &Quat{W: 1}

// SetS (=) explicitly sets each element of q to the given values.
// The updated quaternion q is returned.
func (q *Quat) SetS(w, x, y, z float64) *Quat {
	q.W, q.X, q.Y, q.Z = w, x, y, z
	return q
}

// Set (=, copy) assigns the element values of r to q.
// The updated quaternion q is returned.
func (q *Quat) Set(r *Quat) *Quat {
	q.W, q.X, q.Y, q.Z = r.W, r.X, r.Y, r.Z
	return q
}

// Dot returns the dot product of quaternions q and r.
func (q *Quat) Dot(r *Quat) float64 { return q.W*r.W + q.X*r.X + q.Y*r.Y + q.Z*r.Z }

// Len returns the length of quaternion q.
func (q *Quat) Len() float64 { return math.Sqrt(q.Dot(q)) }

// Unit updates q to be the normalized (unit length) version of r.
// q is set to r (the zero quaternion) if r has zero length. The updated q is returned.
func (q *Quat) Unit(r *Quat) *Quat {
	length := r.Len()
	if length == 0 {
		return q.Set(r)
	}
	inv := 1 / length
	q.W, q.X, q.Y, q.Z = r.W*inv, r.X*inv, r.Y*inv, r.Z*inv
	return q
}

// Mult (*) multiplies quaternions r and s, applying the rotation of s
// followed by r, storing the result in q. q may alias r or s.
// The updated quaternion q is returned.
func (q *Quat) Mult(r, s *Quat) *Quat {
	w := r.W*s.W - r.X*s.X - r.Y*s.Y - r.Z*s.Z
	x := r.W*s.X + r.X*s.W + r.Y*s.Z - r.Z*s.Y
	y := r.W*s.Y - r.X*s.Z + r.Y*s.W + r.Z*s.X
	z := r.W*s.Z + r.X*s.Y - r.Y*s.X + r.Z*s.W
	q.W, q.X, q.Y, q.Z = w, x, y, z
	return q
}

// FromAxisAngle sets q to the rotation of angle radians around the unit
// axis u: q = (cos(angle/2), sin(angle/2)*u). The axis u is expected to
// already be normalized. The updated quaternion q is returned.
func (q *Quat) FromAxisAngle(u *V3, angle float64) *Quat {
	half := 0.5 * angle
	s := math.Sin(half)
	q.W, q.X, q.Y, q.Z = math.Cos(half), s*u.X, s*u.Y, s*u.Z
	return q
}

// NewQuat returns a new identity quaternion.
func NewQuat() *Quat { return &Quat{W: 1} }
