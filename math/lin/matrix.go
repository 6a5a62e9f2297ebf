// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Matrix implements the single 4x4 matrix type the rasterizer needs.
//
// Unlike the column-vector-as-row convention used elsewhere in this module's
// ancestry, the render pipeline treats points as column vectors and applies
// a transform as v' = M * v. Element [r][c] is row r, column c, and the
// translation column is m[0][3], m[1][3], m[2][3] -- matching the row-major,
// column-vector layout used throughout the original projective-math
// literature this pipeline is built on.

import "math"

// Mat4 is a 4x4, row-major matrix used for all world, view, and
// projection transforms.
type Mat4 struct {
	m [4][4]float64
}

// Get returns the element at row r, column c.
func (m *Mat4) Get(r, c int) float64 { return m.m[r][c] }

// Set assigns the element at row r, column c and returns m.
func (m *Mat4) Set(r, c int, v float64) *Mat4 {
	m.m[r][c] = v
	return m
}

// SetM (=, copy) assigns the element values of a to m. The updated m is returned.
func (m *Mat4) SetM(a *Mat4) *Mat4 {
	m.m = a.m
	return m
}

// Identity resets m to the identity matrix. The updated m is returned.
func (m *Mat4) Identity() *Mat4 {
	m.m = [4][4]float64{}
	for i := 0; i < 4; i++ {
		m.m[i][i] = 1
	}
	return m
}

// Eq (==) returns true if every element of m equals the corresponding
// element of a.
func (m *Mat4) Eq(a *Mat4) bool { return m.m == a.m }

// Aeq (~=) almost-equals returns true if every element of m is within
// Epsilon of the corresponding element of a.
func (m *Mat4) Aeq(a *Mat4) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if !Aeq(m.m[r][c], a.m[r][c]) {
				return false
			}
		}
	}
	return true
}

// Mult (*) sets m to the matrix product l*r: m = l * r. Points are
// transformed as v' = m*v, so Mult(l, r) composes transforms such that r
// is applied to a vector before l. m may alias l or r.
func (m *Mat4) Mult(l, r *Mat4) *Mat4 {
	var res [4][4]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += l.m[i][k] * r.m[k][j]
			}
			res[i][j] = sum
		}
	}
	m.m = res
	return m
}

// MulV4 returns the homogeneous transform of v by m: v' = m*v.
func (m *Mat4) MulV4(v *V4) *V4 {
	return &V4{
		X: v.X*m.m[0][0] + v.Y*m.m[0][1] + v.Z*m.m[0][2] + v.W*m.m[0][3],
		Y: v.X*m.m[1][0] + v.Y*m.m[1][1] + v.Z*m.m[1][2] + v.W*m.m[1][3],
		Z: v.X*m.m[2][0] + v.Y*m.m[2][1] + v.Z*m.m[2][2] + v.W*m.m[2][3],
		W: v.X*m.m[3][0] + v.Y*m.m[3][1] + v.Z*m.m[3][2] + v.W*m.m[3][3],
	}
}

// Cof returns the (r, c) cofactor of m: the signed determinant of the 3x3
// minor obtained by deleting row r and column c.
func (m *Mat4) Cof(r, c int) float64 {
	var n [3][3]float64
	for i := 0; i < 4; i++ {
		if i == r {
			continue
		}
		nr := i
		if i > r {
			nr = i - 1
		}
		for j := 0; j < 4; j++ {
			if j == c {
				continue
			}
			nc := j
			if j > c {
				nc = j - 1
			}
			n[nr][nc] = m.m[i][j]
		}
	}
	det := n[0][0]*n[1][1]*n[2][2] +
		n[0][1]*n[1][2]*n[2][0] +
		n[0][2]*n[1][0]*n[2][1] -
		n[2][0]*n[1][1]*n[0][2] -
		n[2][1]*n[1][2]*n[0][0] -
		n[2][2]*n[1][0]*n[0][1]
	if (r+c)%2 != 0 {
		det = -det
	}
	return det
}

// Adj sets m to the adjugate (transpose of the cofactor matrix) of a, and
// returns det(a). The updated m is returned along with the determinant
// so that Inv can reuse the work without computing the cofactors twice.
func (m *Mat4) Adj(a *Mat4) (adj *Mat4, det float64) {
	var out [4][4]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[j][i] = a.Cof(i, j)
		}
	}
	for i := 0; i < 4; i++ {
		det += out[i][0] * a.m[0][i]
	}
	m.m = out
	return m, det
}

// Inv updates m to be the inverse of a, computed via the adjugate matrix
// divided by the determinant: inv(a) = adj(a) / det(a). m is left as the
// adjugate (undivided) if a's determinant is zero, which callers should
// never encounter for a well-formed transform. The updated m is returned.
func (m *Mat4) Inv(a *Mat4) *Mat4 {
	_, det := m.Adj(a)
	if det == 0 {
		return m
	}
	inv := 1 / det
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m.m[r][c] *= inv
		}
	}
	return m
}

// Persp sets m to a symmetric, right-handed perspective projection matrix
// with the given vertical field of view (degrees), aspect ratio
// (width/height), and near/far clip distances. A camera-space point with
// z<0 (in front of the camera) maps to a homogeneous point with w=-z>0.
func (m *Mat4) Persp(fovDeg, aspect, near, far float64) *Mat4 {
	t := math.Tan(Rad(fovDeg) * 0.5)
	m.m = [4][4]float64{}
	m.m[0][0] = 1 / (t * aspect)
	m.m[1][1] = 1 / t
	m.m[2][2] = -(far + near) / (far - near)
	m.m[2][3] = -2 * far * near / (far - near)
	m.m[3][2] = -1
	return m
}

// LookAt sets m to the view matrix looking from eye towards center with
// the given up direction. The resulting rotation rows are the right,
// up, and back basis vectors of camera space; the translation column is
// -dot(eye, axis) for each axis.
func (m *Mat4) LookAt(eye, center, up *V3) *Mat4 {
	var forward, u, v, w V3
	forward.Unit(forward.Sub(center, eye))
	u.Unit(u.Cross(&forward, up))
	v.Unit(v.Cross(&u, &forward))
	w.SetS(-forward.X, -forward.Y, -forward.Z)

	m.m = [4][4]float64{}
	m.m[0][0], m.m[0][1], m.m[0][2] = u.X, u.Y, u.Z
	m.m[0][3] = -eye.Dot(&u)
	m.m[1][0], m.m[1][1], m.m[1][2] = v.X, v.Y, v.Z
	m.m[1][3] = -eye.Dot(&v)
	m.m[2][0], m.m[2][1], m.m[2][2] = w.X, w.Y, w.Z
	m.m[2][3] = -eye.Dot(&w)
	m.m[3][3] = 1
	return m
}

// FromQuat sets m to the rotation matrix equivalent to the unit
// quaternion q, using the standard unit-quaternion-to-matrix formula.
// The updated m is returned.
func (m *Mat4) FromQuat(q *Quat) *Mat4 {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	x2, y2, z2 := x*x, y*y, z*z
	m.m = [4][4]float64{}
	m.m[0][0] = 1 - 2*y2 - 2*z2
	m.m[0][1] = 2*x*y - 2*z*w
	m.m[0][2] = 2*x*z + 2*y*w

	m.m[1][0] = 2*x*y + 2*z*w
	m.m[1][1] = 1 - 2*x2 - 2*z2
	m.m[1][2] = 2*y*z - 2*x*w

	m.m[2][0] = 2*x*z - 2*y*w
	m.m[2][1] = 2*y*z + 2*x*w
	m.m[2][2] = 1 - 2*x2 - 2*y2

	m.m[3][3] = 1
	return m
}

// World sets m to the composite T * R(rot) * S transform used to place an
// object in the scene: translate by t, then rotate by rot, then scale by
// s. Points are column vectors, so scale is applied first.
func (m *Mat4) World(t *V3, rot *Quat, s *V3) *Mat4 {
	m.Identity()
	m.m[0][3], m.m[1][3], m.m[2][3] = t.X, t.Y, t.Z

	var r Mat4
	r.FromQuat(rot)
	m.Mult(m, &r)

	var scale Mat4
	scale.Identity()
	scale.m[0][0], scale.m[1][1], scale.m[2][2] = s.X, s.Y, s.Z
	m.Mult(m, &scale)
	return m
}

// NewMat4 returns a new, zeroed, 4x4 matrix.
func NewMat4() *Mat4 { return &Mat4{} }

// NewMat4I returns a new 4x4 identity matrix.
func NewMat4I() *Mat4 { return NewMat4().Identity() }
