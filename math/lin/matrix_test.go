// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

func TestIdentity(t *testing.T) {
	m := NewMat4I()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			want := 0.0
			if r == c {
				want = 1.0
			}
			if got := m.Get(r, c); got != want {
				t.Errorf(format, got, want)
			}
		}
	}
}

func TestMultIdentity(t *testing.T) {
	a := NewMat4().Persp(90, 1, 1, 100)
	got := NewMat4().Mult(a, NewMat4I())
	if !got.Aeq(a) {
		t.Errorf(format, got, a)
	}
}

func TestInvIdentity(t *testing.T) {
	got := NewMat4().Inv(NewMat4I())
	if !got.Aeq(NewMat4I()) {
		t.Errorf(format, got, NewMat4I())
	}
}

func TestMultInv(t *testing.T) {
	a := NewMat4().World(&V3{1, 2, 3}, (&Quat{}).FromAxisAngle(&V3{0, 1, 0}, Rad(37)), &V3{1, 1, 1})
	inv := NewMat4().Inv(a)
	got := NewMat4().Mult(a, inv)
	if !got.Aeq(NewMat4I()) {
		t.Errorf(format, got, NewMat4I())
	}
}

func TestWorldIdentity(t *testing.T) {
	got := NewMat4().World(&V3{}, QuatI, &V3{1, 1, 1})
	if !got.Aeq(NewMat4I()) {
		t.Errorf(format, got, NewMat4I())
	}
}

func TestFromQuatIdentity(t *testing.T) {
	q := (&Quat{}).FromAxisAngle(&V3{0, 1, 0}, 0)
	got := NewMat4().FromQuat(q)
	if !got.Aeq(NewMat4I()) {
		t.Errorf(format, got, NewMat4I())
	}
}

func TestPerspMapsNegZToPositiveW(t *testing.T) {
	m := NewMat4().Persp(90, 1, 1, 100)
	p := m.MulV4(&V4{0, 0, -5, 1})
	if got, want := p.W, 5.0; !Aeq(got, want) {
		t.Errorf(format, got, want)
	}
}

func TestLookAtOrigin(t *testing.T) {
	m := NewMat4().LookAt(&V3{0, 0, -3}, &V3{0, 0, 0}, &V3{0, 1, 0})
	p := m.MulV4(&V4{0, 0, 0, 1})
	if got, want := p.Z, -3.0; !Aeq(got, want) {
		t.Errorf(format, got, want)
	}
}
