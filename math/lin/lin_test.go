// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

const format = "\ngot\n%v\nwanted\n%v"

func TestClip(t *testing.T) {
	tests := []struct{ x, lo, hi, want float64 }{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clip(tt.x, tt.lo, tt.hi); got != tt.want {
			t.Errorf(format, got, tt.want)
		}
		if got := Clip(tt.x, tt.lo, tt.hi); got < tt.lo || got > tt.hi {
			t.Errorf("Clip(%v, %v, %v) = %v not within bounds", tt.x, tt.lo, tt.hi, got)
		}
	}
}

func TestLerp(t *testing.T) {
	if got, want := Lerp(0, 10, 0.5), 5.0; got != want {
		t.Errorf(format, got, want)
	}
	if got, want := Lerp(2, 4, 0), 2.0; got != want {
		t.Errorf(format, got, want)
	}
	if got, want := Lerp(2, 4, 1), 4.0; got != want {
		t.Errorf(format, got, want)
	}
}

func TestRadDeg(t *testing.T) {
	if got, want := Rad(180), PI; !Aeq(got, want) {
		t.Errorf(format, got, want)
	}
	if got, want := Deg(PI), 180.0; !Aeq(got, want) {
		t.Errorf(format, got, want)
	}
}
