// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package scene drives a device over an ordered collection of mesh
// instances: it composes each object's world matrix and feeds its mesh
// through the device's installed drawer.
package scene

import (
	"github.com/galvlogic/qpixel/math/lin"
	"github.com/galvlogic/qpixel/mesh"
	"github.com/galvlogic/qpixel/raster"
)

// Object3D is a mesh instance placed in the scene by a translation,
// rotation, and scale. MWorld is a cache of T*R*S; callers must call
// UpdateWorld after changing Pos, Rot, or Scale.
type Object3D struct {
	Mesh *mesh.Mesh

	Pos   lin.V3
	Rot   lin.Quat
	Scale lin.V3

	MWorld *lin.Mat4
}

// NewObject3D returns an object at the origin, unrotated, unit scale.
func NewObject3D(m *mesh.Mesh) *Object3D {
	return &Object3D{
		Mesh:   m,
		Rot:    lin.Quat{W: 1},
		Scale:  lin.V3{X: 1, Y: 1, Z: 1},
		MWorld: lin.NewMat4I(),
	}
}

// UpdateWorld recomputes MWorld = T(Pos) * R(Rot) * S(Scale). Call this
// any time Pos, Rot, or Scale changes; the scene driver does not call
// it automatically.
func (o *Object3D) UpdateWorld() {
	o.MWorld.World(&o.Pos, &o.Rot, &o.Scale)
}

// Scene is an ordered collection of objects, drawn in insertion order.
type Scene struct {
	Objects []*Object3D
}

// Add appends obj to the scene.
func (s *Scene) Add(obj *Object3D) {
	s.Objects = append(s.Objects, obj)
}

// Draw iterates the scene's objects in order. For each object it sets
// d.MWorld = d.MCamera * object.MWorld, then submits the object's mesh
// to the device's installed drawer.
func Draw[U any, A any, V raster.Varying[V]](d *raster.Device[U, A, V], s *Scene) {
	for _, obj := range s.Objects {
		d.MWorld.Mult(d.MCamera, obj.MWorld)
		d.DrawMesh(obj.Mesh)
	}
}
