// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package load turns on-disk assets (triangle meshes, true-color images)
// into the in-memory shapes the render pipeline consumes. Each loader is a
// thin, format-specific front end that produces a mesh.Mesh or an Image;
// none of them know anything about rendering.
package load

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/galvlogic/qpixel/mesh"
)

// Mesh loads the mesh at path, dispatching on the file extension. ".obj"
// is handled by this package directly; ".gltf" and ".glb" are delegated to
// the gltf-backed loader. An unrecognized extension or a read failure
// returns a non-nil error -- the Go equivalent of the C original's sentinel
// NULL return, but one that also explains what went wrong.
func Mesh(path string) (*mesh.Mesh, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		return Obj(path)
	case ".gltf", ".glb":
		return GLTF(path)
	default:
		return nil, fmt.Errorf("load: unsupported mesh extension %q", ext)
	}
}
