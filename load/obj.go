// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package load

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/galvlogic/qpixel/math/lin"
	"github.com/galvlogic/qpixel/mesh"
	"github.com/galvlogic/qpixel/qlog"
)

// Obj reads a Wavefront OBJ file containing a single triangulated mesh.
//    https://en.wikipedia.org/wiki/Wavefront_.obj_file#File_format
// Supported records are "v" (position), "vn" (normal), "vt" (texture
// coordinate), and "f" (triangular face, slash-separated v/vt/vn corners).
// Quads and n-gons are not supported -- faces are expected to already be
// triangles. Indices are kept 1-based, matching the file, exactly as the
// mesh type stores them.
//
// The file is read twice: once to count records and size the mesh
// arrays, once to fill them. This mirrors the two-pass strategy of the
// format's original C loader and avoids the repeated slice growth that a
// naive append-only reader would incur on large meshes.
func Obj(path string) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load.Obj: %w", err)
	}
	defer f.Close()

	counts, err := objCounts(f)
	if err != nil {
		return nil, fmt.Errorf("load.Obj: counting %s: %w", path, err)
	}
	if counts.vertices == 0 || counts.faces == 0 {
		return nil, fmt.Errorf("load.Obj: %s has no vertex or face data", path)
	}

	if _, err := f.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("load.Obj: %w", err)
	}

	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	m := mesh.New(name)
	m.Vertices = make([]lin.V3, 0, counts.vertices)
	m.Normals = make([]lin.V3, 0, counts.normals)
	m.Texcoords = make([]lin.V2, 0, counts.texcoords)
	m.NumFaces = counts.faces
	if counts.texcoords > 0 {
		m.Kind |= mesh.Texcoord
	}
	if counts.normals > 0 {
		m.Kind |= mesh.Normal
	}
	m.VertexIdx = make([]uint32, 0, counts.faces*3)
	if m.Kind.Has(mesh.Normal) {
		m.NormalIdx = make([]uint32, 0, counts.faces*3)
	}
	if m.Kind.Has(mesh.Texcoord) {
		m.TexcoordIdx = make([]uint32, 0, counts.faces*3)
	}

	if err := objFill(f, m); err != nil {
		return nil, fmt.Errorf("load.Obj: filling %s: %w", path, err)
	}
	return m, nil
}

type objCounter struct {
	vertices, normals, texcoords, faces uint32
}

func objCounts(r *os.File) (objCounter, error) {
	var c objCounter
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		switch objRecordType(scanner.Text()) {
		case "v":
			c.vertices++
		case "vn":
			c.normals++
		case "vt":
			c.texcoords++
		case "f":
			c.faces++
		}
	}
	return c, scanner.Err()
}

func objRecordType(line string) string {
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}
	if i := strings.IndexByte(line, ' '); i >= 0 {
		return line[:i]
	}
	return line
}

func objFill(r *os.File, m *mesh.Mesh) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := objVec3(fields[1:])
			if err != nil {
				return fmt.Errorf("line %d: vertex: %w", lineNo, err)
			}
			m.Vertices = append(m.Vertices, v)
		case "vn":
			n, err := objVec3(fields[1:])
			if err != nil {
				return fmt.Errorf("line %d: normal: %w", lineNo, err)
			}
			m.Normals = append(m.Normals, n)
		case "vt":
			t, err := objVec2(fields[1:])
			if err != nil {
				return fmt.Errorf("line %d: texcoord: %w", lineNo, err)
			}
			m.Texcoords = append(m.Texcoords, t)
		case "f":
			if err := objFace(fields[1:], m); err != nil {
				return fmt.Errorf("line %d: face: %w", lineNo, err)
			}
		case "o", "s", "g", "mtllib", "usemtl", "#":
			// name, smoothing group, polygon group, and material records
			// are not part of the render pipeline's mesh model.
		default:
			qlog.L.Debugw("load.Obj: ignoring unrecognized record", "line", lineNo, "record", fields[0])
		}
	}
	return scanner.Err()
}

func objVec3(fields []string) (lin.V3, error) {
	if len(fields) < 3 {
		return lin.V3{}, fmt.Errorf("want 3 components, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return lin.V3{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return lin.V3{}, err
	}
	z, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return lin.V3{}, err
	}
	return lin.V3{X: x, Y: y, Z: z}, nil
}

func objVec2(fields []string) (lin.V2, error) {
	if len(fields) < 2 {
		return lin.V2{}, fmt.Errorf("want 2 components, got %d", len(fields))
	}
	u, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return lin.V2{}, err
	}
	v, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return lin.V2{}, err
	}
	return lin.V2{X: u, Y: v}, nil
}

// objFace appends one triangle's worth of corner indices to m. Each field
// is "v", "v/vt", or "v/vt/vn"; the vt slot may also be empty ("v//vn").
// Indices are appended exactly as written -- 1-based.
func objFace(fields []string, m *mesh.Mesh) error {
	if len(fields) != 3 {
		return fmt.Errorf("expected a triangle (3 corners), got %d -- quads/n-gons are not supported", len(fields))
	}
	for _, corner := range fields {
		parts := strings.Split(corner, "/")
		v, err := strconv.ParseUint(parts[0], 10, 32)
		if err != nil {
			return fmt.Errorf("bad vertex index %q: %w", corner, err)
		}
		m.VertexIdx = append(m.VertexIdx, uint32(v))

		if m.Kind.Has(mesh.Texcoord) {
			if len(parts) < 2 || parts[1] == "" {
				return fmt.Errorf("face %q missing texture coordinate index", corner)
			}
			t, err := strconv.ParseUint(parts[1], 10, 32)
			if err != nil {
				return fmt.Errorf("bad texcoord index %q: %w", corner, err)
			}
			m.TexcoordIdx = append(m.TexcoordIdx, uint32(t))
		}
		if m.Kind.Has(mesh.Normal) {
			if len(parts) < 3 || parts[2] == "" {
				return fmt.Errorf("face %q missing normal index", corner)
			}
			n, err := strconv.ParseUint(parts[2], 10, 32)
			if err != nil {
				return fmt.Errorf("bad normal index %q: %w", corner, err)
			}
			m.NormalIdx = append(m.NormalIdx, uint32(n))
		}
	}
	return nil
}
