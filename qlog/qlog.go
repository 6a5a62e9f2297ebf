// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package qlog supplies the structured logger shared by the asset loaders
// and the render pipeline. Both only ever log non-fatal, recoverable
// conditions (an unrecognized OBJ record type, DrawMesh called with no
// drawer installed) -- nothing in this module calls a logger on the happy
// path. Degenerate primitives skipped during rasterization are not logged.
package qlog

import "go.uber.org/zap"

// L is the package-wide logger. It is replaced wholesale in tests via Use
// so that assertions can inspect emitted warnings without parsing stderr.
var L = zap.Must(zap.NewProduction()).Sugar()

// Use installs l as the package-wide logger and returns the previous one
// so callers can restore it, typically with defer.
func Use(l *zap.SugaredLogger) (prev *zap.SugaredLogger) {
	prev, L = L, l
	return prev
}
