// SPDX-License-Identifier: MIT
// Package: meshroute/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Geometry problems surface as mesh.GeometryError values
//     (errors.Is(err, mesh.ErrGeometry) holds for all of them).
//   • Builder-specific conditions use the sentinels below.
//   • Context is attached with %w; callers branch with errors.Is.

package builder

import (
	"errors"
	"fmt"
)

// ErrNilMesh indicates FromMesh or Rebuild received a nil mesh.
var ErrNilMesh = errors.New("builder: mesh is nil")

// ErrNilGraph indicates Rebuild received a nil target graph.
var ErrNilGraph = errors.New("builder: graph is nil")

// ErrBadWeight indicates the configured WeightFn produced a negative or NaN
// weight for some edge.
var ErrBadWeight = errors.New("builder: weight function returned an invalid weight")

// Method tokens prefixed to wrapped errors.
const (
	methodFromMesh = "FromMesh"
	methodRebuild  = "Rebuild"
)

// builderErrorf prefixes err with the public entry point that produced it.
func builderErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
