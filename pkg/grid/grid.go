// Package grid provides composable 2D grid containers: owned dense
// buffers, externally mapped buffers, fixed-capacity grids, sparse
// lazily-tiled grids, and zero-copy views over any of them.
//
// Every container satisfies the Grid interface, and all generic
// operations (Fill, Copy, AddTo, Equal, ...) are defined once against
// that interface. Coordinates passed to At and Set are local to the
// receiver: each implementation adds its own origin before resolving
// storage, so nested views telescope additively without copying.
//
// Access is unchecked. Callers must verify coordinates with
// Bounds().Within beforehand; a violation surfaces as a runtime
// bounds panic. Containers are not safe for concurrent use when any
// writer is active; lazy tile allocation counts as a write.
package grid

import (
	"golang.org/x/exp/constraints"

	"gridkit/pkg/geom"
)

// Grid is the capability set every container and view satisfies.
type Grid[T any] interface {
	// Bounds returns the valid-index region of the grid.
	Bounds() geom.Bounds

	// At returns the cell value at a grid-local coordinate.
	At(pt geom.Vec) T

	// Set stores a cell value at a grid-local coordinate.
	Set(pt geom.Vec, v T)
}

// Numeric constrains cell types usable with elementwise and scalar
// arithmetic.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// toLinear maps a local coordinate onto a row-major backing buffer.
func toLinear(extents geom.Vec, pt geom.Vec) int {
	return extents.X*pt.Y + pt.X
}
