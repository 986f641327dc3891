package grid

import "gridkit/pkg/geom"

// Mapped is a grid over caller-owned memory. It never allocates or
// frees: the caller supplies a row-major cell slice with capacity for
// at least extents.Area() cells and keeps ownership of it.
type Mapped[T any] struct {
	extents geom.Vec
	data    []T
}

// NewMapped wraps cells as a grid of the given extents.
func NewMapped[T any](extents geom.Vec, cells []T) *Mapped[T] {
	return &Mapped[T]{extents: extents, data: cells}
}

// Bounds returns the grid bounds, anchored at the zero origin.
func (g *Mapped[T]) Bounds() geom.Bounds { return geom.OfExtents(g.extents) }

// At returns the cell at pt.
func (g *Mapped[T]) At(pt geom.Vec) T { return g.data[toLinear(g.extents, pt)] }

// Set stores v at pt.
func (g *Mapped[T]) Set(pt geom.Vec, v T) { g.data[toLinear(g.extents, pt)] = v }

// Cells exposes the mapped slice.
func (g *Mapped[T]) Cells() []T { return g.data }

// View returns a window over this grid.
func (g *Mapped[T]) View(bounds geom.Bounds) *View[T] { return NewView[T](g, bounds) }

// Resize updates the logical extents. The mapped memory is untouched;
// the caller must ensure it covers the new extents.
func (g *Mapped[T]) Resize(extents geom.Vec) {
	g.extents = extents
}

// ResizeFill updates the logical extents and sets every cell within
// them to v.
func (g *Mapped[T]) ResizeFill(extents geom.Vec, v T) {
	g.extents = extents
	Fill[T](g, v)
}

// FixedMapped is a grid over caller-owned memory whose extents are
// locked at construction.
type FixedMapped[T any] struct {
	extents geom.Vec
	data    []T
}

// NewFixedMapped wraps cells as a non-resizable grid.
func NewFixedMapped[T any](extents geom.Vec, cells []T) *FixedMapped[T] {
	return &FixedMapped[T]{extents: extents, data: cells}
}

// Bounds returns the grid bounds, anchored at the zero origin.
func (g *FixedMapped[T]) Bounds() geom.Bounds { return geom.OfExtents(g.extents) }

// At returns the cell at pt.
func (g *FixedMapped[T]) At(pt geom.Vec) T { return g.data[toLinear(g.extents, pt)] }

// Set stores v at pt.
func (g *FixedMapped[T]) Set(pt geom.Vec, v T) { g.data[toLinear(g.extents, pt)] = v }

// Cells exposes the mapped slice.
func (g *FixedMapped[T]) Cells() []T { return g.data }

// View returns a window over this grid.
func (g *FixedMapped[T]) View(bounds geom.Bounds) *View[T] { return NewView[T](g, bounds) }
