package grid

import "gridkit/pkg/geom"

// Fixed is an owned grid whose capacity is locked at construction.
// It has no resize path; everything else matches Dense.
type Fixed[T any] struct {
	extents geom.Vec
	data    []T
}

// NewFixed constructs a grid of zero-valued cells.
func NewFixed[T any](extents geom.Vec) *Fixed[T] {
	return &Fixed[T]{extents: extents, data: make([]T, extents.Area())}
}

// NewFixedOf constructs a grid with every cell set to v.
func NewFixedOf[T any](extents geom.Vec, v T) *Fixed[T] {
	g := NewFixed[T](extents)
	for i := range g.data {
		g.data[i] = v
	}
	return g
}

// Bounds returns the grid bounds, anchored at the zero origin.
func (g *Fixed[T]) Bounds() geom.Bounds { return geom.OfExtents(g.extents) }

// At returns the cell at pt.
func (g *Fixed[T]) At(pt geom.Vec) T { return g.data[toLinear(g.extents, pt)] }

// Set stores v at pt.
func (g *Fixed[T]) Set(pt geom.Vec, v T) { g.data[toLinear(g.extents, pt)] = v }

// Cells exposes the row-major backing slice.
func (g *Fixed[T]) Cells() []T { return g.data }

// View returns a window over this grid.
func (g *Fixed[T]) View(bounds geom.Bounds) *View[T] { return NewView[T](g, bounds) }
