package grid

import "gridkit/pkg/geom"

// Dense is an owned, heap-backed grid with runtime extents. Storage
// comes from a pluggable Allocator and is row-major
// (extents.X*pt.Y + pt.X).
type Dense[T any] struct {
	extents geom.Vec
	data    []T
	alloc   Allocator[T]
}

// NewDense allocates a grid of zero-valued cells.
func NewDense[T any](extents geom.Vec) *Dense[T] {
	return NewDenseIn(extents, *new(T), MakeAllocator[T]())
}

// NewDenseOf allocates a grid with every cell set to v.
func NewDenseOf[T any](extents geom.Vec, v T) *Dense[T] {
	return NewDenseIn(extents, v, MakeAllocator[T]())
}

// NewDenseIn allocates a grid with every cell set to v, drawing
// storage from alloc.
func NewDenseIn[T any](extents geom.Vec, v T, alloc Allocator[T]) *Dense[T] {
	g := &Dense[T]{extents: extents, alloc: alloc}
	g.data = construct(alloc, extents, v)
	return g
}

func construct[T any](alloc Allocator[T], extents geom.Vec, v T) []T {
	data := alloc(extents.Area())
	for i := range data {
		data[i] = v
	}
	return data
}

// Bounds returns the grid bounds, anchored at the zero origin.
func (g *Dense[T]) Bounds() geom.Bounds { return geom.OfExtents(g.extents) }

// At returns the cell at pt.
func (g *Dense[T]) At(pt geom.Vec) T { return g.data[toLinear(g.extents, pt)] }

// Set stores v at pt.
func (g *Dense[T]) Set(pt geom.Vec, v T) { g.data[toLinear(g.extents, pt)] = v }

// Cells exposes the row-major backing slice.
func (g *Dense[T]) Cells() []T { return g.data }

// View returns a window over this grid.
func (g *Dense[T]) View(bounds geom.Bounds) *View[T] { return NewView[T](g, bounds) }

// Resize reallocates the grid with zero-valued cells. Old contents
// are discarded; existing views into the grid are invalidated.
func (g *Dense[T]) Resize(extents geom.Vec) {
	g.ResizeOf(extents, *new(T))
}

// ResizeOf reallocates the grid with every cell set to v. Old
// contents are discarded.
func (g *Dense[T]) ResizeOf(extents geom.Vec, v T) {
	g.extents = extents
	g.data = construct(g.alloc, extents, v)
}
