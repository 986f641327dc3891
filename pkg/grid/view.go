package grid

import "gridkit/pkg/geom"

// View is a non-owning window into a parent grid. It shares the
// parent's cell storage: reads and writes through the view alias the
// parent. The view's bounds origin is interpreted in the parent's
// local coordinate space, so a view of a view offsets additively.
//
// A view remains usable for the parent's lifetime, but resizing the
// parent invalidates it logically.
type View[T any] struct {
	parent Grid[T]
	bounds geom.Bounds
}

// NewView returns a view of parent covering bounds.
func NewView[T any](parent Grid[T], bounds geom.Bounds) *View[T] {
	return &View[T]{parent: parent, bounds: bounds}
}

// FullView returns a view spanning the whole of parent.
func FullView[T any](parent Grid[T]) *View[T] {
	return &View[T]{parent: parent, bounds: geom.OfExtents(parent.Bounds().Extents)}
}

// Bounds returns the view's window bounds.
func (v *View[T]) Bounds() geom.Bounds { return v.bounds }

// At returns the cell at a view-local coordinate.
func (v *View[T]) At(pt geom.Vec) T {
	return v.parent.At(pt.Add(v.bounds.Origin))
}

// Set stores a cell at a view-local coordinate.
func (v *View[T]) Set(pt geom.Vec, val T) {
	v.parent.Set(pt.Add(v.bounds.Origin), val)
}

// View returns a nested view; bounds are relative to this view.
func (v *View[T]) View(bounds geom.Bounds) *View[T] {
	return NewView[T](v, bounds)
}
