package grid

import "gridkit/pkg/geom"

// Order selects the traversal order of a Cursor.
type Order int

const (
	// ColumnMajor visits X fastest: x increments until it reaches the
	// extent, then resets to 0 and y increments. This matches the
	// row-major linear layout of the backing buffers, so a
	// column-major walk touches dense storage sequentially.
	ColumnMajor Order = iota

	// RowMajor is the transpose: Y varies fastest.
	RowMajor
)

// Cursor walks every local coordinate of a grid exactly once.
// Cursors are values: Next returns the advanced cursor, and two
// cursors over the same extents compare equal with == whenever they
// sit at the same step. Termination is a structural check against the
// extents rather than a stored terminal coordinate.
type Cursor struct {
	extents geom.Vec
	pt      geom.Vec
	order   Order
}

// NewCursor starts a traversal over the given extents.
func NewCursor(extents geom.Vec, order Order) Cursor {
	return Cursor{extents: extents, order: order}
}

// Begin starts a column-major traversal over g's extents.
func Begin[T any](g Grid[T]) Cursor {
	return NewCursor(g.Bounds().Extents, ColumnMajor)
}

// BeginOrder starts a traversal over g's extents in the given order.
func BeginOrder[T any](g Grid[T], order Order) Cursor {
	return NewCursor(g.Bounds().Extents, order)
}

// Pt returns the current local coordinate.
func (c Cursor) Pt() geom.Vec { return c.pt }

// Done reports whether the traversal is exhausted. Degenerate extents
// (either component <= 0) are exhausted from the start.
func (c Cursor) Done() bool {
	if c.order == RowMajor {
		return c.pt.X >= c.extents.X || c.extents.Y <= 0
	}
	return c.pt.Y >= c.extents.Y || c.extents.X <= 0
}

// Next returns the cursor advanced by one step.
func (c Cursor) Next() Cursor {
	if c.order == RowMajor {
		c.pt.Y++
		if c.pt.Y == c.extents.Y {
			c.pt.Y = 0
			c.pt.X++
		}
		return c
	}
	c.pt.X++
	if c.pt.X == c.extents.X {
		c.pt.X = 0
		c.pt.Y++
	}
	return c
}
