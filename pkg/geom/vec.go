// Package geom provides the integer vector and bounds primitives the
// grid containers are built on.
package geom

// Vec is a 2D integer vector. It doubles as an absolute cell index, a
// displacement, and an extent (width, height) depending on context.
type Vec struct {
	X, Y int
}

// Add returns the componentwise sum v + o.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns the componentwise difference v - o.
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Mul returns the componentwise product v * o.
func (v Vec) Mul(o Vec) Vec { return Vec{v.X * o.X, v.Y * o.Y} }

// Div returns the componentwise quotient v / o.
func (v Vec) Div(o Vec) Vec { return Vec{v.X / o.X, v.Y / o.Y} }

// Abs returns the componentwise absolute value.
func (v Vec) Abs() Vec {
	if v.X < 0 {
		v.X = -v.X
	}
	if v.Y < 0 {
		v.Y = -v.Y
	}
	return v
}

// AllGE reports whether both components of v are >= those of o.
func (v Vec) AllGE(o Vec) bool { return v.X >= o.X && v.Y >= o.Y }

// AllLT reports whether both components of v are < those of o.
func (v Vec) AllLT(o Vec) bool { return v.X < o.X && v.Y < o.Y }

// AllLE reports whether both components of v are <= those of o.
func (v Vec) AllLE(o Vec) bool { return v.X <= o.X && v.Y <= o.Y }

// Area returns X*Y, the cell count of an extent.
func (v Vec) Area() int { return v.X * v.Y }
