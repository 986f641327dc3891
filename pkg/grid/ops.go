package grid

// Generic operations over the Grid capability set. Elementwise
// operations iterate both operands in lock step and stop at the
// shorter operand; extent agreement is a caller precondition, not a
// checked error.

// Fill assigns v to every cell of g.
func Fill[T any](g Grid[T], v T) {
	for c := Begin(g); !c.Done(); c = c.Next() {
		g.Set(c.Pt(), v)
	}
}

// Copy assigns src's cells into dst in lock step.
func Copy[T any](dst, src Grid[T]) {
	d, s := Begin(dst), Begin(src)
	for !d.Done() && !s.Done() {
		dst.Set(d.Pt(), src.At(s.Pt()))
		d, s = d.Next(), s.Next()
	}
}

// AddTo accumulates src's cells into dst elementwise.
func AddTo[T Numeric](dst, src Grid[T]) {
	d, s := Begin(dst), Begin(src)
	for !d.Done() && !s.Done() {
		dst.Set(d.Pt(), dst.At(d.Pt())+src.At(s.Pt()))
		d, s = d.Next(), s.Next()
	}
}

// SubFrom subtracts src's cells from dst elementwise.
func SubFrom[T Numeric](dst, src Grid[T]) {
	d, s := Begin(dst), Begin(src)
	for !d.Done() && !s.Done() {
		dst.Set(d.Pt(), dst.At(d.Pt())-src.At(s.Pt()))
		d, s = d.Next(), s.Next()
	}
}

// Scale multiplies every cell of g by k.
func Scale[T Numeric](g Grid[T], k T) {
	for c := Begin(g); !c.Done(); c = c.Next() {
		g.Set(c.Pt(), g.At(c.Pt())*k)
	}
}

// Divide divides every cell of g by k.
func Divide[T Numeric](g Grid[T], k T) {
	for c := Begin(g); !c.Done(); c = c.Next() {
		g.Set(c.Pt(), g.At(c.Pt())/k)
	}
}

// Equal reports whether a and b hold equal cells, comparing in lock
// step and short-circuiting on the first mismatch. Comparison covers
// the shorter operand's traversal.
func Equal[T comparable](a, b Grid[T]) bool {
	ca, cb := Begin(a), Begin(b)
	for !ca.Done() && !cb.Done() {
		if a.At(ca.Pt()) != b.At(cb.Pt()) {
			return false
		}
		ca, cb = ca.Next(), cb.Next()
	}
	return true
}
