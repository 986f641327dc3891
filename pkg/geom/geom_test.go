package geom

import "testing"

func TestVecArithmetic(t *testing.T) {
	a := Vec{3, -4}
	b := Vec{2, 2}

	if got := a.Add(b); got != (Vec{5, -2}) {
		t.Fatalf("Add = %v, expected {5 -2}", got)
	}
	if got := a.Sub(b); got != (Vec{1, -6}) {
		t.Fatalf("Sub = %v, expected {1 -6}", got)
	}
	if got := a.Mul(b); got != (Vec{6, -8}) {
		t.Fatalf("Mul = %v, expected {6 -8}", got)
	}
	if got := (Vec{7, 9}).Div(Vec{2, 3}); got != (Vec{3, 3}) {
		t.Fatalf("Div = %v, expected {3 3}", got)
	}
	if got := a.Abs(); got != (Vec{3, 4}) {
		t.Fatalf("Abs = %v, expected {3 4}", got)
	}
	if got := (Vec{20, 10}).Area(); got != 200 {
		t.Fatalf("Area = %d, expected 200", got)
	}
}

func TestVecPredicates(t *testing.T) {
	cases := []struct {
		a, b       Vec
		ge, lt, le bool
	}{
		{Vec{1, 1}, Vec{0, 0}, true, false, false},
		{Vec{0, 0}, Vec{0, 0}, true, false, true},
		{Vec{0, 1}, Vec{1, 1}, false, false, true},
		{Vec{0, 0}, Vec{1, 1}, false, true, true},
		{Vec{2, 0}, Vec{1, 1}, false, false, false},
	}
	for _, c := range cases {
		if got := c.a.AllGE(c.b); got != c.ge {
			t.Errorf("%v.AllGE(%v) = %v, expected %v", c.a, c.b, got, c.ge)
		}
		if got := c.a.AllLT(c.b); got != c.lt {
			t.Errorf("%v.AllLT(%v) = %v, expected %v", c.a, c.b, got, c.lt)
		}
		if got := c.a.AllLE(c.b); got != c.le {
			t.Errorf("%v.AllLE(%v) = %v, expected %v", c.a, c.b, got, c.le)
		}
	}
}

func TestBoundsWithin(t *testing.T) {
	b := OfExtents(Vec{20, 10})

	inside := []Vec{{0, 0}, {1, 1}, {19, 9}}
	for _, pt := range inside {
		if !b.Within(pt) {
			t.Errorf("Within(%v) = false, expected true", pt)
		}
	}
	outside := []Vec{{20, 9}, {19, 10}, {21, 11}, {-1, 0}, {0, -1}}
	for _, pt := range outside {
		if b.Within(pt) {
			t.Errorf("Within(%v) = true, expected false", pt)
		}
	}
}

func TestBoundsWithinOffsetOrigin(t *testing.T) {
	b := NewBounds(Vec{-2, -2}, Vec{4, 4})

	if !b.Within(Vec{-2, -2}) {
		t.Fatal("origin corner must be within bounds")
	}
	if !b.Within(Vec{1, 1}) {
		t.Fatal("interior point must be within bounds")
	}
	if b.Within(Vec{2, 2}) {
		t.Fatal("origin+extents corner must be outside bounds")
	}
}

func TestBoundsCenterEmpty(t *testing.T) {
	b := NewBounds(Vec{2, 2}, Vec{4, 6})
	if got := b.Center(); got != (Vec{4, 5}) {
		t.Fatalf("Center = %v, expected {4 5}", got)
	}
	if b.Empty() {
		t.Fatal("non-zero extents reported empty")
	}
	if !OfExtents(Vec{}).Empty() {
		t.Fatal("zero extents not reported empty")
	}
}

func TestBoundsOverlaps(t *testing.T) {
	a := OfExtents(Vec{10, 10})
	if !a.Overlaps(NewBounds(Vec{5, 5}, Vec{10, 10})) {
		t.Fatal("intersecting bounds reported disjoint")
	}
	if a.Overlaps(NewBounds(Vec{100, 100}, Vec{10, 10})) {
		t.Fatal("distant bounds reported overlapping")
	}
}

func TestBoundsEquality(t *testing.T) {
	a := NewBounds(Vec{1, 2}, Vec{3, 4})
	b := NewBounds(Vec{1, 2}, Vec{3, 4})
	if a != b {
		t.Fatal("identical bounds compare unequal")
	}
	if a == NewBounds(Vec{1, 2}, Vec{3, 5}) {
		t.Fatal("different extents compare equal")
	}
}
