package grid

import (
	"testing"

	"gridkit/pkg/geom"
)

func collect(c Cursor) []geom.Vec {
	var pts []geom.Vec
	for ; !c.Done(); c = c.Next() {
		pts = append(pts, c.Pt())
	}
	return pts
}

func TestCursorColumnMajorOrder(t *testing.T) {
	got := collect(NewCursor(geom.Vec{X: 2, Y: 3}, ColumnMajor))
	want := []geom.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}}

	if len(got) != len(want) {
		t.Fatalf("visited %d points, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("step %d visited %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestCursorRowMajorOrder(t *testing.T) {
	got := collect(NewCursor(geom.Vec{X: 2, Y: 3}, RowMajor))
	want := []geom.Vec{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}}

	if len(got) != len(want) {
		t.Fatalf("visited %d points, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("step %d visited %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestCursorVisitsEveryCellOnce(t *testing.T) {
	ext := geom.Vec{X: 7, Y: 5}
	seen := map[geom.Vec]int{}
	for c := NewCursor(ext, ColumnMajor); !c.Done(); c = c.Next() {
		seen[c.Pt()]++
	}
	if len(seen) != ext.Area() {
		t.Fatalf("visited %d distinct points, expected %d", len(seen), ext.Area())
	}
	for pt, n := range seen {
		if n != 1 {
			t.Fatalf("point %v visited %d times", pt, n)
		}
	}
}

func TestCursorRestartable(t *testing.T) {
	g := NewDenseOf[int](geom.Vec{X: 4, Y: 3}, 1)

	a, b := Begin[int](g), Begin[int](g)
	for !a.Done() {
		if a != b {
			t.Fatalf("cursors diverged: %v vs %v", a.Pt(), b.Pt())
		}
		a, b = a.Next(), b.Next()
	}
	if !b.Done() {
		t.Fatal("second cursor not exhausted with the first")
	}
}

func TestCursorDegenerateExtents(t *testing.T) {
	for _, ext := range []geom.Vec{{X: 0, Y: 0}, {X: 0, Y: 5}, {X: 5, Y: 0}, {X: -1, Y: 5}} {
		if !NewCursor(ext, ColumnMajor).Done() {
			t.Errorf("column-major cursor over %v not immediately done", ext)
		}
		if !NewCursor(ext, RowMajor).Done() {
			t.Errorf("row-major cursor over %v not immediately done", ext)
		}
	}
}
