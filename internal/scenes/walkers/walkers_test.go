package walkers

import (
	"testing"

	"gridkit/pkg/grid"
)

func TestResetStartsEmpty(t *testing.T) {
	w := New(80, 80, 20, 4)
	w.Reset(7)

	if got := w.Field().Active(); got != 0 {
		t.Fatalf("Active = %d after reset, expected 0", got)
	}
	for c := grid.Begin[uint8](w.Grid()); !c.Done(); c = c.Next() {
		if got := w.Grid().At(c.Pt()); got != 0 {
			t.Fatalf("cell %v = %d after reset, expected 0", c.Pt(), got)
		}
	}
}

func TestStepAllocatesVisitedTilesOnly(t *testing.T) {
	w := New(80, 80, 20, 4)
	w.Reset(7)

	w.Step()

	active := w.Field().Active()
	if active == 0 {
		t.Fatal("no tiles allocated after a step that wrote trails")
	}
	if active > 4 {
		t.Fatalf("Active = %d, four walkers can touch at most four tiles per step", active)
	}
}

func TestTileGrowthMonotone(t *testing.T) {
	w := New(80, 80, 20, 4)
	w.Reset(7)

	prev := 0
	for i := 0; i < 50; i++ {
		w.Step()
		active := w.Field().Active()
		if active < prev {
			t.Fatalf("Active dropped from %d to %d at step %d; tiles are never evicted", prev, active, i)
		}
		prev = active
	}
}

func TestDeterministicAcrossResets(t *testing.T) {
	a := New(80, 80, 20, 4)
	b := New(80, 80, 20, 4)
	a.Reset(42)
	b.Reset(42)

	for i := 0; i < 20; i++ {
		a.Step()
		b.Step()
	}

	if !grid.Equal[uint8](a.Grid(), b.Grid()) {
		t.Fatal("same seed produced different trails")
	}
	if a.Field().Active() != b.Field().Active() {
		t.Fatalf("active tiles diverged: %d vs %d", a.Field().Active(), b.Field().Active())
	}
}

func TestWalkersStayInBounds(t *testing.T) {
	w := New(40, 40, 20, 8)
	w.Reset(3)

	bounds := w.Bounds()
	for i := 0; i < 200; i++ {
		w.Step()
		for _, pt := range w.pts {
			if !bounds.Within(pt) {
				t.Fatalf("walker escaped to %v at step %d", pt, i)
			}
		}
	}
}
