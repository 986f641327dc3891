// Package walkers implements a random-walk occupancy scene on a
// sparse tiled grid. Walkers leave an intensity trail; only tiles they
// actually visit are ever allocated.
package walkers

import (
	"gridkit/internal/scene"
	"gridkit/pkg/geom"
	"gridkit/pkg/grid"
)

var steps = []geom.Vec{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}

// Walkers tracks a handful of agents wandering a tiled field.
type Walkers struct {
	field *grid.Tiled[uint8]
	tile  geom.Vec
	pts   []geom.Vec
	rng   *scene.RNG
}

// New returns a walkers scene over a w×h field split into square
// tiles of the given side.
func New(w, h, tile, count int) *Walkers {
	wk := &Walkers{
		field: grid.NewTiled[uint8](geom.Vec{X: w, Y: h}, geom.Vec{X: tile, Y: tile}, 0),
		tile:  geom.Vec{X: tile, Y: tile},
		pts:   make([]geom.Vec, count),
	}
	return wk
}

// Name returns the scene identifier.
func (w *Walkers) Name() string { return "walkers" }

// Bounds returns the field bounds.
func (w *Walkers) Bounds() geom.Bounds { return w.field.Bounds() }

// Grid exposes the occupancy field.
func (w *Walkers) Grid() grid.Grid[uint8] { return w.field }

// Field exposes the tiled field for tile-level statistics.
func (w *Walkers) Field() *grid.Tiled[uint8] { return w.field }

// Reset rebuilds the field and scatters walkers around the center.
func (w *Walkers) Reset(seed int64) {
	ext := w.field.Bounds().Extents
	w.field = grid.NewTiled[uint8](ext, w.tile, 0)
	w.rng = scene.NewRNG(seed)

	center := w.field.Bounds().Center()
	spread := w.tile.X
	for i := range w.pts {
		w.pts[i] = w.clamp(geom.Vec{X: center.X + w.rng.IntN(2*spread+1) - spread, Y: center.Y + w.rng.IntN(2*spread+1) - spread})
	}
}

// Step moves every walker one cell and deepens its trail.
func (w *Walkers) Step() {
	if w.rng == nil {
		w.Reset(0)
	}
	for i, pt := range w.pts {
		pt = w.clamp(pt.Add(steps[w.rng.IntN(len(steps))]))
		w.pts[i] = pt

		v := w.field.At(pt)
		if v < 255 {
			v++
		}
		w.field.Set(pt, v)
	}
}

func (w *Walkers) clamp(pt geom.Vec) geom.Vec {
	ext := w.field.Bounds().Extents
	if pt.X < 0 {
		pt.X = 0
	}
	if pt.Y < 0 {
		pt.Y = 0
	}
	if pt.X >= ext.X {
		pt.X = ext.X - 1
	}
	if pt.Y >= ext.Y {
		pt.Y = ext.Y - 1
	}
	return pt
}

func init() {
	scene.Register("walkers", func(cfg map[string]string) scene.Scene {
		w := scene.IntOption(cfg, "width", 160)
		h := scene.IntOption(cfg, "height", 120)
		tile := scene.IntOption(cfg, "tile", 20)
		count := scene.IntOption(cfg, "count", 8)
		return New(w, h, tile, count)
	})
}
