// Package life implements Conway's Game of Life on a dense grid with
// toroidal wrapping.
package life

import (
	"gridkit/internal/scene"
	"gridkit/pkg/geom"
	"gridkit/pkg/grid"
)

// Life double-buffers two dense grids and swaps them every step.
type Life struct {
	cur *grid.Dense[uint8]
	nxt *grid.Dense[uint8]
}

// New returns a Life scene with the provided dimensions.
func New(w, h int) *Life {
	ext := geom.Vec{X: w, Y: h}
	return &Life{
		cur: grid.NewDense[uint8](ext),
		nxt: grid.NewDense[uint8](ext),
	}
}

// Name returns the scene identifier.
func (l *Life) Name() string { return "life" }

// Bounds returns the board bounds.
func (l *Life) Bounds() geom.Bounds { return l.cur.Bounds() }

// Grid exposes the current generation.
func (l *Life) Grid() grid.Grid[uint8] { return l.cur }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	rng := scene.NewRNG(seed)
	for c := grid.Begin[uint8](l.cur); !c.Done(); c = c.Next() {
		v := uint8(0)
		if rng.Bool() {
			v = 1
		}
		l.cur.Set(c.Pt(), v)
	}
}

// Step advances the board by one generation.
func (l *Life) Step() {
	ext := l.cur.Bounds().Extents
	for c := grid.Begin[uint8](l.cur); !c.Done(); c = c.Next() {
		pt := c.Pt()
		neighbors := 0
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				n := geom.Vec{X: (pt.X + dx + ext.X) % ext.X, Y: (pt.Y + dy + ext.Y) % ext.Y}

				neighbors += int(l.cur.At(n))
			}
		}
		alive := l.cur.At(pt) == 1
		v := uint8(0)
		if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
			v = 1
		}
		l.nxt.Set(pt, v)
	}
	l.cur, l.nxt = l.nxt, l.cur
}

func init() {
	scene.Register("life", func(cfg map[string]string) scene.Scene {
		w := scene.IntOption(cfg, "width", 160)
		h := scene.IntOption(cfg, "height", 120)
		return New(w, h)
	})
}
