package grid

import "gridkit/pkg/geom"

// Tile is one slot of a Tiled grid: a fixed dense sub-grid plus its
// origin in the parent's coordinate space. The sub-grid is nil until
// the first write lands inside the tile's region.
type Tile[T any] struct {
	grid   *Fixed[T]
	origin geom.Vec
}

// Allocated reports whether the tile's sub-grid exists.
func (t Tile[T]) Allocated() bool { return t.grid != nil }

// Origin returns the tile's origin within the parent grid.
func (t Tile[T]) Origin() geom.Vec { return t.origin }

// Cells returns the tile's sub-grid, or nil if unallocated.
func (t Tile[T]) Cells() *Fixed[T] { return t.grid }

// Tiled is a sparse grid backed by lazily-allocated fixed tiles.
// Reads into untouched regions return the configured default value
// without allocating. Any write allocates the owning tile, even a
// write that stores the default value. Tiles are never evicted; they
// live until the grid is dropped.
type Tiled[T any] struct {
	extents     geom.Vec
	tileExtents geom.Vec
	def         T
	tiles       *Fixed[Tile[T]]
	whole       *View[T]
}

// NewTiled constructs a sparse grid of the given total extents split
// into tiles of tileExtents. Extents must divide evenly into tiles.
// No tile storage is allocated up front.
func NewTiled[T any](extents, tileExtents geom.Vec, def T) *Tiled[T] {
	g := &Tiled[T]{
		extents:     extents,
		tileExtents: tileExtents,
		def:         def,
		tiles:       NewFixed[Tile[T]](extents.Div(tileExtents)),
	}
	g.whole = FullView[T](g)
	return g
}

// Bounds returns the total grid bounds, anchored at the zero origin.
func (g *Tiled[T]) Bounds() geom.Bounds { return geom.OfExtents(g.extents) }

// At returns the cell at pt, or the default value when the owning
// tile has not been allocated. Reads never allocate.
func (g *Tiled[T]) At(pt geom.Vec) T {
	t := g.tiles.At(pt.Div(g.tileExtents))
	if !t.Allocated() {
		return g.def
	}
	return t.grid.At(pt.Sub(t.origin))
}

// Set stores v at pt, allocating the owning tile first if needed.
// The fresh tile is uniformly initialized to the default value.
func (g *Tiled[T]) Set(pt geom.Vec, v T) {
	idx := pt.Div(g.tileExtents)
	t := g.tiles.At(idx)
	if !t.Allocated() {
		t.origin = idx.Mul(g.tileExtents)
		t.grid = NewFixedOf(g.tileExtents, g.def)
		g.tiles.Set(idx, t)
	}
	t.grid.Set(pt.Sub(t.origin), v)
}

// Default returns the value reported for unallocated regions.
func (g *Tiled[T]) Default() T { return g.def }

// TileExtents returns the extents of a single tile.
func (g *Tiled[T]) TileExtents() geom.Vec { return g.tileExtents }

// Rows returns the number of tile rows.
func (g *Tiled[T]) Rows() int { return g.extents.Y / g.tileExtents.Y }

// Cols returns the number of tile columns.
func (g *Tiled[T]) Cols() int { return g.extents.X / g.tileExtents.X }

// TileAt returns the tile slot at a tile-table coordinate.
func (g *Tiled[T]) TileAt(idx geom.Vec) Tile[T] { return g.tiles.At(idx) }

// Mask returns a boolean grid with one cell per tile slot, true where
// the tile is allocated.
func (g *Tiled[T]) Mask() *Fixed[bool] {
	mask := NewFixed[bool](g.tiles.Bounds().Extents)
	m, t := Begin[bool](mask), Begin[Tile[T]](g.tiles)
	for !t.Done() {
		mask.Set(m.Pt(), g.tiles.At(t.Pt()).Allocated())
		m, t = m.Next(), t.Next()
	}
	return mask
}

// Active returns the number of allocated tiles.
func (g *Tiled[T]) Active() int {
	n := 0
	for c := Begin[Tile[T]](g.tiles); !c.Done(); c = c.Next() {
		if g.tiles.At(c.Pt()).Allocated() {
			n++
		}
	}
	return n
}

// Whole returns the cached view spanning the entire grid. Writes
// through it follow the allocating path, so a full-grid Fill ends
// with every tile active.
func (g *Tiled[T]) Whole() *View[T] { return g.whole }

// View returns a window over this grid.
func (g *Tiled[T]) View(bounds geom.Bounds) *View[T] { return NewView[T](g, bounds) }
