package geom

// Bounds describes the rectangular valid-index region
// [Origin, Origin+Extents).
type Bounds struct {
	Origin  Vec
	Extents Vec
}

// NewBounds constructs a Bounds from an origin and extents.
func NewBounds(origin, extents Vec) Bounds {
	return Bounds{Origin: origin, Extents: extents}
}

// OfExtents constructs a Bounds anchored at the zero origin.
func OfExtents(extents Vec) Bounds {
	return Bounds{Extents: extents}
}

// Center returns the center point of the bounds.
func (b Bounds) Center() Vec {
	return b.Origin.Add(Vec{b.Extents.X / 2, b.Extents.Y / 2})
}

// Empty reports whether the bounds cover no cells.
func (b Bounds) Empty() bool { return b.Extents == Vec{} }

// Within reports whether pt falls inside [Origin, Origin+Extents).
func (b Bounds) Within(pt Vec) bool {
	return pt.AllGE(b.Origin) && pt.AllLT(b.Origin.Add(b.Extents))
}

// Overlaps reports whether two axis-aligned bounds intersect.
func (b Bounds) Overlaps(o Bounds) bool {
	return b.Origin.Sub(o.Origin).Abs().AllLE(b.Extents.Add(o.Extents))
}
