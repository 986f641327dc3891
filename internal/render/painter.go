//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"gridkit/pkg/grid"
)

// GridPainter updates a single RGBA image from grid cell values.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the grid's cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, g grid.Grid[uint8], palette []color.RGBA, scale int) {
	if g.Bounds().Extents.Area() != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, g, palette)
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
