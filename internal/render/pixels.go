package render

import (
	"image/color"

	"gridkit/pkg/grid"
)

// fillPaletteRGBA converts grid cells into RGBA pixels using a palette.
// The column-major walk matches the row-major pixel layout, so cells
// land in buf sequentially. When the palette is empty the buffer is
// cleared to transparent black.
func fillPaletteRGBA(buf []byte, g grid.Grid[uint8], palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range buf {
			buf[i] = 0
		}
		return
	}

	last := len(palette) - 1
	i := 0
	for c := grid.Begin[uint8](g); !c.Done(); c = c.Next() {
		idx := int(g.At(c.Pt()))
		if idx > last {
			idx = last
		}
		col := palette[idx]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
		i++
	}
}

// GrayRamp returns a palette fading from black to white over n steps.
func GrayRamp(n int) []color.RGBA {
	if n < 2 {
		n = 2
	}
	ramp := make([]color.RGBA, n)
	for i := range ramp {
		v := uint8(i * 255 / (n - 1))
		ramp[i] = color.RGBA{R: v, G: v, B: v, A: 255}
	}
	return ramp
}
