// Package gridtext renders grids as text: one line per row, one
// fixed-width cell per column.
package gridtext

import (
	"fmt"
	"io"
	"strings"

	"gridkit/pkg/grid"
)

// cellWidth returns the column width for a cell type. Bool grids use
// a narrower column.
func cellWidth[T any]() int {
	var zero T
	if _, ok := any(zero).(bool); ok {
		return 2
	}
	return 4
}

// formatCell rewrites bool cells as 0/1 so columns stay aligned.
func formatCell[T any](v T) any {
	if b, ok := any(v).(bool); ok {
		if b {
			return 1
		}
		return 0
	}
	return v
}

// Fprint writes g to w, inserting a newline every extents.X cells.
func Fprint[T any](w io.Writer, g grid.Grid[T]) error {
	width := cellWidth[T]()
	perRow := g.Bounds().Extents.X
	n := 0
	for c := grid.Begin(g); !c.Done(); c = c.Next() {
		if _, err := fmt.Fprintf(w, "%*v", width, formatCell(g.At(c.Pt()))); err != nil {
			return err
		}
		n++
		if n%perRow == 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// Sprint returns g rendered as a string.
func Sprint[T any](g grid.Grid[T]) string {
	var sb strings.Builder
	Fprint[T](&sb, g)
	return sb.String()
}

// FprintTile writes one tile slot of a sparse grid to w. Unallocated
// tiles print a placeholder instead of cell values.
func FprintTile[T any](w io.Writer, t grid.Tile[T]) error {
	if !t.Allocated() {
		_, err := io.WriteString(w, "tile: <not expanded>")
		return err
	}
	if _, err := fmt.Fprintf(w, "origin: %d, %d\n", t.Origin().X, t.Origin().Y); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "tile:\n"); err != nil {
		return err
	}
	return Fprint[T](w, t.Cells())
}
