package tui

import (
	"math"

	"github.com/vovakirdan/sprite-tutorial/internal/core"
)

// Viewport maps terminal cells onto the engine's world coordinates.
// The world origin sits in the middle of the grid with y pointing up.
type Viewport struct {
	Cols, Rows   int
	CellW, CellH float32 // World units per cell
}

// Dimensions returns the logical window size in world units.
func (v Viewport) Dimensions() core.Vec2 {
	return core.Vec2{X: float32(v.Cols) * v.CellW, Y: float32(v.Rows) * v.CellH}
}

// InBounds reports whether the cell lies inside the viewport.
func (v Viewport) InBounds(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
}

// CellToWorld returns the world position of a cell's centre.
func (v Viewport) CellToWorld(col, row int) core.Vec2 {
	d := v.Dimensions()
	return core.Vec2{
		X: (float32(col)+0.5)*v.CellW - d.X/2,
		Y: d.Y/2 - (float32(row)+0.5)*v.CellH,
	}
}

// WorldToCell returns the cell containing a world position. The result may
// lie outside the viewport.
func (v Viewport) WorldToCell(p core.Vec2) (col, row int) {
	d := v.Dimensions()
	col = int(math.Floor(float64((p.X + d.X/2) / v.CellW)))
	row = int(math.Floor(float64((d.Y/2 - p.Y) / v.CellH)))
	return col, row
}
