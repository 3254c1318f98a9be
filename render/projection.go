package render

import "math"

// Projection maps world coordinates (origin at centre, y up) onto a cell grid (origin top-left, y down)
type Projection struct {
	WorldWidth, WorldHeight float64
	Cols, Rows              int
}

// NewProjection creates a projection of a world rectangle onto cols x rows cells
func NewProjection(worldW, worldH float64, cols, rows int) Projection {
	return Projection{WorldWidth: worldW, WorldHeight: worldH, Cols: cols, Rows: rows}
}

// ToCell returns the cell containing world point (x, y)
// Visible is false when the cell lies outside the grid
func (p Projection) ToCell(x, y float64) (col, row int, visible bool) {
	if p.Cols <= 0 || p.Rows <= 0 || p.WorldWidth <= 0 || p.WorldHeight <= 0 {
		return 0, 0, false
	}
	col = int(math.Floor((x + p.WorldWidth/2) / p.WorldWidth * float64(p.Cols)))
	row = int(math.Floor((p.WorldHeight/2 - y) / p.WorldHeight * float64(p.Rows)))
	visible = col >= 0 && col < p.Cols && row >= 0 && row < p.Rows
	return col, row, visible
}

// ToWorld returns the world point at the centre of cell (col, row)
func (p Projection) ToWorld(col, row int) (x, y float64) {
	if p.Cols <= 0 || p.Rows <= 0 {
		return 0, 0
	}
	x = (float64(col)+0.5)/float64(p.Cols)*p.WorldWidth - p.WorldWidth/2
	y = p.WorldHeight/2 - (float64(row)+0.5)/float64(p.Rows)*p.WorldHeight
	return x, y
}

// CellsX converts a world width to a cell count, at least one
func (p Projection) CellsX(w float64) int {
	if p.WorldWidth <= 0 {
		return 1
	}
	return max(1, int(math.Round(w/p.WorldWidth*float64(p.Cols))))
}
