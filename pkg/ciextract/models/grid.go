package models

// Grid is a rectangular, zero-based collection of cells.
// A Grid is read-only once built and safe for concurrent readers.
type Grid struct {
	rows  [][]Cell
	ncols int
}

// NewGrid builds a Grid from rows of cells. Ragged rows are allowed;
// missing cells read as empty.
func NewGrid(rows [][]Cell) *Grid {
	g := &Grid{rows: rows}
	for _, row := range rows {
		if len(row) > g.ncols {
			g.ncols = len(row)
		}
	}
	return g
}

// NRows returns the number of rows.
func (g *Grid) NRows() int {
	if g == nil {
		return 0
	}
	return len(g.rows)
}

// NCols returns one more than the largest populated column index.
func (g *Grid) NCols() int {
	if g == nil {
		return 0
	}
	return g.ncols
}

// At returns the cell at (row, col). Out-of-range addresses return an empty cell.
func (g *Grid) At(row, col int) Cell {
	if g == nil || row < 0 || row >= len(g.rows) || col < 0 {
		return Cell{}
	}
	r := g.rows[row]
	if col >= len(r) {
		return Cell{}
	}
	return r[col]
}

// HasRow reports whether row is a valid row index.
func (g *Grid) HasRow(row int) bool {
	return g != nil && row >= 0 && row < len(g.rows)
}
