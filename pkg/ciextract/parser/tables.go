package parser

import (
	"fmt"

	"github.com/ukaji3/ciextract-go/pkg/ciextract/models"
	"github.com/xuri/excelize/v2"
)

// GridStats summarizes the populated region of a grid.
type GridStats struct {
	// Range is the bounding box of non-empty cells (e.g., "A1:S240").
	Range string
	// Rows is the total row count.
	Rows int
	// NonEmpty is the number of non-empty cells.
	NonEmpty int
}

// Stats computes the populated region of a grid.
func Stats(g *models.Grid) GridStats {
	stats := GridStats{Rows: g.NRows()}

	minRow, maxRow, minCol, maxCol := findDataBounds(g)
	if minRow < 0 {
		return stats
	}

	stats.NonEmpty = countNonEmptyCells(g, minRow, maxRow, minCol, maxCol)

	startCell, _ := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	endCell, _ := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	stats.Range = fmt.Sprintf("%s:%s", startCell, endCell)

	return stats
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(g *models.Grid) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx := 0; rowIdx < g.NRows(); rowIdx++ {
		for colIdx := 0; colIdx < g.NCols(); colIdx++ {
			if g.At(rowIdx, colIdx).IsEmpty() {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(g *models.Grid, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow; rowIdx++ {
		for colIdx := minCol; colIdx <= maxCol; colIdx++ {
			if !g.At(rowIdx, colIdx).IsEmpty() {
				count++
			}
		}
	}
	return count
}
