package parser

import "github.com/ukaji3/ciextract-go/pkg/ciextract/models"

// FilterRows selects the document rows of a block whose stage values contain
// at least one recognized marker. Rows are returned in grid order.
func FilterRows(g *models.Grid, layout Layout, block models.Block, stageCols []int) []models.MatchedRow {
	var matched []models.MatchedRow
	for row := block.Start + 1; row < block.End; row++ {
		if !isDetailRow(g, layout, row) {
			continue
		}
		if g.At(row, layout.KeyColumn).IsBlank() {
			continue
		}

		markers := make([]string, len(stageCols))
		hit := false
		for i, col := range stageCols {
			cell := g.At(row, col)
			markers[i] = cell.String()
			if cell.Kind == models.CellText && models.IsMarker(cell.Raw) {
				hit = true
			}
		}
		if hit {
			matched = append(matched, models.MatchedRow{Row: row, Markers: markers})
		}
	}
	return matched
}

// isDetailRow reports whether every detail flag column of row is non-blank.
func isDetailRow(g *models.Grid, layout Layout, row int) bool {
	for _, col := range layout.DetailFlagColumns {
		if g.At(row, col).IsBlank() {
			return false
		}
	}
	return true
}
