package parser

import "github.com/ukaji3/ciextract-go/pkg/ciextract/models"

// buildGrid creates a grid with nrows rows from sparse cell values keyed by
// {row, col}. Strings become text cells and ints become numeric cells.
func buildGrid(nrows int, cells map[[2]int]interface{}) *models.Grid {
	rows := make([][]models.Cell, nrows)
	for pos, v := range cells {
		r, c := pos[0], pos[1]
		for len(rows[r]) <= c {
			rows[r] = append(rows[r], models.Cell{})
		}
		switch val := v.(type) {
		case string:
			rows[r][c] = models.TextCell(val)
		case int:
			rows[r][c] = models.NumberCell(float64(val))
		case float64:
			rows[r][c] = models.NumberCell(val)
		}
	}
	return models.NewGrid(rows)
}

// sampleGrid returns a sheet with two functions, PUMP01 at row 10 and
// PUMP02 at row 14.
func sampleGrid() *models.Grid {
	return buildGrid(17, map[[2]int]interface{}{
		{3, 5}: "Title", {3, 6}: "Rev", {3, 7}: "Date", {3, 8}: "Owner", {3, 9}: "", {3, 10}: "Remarks",
		{3, 12}: "Concept", {3, 13}: " Basic ", {3, 15}: "Detail", {3, 18}: "Construction",

		{10, 0}: 1, {10, 3}: "PUMP01",
		{11, 0}: 1, {11, 1}: "A", {11, 3}: "Pump datasheet", {11, 5}: "Datasheet", {11, 6}: "R0", {11, 12}: "DR",
		{12, 0}: 1, {12, 1}: "B", {12, 3}: "Pump layout", {12, 12}: "N/A", {12, 13}: "d",
		{13, 1}: "C", {13, 3}: "Pump notes", {13, 12}: "D",
		{14, 0}: 2, {14, 3}: "PUMP02",
		{15, 0}: 2, {15, 1}: "A", {15, 3}: "Valve list", {15, 12}: "U", {15, 13}: "X,D",
		{16, 0}: 2, {16, 1}: "B", {16, 3}: "Valve sizing", {16, 15}: "D",
	})
}
