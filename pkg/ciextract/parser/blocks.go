package parser

import (
	"unicode"

	"github.com/ukaji3/ciextract-go/pkg/ciextract/models"
)

// FindBlock locates the row range belonging to key in the key column.
// Only the first row whose trimmed key text equals key is used. The block
// runs until the next group terminator or the end of the grid.
func FindBlock(g *models.Grid, layout Layout, key string) (models.Block, bool) {
	start := -1
	for row := 0; row < g.NRows(); row++ {
		cell := g.At(row, layout.KeyColumn)
		if !cell.IsEmpty() && cell.Trimmed() == key {
			start = row
			break
		}
	}
	if start < 0 {
		return models.Block{}, false
	}

	end := start + 1
	for end < g.NRows() {
		if IsGroupTerminator(g.At(end, layout.KeyColumn)) {
			break
		}
		end++
	}

	return models.Block{Key: key, Start: start, End: end}, true
}

// IsGroupTerminator reports whether a key-column cell ends the current block:
// the cell is empty or its trimmed text is entirely upper case.
func IsGroupTerminator(c models.Cell) bool {
	if c.IsEmpty() {
		return true
	}
	return isUpper(c.Trimmed())
}

// isUpper reports whether s has at least one cased letter and no lower-case
// or title-case letters.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}
