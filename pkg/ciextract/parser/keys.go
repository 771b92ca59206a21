package parser

import (
	"sort"

	"github.com/ukaji3/ciextract-go/pkg/ciextract/models"
)

// GroupingKeys lists the function names of a grid. A function row has a
// number in the first column, empty second and third columns and a name in
// the key column. The result is sorted, deduplicated and starts with an
// empty "no selection" entry.
func GroupingKeys(g *models.Grid, layout Layout) []string {
	seen := make(map[string]struct{})
	var keys []string
	for row := 0; row < g.NRows(); row++ {
		if !g.At(row, 0).IsNumber() || !g.At(row, 1).IsEmpty() || !g.At(row, 2).IsEmpty() {
			continue
		}
		name := g.At(row, layout.KeyColumn).Trimmed()
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return append([]string{""}, keys...)
}
