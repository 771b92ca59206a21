package parser

import "github.com/ukaji3/ciextract-go/pkg/ciextract/models"

// Schema holds the labels found on the header row.
type Schema struct {
	// StageNames are the trimmed, non-empty stage labels in column order.
	StageNames []string
	// StageColumns holds the grid column of each entry in StageNames.
	StageColumns []int
	// DetailHeaders are the detail column labels, including blank ones.
	DetailHeaders []string
}

// Locate reads stage and detail labels from the layout's header row.
// A nil grid or a header row outside the grid yields an empty Schema.
func Locate(g *models.Grid, layout Layout) Schema {
	var s Schema
	if !g.HasRow(layout.HeaderRow) {
		return s
	}

	for _, col := range layout.StageColumns.Columns() {
		name := g.At(layout.HeaderRow, col).Trimmed()
		if name == "" {
			continue
		}
		s.StageNames = append(s.StageNames, name)
		s.StageColumns = append(s.StageColumns, col)
	}

	for _, col := range layout.DetailColumns.Columns() {
		s.DetailHeaders = append(s.DetailHeaders, g.At(layout.HeaderRow, col).String())
	}

	return s
}

// ResolveStages maps selected stage names to grid columns, keeping the
// selection order. Names that are not on the header row are dropped.
func (s Schema) ResolveStages(selected []string) (cols []int, names []string) {
	for _, name := range selected {
		for i, stage := range s.StageNames {
			if stage == name {
				cols = append(cols, s.StageColumns[i])
				names = append(names, name)
				break
			}
		}
	}
	return cols, names
}

// SelectedStages returns the selected names present on the header row, in
// selection order, without resolving their columns.
func (s Schema) SelectedStages(selected []string) []string {
	var names []string
	for _, name := range selected {
		for _, stage := range s.StageNames {
			if stage == name {
				names = append(names, name)
				break
			}
		}
	}
	return names
}
