package parser

import "github.com/ukaji3/ciextract-go/pkg/ciextract/models"

// Project converts matched rows into display records. Each record holds the
// document name, two blank placeholders, the detail values and one
// indicator per stage marker.
func Project(g *models.Grid, layout Layout, rows []models.MatchedRow) []models.DisplayRecord {
	records := make([]models.DisplayRecord, 0, len(rows))
	detailCols := layout.DetailColumns.Columns()

	for _, m := range rows {
		values := make([]string, 0, 3+len(detailCols))
		values = append(values, g.At(m.Row, layout.KeyColumn).String(), "", "")
		for _, col := range detailCols {
			values = append(values, g.At(m.Row, col).String())
		}

		indicators := make([]models.Indicator, len(m.Markers))
		for i, v := range m.Markers {
			indicators[i] = Indicate(v)
		}

		records = append(records, models.DisplayRecord{Values: values, Indicators: indicators})
	}
	return records
}

// Indicate returns the colored indicator for a stage value, or a blank
// indicator when the value is not a recognized marker.
func Indicate(v string) models.Indicator {
	color, ok := models.MarkerColors[v]
	if !ok {
		return models.Indicator{}
	}
	return models.Indicator{Marker: v, Color: &color}
}

// SentinelRecord builds a single explanatory row padded to the record width
// of layout with the given number of stages.
func SentinelRecord(layout Layout, stages int, message string) models.DisplayRecord {
	values := make([]string, 3+layout.DetailColumns.Len())
	values[0] = message
	return models.DisplayRecord{
		Values:     values,
		Indicators: make([]models.Indicator, stages),
		Sentinel:   true,
	}
}
