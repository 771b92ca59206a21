package models

// Status describes the outcome of a successful query.
type Status string

const (
	// StatusMatched means at least one document matched.
	StatusMatched Status = "matched"
	// StatusEmpty means the query was valid but nothing matched.
	StatusEmpty Status = "empty"
)

// MatchedRow is a detail row that passed the marker filter.
type MatchedRow struct {
	// Row is the grid row index (0-based).
	Row int `json:"row"`
	// Markers holds one raw stage value per selected stage column.
	Markers []string `json:"markers"`
}

// Result is the typed outcome of one query.
type Result struct {
	// Function is the grouping key queried.
	Function string `json:"function"`
	// Block is the located row range.
	Block Block `json:"block"`
	// DetailHeaders are the detail column labels.
	DetailHeaders []string `json:"detail_headers"`
	// Stages are the selected stage names that resolved to columns, in selection order.
	Stages []string `json:"stages"`
	// Status is the query outcome.
	Status Status `json:"status"`
	// Records holds the display rows. For StatusEmpty it holds the single sentinel row.
	Records []DisplayRecord `json:"records"`
}

// Columns returns the table header for a result with the given detail headers and stages.
func Columns(detailHeaders, stages []string) []string {
	cols := make([]string, 0, 3+len(detailHeaders)+len(stages))
	cols = append(cols, "SL.No", "Document Number", "Drawing Number")
	cols = append(cols, detailHeaders...)
	cols = append(cols, stages...)
	return cols
}

// Table is a render-ready query answer: column headers plus records of
// matching width.
type Table struct {
	// Columns are the header labels.
	Columns []string `json:"columns"`
	// Records holds at least one row.
	Records []DisplayRecord `json:"records"`
	// Error is set when the records hold a single error sentinel.
	Error string `json:"error,omitempty"`
}
