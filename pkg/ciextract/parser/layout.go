// Package parser locates, filters and projects document rows from a sheet grid.
package parser

import "fmt"

// ColumnRange is an inclusive range of zero-based column indices.
type ColumnRange struct {
	First int
	Last  int
}

// Columns returns every index in the range in order.
func (r ColumnRange) Columns() []int {
	if r.Last < r.First {
		return nil
	}
	cols := make([]int, 0, r.Last-r.First+1)
	for c := r.First; c <= r.Last; c++ {
		cols = append(cols, c)
	}
	return cols
}

// Len returns the number of columns in the range.
func (r ColumnRange) Len() int {
	if r.Last < r.First {
		return 0
	}
	return r.Last - r.First + 1
}

// Layout describes the positional sheet convention.
type Layout struct {
	// HeaderRow is the row holding stage and detail labels.
	HeaderRow int
	// KeyColumn holds grouping keys and document names.
	KeyColumn int
	// StageColumns holds one workflow stage per column.
	StageColumns ColumnRange
	// DetailColumns holds the detail values copied into each record.
	DetailColumns ColumnRange
	// DetailFlagColumns must all be non-blank for a row to count as a document row.
	DetailFlagColumns []int
}

// DefaultLayout returns the standard CI extraction sheet layout.
func DefaultLayout() Layout {
	return Layout{
		HeaderRow:         3,
		KeyColumn:         3,
		StageColumns:      ColumnRange{First: 12, Last: 18},
		DetailColumns:     ColumnRange{First: 5, Last: 10},
		DetailFlagColumns: []int{0, 1},
	}
}

// Validate checks that every index is non-negative and every range is ordered.
func (l Layout) Validate() error {
	if l.HeaderRow < 0 {
		return fmt.Errorf("header row %d is negative", l.HeaderRow)
	}
	if l.KeyColumn < 0 {
		return fmt.Errorf("key column %d is negative", l.KeyColumn)
	}
	for name, r := range map[string]ColumnRange{"stage": l.StageColumns, "detail": l.DetailColumns} {
		if r.First < 0 || r.Last < r.First {
			return fmt.Errorf("%s columns %d..%d are not a valid range", name, r.First, r.Last)
		}
	}
	for _, c := range l.DetailFlagColumns {
		if c < 0 {
			return fmt.Errorf("detail flag column %d is negative", c)
		}
	}
	return nil
}

// RecordWidth returns the column count of a display record for n resolved stages.
func (l Layout) RecordWidth(stages int) int {
	return 3 + l.DetailColumns.Len() + stages
}
