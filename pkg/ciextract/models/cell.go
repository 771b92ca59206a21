// Package models defines data structures for document extraction.
package models

import (
	"strconv"
	"strings"
)

// CellKind identifies the type of value held by a Cell.
type CellKind int

const (
	// CellEmpty is a cell with no value.
	CellEmpty CellKind = iota
	// CellText is a cell holding a string value.
	CellText
	// CellNumber is a cell holding a numeric value.
	CellNumber
)

// Cell represents a single untyped cell value.
type Cell struct {
	// Kind is the value type.
	Kind CellKind `json:"kind"`
	// Raw is the value as read from the source.
	Raw string `json:"raw,omitempty"`
	// Number is the parsed value for numeric cells.
	Number float64 `json:"number,omitempty"`
}

// TextCell returns a text cell. An empty string yields an empty cell.
func TextCell(s string) Cell {
	if s == "" {
		return Cell{}
	}
	return Cell{Kind: CellText, Raw: s}
}

// NumberCell returns a numeric cell.
func NumberCell(v float64) Cell {
	return Cell{Kind: CellNumber, Raw: strconv.FormatFloat(v, 'f', -1, 64), Number: v}
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// IsBlank reports whether the cell is empty or only whitespace.
func (c Cell) IsBlank() bool {
	return c.Kind == CellEmpty || strings.TrimSpace(c.Raw) == ""
}

// IsNumber reports whether the cell holds a numeric value.
func (c Cell) IsNumber() bool {
	return c.Kind == CellNumber
}

// String returns the cell value as text.
func (c Cell) String() string {
	return c.Raw
}

// Trimmed returns the cell text with surrounding whitespace removed.
func (c Cell) Trimmed() string {
	return strings.TrimSpace(c.Raw)
}
