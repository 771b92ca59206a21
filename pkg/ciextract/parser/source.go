package parser

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/ukaji3/ciextract-go/pkg/ciextract/models"
	"github.com/xuri/excelize/v2"
)

// ExtractGrid reads every row of a sheet into a Grid.
// An empty sheetName selects the first sheet. Cell text is the formatted
// value; the cell kind comes from the stored cell type.
func ExtractGrid(f *excelize.File, sheetName string) (*models.Grid, error) {
	if sheetName == "" {
		sheetName = f.GetSheetName(0)
		if sheetName == "" {
			return nil, fmt.Errorf("workbook has no sheets")
		}
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	rawRows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	cells := make([][]models.Cell, len(rawRows))
	for rowIdx, raw := range rawRows {
		line := make([]models.Cell, len(raw))
		for colIdx, rawValue := range raw {
			if rawValue == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			display := rawValue
			if rowIdx < len(rows) && colIdx < len(rows[rowIdx]) {
				display = rows[rowIdx][colIdx]
			}
			line[colIdx] = typedCell(cellType, rawValue, display)
		}
		cells[rowIdx] = line
	}

	return models.NewGrid(cells), nil
}

// typedCell builds a cell from the stored type, the raw value and the
// formatted value. Only cells stored as numbers (or dates) become numeric;
// strings stay text even when they look like numbers.
func typedCell(t excelize.CellType, raw, display string) models.Cell {
	switch t {
	case excelize.CellTypeUnset, excelize.CellTypeNumber, excelize.CellTypeDate:
		if c := parseValue(raw); c.IsNumber() {
			c.Raw = display
			return c
		}
	}
	return models.TextCell(display)
}

// OpenGrid opens a workbook file and reads one sheet into a Grid.
func OpenGrid(path, sheetName string) (*models.Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ExtractGrid(f, sheetName)
}

// ReadGrid reads a workbook from r and reads one sheet into a Grid.
func ReadGrid(r io.Reader, sheetName string) (*models.Grid, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ExtractGrid(f, sheetName)
}

// parseValue converts a raw cell string into a typed cell.
// Integers and decimals become numeric cells, everything else stays text.
func parseValue(s string) models.Cell {
	if s == "" {
		return models.Cell{}
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.Cell{Kind: models.CellNumber, Raw: s, Number: float64(i)}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return models.Cell{Kind: models.CellNumber, Raw: s, Number: f}
	}
	return models.TextCell(s)
}
