package grid

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// nonEmptyCells returns the addresses of all non-blank cells of a sheet,
// row by row. Formula cells count as non-blank even without a cached result.
func nonEmptyCells(f *excelize.File, sheetName string) ([]string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var result []string
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		for colIdx, cellValue := range row {
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				continue
			}
			if strings.TrimSpace(cellValue) == "" {
				// GetRows keeps formula cells with an empty cached value
				formula, err := f.GetCellFormula(sheetName, cellName)
				if err != nil {
					return nil, err
				}
				if formula == "" {
					continue
				}
			}
			result = append(result, cellName)
		}
	}

	return result, nil
}

// cellText returns "=" plus the formula for formula cells and the formatted
// value otherwise.
func cellText(f *excelize.File, sheetName, cellName string) (string, error) {
	formula, err := f.GetCellFormula(sheetName, cellName)
	if err != nil {
		return "", err
	}
	if formula != "" {
		if !strings.HasPrefix(formula, "=") {
			formula = "=" + formula
		}
		return formula, nil
	}
	return f.GetCellValue(sheetName, cellName)
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
