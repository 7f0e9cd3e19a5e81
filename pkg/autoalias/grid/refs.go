package grid

import (
	"fmt"
	"strings"

	"github.com/ukaji3/autoalias-go/pkg/autoalias/address"
)

// parseCellReference parses a defined name reference that points at a
// single cell.
// Format: 'SheetName'!$B$1 or SheetName!$B$1 (a one-cell range is accepted).
func parseCellReference(ref string) (string, address.Address, bool) {
	ref = strings.TrimPrefix(strings.TrimSpace(ref), "=")

	// Split by ! to separate sheet name and cell
	idx := strings.LastIndex(ref, "!")
	if idx < 0 {
		return "", address.Address{}, false
	}
	sheet := ref[:idx]
	cellStr := strings.ReplaceAll(ref[idx+1:], "$", "")

	// Remove quotes from sheet name
	if len(sheet) >= 2 && strings.HasPrefix(sheet, "'") && strings.HasSuffix(sheet, "'") {
		sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
	}

	parts := strings.Split(cellStr, ":")
	if len(parts) > 2 {
		return "", address.Address{}, false
	}
	a, err := address.Parse(parts[0])
	if err != nil {
		return "", address.Address{}, false
	}
	if len(parts) == 2 {
		end, err := address.Parse(parts[1])
		if err != nil || end != a {
			return "", address.Address{}, false
		}
	}
	return sheet, a, true
}

// formatCellReference builds an absolute reference such as 'Sheet1'!$B$1.
func formatCellReference(sheet string, a address.Address) string {
	letters, _ := address.ColumnLetters(a.Column)
	return fmt.Sprintf("'%s'!$%s$%d", strings.ReplaceAll(sheet, "'", "''"), letters, a.Row)
}
