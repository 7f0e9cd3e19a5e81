// Package address implements spreadsheet cell address arithmetic.
//
// Addresses use the conventional A1 notation: one or more uppercase column
// letters (base-26, A=1) immediately followed by a decimal row number.
package address

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	// MaxColumn is the highest supported column index (XFD).
	MaxColumn = excelize.MaxColumns
	// MaxRow is the highest row index a worksheet can hold.
	MaxRow = excelize.TotalRows
)

// ErrInvalidAddress indicates a malformed A1 address.
var ErrInvalidAddress = errors.New("invalid cell address")

// ErrColumnOutOfRange indicates a column outside [1, MaxColumn].
var ErrColumnOutOfRange = errors.New("column out of range")

var (
	cellRe    = regexp.MustCompile(`^([A-Z]+)([1-9][0-9]*)$`)
	lettersRe = regexp.MustCompile(`^[A-Z]+$`)
)

// Address is a 1-based (column, row) pair.
type Address struct {
	Column int
	Row    int
}

// ColumnIndex converts uppercase column letters to a 1-based index.
func ColumnIndex(letters string) (int, error) {
	if !lettersRe.MatchString(letters) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAddress, letters)
	}
	// Anything past XFD has more than three letters or sorts above it.
	if len(letters) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrColumnOutOfRange, letters)
	}
	idx, err := excelize.ColumnNameToNumber(letters)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrColumnOutOfRange, letters, err)
	}
	return idx, nil
}

// ColumnLetters converts a 1-based column index to its letter form.
func ColumnLetters(index int) (string, error) {
	if index < 1 || index > MaxColumn {
		return "", fmt.Errorf("%w: %d", ErrColumnOutOfRange, index)
	}
	return excelize.ColumnNumberToName(index)
}

// Normalize trims and upper-cases an address string.
func Normalize(ref string) string {
	return strings.ToUpper(strings.TrimSpace(ref))
}

// Parse parses an A1 address. Lower-case letters and surrounding
// whitespace are accepted.
func Parse(ref string) (Address, error) {
	m := cellRe.FindStringSubmatch(Normalize(ref))
	if m == nil {
		return Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, ref)
	}
	col, err := ColumnIndex(m[1])
	if err != nil {
		return Address{}, err
	}
	row, err := strconv.Atoi(m[2])
	if err != nil {
		return Address{}, fmt.Errorf("%w: %q: %v", ErrInvalidAddress, ref, err)
	}
	return Address{Column: col, Row: row}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// constant addresses.
func MustParse(ref string) Address {
	a, err := Parse(ref)
	if err != nil {
		panic(err)
	}
	return a
}

// Valid reports whether the address lies inside the supported range.
func (a Address) Valid() bool {
	return a.Column >= 1 && a.Column <= MaxColumn && a.Row >= 1
}

// String formats the address in A1 notation. Out-of-range addresses
// format as the empty string.
func (a Address) String() string {
	if !a.Valid() {
		return ""
	}
	letters, err := ColumnLetters(a.Column)
	if err != nil {
		return ""
	}
	return letters + strconv.Itoa(a.Row)
}

// Right returns the cell in the next column of the same row. The second
// result is false when that column would exceed MaxColumn.
func (a Address) Right() (Address, bool) {
	if !a.Valid() || a.Column+1 > MaxColumn {
		return Address{}, false
	}
	return Address{Column: a.Column + 1, Row: a.Row}, true
}

// Less orders addresses row-major: by row, then by column.
func (a Address) Less(b Address) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Column < b.Column
}

// Equal reports whether two address strings name the same cell.
// Unparseable strings are compared after normalization.
func Equal(x, y string) bool {
	ax, errX := Parse(x)
	ay, errY := Parse(y)
	if errX != nil || errY != nil {
		return Normalize(x) == Normalize(y)
	}
	return ax == ay
}
