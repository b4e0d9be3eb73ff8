package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseCellDecimal converts a raw spreadsheet cell into a decimal. Absent or
// malformed cells become zero, never an error: sparse rows are expected and
// must keep flowing through the mappers.
func ParseCellDecimal(cell string) decimal.Decimal {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return decimal.Zero
	}
	// Tolerate thousands separators and currency prefixes typed by hand.
	trimmed = strings.TrimPrefix(trimmed, "$")
	trimmed = strings.ReplaceAll(trimmed, ",", "")
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// CellAt returns the cell at index i, or the empty string when the row is too
// short. Rows from the store are ragged whenever trailing cells are blank.
func CellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
