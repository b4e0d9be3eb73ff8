// Package stores defines the row-level contract against the spreadsheet
// backing this service. Every named range is a rectangular table whose row 1
// is a header; readers skip it. Row positions are 1-indexed to match the
// spreadsheet's native indexing.
package stores

import (
	"context"
	"fmt"
)

// RowRef addresses one data row inside a named range for update/delete.
type RowRef struct {
	Table string
	Row   int
}

func (r RowRef) String() string {
	return fmt.Sprintf("%s!%d", r.Table, r.Row)
}

// RowStore is the tabular persistence contract. Cells are untyped strings;
// typed mapping lives in the repositories.
type RowStore interface {
	// Get returns every row of the named range, header included.
	Get(ctx context.Context, rangeName string) ([][]string, error)
	// Append adds rows after the last non-empty row of the named range.
	Append(ctx context.Context, rangeName string, rows [][]string) error
	// Update overwrites the cells of a single row in place.
	Update(ctx context.Context, ref RowRef, row []string) error
	// BatchDelete removes a single row, shifting the rows below it up.
	BatchDelete(ctx context.Context, ref RowRef) error
	// ResolveTableID maps a range name onto the backend's numeric sheet id.
	ResolveTableID(ctx context.Context, name string) (int, error)
}
