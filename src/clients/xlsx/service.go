// Package xlsx backs the row store with a local workbook, for development and
// tests. Each named range is a worksheet whose first row is the header.
package xlsx

import (
	"context"
	"fmt"
	"os"
	"sync"

	"portfolio-api/src/stores"

	"github.com/xuri/excelize/v2"
)

type XLSXServiceClient struct {
	Path string

	mu sync.Mutex
}

// NewClient creates a new instance of XLSXServiceClient
func NewClient(path string) *XLSXServiceClient {
	return &XLSXServiceClient{Path: path}
}

// EnsureTables opens or creates the workbook and adds any missing worksheet
// with its header row. Called once at startup and by test fixtures.
func (c *XLSXServiceClient) EnsureTables(headers map[string][]string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var f *excelize.File
	var err error
	if _, statErr := os.Stat(c.Path); statErr == nil {
		f, err = excelize.OpenFile(c.Path)
		if err != nil {
			return err
		}
	} else {
		f = excelize.NewFile()
	}
	defer f.Close()

	for table, header := range headers {
		index, err := f.GetSheetIndex(table)
		if err != nil {
			return err
		}
		if index >= 0 {
			continue
		}
		if _, err := f.NewSheet(table); err != nil {
			return err
		}
		cells := make([]interface{}, len(header))
		for i, h := range header {
			cells[i] = h
		}
		if err := f.SetSheetRow(table, "A1", &cells); err != nil {
			return err
		}
	}
	// Drop the default sheet excelize creates in an empty workbook.
	if index, err := f.GetSheetIndex("Sheet1"); err == nil && index >= 0 {
		if _, wanted := headers["Sheet1"]; !wanted && len(headers) > 0 {
			_ = f.DeleteSheet("Sheet1")
		}
	}
	return f.SaveAs(c.Path)
}

// Get returns every row of the worksheet, header included.
func (c *XLSXServiceClient) Get(_ context.Context, rangeName string) ([][]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	f, err := c.open(rangeName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.GetRows(rangeName)
}

// Append adds rows after the last non-empty row of the worksheet.
func (c *XLSXServiceClient) Append(_ context.Context, rangeName string, rows [][]string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	f, err := c.open(rangeName)
	if err != nil {
		return err
	}
	defer f.Close()

	existing, err := f.GetRows(rangeName)
	if err != nil {
		return err
	}
	next := len(existing) + 1
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		if err := f.SetSheetRow(rangeName, fmt.Sprintf("A%d", next+i), &cells); err != nil {
			return err
		}
	}
	return f.Save()
}

// Update overwrites one row in place, addressed by its 1-indexed position.
func (c *XLSXServiceClient) Update(_ context.Context, ref stores.RowRef, row []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	f, err := c.open(ref.Table)
	if err != nil {
		return err
	}
	defer f.Close()

	cells := make([]interface{}, len(row))
	for i, cell := range row {
		cells[i] = cell
	}
	if err := f.SetSheetRow(ref.Table, fmt.Sprintf("A%d", ref.Row), &cells); err != nil {
		return err
	}
	return f.Save()
}

// BatchDelete removes one row, shifting the rows below it up.
func (c *XLSXServiceClient) BatchDelete(_ context.Context, ref stores.RowRef) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	f, err := c.open(ref.Table)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.RemoveRow(ref.Table, ref.Row); err != nil {
		return err
	}
	return f.Save()
}

// ResolveTableID maps a worksheet name onto its index in the workbook.
func (c *XLSXServiceClient) ResolveTableID(_ context.Context, name string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	f, err := c.open(name)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	index, err := f.GetSheetIndex(name)
	if err != nil {
		return 0, err
	}
	return index, nil
}

// open loads the workbook and verifies the worksheet exists, reporting a
// missing one in named-range terms so the error classifier treats both
// backends alike.
func (c *XLSXServiceClient) open(table string) (*excelize.File, error) {
	f, err := excelize.OpenFile(c.Path)
	if err != nil {
		return nil, fmt.Errorf("named range %q not found: %w", table, err)
	}
	index, err := f.GetSheetIndex(table)
	if err != nil {
		f.Close()
		return nil, err
	}
	if index < 0 {
		f.Close()
		return nil, fmt.Errorf("named range %q not found in workbook %s", table, c.Path)
	}
	return f, nil
}
