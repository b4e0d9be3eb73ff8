package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"portfolio-api/src/config"
	"portfolio-api/src/stores"
	"portfolio-api/src/utils/requests"
)

// SheetsServiceClient implements the row store against the Google Sheets v4
// values API. It never retries: a failed round trip fails the request.
type SheetsServiceClient struct {
	API           *requests.ExternalAPIService
	BaseURL       string
	SpreadsheetID string
	Token         string

	mu       sync.Mutex
	tableIDs map[string]int
}

// NewClient creates a new instance of SheetsServiceClient
func NewClient(cfg *config.Config, token string) *SheetsServiceClient {
	api := requests.NewExternalAPIService()
	return &SheetsServiceClient{
		API:           api,
		BaseURL:       cfg.Store.Sheets.BaseURL,
		SpreadsheetID: cfg.Store.Sheets.SpreadsheetID,
		Token:         token,
		tableIDs:      map[string]int{},
	}
}

// Get fetches every row of a named range, header included.
func (c *SheetsServiceClient) Get(ctx context.Context, rangeName string) ([][]string, error) {
	endpoint := fmt.Sprintf("%s/%s/values/%s", c.BaseURL, c.SpreadsheetID, url.PathEscape(rangeName))

	resp, err := c.API.Get(ctx, endpoint, c.Token, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var valueRange ValueRange
	if err := c.decode(resp, &valueRange); err != nil {
		return nil, err
	}
	return toStringRows(valueRange.Values), nil
}

// Append adds rows after the last non-empty row of the named range.
func (c *SheetsServiceClient) Append(ctx context.Context, rangeName string, rows [][]string) error {
	endpoint := fmt.Sprintf("%s/%s/values/%s:append", c.BaseURL, c.SpreadsheetID, url.PathEscape(rangeName))

	params := url.Values{}
	params.Add("valueInputOption", "USER_ENTERED")

	body := ValueRange{Values: toAnyRows(rows)}
	resp, err := c.API.Post(ctx, endpoint, c.Token, params, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return c.decode(resp, nil)
}

// Update overwrites one row in place, addressed by its 1-indexed position.
func (c *SheetsServiceClient) Update(ctx context.Context, ref stores.RowRef, row []string) error {
	cellRange := fmt.Sprintf("%s!A%d", ref.Table, ref.Row)
	endpoint := fmt.Sprintf("%s/%s/values/%s", c.BaseURL, c.SpreadsheetID, url.PathEscape(cellRange))

	params := url.Values{}
	params.Add("valueInputOption", "USER_ENTERED")

	body := ValueRange{Values: toAnyRows([][]string{row})}
	resp, err := c.API.Put(ctx, endpoint, c.Token, params, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return c.decode(resp, nil)
}

// BatchDelete removes one row through a deleteDimension batch update.
func (c *SheetsServiceClient) BatchDelete(ctx context.Context, ref stores.RowRef) error {
	sheetID, err := c.ResolveTableID(ctx, ref.Table)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/%s:batchUpdate", c.BaseURL, c.SpreadsheetID)
	body := BatchUpdateRequest{
		Requests: []Request{{
			DeleteDimension: &DeleteDimensionRequest{
				Range: DimensionRange{
					SheetID:    sheetID,
					Dimension:  "ROWS",
					StartIndex: ref.Row - 1,
					EndIndex:   ref.Row,
				},
			},
		}},
	}

	resp, err := c.API.Post(ctx, endpoint, c.Token, nil, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return c.decode(resp, nil)
}

// ResolveTableID maps a sheet title onto its numeric id, caching the result
// for the lifetime of the client.
func (c *SheetsServiceClient) ResolveTableID(ctx context.Context, name string) (int, error) {
	c.mu.Lock()
	if id, ok := c.tableIDs[name]; ok {
		c.mu.Unlock()
		return id, nil
	}
	c.mu.Unlock()

	endpoint := fmt.Sprintf("%s/%s", c.BaseURL, c.SpreadsheetID)
	params := url.Values{}
	params.Add("fields", "sheets.properties")

	resp, err := c.API.Get(ctx, endpoint, c.Token, params)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var spreadsheet SpreadsheetResponse
	if err := c.decode(resp, &spreadsheet); err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, sheet := range spreadsheet.Sheets {
		c.tableIDs[sheet.Properties.Title] = sheet.Properties.SheetID
	}
	id, ok := c.tableIDs[name]
	if !ok {
		return 0, fmt.Errorf("named range %q not found in spreadsheet %s", name, c.SpreadsheetID)
	}
	return id, nil
}

// decode reads the response body into out, translating API error payloads
// into plain errors whose text carries the upstream status for the error
// classifier at the HTTP boundary.
func (c *SheetsServiceClient) decode(resp *http.Response, out interface{}) error {
	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr APIErrorResponse
		if err := json.Unmarshal(responseBody, &apiErr); err == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("sheets api %d %s: %s", apiErr.Error.Code, apiErr.Error.Status, apiErr.Error.Message)
		}
		return fmt.Errorf("sheets api %d: %s", resp.StatusCode, resp.Status)
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(responseBody, out)
}

func toStringRows(values [][]interface{}) [][]string {
	rows := make([][]string, 0, len(values))
	for _, value := range values {
		row := make([]string, 0, len(value))
		for _, cell := range value {
			switch v := cell.(type) {
			case string:
				row = append(row, v)
			case float64:
				row = append(row, strconv.FormatFloat(v, 'f', -1, 64))
			case nil:
				row = append(row, "")
			default:
				row = append(row, fmt.Sprint(v))
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func toAnyRows(rows [][]string) [][]interface{} {
	values := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		cells := make([]interface{}, 0, len(row))
		for _, cell := range row {
			cells = append(cells, cell)
		}
		values = append(values, cells)
	}
	return values
}
