package sheets_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-api/src/clients/sheets"
	"portfolio-api/src/config"
	"portfolio-api/src/stores"
	"portfolio-api/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(handler http.HandlerFunc) (*sheets.SheetsServiceClient, *httptest.Server) {
	server := httptest.NewServer(handler)
	cfg := &config.Config{}
	cfg.Store.Sheets.BaseURL = server.URL
	cfg.Store.Sheets.SpreadsheetID = "sheet123"
	return sheets.NewClient(cfg, "test-token"), server
}

func TestSheetsServiceClient(t *testing.T) {
	ctx := context.Background()

	t.Run("get decodes values and normalizes numbers", func(t *testing.T) {
		client, server := newClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "GET", r.Method)
			assert.Equal(t, "/sheet123/values/holdings", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			fmt.Fprint(w, `{"range":"holdings!A1:B2","values":[["id","qty"],["h1",2.5]]}`)
		})
		defer server.Close()

		rows, err := client.Get(ctx, "holdings")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, []string{"h1", "2.5"}, rows[1])
	})

	t.Run("append posts the rows with user entered input", func(t *testing.T) {
		var gotPath, gotQuery string
		var gotBody sheets.ValueRange
		client, server := newClient(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.RawQuery
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &gotBody)
			fmt.Fprint(w, `{}`)
		})
		defer server.Close()

		err := client.Append(ctx, "monthly_growth", [][]string{{"2025-08", "broker", "-120"}})
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(gotPath, "monthly_growth:append"), "path %s", gotPath)
		assert.Contains(t, gotQuery, "valueInputOption=USER_ENTERED")
		require.Len(t, gotBody.Values, 1)
		assert.Equal(t, "2025-08", gotBody.Values[0][0])
	})

	t.Run("update targets the row anchor cell", func(t *testing.T) {
		var gotMethod, gotPath string
		client, server := newClient(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			fmt.Fprint(w, `{}`)
		})
		defer server.Close()

		err := client.Update(ctx, stores.RowRef{Table: "holdings", Row: 5}, []string{"h1", "AAPL"})
		require.NoError(t, err)
		assert.Equal(t, "PUT", gotMethod)
		assert.True(t, strings.HasSuffix(gotPath, "holdings!A5"), "path %s", gotPath)
	})

	t.Run("batch delete resolves the sheet id and sends row bounds", func(t *testing.T) {
		var gotBatch sheets.BatchUpdateRequest
		client, server := newClient(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == "GET" && r.URL.Path == "/sheet123":
				fmt.Fprint(w, `{"sheets":[{"properties":{"sheetId":77,"title":"holdings"}}]}`)
			case r.Method == "POST" && strings.HasSuffix(r.URL.Path, ":batchUpdate"):
				body, _ := io.ReadAll(r.Body)
				_ = json.Unmarshal(body, &gotBatch)
				fmt.Fprint(w, `{}`)
			default:
				t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
			}
		})
		defer server.Close()

		err := client.BatchDelete(ctx, stores.RowRef{Table: "holdings", Row: 5})
		require.NoError(t, err)
		require.Len(t, gotBatch.Requests, 1)
		dim := gotBatch.Requests[0].DeleteDimension.Range
		assert.Equal(t, 77, dim.SheetID)
		assert.Equal(t, "ROWS", dim.Dimension)
		assert.Equal(t, 4, dim.StartIndex)
		assert.Equal(t, 5, dim.EndIndex)
	})

	t.Run("api errors carry the upstream status text", func(t *testing.T) {
		client, server := newClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":{"code":400,"status":"INVALID_ARGUMENT","message":"Unable to parse range: nope!A1"}}`)
		})
		defer server.Close()

		_, err := client.Get(ctx, "nope")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Unable to parse range")

		classified := utils.ClassifyUpstreamError(err)
		require.NotNil(t, classified)
		assert.Equal(t, utils.KindUpstreamRange, classified.Kind)
	})

	t.Run("unknown table title fails resolution", func(t *testing.T) {
		client, server := newClient(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"sheets":[{"properties":{"sheetId":1,"title":"other"}}]}`)
		})
		defer server.Close()

		_, err := client.ResolveTableID(ctx, "holdings")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "named range")
	})
}
