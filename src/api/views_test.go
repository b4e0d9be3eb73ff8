package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"portfolio-api/src/api"
	"portfolio-api/src/clients/xlsx"
	"portfolio-api/src/config"
	"portfolio-api/src/models"
	"portfolio-api/src/repositories"
	"portfolio-api/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-secret"

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Service.Port = "0"
	cfg.Service.APIKey = testAPIKey
	cfg.Service.DevelopmentMode = true
	cfg.Service.RateLimit.Requests = 1000
	cfg.Service.RateLimit.WindowSeconds = 60
	cfg.Store.Backend = config.XLSXBackend
	cfg.Store.XLSX.Path = filepath.Join(t.TempDir(), "portfolio.xlsx")
	return cfg
}

func newTestServer(t *testing.T, cfg *config.Config) *httptest.Server {
	t.Helper()
	server, err := api.NewServer(cfg)
	require.NoError(t, err)
	ts := httptest.NewServer(server)
	t.Cleanup(ts.Close)
	return ts
}

func doRequest(t *testing.T, ts *httptest.Server, method, path, apiKey string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, ts.URL+path, &buf)
	require.NoError(t, err)
	if apiKey != "" {
		req.Header.Set("x-api-key", apiKey)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestServerAuth(t *testing.T) {
	ts := newTestServer(t, newTestConfig(t))

	t.Run("health needs no key", func(t *testing.T) {
		resp := doRequest(t, ts, "GET", "/health", "", nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("v1 routes reject a missing key", func(t *testing.T) {
		resp := doRequest(t, ts, "GET", "/v1/holdings", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		var envelope utils.ErrorResponse
		decodeBody(t, resp, &envelope)
		assert.Equal(t, utils.KindUnauthorized, envelope.Error)
		assert.NotEmpty(t, envelope.Timestamp)
	})

	t.Run("v1 routes reject a wrong key", func(t *testing.T) {
		resp := doRequest(t, ts, "GET", "/v1/holdings", "nope", nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("unknown routes return the envelope with method and path", func(t *testing.T) {
		resp := doRequest(t, ts, "GET", "/v1/nothing-here", testAPIKey, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var envelope utils.ErrorResponse
		decodeBody(t, resp, &envelope)
		assert.Contains(t, envelope.Message, "GET")
		assert.Contains(t, envelope.Message, "/v1/nothing-here")
	})
}

func TestHoldingsLifecycle(t *testing.T) {
	ts := newTestServer(t, newTestConfig(t))

	payload := map[string]interface{}{
		"symbol":         "AAPL",
		"name":           "Apple Inc.",
		"sector":         "tech",
		"qty":            10,
		"avg_price":      150.5,
		"current_price":  170.25,
		"allocation_pct": 25,
		"notes":          "long term",
	}

	var created models.Holding

	t.Run("create returns 201 with derived fields", func(t *testing.T) {
		resp := doRequest(t, ts, "POST", "/v1/holdings", testAPIKey, payload)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		decodeBody(t, resp, &created)
		assert.NotEmpty(t, created.ID)
		assert.NotEmpty(t, created.UpdatedAt)
		assert.True(t, created.Value.Equal(created.Qty.Mul(created.CurrentPrice)))
	})

	t.Run("list returns the created record", func(t *testing.T) {
		resp := doRequest(t, ts, "GET", "/v1/holdings", testAPIKey, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var holdings []models.Holding
		decodeBody(t, resp, &holdings)
		require.Len(t, holdings, 1)
		assert.Equal(t, created.ID, holdings[0].ID)
		assert.Equal(t, "AAPL", holdings[0].Symbol)
	})

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		resp := doRequest(t, ts, "PUT", "/v1/holdings/"+created.ID, testAPIKey, map[string]interface{}{
			"current_price": 200,
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var updated models.Holding
		decodeBody(t, resp, &updated)
		assert.Equal(t, "AAPL", updated.Symbol)
		assert.True(t, updated.Value.Equal(updated.Qty.Mul(updated.CurrentPrice)))
	})

	t.Run("malformed id is a validation error", func(t *testing.T) {
		resp := doRequest(t, ts, "PUT", "/v1/holdings/not-a-uuid", testAPIKey, map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var envelope utils.ErrorResponse
		decodeBody(t, resp, &envelope)
		assert.Equal(t, utils.KindValidation, envelope.Error)
	})

	t.Run("invalid payloads never reach the store", func(t *testing.T) {
		bad := map[string]interface{}{
			"symbol": "AAPL", "name": "Apple", "sector": "tech",
			"qty": 0, "avg_price": 1, "current_price": 1, "allocation_pct": 25,
		}
		resp := doRequest(t, ts, "POST", "/v1/holdings", testAPIKey, bad)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("delete returns 204 and removes the record", func(t *testing.T) {
		resp := doRequest(t, ts, "DELETE", "/v1/holdings/"+created.ID, testAPIKey, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		listResp := doRequest(t, ts, "GET", "/v1/holdings", testAPIKey, nil)
		var holdings []models.Holding
		decodeBody(t, listResp, &holdings)
		assert.Empty(t, holdings)
	})
}

func TestGrowthAndAnalytics(t *testing.T) {
	cfg := newTestConfig(t)

	// Seed targets before the server boots; the ideal set is read-only
	// through the API.
	seed := xlsx.NewClient(cfg.Store.XLSX.Path)
	require.NoError(t, seed.EnsureTables(repositories.TableHeaders()))
	require.NoError(t, seed.Append(context.Background(), repositories.IdealRange, [][]string{
		{"tech", "60"},
		{"bonds", "40"},
	}))

	ts := newTestServer(t, cfg)

	t.Run("growth entries validate and list ascending", func(t *testing.T) {
		resp := doRequest(t, ts, "POST", "/v1/monthly-growth", testAPIKey, map[string]interface{}{
			"month": "2024-13", "account": "broker", "pnl": 10,
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		for _, month := range []string{"2025-03", "2025-01"} {
			resp := doRequest(t, ts, "POST", "/v1/monthly-growth", testAPIKey, map[string]interface{}{
				"month": month, "account": "broker", "pnl": 100,
			})
			resp.Body.Close()
			assert.Equal(t, http.StatusCreated, resp.StatusCode)
		}

		listResp := doRequest(t, ts, "GET", "/v1/monthly-growth", testAPIKey, nil)
		var entries []models.MonthlyGrowthEntry
		decodeBody(t, listResp, &entries)
		require.Len(t, entries, 2)
		assert.Equal(t, "2025-01", entries[0].Month)
		assert.Equal(t, "2025-03", entries[1].Month)
	})

	t.Run("snapshot run persists one row per ideal sector", func(t *testing.T) {
		for _, h := range []map[string]interface{}{
			{"symbol": "AAPL", "name": "Apple", "sector": "tech", "qty": 600, "avg_price": 1, "current_price": 1, "allocation_pct": 60},
			{"symbol": "BND", "name": "Bond ETF", "sector": "bonds", "qty": 300, "avg_price": 1, "current_price": 1, "allocation_pct": 40},
		} {
			resp := doRequest(t, ts, "POST", "/v1/holdings", testAPIKey, h)
			resp.Body.Close()
			require.Equal(t, http.StatusCreated, resp.StatusCode)
		}

		resp := doRequest(t, ts, "POST", "/v1/snapshot", testAPIKey, nil)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var batch []models.Snapshot
		decodeBody(t, resp, &batch)
		require.Len(t, batch, 2)
		assert.Equal(t, batch[0].Date, batch[1].Date)
		assert.True(t, batch[0].TotalValue.Equal(batch[1].TotalValue))
		assert.InDelta(t, 66.67, batch[0].ActualPct.InexactFloat64(), 0.01)
		assert.InDelta(t, -6.67, batch[1].Variance.InexactFloat64(), 0.01)

		listResp := doRequest(t, ts, "GET", "/v1/snapshots", testAPIKey, nil)
		var snapshots []models.Snapshot
		decodeBody(t, listResp, &snapshots)
		assert.Len(t, snapshots, 2)
	})

	t.Run("summary reflects the stored records", func(t *testing.T) {
		resp := doRequest(t, ts, "GET", "/v1/summary", testAPIKey, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var summary models.Summary
		decodeBody(t, resp, &summary)
		assert.InDelta(t, 900, summary.CurrentNetWorth.InexactFloat64(), 0.001)
		assert.Len(t, summary.AllocationVariance, 2)
		assert.LessOrEqual(t, len(summary.MonthlyTrend), 12)
	})

	t.Run("ideal allocation lists the seeded targets", func(t *testing.T) {
		resp := doRequest(t, ts, "GET", "/v1/ideal-allocation", testAPIKey, nil)
		var ideals []models.IdealAllocation
		decodeBody(t, resp, &ideals)
		require.Len(t, ideals, 2)
		assert.Equal(t, "tech", ideals[0].Sector)
	})
}

func TestRateLimit(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Service.RateLimit.Requests = 2
	cfg.Service.RateLimit.WindowSeconds = 60
	ts := newTestServer(t, cfg)

	for i := 0; i < 2; i++ {
		resp := doRequest(t, ts, "GET", "/v1/holdings", testAPIKey, nil)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode, "request %d", i)
	}

	resp := doRequest(t, ts, "GET", "/v1/holdings", testAPIKey, nil)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	var envelope utils.ErrorResponse
	decodeBody(t, resp, &envelope)
	assert.Equal(t, utils.KindRateLimited, envelope.Error)
}
