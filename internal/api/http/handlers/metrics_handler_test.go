package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/observability"
)

func TestMetricsOverview(t *testing.T) {
	metrics := observability.NewMetrics()
	metrics.RecordRequest("/stores", http.MethodGet, http.StatusOK, 5*time.Millisecond)
	metrics.RecordError("/auth/signin", http.MethodPost, "UNAUTHORIZED")

	app := fiber.New()
	app.Get("/admin/metrics", NewMetricsHandler(metrics).Overview)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Requests map[string]int64 `json:"requests"`
			Errors   map[string]int64 `json:"errors"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.EqualValues(t, 1, body.Data.Requests["/stores|GET|200"])
	assert.EqualValues(t, 1, body.Data.Errors["/auth/signin|POST|UNAUTHORIZED"])
}
