package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/observability"
	"github.com/mnishanth02/navodhai-ecom-sub000/pkg/util"
)

func decodeEnvelope(t *testing.T, resp *http.Response) util.Result {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var result util.Result
	require.NoError(t, json.Unmarshal(body, &result))
	return result
}

func TestErrorMiddlewareEmitsEnvelope(t *testing.T) {
	metrics := observability.NewMetrics()
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), metrics, time.Second)

	app.Get("/boom", func(c *fiber.Ctx) error {
		return util.NewValidationError("validation failed", map[string]any{"name": "required"})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	result := decodeEnvelope(t, resp)
	assert.False(t, result.Success)
	require.NotNil(t, result.Error)
	assert.Equal(t, "VALIDATION_FAILED", result.Error.Code)
	assert.Equal(t, "required", result.Error.ValidationErrors["name"])

	assert.Equal(t, int64(1), metrics.ErrorCount("/boom", http.MethodGet, "VALIDATION_FAILED"))
}

func TestErrorMiddlewareRecoversPanics(t *testing.T) {
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)

	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("kaboom")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	result := decodeEnvelope(t, resp)
	require.NotNil(t, result.Error)
	assert.Equal(t, "INTERNAL_ERROR", result.Error.Code)
	// panic details never leak to the client
	assert.NotContains(t, result.Error.Message, "kaboom")
}

func TestSuccessPassesThroughUntouched(t *testing.T) {
	metrics := observability.NewMetrics()
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), metrics, time.Second)

	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(util.Ok(fiber.Map{"pong": true}))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	result := decodeEnvelope(t, resp)
	assert.True(t, result.Success)
	assert.Nil(t, result.Error)

	assert.Equal(t, int64(1), metrics.RequestCount("/ok", http.MethodGet, http.StatusOK))
}
