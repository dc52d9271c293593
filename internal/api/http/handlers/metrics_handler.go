package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mnishanth02/navodhai-ecom-sub000/internal/observability"
	"github.com/mnishanth02/navodhai-ecom-sub000/pkg/util"
)

// MetricsHandler exposes request counters to platform admins.
type MetricsHandler struct {
	metrics *observability.Metrics
}

// NewMetricsHandler constructs handler.
func NewMetricsHandler(metrics *observability.Metrics) *MetricsHandler {
	return &MetricsHandler{metrics: metrics}
}

// Overview handles GET /admin/metrics.
func (h *MetricsHandler) Overview(c *fiber.Ctx) error {
	requests, errors := h.metrics.Snapshot()
	return c.JSON(util.Ok(fiber.Map{
		"requests": requests,
		"errors":   errors,
	}))
}
