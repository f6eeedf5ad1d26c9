package http

import (
	"github.com/NeuralTrust/LegalGuard/pkg/domain/safety"
	"github.com/NeuralTrust/LegalGuard/pkg/handlers/http/request"
	"github.com/NeuralTrust/LegalGuard/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listAlertsHandler struct {
	logger  *logrus.Logger
	monitor SafetyMonitor
}

func NewListAlertsHandler(logger *logrus.Logger, monitor SafetyMonitor) Handler {
	return &listAlertsHandler{
		logger:  logger,
		monitor: monitor,
	}
}

// Handle @Summary List recent safety alerts
// @Description Returns alerts raised in the last hours, optionally for one category
// @Tags Safety
// @Produce json
// @Param hours query number false "Window in hours (default 24)"
// @Param category query string false "bias, hallucination, ethical_violation or content_safety"
// @Success 200 {object} response.AlertsOutput "Alerts"
// @Failure 400 {object} map[string]interface{} "Invalid query"
// @Router /api/v1/safety/alerts [get]
func (h *listAlertsHandler) Handle(c *fiber.Ctx) error {
	var q request.AlertsQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid query parameters"})
	}
	if err := q.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	alerts := h.monitor.RecentAlerts(q.Hours, q.CategoryFilter())
	if alerts == nil {
		alerts = []safety.Violation{}
	}
	return c.Status(fiber.StatusOK).JSON(response.AlertsOutput{
		WindowHours: q.Hours,
		Category:    q.Category,
		Count:       len(alerts),
		Alerts:      alerts,
	})
}
