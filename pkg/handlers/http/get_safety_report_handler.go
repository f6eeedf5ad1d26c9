package http

import (
	"github.com/NeuralTrust/LegalGuard/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getSafetyReportHandler struct {
	logger  *logrus.Logger
	monitor SafetyMonitor
}

func NewGetSafetyReportHandler(logger *logrus.Logger, monitor SafetyMonitor) Handler {
	return &getSafetyReportHandler{
		logger:  logger,
		monitor: monitor,
	}
}

// Handle @Summary Get safety report
// @Description Summarises the alerts raised in the last hours with recommendations
// @Tags Safety
// @Produce json
// @Param hours query number false "Window in hours (default 24)"
// @Success 200 {object} safety.Report "Safety report"
// @Failure 400 {object} map[string]interface{} "Invalid query"
// @Router /api/v1/safety/report [get]
func (h *getSafetyReportHandler) Handle(c *fiber.Ctx) error {
	var q request.AlertsQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid query parameters"})
	}
	if err := q.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(h.monitor.Report(q.Hours))
}
