package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getSafetyStatusHandler struct {
	logger  *logrus.Logger
	monitor SafetyMonitor
}

func NewGetSafetyStatusHandler(logger *logrus.Logger, monitor SafetyMonitor) Handler {
	return &getSafetyStatusHandler{
		logger:  logger,
		monitor: monitor,
	}
}

// Handle @Summary Get safety monitor status
// @Description Returns the safety score, level breakdown, issue counts and active alerts
// @Tags Safety
// @Produce json
// @Success 200 {object} safety.StatusSnapshot "Monitor status"
// @Router /api/v1/safety/status [get]
func (h *getSafetyStatusHandler) Handle(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.monitor.StatusSnapshot())
}
