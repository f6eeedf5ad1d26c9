package http

import (
	"github.com/NeuralTrust/LegalGuard/pkg/common"
	"github.com/NeuralTrust/LegalGuard/pkg/domain"
	"github.com/NeuralTrust/LegalGuard/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type resolveAlertHandler struct {
	logger  *logrus.Logger
	monitor SafetyMonitor
}

func NewResolveAlertHandler(logger *logrus.Logger, monitor SafetyMonitor) Handler {
	return &resolveAlertHandler{
		logger:  logger,
		monitor: monitor,
	}
}

// Handle @Summary Resolve a safety alert
// @Description Marks an alert resolved with an optional note. Resolving twice succeeds.
// @Tags Safety
// @Accept json
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param alert_id path string true "Alert ID"
// @Param payload body request.ResolveAlertRequest false "Resolution note"
// @Success 204 "Alert resolved"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Alert not found"
// @Router /api/v1/safety/alerts/{alert_id}/resolve [post]
func (h *resolveAlertHandler) Handle(c *fiber.Ctx) error {
	alertID := c.Params("alert_id")
	if alertID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "alert_id is required"})
	}

	var req request.ResolveAlertRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			h.logger.WithError(err).Error("failed to bind request")
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
		}
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if !h.monitor.ResolveAlert(alertID, req.Note) {
		err := domain.NewNotFoundError("alert", alertID)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	h.logger.WithFields(logrus.Fields{
		"alert_id": alertID,
		"trace_id": common.TraceID(c.UserContext()),
	}).Info("alert resolved through admin API")
	return c.SendStatus(fiber.StatusNoContent)
}
