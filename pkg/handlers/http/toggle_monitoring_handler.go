package http

import (
	"github.com/NeuralTrust/LegalGuard/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type toggleMonitoringHandler struct {
	logger  *logrus.Logger
	monitor SafetyMonitor
	enable  bool
}

func NewEnableMonitoringHandler(logger *logrus.Logger, monitor SafetyMonitor) Handler {
	return &toggleMonitoringHandler{
		logger:  logger,
		monitor: monitor,
		enable:  true,
	}
}

func NewDisableMonitoringHandler(logger *logrus.Logger, monitor SafetyMonitor) Handler {
	return &toggleMonitoringHandler{
		logger:  logger,
		monitor: monitor,
		enable:  false,
	}
}

// Handle @Summary Enable or disable safety monitoring
// @Description While disabled, analyses return SAFE with no violations and change no state
// @Tags Safety
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Success 200 {object} response.MonitoringOutput "Monitoring state"
// @Router /api/v1/safety/monitoring/enable [post]
// @Router /api/v1/safety/monitoring/disable [post]
func (h *toggleMonitoringHandler) Handle(c *fiber.Ctx) error {
	message := "safety monitoring enabled"
	if h.enable {
		h.monitor.Enable()
	} else {
		h.monitor.Disable()
		message = "safety monitoring disabled"
	}
	return c.Status(fiber.StatusOK).JSON(response.MonitoringOutput{
		MonitoringEnabled: h.monitor.Enabled(),
		Message:           message,
	})
}
