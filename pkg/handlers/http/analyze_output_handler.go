package http

import (
	"github.com/NeuralTrust/LegalGuard/pkg/domain/safety"
	"github.com/NeuralTrust/LegalGuard/pkg/handlers/http/request"
	"github.com/NeuralTrust/LegalGuard/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type analyzeOutputHandler struct {
	logger  *logrus.Logger
	monitor SafetyMonitor
}

func NewAnalyzeOutputHandler(logger *logrus.Logger, monitor SafetyMonitor) Handler {
	return &analyzeOutputHandler{
		logger:  logger,
		monitor: monitor,
	}
}

// Handle @Summary Analyze an AI output
// @Description Classifies a text output for bias, hallucination, ethical and content safety violations
// @Tags Safety
// @Accept json
// @Produce json
// @Param payload body request.AnalyzeRequest true "Text to analyze"
// @Success 200 {object} response.AnalyzeOutput "Analysis result"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /api/v1/safety/analyze [post]
func (h *analyzeOutputHandler) Handle(c *fiber.Ctx) error {
	var req request.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result := h.monitor.Analyze(c.UserContext(), req.Text, req.Hints())
	violations := result.Violations
	if violations == nil {
		violations = []safety.Violation{}
	}

	return c.Status(fiber.StatusOK).JSON(response.AnalyzeOutput{
		Level:             result.Level,
		IsSafe:            result.IsSafe(),
		Violations:        violations,
		ByCategory:        result.CountByCategory(),
		SafetyScore:       h.monitor.Metrics().SafetyScore,
		MonitoringEnabled: h.monitor.Enabled(),
	})
}
