package http

import (
	"github.com/NeuralTrust/LegalGuard/pkg/handlers/http/request"
	"github.com/NeuralTrust/LegalGuard/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type transformContentHandler struct {
	logger   *logrus.Logger
	rewriter ComplianceRewriter
}

func NewTransformContentHandler(logger *logrus.Logger, rewriter ComplianceRewriter) Handler {
	return &transformContentHandler{
		logger:   logger,
		rewriter: rewriter,
	}
}

// Handle @Summary Rewrite advisory text as general information
// @Description Replaces directive and advisory phrasing with informational equivalents
// @Tags Compliance
// @Accept json
// @Produce json
// @Param payload body request.TransformRequest true "Text to rewrite"
// @Success 200 {object} response.TransformOutput "Rewritten text"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /api/v1/compliance/transform [post]
func (h *transformContentHandler) Handle(c *fiber.Ctx) error {
	var req request.TransformRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	out := h.rewriter.TransformToInformational(req.Text)
	return c.Status(fiber.StatusOK).JSON(response.TransformOutput{
		OriginalText:      req.Text,
		InformationalText: out,
		Changed:           out != req.Text,
	})
}
