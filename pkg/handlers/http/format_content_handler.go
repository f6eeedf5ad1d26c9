package http

import (
	"errors"

	domainCompliance "github.com/NeuralTrust/LegalGuard/pkg/domain/compliance"
	"github.com/NeuralTrust/LegalGuard/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type formatContentHandler struct {
	logger   *logrus.Logger
	rewriter ComplianceRewriter
}

func NewFormatContentHandler(logger *logrus.Logger, rewriter ComplianceRewriter) Handler {
	return &formatContentHandler{
		logger:   logger,
		rewriter: rewriter,
	}
}

// Handle @Summary Format content for presentation
// @Description Builds sectioned content from a template, attaches disclaimers and validates it.
// @Description With apply_corrections set, one corrective pass runs on non-compliant content.
// @Tags Compliance
// @Accept json
// @Produce json
// @Param payload body request.FormatRequest true "Source content"
// @Success 200 {object} compliance.FormattedContent "Formatted content"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /api/v1/compliance/format [post]
func (h *formatContentHandler) Handle(c *fiber.Ctx) error {
	var req request.FormatRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	source, err := domainCompliance.DecodeSource(req.Content)
	if err != nil {
		if errors.Is(err, domainCompliance.ErrInvalidContent) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).Error("failed to decode source content")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to decode content"})
	}

	var mode domainCompliance.PresentationMode
	if req.Mode != "" {
		// unknown names are passed through so the rewriter records the fallback
		if parsed, ok := domainCompliance.ParseMode(req.Mode); ok {
			mode = parsed
		} else {
			mode = domainCompliance.PresentationMode(req.Mode)
		}
	}

	content := h.rewriter.FormatContent(source, mode, req.CustomRequirements)
	if req.ApplyCorrections {
		content = h.rewriter.ApplyCorrections(content)
	}
	return c.Status(fiber.StatusOK).JSON(content)
}
