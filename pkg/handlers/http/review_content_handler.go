package http

import (
	"github.com/NeuralTrust/LegalGuard/pkg/app/review"
	"github.com/NeuralTrust/LegalGuard/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type reviewContentHandler struct {
	logger   *logrus.Logger
	reviewer review.Reviewer
}

func NewReviewContentHandler(logger *logrus.Logger, reviewer review.Reviewer) Handler {
	return &reviewContentHandler{
		logger:   logger,
		reviewer: reviewer,
	}
}

// Handle @Summary Review an AI output end to end
// @Description Runs the safety monitor and the advice analyzer, scores the text and rewrites it when asked
// @Tags Compliance
// @Accept json
// @Produce json
// @Param payload body request.ReviewRequest true "Text to review"
// @Success 200 {object} review.Result "Review result"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Analyzer failure"
// @Router /api/v1/compliance/review [post]
func (h *reviewContentHandler) Handle(c *fiber.Ctx) error {
	var req request.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.reviewer.Review(c.UserContext(), review.Request{
		Text:    req.Text,
		Hints:   req.Hints(),
		Rewrite: req.Rewrite,
	})
	if err != nil {
		h.logger.WithError(err).Error("failed to review content")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to review content"})
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
