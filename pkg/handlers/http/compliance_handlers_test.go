package http

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/NeuralTrust/LegalGuard/pkg/app/review"
	"github.com/NeuralTrust/LegalGuard/pkg/app/review/mocks"
	"github.com/NeuralTrust/LegalGuard/pkg/compliance"
	domainCompliance "github.com/NeuralTrust/LegalGuard/pkg/domain/compliance"
	"github.com/NeuralTrust/LegalGuard/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTransformContentHandler(t *testing.T) {
	app := fiber.New()
	app.Post("/transform", NewTransformContentHandler(newLogger(), compliance.NewRewriter(newLogger())).Handle)

	status, body := doJSON(t, app, "POST", "/transform", map[string]string{
		"text": "You should consider settlement. I recommend mediation.",
	})

	require.Equal(t, fiber.StatusOK, status)
	var out response.TransformOutput
	require.NoError(t, json.Unmarshal(body, &out))
	assert.True(t, out.Changed)
	assert.Equal(t, "Parties commonly consider settlement. Commonly used approaches include mediation.", out.InformationalText)

	status, body = doJSON(t, app, "POST", "/transform", map[string]string{})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, string(body), "text is required")
}

func TestFormatContentHandler_WithCorrections(t *testing.T) {
	app := fiber.New()
	app.Post("/format", NewFormatContentHandler(newLogger(), compliance.NewRewriter(newLogger())).Handle)

	payload := map[string]interface{}{
		"content": map[string]interface{}{
			"title":       "Mediation",
			"description": "The best option is X",
		},
		"mode": "summary",
	}

	status, body := doJSON(t, app, "POST", "/format", payload)
	require.Equal(t, fiber.StatusOK, status)
	var plain domainCompliance.FormattedContent
	require.NoError(t, json.Unmarshal(body, &plain))
	assert.False(t, plain.Validation.IsCompliant)
	assert.False(t, plain.CorrectionsApplied)

	payload["apply_corrections"] = true
	status, body = doJSON(t, app, "POST", "/format", payload)
	require.Equal(t, fiber.StatusOK, status)
	var corrected domainCompliance.FormattedContent
	require.NoError(t, json.Unmarshal(body, &corrected))
	assert.True(t, corrected.Validation.IsCompliant)
	assert.True(t, corrected.CorrectionsApplied)
	require.Len(t, corrected.Sections, 1)
	assert.Equal(t, "One option that may be considered is X", corrected.Sections[0].Content)
}

func TestFormatContentHandler_UnknownModeFallsBack(t *testing.T) {
	app := fiber.New()
	app.Post("/format", NewFormatContentHandler(newLogger(), compliance.NewRewriter(newLogger())).Handle)

	status, body := doJSON(t, app, "POST", "/format", map[string]interface{}{
		"content": map[string]interface{}{"description": "General information."},
		"mode":    "poster",
	})

	require.Equal(t, fiber.StatusOK, status)
	var out domainCompliance.FormattedContent
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, domainCompliance.ModeSummary, out.Mode)
	require.NotEmpty(t, out.ComplianceNotes)
	assert.Contains(t, out.ComplianceNotes[0], "poster")
}

func TestFormatContentHandler_Validation(t *testing.T) {
	app := fiber.New()
	app.Post("/format", NewFormatContentHandler(newLogger(), compliance.NewRewriter(newLogger())).Handle)

	status, body := doJSON(t, app, "POST", "/format", map[string]interface{}{"mode": "summary"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, string(body), "content is required")

	status, _ = doJSON(t, app, "POST", "/format", map[string]interface{}{
		"content": map[string]interface{}{"advantages": map[string]interface{}{"a": 1}},
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestReviewContentHandler(t *testing.T) {
	reviewer := mocks.NewReviewer(t)
	reviewer.EXPECT().Review(mock.Anything, review.Request{
		Text:    "You must respond.",
		Hints:   nil,
		Rewrite: true,
	}).Return(&review.Result{
		Compliant: false,
		Rewritten: true,
		Text:      "Parties are generally required to respond.",
	}, nil).Once()

	app := fiber.New()
	app.Post("/review", NewReviewContentHandler(newLogger(), reviewer).Handle)

	status, body := doJSON(t, app, "POST", "/review", map[string]interface{}{
		"text":    "You must respond.",
		"rewrite": true,
	})

	require.Equal(t, fiber.StatusOK, status)
	var out review.Result
	require.NoError(t, json.Unmarshal(body, &out))
	assert.True(t, out.Rewritten)
	assert.Equal(t, "Parties are generally required to respond.", out.Text)
}

func TestReviewContentHandler_ReviewerFailure(t *testing.T) {
	reviewer := mocks.NewReviewer(t)
	reviewer.EXPECT().Review(mock.Anything, mock.Anything).Return(nil, errors.New("analyzer down")).Once()

	app := fiber.New()
	app.Post("/review", NewReviewContentHandler(newLogger(), reviewer).Handle)

	status, body := doJSON(t, app, "POST", "/review", map[string]interface{}{"text": "anything"})

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Contains(t, string(body), "failed to review content")
}
