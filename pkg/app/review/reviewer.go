package review

import (
	"context"
	"fmt"
	"time"

	"github.com/NeuralTrust/LegalGuard/pkg/compliance"
	domainCompliance "github.com/NeuralTrust/LegalGuard/pkg/domain/compliance"
	"github.com/NeuralTrust/LegalGuard/pkg/domain/safety"
	"github.com/NeuralTrust/LegalGuard/pkg/scoring"
	"github.com/sirupsen/logrus"
)

// Classifier is the part of the safety monitor the reviewer needs.
type Classifier interface {
	Analyze(ctx context.Context, text string, hints safety.Hints) safety.Result
}

// InformationalRewriter is the part of the compliance rewriter the reviewer needs.
type InformationalRewriter interface {
	TransformToInformational(text string) string
}

type Request struct {
	Text    string
	Hints   safety.Hints
	Rewrite bool
}

type Result struct {
	Safety          safety.Result                    `json:"safety"`
	Analysis        *domainCompliance.AnalysisResult `json:"analysis"`
	ComplianceScore scoring.ComplianceScore01        `json:"compliance_score"`
	Compliant       bool                             `json:"compliant"`
	Rewritten       bool                             `json:"rewritten"`
	Text            string                           `json:"text"`
	Disclaimers     []string                         `json:"disclaimers"`
	ReviewedAt      time.Time                        `json:"reviewed_at"`
}

//go:generate mockery --name=Reviewer --dir=. --output=./mocks --filename=reviewer_mock.go --case=underscore --with-expecter
type Reviewer interface {
	Review(ctx context.Context, req Request) (*Result, error)
}

type reviewer struct {
	logger      *logrus.Logger
	classifier  Classifier
	analyzer    domainCompliance.Analyzer
	rewriter    InformationalRewriter
	autoRewrite bool
}

// NewReviewer wires the review pipeline. With autoRewrite set, text is rewritten
// whenever advice is detected or the monitor flags it, even if the caller did
// not ask for it.
func NewReviewer(
	logger *logrus.Logger,
	classifier Classifier,
	analyzer domainCompliance.Analyzer,
	rewriter InformationalRewriter,
	autoRewrite bool,
) Reviewer {
	return &reviewer{
		logger:      logger,
		classifier:  classifier,
		analyzer:    analyzer,
		rewriter:    rewriter,
		autoRewrite: autoRewrite,
	}
}

func (r *reviewer) Review(ctx context.Context, req Request) (*Result, error) {
	safetyResult := r.classifier.Analyze(ctx, req.Text, req.Hints)

	analysis, err := r.analyzer.AnalyzeText(ctx, req.Text)
	if err != nil {
		r.logger.WithError(err).Error("failed to analyze text for advice")
		return nil, fmt.Errorf("failed to analyze text: %w", err)
	}

	result := &Result{
		Safety:          safetyResult,
		Analysis:        analysis,
		ComplianceScore: analysis.ComplianceScore,
		Compliant:       scoring.Passes(analysis.ComplianceScore, len(analysis.Violations)),
		Text:            req.Text,
		Disclaimers:     []string{},
		ReviewedAt:      time.Now(),
	}

	flagged := analysis.HasAdvice || !safetyResult.IsSafe()
	if req.Rewrite || (r.autoRewrite && flagged) {
		result.Text = r.rewriter.TransformToInformational(req.Text)
		result.Rewritten = result.Text != req.Text
		result.Disclaimers = compliance.GeneralDisclaimers()
	}

	r.logger.WithFields(logrus.Fields{
		"level":      safetyResult.Level.String(),
		"has_advice": analysis.HasAdvice,
		"compliant":  result.Compliant,
		"rewritten":  result.Rewritten,
	}).Debug("text reviewed")

	return result, nil
}
