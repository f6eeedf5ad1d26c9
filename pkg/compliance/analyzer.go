package compliance

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/NeuralTrust/LegalGuard/pkg/domain/compliance"
	"github.com/NeuralTrust/LegalGuard/pkg/domain/safety"
	"github.com/NeuralTrust/LegalGuard/pkg/patterns"
	"github.com/NeuralTrust/LegalGuard/pkg/scoring"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	AnalyzerPattern = "pattern"
	AnalyzerStatic  = "static"

	maxConcurrentRules = 8
)

var ErrUnknownAnalyzer = errors.New("unknown compliance analyzer")

// NewAnalyzer selects an analyzer implementation by name. An empty name selects
// the pattern analyzer.
func NewAnalyzer(kind string, logger *logrus.Logger, library *patterns.Library) (domain.Analyzer, error) {
	switch kind {
	case "", AnalyzerPattern:
		return NewPatternAnalyzer(logger, library), nil
	case AnalyzerStatic:
		return NewStaticAnalyzer(domain.AnalysisResult{ComplianceScore: 1}), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownAnalyzer, kind)
}

// PatternAnalyzer detects advice-like language with the library's
// legal_advice rules.
type PatternAnalyzer struct {
	logger  *logrus.Logger
	library *patterns.Library
}

func NewPatternAnalyzer(logger *logrus.Logger, library *patterns.Library) *PatternAnalyzer {
	return &PatternAnalyzer{
		logger:  logger,
		library: library,
	}
}

// AnalyzeText counts high and critical findings as violations and low and
// medium findings as warnings when scoring. Rules are matched concurrently and
// reported in library order; a cancelled context aborts the analysis.
func (a *PatternAnalyzer) AnalyzeText(ctx context.Context, text string) (*domain.AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rules := a.library.RulesFor(safety.CategoryLegalAdvice)
	found := make([][]string, len(rules))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentRules)
	for i, rule := range rules {
		i, rule := i, rule
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			found[i] = rule.FindAll(text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("advice analysis aborted: %w", err)
	}

	result := &domain.AnalysisResult{Violations: []domain.AdviceFinding{}}
	violations, warnings := 0, 0
	for i, rule := range rules {
		matches := found[i]
		if len(matches) == 0 {
			continue
		}
		result.Violations = append(result.Violations, domain.AdviceFinding{
			RuleID:      rule.ID,
			Description: rule.Description,
			Severity:    rule.Severity,
			Matches:     matches,
		})
		switch rule.Severity {
		case safety.SeverityHigh, safety.SeverityCritical:
			violations++
		default:
			warnings++
		}
	}

	result.HasAdvice = len(result.Violations) > 0
	result.ComplianceScore = scoring.ComplianceScore(violations, warnings)
	if result.HasAdvice {
		a.logger.WithField("findings", len(result.Violations)).Debug("advice language detected")
	}
	return result, nil
}

// StaticAnalyzer returns a fixed result. It stands in for the pattern analyzer
// where detection is not wanted.
type StaticAnalyzer struct {
	result domain.AnalysisResult
}

func NewStaticAnalyzer(result domain.AnalysisResult) *StaticAnalyzer {
	return &StaticAnalyzer{result: result}
}

func (s *StaticAnalyzer) AnalyzeText(_ context.Context, _ string) (*domain.AnalysisResult, error) {
	out := s.result
	out.Violations = append([]domain.AdviceFinding{}, s.result.Violations...)
	return &out, nil
}
