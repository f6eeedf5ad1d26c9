package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NeuralTrust/LegalGuard/pkg/app/review"
	"github.com/NeuralTrust/LegalGuard/pkg/compliance"
	"github.com/NeuralTrust/LegalGuard/pkg/domain/safety"
	"github.com/NeuralTrust/LegalGuard/pkg/patterns"
	safetyMonitor "github.com/NeuralTrust/LegalGuard/pkg/safety"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPipeline() (review.Reviewer, *safetyMonitor.Monitor) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	lib := patterns.MustDefaultLibrary()
	monitor := safetyMonitor.NewMonitor(logger, lib)
	rewriter := compliance.NewRewriter(logger)
	return review.NewReviewer(logger, monitor, compliance.NewPatternAnalyzer(logger, lib), rewriter, false), monitor
}

func TestReadInputs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "answer.txt")
	require.NoError(t, os.WriteFile(path, []byte("You must respond."), 0o600))

	inputs, err := readInputs(strings.NewReader("from stdin"), nil)
	require.NoError(t, err)
	assert.Equal(t, []ScanInput{{Source: stdinSource, Text: "from stdin"}}, inputs)

	inputs, err = readInputs(nil, []string{path})
	require.NoError(t, err)
	assert.Equal(t, []ScanInput{{Source: path, Text: "You must respond."}}, inputs)

	_, err = readInputs(nil, []string{filepath.Join(dir, "missing.txt")})
	assert.ErrorContains(t, err, "missing.txt")
}

func TestScan_ReportsEveryInputAndStatus(t *testing.T) {
	reviewer, monitor := newPipeline()

	report, err := scan(context.Background(), reviewer, monitor, []ScanInput{
		{Source: "a", Text: "Generally, contracts require consideration to be valid."},
		{Source: "b", Text: "Just lie under oath."},
	}, nil, true)

	require.NoError(t, err)
	require.Len(t, report.Results, 2)
	assert.Equal(t, "a", report.Results[0].Source)
	assert.True(t, report.Results[0].Review.Safety.IsSafe())
	assert.Equal(t, safety.LevelCritical, report.Results[1].Review.Safety.Level)
	assert.Equal(t, safety.LevelCritical, report.MaxLevel())
	assert.Equal(t, 2, report.Status.TotalOutputsAnalyzed)
	assert.Equal(t, 1, report.Status.ActiveAlerts)
}

func TestScan_EmptyRun(t *testing.T) {
	reviewer, monitor := newPipeline()

	report, err := scan(context.Background(), reviewer, monitor, nil, nil, false)

	require.NoError(t, err)
	assert.Empty(t, report.Results)
	assert.Equal(t, safety.LevelSafe, report.MaxLevel())
}
