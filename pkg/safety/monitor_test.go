package safety

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	domain "github.com/NeuralTrust/LegalGuard/pkg/domain/safety"
	"github.com/NeuralTrust/LegalGuard/pkg/patterns"
	"github.com/NeuralTrust/LegalGuard/pkg/safety/mocks"
	"github.com/NeuralTrust/LegalGuard/pkg/scoring"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	textAdvice      = "You should hire an attorney for this case."
	textNeutral     = "Generally, contracts require consideration to be valid."
	textBestOption  = "the best option is mediation."
	textPerjury     = "Just lie under oath."
	textObligation  = "You must sue immediately."
	textStereotype  = "Judges always favor landlords."
	textCommonClaim = "It is well known that rent is due on the first."
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func sequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("alert-%d", n)
	}
}

func newTestMonitor(opts ...Option) *Monitor {
	base := []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(sequentialIDs()),
	}
	return NewMonitor(newLogger(), patterns.MustDefaultLibrary(), append(base, opts...)...)
}

func TestAnalyze_DirectiveAdviceIsDanger(t *testing.T) {
	m := newTestMonitor()

	result := m.Analyze(context.Background(), textAdvice, nil)

	assert.GreaterOrEqual(t, result.Level, domain.LevelDanger)
	require.NotEmpty(t, result.Violations)
	assert.Equal(t, domain.CategoryEthical, result.Violations[0].Category)
	assert.Equal(t, "ethical.directive_should", result.Violations[0].Metadata["rule_id"])
	assert.Equal(t, []string{"You should"}, result.Violations[0].Metadata["matches"])
	assert.Equal(t, 1, result.Violations[0].Metadata["match_count"])
	assert.Equal(t, 0.8, result.Violations[0].Confidence)
	assert.Equal(t, textAdvice, result.Violations[0].SourceExcerpt)
	assert.Equal(t, fixedNow, result.Violations[0].Timestamp)
	assert.False(t, result.Violations[0].Resolved)
}

func TestAnalyze_NeutralTextIsSafe(t *testing.T) {
	m := newTestMonitor()

	result := m.Analyze(context.Background(), textNeutral, nil)

	assert.Equal(t, domain.LevelSafe, result.Level)
	assert.Empty(t, result.Violations)
	metrics := m.Metrics()
	assert.Equal(t, 1, metrics.TotalOutputsAnalyzed)
	assert.Equal(t, 1, metrics.SafeOutputs)
	assert.Equal(t, 0, m.Alerts().Len())
}

func TestAnalyze_EmptyTextCountsAsSafe(t *testing.T) {
	m := newTestMonitor()

	result := m.Analyze(context.Background(), "", nil)

	assert.True(t, result.IsSafe())
	assert.NotNil(t, result.Violations)
	assert.Empty(t, result.Violations)
	assert.Equal(t, 1, m.Metrics().SafeOutputs)
}

func TestAnalyze_DisabledLeavesMetricsUntouched(t *testing.T) {
	m := newTestMonitor()
	m.Analyze(context.Background(), textAdvice, nil)
	before := m.Metrics()
	alertsBefore := m.Alerts().Len()

	m.Disable()
	result := m.Analyze(context.Background(), textObligation, nil)

	assert.Equal(t, domain.LevelSafe, result.Level)
	assert.Empty(t, result.Violations)
	assert.Equal(t, before, m.Metrics())
	assert.Equal(t, alertsBefore, m.Alerts().Len())
	assert.False(t, m.StatusSnapshot().MonitoringEnabled)

	m.Enable()
	result = m.Analyze(context.Background(), textObligation, nil)
	assert.Equal(t, domain.LevelDanger, result.Level)
}

func TestAnalyze_EmptyLibraryIsBypass(t *testing.T) {
	lib, err := patterns.NewLibrary(nil)
	require.NoError(t, err)
	m := NewMonitor(newLogger(), lib)

	result := m.Analyze(context.Background(), textPerjury, nil)

	assert.Equal(t, domain.LevelSafe, result.Level)
	assert.Empty(t, result.Violations)
	assert.Equal(t, 0, m.Metrics().TotalOutputsAnalyzed)
}

func TestAnalyze_ContentSafetyAlwaysCritical(t *testing.T) {
	m := newTestMonitor()

	result := m.Analyze(context.Background(), textPerjury, nil)

	require.Len(t, result.Violations, 1)
	v := result.Violations[0]
	assert.Equal(t, domain.CategoryContentSafety, v.Category)
	assert.Equal(t, domain.SeverityMedium, v.RuleSeverity)
	assert.Equal(t, domain.LevelCritical, v.Level)
	assert.Equal(t, domain.LevelCritical, result.Level)
	assert.Equal(t, 0.9, v.Confidence)
}

func TestAnalyze_ClientCommunicationElevatesEthicalWarnings(t *testing.T) {
	m := newTestMonitor()

	plain := m.Analyze(context.Background(), textBestOption, nil)
	elevated := m.Analyze(context.Background(), textBestOption, domain.Hints{
		HintContentType: ContentTypeClientCommunication,
		"jurisdiction":  "CA",
		"unknown":       42,
	})

	assert.Equal(t, domain.LevelWarning, plain.Level)
	assert.Equal(t, domain.LevelDanger, elevated.Level)
	require.Len(t, elevated.Violations, 1)
	assert.Equal(t, domain.SeverityMedium, elevated.Violations[0].RuleSeverity)
}

func TestAnalyze_ViolationsFollowCategoryOrder(t *testing.T) {
	m := newTestMonitor()
	text := strings.Join([]string{textPerjury, textCommonClaim, textStereotype}, " ")

	result := m.Analyze(context.Background(), text, nil)

	require.Len(t, result.Violations, 3)
	assert.Equal(t, domain.CategoryBias, result.Violations[0].Category)
	assert.Equal(t, domain.CategoryHallucination, result.Violations[1].Category)
	assert.Equal(t, domain.CategoryContentSafety, result.Violations[2].Category)
	assert.Equal(t, "alert-1", result.Violations[0].ID)
	assert.Equal(t, "alert-3", result.Violations[2].ID)
}

func TestAnalyze_ExcerptIsBounded(t *testing.T) {
	m := newTestMonitor(WithExcerptLimit(20))
	text := textAdvice + strings.Repeat(" filler", 100)

	result := m.Analyze(context.Background(), text, nil)

	require.NotEmpty(t, result.Violations)
	assert.Equal(t, text[:20], result.Violations[0].SourceExcerpt)
}

func TestExcerpt_NormalisesAndCountsRunes(t *testing.T) {
	decomposed := "Re\u0301sume\u0301 review"
	assert.Equal(t, "R\u00e9sum\u00e9 review", Excerpt(decomposed, 0))
	assert.Equal(t, "R\u00e9s", Excerpt(decomposed, 3))
	assert.Equal(t, "short", Excerpt("short", DefaultExcerptLimit))
}

func TestMetrics_OneBucketPerCall(t *testing.T) {
	m := newTestMonitor()
	ctx := context.Background()

	m.Analyze(ctx, textNeutral, nil)
	m.Analyze(ctx, textBestOption, nil)
	m.Analyze(ctx, textAdvice, nil)
	m.Analyze(ctx, textPerjury+" "+textAdvice, nil)

	metrics := m.Metrics()
	assert.Equal(t, 4, metrics.TotalOutputsAnalyzed)
	assert.Equal(t, 1, metrics.SafeOutputs)
	assert.Equal(t, 1, metrics.WarningOutputs)
	assert.Equal(t, 1, metrics.DangerOutputs)
	assert.Equal(t, 1, metrics.CriticalOutputs)
	assert.Equal(t, 3, metrics.IssueCounts[domain.CategoryEthical])
	assert.Equal(t, 1, metrics.IssueCounts[domain.CategoryContentSafety])
	assert.Equal(t, 0, metrics.IssueCounts[domain.CategoryBias])
	// (0.1 + 0.5 + 1.0) / 4 = 0.4
	assert.InDelta(t, 60.0, float64(metrics.SafetyScore), 0.0001)
	assert.Equal(t, fixedNow, metrics.LastUpdated)
}

func TestStatusSnapshot(t *testing.T) {
	m := newTestMonitor()
	ctx := context.Background()

	snap := m.StatusSnapshot()
	assert.True(t, snap.MonitoringEnabled)
	assert.Equal(t, StatusHealthy, snap.SystemStatus)
	assert.InDelta(t, 100.0, float64(snap.SafetyScore), 0.0001)

	m.Analyze(ctx, textAdvice, nil)
	m.Analyze(ctx, textPerjury, nil)

	snap = m.StatusSnapshot()
	assert.Equal(t, 2, snap.TotalOutputsAnalyzed)
	assert.Equal(t, SafetyBreakdown{Danger: 1, Critical: 1}, snap.SafetyBreakdown)
	assert.Equal(t, IssueCounts{Ethical: 1, ContentSafety: 1}, snap.IssueCounts)
	assert.Equal(t, 2, snap.ActiveAlerts)
	assert.Equal(t, StatusNeedsAttention, snap.SystemStatus)
}

func TestResolveAlert(t *testing.T) {
	m := newTestMonitor()
	result := m.Analyze(context.Background(), textAdvice, nil)
	require.Len(t, result.Violations, 1)
	id := result.Violations[0].ID

	assert.True(t, m.ResolveAlert(id, "reviewed"))
	first, ok := m.Alerts().Get(id)
	require.True(t, ok)
	require.NotNil(t, first.ResolvedAt)

	assert.True(t, m.ResolveAlert(id, "again"), "resolving twice is a successful no-op")
	second, _ := m.Alerts().Get(id)
	assert.Equal(t, "reviewed", second.ResolutionNote)
	assert.Equal(t, *first.ResolvedAt, *second.ResolvedAt)

	assert.False(t, m.ResolveAlert("missing", "note"))
	assert.Equal(t, 0, m.StatusSnapshot().ActiveAlerts)
}

func TestRecentAlerts_WindowAndCategory(t *testing.T) {
	now := fixedNow
	m := newTestMonitor(WithClock(func() time.Time { return now }))
	ctx := context.Background()

	m.Analyze(ctx, textStereotype, nil)
	now = now.Add(3 * time.Hour)
	m.Analyze(ctx, textAdvice, nil)

	assert.Len(t, m.RecentAlerts(1, ""), 1)
	assert.Len(t, m.RecentAlerts(4, ""), 2)
	assert.Len(t, m.RecentAlerts(4, domain.CategoryBias), 1)
	assert.Empty(t, m.RecentAlerts(1, domain.CategoryBias))
}

func TestRecentAlerts_OutOfRangeWindows(t *testing.T) {
	now := fixedNow
	m := newTestMonitor(WithClock(func() time.Time { return now }))
	ctx := context.Background()

	m.Analyze(ctx, textStereotype, nil)
	now = now.Add(3 * time.Hour)
	m.Analyze(ctx, textAdvice, nil)

	assert.Len(t, m.RecentAlerts(math.Inf(1), ""), 2)
	assert.Len(t, m.RecentAlerts(5e6, ""), 2)
	assert.Len(t, m.RecentAlerts(math.MaxFloat64, domain.CategoryBias), 1)
	assert.Len(t, m.RecentAlerts(-1, ""), 1, "only alerts stamped now")
	assert.Len(t, m.RecentAlerts(math.NaN(), ""), 1)
	assert.Len(t, m.RecentAlerts(math.Inf(-1), ""), 1)
}

func TestAnalyze_BufferEvictsOldest(t *testing.T) {
	m := newTestMonitor(WithAlertCapacity(3))

	for i := 0; i < 4; i++ {
		result := m.Analyze(context.Background(), textBestOption, nil)
		require.Len(t, result.Violations, 1)
	}

	all := m.Alerts().All()
	assert.Equal(t, 3, m.Alerts().Capacity())
	require.Len(t, all, 3)
	assert.Equal(t, "alert-2", all[0].ID)
	assert.Equal(t, "alert-4", all[2].ID)
	_, found := m.Alerts().Get("alert-1")
	assert.False(t, found)
	assert.Equal(t, 4, m.Metrics().WarningOutputs)
}

func TestAnalyze_HandsResultToRecorder(t *testing.T) {
	recorder := mocks.NewRecorder(t)
	recorder.EXPECT().
		Record(mock.Anything, mock.MatchedBy(func(r domain.Result) bool {
			return r.Level == domain.LevelDanger && len(r.Violations) == 1
		}), scoring.SafetyScore100(50)).
		Return().
		Once()

	m := newTestMonitor(WithRecorder(recorder))
	m.Analyze(context.Background(), textAdvice, nil)

	m.Disable()
	m.Analyze(context.Background(), textAdvice, nil)
}

func TestAnalyze_ConcurrentCallersAreSerialised(t *testing.T) {
	m := NewMonitor(newLogger(), patterns.MustDefaultLibrary())
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				m.Analyze(context.Background(), textAdvice, nil)
				return
			}
			m.Analyze(context.Background(), textNeutral, nil)
		}(i)
	}
	wg.Wait()

	metrics := m.Metrics()
	assert.Equal(t, 50, metrics.TotalOutputsAnalyzed)
	assert.Equal(t, 25, metrics.DangerOutputs)
	assert.Equal(t, 25, metrics.SafeOutputs)
	assert.Equal(t, 25, m.Alerts().Len())
}

func TestReport(t *testing.T) {
	m := newTestMonitor()

	empty := m.Report(24)
	assert.Equal(t, 0, empty.TotalAlerts)
	assert.Equal(t, []string{RecommendationNoIssues}, empty.Recommendations)

	m.Analyze(context.Background(), textPerjury+" "+textStereotype, nil)
	report := m.Report(24)

	assert.Equal(t, 2, report.TotalAlerts)
	assert.Equal(t, 2, report.Unresolved)
	assert.Equal(t, 1, report.ByCategory[domain.CategoryBias])
	assert.Equal(t, 1, report.ByLevel["CRITICAL"])
	assert.Equal(t, 1, report.ByLevel["WARNING"])
	assert.Equal(t, []string{
		RecommendationCritical,
		RecommendationBias,
		RecommendationContentSafety,
		RecommendationLowScore,
	}, report.Recommendations)
	assert.Equal(t, fixedNow, report.GeneratedAt)
}
