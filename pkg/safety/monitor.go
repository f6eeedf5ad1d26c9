// Package safety implements the output monitor: it classifies text against the
// pattern library, keeps rolling safety metrics and a bounded alert history.
package safety

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/NeuralTrust/LegalGuard/pkg/common"
	domain "github.com/NeuralTrust/LegalGuard/pkg/domain/safety"
	"github.com/NeuralTrust/LegalGuard/pkg/patterns"
	"github.com/NeuralTrust/LegalGuard/pkg/scoring"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/unicode/norm"
)

const (
	DefaultExcerptLimit = 500

	// ContentTypeClientCommunication elevates ethical warnings to danger.
	ContentTypeClientCommunication = "client_communication"
	HintContentType                = "content_type"
)

// Recorder receives every analysis that touched the metrics, along with the
// safety score after it was counted. Implementations must not block the caller.
//
//go:generate mockery --name=Recorder --dir=. --output=./mocks --filename=recorder_mock.go --case=underscore --with-expecter
type Recorder interface {
	Record(ctx context.Context, result domain.Result, score scoring.SafetyScore100)
}

type Option func(*Monitor)

func WithClock(clock func() time.Time) Option {
	return func(m *Monitor) {
		m.clock = clock
	}
}

func WithIDGenerator(gen func() string) Option {
	return func(m *Monitor) {
		m.newID = gen
	}
}

func WithAlertCapacity(capacity int) Option {
	return func(m *Monitor) {
		m.alertCapacity = capacity
	}
}

func WithExcerptLimit(limit int) Option {
	return func(m *Monitor) {
		if limit > 0 {
			m.excerptLimit = limit
		}
	}
}

func WithRecorder(r Recorder) Option {
	return func(m *Monitor) {
		m.recorder = r
	}
}

// WithMonitoringEnabled sets the initial state of the bypass switch.
func WithMonitoringEnabled(enabled bool) Option {
	return func(m *Monitor) {
		m.enabled.Store(enabled)
	}
}

// Monitor is the process-wide output classifier. Construct one at start-up and
// share it; all methods are safe for concurrent use.
type Monitor struct {
	logger        *logrus.Logger
	library       *patterns.Library
	recorder      Recorder
	clock         func() time.Time
	newID         func() string
	excerptLimit  int
	alertCapacity int
	enabled       atomic.Bool

	mu      sync.RWMutex
	tracker *tracker
	alerts  *AlertStore
}

func NewMonitor(logger *logrus.Logger, library *patterns.Library, opts ...Option) *Monitor {
	m := &Monitor{
		logger:        logger,
		library:       library,
		clock:         time.Now,
		newID:         uuid.NewString,
		excerptLimit:  DefaultExcerptLimit,
		alertCapacity: DefaultAlertCapacity,
	}
	m.enabled.Store(true)
	for _, opt := range opts {
		opt(m)
	}
	m.tracker = newTracker(m.clock())
	m.alerts = NewAlertStore(m.alertCapacity).WithClock(m.clock)
	return m
}

func (m *Monitor) Enable() {
	m.enabled.Store(true)
	m.logger.Info("safety monitoring enabled")
}

func (m *Monitor) Disable() {
	m.enabled.Store(false)
	m.logger.Warn("safety monitoring disabled")
}

func (m *Monitor) Enabled() bool {
	return m.enabled.Load()
}

func (m *Monitor) Alerts() *AlertStore {
	return m.alerts
}

// Analyze classifies text. Rules run category by category in a fixed order,
// producing one violation per matching rule. The call's level is the maximum
// level seen. When monitoring is disabled or the library is empty the call is a
// no-op returning a safe result without touching metrics.
func (m *Monitor) Analyze(ctx context.Context, text string, hints domain.Hints) domain.Result {
	if !m.Enabled() || m.library.IsEmpty() {
		return domain.Result{Level: domain.LevelSafe, Violations: []domain.Violation{}}
	}

	result := domain.Result{Level: domain.LevelSafe, Violations: []domain.Violation{}}
	if text != "" {
		result = m.classify(text, hints)
	}

	m.mu.Lock()
	m.tracker.record(result, m.clock())
	m.alerts.Append(result.Violations...)
	score := m.tracker.score
	m.mu.Unlock()

	if result.Level > domain.LevelSafe {
		m.logger.WithFields(logrus.Fields{
			"trace_id":   common.TraceID(ctx),
			"level":      result.Level.String(),
			"violations": len(result.Violations),
		}).Warn("safety violations detected")
	}

	if m.recorder != nil {
		m.recorder.Record(ctx, result, score)
	}
	return result
}

type categoryHit struct {
	rule    patterns.Rule
	matches []string
}

func (m *Monitor) classify(text string, hints domain.Hints) domain.Result {
	categories := domain.MonitoredCategories
	hits := make([][]categoryHit, len(categories))

	// each goroutine owns hits[i]; results are merged below in category order
	var wg sync.WaitGroup
	for i, category := range categories {
		i, category := i, category
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, rule := range m.library.RulesFor(category) {
				if matches := rule.FindAll(text); len(matches) > 0 {
					hits[i] = append(hits[i], categoryHit{rule: rule, matches: matches})
				}
			}
		}()
	}
	wg.Wait()

	now := m.clock()
	excerpt := Excerpt(text, m.excerptLimit)
	result := domain.Result{Level: domain.LevelSafe, Violations: []domain.Violation{}}

	for i, category := range categories {
		for _, hit := range hits[i] {
			level := levelForHit(category, hit.rule.Severity, hints)
			result.Violations = append(result.Violations, domain.Violation{
				ID:            m.newID(),
				Timestamp:     now,
				Category:      category,
				Level:         level,
				RuleSeverity:  hit.rule.Severity,
				Message:       fmt.Sprintf("%s detected: %s", category, hit.rule.Description),
				SourceExcerpt: excerpt,
				Confidence:    confidenceFor(category),
				Metadata: map[string]interface{}{
					"rule_id":     hit.rule.ID,
					"pattern":     hit.rule.Pattern,
					"matches":     hit.matches,
					"match_count": len(hit.matches),
				},
			})
			if level > result.Level {
				result.Level = level
			}
		}
	}
	return result
}

// levelForHit applies the severity table, the content-safety override and the
// context elevation for client communications.
func levelForHit(category domain.Category, severity domain.RuleSeverity, hints domain.Hints) domain.Level {
	if category == domain.CategoryContentSafety {
		return domain.LevelCritical
	}
	level := domain.LevelFor(severity)
	if category == domain.CategoryEthical &&
		level == domain.LevelWarning &&
		hints.String(HintContentType) == ContentTypeClientCommunication {
		level = domain.LevelDanger
	}
	return level
}

func confidenceFor(category domain.Category) float64 {
	switch category {
	case domain.CategoryBias:
		return 0.7
	case domain.CategoryHallucination:
		return 0.6
	case domain.CategoryEthical:
		return 0.8
	case domain.CategoryContentSafety:
		return 0.9
	case domain.CategoryLegalAdvice:
		return 0.8
	}
	return 0.5
}

// Excerpt normalises text to NFC and truncates it to at most limit runes.
func Excerpt(text string, limit int) string {
	text = norm.NFC.String(text)
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return string(runes[:limit])
}

// Metrics returns a copy of the current counters.
func (m *Monitor) Metrics() Metrics {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tracker.snapshot()
}

// StatusSnapshot reports monitor state for dashboards.
func (m *Monitor) StatusSnapshot() StatusSnapshot {
	metrics := m.Metrics()
	return StatusSnapshot{
		MonitoringEnabled:    m.Enabled(),
		SafetyScore:          metrics.SafetyScore,
		TotalOutputsAnalyzed: metrics.TotalOutputsAnalyzed,
		SafetyBreakdown: SafetyBreakdown{
			Safe:     metrics.SafeOutputs,
			Warning:  metrics.WarningOutputs,
			Danger:   metrics.DangerOutputs,
			Critical: metrics.CriticalOutputs,
		},
		IssueCounts: IssueCounts{
			Bias:          metrics.IssueCounts[domain.CategoryBias],
			Hallucination: metrics.IssueCounts[domain.CategoryHallucination],
			Ethical:       metrics.IssueCounts[domain.CategoryEthical],
			ContentSafety: metrics.IssueCounts[domain.CategoryContentSafety],
		},
		ActiveAlerts: m.alerts.Unresolved(),
		SystemStatus: systemStatus(metrics.SafetyScore),
		LastUpdated:  metrics.LastUpdated,
	}
}

// ResolveAlert marks an alert resolved. See AlertStore.Resolve.
func (m *Monitor) ResolveAlert(id, note string) bool {
	resolved := m.alerts.Resolve(id, note)
	if resolved {
		m.logger.WithField("alert_id", id).Info("safety alert resolved")
	}
	return resolved
}

// RecentAlerts returns alerts from the last hours, optionally for one category.
func (m *Monitor) RecentAlerts(hours float64, category domain.Category) []domain.Violation {
	return m.alerts.Recent(hours, category)
}
