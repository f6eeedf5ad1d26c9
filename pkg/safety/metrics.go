package safety

import (
	"time"

	domain "github.com/NeuralTrust/LegalGuard/pkg/domain/safety"
	"github.com/NeuralTrust/LegalGuard/pkg/scoring"
)

const (
	StatusHealthy        = "healthy"
	StatusNeedsAttention = "needs_attention"
)

// Metrics is a point-in-time copy of the monitor counters.
type Metrics struct {
	TotalOutputsAnalyzed int                     `json:"total_outputs_analyzed"`
	SafeOutputs          int                     `json:"safe_outputs"`
	WarningOutputs       int                     `json:"warning_outputs"`
	DangerOutputs        int                     `json:"danger_outputs"`
	CriticalOutputs      int                     `json:"critical_outputs"`
	IssueCounts          map[domain.Category]int `json:"issue_counts"`
	SafetyScore          scoring.SafetyScore100  `json:"safety_score"`
	LastUpdated          time.Time               `json:"last_updated"`
}

type SafetyBreakdown struct {
	Safe     int `json:"safe"`
	Warning  int `json:"warning"`
	Danger   int `json:"danger"`
	Critical int `json:"critical"`
}

type IssueCounts struct {
	Bias          int `json:"bias"`
	Hallucination int `json:"hallucination"`
	Ethical       int `json:"ethical"`
	ContentSafety int `json:"content_safety"`
}

// StatusSnapshot is the structured status exposed to dashboards and audit tooling.
type StatusSnapshot struct {
	MonitoringEnabled    bool                   `json:"monitoring_enabled"`
	SafetyScore          scoring.SafetyScore100 `json:"safety_score"`
	TotalOutputsAnalyzed int                    `json:"total_outputs_analyzed"`
	SafetyBreakdown      SafetyBreakdown        `json:"safety_breakdown"`
	IssueCounts          IssueCounts            `json:"issue_counts"`
	ActiveAlerts         int                    `json:"active_alerts"`
	SystemStatus         string                 `json:"system_status"`
	LastUpdated          time.Time              `json:"last_updated"`
}

// tracker holds the rolling counters. It is not safe for concurrent use on its
// own; the monitor serialises access.
type tracker struct {
	counts      scoring.OutcomeCounts
	issues      map[domain.Category]int
	score       scoring.SafetyScore100
	lastUpdated time.Time
}

func newTracker(now time.Time) *tracker {
	return &tracker{
		issues:      make(map[domain.Category]int),
		score:       scoring.SafetyScore(scoring.OutcomeCounts{}),
		lastUpdated: now,
	}
}

// record counts one analyzed output in exactly one bucket, chosen by the
// result's maximum level, and adds its violations to the category counters.
func (t *tracker) record(result domain.Result, now time.Time) {
	t.counts.Total++
	switch result.Level {
	case domain.LevelSafe:
		t.counts.Safe++
	case domain.LevelWarning:
		t.counts.Warning++
	case domain.LevelDanger:
		t.counts.Danger++
	case domain.LevelCritical:
		t.counts.Critical++
	}
	for _, v := range result.Violations {
		t.issues[v.Category]++
	}
	t.score = scoring.SafetyScore(t.counts)
	t.lastUpdated = now
}

func (t *tracker) snapshot() Metrics {
	issues := make(map[domain.Category]int, len(domain.MonitoredCategories))
	for _, c := range domain.MonitoredCategories {
		issues[c] = t.issues[c]
	}
	return Metrics{
		TotalOutputsAnalyzed: t.counts.Total,
		SafeOutputs:          t.counts.Safe,
		WarningOutputs:       t.counts.Warning,
		DangerOutputs:        t.counts.Danger,
		CriticalOutputs:      t.counts.Critical,
		IssueCounts:          issues,
		SafetyScore:          t.score,
		LastUpdated:          t.lastUpdated,
	}
}

func systemStatus(score scoring.SafetyScore100) string {
	if score.Healthy() {
		return StatusHealthy
	}
	return StatusNeedsAttention
}
