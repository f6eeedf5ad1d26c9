package safety

import (
	"time"

	domain "github.com/NeuralTrust/LegalGuard/pkg/domain/safety"
)

const (
	RecommendationNoIssues      = "No safety issues detected in the reporting window. Continue routine monitoring."
	RecommendationCritical      = "Critical alerts present: escalate to the compliance team and review affected outputs before release."
	RecommendationBias          = "Review outputs for generalizations about protected groups and rephrase them neutrally."
	RecommendationHallucination = "Verify legal citations and statistics against primary sources before publishing."
	RecommendationEthical       = "Rephrase directive language as general information and include the standard disclaimers."
	RecommendationContentSafety = "Block outputs that facilitate unlawful conduct and route them for human review."
	RecommendationLowScore      = "Safety score is below the healthy threshold; audit recent outputs and pattern coverage."
)

// Report summarises the alerts of a time window.
type Report struct {
	WindowHours     float64                 `json:"window_hours"`
	GeneratedAt     time.Time               `json:"generated_at"`
	TotalAlerts     int                     `json:"total_alerts"`
	Unresolved      int                     `json:"unresolved"`
	ByCategory      map[domain.Category]int `json:"by_category"`
	ByLevel         map[string]int          `json:"by_level"`
	Status          StatusSnapshot          `json:"status"`
	Recommendations []string                `json:"recommendations"`
}

// Report builds a summary of the alerts raised in the last hours. Category
// recommendations follow the monitor's category order.
func (m *Monitor) Report(hours float64) Report {
	alerts := m.RecentAlerts(hours, "")
	status := m.StatusSnapshot()

	report := Report{
		WindowHours: hours,
		GeneratedAt: m.clock(),
		TotalAlerts: len(alerts),
		ByCategory:  make(map[domain.Category]int),
		ByLevel:     make(map[string]int),
		Status:      status,
	}

	for _, a := range alerts {
		report.ByCategory[a.Category]++
		report.ByLevel[a.Level.String()]++
		if !a.Resolved {
			report.Unresolved++
		}
	}

	report.Recommendations = recommendations(report, status)
	return report
}

func recommendations(r Report, status StatusSnapshot) []string {
	var out []string
	if r.ByLevel[domain.LevelCritical.String()] > 0 {
		out = append(out, RecommendationCritical)
	}
	for _, c := range domain.MonitoredCategories {
		if r.ByCategory[c] == 0 {
			continue
		}
		switch c {
		case domain.CategoryBias:
			out = append(out, RecommendationBias)
		case domain.CategoryHallucination:
			out = append(out, RecommendationHallucination)
		case domain.CategoryEthical:
			out = append(out, RecommendationEthical)
		case domain.CategoryContentSafety:
			out = append(out, RecommendationContentSafety)
		}
	}
	if !status.SafetyScore.Healthy() {
		out = append(out, RecommendationLowScore)
	}
	if len(out) == 0 {
		out = append(out, RecommendationNoIssues)
	}
	return out
}
