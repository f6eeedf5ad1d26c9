// Package scoring turns violation counts into scores.
//
// Two scales coexist on purpose: the output monitor reports a SafetyScore100 on a
// 0-100 scale while content validation reports a ComplianceScore01 on a 0-1
// scale. They are distinct types and are never converted into each other.
package scoring

import "math"

const (
	// ComplianceThreshold is the minimum ComplianceScore01 for compliant content.
	ComplianceThreshold ComplianceScore01 = 0.85

	// SafetyHealthyThreshold is the minimum SafetyScore100 for a healthy system.
	SafetyHealthyThreshold SafetyScore100 = 95.0

	ViolationPenalty = 0.2
	WarningPenalty   = 0.1

	warningWeight  = 0.1
	dangerWeight   = 0.5
	criticalWeight = 1.0
)

// SafetyScore100 is the monitor-wide safety score in [0, 100].
type SafetyScore100 float64

// ComplianceScore01 is the per-document compliance score in [0, 1].
type ComplianceScore01 float64

// OutcomeCounts are the per-level output counters the safety score derives from.
type OutcomeCounts struct {
	Total    int
	Safe     int
	Warning  int
	Danger   int
	Critical int
}

// ViolationRate is the severity-weighted share of analyzed outputs that raised alerts.
func ViolationRate(c OutcomeCounts) float64 {
	if c.Total <= 0 {
		return 0
	}
	weighted := float64(c.Warning)*warningWeight +
		float64(c.Danger)*dangerWeight +
		float64(c.Critical)*criticalWeight
	return weighted / float64(c.Total)
}

// SafetyScore computes max(0, 100 - violation_rate*100). No outputs scores 100.
func SafetyScore(c OutcomeCounts) SafetyScore100 {
	score := 100 - ViolationRate(c)*100
	return SafetyScore100(math.Max(0, score))
}

func (s SafetyScore100) Healthy() bool {
	return s >= SafetyHealthyThreshold
}

// ComplianceScore computes max(0, 1 - 0.2*violations - 0.1*warnings).
func ComplianceScore(violations, warnings int) ComplianceScore01 {
	score := 1 - float64(violations)*ViolationPenalty - float64(warnings)*WarningPenalty
	return ComplianceScore01(clamp01(score))
}

// Passes reports whether content with this score and violation count is compliant.
func Passes(score ComplianceScore01, violations int) bool {
	return score >= ComplianceThreshold && violations == 0
}

// CoverageAdjusted scales a compliance score by the ratio of covered to required
// sections. With nothing required the score is returned unchanged.
func CoverageAdjusted(score ComplianceScore01, covered, required int) ComplianceScore01 {
	if required <= 0 {
		return score
	}
	if covered > required {
		covered = required
	}
	if covered < 0 {
		covered = 0
	}
	ratio := float64(covered) / float64(required)
	return ComplianceScore01(clamp01(float64(score) * ratio))
}

func clamp01(v float64) float64 {
	// strip float noise before threshold comparisons
	v = math.Round(v*1e9) / 1e9
	return math.Min(1, math.Max(0, v))
}
