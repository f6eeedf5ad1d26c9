package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafetyScore_NoOutputs(t *testing.T) {
	assert.Equal(t, SafetyScore100(100), SafetyScore(OutcomeCounts{}))
}

func TestSafetyScore_Weighted(t *testing.T) {
	tests := []struct {
		name   string
		counts OutcomeCounts
		expect float64
	}{
		{"all safe", OutcomeCounts{Total: 10, Safe: 10}, 100},
		{"one warning in ten", OutcomeCounts{Total: 10, Safe: 9, Warning: 1}, 99},
		{"one danger in ten", OutcomeCounts{Total: 10, Safe: 9, Danger: 1}, 95},
		{"one critical in ten", OutcomeCounts{Total: 10, Safe: 9, Critical: 1}, 90},
		{"all critical", OutcomeCounts{Total: 2, Critical: 2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expect, float64(SafetyScore(tt.counts)), 0.0001)
		})
	}
}

func TestSafetyScore_Healthy(t *testing.T) {
	assert.True(t, SafetyScore100(95).Healthy())
	assert.True(t, SafetyScore100(100).Healthy())
	assert.False(t, SafetyScore100(94.99).Healthy())
}

func TestComplianceScore(t *testing.T) {
	assert.Equal(t, ComplianceScore01(1), ComplianceScore(0, 0))
	assert.InDelta(t, 0.8, float64(ComplianceScore(1, 0)), 0.0001)
	assert.InDelta(t, 0.9, float64(ComplianceScore(0, 1)), 0.0001)
	assert.InDelta(t, 0.5, float64(ComplianceScore(2, 1)), 0.0001)
	assert.Equal(t, ComplianceScore01(0), ComplianceScore(10, 10))
}

func TestPasses(t *testing.T) {
	assert.True(t, Passes(ComplianceScore(0, 0), 0))
	assert.True(t, Passes(ComplianceScore(0, 1), 0))
	assert.False(t, Passes(ComplianceScore(0, 2), 0), "0.8 is below the threshold")
	assert.False(t, Passes(ComplianceScore01(0.95), 1), "any violation fails")
	assert.True(t, Passes(ComplianceThreshold, 0))
}

func TestCoverageAdjusted(t *testing.T) {
	assert.Equal(t, ComplianceScore01(0.9), CoverageAdjusted(0.9, 0, 0))
	assert.InDelta(t, 0.45, float64(CoverageAdjusted(0.9, 1, 2)), 0.0001)
	assert.InDelta(t, 0.9, float64(CoverageAdjusted(0.9, 5, 2)), 0.0001)
	assert.Equal(t, ComplianceScore01(0), CoverageAdjusted(0.9, -1, 2))
}
