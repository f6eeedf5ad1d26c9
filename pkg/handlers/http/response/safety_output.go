package response

import (
	"github.com/NeuralTrust/LegalGuard/pkg/domain/safety"
	"github.com/NeuralTrust/LegalGuard/pkg/scoring"
)

type AnalyzeOutput struct {
	Level             safety.Level            `json:"level"`
	IsSafe            bool                    `json:"is_safe"`
	Violations        []safety.Violation      `json:"violations"`
	ByCategory        map[safety.Category]int `json:"by_category"`
	SafetyScore       scoring.SafetyScore100  `json:"safety_score"`
	MonitoringEnabled bool                    `json:"monitoring_enabled"`
}

type AlertsOutput struct {
	WindowHours float64            `json:"window_hours"`
	Category    string             `json:"category,omitempty"`
	Count       int                `json:"count"`
	Alerts      []safety.Violation `json:"alerts"`
}

type MonitoringOutput struct {
	MonitoringEnabled bool   `json:"monitoring_enabled"`
	Message           string `json:"message"`
}
