package telemetry

import (
	"context"

	"github.com/NeuralTrust/LegalGuard/pkg/domain/safety"
	"github.com/NeuralTrust/LegalGuard/pkg/domain/telemetry"
	"github.com/NeuralTrust/LegalGuard/pkg/infra/breaker"
)

// GuardedExporter runs every Handle call through a circuit breaker so a dead
// sink fails fast instead of stalling the export workers.
type GuardedExporter struct {
	telemetry.Exporter
	breaker breaker.CircuitBreaker
}

func NewGuardedExporter(exporter telemetry.Exporter, cb breaker.CircuitBreaker) *GuardedExporter {
	return &GuardedExporter{Exporter: exporter, breaker: cb}
}

func (g *GuardedExporter) Handle(ctx context.Context, alert *safety.Violation) error {
	return g.breaker.Execute(func() error {
		return g.Exporter.Handle(ctx, alert)
	})
}

func (g *GuardedExporter) WithSettings(settings map[string]interface{}) (telemetry.Exporter, error) {
	inner, err := g.Exporter.WithSettings(settings)
	if err != nil {
		return nil, err
	}
	return NewGuardedExporter(inner, g.breaker), nil
}
