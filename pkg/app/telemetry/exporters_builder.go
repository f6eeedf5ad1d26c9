package telemetry

import (
	"fmt"
	"time"

	domain "github.com/NeuralTrust/LegalGuard/pkg/domain/telemetry"
	"github.com/NeuralTrust/LegalGuard/pkg/infra/breaker"
	factory "github.com/NeuralTrust/LegalGuard/pkg/infra/telemetry"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=ExportersBuilder --dir=. --output=./mocks --filename=exporters_builder_mock.go --case=underscore --with-expecter
type ExportersBuilder interface {
	Build(configs []domain.ExporterConfig) ([]domain.Exporter, error)
}

type BreakerSettings struct {
	Timeout     time.Duration
	MaxFailures uint32
}

type exportersBuilder struct {
	logger   *logrus.Logger
	locator  *factory.ExporterLocator
	breakers BreakerSettings
}

func NewExportersBuilder(logger *logrus.Logger, locator *factory.ExporterLocator, breakers BreakerSettings) ExportersBuilder {
	return &exportersBuilder{
		logger:   logger,
		locator:  locator,
		breakers: breakers,
	}
}

// Build configures every exporter and guards each one with its own breaker.
// Already built exporters are closed when a later one fails.
func (b *exportersBuilder) Build(configs []domain.ExporterConfig) ([]domain.Exporter, error) {
	exporters := make([]domain.Exporter, 0, len(configs))
	for _, cfg := range configs {
		exporter, err := b.locator.GetExporter(cfg)
		if err != nil {
			for _, e := range exporters {
				e.Close()
			}
			return nil, fmt.Errorf("failed to build exporter %q: %w", cfg.Name, err)
		}
		cb := breaker.NewCircuitBreaker(cfg.Name, breaker.Settings{
			Timeout:     b.breakers.Timeout,
			MaxFailures: b.breakers.MaxFailures,
			Logger:      b.logger,
		})
		exporters = append(exporters, factory.NewGuardedExporter(exporter, cb))
	}
	return exporters, nil
}
