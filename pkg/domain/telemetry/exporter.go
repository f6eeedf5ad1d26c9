package telemetry

import (
	"context"

	"github.com/NeuralTrust/LegalGuard/pkg/domain/safety"
)

//go:generate mockery --name=Exporter --dir=. --output=./mocks --filename=exporter_mock.go --case=underscore --with-expecter
type Exporter interface {
	Name() string
	ValidateConfig(settings map[string]interface{}) error
	Handle(ctx context.Context, alert *safety.Violation) error
	WithSettings(settings map[string]interface{}) (Exporter, error)
	Close()
}
