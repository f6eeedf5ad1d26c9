package telemetry

import (
	domain "github.com/NeuralTrust/LegalGuard/pkg/domain/telemetry"
	factory "github.com/NeuralTrust/LegalGuard/pkg/infra/telemetry"
)

type ExportersValidator interface {
	Validate(configs []domain.ExporterConfig) error
}

type exportersValidator struct {
	locator *factory.ExporterLocator
}

func NewExportersValidator(locator *factory.ExporterLocator) ExportersValidator {
	return &exportersValidator{
		locator: locator,
	}
}

func (v *exportersValidator) Validate(configs []domain.ExporterConfig) error {
	for _, config := range configs {
		err := v.locator.ValidateExporter(config)
		if err != nil {
			return err
		}
	}
	return nil
}
