package telemetry

import (
	"fmt"
	"sort"

	"github.com/NeuralTrust/LegalGuard/pkg/domain/telemetry"
)

type ExporterLocator struct {
	exporters map[string]telemetry.Exporter
}

func NewExporterLocator(opts ...ExporterLocatorOption) *ExporterLocator {
	el := &ExporterLocator{
		exporters: make(map[string]telemetry.Exporter),
	}
	for _, opt := range opts {
		opt(el)
	}
	return el
}

// GetExporter returns a configured copy of the registered exporter. The
// registered instance itself is never handed out.
func (p *ExporterLocator) GetExporter(cfg telemetry.ExporterConfig) (telemetry.Exporter, error) {
	base, ok := p.exporters[cfg.Name]
	if !ok {
		return nil, fmt.Errorf("unknown exporter: %s", cfg.Name)
	}
	if err := base.ValidateConfig(cfg.Settings); err != nil {
		return nil, err
	}
	exporter, err := base.WithSettings(cfg.Settings)
	if err != nil {
		return nil, err
	}
	return exporter, nil
}

func (p *ExporterLocator) ValidateExporter(cfg telemetry.ExporterConfig) error {
	base, ok := p.exporters[cfg.Name]
	if !ok {
		return fmt.Errorf("unknown exporter: %s", cfg.Name)
	}
	return base.ValidateConfig(cfg.Settings)
}

// Available lists registered exporter names, sorted.
func (p *ExporterLocator) Available() []string {
	names := make([]string, 0, len(p.exporters))
	for name := range p.exporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
