package telemetry

type Telemetry struct {
	Exporters []ExporterConfig `json:"exporters" mapstructure:"exporters"`
}

type ExporterConfig struct {
	Name     string                 `json:"name" mapstructure:"name"`
	Settings map[string]interface{} `json:"settings" mapstructure:"settings"`
}

// Names returns the configured exporter names in declaration order.
func (t Telemetry) Names() []string {
	names := make([]string, 0, len(t.Exporters))
	for _, e := range t.Exporters {
		names = append(names, e.Name)
	}
	return names
}
