package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	AnalysesTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "legalguard_analyses_total",
			Help: "Total number of outputs analyzed by the safety monitor, by resulting level",
		},
		[]string{"level"},
	)

	ViolationsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "legalguard_violations_total",
			Help: "Total number of safety violations raised",
		},
		[]string{"category", "level"},
	)

	SafetyScore = promauto.With(registerer).NewGauge(
		prometheus.GaugeOpts{
			Name: "legalguard_safety_score",
			Help: "Current monitor safety score on a 0-100 scale",
		},
	)

	ValidationsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "legalguard_validations_total",
			Help: "Total number of content validations, by mode and result",
		},
		[]string{"mode", "result"},
	)

	CorrectionsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "legalguard_corrections_total",
			Help: "Total number of correction passes, by mode and outcome",
		},
		[]string{"mode", "result"},
	)

	ExporterFailuresTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "legalguard_exporter_failures_total",
			Help: "Total number of alerts an exporter failed to deliver",
		},
		[]string{"exporter"},
	)

	DroppedAlertsTotal = promauto.With(registerer).NewCounter(
		prometheus.CounterOpts{
			Name: "legalguard_dropped_alerts_total",
			Help: "Alerts dropped because the export queue was full",
		},
	)
)

type MetricsConfig struct {
	EnableViolationDetail bool // per category/level violation counters
	EnableValidation      bool // compliance validation and correction counters
}

func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		EnableViolationDetail: true,
		EnableValidation:      true,
	}
}

var Config = DefaultMetricsConfig()

func Initialize(cfg MetricsConfig) {
	Config = cfg
	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry
}

// Gatherer exposes the private registry for tests and the metrics endpoint.
func Gatherer() prometheus.Gatherer {
	return registry
}
