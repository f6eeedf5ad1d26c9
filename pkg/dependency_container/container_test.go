package dependency_container

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/NeuralTrust/LegalGuard/pkg/app/review"
	"github.com/NeuralTrust/LegalGuard/pkg/compliance"
	"github.com/NeuralTrust/LegalGuard/pkg/config"
	domainCompliance "github.com/NeuralTrust/LegalGuard/pkg/domain/compliance"
	"github.com/NeuralTrust/LegalGuard/pkg/domain/safety"
	"github.com/NeuralTrust/LegalGuard/pkg/domain/telemetry"
	"github.com/NeuralTrust/LegalGuard/pkg/patterns"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newConfig() *config.Config {
	return &config.Config{
		Server:     config.ServerConfig{AdminPort: 8080, MetricsPort: 9090, SecretKey: "secret"},
		Monitoring: config.MonitoringConfig{Enabled: true, AlertCapacity: 10, ExcerptLimit: 40},
		Compliance: config.ComplianceConfig{Analyzer: compliance.AnalyzerPattern, DefaultMode: "detailed"},
		Telemetry: config.TelemetryConfig{
			Workers:        1,
			QueueSize:      10,
			ExportTimeout:  time.Second,
			BreakerTimeout: time.Second,
			MaxFailures:    1,
		},
	}
}

func TestNewContainer_WiresPipeline(t *testing.T) {
	cfg := newConfig()
	cfg.Patterns.CustomRules = []map[string]interface{}{
		{"id": "bias.custom", "category": "bias", "pattern": `\bobviously guilty\b`, "severity": "high"},
	}

	c, err := NewContainer(ContainerDI{Cfg: cfg, Logger: newLogger()})
	require.NoError(t, err)
	defer c.Close(newLogger())

	assert.Equal(t, patterns.MustDefaultLibrary().Len()+1, c.Library.Len())
	assert.Nil(t, c.RedisClient)
	assert.Equal(t, []string{"kafka"}, c.TelemetryExporterLocator.Available())
	assert.Equal(t, domainCompliance.ModeDetailed, c.Rewriter.DefaultMode())
	assert.NotNil(t, c.HandlerTransport.AnalyzeOutputHandler)
	assert.NotNil(t, c.HandlerTransport.ReviewContentHandler)

	result := c.Monitor.Analyze(context.Background(), "The tenant is obviously guilty of this.", nil)
	assert.Equal(t, safety.LevelDanger, result.Level)
	alerts := c.Monitor.RecentAlerts(1, safety.CategoryBias)
	require.Len(t, alerts, 1)
	assert.LessOrEqual(t, len([]rune(alerts[0].SourceExcerpt)), 40)

	reviewed, err := c.Reviewer.Review(context.Background(), review.Request{Text: "You must respond."})
	require.NoError(t, err)
	assert.True(t, reviewed.Analysis.HasAdvice)
}

func TestNewContainer_InvalidCustomRule(t *testing.T) {
	cfg := newConfig()
	cfg.Patterns.CustomRules = []map[string]interface{}{
		{"category": "bias", "pattern": "(unclosed", "severity": "low"},
	}

	_, err := NewContainer(ContainerDI{Cfg: cfg, Logger: newLogger()})

	assert.ErrorIs(t, err, patterns.ErrInvalidPattern)
}

func TestNewContainer_UnknownExporter(t *testing.T) {
	cfg := newConfig()
	cfg.Telemetry.Exporters = []telemetry.ExporterConfig{{Name: "redis"}}

	_, err := NewContainer(ContainerDI{Cfg: cfg, Logger: newLogger()})

	assert.ErrorContains(t, err, "unknown exporter: redis")
}

func TestNewContainer_WithoutExportersIgnoresTelemetry(t *testing.T) {
	cfg := newConfig()
	cfg.Telemetry.Exporters = []telemetry.ExporterConfig{{Name: "redis"}}

	c, err := NewContainer(ContainerDI{Cfg: cfg, Logger: newLogger(), WithoutExporters: true})

	require.NoError(t, err)
	c.Close(newLogger())
}

func TestNewContainer_UnknownAnalyzer(t *testing.T) {
	cfg := newConfig()
	cfg.Compliance.Analyzer = "llm"

	_, err := NewContainer(ContainerDI{Cfg: cfg, Logger: newLogger()})

	assert.ErrorIs(t, err, compliance.ErrUnknownAnalyzer)
}
