package http

import (
	"context"

	domainCompliance "github.com/NeuralTrust/LegalGuard/pkg/domain/compliance"
	"github.com/NeuralTrust/LegalGuard/pkg/domain/safety"
	safetyMonitor "github.com/NeuralTrust/LegalGuard/pkg/safety"
	"github.com/gofiber/fiber/v2"
)

const ErrInvalidJsonPayload = "invalid JSON payload"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

// SafetyMonitor is the monitor surface the safety handlers use.
type SafetyMonitor interface {
	Analyze(ctx context.Context, text string, hints safety.Hints) safety.Result
	Metrics() safetyMonitor.Metrics
	StatusSnapshot() safetyMonitor.StatusSnapshot
	Report(hours float64) safetyMonitor.Report
	RecentAlerts(hours float64, category safety.Category) []safety.Violation
	ResolveAlert(id, note string) bool
	Enable()
	Disable()
	Enabled() bool
}

// ComplianceRewriter is the rewriter surface the compliance handlers use.
type ComplianceRewriter interface {
	TransformToInformational(text string) string
	FormatContent(source *domainCompliance.SourceContent, mode domainCompliance.PresentationMode, customRequirements []string) *domainCompliance.FormattedContent
	ApplyCorrections(content *domainCompliance.FormattedContent) *domainCompliance.FormattedContent
}

type HandlerTransport struct {
	// Version
	GetVersionHandler Handler

	// Safety
	AnalyzeOutputHandler     Handler
	GetSafetyStatusHandler   Handler
	GetSafetyReportHandler   Handler
	ListAlertsHandler        Handler
	ResolveAlertHandler      Handler
	EnableMonitoringHandler  Handler
	DisableMonitoringHandler Handler

	// Compliance
	TransformContentHandler Handler
	FormatContentHandler    Handler
	ReviewContentHandler    Handler
}
