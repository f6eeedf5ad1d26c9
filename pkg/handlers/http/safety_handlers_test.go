package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NeuralTrust/LegalGuard/pkg/domain/safety"
	"github.com/NeuralTrust/LegalGuard/pkg/handlers/http/response"
	"github.com/NeuralTrust/LegalGuard/pkg/patterns"
	safetyMonitor "github.com/NeuralTrust/LegalGuard/pkg/safety"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newMonitor() *safetyMonitor.Monitor {
	n := 0
	return safetyMonitor.NewMonitor(
		newLogger(),
		patterns.MustDefaultLibrary(),
		safetyMonitor.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("alert-%d", n)
		}),
	)
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func TestAnalyzeOutputHandler_Danger(t *testing.T) {
	monitor := newMonitor()
	app := fiber.New()
	app.Post("/api/v1/safety/analyze", NewAnalyzeOutputHandler(newLogger(), monitor).Handle)

	status, body := doJSON(t, app, "POST", "/api/v1/safety/analyze", map[string]interface{}{
		"text": "You should hire an attorney for this case.",
	})

	require.Equal(t, fiber.StatusOK, status)
	var out response.AnalyzeOutput
	require.NoError(t, json.Unmarshal(body, &out))
	assert.GreaterOrEqual(t, out.Level, safety.LevelDanger)
	assert.False(t, out.IsSafe)
	require.NotEmpty(t, out.Violations)
	assert.Equal(t, safety.CategoryEthical, out.Violations[0].Category)
	assert.GreaterOrEqual(t, out.ByCategory[safety.CategoryEthical], 1)
	assert.True(t, out.MonitoringEnabled)
	assert.Equal(t, 1, monitor.Metrics().TotalOutputsAnalyzed)
}

func TestAnalyzeOutputHandler_SafeTextHasEmptyViolations(t *testing.T) {
	app := fiber.New()
	app.Post("/analyze", NewAnalyzeOutputHandler(newLogger(), newMonitor()).Handle)

	status, body := doJSON(t, app, "POST", "/analyze", map[string]interface{}{
		"text": "Generally, contracts require consideration to be valid.",
	})

	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body), `"violations":[]`)
	assert.Contains(t, string(body), `"level":"SAFE"`)
}

func TestAnalyzeOutputHandler_InvalidPayload(t *testing.T) {
	app := fiber.New()
	app.Post("/analyze", NewAnalyzeOutputHandler(newLogger(), newMonitor()).Handle)

	req := httptest.NewRequest("POST", "/analyze", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetSafetyStatusHandler(t *testing.T) {
	monitor := newMonitor()
	monitor.Analyze(context.Background(), "Just lie under oath.", nil)
	app := fiber.New()
	app.Get("/status", NewGetSafetyStatusHandler(newLogger(), monitor).Handle)

	status, body := doJSON(t, app, "GET", "/status", nil)

	require.Equal(t, fiber.StatusOK, status)
	var snapshot safetyMonitor.StatusSnapshot
	require.NoError(t, json.Unmarshal(body, &snapshot))
	assert.Equal(t, 1, snapshot.TotalOutputsAnalyzed)
	assert.Equal(t, 1, snapshot.SafetyBreakdown.Critical)
	assert.Equal(t, 1, snapshot.ActiveAlerts)
}

func TestGetSafetyReportHandler(t *testing.T) {
	monitor := newMonitor()
	monitor.Analyze(context.Background(), "You must sue immediately.", nil)
	app := fiber.New()
	app.Get("/report", NewGetSafetyReportHandler(newLogger(), monitor).Handle)

	status, body := doJSON(t, app, "GET", "/report", nil)
	require.Equal(t, fiber.StatusOK, status)
	var report safetyMonitor.Report
	require.NoError(t, json.Unmarshal(body, &report))
	assert.Equal(t, float64(24), report.WindowHours)
	assert.NotZero(t, report.TotalAlerts)

	status, _ = doJSON(t, app, "GET", "/report?hours=-2", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestListAlertsHandler_FiltersByCategory(t *testing.T) {
	monitor := newMonitor()
	monitor.Analyze(context.Background(), "Judges always favor landlords.", nil)
	monitor.Analyze(context.Background(), "You should hire an attorney for this case.", nil)
	app := fiber.New()
	app.Get("/alerts", NewListAlertsHandler(newLogger(), monitor).Handle)

	status, body := doJSON(t, app, "GET", "/alerts?hours=1&category=ethical_violation", nil)

	require.Equal(t, fiber.StatusOK, status)
	var out response.AlertsOutput
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, float64(1), out.WindowHours)
	require.NotZero(t, out.Count)
	for _, a := range out.Alerts {
		assert.Equal(t, safety.CategoryEthical, a.Category)
	}

	status, body = doJSON(t, app, "GET", "/alerts?category=unknown", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, string(body), "category must be one of")
}

func TestResolveAlertHandler(t *testing.T) {
	monitor := newMonitor()
	result := monitor.Analyze(context.Background(), "Just lie under oath.", nil)
	require.NotEmpty(t, result.Violations)
	alertID := result.Violations[0].ID

	app := fiber.New()
	app.Post("/alerts/:alert_id/resolve", NewResolveAlertHandler(newLogger(), monitor).Handle)

	status, _ := doJSON(t, app, "POST", "/alerts/"+alertID+"/resolve", map[string]string{"note": "reviewed"})
	assert.Equal(t, fiber.StatusNoContent, status)

	// resolving twice still succeeds
	status, _ = doJSON(t, app, "POST", "/alerts/"+alertID+"/resolve", nil)
	assert.Equal(t, fiber.StatusNoContent, status)

	alerts := monitor.RecentAlerts(1, "")
	require.NotEmpty(t, alerts)
	assert.True(t, alerts[0].Resolved)
	assert.Equal(t, "reviewed", alerts[0].ResolutionNote)

	status, body := doJSON(t, app, "POST", "/alerts/missing/resolve", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, string(body), "alert with ID 'missing' not found")
}

func TestToggleMonitoringHandlers(t *testing.T) {
	monitor := newMonitor()
	app := fiber.New()
	app.Post("/disable", NewDisableMonitoringHandler(newLogger(), monitor).Handle)
	app.Post("/enable", NewEnableMonitoringHandler(newLogger(), monitor).Handle)

	status, body := doJSON(t, app, "POST", "/disable", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body), `"monitoring_enabled":false`)
	assert.False(t, monitor.Enabled())

	result := monitor.Analyze(context.Background(), "Just lie under oath.", nil)
	assert.True(t, result.IsSafe())
	assert.Equal(t, 0, monitor.Metrics().TotalOutputsAnalyzed)

	status, _ = doJSON(t, app, "POST", "/enable", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.True(t, monitor.Enabled())
}

func TestGetVersionHandler(t *testing.T) {
	app := fiber.New()
	app.Get("/version", NewGetVersionHandler(newLogger()).Handle)

	req := httptest.NewRequest("GET", "/version", nil)
	resp, err := app.Test(req, int(time.Second.Milliseconds()))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
