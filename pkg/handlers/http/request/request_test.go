package request

import (
	"strings"
	"testing"

	"github.com/NeuralTrust/LegalGuard/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestAlertsQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		query   AlertsQuery
		hours   float64
		wantErr string
	}{
		{name: "default window", query: AlertsQuery{}, hours: DefaultWindowHours},
		{name: "explicit window", query: AlertsQuery{Hours: 2.5}, hours: 2.5},
		{name: "category", query: AlertsQuery{Hours: 1, Category: "bias"}, hours: 1},
		{name: "negative", query: AlertsQuery{Hours: -1}, wantErr: domain.ErrInvalidTimeframe.Error()},
		{name: "too long", query: AlertsQuery{Hours: 9000}, wantErr: "hours is invalid (lte)"},
		{name: "advice is not monitored", query: AlertsQuery{Category: "legal_advice"}, wantErr: "category must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.query
			err := q.Validate()
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.hours, q.Hours)
		})
	}
}

func TestFormatRequest_Validate(t *testing.T) {
	ok := FormatRequest{Content: map[string]interface{}{"title": "x"}}
	assert.NoError(t, ok.Validate())

	missing := FormatRequest{Mode: "summary"}
	assert.EqualError(t, missing.Validate(), "content is required")

	tooMany := FormatRequest{Content: map[string]interface{}{}, CustomRequirements: make([]string, 21)}
	assert.EqualError(t, tooMany.Validate(), "custom_requirements must not exceed 20")

	longItem := FormatRequest{Content: map[string]interface{}{}, CustomRequirements: []string{strings.Repeat("a", 501)}}
	assert.Error(t, longItem.Validate())
}

func TestTextRequests_Validate(t *testing.T) {
	assert.EqualError(t, (&TransformRequest{}).Validate(), "text is required")
	assert.EqualError(t, (&ReviewRequest{}).Validate(), "text is required")
	assert.NoError(t, (&AnalyzeRequest{}).Validate(), "empty text is analyzed as safe")
	assert.NoError(t, (&ResolveAlertRequest{Note: "checked"}).Validate())
}
