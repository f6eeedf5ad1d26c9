package request

import (
	"github.com/NeuralTrust/LegalGuard/pkg/domain"
	"github.com/NeuralTrust/LegalGuard/pkg/domain/safety"
)

const DefaultWindowHours = 24

// AlertsQuery is bound from the query string of the report and alerts
// endpoints.
type AlertsQuery struct {
	Hours    float64 `query:"hours" validate:"gte=0,lte=8760"`
	Category string  `query:"category" validate:"omitempty,oneof=bias hallucination ethical_violation content_safety"`
}

func (q *AlertsQuery) Validate() error {
	if q.Hours < 0 {
		return domain.ErrInvalidTimeframe
	}
	if q.Hours == 0 {
		q.Hours = DefaultWindowHours
	}
	return validateStruct(q)
}

func (q *AlertsQuery) CategoryFilter() safety.Category {
	return safety.Category(q.Category)
}

type ResolveAlertRequest struct {
	Note string `json:"note" validate:"max=1000"`
}

func (r *ResolveAlertRequest) Validate() error {
	return validateStruct(r)
}
