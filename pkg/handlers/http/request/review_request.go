package request

import "github.com/NeuralTrust/LegalGuard/pkg/domain/safety"

type ReviewRequest struct {
	Text    string                 `json:"text" validate:"required,max=200000"`
	Context map[string]interface{} `json:"context"`
	Rewrite bool                   `json:"rewrite"`
}

func (r *ReviewRequest) Validate() error {
	return validateStruct(r)
}

func (r *ReviewRequest) Hints() safety.Hints {
	return safety.Hints(r.Context)
}
