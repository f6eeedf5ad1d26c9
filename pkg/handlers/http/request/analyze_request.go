package request

import "github.com/NeuralTrust/LegalGuard/pkg/domain/safety"

type AnalyzeRequest struct {
	Text    string                 `json:"text" validate:"max=200000"`
	Context map[string]interface{} `json:"context"`
}

func (r *AnalyzeRequest) Validate() error {
	return validateStruct(r)
}

func (r *AnalyzeRequest) Hints() safety.Hints {
	return safety.Hints(r.Context)
}
