package request

type TransformRequest struct {
	Text string `json:"text" validate:"required,max=200000"`
}

func (r *TransformRequest) Validate() error {
	return validateStruct(r)
}
