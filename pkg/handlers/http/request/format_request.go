package request

// FormatRequest carries loosely typed source content. Unknown modes are not
// rejected here; the rewriter falls back to its default template.
type FormatRequest struct {
	Content            map[string]interface{} `json:"content" validate:"required"`
	Mode               string                 `json:"mode" validate:"max=32"`
	CustomRequirements []string               `json:"custom_requirements" validate:"max=20,dive,max=500"`
	ApplyCorrections   bool                   `json:"apply_corrections"`
}

func (r *FormatRequest) Validate() error {
	return validateStruct(r)
}
