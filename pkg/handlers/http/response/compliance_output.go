package response

type TransformOutput struct {
	OriginalText      string `json:"original_text"`
	InformationalText string `json:"informational_text"`
	Changed           bool   `json:"changed"`
}
