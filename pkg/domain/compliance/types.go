package compliance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NeuralTrust/LegalGuard/pkg/domain/safety"
	"github.com/NeuralTrust/LegalGuard/pkg/scoring"
	"github.com/mitchellh/mapstructure"
)

var ErrInvalidContent = errors.New("invalid source content")

// PresentationMode selects the template used to format content.
type PresentationMode string

const (
	ModeSummary    PresentationMode = "summary"
	ModeDetailed   PresentationMode = "detailed"
	ModeComparison PresentationMode = "comparison"
)

var Modes = []PresentationMode{ModeSummary, ModeDetailed, ModeComparison}

// ParseMode reports whether s names a known mode.
func ParseMode(s string) (PresentationMode, bool) {
	mode := PresentationMode(strings.ToLower(strings.TrimSpace(s)))
	for _, m := range Modes {
		if m == mode {
			return m, true
		}
	}
	return ModeSummary, false
}

// SourceContent is the raw material a FormattedContent is built from.
type SourceContent struct {
	ID             string                 `json:"id,omitempty" mapstructure:"id"`
	Title          string                 `json:"title" mapstructure:"title"`
	Description    string                 `json:"description" mapstructure:"description"`
	Advantages     []string               `json:"advantages,omitempty" mapstructure:"advantages"`
	Considerations []string               `json:"considerations,omitempty" mapstructure:"considerations"`
	Timeline       string                 `json:"timeline,omitempty" mapstructure:"timeline"`
	Costs          string                 `json:"costs,omitempty" mapstructure:"costs"`
	Requirements   []string               `json:"requirements,omitempty" mapstructure:"requirements"`
	Alternatives   []string               `json:"alternatives,omitempty" mapstructure:"alternatives"`
	Jurisdiction   string                 `json:"jurisdiction,omitempty" mapstructure:"jurisdiction"`
	Details        map[string]interface{} `json:"details,omitempty" mapstructure:"details"`
}

// DecodeSource builds a SourceContent from a loosely typed map.
func DecodeSource(raw map[string]interface{}) (*SourceContent, error) {
	var content SourceContent
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &content,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	return &content, nil
}

// Section is one rendered part of a FormattedContent. Content holds a string,
// a list or a nested map.
type Section struct {
	Name            string      `json:"name"`
	Title           string      `json:"title"`
	Content         interface{} `json:"content"`
	EducationalNote string      `json:"educational_note"`
	Disclaimer      string      `json:"disclaimer,omitempty"`
}

// ValidationViolation is a never-include phrase found in a section.
type ValidationViolation struct {
	Section string `json:"section"`
	Path    string `json:"path"`
	Phrase  string `json:"phrase"`
	Match   string `json:"match"`
}

type ValidationResult struct {
	IsCompliant       bool                      `json:"is_compliant"`
	ComplianceScore   scoring.ComplianceScore01 `json:"compliance_score"`
	CoverageScore     scoring.ComplianceScore01 `json:"coverage_score"`
	Violations        []ValidationViolation     `json:"violations"`
	Warnings          []string                  `json:"warnings"`
	ValidatedSections []string                  `json:"validated_sections"`
}

// FormattedContent is presentation-ready content with its disclaimers and the
// result of its latest validation.
type FormattedContent struct {
	ID                 string           `json:"id"`
	Title              string           `json:"title"`
	Mode               PresentationMode `json:"mode"`
	Sections           []Section        `json:"sections"`
	Disclaimers        []string         `json:"disclaimers"`
	ComplianceNotes    []string         `json:"compliance_notes"`
	Validation         ValidationResult `json:"validation_result"`
	CorrectionsApplied bool             `json:"corrections_applied"`
	CreatedAt          time.Time        `json:"created_at"`
}

// Section returns the named section.
func (f *FormattedContent) Section(name string) (*Section, bool) {
	for i := range f.Sections {
		if f.Sections[i].Name == name {
			return &f.Sections[i], true
		}
	}
	return nil, false
}

func (f *FormattedContent) HasDisclaimer(text string) bool {
	for _, d := range f.Disclaimers {
		if d == text {
			return true
		}
	}
	return false
}

// AdviceFinding is one advice-detection rule that matched.
type AdviceFinding struct {
	RuleID      string              `json:"rule_id"`
	Description string              `json:"description"`
	Severity    safety.RuleSeverity `json:"severity"`
	Matches     []string            `json:"matches"`
}

type AnalysisResult struct {
	HasAdvice       bool                      `json:"has_advice"`
	Violations      []AdviceFinding           `json:"violations"`
	ComplianceScore scoring.ComplianceScore01 `json:"compliance_score"`
}

//go:generate mockery --name=Analyzer --dir=. --output=./mocks --filename=analyzer_mock.go --case=underscore --with-expecter
type Analyzer interface {
	AnalyzeText(ctx context.Context, text string) (*AnalysisResult, error)
}
