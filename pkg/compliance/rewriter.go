// Package compliance turns advisory wording into general legal information,
// assembles presentation templates with their disclaimers and validates the
// result.
package compliance

import (
	"fmt"
	"strings"
	"time"

	domain "github.com/NeuralTrust/LegalGuard/pkg/domain/compliance"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const defaultTitle = "Legal Information"

// Recorder observes validation outcomes.
//
//go:generate mockery --name=Recorder --dir=. --output=./mocks --filename=recorder_mock.go --case=underscore --with-expecter
type Recorder interface {
	RecordValidation(mode domain.PresentationMode, result domain.ValidationResult)
	RecordCorrection(mode domain.PresentationMode, compliant bool)
}

type Option func(*Rewriter)

func WithTransformer(t Transformer) Option {
	return func(r *Rewriter) {
		r.transformer = t
	}
}

func WithRecorder(rec Recorder) Option {
	return func(r *Rewriter) {
		r.recorder = rec
	}
}

func WithClock(clock func() time.Time) Option {
	return func(r *Rewriter) {
		r.clock = clock
	}
}

func WithIDGenerator(gen func() string) Option {
	return func(r *Rewriter) {
		r.newID = gen
	}
}

// WithDefaultMode sets the mode used when callers pass an empty or unknown mode.
// An unknown default is ignored and summary stays in place.
func WithDefaultMode(mode domain.PresentationMode) Option {
	return func(r *Rewriter) {
		if _, ok := TemplateFor(mode); ok {
			r.defaultMode = mode
		}
	}
}

// Rewriter is stateless apart from its configuration and safe for concurrent use.
type Rewriter struct {
	logger      *logrus.Logger
	transformer Transformer
	recorder    Recorder
	clock       func() time.Time
	newID       func() string
	defaultMode domain.PresentationMode
}

func NewRewriter(logger *logrus.Logger, opts ...Option) *Rewriter {
	r := &Rewriter{
		logger:      logger,
		transformer: NewSubstitutionTransformer(),
		clock:       time.Now,
		newID:       uuid.NewString,
		defaultMode: domain.ModeSummary,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Rewriter) DefaultMode() domain.PresentationMode {
	return r.defaultMode
}

// TransformToInformational rewrites advisory phrasing. Text without advisory
// phrases is returned unchanged.
func (r *Rewriter) TransformToInformational(text string) string {
	return r.transformer.Transform(text)
}

// FormatContent builds and validates presentation content. Section text is kept
// as supplied; ApplyCorrections is the rewriting step.
func (r *Rewriter) FormatContent(
	source *domain.SourceContent,
	mode domain.PresentationMode,
	customRequirements []string,
) *domain.FormattedContent {
	if source == nil {
		source = &domain.SourceContent{}
	}
	if mode == "" {
		mode = r.defaultMode
	}

	tmpl, known := TemplateFor(mode)
	notes := make([]string, 0, len(customRequirements)+1)
	if !known {
		tmpl, _ = TemplateFor(r.defaultMode)
		r.logger.WithFields(logrus.Fields{
			"mode":     string(mode),
			"fallback": string(tmpl.Mode),
		}).Warn("unknown presentation mode, using default template")
		notes = append(notes, fmt.Sprintf("Unknown presentation mode %q; %s template applied.", mode, tmpl.Mode))
	}

	id := source.ID
	if id == "" {
		id = r.newID()
	}
	title := collapseSpace(source.Title)
	if title == "" {
		title = defaultTitle
	}

	content := &domain.FormattedContent{
		ID:          id,
		Title:       title,
		Mode:        tmpl.Mode,
		Sections:    []domain.Section{},
		Disclaimers: appendUnique([]string{}, tmpl.Header...),
		CreatedAt:   r.clock(),
	}

	titler := cases.Title(language.English)
	for _, name := range tmpl.Sections {
		value, ok := formatSection(name, source)
		if !ok {
			continue
		}
		content.Sections = append(content.Sections, domain.Section{
			Name:            name,
			Title:           titler.String(strings.ReplaceAll(name, "_", " ")),
			Content:         value,
			EducationalNote: educationalNotes[name],
			Disclaimer:      tmpl.SectionHeader,
		})
	}
	content.Disclaimers = appendUnique(content.Disclaimers, tmpl.Footer...)

	for _, req := range customRequirements {
		if req = strings.TrimSpace(req); req != "" {
			notes = append(notes, "Custom requirement: "+req)
		}
	}
	content.ComplianceNotes = notes

	content.Validation = r.Validate(content)
	return content
}

// ApplyCorrections runs one corrective pass over non-compliant content: every
// string in every section is transformed once, the correction disclaimers are
// added and the content is validated again. The result is returned even when it
// is still not compliant.
func (r *Rewriter) ApplyCorrections(content *domain.FormattedContent) *domain.FormattedContent {
	if content == nil || content.Validation.IsCompliant {
		return content
	}

	before := len(content.Validation.Violations)
	for i := range content.Sections {
		content.Sections[i].Content = transformValue(content.Sections[i].Content, r.transformer)
	}
	content.Disclaimers = appendUnique(content.Disclaimers, correctionDisclaimers...)
	content.ComplianceNotes = append(content.ComplianceNotes, "Advisory language was rewritten as general information.")
	content.CorrectionsApplied = true
	content.Validation = r.Validate(content)

	r.logger.WithFields(logrus.Fields{
		"content_id":        content.ID,
		"violations_before": before,
		"violations_after":  len(content.Validation.Violations),
		"compliant":         content.Validation.IsCompliant,
	}).Info("compliance corrections applied")

	if r.recorder != nil {
		r.recorder.RecordCorrection(content.Mode, content.Validation.IsCompliant)
	}
	return content
}

// transformValue rewrites every string reachable through lists and maps.
func transformValue(value interface{}, t Transformer) interface{} {
	switch v := value.(type) {
	case string:
		return t.Transform(v)
	case []string:
		out := make([]string, len(v))
		for i, s := range v {
			out[i] = t.Transform(s)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = transformValue(item, t)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, item := range v {
			out[key] = transformValue(item, t)
		}
		return out
	default:
		return v
	}
}

func appendUnique(list []string, items ...string) []string {
	for _, item := range items {
		found := false
		for _, existing := range list {
			if existing == item {
				found = true
				break
			}
		}
		if !found {
			list = append(list, item)
		}
	}
	return list
}
