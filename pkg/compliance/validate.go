package compliance

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	domain "github.com/NeuralTrust/LegalGuard/pkg/domain/compliance"
	"github.com/NeuralTrust/LegalGuard/pkg/scoring"
)

var phraseExpr = compilePhrases(neverInclude)

func compilePhrases(phrases []string) map[string]*regexp.Regexp {
	out := make(map[string]*regexp.Regexp, len(phrases))
	for _, phrase := range phrases {
		words := strings.Fields(phrase)
		for i, w := range words {
			words[i] = regexp.QuoteMeta(w)
		}
		out[phrase] = regexp.MustCompile(`(?i)\b` + strings.Join(words, `\s+`) + `\b`)
	}
	return out
}

// Validate checks every section for never-include phrases and the content for
// its template's required sections and disclaimers.
func (r *Rewriter) Validate(content *domain.FormattedContent) domain.ValidationResult {
	result := domain.ValidationResult{
		Violations:        []domain.ValidationViolation{},
		Warnings:          []string{},
		ValidatedSections: []string{},
	}
	if content == nil {
		result.Warnings = append(result.Warnings, "no content to validate")
		result.ComplianceScore = scoring.ComplianceScore(0, len(result.Warnings))
		return result
	}

	tmpl, _ := TemplateFor(content.Mode)

	for _, section := range content.Sections {
		result.ValidatedSections = append(result.ValidatedSections, section.Name)
		walkStrings(section.Content, section.Name, func(path, text string) {
			for _, phrase := range tmpl.NeverInclude {
				if match := phraseExpr[phrase].FindString(text); match != "" {
					result.Violations = append(result.Violations, domain.ValidationViolation{
						Section: section.Name,
						Path:    path,
						Phrase:  phrase,
						Match:   match,
					})
				}
			}
		})
	}

	covered := 0
	for _, name := range tmpl.RequiredSections {
		if _, ok := content.Section(name); ok {
			covered++
			continue
		}
		result.Warnings = append(result.Warnings, fmt.Sprintf("missing required section: %s", name))
	}
	for _, d := range tmpl.RequiredDisclaimers {
		if !content.HasDisclaimer(d) {
			result.Warnings = append(result.Warnings, fmt.Sprintf("missing required disclaimer: %q", d))
		}
	}

	result.ComplianceScore = scoring.ComplianceScore(len(result.Violations), len(result.Warnings))
	result.CoverageScore = scoring.CoverageAdjusted(result.ComplianceScore, covered, len(tmpl.RequiredSections))
	result.IsCompliant = scoring.Passes(result.ComplianceScore, len(result.Violations))

	if r.recorder != nil {
		r.recorder.RecordValidation(content.Mode, result)
	}
	return result
}

// walkStrings visits every string in value. Map keys are visited in sorted order.
func walkStrings(value interface{}, path string, visit func(path, text string)) {
	switch v := value.(type) {
	case string:
		visit(path, v)
	case []string:
		for i, s := range v {
			visit(fmt.Sprintf("%s[%d]", path, i), s)
		}
	case []interface{}:
		for i, item := range v {
			walkStrings(item, fmt.Sprintf("%s[%d]", path, i), visit)
		}
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			walkStrings(v[k], path+"."+k, visit)
		}
	}
}
