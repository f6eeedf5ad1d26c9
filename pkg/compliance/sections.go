package compliance

import (
	"strings"

	domain "github.com/NeuralTrust/LegalGuard/pkg/domain/compliance"
)

var educationalNotes = map[string]string{
	SectionDescription:    "This overview describes how the topic generally works.",
	SectionAdvantages:     "Benefits commonly associated with this option. Their relevance depends on individual circumstances.",
	SectionConsiderations: "Factors people commonly weigh. This is not an assessment of any particular situation.",
	SectionTimeline:       "Typical timeframes. Actual timelines vary by court and case complexity.",
	SectionCosts:          "Typical cost ranges. Actual costs vary by location and provider.",
	SectionRequirements:   "Common requirements. Specific requirements depend on the jurisdiction.",
	SectionAlternatives:   "Other approaches people commonly consider.",
	SectionJurisdiction:   "Rules described here may not apply in every jurisdiction.",
	SectionDetails:        "Additional reference information.",
}

// formatSection renders one section from the source. The boolean is false when
// the source has nothing for that section.
func formatSection(name string, src *domain.SourceContent) (interface{}, bool) {
	switch name {
	case SectionDescription:
		return formatText(src.Description)
	case SectionAdvantages:
		return formatList(src.Advantages)
	case SectionConsiderations:
		return formatList(src.Considerations)
	case SectionTimeline:
		return formatText(src.Timeline)
	case SectionCosts:
		return formatText(src.Costs)
	case SectionRequirements:
		return formatList(src.Requirements)
	case SectionAlternatives:
		return formatList(src.Alternatives)
	case SectionJurisdiction:
		return formatText(src.Jurisdiction)
	case SectionDetails:
		if len(src.Details) == 0 {
			return nil, false
		}
		return copyValue(src.Details), true
	}
	return nil, false
}

func formatText(s string) (interface{}, bool) {
	s = collapseSpace(s)
	return s, s != ""
}

func formatList(items []string) (interface{}, bool) {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = collapseSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out, len(out) > 0
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func copyValue(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, item := range v {
			out[key] = copyValue(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = copyValue(item)
		}
		return out
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	default:
		return v
	}
}
