package compliance

import (
	domain "github.com/NeuralTrust/LegalGuard/pkg/domain/compliance"
)

const (
	DisclaimerGeneral        = "This content provides general legal information for educational purposes only and does not constitute legal advice."
	DisclaimerAttorney       = "For advice about a specific situation, consult a licensed attorney in the relevant jurisdiction."
	DisclaimerJurisdiction   = "Laws vary by jurisdiction and change over time. Verify the current law that applies where you live."
	DisclaimerNoRelationship = "Using this information does not create an attorney-client relationship."
	DisclaimerComparison     = "Comparisons are general. The suitability of any option depends on individual circumstances."
	DisclaimerSection        = "Educational overview only."
	DisclaimerCorrected      = "This content was automatically revised to remove advisory language."
)

// correctionDisclaimers are appended by ApplyCorrections.
var correctionDisclaimers = []string{
	DisclaimerCorrected,
	DisclaimerAttorney,
	DisclaimerNoRelationship,
}

const (
	SectionDescription    = "description"
	SectionAdvantages     = "advantages"
	SectionConsiderations = "considerations"
	SectionTimeline       = "timeline"
	SectionCosts          = "costs"
	SectionRequirements   = "requirements"
	SectionAlternatives   = "alternatives"
	SectionJurisdiction   = "jurisdiction"
	SectionDetails        = "details"
)

// neverInclude lists phrases that must not appear in formatted content.
var neverInclude = []string{
	"you should",
	"you must",
	"i recommend",
	"i advise",
	"i suggest",
	"the best option",
	"the best strategy",
	"your best bet",
	"my advice",
	"my legal advice",
	"in your case",
	"you will definitely",
	"guaranteed to win",
}

// Template drives how one presentation mode is assembled and validated.
type Template struct {
	Mode                domain.PresentationMode
	Sections            []string
	RequiredSections    []string
	Header              []string
	SectionHeader       string
	Footer              []string
	RequiredDisclaimers []string
	NeverInclude        []string
}

var templates = map[domain.PresentationMode]Template{
	domain.ModeSummary: {
		Mode:                domain.ModeSummary,
		Sections:            []string{SectionDescription, SectionAdvantages, SectionConsiderations},
		RequiredSections:    []string{SectionDescription},
		Header:              []string{DisclaimerGeneral},
		Footer:              []string{DisclaimerAttorney},
		RequiredDisclaimers: []string{DisclaimerGeneral, DisclaimerAttorney},
		NeverInclude:        neverInclude,
	},
	domain.ModeDetailed: {
		Mode: domain.ModeDetailed,
		Sections: []string{
			SectionDescription,
			SectionAdvantages,
			SectionConsiderations,
			SectionTimeline,
			SectionCosts,
			SectionRequirements,
			SectionAlternatives,
			SectionJurisdiction,
			SectionDetails,
		},
		RequiredSections:    []string{SectionDescription, SectionConsiderations, SectionRequirements},
		Header:              []string{DisclaimerGeneral, DisclaimerNoRelationship},
		SectionHeader:       DisclaimerSection,
		Footer:              []string{DisclaimerAttorney, DisclaimerJurisdiction},
		RequiredDisclaimers: []string{DisclaimerGeneral, DisclaimerAttorney, DisclaimerJurisdiction},
		NeverInclude:        neverInclude,
	},
	domain.ModeComparison: {
		Mode: domain.ModeComparison,
		Sections: []string{
			SectionDescription,
			SectionAdvantages,
			SectionConsiderations,
			SectionCosts,
			SectionAlternatives,
		},
		RequiredSections:    []string{SectionDescription, SectionAlternatives},
		Header:              []string{DisclaimerGeneral, DisclaimerComparison},
		Footer:              []string{DisclaimerAttorney},
		RequiredDisclaimers: []string{DisclaimerGeneral, DisclaimerComparison, DisclaimerAttorney},
		NeverInclude:        neverInclude,
	},
}

// TemplateFor returns the template of mode and whether mode was known. Unknown
// modes get the summary template; the rewriter substitutes its own default.
func TemplateFor(mode domain.PresentationMode) (Template, bool) {
	t, ok := templates[mode]
	if !ok {
		return templates[domain.ModeSummary], false
	}
	return t, true
}

// GeneralDisclaimers is the disclaimer set attached to rewritten free text.
func GeneralDisclaimers() []string {
	return []string{DisclaimerGeneral, DisclaimerAttorney}
}
