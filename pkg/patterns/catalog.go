package patterns

import "github.com/NeuralTrust/LegalGuard/pkg/domain/safety"

// Built-in rule sets. Order inside each set is the evaluation order.
var (
	biasRules = []RuleSpec{
		{
			ID:          "bias.gender_generalization",
			Pattern:     `\b(women|men|females|males)\s+(are|tend\s+to\s+be)\s+(more|less|better|worse|naturally|always|never)\b`,
			Severity:    string(safety.SeverityMedium),
			Description: "Generalization about a gender",
		},
		{
			ID:          "bias.ethnic_generalization",
			Pattern:     `\b(people|those|persons)\s+of\s+\w+\s+(descent|origin|background)\s+(are|tend\s+to)\b`,
			Severity:    string(safety.SeverityHigh),
			Description: "Generalization about an ethnic or national group",
		},
		{
			ID:          "bias.age_generalization",
			Pattern:     `\b(older|elderly|younger)\s+(people|workers|clients|judges|jurors)\s+(are|cannot|can't|tend\s+to)\b`,
			Severity:    string(safety.SeverityMedium),
			Description: "Generalization about an age group",
		},
		{
			ID:          "bias.socioeconomic_generalization",
			Pattern:     `\b(poor|low[- ]income|wealthy|rich)\s+(people|clients|defendants|litigants|tenants)\s+(are|always|never|deserve)\b`,
			Severity:    string(safety.SeverityMedium),
			Description: "Generalization about economic status",
		},
		{
			ID:          "bias.religious_generalization",
			Pattern:     `\b(muslims|christians|jews|hindus|buddhists|atheists)\s+(are|always|never)\b`,
			Severity:    string(safety.SeverityHigh),
			Description: "Generalization about a religious group",
		},
		{
			ID:          "bias.judicial_stereotype",
			Pattern:     `\bjudges?\s+(always|never)\s+(favor|favour|side\s+with|rule\s+for)\b`,
			Severity:    string(safety.SeverityLow),
			Description: "Stereotype about judicial behaviour",
		},
	}

	hallucinationRules = []RuleSpec{
		{
			ID:          "hallucination.guaranteed_outcome",
			Pattern:     `\b(guaranteed|certain|100%)\s+(to\s+)?(win|succeed|prevail|outcome|result)\b`,
			Severity:    string(safety.SeverityHigh),
			Description: "Claims a guaranteed legal outcome",
		},
		{
			ID:          "hallucination.universal_court_claim",
			Pattern:     `\b(every|all)\s+courts?\s+(always|will|must)\b`,
			Severity:    string(safety.SeverityMedium),
			Description: "Universal claim about court behaviour",
		},
		{
			ID:          "hallucination.unsourced_statistic",
			Pattern:     `\b\d{1,3}(\.\d+)?\s?%\s+of\s+(cases|lawsuits|claims|judges|defendants|plaintiffs|appeals)\b`,
			Severity:    string(safety.SeverityMedium),
			Description: "Unsourced statistic about legal proceedings",
		},
		{
			ID:          "hallucination.overstated_law",
			Pattern:     `\bthe\s+law\s+(clearly|explicitly|always)\s+(states|says|requires|provides)\b`,
			Severity:    string(safety.SeverityMedium),
			Description: "Overstated certainty about what the law says",
		},
		{
			ID:          "hallucination.implausible_section",
			Pattern:     `\bsection\s+\d{5,}(\.\d+)?\s+of\s+the\b`,
			Severity:    string(safety.SeverityLow),
			Description: "Implausible statutory section reference",
		},
		{
			ID:          "hallucination.appeal_to_common_knowledge",
			Pattern:     `\b(it\s+is\s+well\s+known|everyone\s+knows|it\s+is\s+a\s+fact)\s+that\b`,
			Severity:    string(safety.SeverityLow),
			Description: "Assertion presented as common knowledge",
		},
	}

	ethicalRules = []RuleSpec{
		{
			ID:          "ethical.directive_should",
			Pattern:     `\byou\s+should\b`,
			Severity:    string(safety.SeverityHigh),
			Description: "Directive advice addressed to the reader",
		},
		{
			ID:          "ethical.personal_recommendation",
			Pattern:     `\bi\s+(strongly\s+)?(recommend|advise|suggest)\b`,
			Severity:    string(safety.SeverityHigh),
			Description: "Personal recommendation",
		},
		{
			ID:          "ethical.obligation",
			Pattern:     `\byou\s+(must|need\s+to|have\s+to)\b`,
			Severity:    string(safety.SeverityHigh),
			Description: "Imposes an obligation on the reader",
		},
		{
			ID:          "ethical.claims_legal_advice",
			Pattern:     `\b(my|our)\s+legal\s+(advice|opinion)\b`,
			Severity:    string(safety.SeverityCritical),
			Description: "Presents output as legal advice",
		},
		{
			ID:          "ethical.claims_representation",
			Pattern:     `\bas\s+your\s+(lawyer|attorney|counsel|legal\s+representative)\b`,
			Severity:    string(safety.SeverityCritical),
			Description: "Claims an attorney-client relationship",
		},
		{
			ID:          "ethical.predicted_result",
			Pattern:     `\byou\s+will\s+(definitely|certainly|surely)\s+(win|lose|prevail|succeed)\b`,
			Severity:    string(safety.SeverityCritical),
			Description: "Predicts the result of the reader's matter",
		},
		{
			ID:          "ethical.concealment",
			Pattern:     `\b(don't|do\s+not)\s+(tell|inform|disclose\s+to)\s+(the\s+)?(court|judge|police|irs|authorities)\b`,
			Severity:    string(safety.SeverityCritical),
			Description: "Encourages withholding information from authorities",
		},
		{
			ID:          "ethical.best_option",
			Pattern:     `\bthe\s+best\s+(option|strategy|choice|course\s+of\s+action)\b`,
			Severity:    string(safety.SeverityMedium),
			Description: "Ranks options on the reader's behalf",
		},
	}

	contentSafetyRules = []RuleSpec{
		{
			ID:          "content_safety.violence",
			Pattern:     `\b(kill|hurt|harm|assault|attack)\s+(him|her|them|the\s+(witness|judge|plaintiff|defendant|landlord|tenant))\b`,
			Severity:    string(safety.SeverityCritical),
			Description: "Violence against a person",
		},
		{
			ID:          "content_safety.evidence_tampering",
			Pattern:     `\b(destroy|hide|shred|delete|fabricate|tamper\s+with)\s+(the\s+|any\s+)?(evidence|documents|records)\b`,
			Severity:    string(safety.SeverityHigh),
			Description: "Evidence tampering",
		},
		{
			ID:          "content_safety.witness_interference",
			Pattern:     `\b(intimidate|threaten|bribe|pay\s+off)\s+(a\s+|the\s+)?(witness|juror|judge|official)s?\b`,
			Severity:    string(safety.SeverityHigh),
			Description: "Interference with witnesses or officials",
		},
		{
			ID:          "content_safety.perjury",
			Pattern:     `\b(lie|lying)\s+(under\s+oath|to\s+the\s+court)\b|\bcommit\s+perjury\b`,
			Severity:    string(safety.SeverityMedium),
			Description: "Encourages perjury",
		},
		{
			ID:          "content_safety.asset_concealment",
			Pattern:     `\b(hide|conceal)\s+(your\s+)?(assets|income|property)\s+from\b`,
			Severity:    string(safety.SeverityHigh),
			Description: "Encourages concealing assets",
		},
	}

	legalAdviceRules = []RuleSpec{
		{
			ID:          "legal_advice.directed_action",
			Pattern:     `\byou\s+should\s+(file|sue|settle|sign|plead|appeal|hire|accept|reject|contest)\b`,
			Severity:    string(safety.SeverityHigh),
			Description: "Directs a specific legal action",
		},
		{
			ID:          "legal_advice.personal_recommendation",
			Pattern:     `\bi\s+(recommend|advise)\s+(that\s+you|you)\b`,
			Severity:    string(safety.SeverityHigh),
			Description: "Recommends a course of action to the reader",
		},
		{
			ID:          "legal_advice.plea_recommendation",
			Pattern:     `\bplead(ing)?\s+(guilty|not\s+guilty|no\s+contest)\s+is\s+(your|the)\s+best\b`,
			Severity:    string(safety.SeverityCritical),
			Description: "Recommends a plea",
		},
		{
			ID:          "legal_advice.case_assessment",
			Pattern:     `\byour\s+(case|claim|defen[cs]e)\s+(is|will\s+be)\s+(strong|weak|successful|hopeless|a\s+winner)\b`,
			Severity:    string(safety.SeverityMedium),
			Description: "Assesses the strength of the reader's matter",
		},
		{
			ID:          "legal_advice.merits_assessment",
			Pattern:     `\byou\s+(have|do\s+not\s+have|don't\s+have)\s+a\s+(valid|strong|good|winning)\s+(case|claim|defen[cs]e)\b`,
			Severity:    string(safety.SeverityHigh),
			Description: "Assesses the merits of the reader's matter",
		},
		{
			ID:          "legal_advice.situational",
			Pattern:     `\bin\s+your\s+(situation|case),?\s+(you|the\s+best)\b`,
			Severity:    string(safety.SeverityMedium),
			Description: "Applies law to the reader's specific facts",
		},
	}
)

// DefaultRules returns the built-in catalog in monitor evaluation order followed
// by the advice-detection set.
func DefaultRules() []RuleSpec {
	sets := []struct {
		category safety.Category
		rules    []RuleSpec
	}{
		{safety.CategoryBias, biasRules},
		{safety.CategoryHallucination, hallucinationRules},
		{safety.CategoryEthical, ethicalRules},
		{safety.CategoryContentSafety, contentSafetyRules},
		{safety.CategoryLegalAdvice, legalAdviceRules},
	}

	var out []RuleSpec
	for _, set := range sets {
		for _, r := range set.rules {
			r.Category = string(set.category)
			out = append(out, r)
		}
	}
	return out
}
