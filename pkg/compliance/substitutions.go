package compliance

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Transformer rewrites one piece of text.
type Transformer interface {
	Transform(text string) string
}

type Substitution struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// informationalSubstitutions is applied top to bottom. Longer phrases come before
// the shorter phrases they contain.
var informationalSubstitutions = []Substitution{
	{regexp.MustCompile(`(?i)\bthe\s+best\s+option\s+is\b`), "one option that may be considered is"},
	{regexp.MustCompile(`(?i)\bthe\s+best\s+(strategy|choice|approach|course\s+of\s+action)\s+is\b`), "one approach that may be considered is"},
	{regexp.MustCompile(`(?i)\bthe\s+best\s+option\b`), "one option that may be considered"},
	{regexp.MustCompile(`(?i)\bmy\s+legal\s+advice\s+is\b`), "general legal information indicates"},
	{regexp.MustCompile(`(?i)\bmy\s+advice\s+is\b`), "general information indicates"},
	{regexp.MustCompile(`(?i)\bi\s+strongly\s+recommend\b`), "commonly used approaches include"},
	{regexp.MustCompile(`(?i)\bi\s+recommend\b`), "commonly used approaches include"},
	{regexp.MustCompile(`(?i)\bi\s+advise\b`), "common guidance suggests"},
	{regexp.MustCompile(`(?i)\bi\s+suggest\b`), "some people consider"},
	{regexp.MustCompile(`(?i)\byou\s+should\s+not\b`), "parties often choose not to"},
	{regexp.MustCompile(`(?i)\byou\s+should\b`), "parties commonly"},
	{regexp.MustCompile(`(?i)\byou\s+must\b`), "parties are generally required to"},
	{regexp.MustCompile(`(?i)\byou\s+(need|have)\s+to\b`), "it is generally necessary to"},
	{regexp.MustCompile(`(?i)\byour\s+best\s+bet\b`), "a common approach"},
	{regexp.MustCompile(`(?i)\bin\s+your\s+case\b`), "in many cases"},
	{regexp.MustCompile(`(?i)\bin\s+your\s+situation\b`), "in similar situations"},
	{regexp.MustCompile(`(?i)\byou\s+will\s+(definitely|certainly|surely)\b`), "parties may"},
}

// SubstitutionTransformer applies an ordered substitution table, each pattern
// once across the whole string.
type SubstitutionTransformer struct {
	table []Substitution
}

func NewSubstitutionTransformer(table ...Substitution) *SubstitutionTransformer {
	if len(table) == 0 {
		table = informationalSubstitutions
	}
	return &SubstitutionTransformer{table: table}
}

func (t *SubstitutionTransformer) Transform(text string) string {
	for _, sub := range t.table {
		text = replaceMatching(text, sub)
	}
	return text
}

func replaceMatching(text string, sub Substitution) string {
	matches := sub.Pattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m[0]])
		b.WriteString(matchCase(text[m[0]:m[1]], sub.Replacement, startsSentence(text[:m[0]])))
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

// matchCase capitalises replacement when an uppercase match opened a sentence.
// A capital mid-sentence ("and I recommend") keeps the replacement lowercase.
func matchCase(match, replacement string, sentenceStart bool) string {
	first, _ := utf8.DecodeRuneInString(match)
	if !sentenceStart || !unicode.IsUpper(first) {
		return replacement
	}
	r, size := utf8.DecodeRuneInString(replacement)
	return string(unicode.ToUpper(r)) + replacement[size:]
}

// startsSentence reports whether text following prefix begins a sentence: the
// prefix is blank, ends a line, or ends with terminal punctuation, ignoring
// opening quotes and brackets.
func startsSentence(prefix string) bool {
	trimmed := strings.TrimRightFunc(prefix, unicode.IsSpace)
	if trimmed == "" || strings.ContainsRune(prefix[len(trimmed):], '\n') {
		return true
	}
	trimmed = strings.TrimRight(trimmed, "\"'([“‘")
	if trimmed == "" {
		return true
	}
	last, _ := utf8.DecodeLastRuneInString(trimmed)
	return strings.ContainsRune(".!?", last)
}
