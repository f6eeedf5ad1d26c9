// Package patterns holds the categorised detection rules shared by the output
// monitor and the compliance analyzer. Rules are plain data compiled once when a
// Library is built; a Library is never mutated afterwards.
package patterns

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/NeuralTrust/LegalGuard/pkg/domain/safety"
	"github.com/mitchellh/mapstructure"
)

var (
	ErrInvalidPattern = errors.New("invalid rule pattern")
	ErrInvalidRule    = errors.New("invalid rule definition")
)

// RuleSpec is the uncompiled form of a rule, as found in the built-in catalog or
// in configuration.
type RuleSpec struct {
	ID          string `mapstructure:"id"`
	Category    string `mapstructure:"category"`
	Pattern     string `mapstructure:"pattern"`
	Severity    string `mapstructure:"severity"`
	Description string `mapstructure:"description"`
}

// Rule is a compiled, immutable detection rule.
type Rule struct {
	ID          string
	Category    safety.Category
	Severity    safety.RuleSeverity
	Pattern     string
	Description string

	re *regexp.Regexp
}

// FindAll returns every non-overlapping match of the rule in text.
func (r Rule) FindAll(text string) []string {
	return r.re.FindAllString(text, -1)
}

func (r Rule) Match(text string) bool {
	return r.re.MatchString(text)
}

// Regexp exposes the compiled expression for rewriting callers.
func (r Rule) Regexp() *regexp.Regexp {
	return r.re
}

// Library is an ordered, categorised set of compiled rules.
type Library struct {
	order []safety.Category
	rules map[safety.Category][]Rule
	total int
}

// NewLibrary compiles specs in order. Any invalid rule fails the whole library so
// that detection is never silently weakened by a partial load.
func NewLibrary(specs []RuleSpec) (*Library, error) {
	lib := &Library{
		rules: make(map[safety.Category][]Rule),
	}
	seen := make(map[string]struct{}, len(specs))

	for i, spec := range specs {
		rule, err := compileRule(spec, i)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[rule.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate rule id %q", ErrInvalidRule, rule.ID)
		}
		seen[rule.ID] = struct{}{}

		if _, exists := lib.rules[rule.Category]; !exists {
			lib.order = append(lib.order, rule.Category)
		}
		lib.rules[rule.Category] = append(lib.rules[rule.Category], rule)
		lib.total++
	}

	return lib, nil
}

// NewDefaultLibrary builds the built-in catalog followed by any custom rules.
func NewDefaultLibrary(custom ...RuleSpec) (*Library, error) {
	specs := DefaultRules()
	specs = append(specs, custom...)
	return NewLibrary(specs)
}

// MustDefaultLibrary is NewDefaultLibrary for process start; it panics on error.
func MustDefaultLibrary() *Library {
	lib, err := NewDefaultLibrary()
	if err != nil {
		panic(err)
	}
	return lib
}

func compileRule(spec RuleSpec, index int) (Rule, error) {
	category := safety.Category(strings.TrimSpace(spec.Category))
	if !category.IsValid() {
		return Rule{}, fmt.Errorf("%w: rule %d has unknown category %q", ErrInvalidRule, index, spec.Category)
	}
	severity := safety.RuleSeverity(strings.ToLower(strings.TrimSpace(spec.Severity)))
	if !severity.IsValid() {
		return Rule{}, fmt.Errorf("%w: rule %d has unknown severity %q", ErrInvalidRule, index, spec.Severity)
	}
	if strings.TrimSpace(spec.Pattern) == "" {
		return Rule{}, fmt.Errorf("%w: rule %d has an empty pattern", ErrInvalidRule, index)
	}

	id := strings.TrimSpace(spec.ID)
	if id == "" {
		id = fmt.Sprintf("%s.%d", category, index)
	}

	expr := spec.Pattern
	if !strings.HasPrefix(expr, "(?i)") {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return Rule{}, fmt.Errorf("%w: rule %s: %v", ErrInvalidPattern, id, err)
	}

	return Rule{
		ID:          id,
		Category:    category,
		Severity:    severity,
		Pattern:     spec.Pattern,
		Description: spec.Description,
		re:          re,
	}, nil
}

// RulesFor returns the rules of one category in declaration order.
func (l *Library) RulesFor(category safety.Category) []Rule {
	if l == nil {
		return nil
	}
	rules := l.rules[category]
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// AllRules returns every rule, grouped by category in first-seen order.
func (l *Library) AllRules() []Rule {
	if l == nil {
		return nil
	}
	out := make([]Rule, 0, l.total)
	for _, c := range l.order {
		out = append(out, l.rules[c]...)
	}
	return out
}

func (l *Library) Categories() []safety.Category {
	if l == nil {
		return nil
	}
	out := make([]safety.Category, len(l.order))
	copy(out, l.order)
	return out
}

func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return l.total
}

func (l *Library) IsEmpty() bool {
	return l.Len() == 0
}

// DecodeRules converts loosely typed configuration entries into rule specs.
func DecodeRules(raw []map[string]interface{}) ([]RuleSpec, error) {
	specs := make([]RuleSpec, 0, len(raw))
	for i, entry := range raw {
		var spec RuleSpec
		if err := mapstructure.Decode(entry, &spec); err != nil {
			return nil, fmt.Errorf("failed to decode custom rule %d: %w", i, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
