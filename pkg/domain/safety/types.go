package safety

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Category groups detection rules by the kind of problem they flag.
type Category string

const (
	CategoryBias          Category = "bias"
	CategoryHallucination Category = "hallucination"
	CategoryEthical       Category = "ethical_violation"
	CategoryContentSafety Category = "content_safety"
	CategoryLegalAdvice   Category = "legal_advice"
)

// MonitoredCategories is the fixed evaluation order of the output monitor.
var MonitoredCategories = []Category{
	CategoryBias,
	CategoryHallucination,
	CategoryEthical,
	CategoryContentSafety,
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryBias, CategoryHallucination, CategoryEthical, CategoryContentSafety, CategoryLegalAdvice:
		return true
	}
	return false
}

// RuleSeverity is the severity a rule declares for itself.
type RuleSeverity string

const (
	SeverityLow      RuleSeverity = "low"
	SeverityMedium   RuleSeverity = "medium"
	SeverityHigh     RuleSeverity = "high"
	SeverityCritical RuleSeverity = "critical"
)

func (s RuleSeverity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Level is the alert level assigned to a violation or to a whole analysis.
// Levels are ordered: Safe < Warning < Danger < Critical.
type Level int

const (
	LevelSafe Level = iota
	LevelWarning
	LevelDanger
	LevelCritical
)

// LevelFor maps a declared rule severity onto an alert level.
// Severities are validated when a pattern library is built, so an unmapped
// value here is a programming error.
func LevelFor(s RuleSeverity) Level {
	switch s {
	case SeverityLow, SeverityMedium:
		return LevelWarning
	case SeverityHigh:
		return LevelDanger
	case SeverityCritical:
		return LevelCritical
	}
	panic(fmt.Sprintf("safety: unmapped rule severity %q", string(s)))
}

func (l Level) String() string {
	switch l {
	case LevelSafe:
		return "SAFE"
	case LevelWarning:
		return "WARNING"
	case LevelDanger:
		return "DANGER"
	case LevelCritical:
		return "CRITICAL"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SAFE":
		return LevelSafe, nil
	case "WARNING":
		return LevelWarning, nil
	case "DANGER":
		return LevelDanger, nil
	case "CRITICAL":
		return LevelCritical, nil
	}
	return LevelSafe, fmt.Errorf("unknown level: %s", s)
}

func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *Level) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseLevel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Hints carries optional caller context for one analysis. Unknown keys are ignored.
type Hints map[string]interface{}

func (h Hints) String(key string) string {
	if h == nil {
		return ""
	}
	v, ok := h[key].(string)
	if !ok {
		return ""
	}
	return v
}

// Violation is one rule hit produced by the output monitor. It doubles as the
// alert kept in the alert history.
type Violation struct {
	ID             string                 `json:"id"`
	Timestamp      time.Time              `json:"timestamp"`
	Category       Category               `json:"category"`
	Level          Level                  `json:"level"`
	RuleSeverity   RuleSeverity           `json:"rule_severity"`
	Message        string                 `json:"message"`
	SourceExcerpt  string                 `json:"source_excerpt"`
	Confidence     float64                `json:"confidence"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
	Resolved       bool                   `json:"resolved"`
	ResolvedAt     *time.Time             `json:"resolved_at,omitempty"`
	ResolutionNote string                 `json:"resolution_note,omitempty"`
}

// Result is the outcome of one analysis: the maximum level seen and the
// violations in evaluation order.
type Result struct {
	Level      Level       `json:"level"`
	Violations []Violation `json:"violations"`
}

func (r Result) IsSafe() bool {
	return r.Level == LevelSafe
}

// CountByCategory returns how many violations of each category the result holds.
func (r Result) CountByCategory() map[Category]int {
	counts := make(map[Category]int)
	for _, v := range r.Violations {
		counts[v.Category]++
	}
	return counts
}
