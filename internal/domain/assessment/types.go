// Package assessment defines the core domain types of the scoring pipeline:
// assessment types, question catalogs, answer maps, and computed results.
// Everything in this package is pure data plus static configuration; no I/O.
package assessment

import (
	"encoding/json"
	"fmt"
	"time"
)

// Type identifies one of the engine's assessments.  CIRF is the primary
// assessment; the remaining types are secondaries unlocked by completing CIRF.
type Type string

const (
	TypeCIRF    Type = "cirf"    // Cultural Innovation Resilience Framework
	TypeCIMM    Type = "cimm"    // Cultural Innovation Maturity Model
	TypeCIRA    Type = "cira"    // Cultural Innovation Readiness Audit
	TypeTBL     Type = "tbl"     // Triple Bottom Line
	TypeCISS    Type = "ciss"    // Cultural Innovation Sustainability Scan
	TypePricing Type = "pricing" // Pricing Strategy Assessment
)

// AllTypes lists every known assessment type in declaration order.
func AllTypes() []Type {
	return []Type{TypeCIRF, TypeCIMM, TypeCIRA, TypeTBL, TypeCISS, TypePricing}
}

// Valid reports whether t is a known assessment type.
func (t Type) Valid() bool {
	switch t {
	case TypeCIRF, TypeCIMM, TypeCIRA, TypeTBL, TypeCISS, TypePricing:
		return true
	}
	return false
}

func (t Type) String() string { return string(t) }

// ParseType converts a wire-level string into a Type, reporting whether the
// value is a known assessment.
func ParseType(s string) (Type, bool) {
	t := Type(s)
	return t, t.Valid()
}

// QuestionKind classifies how a question's answer is interpreted.
type QuestionKind string

const (
	KindLikert      QuestionKind = "likert-1-7"
	KindCategorical QuestionKind = "categorical"
	KindMultiSelect QuestionKind = "multi-select"
	KindFreeText    QuestionKind = "free-text"
)

// Question is one immutable catalog entry.  Only Likert questions contribute
// to scoring; the other kinds feed the demographic extractor or are carried
// verbatim for presentation collaborators.
type Question struct {
	ID        string
	Section   string
	Construct string
	Kind      QuestionKind
	// Weight scales this question within its construct mean.  Zero means the
	// default weight of 1.
	Weight float64
}

// EffectiveWeight returns the question weight with the default applied.
func (q Question) EffectiveWeight() float64 {
	if q.Weight <= 0 {
		return 1
	}
	return q.Weight
}

// AnswerMap holds the raw survey answers keyed by question id.  Values are
// int/float64 (Likert), string (categorical or free text), []string
// (multi-select), or nil for explicitly skipped questions.  Absent and nil
// entries are treated identically: excluded from scoring.
type AnswerMap map[string]interface{}

// Likert extracts a valid Likert answer (integer 1-7) for the given question
// id.  The second return is false for absent, nil, out-of-range, or
// non-numeric values.  JSON decoding produces float64 for numbers, so both
// numeric representations are accepted; fractional values are rejected.
func (a AnswerMap) Likert(questionID string) (int, bool) {
	raw, ok := a[questionID]
	if !ok || raw == nil {
		return 0, false
	}
	var v int
	switch n := raw.(type) {
	case int:
		v = n
	case int64:
		v = int(n)
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		v = int(n)
	default:
		return 0, false
	}
	if v < 1 || v > 7 {
		return 0, false
	}
	return v, true
}

// Category extracts a categorical answer for the given question id.
func (a AnswerMap) Category(questionID string) (string, bool) {
	raw, ok := a[questionID]
	if !ok || raw == nil {
		return "", false
	}
	s, ok := raw.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// AnsweredCount returns how many entries hold a non-nil value.
func (a AnswerMap) AnsweredCount() int {
	n := 0
	for _, v := range a {
		if v != nil {
			n++
		}
	}
	return n
}

// NormalizeLikert maps a Likert value from its 1-7 domain onto [0, 1].
// Out-of-range values map to 0; callers should validate with Likert first.
func NormalizeLikert(value int) float64 {
	if value < 1 || value > 7 {
		return 0
	}
	return float64(value-1) / 6
}

// ConstructScore is the normalized score of a single construct together with
// how many of its questions were answered.
type ConstructScore struct {
	Construct string  `json:"construct"`
	Label     string  `json:"label"`
	Score     float64 `json:"score"` // normalized, [0, 1]
	Answered  int     `json:"answered"`
	Total     int     `json:"total"`
}

// SectionScore is the weighted aggregate of a section's constructs expressed
// as a 0-100 percentage for display.
type SectionScore struct {
	Section  string  `json:"section"`
	Label    string  `json:"label"`
	Score    float64 `json:"score"` // [0, 100]
	Answered int     `json:"answered"`
	Total    int     `json:"total"`
	// Complete reports whether the section met the completion gate and
	// therefore contributed to the overall score.
	Complete bool `json:"complete"`
}

// SynergyPair declares a multiplicative benefit between two constructs.  The
// bonus is added to the overall score when both constructs meet the
// activation threshold.
type SynergyPair struct {
	First       string  `json:"first"`
	Second      string  `json:"second"`
	Bonus       float64 `json:"bonus"` // fraction of the 0-100 scale, e.g. 0.092
	Description string  `json:"description"`
}

// Band is the qualitative interpretation attached to an overall score range.
type Band string

const (
	BandNascent     Band = "Nascent"
	BandDeveloping  Band = "Developing"
	BandEstablished Band = "Established"
	BandThriving    Band = "Thriving"
)

func (b Band) String() string { return string(b) }

// Interpretation carries the band with its display metadata.
type Interpretation struct {
	Level       Band   `json:"level"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// Result is the immutable outcome of scoring one completed assessment.
// A retake produces a new Result; existing rows are never mutated.
type Result struct {
	ID              string                    `json:"id"`
	RespondentID    string                    `json:"respondentId"`
	Type            Type                      `json:"assessmentType"`
	OverallScore    float64                   `json:"overallScore"` // [0, 100]
	SectionScores   map[string]SectionScore   `json:"sectionScores"`
	ConstructScores map[string]ConstructScore `json:"constructScores"`
	SynergyBonus    float64                   `json:"synergyBonus"` // percent uplift on the base score
	ActiveSynergies []SynergyPair             `json:"activeSynergies,omitempty"`
	Interpretation  Interpretation            `json:"interpretation"`
	SubmittedAt     time.Time                 `json:"submittedAt"`
}

// MarshalBinary lets a Result travel through interfaces that expect
// encoding.BinaryMarshaler (Kafka message values, Redis payloads).
func (r *Result) MarshalBinary() ([]byte, error) {
	return json.Marshal(r)
}

// Validate checks the internal consistency of a computed result.
func (r *Result) Validate() error {
	if r.RespondentID == "" {
		return fmt.Errorf("assessment: result respondent id is empty")
	}
	if !r.Type.Valid() {
		return fmt.Errorf("assessment: result has unknown type %q", r.Type)
	}
	if r.OverallScore < 0 || r.OverallScore > 100 {
		return fmt.Errorf("assessment: overall score %g is out of range [0, 100]", r.OverallScore)
	}
	for id, cs := range r.ConstructScores {
		if cs.Score < 0 || cs.Score > 1 {
			return fmt.Errorf("assessment: construct %s score %g is out of range [0, 1]", id, cs.Score)
		}
	}
	for id, ss := range r.SectionScores {
		if ss.Score < 0 || ss.Score > 100 {
			return fmt.Errorf("assessment: section %s score %g is out of range [0, 100]", id, ss.Score)
		}
	}
	return nil
}
