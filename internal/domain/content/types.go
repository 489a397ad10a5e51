// Package content holds the read-only advice libraries consumed by the
// recommendation and case-study matchers: context-tagged recommendation
// variants and verified case studies.  The libraries are injected as
// registries rather than referenced as globals so tests can substitute small
// fixtures.
package content

import "github.com/culturiq/engine/internal/domain/demographics"

// Timeframe tags an action step for the "this week" / "quick wins" views.
type Timeframe string

const (
	ThisWeek    Timeframe = "this-week"
	ThisMonth   Timeframe = "this-month"
	ThisQuarter Timeframe = "this-quarter"
	Ongoing     Timeframe = "ongoing"
)

// ActionStep is one ordered, concrete step inside a recommendation.
type ActionStep struct {
	Action    string    `json:"action"`
	Timeframe Timeframe `json:"timeframe,omitempty"`
}

// VariantContext declares who a recommendation variant is written for.  An
// empty slice means the dimension matches anything; a variant whose every
// dimension is empty is the construct's generic fallback.
type VariantContext struct {
	Construct string
	OrgTypes  []demographics.OrganizationType
	Industries []demographics.Industry
	Stages    []demographics.BusinessStage
	TeamSizes []demographics.TeamSize
	Regions   []demographics.Region
}

// ConstraintCount returns how many dimensions carry at least one constraint.
// Used by the matcher's more-specific-wins tie-break.
func (c VariantContext) ConstraintCount() int {
	n := 0
	if len(c.OrgTypes) > 0 {
		n++
	}
	if len(c.Industries) > 0 {
		n++
	}
	if len(c.Stages) > 0 {
		n++
	}
	if len(c.TeamSizes) > 0 {
		n++
	}
	if len(c.Regions) > 0 {
		n++
	}
	return n
}

// IsGeneric reports whether the context carries no constraints at all.
func (c VariantContext) IsGeneric() bool {
	return c.ConstraintCount() == 0
}

// Priority labels the urgency a variant's authors assigned to it.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Variant is one piece of advice tied to a construct and a context.  Many
// variants may exist per construct; exactly one generic variant should exist
// as the fallback.
type Variant struct {
	ID                 string
	Context            VariantContext
	Title              string
	Description        string
	ActionSteps        []ActionStep
	Impact             string
	Priority           Priority
	RelatedCaseStudies []string
}

// CaseStudy is one verified example tagged for matching: the sectors and
// organization forms it represents, where it operates, and which constructs
// it demonstrably overcame weakness in.  Score is its resilience index on the
// 0-100 scale, used for the proximity component of matching.
type CaseStudy struct {
	ID                 string
	Title              string
	Country            string
	Category           string
	Summary            string
	Industries         []demographics.Industry
	OrgTypes           []demographics.OrganizationType
	Regions            []demographics.Region
	ChallengesOvercome []string
	Score              float64
}

// VariantRegistry exposes the recommendation library to the matcher.
type VariantRegistry interface {
	// VariantsFor returns the candidate variants for a construct in library
	// (declaration) order, or nil when the construct has no curated content.
	VariantsFor(construct string) []Variant
}

// CaseStudyRegistry exposes the case-study library to the matcher.
type CaseStudyRegistry interface {
	// All returns every case study in library order.
	All() []CaseStudy
	// ByID resolves a single case study.
	ByID(id string) (CaseStudy, bool)
}

type staticVariants struct {
	byConstruct map[string][]Variant
}

func (s *staticVariants) VariantsFor(construct string) []Variant {
	return s.byConstruct[construct]
}

// NewVariantRegistry builds a registry from variant lists, preserving order.
func NewVariantRegistry(variants ...[]Variant) VariantRegistry {
	m := make(map[string][]Variant)
	for _, list := range variants {
		for _, v := range list {
			m[v.Context.Construct] = append(m[v.Context.Construct], v)
		}
	}
	return &staticVariants{byConstruct: m}
}

type staticCaseStudies struct {
	all  []CaseStudy
	byID map[string]CaseStudy
}

func (s *staticCaseStudies) All() []CaseStudy { return s.all }

func (s *staticCaseStudies) ByID(id string) (CaseStudy, bool) {
	cs, ok := s.byID[id]
	return cs, ok
}

// NewCaseStudyRegistry builds a registry from a case-study list.
func NewCaseStudyRegistry(studies []CaseStudy) CaseStudyRegistry {
	byID := make(map[string]CaseStudy, len(studies))
	for _, cs := range studies {
		byID[cs.ID] = cs
	}
	return &staticCaseStudies{all: studies, byID: byID}
}
