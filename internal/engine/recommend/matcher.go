// Package recommend selects personalized advice and illustrative case
// studies for a scored assessment.  Like the scoring engine it is pure and
// deterministic: the same result and profile always produce the same
// recommendations.
package recommend

import (
	"math"
	"sort"

	"github.com/culturiq/engine/internal/domain/assessment"
	"github.com/culturiq/engine/internal/domain/content"
	"github.com/culturiq/engine/internal/domain/demographics"
)

// Additive match weights for scoring a variant's context against a profile.
// Dimensions the variant does not constrain contribute nothing; a fully
// generic variant scores the flat baseline instead.
const (
	orgTypeWeight  = 30
	industryWeight = 25
	stageWeight    = 25
	teamSizeWeight = 10
	regionWeight   = 10

	genericBaseline    = 10
	lowConfidenceFloor = 10
)

// Recommendation is one piece of advice bound to the respondent's actual
// score and profile.  Priority 1 is the weakest construct.
type Recommendation struct {
	Construct          string             `json:"construct"`
	ConstructLabel     string             `json:"constructLabel"`
	Priority           int                `json:"priority"`
	CurrentScore       int                `json:"currentScore"` // rounded percentage
	TargetScore        int                `json:"targetScore"`
	Title              string             `json:"title"`
	Description        string             `json:"description"`
	ActionSteps        []content.ActionStep `json:"actionSteps"`
	Impact             string             `json:"impact"`
	ContextLabel       string             `json:"contextLabel"`
	VariantID          string             `json:"variantId,omitempty"`
	RelatedCaseStudies []MatchedCaseStudy `json:"relatedCaseStudies,omitempty"`
}

// Matcher produces recommendations from construct scores and a profile.
type Matcher struct {
	variants    content.VariantRegistry
	caseStudies *CaseStudyMatcher
	threshold   float64
	maxRecs     int
	targetScore int
}

// MatcherOption customizes a Matcher.
type MatcherOption func(*Matcher)

// WithWeakThreshold overrides the normalized score below which a construct
// counts as weak.
func WithWeakThreshold(t float64) MatcherOption {
	return func(m *Matcher) {
		if t > 0 && t <= 1 {
			m.threshold = t
		}
	}
}

// WithMaxRecommendations caps how many weak constructs get recommendations.
func WithMaxRecommendations(n int) MatcherOption {
	return func(m *Matcher) {
		if n > 0 {
			m.maxRecs = n
		}
	}
}

// WithTargetScore overrides the improvement target bound into each
// recommendation.
func WithTargetScore(n int) MatcherOption {
	return func(m *Matcher) {
		if n > 0 && n <= 100 {
			m.targetScore = n
		}
	}
}

// WithCaseStudies attaches a case-study matcher so recommendations carry
// related examples.  Without one, RelatedCaseStudies stays empty.
func WithCaseStudies(csm *CaseStudyMatcher) MatcherOption {
	return func(m *Matcher) { m.caseStudies = csm }
}

// NewMatcher builds a recommendation matcher over the given variant library.
func NewMatcher(variants content.VariantRegistry, opts ...MatcherOption) *Matcher {
	m := &Matcher{
		variants:    variants,
		threshold:   0.7,
		maxRecs:     5,
		targetScore: 70,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match returns the ordered recommendations for a scored result.  Every weak
// construct surfaces something actionable: a context-matched variant, the
// library's generic fallback, or a synthesized minimal recommendation when
// the library has no content for the construct at all.
func (m *Matcher) Match(result *assessment.Result, profile demographics.Demographics) []Recommendation {
	weak := m.weakConstructs(result)
	contextLabel := profile.ContextLabel()

	recs := make([]Recommendation, 0, len(weak))
	for i, cs := range weak {
		variant := m.selectVariant(cs.Construct, profile)
		if variant == nil {
			variant = synthesize(cs)
		}

		rec := Recommendation{
			Construct:      cs.Construct,
			ConstructLabel: cs.Label,
			Priority:       i + 1,
			CurrentScore:   int(math.Round(cs.Score * 100)),
			TargetScore:    m.targetScore,
			Title:          variant.Title,
			Description:    variant.Description,
			ActionSteps:    variant.ActionSteps,
			Impact:         variant.Impact,
			ContextLabel:   contextLabel,
			VariantID:      variant.ID,
		}
		if m.caseStudies != nil {
			rec.RelatedCaseStudies = m.caseStudies.Match(cs.Construct, cs.Label, profile, result.OverallScore)
		}
		recs = append(recs, rec)
	}
	return recs
}

// weakConstructs returns the answered constructs scoring below the threshold,
// weakest first, capped.  Ties break on construct id so the ordering is
// stable across runs.
func (m *Matcher) weakConstructs(result *assessment.Result) []assessment.ConstructScore {
	var weak []assessment.ConstructScore
	for _, cs := range result.ConstructScores {
		if cs.Answered == 0 {
			continue
		}
		if cs.Score < m.threshold {
			weak = append(weak, cs)
		}
	}
	sort.Slice(weak, func(i, j int) bool {
		if weak[i].Score != weak[j].Score {
			return weak[i].Score < weak[j].Score
		}
		return weak[i].Construct < weak[j].Construct
	})
	if len(weak) > m.maxRecs {
		weak = weak[:m.maxRecs]
	}
	return weak
}

// selectVariant scores every candidate for the construct and returns the
// winner, or nil when the library has no candidates.
func (m *Matcher) selectVariant(construct string, profile demographics.Demographics) *content.Variant {
	candidates := m.variants.VariantsFor(construct)
	if len(candidates) == 0 {
		return nil
	}

	best := 0
	bestScore := -1
	for i := range candidates {
		score := scoreVariant(candidates[i].Context, profile)
		if score > bestScore {
			best, bestScore = i, score
			continue
		}
		// More specific wins on ties; library order settles the rest.
		if score == bestScore &&
			candidates[i].Context.ConstraintCount() > candidates[best].Context.ConstraintCount() {
			best = i
		}
	}

	if bestScore < lowConfidenceFloor {
		for i := range candidates {
			if candidates[i].Context.IsGeneric() {
				return &candidates[i]
			}
		}
	}
	return &candidates[best]
}

// scoreVariant applies the additive field-match weights.  Constrained
// dimensions that do not include the profile's value contribute zero.
func scoreVariant(ctx content.VariantContext, d demographics.Demographics) int {
	if ctx.IsGeneric() {
		return genericBaseline
	}

	score := 0
	if containsOrgType(ctx.OrgTypes, d.OrgType) {
		score += orgTypeWeight
	}
	if containsIndustry(ctx.Industries, d.Industry) {
		score += industryWeight
	}
	if containsStage(ctx.Stages, d.BusinessStage) {
		score += stageWeight
	}
	if containsTeamSize(ctx.TeamSizes, d.TeamSize) {
		score += teamSizeWeight
	}
	if containsRegion(ctx.Regions, d.Region) {
		score += regionWeight
	}
	return score
}

// synthesize builds a minimal generic recommendation for a construct the
// library carries no content for.
func synthesize(cs assessment.ConstructScore) *content.Variant {
	return &content.Variant{
		Context:     content.VariantContext{Construct: cs.Construct},
		Title:       "Strengthen " + cs.Label,
		Description: "Your " + cs.Label + " score indicates room for improvement. Review your current practices in this area and identify one concrete change to make this month.",
		ActionSteps: []content.ActionStep{
			{Action: "Assess your current approach to " + cs.Label, Timeframe: content.ThisWeek},
			{Action: "Identify one improvement to implement", Timeframe: content.ThisMonth},
			{Action: "Review progress and adjust", Timeframe: content.ThisQuarter},
		},
		Impact:   "Strengthens a weak dimension of your resilience profile",
		Priority: content.PriorityMedium,
	}
}

func containsOrgType(list []demographics.OrganizationType, v demographics.OrganizationType) bool {
	for _, o := range list {
		if o == v {
			return true
		}
	}
	return false
}

func containsIndustry(list []demographics.Industry, v demographics.Industry) bool {
	for _, i := range list {
		if i == v {
			return true
		}
	}
	return false
}

func containsStage(list []demographics.BusinessStage, v demographics.BusinessStage) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func containsTeamSize(list []demographics.TeamSize, v demographics.TeamSize) bool {
	for _, t := range list {
		if t == v {
			return true
		}
	}
	return false
}

func containsRegion(list []demographics.Region, v demographics.Region) bool {
	for _, r := range list {
		if r == v {
			return true
		}
	}
	return false
}
