package recommend

import (
	"math"
	"sort"

	"github.com/culturiq/engine/internal/domain/content"
	"github.com/culturiq/engine/internal/domain/demographics"
)

// Additive match weights for scoring a case study against a profile and a
// weak construct.
const (
	csIndustryWeight  = 30
	csOrgTypeWeight   = 25
	csRegionWeight    = 20
	csChallengeWeight = 25
	csProximityWeight = 15
)

// MatchedCaseStudy is a case study attached to a recommendation together
// with the match score and human-readable reasons it was chosen.
type MatchedCaseStudy struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Country      string   `json:"country"`
	Category     string   `json:"category"`
	Score        float64  `json:"score"`
	MatchScore   float64  `json:"matchScore"`
	MatchReasons []string `json:"matchReasons"`
}

// CaseStudyMatcher scores the case-study library against a respondent.
type CaseStudyMatcher struct {
	registry    content.CaseStudyRegistry
	topK        int
	maxDistance float64
}

// CaseStudyOption customizes a CaseStudyMatcher.
type CaseStudyOption func(*CaseStudyMatcher)

// WithTopK overrides how many case studies attach to each recommendation.
func WithTopK(k int) CaseStudyOption {
	return func(m *CaseStudyMatcher) {
		if k > 0 {
			m.topK = k
		}
	}
}

// WithMaxScoreDistance overrides the distance at which the score-proximity
// component decays to zero.
func WithMaxScoreDistance(d float64) CaseStudyOption {
	return func(m *CaseStudyMatcher) {
		if d > 0 {
			m.maxDistance = d
		}
	}
}

// NewCaseStudyMatcher builds a matcher over the given library.
func NewCaseStudyMatcher(registry content.CaseStudyRegistry, opts ...CaseStudyOption) *CaseStudyMatcher {
	m := &CaseStudyMatcher{registry: registry, topK: 2, maxDistance: 30}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match returns the top-K case studies for one weak construct, highest match
// first.  Studies with no match signal at all are dropped; library order
// settles score ties so output is stable.
func (m *CaseStudyMatcher) Match(construct, constructLabel string, profile demographics.Demographics, overallScore float64) []MatchedCaseStudy {
	all := m.registry.All()
	matched := make([]MatchedCaseStudy, 0, len(all))

	for _, cs := range all {
		score, reasons := m.scoreStudy(cs, construct, constructLabel, profile, overallScore)
		if score <= 0 {
			continue
		}
		matched = append(matched, MatchedCaseStudy{
			ID:           cs.ID,
			Title:        cs.Title,
			Country:      cs.Country,
			Category:     cs.Category,
			Score:        cs.Score,
			MatchScore:   score,
			MatchReasons: reasons,
		})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].MatchScore > matched[j].MatchScore
	})
	if len(matched) > m.topK {
		matched = matched[:m.topK]
	}
	return matched
}

func (m *CaseStudyMatcher) scoreStudy(cs content.CaseStudy, construct, constructLabel string, profile demographics.Demographics, overallScore float64) (float64, []string) {
	var score float64
	var reasons []string

	if containsIndustry(cs.Industries, profile.Industry) {
		score += csIndustryWeight
		reasons = append(reasons, "same industry")
	}
	if containsOrgType(cs.OrgTypes, profile.OrgType) {
		score += csOrgTypeWeight
		reasons = append(reasons, "similar organization type")
	}
	if containsRegion(cs.Regions, profile.Region) {
		score += csRegionWeight
		reasons = append(reasons, "same region")
	}
	for _, c := range cs.ChallengesOvercome {
		if c == construct {
			score += csChallengeWeight
			reasons = append(reasons, "overcame similar "+constructLabel+" challenge")
			break
		}
	}

	// Score proximity decays linearly to zero at the max distance.
	if dist := math.Abs(cs.Score - overallScore); dist < m.maxDistance {
		p := csProximityWeight * (1 - dist/m.maxDistance)
		score += p
		if p > 0 {
			reasons = append(reasons, "similar resilience score")
		}
	}

	return score, reasons
}
