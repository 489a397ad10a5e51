package unlock

import "github.com/culturiq/engine/internal/domain/assessment"

// Rule describes one assessment's place in the unlock graph: what it costs,
// what must be completed first, and what completing it grants.
type Rule struct {
	Type       assessment.Type
	Name       string
	CreditCost int
	// Requires is the prerequisite assessment, or empty when the assessment
	// is always available.
	Requires assessment.Type
	// Unlocks are the assessments that become eligible after completion.
	Unlocks []assessment.Type
	// Tools granted on completion.
	Tools []string
	// Resources granted on completion.
	Resources []string
	// MinScore is the overall score required before completion unlocks
	// anything beyond the assessment itself.  Zero means no floor.
	MinScore float64
}

var rules = map[assessment.Type]Rule{
	assessment.TypeCIRF: {
		Type:       assessment.TypeCIRF,
		Name:       "CIRF",
		CreditCost: 1,
		Unlocks: []assessment.Type{
			assessment.TypeCIMM, assessment.TypeCIRA, assessment.TypeTBL,
			assessment.TypeCISS, assessment.TypePricing,
		},
		Resources: []string{"funding-guide-2026", "creative-reconstruction"},
	},
	assessment.TypeCIMM: {
		Type:     assessment.TypeCIMM,
		Name:     "CIMM",
		Requires: assessment.TypeCIRF,
		Tools:    []string{"innovation-intensity-ratio", "cultural-leverage-index"},
	},
	assessment.TypeCIRA: {
		Type:     assessment.TypeCIRA,
		Name:     "CIRA",
		Requires: assessment.TypeCIRF,
		Tools:    []string{"innovation-readiness-calculator", "innovation-inclusivity-score"},
	},
	assessment.TypeTBL: {
		Type:     assessment.TypeTBL,
		Name:     "TBL-CI",
		Requires: assessment.TypeCIRF,
		Tools:    []string{"tbl-calculator", "economic-multiplier"},
	},
	assessment.TypeCISS: {
		Type:     assessment.TypeCISS,
		Name:     "CISS",
		Requires: assessment.TypeCIRF,
		Tools:    []string{"sustainability-scorecard", "cultural-resilience-quotient"},
	},
	assessment.TypePricing: {
		Type:     assessment.TypePricing,
		Name:     "Pricing",
		Requires: assessment.TypeCIRF,
		Tools:    []string{"pricing-calculator", "innovation-efficiency-rate"},
	},
}

var tools = map[string]Tool{
	"innovation-intensity-ratio": {
		ID: "innovation-intensity-ratio", Name: "Innovation Intensity Ratio",
		Description: "Calculate your innovation intensity relative to cultural preservation",
		Category:    "measurement", UnlockedBy: assessment.TypeCIMM,
	},
	"cultural-leverage-index": {
		ID: "cultural-leverage-index", Name: "Cultural Leverage Index",
		Description: "Measure how effectively you leverage cultural assets",
		Category:    "measurement", UnlockedBy: assessment.TypeCIMM,
	},
	"innovation-readiness-calculator": {
		ID: "innovation-readiness-calculator", Name: "Innovation Readiness Calculator",
		Description: "Calculate your overall innovation readiness score",
		Category:    "calculator", UnlockedBy: assessment.TypeCIRA,
	},
	"innovation-inclusivity-score": {
		ID: "innovation-inclusivity-score", Name: "Innovation Inclusivity Score",
		Description: "Measure how inclusive your innovation processes are",
		Category:    "measurement", UnlockedBy: assessment.TypeCIRA,
	},
	"tbl-calculator": {
		ID: "tbl-calculator", Name: "Triple Bottom Line Calculator",
		Description: "Calculate your triple bottom line impact score",
		Category:    "calculator", UnlockedBy: assessment.TypeTBL,
	},
	"economic-multiplier": {
		ID: "economic-multiplier", Name: "Economic Multiplier Effect",
		Description: "Calculate the economic multiplier effect of your cultural enterprise",
		Category:    "calculator", UnlockedBy: assessment.TypeTBL,
	},
	"sustainability-scorecard": {
		ID: "sustainability-scorecard", Name: "Sustainability Scorecard",
		Description: "Generate a comprehensive sustainability scorecard",
		Category:    "analysis", UnlockedBy: assessment.TypeCISS,
	},
	"cultural-resilience-quotient": {
		ID: "cultural-resilience-quotient", Name: "Cultural Resilience Quotient",
		Description: "Calculate your cultural resilience quotient",
		Category:    "measurement", UnlockedBy: assessment.TypeCISS,
	},
	"pricing-calculator": {
		ID: "pricing-calculator", Name: "Cultural Product Pricing Calculator",
		Description: "Calculate optimal pricing for your cultural products",
		Category:    "calculator", UnlockedBy: assessment.TypePricing,
	},
	"innovation-efficiency-rate": {
		ID: "innovation-efficiency-rate", Name: "Innovation Efficiency Rate",
		Description: "Measure the efficiency of your innovation investments",
		Category:    "measurement", UnlockedBy: assessment.TypePricing,
	},
}

var resources = map[string]Resource{
	"funding-guide-2026": {
		ID:          "funding-guide-2026",
		Title:       "Global Funding Guide 2026",
		FullTitle:   "CIL Global Funding Guide for Cultural Entrepreneurs 2026",
		Description: "Comprehensive guide to funding opportunities for cultural innovation ventures worldwide, including grants, impact investors, and alternative financing.",
		Format:      "PDF",
		Size:        "4.2 MB",
		StoragePath: "CIL-Global-Funding-Guide-2026.pdf",
		Category:    "guides",
		UnlockedBy:  assessment.TypeCIRF,
	},
	"creative-reconstruction": {
		ID:          "creative-reconstruction",
		Title:       "Creative Reconstruction Framework",
		FullTitle:   "CIL Creative Reconstruction Framework",
		Description: "Our foundational framework for building sustainable cultural enterprises that preserve heritage while creating economic value.",
		Format:      "PDF",
		Size:        "3.8 MB",
		StoragePath: "CIL-Creative-Reconstruction-Framework.pdf",
		Category:    "frameworks",
		UnlockedBy:  assessment.TypeCIRF,
	},
}

// RuleFor returns the unlock rule for an assessment type.
func RuleFor(t assessment.Type) (Rule, bool) {
	r, ok := rules[t]
	return r, ok
}

// ToolByID resolves a tool definition.
func ToolByID(id string) (Tool, bool) {
	t, ok := tools[id]
	return t, ok
}

// ResourceByID resolves a resource definition.
func ResourceByID(id string) (Resource, bool) {
	r, ok := resources[id]
	return r, ok
}

// AllResources returns every resource definition in a stable order.
func AllResources() []Resource {
	return []Resource{resources["funding-guide-2026"], resources["creative-reconstruction"]}
}

// StatusFor reports the lifecycle status of an assessment for a respondent
// holding the given grants.  An assessment with no prerequisite is eligible
// by default.
func StatusFor(t assessment.Type, held GrantSet) Status {
	rule, ok := rules[t]
	if !ok {
		return StatusLocked
	}
	if held.HasAssessment(t) {
		return StatusGranted
	}
	if rule.Requires != "" && !held.HasAssessment(rule.Requires) {
		return StatusLocked
	}
	return StatusEligible
}

// Evaluate computes the net-new grants earned by completing an assessment
// with the given overall score, given the grants already held.  Already-held
// entitlements are never re-granted, so replaying a completion yields an
// empty slice.  The completed assessment itself is granted first, then — when
// the score clears the rule's floor — the assessments, tools, and resources
// its rule unlocks, in rule order.
func Evaluate(completed assessment.Type, overall float64, held GrantSet) []Grant {
	rule, ok := rules[completed]
	if !ok {
		return nil
	}

	var out []Grant
	add := func(g Grant) {
		if !held.Has(g) {
			out = append(out, g)
		}
	}

	add(Grant{Kind: GrantAssessment, Key: string(rule.Type)})
	if overall < rule.MinScore {
		return out
	}
	for _, t := range rule.Unlocks {
		add(Grant{Kind: GrantAssessment, Key: string(t)})
	}
	for _, id := range rule.Tools {
		add(Grant{Kind: GrantTool, Key: id})
	}
	for _, id := range rule.Resources {
		add(Grant{Kind: GrantResource, Key: id})
	}
	return out
}

// CreditCost returns the credit price of starting an assessment.  Unknown
// types cost nothing; the caller validates the type separately.
func CreditCost(t assessment.Type) int {
	return rules[t].CreditCost
}
