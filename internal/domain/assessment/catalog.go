package assessment

import "strings"

// SectionDef declares one scored section of an assessment.  Weight is the
// section's share of the overall score; a zero-weight section (demographics)
// never contributes.
type SectionDef struct {
	ID     string
	Label  string
	Weight float64
}

// Catalog is the static configuration of one assessment: its sections,
// questions, construct weights, and synergy pairs.  Catalogs are immutable
// after construction and safe for concurrent use.
type Catalog struct {
	Type             Type
	Sections         []SectionDef
	Questions        []Question
	ConstructWeights map[string]float64
	ConstructLabels  map[string]string
	SynergyPairs     []SynergyPair

	bySection   map[string][]Question
	byConstruct map[string][]Question
	sectionOf   map[string]string
}

// NewCatalog builds the internal indexes of a catalog.  It must be used for
// every catalog literal; direct struct construction leaves the lookup maps nil.
func NewCatalog(t Type, sections []SectionDef, questions []Question, constructWeights map[string]float64, labels map[string]string, synergies []SynergyPair) *Catalog {
	c := &Catalog{
		Type:             t,
		Sections:         sections,
		Questions:        questions,
		ConstructWeights: constructWeights,
		ConstructLabels:  labels,
		SynergyPairs:     synergies,
		bySection:        make(map[string][]Question),
		byConstruct:      make(map[string][]Question),
		sectionOf:        make(map[string]string),
	}
	for _, q := range questions {
		c.bySection[q.Section] = append(c.bySection[q.Section], q)
		if q.Construct != "" {
			c.byConstruct[q.Construct] = append(c.byConstruct[q.Construct], q)
			c.sectionOf[q.Construct] = q.Section
		}
	}
	return c
}

// QuestionsBySection returns the questions of a section in catalog order.
func (c *Catalog) QuestionsBySection(section string) []Question {
	return c.bySection[section]
}

// QuestionsByConstruct returns the questions mapped to a construct.
func (c *Catalog) QuestionsByConstruct(construct string) []Question {
	return c.byConstruct[construct]
}

// SectionOfConstruct returns the section a construct belongs to.
func (c *Catalog) SectionOfConstruct(construct string) string {
	return c.sectionOf[construct]
}

// Constructs returns the distinct constructs of a section in first-question
// order.
func (c *Catalog) Constructs(section string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, q := range c.bySection[section] {
		if q.Construct == "" || seen[q.Construct] {
			continue
		}
		seen[q.Construct] = true
		out = append(out, q.Construct)
	}
	return out
}

// ConstructWeight returns the discriminatory-power weight of a construct,
// defaulting to 1 when the research table carries no entry.
func (c *Catalog) ConstructWeight(construct string) float64 {
	if w, ok := c.ConstructWeights[construct]; ok && w > 0 {
		return w
	}
	return 1
}

// ConstructLabel returns the display label of a construct.  Constructs
// without a curated label get a humanized form of the identifier so callers
// never render a bare camelCase id.
func (c *Catalog) ConstructLabel(construct string) string {
	if l, ok := c.ConstructLabels[construct]; ok {
		return l
	}
	return humanize(construct)
}

// ScoreableQuestions returns how many Likert questions the catalog carries.
func (c *Catalog) ScoreableQuestions() int {
	n := 0
	for _, q := range c.Questions {
		if q.Kind == KindLikert {
			n++
		}
	}
	return n
}

// humanize turns a camelCase identifier into a space-separated title.
func humanize(id string) string {
	var b strings.Builder
	for i, r := range id {
		if i == 0 {
			b.WriteRune(r - ('a' - 'A'))
			continue
		}
		if r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Registry resolves an assessment type to its catalog.  The matcher and
// scoring engine depend on this interface so tests can substitute small
// fixture catalogs.
type Registry interface {
	Catalog(t Type) (*Catalog, bool)
}

type staticRegistry struct {
	catalogs map[Type]*Catalog
}

func (r *staticRegistry) Catalog(t Type) (*Catalog, bool) {
	c, ok := r.catalogs[t]
	return c, ok
}

// NewRegistry builds a Registry from the supplied catalogs.
func NewRegistry(catalogs ...*Catalog) Registry {
	m := make(map[Type]*Catalog, len(catalogs))
	for _, c := range catalogs {
		m[c.Type] = c
	}
	return &staticRegistry{catalogs: m}
}

// DefaultRegistry returns the production catalogs for all six assessments.
func DefaultRegistry() Registry {
	return NewRegistry(
		CIRFCatalog(),
		CIMMCatalog(),
		CIRACatalog(),
		TBLCatalog(),
		CISSCatalog(),
		PricingCatalog(),
	)
}

// likert is a literal helper for Likert catalog rows.
func likert(id, section, construct string) Question {
	return Question{ID: id, Section: section, Construct: construct, Kind: KindLikert}
}

// categorical is a literal helper for demographic catalog rows.
func categorical(id string) Question {
	return Question{ID: id, Section: SectionDemographics, Kind: KindCategorical}
}

// Section identifiers of the CIRF catalog.
const (
	SectionDemographics     = "demographics"
	SectionCulturalCapital  = "culturalCapital"
	SectionInnovation       = "innovationActivities"
	SectionOrgCapacities    = "organizationalCapacities"
	SectionEconResilience   = "economicResilience"
	SynergyActivationThresh = 0.70
)

// CIRFCatalog returns the primary assessment catalog: 34 Likert questions
// across four weighted sections plus the unscored demographics section.
// Construct weights are the research-derived discriminatory-power table.
func CIRFCatalog() *Catalog {
	sections := []SectionDef{
		{ID: SectionDemographics, Label: "Demographics", Weight: 0},
		{ID: SectionCulturalCapital, Label: "Cultural Capital", Weight: 0.25},
		{ID: SectionInnovation, Label: "Innovation Activities", Weight: 0.25},
		{ID: SectionOrgCapacities, Label: "Organizational Capacities", Weight: 0.30},
		{ID: SectionEconResilience, Label: "Economic Resilience", Weight: 0.20},
	}

	questions := []Question{
		categorical("demo-org-type"),
		categorical("demo-sector"),
		categorical("demo-stage"),
		categorical("demo-team-size"),
		categorical("demo-revenue"),
		categorical("demo-region"),

		likert("cc-1", SectionCulturalCapital, "traditionalKnowledge"),
		likert("cc-2", SectionCulturalCapital, "practitionerAccess"),
		likert("cc-3", SectionCulturalCapital, "culturalAuthenticity"),
		likert("cc-4", SectionCulturalCapital, "communityInvolvement"),
		likert("cc-5", SectionCulturalCapital, "culturalPreservation"),
		likert("cc-6", SectionCulturalCapital, "culturalMeaning"),
		likert("cc-7", SectionCulturalCapital, "practitionerRelationships"),
		likert("cc-8", SectionCulturalCapital, "culturalMembership"),

		likert("ia-1", SectionInnovation, "productDevelopment"),
		likert("ia-2", SectionInnovation, "techniqueCombination"),
		likert("ia-3", SectionInnovation, "innovationLeadership"),
		likert("ia-4", SectionInnovation, "marketExpansion"),
		likert("ia-5", SectionInnovation, "digitalDistribution"),
		likert("ia-6", SectionInnovation, "efficiencyImprovement"),
		likert("ia-7", SectionInnovation, "externalCollaboration"),
		likert("ia-8", SectionInnovation, "feedbackIteration"),

		likert("oc-1", SectionOrgCapacities, "adaptiveResponse"),
		likert("oc-2", SectionOrgCapacities, "learningFromSetbacks"),
		likert("oc-3", SectionOrgCapacities, "skillDiversity"),
		likert("oc-4", SectionOrgCapacities, "externalResources"),
		likert("oc-5", SectionOrgCapacities, "ipProtection"),
		likert("oc-6", SectionOrgCapacities, "financialReserves"),
		likert("oc-7", SectionOrgCapacities, "communityDecisionMaking"),
		likert("oc-8", SectionOrgCapacities, "benefitDistribution"),
		likert("oc-9", SectionOrgCapacities, "communityOwnership"),
		likert("oc-10", SectionOrgCapacities, "allianceNetworks"),

		likert("er-1", SectionEconResilience, "revenueRetention"),
		likert("er-2", SectionEconResilience, "teamRetention"),
		likert("er-3", SectionEconResilience, "recoverySpeed"),
		likert("er-4", SectionEconResilience, "opportunityDiscovery"),
		likert("er-5", SectionEconResilience, "postShockStrength"),
		likert("er-6", SectionEconResilience, "communitySpillover"),
		likert("er-7", SectionEconResilience, "jobCreation"),
		likert("er-8", SectionEconResilience, "intergenerationalPlanning"),
	}

	weights := map[string]float64{
		"traditionalKnowledge":      1.0,
		"practitionerAccess":        1.2,
		"culturalAuthenticity":      1.3,
		"communityInvolvement":      1.4,
		"culturalPreservation":      1.1,
		"practitionerRelationships": 1.0,
		"culturalMembership":        0.9,

		"productDevelopment":    1.2,
		"techniqueCombination":  1.1,
		"innovationLeadership":  1.3,
		"marketExpansion":       1.0,
		"digitalDistribution":   0.9,
		"efficiencyImprovement": 1.0,
		"externalCollaboration": 1.1,
		"feedbackIteration":     1.2,

		"adaptiveResponse":        1.5,
		"learningFromSetbacks":    1.3,
		"skillDiversity":          1.2,
		"externalResources":       1.1,
		"ipProtection":            1.0,
		"financialReserves":       1.2,
		"communityDecisionMaking": 1.4,
		"benefitDistribution":     1.3,
		"communityOwnership":      1.4,
		"allianceNetworks":        1.1,

		"revenueRetention":          1.3,
		"teamRetention":             1.2,
		"recoverySpeed":             1.4,
		"opportunityDiscovery":      1.1,
		"postShockStrength":         1.5,
		"communitySpillover":        1.0,
		"jobCreation":               1.1,
		"intergenerationalPlanning": 1.2,
	}

	labels := map[string]string{
		"traditionalKnowledge":      "Traditional Knowledge Documentation",
		"practitionerAccess":        "Practitioner Networks",
		"culturalAuthenticity":      "Cultural Authenticity",
		"communityInvolvement":      "Community Involvement",
		"culturalPreservation":      "Cultural Preservation",
		"practitionerRelationships": "Practitioner Relationships",
		"culturalMembership":        "Cultural Membership",
		"culturalMeaning":           "Cultural Meaning Preservation",
		"productDevelopment":        "Innovation Pipeline",
		"techniqueCombination":      "Technique Innovation",
		"innovationLeadership":      "Innovation Leadership",
		"marketExpansion":           "Market Expansion",
		"digitalDistribution":       "Digital Distribution",
		"efficiencyImprovement":     "Efficiency Improvement",
		"externalCollaboration":     "External Collaboration",
		"feedbackIteration":         "Feedback & Iteration",
		"adaptiveResponse":          "Adaptive Capacity",
		"learningFromSetbacks":      "Learning Systems",
		"skillDiversity":            "Skill Diversity",
		"externalResources":         "External Resources",
		"ipProtection":              "IP Protection",
		"financialReserves":         "Financial Resilience",
		"communityDecisionMaking":   "Community Governance",
		"benefitDistribution":       "Benefit Distribution",
		"communityOwnership":        "Community Ownership",
		"allianceNetworks":          "Alliance Networks",
		"revenueRetention":          "Revenue Retention",
		"teamRetention":             "Team Retention",
		"recoverySpeed":             "Recovery Speed",
		"opportunityDiscovery":      "Opportunity Discovery",
		"postShockStrength":         "Post-Shock Strength",
		"communitySpillover":        "Community Spillover",
		"jobCreation":               "Job Creation",
		"intergenerationalPlanning": "Intergenerational Planning",
	}

	synergies := []SynergyPair{
		{First: "culturalAuthenticity", Second: "adaptiveResponse", Bonus: 0.092, Description: "Cultural Integrity + Adaptive Capacity"},
		{First: "communityInvolvement", Second: "adaptiveResponse", Bonus: 0.077, Description: "Community Relevance + Adaptive Capacity"},
		{First: "productDevelopment", Second: "culturalAuthenticity", Bonus: 0.071, Description: "Economic Value + Cultural Integrity"},
		{First: "communityDecisionMaking", Second: "benefitDistribution", Bonus: 0.065, Description: "Community Control + Community Benefit"},
		{First: "ipProtection", Second: "culturalPreservation", Bonus: 0.058, Description: "IP Protection + Cultural Protection"},
	}

	return NewCatalog(TypeCIRF, sections, questions, weights, labels, synergies)
}

// CIMMCatalog returns the maturity-model catalog: 20 questions, four equally
// weighted sections, no synergy pairs.
func CIMMCatalog() *Catalog {
	sections := []SectionDef{
		{ID: "innovationDepth", Label: "Innovation Depth", Weight: 0.25},
		{ID: "culturalIntegrity", Label: "Cultural Integrity", Weight: 0.25},
		{ID: "economicImpact", Label: "Economic Impact", Weight: 0.25},
		{ID: "innovationVelocity", Label: "Innovation Velocity", Weight: 0.25},
	}
	questions := []Question{
		likert("cimm-id-1", "innovationDepth", "knowledgeIntegration"),
		likert("cimm-id-2", "innovationDepth", "techniqueTransformation"),
		likert("cimm-id-3", "innovationDepth", "crossCulturalSynthesis"),
		likert("cimm-id-4", "innovationDepth", "materialInnovation"),
		likert("cimm-id-5", "innovationDepth", "processInnovation"),
		likert("cimm-ci-1", "culturalIntegrity", "sourceAuthenticity"),
		likert("cimm-ci-2", "culturalIntegrity", "meaningPreservation"),
		likert("cimm-ci-3", "culturalIntegrity", "storyTelling"),
		likert("cimm-ci-4", "culturalIntegrity", "communityConsent"),
		likert("cimm-ci-5", "culturalIntegrity", "culturalRespect"),
		likert("cimm-ei-1", "economicImpact", "revenueGrowth"),
		likert("cimm-ei-2", "economicImpact", "marketPremium"),
		likert("cimm-ei-3", "economicImpact", "communityIncome"),
		likert("cimm-ei-4", "economicImpact", "marketExpansion"),
		likert("cimm-ei-5", "economicImpact", "investmentReturn"),
		likert("cimm-iv-1", "innovationVelocity", "developmentSpeed"),
		likert("cimm-iv-2", "innovationVelocity", "ideaPipeline"),
		likert("cimm-iv-3", "innovationVelocity", "iterationCycles"),
		likert("cimm-iv-4", "innovationVelocity", "launchFrequency"),
		likert("cimm-iv-5", "innovationVelocity", "scalingEfficiency"),
	}
	return NewCatalog(TypeCIMM, sections, questions, nil, nil, nil)
}

// CIRACatalog returns the readiness-audit catalog.
func CIRACatalog() *Catalog {
	sections := []SectionDef{
		{ID: "culturalCapitalInventory", Label: "Cultural Capital Inventory", Weight: 0.25},
		{ID: "innovationEcosystem", Label: "Innovation Ecosystem", Weight: 0.25},
		{ID: "barriersAssessment", Label: "Barriers Assessment", Weight: 0.25},
		{ID: "readinessIndicators", Label: "Readiness Indicators", Weight: 0.25},
	}
	questions := []Question{
		likert("cira-cci-1", "culturalCapitalInventory", "knowledgeDocumentation"),
		likert("cira-cci-2", "culturalCapitalInventory", "practitionerNetwork"),
		likert("cira-cci-3", "culturalCapitalInventory", "materialAccess"),
		likert("cira-cci-4", "culturalCapitalInventory", "storyArchive"),
		likert("cira-cci-5", "culturalCapitalInventory", "uniqueAssets"),
		likert("cira-ie-1", "innovationEcosystem", "mentorAccess"),
		likert("cira-ie-2", "innovationEcosystem", "fundingAccess"),
		likert("cira-ie-3", "innovationEcosystem", "partnerNetwork"),
		likert("cira-ie-4", "innovationEcosystem", "marketAccess"),
		likert("cira-ie-5", "innovationEcosystem", "policySupport"),
		likert("cira-ba-1", "barriersAssessment", "skillGaps"),
		likert("cira-ba-2", "barriersAssessment", "resourceConstraints"),
		likert("cira-ba-3", "barriersAssessment", "marketBarriers"),
		likert("cira-ba-4", "barriersAssessment", "culturalResistance"),
		likert("cira-ba-5", "barriersAssessment", "regulatoryBarriers"),
		likert("cira-ri-1", "readinessIndicators", "leadershipCommitment"),
		likert("cira-ri-2", "readinessIndicators", "teamCapability"),
		likert("cira-ri-3", "readinessIndicators", "processReadiness"),
		likert("cira-ri-4", "readinessIndicators", "marketInsight"),
		likert("cira-ri-5", "readinessIndicators", "riskTolerance"),
	}
	return NewCatalog(TypeCIRA, sections, questions, nil, nil, nil)
}

// TBLCatalog returns the triple-bottom-line catalog.
func TBLCatalog() *Catalog {
	sections := []SectionDef{
		{ID: "economicReturns", Label: "Economic Returns", Weight: 0.34},
		{ID: "socialImpact", Label: "Social Impact", Weight: 0.33},
		{ID: "environmentalImpact", Label: "Environmental Impact", Weight: 0.33},
	}
	questions := []Question{
		likert("tbl-er-1", "economicReturns", "profitability"),
		likert("tbl-er-2", "economicReturns", "revenueGrowth"),
		likert("tbl-er-3", "economicReturns", "localEconomicImpact"),
		likert("tbl-er-4", "economicReturns", "livelihoodSupport"),
		likert("tbl-er-5", "economicReturns", "economicMultiplier"),
		likert("tbl-er-6", "economicReturns", "financialResilience"),
		likert("tbl-si-1", "socialImpact", "culturalPreservation"),
		likert("tbl-si-2", "socialImpact", "communityEmpowerment"),
		likert("tbl-si-3", "socialImpact", "skillDevelopment"),
		likert("tbl-si-4", "socialImpact", "inclusiveEmployment"),
		likert("tbl-si-5", "socialImpact", "communityBenefits"),
		likert("tbl-si-6", "socialImpact", "culturalPride"),
		likert("tbl-si-7", "socialImpact", "intergenerationalTransfer"),
		likert("tbl-ei-1", "environmentalImpact", "sustainableMaterials"),
		likert("tbl-ei-2", "environmentalImpact", "wasteReduction"),
		likert("tbl-ei-3", "environmentalImpact", "energyEfficiency"),
		likert("tbl-ei-4", "environmentalImpact", "traditionalEcoPractices"),
		likert("tbl-ei-5", "environmentalImpact", "biodiversityProtection"),
		likert("tbl-ei-6", "environmentalImpact", "carbonFootprint"),
		likert("tbl-ei-7", "environmentalImpact", "environmentalEducation"),
	}
	return NewCatalog(TypeTBL, sections, questions, nil, nil, nil)
}

// CISSCatalog returns the sustainability-scan catalog.
func CISSCatalog() *Catalog {
	sections := []SectionDef{
		{ID: "economicSustainability", Label: "Economic Sustainability", Weight: 0.25},
		{ID: "culturalSustainability", Label: "Cultural Sustainability", Weight: 0.25},
		{ID: "socialSustainability", Label: "Social Sustainability", Weight: 0.25},
		{ID: "environmentalSustainability", Label: "Environmental Sustainability", Weight: 0.25},
	}
	questions := []Question{
		likert("ciss-es-1", "economicSustainability", "financialViability"),
		likert("ciss-es-2", "economicSustainability", "diversification"),
		likert("ciss-es-3", "economicSustainability", "pricingPower"),
		likert("ciss-es-4", "economicSustainability", "investmentCapacity"),
		likert("ciss-es-5", "economicSustainability", "economicResilience"),
		likert("ciss-cs-1", "culturalSustainability", "knowledgeTransmission"),
		likert("ciss-cs-2", "culturalSustainability", "practitionerPipeline"),
		likert("ciss-cs-3", "culturalSustainability", "authenticityMaintenance"),
		likert("ciss-cs-4", "culturalSustainability", "documentationPractice"),
		likert("ciss-cs-5", "culturalSustainability", "communityRelevance"),
		likert("ciss-ss-1", "socialSustainability", "communityHealth"),
		likert("ciss-ss-2", "socialSustainability", "equitableDistribution"),
		likert("ciss-ss-3", "socialSustainability", "socialCohesion"),
		likert("ciss-ss-4", "socialSustainability", "youthEngagement"),
		likert("ciss-env-1", "environmentalSustainability", "resourceStewardship"),
		likert("ciss-env-2", "environmentalSustainability", "ecologicalBalance"),
		likert("ciss-env-3", "environmentalSustainability", "climateAdaptation"),
		likert("ciss-env-4", "environmentalSustainability", "traditionalEcology"),
	}
	return NewCatalog(TypeCISS, sections, questions, nil, nil, nil)
}

// PricingCatalog returns the pricing-strategy catalog.
func PricingCatalog() *Catalog {
	sections := []SectionDef{
		{ID: "costAnalysis", Label: "Cost Analysis", Weight: 0.25},
		{ID: "valueProposition", Label: "Value Proposition", Weight: 0.25},
		{ID: "marketPositioning", Label: "Market Positioning", Weight: 0.25},
		{ID: "priceOptimization", Label: "Price Optimization", Weight: 0.25},
	}
	questions := []Question{
		likert("price-ca-1", "costAnalysis", "costClarity"),
		likert("price-ca-2", "costAnalysis", "overheadAllocation"),
		likert("price-ca-3", "costAnalysis", "laborValuation"),
		likert("price-ca-4", "costAnalysis", "culturalCostInclusion"),
		likert("price-vp-1", "valueProposition", "uniquenessRecognition"),
		likert("price-vp-2", "valueProposition", "storyValue"),
		likert("price-vp-3", "valueProposition", "qualityPerception"),
		likert("price-vp-4", "valueProposition", "impactValue"),
		likert("price-mp-1", "marketPositioning", "targetSegment"),
		likert("price-mp-2", "marketPositioning", "competitiveDifferentiation"),
		likert("price-mp-3", "marketPositioning", "pricePerception"),
		likert("price-mp-4", "marketPositioning", "premiumJustification"),
		likert("price-po-1", "priceOptimization", "pricingStrategy"),
		likert("price-po-2", "priceOptimization", "priceVariation"),
		likert("price-po-3", "priceOptimization", "priceReview"),
	}
	return NewCatalog(TypePricing, sections, questions, nil, nil, nil)
}
