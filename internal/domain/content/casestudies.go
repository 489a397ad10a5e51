package content

import "github.com/culturiq/engine/internal/domain/demographics"

// DefaultCaseStudyRegistry returns the verified case-study library.  Scores
// are the published resilience indices rescaled to 0-100.
func DefaultCaseStudyRegistry() CaseStudyRegistry {
	return NewCaseStudyRegistry(caseStudies)
}

var caseStudies = []CaseStudy{
	{
		ID:       "vietnamese-craft-villages",
		Title:    "Vietnamese Traditional Craft Villages",
		Country:  "Vietnam",
		Category: "Crafts & Heritage",
		Summary:  "Historic craft villages like Bat Trang (ceramics) and Hoi An (silk, lanterns) demonstrate perfect cultural innovation resilience through community-controlled, sustainable development models.",
		Industries: []demographics.Industry{
			demographics.IndustryCrafts, demographics.IndustryHeritageTourism,
		},
		OrgTypes: []demographics.OrganizationType{
			demographics.OrgCooperative, demographics.OrgCommunityOrg,
		},
		Regions: []demographics.Region{demographics.RegionAsiaPacific},
		ChallengesOvercome: []string{
			"traditionalKnowledge", "intergenerationalPlanning",
			"communityDecisionMaking", "adaptiveResponse",
		},
		Score: 100,
	},
	{
		ID:       "nunavut-indigenous-enterprises",
		Title:    "Canadian Nunavut Indigenous Enterprises",
		Country:  "Canada",
		Category: "Indigenous Enterprise",
		Summary:  "Inuit-owned corporations demonstrate how indigenous governance structures and traditional knowledge can drive large-scale economic success while preserving cultural identity.",
		Industries: []demographics.Industry{
			demographics.IndustryCrafts, demographics.IndustryMultiSector,
		},
		OrgTypes: []demographics.OrganizationType{
			demographics.OrgIndigenousEnterprise, demographics.OrgCommunityOrg,
		},
		Regions: []demographics.Region{demographics.RegionNorthAmerica},
		ChallengesOvercome: []string{
			"communityDecisionMaking", "financialReserves",
			"adaptiveResponse", "traditionalKnowledge",
		},
		Score: 100,
	},
	{
		ID:       "palestinian-tatreez",
		Title:    "Palestinian Tatreez Embroidery",
		Country:  "Palestine",
		Category: "Crafts & Heritage",
		Summary:  "Traditional cross-stitch embroidery has become a symbol of cultural resistance and women's economic empowerment, recognized by UNESCO as intangible cultural heritage.",
		Industries: []demographics.Industry{
			demographics.IndustryCrafts, demographics.IndustryFashionTextiles,
		},
		OrgTypes: []demographics.OrganizationType{
			demographics.OrgIndividual, demographics.OrgCommunityOrg,
		},
		Regions: []demographics.Region{demographics.RegionMiddleEast},
		ChallengesOvercome: []string{
			"traditionalKnowledge", "culturalAuthenticity",
			"adaptiveResponse", "financialReserves",
		},
		Score: 100,
	},
	{
		ID:       "korean-hanji",
		Title:    "South Korean Hanji Paper Craft",
		Country:  "South Korea",
		Category: "Crafts & Heritage",
		Summary:  "Traditional Korean paper-making has been transformed into a high-value heritage industry through government support, design innovation, and luxury market positioning.",
		Industries: []demographics.Industry{
			demographics.IndustryCrafts, demographics.IndustryDesign,
		},
		OrgTypes: []demographics.OrganizationType{
			demographics.OrgCulturalInstitution, demographics.OrgIndividual,
		},
		Regions: []demographics.Region{demographics.RegionAsiaPacific},
		ChallengesOvercome: []string{
			"traditionalKnowledge", "productDevelopment", "practitionerAccess",
		},
		Score: 100,
	},
	{
		ID:       "mikmaq-clearwater",
		Title:    "Mi'kmaq Clearwater Seafoods Partnership",
		Country:  "Canada",
		Category: "Indigenous Enterprise",
		Summary:  "A coalition of Mi'kmaq First Nations acquired 50% ownership of Canada's largest shellfish company, creating the largest Indigenous-owned business in Canadian history.",
		Industries: []demographics.Industry{
			demographics.IndustryFoodBeverage,
		},
		OrgTypes: []demographics.OrganizationType{
			demographics.OrgIndigenousEnterprise,
		},
		Regions: []demographics.Region{demographics.RegionNorthAmerica},
		ChallengesOvercome: []string{
			"communityDecisionMaking", "financialReserves", "ipProtection",
		},
		Score: 92,
	},
	{
		ID:       "bangladeshi-nakshi-kantha",
		Title:    "Bangladeshi Nakshi Kantha Embroidery",
		Country:  "Bangladesh",
		Category: "Crafts & Heritage",
		Summary:  "Traditional quilted embroidery has become a major women's livelihood program, with predominantly female participation creating sustainable income across rural Bangladesh.",
		Industries: []demographics.Industry{
			demographics.IndustryCrafts, demographics.IndustryFashionTextiles,
		},
		OrgTypes: []demographics.OrganizationType{
			demographics.OrgCooperative, demographics.OrgCommunityOrg,
		},
		Regions: []demographics.Region{demographics.RegionAsiaPacific},
		ChallengesOvercome: []string{
			"financialReserves", "digitalDistribution",
			"communityInvolvement", "traditionalKnowledge",
		},
		Score: 92,
	},
	{
		ID:       "moroccan-fes-pottery",
		Title:    "Moroccan Fes Pottery Cooperatives",
		Country:  "Morocco",
		Category: "Crafts & Heritage",
		Summary:  "The pottery cooperatives of Fes demonstrate how traditional guild structures can evolve into modern cooperative enterprises while preserving UNESCO-recognized craftsmanship.",
		Industries: []demographics.Industry{
			demographics.IndustryCrafts,
		},
		OrgTypes: []demographics.OrganizationType{
			demographics.OrgCooperative, demographics.OrgCraftGuild,
		},
		Regions: []demographics.Region{demographics.RegionAfrica},
		ChallengesOvercome: []string{
			"financialReserves", "adaptiveResponse",
			"intergenerationalPlanning", "digitalDistribution",
		},
		Score: 92,
	},
	{
		ID:       "jamaican-cultural-industries",
		Title:    "Jamaican Cultural Creative Industries",
		Country:  "Jamaica",
		Category: "Creative Industries",
		Summary:  "Jamaica's music, fashion, and visual arts sectors demonstrate how cultural authenticity drives global export success, contributing significantly to national GDP.",
		Industries: []demographics.Industry{
			demographics.IndustryMusic, demographics.IndustryPerformingArts,
			demographics.IndustryFashionTextiles,
		},
		OrgTypes: []demographics.OrganizationType{
			demographics.OrgForProfit, demographics.OrgGovernment,
		},
		Regions: []demographics.Region{demographics.RegionLatinAmerica},
		ChallengesOvercome: []string{
			"ipProtection", "digitalDistribution",
			"productDevelopment", "financialReserves",
		},
		Score: 85,
	},
}
