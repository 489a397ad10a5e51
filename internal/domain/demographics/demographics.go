// Package demographics models the respondent profile extracted from the
// demographic questions of an assessment.  Each field is a closed enumeration
// with an explicit fallback member, so downstream matching always has a value
// to compare against.
package demographics

// OrganizationType classifies the respondent's organization.
type OrganizationType string

const (
	OrgCooperative          OrganizationType = "cooperative"
	OrgCommunityOrg         OrganizationType = "community-org"
	OrgIndigenousEnterprise OrganizationType = "indigenous-enterprise"
	OrgCulturalInstitution  OrganizationType = "cultural-institution"
	OrgCraftGuild           OrganizationType = "craft-guild"
	OrgForProfit            OrganizationType = "for-profit"
	OrgGovernment           OrganizationType = "government"
	OrgIndividual           OrganizationType = "individual"
	OrgOther                OrganizationType = "other"
)

// Valid reports whether o is a known organization type.
func (o OrganizationType) Valid() bool {
	switch o {
	case OrgCooperative, OrgCommunityOrg, OrgIndigenousEnterprise, OrgCulturalInstitution,
		OrgCraftGuild, OrgForProfit, OrgGovernment, OrgIndividual, OrgOther:
		return true
	}
	return false
}

// Industry classifies the respondent's cultural sector.
type Industry string

const (
	IndustryCrafts          Industry = "crafts"
	IndustryPerformingArts  Industry = "performing-arts"
	IndustryVisualArts      Industry = "visual-arts"
	IndustryMusic           Industry = "music"
	IndustryFoodBeverage    Industry = "food-beverage"
	IndustryFashionTextiles Industry = "fashion-textiles"
	IndustryHeritageTourism Industry = "heritage-tourism"
	IndustryPublishingMedia Industry = "publishing-media"
	IndustryDesign          Industry = "design"
	IndustryEducation       Industry = "education"
	IndustryWellness        Industry = "wellness"
	IndustryAgriculture     Industry = "agriculture"
	IndustryMultiSector     Industry = "multi-sector"
)

// Valid reports whether i is a known industry.
func (i Industry) Valid() bool {
	switch i {
	case IndustryCrafts, IndustryPerformingArts, IndustryVisualArts, IndustryMusic,
		IndustryFoodBeverage, IndustryFashionTextiles, IndustryHeritageTourism,
		IndustryPublishingMedia, IndustryDesign, IndustryEducation, IndustryWellness,
		IndustryAgriculture, IndustryMultiSector:
		return true
	}
	return false
}

// BusinessStage classifies the respondent's venture maturity.
type BusinessStage string

const (
	StageIdea        BusinessStage = "idea"
	StageStartup     BusinessStage = "startup"
	StageGrowth      BusinessStage = "growth"
	StageScaling     BusinessStage = "scaling"
	StageEstablished BusinessStage = "established"
)

// Valid reports whether s is a known business stage.
func (s BusinessStage) Valid() bool {
	switch s {
	case StageIdea, StageStartup, StageGrowth, StageScaling, StageEstablished:
		return true
	}
	return false
}

// TeamSize classifies the respondent's headcount bracket.
type TeamSize string

const (
	TeamSolo               TeamSize = "solo"
	TeamTwoToFive          TeamSize = "2-5"
	TeamSixToTen           TeamSize = "6-10"
	TeamElevenToTwentyFive TeamSize = "11-25"
	TeamTwentySixToFifty   TeamSize = "26-50"
	TeamFiftyPlus          TeamSize = "51+"
)

// Valid reports whether t is a known team-size bracket.
func (t TeamSize) Valid() bool {
	switch t {
	case TeamSolo, TeamTwoToFive, TeamSixToTen, TeamElevenToTwentyFive, TeamTwentySixToFifty, TeamFiftyPlus:
		return true
	}
	return false
}

// Region classifies the respondent's operating region.
type Region string

const (
	RegionAfrica       Region = "africa"
	RegionAsiaPacific  Region = "asia-pacific"
	RegionEurope       Region = "europe"
	RegionLatinAmerica Region = "latin-america"
	RegionMiddleEast   Region = "middle-east"
	RegionNorthAmerica Region = "north-america"
	RegionOceania      Region = "oceania"
	RegionGlobal       Region = "global"
)

// Valid reports whether r is a known region.
func (r Region) Valid() bool {
	switch r {
	case RegionAfrica, RegionAsiaPacific, RegionEurope, RegionLatinAmerica,
		RegionMiddleEast, RegionNorthAmerica, RegionOceania, RegionGlobal:
		return true
	}
	return false
}

// Fallback members substituted for unanswered or out-of-enum values.  The
// extractor never produces an empty field, so matchers can rely on every
// dimension being populated.
const (
	FallbackOrgType  = OrgOther
	FallbackIndustry = IndustryMultiSector
	FallbackStage    = StageStartup
	FallbackTeamSize = TeamTwoToFive
	FallbackRegion   = RegionGlobal
)

// Demographics is the structured respondent profile used by the
// recommendation and case-study matchers.  All fields are always populated.
type Demographics struct {
	OrgType       OrganizationType `json:"orgType"`
	Industry      Industry         `json:"industry"`
	BusinessStage BusinessStage    `json:"businessStage"`
	TeamSize      TeamSize         `json:"teamSize"`
	Region        Region           `json:"region"`
	// RevenueRange is informational only; it carries no enum guarantee and
	// does not participate in matching.
	RevenueRange string `json:"revenueRange,omitempty"`
}

var orgTypePlurals = map[OrganizationType]string{
	OrgCooperative:          "cooperatives",
	OrgCommunityOrg:         "community organizations",
	OrgIndigenousEnterprise: "indigenous enterprises",
	OrgCulturalInstitution:  "cultural institutions",
	OrgCraftGuild:           "craft guilds",
	OrgForProfit:            "cultural businesses",
	OrgGovernment:           "public agencies",
	OrgIndividual:           "individual practitioners",
	OrgOther:                "cultural initiatives",
}

var industryLabels = map[Industry]string{
	IndustryCrafts:          "crafts",
	IndustryPerformingArts:  "performing arts",
	IndustryVisualArts:      "visual arts",
	IndustryMusic:           "music",
	IndustryFoodBeverage:    "food & beverage",
	IndustryFashionTextiles: "fashion & textiles",
	IndustryHeritageTourism: "heritage tourism",
	IndustryPublishingMedia: "publishing & media",
	IndustryDesign:          "design",
	IndustryEducation:       "cultural education",
	IndustryWellness:        "traditional wellness",
	IndustryAgriculture:     "cultural agriculture",
	IndustryMultiSector:     "multi-sector initiatives",
}

var stageLabels = map[BusinessStage]string{
	StageIdea:        "the idea stage",
	StageStartup:     "the startup stage",
	StageGrowth:      "the growth stage",
	StageScaling:     "the scaling stage",
	StageEstablished: "an established stage",
}

// ContextLabel renders the profile as a short prose phrase attached to every
// personalized recommendation, e.g. "For cooperatives in crafts at the
// startup stage".
func (d Demographics) ContextLabel() string {
	org, ok := orgTypePlurals[d.OrgType]
	if !ok {
		org = orgTypePlurals[FallbackOrgType]
	}
	industry, ok := industryLabels[d.Industry]
	if !ok {
		industry = "the cultural sector"
	}
	stage, ok := stageLabels[d.BusinessStage]
	if !ok {
		stage = "your current stage"
	}
	return "For " + org + " in " + industry + " at " + stage
}
