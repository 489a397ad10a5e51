package demographics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/culturiq/engine/internal/domain/assessment"
)

func TestExtract_FullProfile(t *testing.T) {
	answers := assessment.AnswerMap{
		QuestionOrgType:  "cooperative",
		QuestionSector:   "crafts",
		QuestionStage:    "growth",
		QuestionTeamSize: "6-10",
		QuestionRegion:   "africa",
		QuestionRevenue:  "10k-50k",
	}

	d := Extract(answers)
	assert.Equal(t, OrgCooperative, d.OrgType)
	assert.Equal(t, IndustryCrafts, d.Industry)
	assert.Equal(t, StageGrowth, d.BusinessStage)
	assert.Equal(t, TeamSixToTen, d.TeamSize)
	assert.Equal(t, RegionAfrica, d.Region)
	assert.Equal(t, "10k-50k", d.RevenueRange)
}

func TestExtract_FallbacksOnMissing(t *testing.T) {
	d := Extract(assessment.AnswerMap{})
	assert.Equal(t, FallbackOrgType, d.OrgType)
	assert.Equal(t, FallbackIndustry, d.Industry)
	assert.Equal(t, FallbackStage, d.BusinessStage)
	assert.Equal(t, FallbackTeamSize, d.TeamSize)
	assert.Equal(t, FallbackRegion, d.Region)
	assert.Empty(t, d.RevenueRange)
}

func TestExtract_FallbacksOnInvalidValues(t *testing.T) {
	answers := assessment.AnswerMap{
		QuestionOrgType:  "megacorp",
		QuestionSector:   42,
		QuestionStage:    nil,
		QuestionTeamSize: "1000+",
		QuestionRegion:   "",
	}

	d := Extract(answers)
	assert.Equal(t, OrgOther, d.OrgType)
	assert.Equal(t, IndustryMultiSector, d.Industry)
	assert.Equal(t, StageStartup, d.BusinessStage)
	assert.Equal(t, TeamTwoToFive, d.TeamSize)
	assert.Equal(t, RegionGlobal, d.Region)
}

func TestExtract_TeamSizeBrackets(t *testing.T) {
	for raw, want := range map[string]TeamSize{
		"solo":  TeamSolo,
		"2-5":   TeamTwoToFive,
		"6-10":  TeamSixToTen,
		"11-25": TeamElevenToTwentyFive,
		"26-50": TeamTwentySixToFifty,
		"51+":   TeamFiftyPlus,
	} {
		d := Extract(assessment.AnswerMap{QuestionTeamSize: raw})
		assert.Equal(t, want, d.TeamSize, raw)
	}
}

func TestContextLabel(t *testing.T) {
	d := Demographics{
		OrgType:       OrgCooperative,
		Industry:      IndustryCrafts,
		BusinessStage: StageStartup,
	}
	assert.Equal(t, "For cooperatives in crafts at the startup stage", d.ContextLabel())

	// A zero profile still renders something sensible.
	assert.Equal(t,
		"For cultural initiatives in the cultural sector at your current stage",
		Demographics{}.ContextLabel())
}
