package demographics

import "github.com/culturiq/engine/internal/domain/assessment"

// Question ids the extractor reads from the answer map.
const (
	QuestionOrgType  = "demo-org-type"
	QuestionSector   = "demo-sector"
	QuestionStage    = "demo-stage"
	QuestionTeamSize = "demo-team-size"
	QuestionRevenue  = "demo-revenue"
	QuestionRegion   = "demo-region"
)

// Extract pulls a fully populated profile out of the raw answer map.  An
// unanswered question or a value outside its enumeration takes the field's
// explicit fallback; Extract never fails and has no side effects, so the
// matchers can always proceed.
func Extract(answers assessment.AnswerMap) Demographics {
	d := Demographics{
		OrgType:       FallbackOrgType,
		Industry:      FallbackIndustry,
		BusinessStage: FallbackStage,
		TeamSize:      FallbackTeamSize,
		Region:        FallbackRegion,
	}

	if v, ok := answers.Category(QuestionOrgType); ok {
		if o := OrganizationType(v); o.Valid() {
			d.OrgType = o
		}
	}
	if v, ok := answers.Category(QuestionSector); ok {
		if i := Industry(v); i.Valid() {
			d.Industry = i
		}
	}
	if v, ok := answers.Category(QuestionStage); ok {
		if s := BusinessStage(v); s.Valid() {
			d.BusinessStage = s
		}
	}
	if v, ok := answers.Category(QuestionTeamSize); ok {
		if t := TeamSize(v); t.Valid() {
			d.TeamSize = t
		}
	}
	if v, ok := answers.Category(QuestionRegion); ok {
		if r := Region(v); r.Valid() {
			d.Region = r
		}
	}
	if v, ok := answers.Category(QuestionRevenue); ok {
		d.RevenueRange = v
	}

	return d
}
