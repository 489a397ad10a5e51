package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/culturiq/engine/internal/domain/assessment"
	"github.com/culturiq/engine/pkg/errors"
)

// fixtureRegistry builds a two-section catalog small enough to verify the
// arithmetic by hand: section one holds constructs alpha (2 questions) and
// beta (1 question), section two holds gamma (2 questions).
func fixtureRegistry() assessment.Registry {
	sections := []assessment.SectionDef{
		{ID: "one", Label: "Section One", Weight: 0.6},
		{ID: "two", Label: "Section Two", Weight: 0.4},
	}
	questions := []assessment.Question{
		{ID: "q1", Section: "one", Construct: "alpha", Kind: assessment.KindLikert},
		{ID: "q2", Section: "one", Construct: "alpha", Kind: assessment.KindLikert},
		{ID: "q3", Section: "one", Construct: "beta", Kind: assessment.KindLikert},
		{ID: "q4", Section: "two", Construct: "gamma", Kind: assessment.KindLikert},
		{ID: "q5", Section: "two", Construct: "gamma", Kind: assessment.KindLikert},
	}
	synergies := []assessment.SynergyPair{
		{First: "alpha", Second: "gamma", Bonus: 0.05},
	}
	return assessment.NewRegistry(assessment.NewCatalog(
		assessment.TypeCIRF, sections, questions, nil, nil, synergies))
}

func allAnswers(v int) assessment.AnswerMap {
	return assessment.AnswerMap{"q1": v, "q2": v, "q3": v, "q4": v, "q5": v}
}

func TestScore_PerfectAnswers(t *testing.T) {
	e := NewEngine(fixtureRegistry())

	r, err := e.Score("u1", assessment.TypeCIRF, allAnswers(7))
	require.NoError(t, err)

	assert.Equal(t, 1.0, r.ConstructScores["alpha"].Score)
	assert.Equal(t, 100.0, r.SectionScores["one"].Score)
	assert.Equal(t, 100.0, r.SectionScores["two"].Score)
	// The synergy bonus fires but the overall score stays clamped.
	assert.Equal(t, 5.0, r.SynergyBonus)
	assert.Len(t, r.ActiveSynergies, 1)
	assert.Equal(t, 100.0, r.OverallScore)
	assert.Equal(t, assessment.BandThriving, r.Interpretation.Level)
	assert.NoError(t, r.Validate())
}

func TestScore_SynergyMultipliesBaseScore(t *testing.T) {
	e := NewEngine(fixtureRegistry())

	// Sixes everywhere: every construct lands at 5/6 ≈ 0.833, above the
	// activation threshold, for a base score of 83.33.  The 5% pair bonus
	// scales the base rather than adding five flat points, so the overall
	// is 83.33 * 1.05 = 87.5, not 88.33.
	r, err := e.Score("u1", assessment.TypeCIRF, allAnswers(6))
	require.NoError(t, err)

	assert.Len(t, r.ActiveSynergies, 1)
	assert.Equal(t, 5.0, r.SynergyBonus)
	assert.InDelta(t, 87.5, r.OverallScore, 1e-9)
}

func TestScore_AllLowest(t *testing.T) {
	e := NewEngine(fixtureRegistry())

	r, err := e.Score("u1", assessment.TypeCIRF, allAnswers(1))
	require.NoError(t, err)

	assert.Equal(t, 0.0, r.OverallScore)
	assert.Equal(t, 0.0, r.SynergyBonus)
	assert.Empty(t, r.ActiveSynergies)
	assert.Equal(t, assessment.BandNascent, r.Interpretation.Level)
}

func TestScore_UnansweredExcludedNotZero(t *testing.T) {
	e := NewEngine(fixtureRegistry())

	// alpha has one 7 and one skip: the skip must not drag the mean down.
	r, err := e.Score("u1", assessment.TypeCIRF, assessment.AnswerMap{
		"q1": 7, "q2": nil, "q3": 4, "q4": 4, "q5": 4,
	})
	require.NoError(t, err)

	alpha := r.ConstructScores["alpha"]
	assert.Equal(t, 1.0, alpha.Score)
	assert.Equal(t, 1, alpha.Answered)
	assert.Equal(t, 2, alpha.Total)

	// Section one: (1.0 + 0.5) / 2 constructs = 75.
	assert.Equal(t, 75.0, r.SectionScores["one"].Score)
	assert.Equal(t, 50.0, r.SectionScores["two"].Score)
	// Overall: 75*0.6 + 50*0.4 = 65.
	assert.InDelta(t, 65.0, r.OverallScore, 1e-9)
	assert.Equal(t, assessment.BandEstablished, r.Interpretation.Level)
}

func TestScore_GatedSectionExcluded(t *testing.T) {
	e := NewEngine(fixtureRegistry())

	// Section two has 0 of 2 answered: below the gate, so the overall mean
	// renormalizes over section one alone.
	r, err := e.Score("u1", assessment.TypeCIRF, assessment.AnswerMap{
		"q1": 7, "q2": 7, "q3": 4,
	})
	require.NoError(t, err)

	assert.False(t, r.SectionScores["two"].Complete)
	assert.True(t, r.SectionScores["one"].Complete)
	assert.InDelta(t, 75.0, r.OverallScore, 1e-9)
}

func TestScore_InsufficientData(t *testing.T) {
	e := NewEngine(fixtureRegistry())

	_, err := e.Score("u1", assessment.TypeCIRF, assessment.AnswerMap{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInsufficientData))

	// A single answer per section still fails a 0.5 gate on section one.
	_, err = e.Score("u1", assessment.TypeCIRF, assessment.AnswerMap{"q1": 7})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInsufficientData))
}

func TestScore_CustomGate(t *testing.T) {
	e := NewEngine(fixtureRegistry(), WithCompletionGate(0.3))

	r, err := e.Score("u1", assessment.TypeCIRF, assessment.AnswerMap{"q1": 7})
	require.NoError(t, err)
	assert.True(t, r.SectionScores["one"].Complete)
}

func TestScore_UnknownType(t *testing.T) {
	e := NewEngine(assessment.NewRegistry())

	_, err := e.Score("u1", assessment.TypeCIRF, allAnswers(4))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeUnknownAssessment))
}

func TestScore_Deterministic(t *testing.T) {
	e := NewEngine(fixtureRegistry())
	answers := assessment.AnswerMap{"q1": 6, "q2": 3, "q3": 5, "q4": 2, "q5": 7}

	a, err := e.Score("u1", assessment.TypeCIRF, answers)
	require.NoError(t, err)
	b, err := e.Score("u1", assessment.TypeCIRF, answers)
	require.NoError(t, err)

	assert.Equal(t, a.OverallScore, b.OverallScore)
	assert.Equal(t, a.ConstructScores, b.ConstructScores)
	assert.Equal(t, a.SectionScores, b.SectionScores)
	assert.Equal(t, a.Interpretation, b.Interpretation)
}

func TestScore_Monotonic(t *testing.T) {
	e := NewEngine(fixtureRegistry())

	base, err := e.Score("u1", assessment.TypeCIRF, allAnswers(3))
	require.NoError(t, err)

	for _, q := range []string{"q1", "q2", "q3", "q4", "q5"} {
		answers := allAnswers(3)
		answers[q] = 6
		raised, err := e.Score("u1", assessment.TypeCIRF, answers)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, raised.OverallScore, base.OverallScore, q)
	}
}

func TestScore_FullCIRFCatalog(t *testing.T) {
	e := NewEngine(assessment.DefaultRegistry())
	catalog, _ := assessment.DefaultRegistry().Catalog(assessment.TypeCIRF)

	answers := assessment.AnswerMap{}
	for _, q := range catalog.Questions {
		if q.Kind == assessment.KindLikert {
			answers[q.ID] = 6
		}
	}

	r, err := e.Score("u1", assessment.TypeCIRF, answers)
	require.NoError(t, err)
	assert.NoError(t, r.Validate())
	// 6 on every question normalizes to 5/6; all five synergy pairs fire and
	// the bonus pushes the clamped overall to the ceiling.
	assert.Len(t, r.ActiveSynergies, 5)
	assert.InDelta(t, 36.3, r.SynergyBonus, 1e-6)
	assert.Equal(t, 100.0, r.OverallScore)
	assert.Equal(t, assessment.BandThriving, r.Interpretation.Level)
}

func TestInterpret_Bands(t *testing.T) {
	tests := []struct {
		score float64
		want  assessment.Band
	}{
		{0, assessment.BandNascent},
		{39.9, assessment.BandNascent},
		{40, assessment.BandDeveloping},
		{59.9, assessment.BandDeveloping},
		{60, assessment.BandEstablished},
		{79.9, assessment.BandEstablished},
		{80, assessment.BandThriving},
		{100, assessment.BandThriving},
	}
	for _, tt := range tests {
		got := Interpret(tt.score)
		assert.Equal(t, tt.want, got.Level, "score %g", tt.score)
		assert.NotEmpty(t, got.Description)
		assert.NotEmpty(t, got.Color)
	}
}

func TestCoverage(t *testing.T) {
	e := NewEngine(fixtureRegistry())

	answered, total, ok := e.Coverage(assessment.TypeCIRF, allAnswers(5))
	require.True(t, ok)
	assert.Equal(t, 5, total)
	assert.Equal(t, 5, answered)

	answered, _, ok = e.Coverage(assessment.TypeCIRF, assessment.AnswerMap{"q1": 3, "q9": 3})
	require.True(t, ok)
	assert.Equal(t, 1, answered)

	_, _, ok = e.Coverage("bogus", allAnswers(5))
	assert.False(t, ok)
}
