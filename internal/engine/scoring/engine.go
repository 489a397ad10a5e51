// Package scoring turns a raw answer map into a scored, interpreted
// assessment result.  The engine is deterministic for a given catalog and
// answer map; it performs no I/O.
package scoring

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/culturiq/engine/internal/domain/assessment"
	"github.com/culturiq/engine/pkg/errors"
)

// Engine scores answer maps against the catalogs of a registry.
type Engine struct {
	registry assessment.Registry
	gate     float64
}

// Option customizes an Engine.
type Option func(*Engine)

// WithCompletionGate overrides the fraction of a section's questions that
// must be answered before the section contributes to the overall score.
func WithCompletionGate(gate float64) Option {
	return func(e *Engine) {
		if gate > 0 && gate <= 1 {
			e.gate = gate
		}
	}
}

// NewEngine builds a scoring engine over the given catalog registry.
func NewEngine(registry assessment.Registry, opts ...Option) *Engine {
	e := &Engine{registry: registry, gate: 0.5}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Coverage reports how many of t's scored (Likert) questions carry an
// answer.  ok is false for an unknown assessment type.
func (e *Engine) Coverage(t assessment.Type, answers assessment.AnswerMap) (answered, total int, ok bool) {
	catalog, found := e.registry.Catalog(t)
	if !found {
		return 0, 0, false
	}
	for _, q := range catalog.Questions {
		if q.Kind != assessment.KindLikert {
			continue
		}
		total++
		if _, has := answers.Likert(q.ID); has {
			answered++
		}
	}
	return answered, total, true
}

// Score computes the full result for one submission.  Unanswered questions
// are excluded from their construct's mean rather than counted as zero, and
// a section whose answered fraction falls below the completion gate is
// excluded from the overall weighted mean.  When no scored section clears
// the gate there is nothing meaningful to report and Score fails with an
// insufficient-data error instead of fabricating a zero.
func (e *Engine) Score(respondentID string, t assessment.Type, answers assessment.AnswerMap) (*assessment.Result, error) {
	catalog, ok := e.registry.Catalog(t)
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownAssessment, "unknown assessment type").
			WithDetail(string(t))
	}

	result := &assessment.Result{
		ID:              uuid.NewString(),
		RespondentID:    respondentID,
		Type:            t,
		SectionScores:   make(map[string]assessment.SectionScore),
		ConstructScores: make(map[string]assessment.ConstructScore),
		SubmittedAt:     time.Now().UTC(),
	}

	var weightedSum, weightTotal float64
	anyComplete := false

	for _, section := range catalog.Sections {
		if section.Weight <= 0 {
			continue
		}

		ss := e.scoreSection(catalog, section, answers, result.ConstructScores)
		result.SectionScores[section.ID] = ss

		if ss.Complete {
			anyComplete = true
			weightedSum += ss.Score * section.Weight
			weightTotal += section.Weight
		}
	}

	if !anyComplete {
		return nil, errors.New(errors.ErrCodeInsufficientData,
			"too few answers to compute a meaningful score")
	}

	overall := weightedSum / weightTotal

	bonus, active := e.synergyBonus(catalog, result.ConstructScores)
	result.SynergyBonus = bonus * 100
	result.ActiveSynergies = active

	overall = math.Min(overall*(1+bonus), 100)
	result.OverallScore = overall
	result.Interpretation = Interpret(overall)

	return result, nil
}

// scoreSection computes one section's constructs and aggregate.  Construct
// scores are recorded even when the section fails the gate so respondents
// still see partial feedback.
func (e *Engine) scoreSection(catalog *assessment.Catalog, section assessment.SectionDef, answers assessment.AnswerMap, constructs map[string]assessment.ConstructScore) assessment.SectionScore {
	ss := assessment.SectionScore{
		Section: section.ID,
		Label:   section.Label,
	}

	var scoreSum, weightSum float64
	for _, construct := range catalog.Constructs(section.ID) {
		cs := scoreConstruct(catalog, construct, answers)
		constructs[construct] = cs

		ss.Answered += cs.Answered
		ss.Total += cs.Total
		if cs.Answered == 0 {
			continue
		}
		w := catalog.ConstructWeight(construct)
		scoreSum += cs.Score * w
		weightSum += w
	}

	if weightSum > 0 {
		ss.Score = scoreSum / weightSum * 100
	}
	ss.Complete = ss.Total > 0 && float64(ss.Answered)/float64(ss.Total) >= e.gate
	return ss
}

// scoreConstruct averages the normalized Likert values of a construct's
// answered questions, weighted per question.
func scoreConstruct(catalog *assessment.Catalog, construct string, answers assessment.AnswerMap) assessment.ConstructScore {
	cs := assessment.ConstructScore{
		Construct: construct,
		Label:     catalog.ConstructLabel(construct),
	}

	var valueSum, weightSum float64
	for _, q := range catalog.QuestionsByConstruct(construct) {
		if q.Kind != assessment.KindLikert {
			continue
		}
		cs.Total++
		v, ok := answers.Likert(q.ID)
		if !ok {
			continue
		}
		cs.Answered++
		w := q.EffectiveWeight()
		valueSum += assessment.NormalizeLikert(v) * w
		weightSum += w
	}

	if weightSum > 0 {
		cs.Score = valueSum / weightSum
	}
	return cs
}

// synergyBonus sums the bonus rates of every pair whose two constructs were
// both answered and both scored at or above the activation threshold.  The
// returned value is a fractional multiplier on the base score, not points.
func (e *Engine) synergyBonus(catalog *assessment.Catalog, constructs map[string]assessment.ConstructScore) (float64, []assessment.SynergyPair) {
	var bonus float64
	var active []assessment.SynergyPair
	for _, pair := range catalog.SynergyPairs {
		first, okFirst := constructs[pair.First]
		second, okSecond := constructs[pair.Second]
		if !okFirst || !okSecond || first.Answered == 0 || second.Answered == 0 {
			continue
		}
		if first.Score >= assessment.SynergyActivationThresh && second.Score >= assessment.SynergyActivationThresh {
			bonus += pair.Bonus
			active = append(active, pair)
		}
	}
	return bonus, active
}
