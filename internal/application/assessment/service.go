// Package assessment orchestrates the submission flow: validation, the
// idempotency guard, pure scoring and matching, and the single transaction
// that moves credits, persists the result, and records grants.
package assessment

import (
	"context"
	"time"

	"github.com/culturiq/engine/internal/domain/assessment"
	"github.com/culturiq/engine/internal/domain/demographics"
	"github.com/culturiq/engine/internal/domain/unlock"
	"github.com/culturiq/engine/internal/engine/recommend"
	"github.com/culturiq/engine/internal/engine/scoring"
	"github.com/culturiq/engine/internal/infrastructure/monitoring/logging"
	"github.com/culturiq/engine/pkg/errors"
)

// Store bundles the repositories the submission transaction spans.  WithTx
// runs fn against a store whose repositories share one database transaction;
// any error rolls the whole submission back.
type Store interface {
	WithTx(ctx context.Context, fn func(Store) error) error
	Results() assessment.ResultRepository
	Grants() unlock.GrantRepository
	Credits() unlock.CreditRepository
}

// SubmissionGuard provides a short-lived exclusive claim per respondent and
// assessment so double-clicked or replayed submissions collapse into one.
type SubmissionGuard interface {
	// Acquire returns ok=false when another submission currently holds the
	// claim.  The release function frees the claim early; on successful
	// submission the claim is left to expire instead.
	Acquire(ctx context.Context, respondentID string, t assessment.Type) (release func(), ok bool, err error)
}

// EventPublisher emits completion events for asynchronous collaborators.
// Publishing is best-effort: the submission never fails on publish errors.
type EventPublisher interface {
	PublishCompletion(ctx context.Context, event CompletionEvent) error
}

// ResultCache is an optional read-through cache in front of the result
// repository.  A miss invokes the load function and stores what it returns;
// cache failures fall through to the load function.
type ResultCache interface {
	GetOrLoadResult(ctx context.Context, id string, load func(ctx context.Context) (*assessment.Result, error)) (*assessment.Result, error)
	StoreResult(ctx context.Context, result *assessment.Result) error
}

// Metrics receives submission-flow observations.  Outcomes are "ok" or the
// error code of the failure.  All implementations must be non-blocking.
type Metrics interface {
	SubmissionObserved(assessmentType, outcome string, elapsed time.Duration)
	PreviewObserved(assessmentType, outcome string)
	CreditsSpent(assessmentType string, amount int)
	GrantsIssued(kind string, count int)
	RecommendationsReturned(assessmentType string, count int)
	EventPublished(outcome string)
}

// Service runs submissions and previews.
type Service struct {
	store     Store
	guard     SubmissionGuard
	publisher EventPublisher
	scorer    *scoring.Engine
	matcher   *recommend.Matcher
	cache     ResultCache
	metrics   Metrics
	log       logging.Logger

	previewMinAnswers int
	initialCredits    int
}

// ServiceOption customizes a Service.
type ServiceOption func(*Service)

// WithPreviewMinAnswers overrides the minimum answered questions the preview
// path requires.
func WithPreviewMinAnswers(n int) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.previewMinAnswers = n
		}
	}
}

// WithResultCache adds a read-through cache for persisted results.
func WithResultCache(cache ResultCache) ServiceOption {
	return func(s *Service) { s.cache = cache }
}

// WithMetrics attaches a metrics sink to the submission flow.
func WithMetrics(m Metrics) ServiceOption {
	return func(s *Service) { s.metrics = m }
}

// WithInitialCredits overrides the balance a first-time respondent starts
// with.
func WithInitialCredits(n int) ServiceOption {
	return func(s *Service) {
		if n >= 0 {
			s.initialCredits = n
		}
	}
}

// NewService wires the submission service.
func NewService(store Store, guard SubmissionGuard, publisher EventPublisher, scorer *scoring.Engine, matcher *recommend.Matcher, log logging.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		store:             store,
		guard:             guard,
		publisher:         publisher,
		scorer:            scorer,
		matcher:           matcher,
		log:               log,
		previewMinAnswers: 10,
		initialCredits:    1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitInput is one submission request.  Email is optional; when present the
// notification worker sends a result summary to it.
type SubmitInput struct {
	RespondentID string
	Email        string
	Type         string
	Answers      assessment.AnswerMap
}

// SubmitOutput is the full submission response: the persisted result, the
// personalized recommendations, and what the completion newly unlocked.
type SubmitOutput struct {
	Result              *assessment.Result         `json:"result"`
	Demographics        demographics.Demographics  `json:"demographics"`
	Recommendations     []recommend.Recommendation `json:"recommendations"`
	NewBalance          int                        `json:"newBalance"`
	CreditsSpent        int                        `json:"creditsSpent"`
	UnlockedAssessments []string                   `json:"unlockedAssessments"`
	GrantedTools        []string                   `json:"grantedTools"`
	GrantedResources    []string                   `json:"grantedResources"`
}

// Submit validates, scores, and persists one submission.  Credit deduction,
// result insertion, and grant recording happen in a single transaction; a
// failure at any step leaves no partial state.  Retakes of an assessment the
// respondent already holds cost nothing and grant nothing new.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*SubmitOutput, error) {
	start := time.Now()
	out, err := s.submit(ctx, in)
	if s.metrics != nil {
		s.metrics.SubmissionObserved(in.Type, outcomeLabel(err), time.Since(start))
		if err == nil {
			s.metrics.CreditsSpent(in.Type, out.CreditsSpent)
			s.metrics.RecommendationsReturned(in.Type, len(out.Recommendations))
			s.metrics.GrantsIssued(string(unlock.GrantAssessment), len(out.UnlockedAssessments))
			s.metrics.GrantsIssued(string(unlock.GrantTool), len(out.GrantedTools))
			s.metrics.GrantsIssued(string(unlock.GrantResource), len(out.GrantedResources))
		}
	}
	return out, err
}

func (s *Service) submit(ctx context.Context, in SubmitInput) (*SubmitOutput, error) {
	t, answers, err := s.validate(in)
	if err != nil {
		return nil, err
	}

	// A submission must cover at least half the scored questions; partial
	// forms belong on the preview path.
	if answered, total, ok := s.scorer.Coverage(t, answers); ok && total > 0 && answered*2 < total {
		return nil, errors.Newf(errors.ErrCodeInvalidAnswers,
			"only %d of %d scored questions answered; at least half are required", answered, total)
	}

	release, ok, err := s.guard.Acquire(ctx, in.RespondentID, t)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New(errors.ErrCodeAlreadySubmitted,
			"a submission for this assessment is already in progress")
	}

	result, profile, recs, err := s.compute(in.RespondentID, t, answers)
	if err != nil {
		release()
		return nil, err
	}

	out := &SubmitOutput{
		Result:          result,
		Demographics:    profile,
		Recommendations: recs,
	}

	var granted []unlock.Grant
	err = s.store.WithTx(ctx, func(tx Store) error {
		if err := tx.Credits().EnsureAccount(ctx, in.RespondentID, s.initialCredits); err != nil {
			return err
		}

		held, err := tx.Grants().ListByRespondent(ctx, in.RespondentID)
		if err != nil {
			return err
		}
		heldSet := unlock.NewGrantSet(held)

		if unlock.StatusFor(t, heldSet) == unlock.StatusLocked {
			return errors.Newf(errors.ErrCodeAssessmentLocked,
				"assessment %s requires completing its prerequisite first", t)
		}

		balance, err := tx.Credits().BalanceForUpdate(ctx, in.RespondentID)
		if err != nil {
			return err
		}

		// First completion of a paid assessment spends credits; a retake of
		// one already granted does not.
		cost := 0
		if !heldSet.HasAssessment(t) {
			cost = unlock.CreditCost(t)
		}
		if balance < cost {
			return errors.Newf(errors.ErrCodeInsufficientCredits,
				"balance %d is below the required %d credits", balance, cost)
		}
		if cost > 0 {
			if balance, err = tx.Credits().Deduct(ctx, in.RespondentID, cost); err != nil {
				return err
			}
		}
		out.CreditsSpent = cost
		out.NewBalance = balance

		if err := tx.Results().Create(ctx, result); err != nil {
			return err
		}

		granted = unlock.Evaluate(t, result.OverallScore, heldSet)
		if err := tx.Grants().Add(ctx, in.RespondentID, granted); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		release()
		return nil, err
	}

	for _, g := range granted {
		switch g.Kind {
		case unlock.GrantAssessment:
			if g.Key != string(t) {
				out.UnlockedAssessments = append(out.UnlockedAssessments, g.Key)
			}
		case unlock.GrantTool:
			out.GrantedTools = append(out.GrantedTools, g.Key)
		case unlock.GrantResource:
			out.GrantedResources = append(out.GrantedResources, g.Key)
		}
	}

	s.cacheResult(ctx, result)
	s.publishCompletion(ctx, in, result, out)
	return out, nil
}

// PreviewOutput is a non-persisted scoring of a partial answer set.
type PreviewOutput struct {
	Result          *assessment.Result         `json:"result"`
	Demographics    demographics.Demographics  `json:"demographics"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
}

// Preview scores without the guard, the transaction, or any credit movement.
// It requires a minimum number of answered questions so a nearly empty form
// cannot produce a misleading score.
func (s *Service) Preview(ctx context.Context, in SubmitInput) (*PreviewOutput, error) {
	out, err := s.preview(ctx, in)
	if s.metrics != nil {
		s.metrics.PreviewObserved(in.Type, outcomeLabel(err))
	}
	return out, err
}

func (s *Service) preview(_ context.Context, in SubmitInput) (*PreviewOutput, error) {
	t, answers, err := s.validate(in)
	if err != nil {
		return nil, err
	}
	if answers.AnsweredCount() < s.previewMinAnswers {
		return nil, errors.Newf(errors.ErrCodeInvalidAnswers,
			"preview requires at least %d answered questions", s.previewMinAnswers)
	}

	result, profile, recs, err := s.compute(in.RespondentID, t, answers)
	if err != nil {
		return nil, err
	}
	return &PreviewOutput{Result: result, Demographics: profile, Recommendations: recs}, nil
}

// GetResult loads a persisted result by id, reading through the cache when
// one is configured so repeated dashboard hits for the same result reach the
// database once.
func (s *Service) GetResult(ctx context.Context, id string) (*assessment.Result, error) {
	load := func(ctx context.Context) (*assessment.Result, error) {
		return s.store.Results().GetByID(ctx, id)
	}
	if s.cache == nil {
		return load(ctx)
	}
	return s.cache.GetOrLoadResult(ctx, id, load)
}

// ListResults returns a respondent's results, newest first.
func (s *Service) ListResults(ctx context.Context, respondentID string) ([]*assessment.Result, error) {
	return s.store.Results().ListByRespondent(ctx, respondentID)
}

// UnlockState reports every assessment's lifecycle status for a respondent,
// plus the current credit balance.
func (s *Service) UnlockState(ctx context.Context, respondentID string) (map[assessment.Type]unlock.Status, int, error) {
	held, err := s.store.Grants().ListByRespondent(ctx, respondentID)
	if err != nil {
		return nil, 0, err
	}
	set := unlock.NewGrantSet(held)

	statuses := make(map[assessment.Type]unlock.Status, len(assessment.AllTypes()))
	for _, t := range assessment.AllTypes() {
		statuses[t] = unlock.StatusFor(t, set)
	}

	balance, err := s.store.Credits().Balance(ctx, respondentID)
	if err != nil {
		if errors.IsNotFound(err) {
			return statuses, s.initialCredits, nil
		}
		return nil, 0, err
	}
	return statuses, balance, nil
}

func (s *Service) validate(in SubmitInput) (assessment.Type, assessment.AnswerMap, error) {
	if in.RespondentID == "" {
		return "", nil, errors.New(errors.ErrCodeBadRequest, "respondent id is required")
	}
	t, ok := assessment.ParseType(in.Type)
	if !ok {
		return "", nil, errors.New(errors.ErrCodeUnknownAssessment, "unknown assessment type").
			WithDetail(in.Type)
	}
	if in.Answers.AnsweredCount() == 0 {
		return "", nil, errors.New(errors.ErrCodeInvalidAnswers, "no answers provided")
	}
	return t, in.Answers, nil
}

func (s *Service) compute(respondentID string, t assessment.Type, answers assessment.AnswerMap) (*assessment.Result, demographics.Demographics, []recommend.Recommendation, error) {
	result, err := s.scorer.Score(respondentID, t, answers)
	if err != nil {
		return nil, demographics.Demographics{}, nil, err
	}
	profile := demographics.Extract(answers)
	recs := s.matcher.Match(result, profile)
	return result, profile, recs, nil
}

func (s *Service) cacheResult(ctx context.Context, result *assessment.Result) {
	if s.cache == nil {
		return
	}
	if err := s.cache.StoreResult(ctx, result); err != nil {
		s.log.Warn("failed to cache result",
			logging.String("result_id", result.ID),
			logging.Err(err))
	}
}

func (s *Service) publishCompletion(ctx context.Context, in SubmitInput, result *assessment.Result, out *SubmitOutput) {
	if s.publisher == nil {
		return
	}
	event := NewCompletionEvent(in.RespondentID, in.Email, result, out)
	err := s.publisher.PublishCompletion(ctx, event)
	if err != nil {
		// Fire and forget: the submission already committed.
		s.log.Warn("failed to publish completion event",
			logging.String("respondent_id", in.RespondentID),
			logging.String("result_id", result.ID),
			logging.Err(err))
	}
	if s.metrics != nil {
		s.metrics.EventPublished(outcomeLabel(err))
	}
}

// outcomeLabel collapses an error into a low-cardinality metric label.
func outcomeLabel(err error) string {
	if err == nil {
		return "ok"
	}
	return errors.GetCode(err).String()
}
