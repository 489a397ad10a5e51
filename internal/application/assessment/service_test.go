package assessment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/culturiq/engine/internal/domain/assessment"
	"github.com/culturiq/engine/internal/domain/content"
	"github.com/culturiq/engine/internal/domain/unlock"
	"github.com/culturiq/engine/internal/engine/recommend"
	"github.com/culturiq/engine/internal/engine/scoring"
	"github.com/culturiq/engine/internal/infrastructure/monitoring/logging"
	"github.com/culturiq/engine/pkg/errors"
)

// fakeStore is an in-memory Store whose WithTx emulates rollback by
// snapshotting state before fn and restoring it on error.
type fakeStore struct {
	results  []*assessment.Result
	grants   map[string][]unlock.Grant
	balances map[string]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		grants:   make(map[string][]unlock.Grant),
		balances: make(map[string]int),
	}
}

func (s *fakeStore) WithTx(ctx context.Context, fn func(Store) error) error {
	results := append([]*assessment.Result(nil), s.results...)
	grants := make(map[string][]unlock.Grant, len(s.grants))
	for k, v := range s.grants {
		grants[k] = append([]unlock.Grant(nil), v...)
	}
	balances := make(map[string]int, len(s.balances))
	for k, v := range s.balances {
		balances[k] = v
	}

	if err := fn(s); err != nil {
		s.results, s.grants, s.balances = results, grants, balances
		return err
	}
	return nil
}

func (s *fakeStore) Results() assessment.ResultRepository { return (*fakeResults)(s) }
func (s *fakeStore) Grants() unlock.GrantRepository       { return (*fakeGrants)(s) }
func (s *fakeStore) Credits() unlock.CreditRepository     { return (*fakeCredits)(s) }

type fakeResults fakeStore

func (r *fakeResults) Create(_ context.Context, result *assessment.Result) error {
	r.results = append(r.results, result)
	return nil
}

func (r *fakeResults) GetByID(_ context.Context, id string) (*assessment.Result, error) {
	for _, res := range r.results {
		if res.ID == id {
			return res, nil
		}
	}
	return nil, errors.NotFound("result " + id + " not found")
}

func (r *fakeResults) ListByRespondent(_ context.Context, respondentID string) ([]*assessment.Result, error) {
	var out []*assessment.Result
	for _, res := range r.results {
		if res.RespondentID == respondentID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeResults) LatestByType(_ context.Context, respondentID string, t assessment.Type) (*assessment.Result, error) {
	for i := len(r.results) - 1; i >= 0; i-- {
		if r.results[i].RespondentID == respondentID && r.results[i].Type == t {
			return r.results[i], nil
		}
	}
	return nil, errors.NotFound("no result of type " + string(t))
}

type fakeGrants fakeStore

func (g *fakeGrants) ListByRespondent(_ context.Context, respondentID string) ([]unlock.Grant, error) {
	return g.grants[respondentID], nil
}

func (g *fakeGrants) Add(_ context.Context, respondentID string, grants []unlock.Grant) error {
	held := unlock.NewGrantSet(g.grants[respondentID])
	for _, grant := range grants {
		if !held.Has(grant) {
			g.grants[respondentID] = append(g.grants[respondentID], grant)
		}
	}
	return nil
}

func (g *fakeGrants) Has(_ context.Context, respondentID string, grant unlock.Grant) (bool, error) {
	return unlock.NewGrantSet(g.grants[respondentID]).Has(grant), nil
}

type fakeCredits fakeStore

func (c *fakeCredits) Balance(_ context.Context, respondentID string) (int, error) {
	b, ok := c.balances[respondentID]
	if !ok {
		return 0, errors.NotFound("credit account not found")
	}
	return b, nil
}

func (c *fakeCredits) BalanceForUpdate(ctx context.Context, respondentID string) (int, error) {
	return c.Balance(ctx, respondentID)
}

func (c *fakeCredits) Deduct(_ context.Context, respondentID string, amount int) (int, error) {
	c.balances[respondentID] -= amount
	return c.balances[respondentID], nil
}

func (c *fakeCredits) EnsureAccount(_ context.Context, respondentID string, initial int) error {
	if _, ok := c.balances[respondentID]; !ok {
		c.balances[respondentID] = initial
	}
	return nil
}

type fakeGuard struct {
	busy     bool
	acquired int
	released int
}

func (g *fakeGuard) Acquire(context.Context, string, assessment.Type) (func(), bool, error) {
	if g.busy {
		return nil, false, nil
	}
	g.acquired++
	return func() { g.released++ }, true, nil
}

type fakePublisher struct {
	events []CompletionEvent
	err    error
}

func (p *fakePublisher) PublishCompletion(_ context.Context, e CompletionEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, e)
	return nil
}

type fakeResultCache struct {
	stored map[string]*assessment.Result
	loads  int
}

func newFakeResultCache() *fakeResultCache {
	return &fakeResultCache{stored: make(map[string]*assessment.Result)}
}

func (c *fakeResultCache) GetOrLoadResult(ctx context.Context, id string, load func(ctx context.Context) (*assessment.Result, error)) (*assessment.Result, error) {
	if r, ok := c.stored[id]; ok {
		return r, nil
	}
	c.loads++
	r, err := load(ctx)
	if err != nil {
		return nil, err
	}
	c.stored[id] = r
	return r, nil
}

func (c *fakeResultCache) StoreResult(_ context.Context, r *assessment.Result) error {
	c.stored[r.ID] = r
	return nil
}

func newTestService(store *fakeStore, guard *fakeGuard, pub *fakePublisher, opts ...ServiceOption) *Service {
	scorer := scoring.NewEngine(assessment.DefaultRegistry())
	matcher := recommend.NewMatcher(content.DefaultVariantRegistry())
	return NewService(store, guard, pub, scorer, matcher, logging.NewNopLogger(), opts...)
}

func fullCIRFAnswers(v int) assessment.AnswerMap {
	catalog, _ := assessment.DefaultRegistry().Catalog(assessment.TypeCIRF)
	answers := assessment.AnswerMap{
		"demo-org-type": "cooperative",
		"demo-sector":   "crafts",
		"demo-stage":    "startup",
	}
	for _, q := range catalog.Questions {
		if q.Kind == assessment.KindLikert {
			answers[q.ID] = v
		}
	}
	return answers
}

func TestSubmit_FirstCIRF(t *testing.T) {
	store := newFakeStore()
	guard := &fakeGuard{}
	pub := &fakePublisher{}
	svc := newTestService(store, guard, pub)

	out, err := svc.Submit(context.Background(), SubmitInput{
		RespondentID: "u1",
		Type:         "cirf",
		Answers:      fullCIRFAnswers(3),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.CreditsSpent)
	assert.Equal(t, 0, out.NewBalance)
	assert.ElementsMatch(t,
		[]string{"cimm", "cira", "tbl", "ciss", "pricing"}, out.UnlockedAssessments)
	assert.ElementsMatch(t,
		[]string{"funding-guide-2026", "creative-reconstruction"}, out.GrantedResources)
	assert.Empty(t, out.GrantedTools)
	assert.Equal(t, "cooperative", string(out.Demographics.OrgType))
	assert.NotEmpty(t, out.Recommendations)

	require.Len(t, store.results, 1)
	assert.Equal(t, out.Result.ID, store.results[0].ID)

	require.Len(t, pub.events, 1)
	assert.Equal(t, out.Result.ID, pub.events[0].ResultID)

	// The guard stays held on success so a duplicate click cannot race in.
	assert.Equal(t, 1, guard.acquired)
	assert.Equal(t, 0, guard.released)
}

func TestSubmit_InsufficientCredits(t *testing.T) {
	store := newFakeStore()
	guard := &fakeGuard{}
	svc := newTestService(store, guard, &fakePublisher{}, WithInitialCredits(0))

	_, err := svc.Submit(context.Background(), SubmitInput{
		RespondentID: "u1",
		Type:         "cirf",
		Answers:      fullCIRFAnswers(4),
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInsufficientCredits))

	// The transaction rolled back and the guard was released for a retry.
	assert.Empty(t, store.results)
	assert.Empty(t, store.grants["u1"])
	assert.Equal(t, 1, guard.released)
}

func TestSubmit_RetakeIsFreeAndGrantsNothing(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeGuard{}, &fakePublisher{})
	ctx := context.Background()
	in := SubmitInput{RespondentID: "u1", Type: "cirf", Answers: fullCIRFAnswers(5)}

	_, err := svc.Submit(ctx, in)
	require.NoError(t, err)

	out, err := svc.Submit(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 0, out.CreditsSpent)
	assert.Equal(t, 0, out.NewBalance)
	assert.Empty(t, out.UnlockedAssessments)
	assert.Empty(t, out.GrantedResources)

	// Both results persisted; grants did not duplicate.
	assert.Len(t, store.results, 2)
	assert.Len(t, store.grants["u1"], 8)
}

func TestSubmit_SecondaryLockedWithoutCIRF(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeGuard{}, &fakePublisher{})

	catalog, _ := assessment.DefaultRegistry().Catalog(assessment.TypeCISS)
	answers := assessment.AnswerMap{}
	for _, q := range catalog.Questions {
		if q.Kind == assessment.KindLikert {
			answers[q.ID] = 4
		}
	}

	_, err := svc.Submit(context.Background(), SubmitInput{
		RespondentID: "u1", Type: "ciss", Answers: answers,
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeAssessmentLocked))
	assert.Empty(t, store.results)
}

func TestSubmit_SecondaryAfterCIRFGrantsTools(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeGuard{}, &fakePublisher{})
	ctx := context.Background()

	_, err := svc.Submit(ctx, SubmitInput{
		RespondentID: "u1", Type: "cirf", Answers: fullCIRFAnswers(5),
	})
	require.NoError(t, err)

	catalog, _ := assessment.DefaultRegistry().Catalog(assessment.TypeTBL)
	answers := assessment.AnswerMap{}
	for _, q := range catalog.Questions {
		if q.Kind == assessment.KindLikert {
			answers[q.ID] = 6
		}
	}

	out, err := svc.Submit(ctx, SubmitInput{
		RespondentID: "u1", Type: "tbl", Answers: answers,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, out.CreditsSpent)
	assert.ElementsMatch(t, []string{"tbl-calculator", "economic-multiplier"}, out.GrantedTools)
	assert.Empty(t, out.UnlockedAssessments)
}

func TestSubmit_GuardBusy(t *testing.T) {
	svc := newTestService(newFakeStore(), &fakeGuard{busy: true}, &fakePublisher{})

	_, err := svc.Submit(context.Background(), SubmitInput{
		RespondentID: "u1", Type: "cirf", Answers: fullCIRFAnswers(4),
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeAlreadySubmitted))
}

func TestSubmit_ValidationErrors(t *testing.T) {
	svc := newTestService(newFakeStore(), &fakeGuard{}, &fakePublisher{})
	ctx := context.Background()

	_, err := svc.Submit(ctx, SubmitInput{Type: "cirf", Answers: fullCIRFAnswers(4)})
	assert.True(t, errors.IsCode(err, errors.ErrCodeBadRequest))

	_, err = svc.Submit(ctx, SubmitInput{RespondentID: "u1", Type: "bogus", Answers: fullCIRFAnswers(4)})
	assert.True(t, errors.IsCode(err, errors.ErrCodeUnknownAssessment))

	_, err = svc.Submit(ctx, SubmitInput{RespondentID: "u1", Type: "cirf", Answers: assessment.AnswerMap{}})
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidAnswers))

	// Under half the scored questions answered: valid for preview, not submit.
	partial := assessment.AnswerMap{}
	for _, id := range []string{"cc-1", "cc-2", "cc-3", "cc-4", "ia-1", "ia-2", "oc-1", "oc-2", "er-1", "er-2"} {
		partial[id] = 4
	}
	_, err = svc.Submit(ctx, SubmitInput{RespondentID: "u1", Type: "cirf", Answers: partial})
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidAnswers))

	_, err = svc.Preview(ctx, SubmitInput{RespondentID: "u1", Type: "cirf", Answers: partial})
	assert.NoError(t, err)
}

func TestSubmit_PublishFailureDoesNotFail(t *testing.T) {
	store := newFakeStore()
	pub := &fakePublisher{err: errors.New(errors.ErrCodeNotifyPublishFailed, "broker down")}
	svc := newTestService(store, &fakeGuard{}, pub)

	out, err := svc.Submit(context.Background(), SubmitInput{
		RespondentID: "u1", Type: "cirf", Answers: fullCIRFAnswers(4),
	})
	require.NoError(t, err)
	assert.NotNil(t, out.Result)
	assert.Len(t, store.results, 1)
}

func TestPreview_MinimumAnswers(t *testing.T) {
	svc := newTestService(newFakeStore(), &fakeGuard{}, &fakePublisher{})

	_, err := svc.Preview(context.Background(), SubmitInput{
		RespondentID: "u1",
		Type:         "cirf",
		Answers:      assessment.AnswerMap{"cc-1": 5, "cc-2": 5},
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidAnswers))
}

func TestPreview_NoPersistenceNoCredits(t *testing.T) {
	store := newFakeStore()
	guard := &fakeGuard{busy: true} // a busy guard must not block previews
	svc := newTestService(store, guard, &fakePublisher{})

	out, err := svc.Preview(context.Background(), SubmitInput{
		RespondentID: "u1", Type: "cirf", Answers: fullCIRFAnswers(4),
	})
	require.NoError(t, err)
	assert.NotNil(t, out.Result)
	assert.NotEmpty(t, out.Recommendations)

	assert.Empty(t, store.results)
	assert.Empty(t, store.balances)
}

func TestGetResult_ReadsThroughCache(t *testing.T) {
	store := newFakeStore()
	cache := newFakeResultCache()
	svc := newTestService(store, &fakeGuard{}, &fakePublisher{}, WithResultCache(cache))
	ctx := context.Background()

	want := &assessment.Result{ID: "res-1", RespondentID: "u1", Type: assessment.TypeCIRF}
	store.results = append(store.results, want)

	got, err := svc.GetResult(ctx, "res-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, cache.loads)

	// The second read is served from the cache: removing the row from the
	// store must not matter and no further repository load happens.
	store.results = nil
	got, err = svc.GetResult(ctx, "res-1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.RespondentID)
	assert.Equal(t, 1, cache.loads)

	// Unknown ids still surface the repository's not-found.
	_, err = svc.GetResult(ctx, "missing")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestUnlockState(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeGuard{}, &fakePublisher{})
	ctx := context.Background()

	statuses, balance, err := svc.UnlockState(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, unlock.StatusEligible, statuses[assessment.TypeCIRF])
	assert.Equal(t, unlock.StatusLocked, statuses[assessment.TypeCIMM])
	// No account yet: report the initial allowance.
	assert.Equal(t, 1, balance)

	_, err = svc.Submit(ctx, SubmitInput{
		RespondentID: "u1", Type: "cirf", Answers: fullCIRFAnswers(4),
	})
	require.NoError(t, err)

	statuses, balance, err = svc.UnlockState(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, unlock.StatusGranted, statuses[assessment.TypeCIRF])
	assert.Equal(t, unlock.StatusGranted, statuses[assessment.TypeCIMM])
	assert.Equal(t, 0, balance)
}

type fakeMetrics struct {
	submissions     map[string]int
	previews        map[string]int
	creditsSpent    int
	grantsByKind    map[string]int
	recommendations int
	eventsPublished map[string]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{
		submissions:     map[string]int{},
		previews:        map[string]int{},
		grantsByKind:    map[string]int{},
		eventsPublished: map[string]int{},
	}
}

func (m *fakeMetrics) SubmissionObserved(t, outcome string, _ time.Duration) {
	m.submissions[t+"/"+outcome]++
}
func (m *fakeMetrics) PreviewObserved(t, outcome string)      { m.previews[t+"/"+outcome]++ }
func (m *fakeMetrics) CreditsSpent(_ string, amount int)      { m.creditsSpent += amount }
func (m *fakeMetrics) GrantsIssued(kind string, count int)    { m.grantsByKind[kind] += count }
func (m *fakeMetrics) RecommendationsReturned(_ string, n int) { m.recommendations += n }
func (m *fakeMetrics) EventPublished(outcome string)          { m.eventsPublished[outcome]++ }

func TestSubmit_RecordsMetrics(t *testing.T) {
	store := newFakeStore()
	guard := &fakeGuard{}
	metrics := newFakeMetrics()
	svc := newTestService(store, guard, &fakePublisher{}, WithMetrics(metrics))
	ctx := context.Background()

	out, err := svc.Submit(ctx, SubmitInput{
		RespondentID: "u1", Type: "cirf", Answers: fullCIRFAnswers(3),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, metrics.submissions["cirf/ok"])
	assert.Equal(t, 1, metrics.creditsSpent)
	assert.Equal(t, len(out.UnlockedAssessments), metrics.grantsByKind["assessment"])
	assert.Equal(t, len(out.GrantedResources), metrics.grantsByKind["resource"])
	assert.Equal(t, len(out.Recommendations), metrics.recommendations)
	assert.Equal(t, 1, metrics.eventsPublished["ok"])

	// A failed submission records its error code as the outcome.
	guard.busy = true
	_, err = svc.Submit(ctx, SubmitInput{
		RespondentID: "u1", Type: "cirf", Answers: fullCIRFAnswers(3),
	})
	require.Error(t, err)
	assert.Equal(t, 1, metrics.submissions["cirf/"+errors.ErrCodeAlreadySubmitted.String()])

	_, err = svc.Preview(ctx, SubmitInput{
		RespondentID: "u1", Type: "cirf", Answers: fullCIRFAnswers(4),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, metrics.previews["cirf/ok"])
}
