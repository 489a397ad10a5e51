package redis

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/culturiq/engine/internal/domain/assessment"
	"github.com/culturiq/engine/internal/infrastructure/monitoring/logging"
	"github.com/culturiq/engine/pkg/errors"
)

// releaseScript deletes the claim only when the caller still owns it, so a
// slow request can't free a claim a later submission re-acquired after expiry.
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`

// SubmissionGuard claims one in-flight submission per respondent and
// assessment type via SET NX with a TTL.  The claim is intentionally left to
// expire after a successful submission so rapid resubmits keep colliding with
// it; failed submissions release it immediately so the respondent can retry.
type SubmissionGuard struct {
	client *Client
	logger logging.Logger
	ttl    time.Duration
}

type GuardOption func(*SubmissionGuard)

// WithGuardTTL overrides the claim expiry from config.
func WithGuardTTL(ttl time.Duration) GuardOption {
	return func(g *SubmissionGuard) { g.ttl = ttl }
}

func NewSubmissionGuard(client *Client, log logging.Logger, opts ...GuardOption) *SubmissionGuard {
	g := &SubmissionGuard{
		client: client,
		logger: log,
		ttl:    client.SubmitLockTTL(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *SubmissionGuard) key(respondentID string, t assessment.Type) string {
	return g.client.KeyPrefix() + "submit:" + respondentID + ":" + string(t)
}

// Acquire claims the respondent/type pair.  ok=false means another submission
// holds the claim right now.
func (g *SubmissionGuard) Acquire(ctx context.Context, respondentID string, t assessment.Type) (func(), bool, error) {
	key := g.key(respondentID, t)
	token := uuid.NewString()

	ok, err := g.client.SetNX(ctx, key, token, g.ttl).Result()
	if err != nil {
		return nil, false, errors.Wrap(err, errors.ErrCodeCacheError, "failed to acquire submission claim")
	}
	if !ok {
		return nil, false, nil
	}

	release := func() {
		// Release runs on failure paths whose request context may already be
		// cancelled, so it gets its own deadline.
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := g.client.Eval(ctx, releaseScript, []string{key}, token).Err(); err != nil {
			g.logger.Warn("failed to release submission claim",
				logging.String("key", key),
				logging.Err(err),
			)
		}
	}
	return release, true, nil
}
