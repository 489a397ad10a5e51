package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/culturiq/engine/internal/domain/assessment"
	"github.com/culturiq/engine/internal/infrastructure/monitoring/logging"
)

func TestSubmissionGuard_AcquireAndRelease(t *testing.T) {
	client, mr := newTestClient(t)
	guard := NewSubmissionGuard(client, logging.NewNopLogger())
	ctx := context.Background()

	release, ok, err := guard.Acquire(ctx, "u1", assessment.TypeCIRF)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, mr.Exists("culturiq:submit:u1:cirf"))

	release()
	assert.False(t, mr.Exists("culturiq:submit:u1:cirf"))
}

func TestSubmissionGuard_Contention(t *testing.T) {
	client, _ := newTestClient(t)
	guard := NewSubmissionGuard(client, logging.NewNopLogger())
	ctx := context.Background()

	release1, ok, err := guard.Acquire(ctx, "u1", assessment.TypeCIRF)
	require.NoError(t, err)
	require.True(t, ok)

	// Same respondent, same assessment: blocked.
	_, ok, err = guard.Acquire(ctx, "u1", assessment.TypeCIRF)
	require.NoError(t, err)
	assert.False(t, ok)

	// Different assessment or respondent: independent claims.
	releaseTBL, ok, err := guard.Acquire(ctx, "u1", assessment.TypeTBL)
	require.NoError(t, err)
	assert.True(t, ok)
	releaseU2, ok, err := guard.Acquire(ctx, "u2", assessment.TypeCIRF)
	require.NoError(t, err)
	assert.True(t, ok)

	release1()
	releaseTBL()
	releaseU2()

	_, ok, err = guard.Acquire(ctx, "u1", assessment.TypeCIRF)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSubmissionGuard_ClaimExpires(t *testing.T) {
	client, mr := newTestClient(t)
	guard := NewSubmissionGuard(client, logging.NewNopLogger(), WithGuardTTL(time.Second))
	ctx := context.Background()

	_, ok, err := guard.Acquire(ctx, "u1", assessment.TypeCIRF)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Second)

	_, ok, err = guard.Acquire(ctx, "u1", assessment.TypeCIRF)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSubmissionGuard_StaleReleaseKeepsNewClaim(t *testing.T) {
	client, mr := newTestClient(t)
	guard := NewSubmissionGuard(client, logging.NewNopLogger(), WithGuardTTL(time.Second))
	ctx := context.Background()

	staleRelease, ok, err := guard.Acquire(ctx, "u1", assessment.TypeCIRF)
	require.NoError(t, err)
	require.True(t, ok)

	// The first claim expires and a second submission takes over.
	mr.FastForward(2 * time.Second)
	_, ok, err = guard.Acquire(ctx, "u1", assessment.TypeCIRF)
	require.NoError(t, err)
	require.True(t, ok)

	// The stale release must not delete the new owner's claim.
	staleRelease()
	assert.True(t, mr.Exists("culturiq:submit:u1:cirf"))
}
