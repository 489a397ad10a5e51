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

type cachedScore struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

func TestCache_SetGetDelete(t *testing.T) {
	client, _ := newTestClient(t)
	cache := NewCache(client, logging.NewNopLogger())
	ctx := context.Background()

	want := cachedScore{ID: "res-1", Score: 72.5}
	require.NoError(t, cache.Set(ctx, "res-1", want, time.Minute))

	var got cachedScore
	require.NoError(t, cache.Get(ctx, "res-1", &got))
	assert.Equal(t, want, got)

	exists, err := cache.Exists(ctx, "res-1")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, cache.Delete(ctx, "res-1"))
	assert.Equal(t, ErrCacheMiss, cache.Get(ctx, "res-1", &got))
}

func TestCache_GetMiss(t *testing.T) {
	client, _ := newTestClient(t)
	cache := NewCache(client, logging.NewNopLogger())

	var got cachedScore
	assert.Equal(t, ErrCacheMiss, cache.Get(context.Background(), "absent", &got))
}

func TestCache_KeysAreNamespaced(t *testing.T) {
	client, mr := newTestClient(t)
	cache := NewCache(client, logging.NewNopLogger())

	require.NoError(t, cache.Set(context.Background(), "res-1", cachedScore{ID: "res-1"}, time.Minute))
	assert.True(t, mr.Exists("culturiq:cache:res-1"))
}

func TestCache_GetOrSet_LoadsOnceThenHits(t *testing.T) {
	client, _ := newTestClient(t)
	cache := NewCache(client, logging.NewNopLogger())
	ctx := context.Background()

	loads := 0
	loader := func(ctx context.Context) (interface{}, error) {
		loads++
		return cachedScore{ID: "res-1", Score: 61.0}, nil
	}

	var first cachedScore
	require.NoError(t, cache.GetOrSet(ctx, "res-1", &first, time.Minute, loader))
	assert.Equal(t, 61.0, first.Score)

	var second cachedScore
	require.NoError(t, cache.GetOrSet(ctx, "res-1", &second, time.Minute, loader))
	assert.Equal(t, first, second)
	assert.Equal(t, 1, loads)
}

func TestCache_GetOrSet_LoaderError(t *testing.T) {
	client, _ := newTestClient(t)
	cache := NewCache(client, logging.NewNopLogger())

	wantErr := assert.AnError
	var got cachedScore
	err := cache.GetOrSet(context.Background(), "res-1", &got, time.Minute,
		func(ctx context.Context) (interface{}, error) { return nil, wantErr })
	assert.Equal(t, wantErr, err)
}

func TestResultCache_ReadThrough(t *testing.T) {
	client, mr := newTestClient(t)
	rc := NewResultCache(client, logging.NewNopLogger())
	ctx := context.Background()

	loads := 0
	load := func(ctx context.Context) (*assessment.Result, error) {
		loads++
		return &assessment.Result{
			ID:           "res-1",
			RespondentID: "u1",
			Type:         assessment.TypeCIRF,
			OverallScore: 72.5,
		}, nil
	}

	// First read misses, loads from the source, and populates the cache.
	got, err := rc.GetOrLoadResult(ctx, "res-1", load)
	require.NoError(t, err)
	assert.Equal(t, 72.5, got.OverallScore)
	assert.Equal(t, 1, loads)
	assert.True(t, mr.Exists("culturiq:result:res-1"))

	// Second read is served from the cache without touching the source.
	got, err = rc.GetOrLoadResult(ctx, "res-1", load)
	require.NoError(t, err)
	assert.Equal(t, assessment.TypeCIRF, got.Type)
	assert.Equal(t, 1, loads)
}

func TestResultCache_LoadErrorPropagates(t *testing.T) {
	client, _ := newTestClient(t)
	rc := NewResultCache(client, logging.NewNopLogger())

	_, err := rc.GetOrLoadResult(context.Background(), "absent",
		func(ctx context.Context) (*assessment.Result, error) { return nil, assert.AnError })
	assert.Equal(t, assert.AnError, err)
}

func TestResultCache_StorePrefillsReads(t *testing.T) {
	client, _ := newTestClient(t)
	rc := NewResultCache(client, logging.NewNopLogger())
	ctx := context.Background()

	stored := &assessment.Result{ID: "res-1", RespondentID: "u1", Type: assessment.TypeCIRF}
	require.NoError(t, rc.StoreResult(ctx, stored))

	got, err := rc.GetOrLoadResult(ctx, "res-1", func(ctx context.Context) (*assessment.Result, error) {
		t.Fatal("loader must not run for a cached result")
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", got.RespondentID)
}
