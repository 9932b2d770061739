package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadexchange/leadmarket/internal/models"
)

const purchasesRoute = "/api/v1/purchases"

func storedResponse(key, scope, route, body string) *models.IdempotencyKey {
	return &models.IdempotencyKey{
		Key:            key,
		Scope:          scope,
		RequestPath:    route,
		ResponseStatus: 201,
		ResponseBody:   body,
	}
}

func TestIdempotencyRepository(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)

	repo := NewIdempotencyRepository(database)
	ctx := context.Background()

	t.Run("replays what was stored", func(t *testing.T) {
		truncateTables(t, database)

		require.NoError(t, repo.Store(ctx, storedResponse("buy-1", "100500", purchasesRoute, `{"price":"1.00"}`)))
		require.NoError(t, repo.Store(ctx, storedResponse("buy-1", "100500", "/api/v1/leads/batches", `{"totalValid":2}`)))

		got, err := repo.Get(ctx, "buy-1", "100500", purchasesRoute)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 201, got.ResponseStatus)
		assert.JSONEq(t, `{"price":"1.00"}`, got.ResponseBody)
		assert.False(t, got.CreatedAt.IsZero())

		upload, err := repo.Get(ctx, "buy-1", "100500", "/api/v1/leads/batches")
		require.NoError(t, err)
		require.NotNil(t, upload, "the same key on another route is a separate entry")
		assert.JSONEq(t, `{"totalValid":2}`, upload.ResponseBody)
	})

	t.Run("unknown key", func(t *testing.T) {
		truncateTables(t, database)

		got, err := repo.Get(ctx, "never-used", "1", purchasesRoute)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("first response wins", func(t *testing.T) {
		truncateTables(t, database)

		require.NoError(t, repo.Store(ctx, storedResponse("dup", "1", purchasesRoute, `{"n":1}`)))
		require.NoError(t, repo.Store(ctx, storedResponse("dup", "1", purchasesRoute, `{"n":2}`)))

		got, err := repo.Get(ctx, "dup", "1", purchasesRoute)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.JSONEq(t, `{"n":1}`, got.ResponseBody)
	})

	t.Run("keys do not leak across identities", func(t *testing.T) {
		truncateTables(t, database)

		require.NoError(t, repo.Store(ctx, storedResponse("k", "alice", purchasesRoute, `{}`)))

		got, err := repo.Get(ctx, "k", "bob", purchasesRoute)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("expired keys are purged", func(t *testing.T) {
		truncateTables(t, database)

		now := time.Now()
		stale := storedResponse("stale", "1", purchasesRoute, `{}`)
		stale.CreatedAt = now.Add(-30 * time.Hour)
		fresh := storedResponse("fresh", "1", purchasesRoute, `{}`)
		fresh.CreatedAt = now.Add(-2 * time.Hour)
		require.NoError(t, repo.Store(ctx, stale))
		require.NoError(t, repo.Store(ctx, fresh))

		deleted, err := repo.DeleteOlderThan(ctx, now.Add(-24*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		got, err := repo.Get(ctx, "fresh", "1", purchasesRoute)
		require.NoError(t, err)
		assert.NotNil(t, got)
	})
}
