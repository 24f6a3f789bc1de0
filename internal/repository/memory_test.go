package repository

import (
	"context"
	"testing"
	"time"

	"github.com/rocketscienceinc/tabletop-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Stored session is a copy", func(t *testing.T) {
		// Given: a stored session
		repo := NewMemorySessionRepository(0)
		session := newSession("abc")
		require.NoError(t, repo.CreateOrUpdate(ctx, session))

		// When: the caller keeps changing its value
		session.Cursor = 0

		// Then: the stored one is untouched
		retrieved, err := repo.GetByID(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, 1, retrieved.Cursor)
	})

	t.Run("Expired session is gone", func(t *testing.T) {
		repo := NewMemorySessionRepository(time.Minute)
		now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		repo.(*memorySession).now = func() time.Time { return now }

		require.NoError(t, repo.CreateOrUpdate(ctx, newSession("abc")))

		now = now.Add(59 * time.Second)
		_, err := repo.GetByID(ctx, "abc")
		require.NoError(t, err)

		now = now.Add(time.Second)
		_, err = repo.GetByID(ctx, "abc")
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		repo := NewMemorySessionRepository(0)
		require.NoError(t, repo.CreateOrUpdate(ctx, newSession("abc")))

		require.NoError(t, repo.DeleteByID(ctx, "abc"))
		require.ErrorIs(t, repo.DeleteByID(ctx, "abc"), apperror.ErrSessionNotFound)
	})
}
