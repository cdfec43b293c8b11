package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offerly/console/internal/console"
)

func TestSessionRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()

	old := time.Date(2025, 9, 15, 8, 0, 0, 0, time.UTC)
	recent := old.Add(time.Hour)
	stale := console.NewSession("stale", console.Options{Now: func() time.Time { return old }})
	fresh := console.NewSession("fresh", console.Options{Now: func() time.Time { return recent }})

	require.NoError(t, repo.Save(ctx, stale))
	require.NoError(t, repo.Save(ctx, fresh))

	got, err := repo.GetByID(ctx, "fresh")
	require.NoError(t, err)
	assert.Same(t, fresh, got)

	n, err := repo.DeleteIdleSince(ctx, old.Add(30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = repo.GetByID(ctx, "stale")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, repo.Delete(ctx, "fresh"))
	assert.ErrorIs(t, repo.Delete(ctx, "fresh"), ErrSessionNotFound)
}
