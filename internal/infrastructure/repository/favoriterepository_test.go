package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolvault/internal/domain/favorite"
)

func TestFavoriteRepository_AddIsIdempotent(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewFavoriteRepository(gdb)

	require.NoError(t, repo.Add(context.Background(), favorite.NewFavorite(1, 10)))
	require.NoError(t, repo.Add(context.Background(), favorite.NewFavorite(1, 10)))
	require.NoError(t, repo.Add(context.Background(), favorite.NewFavorite(1, 11)))

	favs, err := repo.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, favs, 2)
}

func TestFavoriteRepository_RemoveIsIdempotent(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewFavoriteRepository(gdb)

	require.NoError(t, repo.Add(context.Background(), favorite.NewFavorite(1, 10)))
	require.NoError(t, repo.Remove(context.Background(), 1, 10))
	require.NoError(t, repo.Remove(context.Background(), 1, 10), "second remove is a no-op")

	exists, err := repo.Exists(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFavoriteRepository_ScopedToUser(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewFavoriteRepository(gdb)

	require.NoError(t, repo.Add(context.Background(), favorite.NewFavorite(1, 10)))
	require.NoError(t, repo.Add(context.Background(), favorite.NewFavorite(2, 10)))

	favs, err := repo.ListByUser(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, uint(2), favs[0].UserID())
}
