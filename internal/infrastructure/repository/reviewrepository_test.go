package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolvault/internal/domain/review"
	apperrors "toolvault/internal/shared/errors"
)

func seedReview(t *testing.T, repo *ReviewRepository, toolID, userID uint, rating int, approved bool) *review.Review {
	t.Helper()
	r, err := review.NewReview(toolID, userID, rating, "useful tool", "", "")
	require.NoError(t, err)
	if approved {
		require.NoError(t, r.Approve())
	}
	require.NoError(t, repo.Create(context.Background(), r))
	if approved {
		require.NoError(t, repo.Update(context.Background(), r))
	}
	return r
}

func TestReviewRepository_OneReviewPerUserPerTool(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewReviewRepository(gdb)

	seedReview(t, repo, 1, 42, 5, false)

	second, err := review.NewReview(1, 42, 2, "changed my mind", "", "")
	require.NoError(t, err)
	err = repo.Create(context.Background(), second)
	require.Error(t, err)
	assert.True(t, apperrors.IsDuplicateError(err))

	// Same tool by another user and another tool by the same user both pass.
	seedReview(t, repo, 1, 43, 4, false)
	seedReview(t, repo, 2, 42, 4, false)
}

func TestReviewRepository_ExistsByToolAndUser(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewReviewRepository(gdb)

	seedReview(t, repo, 1, 42, 5, false)

	exists, err := repo.ExistsByToolAndUser(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByToolAndUser(context.Background(), 1, 43)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsByToolAndUser(context.Background(), 2, 42)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestReviewRepository_ListApprovedByTool(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewReviewRepository(gdb)

	seedReview(t, repo, 1, 10, 5, true)
	seedReview(t, repo, 1, 11, 3, false)
	seedReview(t, repo, 2, 10, 4, true)

	reviews, total, err := repo.ListApprovedByTool(context.Background(), 1, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, reviews, 1)
	assert.True(t, reviews[0].IsApproved())
	assert.Equal(t, uint(10), reviews[0].UserID())
}

func TestReviewRepository_ApprovalFlipsVisibility(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewReviewRepository(gdb)

	r := seedReview(t, repo, 1, 10, 4, false)

	_, total, err := repo.ListApprovedByTool(context.Background(), 1, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	require.NoError(t, r.Approve())
	require.NoError(t, repo.Update(context.Background(), r))

	reviews, total, err := repo.ListApprovedByTool(context.Background(), 1, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, r.ID(), reviews[0].ID())
}

func TestReviewRepository_ListPending(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewReviewRepository(gdb)

	seedReview(t, repo, 1, 10, 4, false)
	seedReview(t, repo, 2, 11, 5, true)

	pending, err := repo.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.False(t, pending[0].IsApproved())
}
