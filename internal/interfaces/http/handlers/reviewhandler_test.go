package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolvault/internal/application/review/usecases"
	"toolvault/internal/domain/review"
	"toolvault/internal/interfaces/http/handlers/testutil"
	apperrors "toolvault/internal/shared/errors"
)

type mockCreateReviewUC struct {
	result *review.Review
	err    error
	cmd    usecases.CreateReviewCommand
}

func (m *mockCreateReviewUC) Execute(ctx context.Context, cmd usecases.CreateReviewCommand) (*review.Review, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockListToolReviewsUC struct {
	result *usecases.ListToolReviewsResult
	err    error
	query  usecases.ListToolReviewsQuery
}

func (m *mockListToolReviewsUC) Execute(ctx context.Context, query usecases.ListToolReviewsQuery) (*usecases.ListToolReviewsResult, error) {
	m.query = query
	return m.result, m.err
}

func createTestReview(id uint, approved bool) *review.Review {
	now := time.Now().UTC()
	return review.ReconstructReview(id, 1, 2, 4, "solid experience", "", "", approved, now, now)
}

func TestReviewHandler_ListToolReviews_Success(t *testing.T) {
	listUC := &mockListToolReviewsUC{result: &usecases.ListToolReviewsResult{
		Reviews: []*review.Review{createTestReview(1, true)},
		Total:   1,
	}}
	h := NewReviewHandler(&mockCreateReviewUC{}, listUC, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tools/test-tool/reviews", nil)
	testutil.SetURLParam(c, "slug", "test-tool")

	h.ListToolReviews(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "test-tool", listUC.query.ToolSlug)
	assert.Equal(t, 20, listUC.query.Limit)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, string(resp.Data), "solid experience")
}

func TestReviewHandler_ListToolReviews_ToolNotFound(t *testing.T) {
	h := NewReviewHandler(&mockCreateReviewUC{},
		&mockListToolReviewsUC{err: apperrors.NewNotFoundError("tool not found")},
		testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tools/missing/reviews", nil)
	testutil.SetURLParam(c, "slug", "missing")

	h.ListToolReviews(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReviewHandler_CreateReview_Success(t *testing.T) {
	createUC := &mockCreateReviewUC{result: createTestReview(1, false)}
	h := NewReviewHandler(createUC, &mockListToolReviewsUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/tools/test-tool/reviews", CreateReviewRequest{
		Rating:     4,
		Experience: "solid experience",
	})
	testutil.SetURLParam(c, "slug", "test-tool")
	testutil.SetAuthContext(c, 2)

	h.CreateReview(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "test-tool", createUC.cmd.ToolSlug)
	assert.Equal(t, uint(2), createUC.cmd.UserID)
	assert.Equal(t, 4, createUC.cmd.Rating)
}

func TestReviewHandler_CreateReview_RatingOutOfRange(t *testing.T) {
	h := NewReviewHandler(&mockCreateReviewUC{}, &mockListToolReviewsUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/tools/test-tool/reviews", map[string]interface{}{
		"rating":     6,
		"experience": "too good",
	})
	testutil.SetURLParam(c, "slug", "test-tool")
	testutil.SetAuthContext(c, 2)

	h.CreateReview(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewHandler_CreateReview_MissingExperience(t *testing.T) {
	h := NewReviewHandler(&mockCreateReviewUC{}, &mockListToolReviewsUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/tools/test-tool/reviews", map[string]interface{}{
		"rating": 4,
	})
	testutil.SetURLParam(c, "slug", "test-tool")
	testutil.SetAuthContext(c, 2)

	h.CreateReview(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewHandler_CreateReview_DuplicateForTool(t *testing.T) {
	h := NewReviewHandler(
		&mockCreateReviewUC{err: apperrors.NewConflictError("you have already reviewed this tool")},
		&mockListToolReviewsUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/tools/test-tool/reviews", CreateReviewRequest{
		Rating:     4,
		Experience: "again",
	})
	testutil.SetURLParam(c, "slug", "test-tool")
	testutil.SetAuthContext(c, 2)

	h.CreateReview(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}
