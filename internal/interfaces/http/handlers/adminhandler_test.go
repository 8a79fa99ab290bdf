package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogusecases "toolvault/internal/application/catalog/usecases"
	reviewusecases "toolvault/internal/application/review/usecases"
	"toolvault/internal/domain/catalog"
	vo "toolvault/internal/domain/catalog/valueobjects"
	"toolvault/internal/domain/review"
	"toolvault/internal/interfaces/http/handlers/testutil"
	apperrors "toolvault/internal/shared/errors"
)

type mockListPendingToolsUC struct {
	result []*catalog.Tool
	err    error
}

func (m *mockListPendingToolsUC) Execute(ctx context.Context) ([]*catalog.Tool, error) {
	return m.result, m.err
}

type mockApproveToolUC struct {
	result *catalog.Tool
	err    error
	cmd    catalogusecases.ApproveToolCommand
}

func (m *mockApproveToolUC) Execute(ctx context.Context, cmd catalogusecases.ApproveToolCommand) (*catalog.Tool, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockRejectToolUC struct {
	result *catalog.Tool
	err    error
	cmd    catalogusecases.RejectToolCommand
}

func (m *mockRejectToolUC) Execute(ctx context.Context, cmd catalogusecases.RejectToolCommand) (*catalog.Tool, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockFeatureToolUC struct {
	result *catalog.Tool
	err    error
	cmd    catalogusecases.FeatureToolCommand
}

func (m *mockFeatureToolUC) Execute(ctx context.Context, cmd catalogusecases.FeatureToolCommand) (*catalog.Tool, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockListPendingReviewsUC struct {
	result []*review.Review
	err    error
}

func (m *mockListPendingReviewsUC) Execute(ctx context.Context) ([]*review.Review, error) {
	return m.result, m.err
}

type mockApproveReviewUC struct {
	result *review.Review
	err    error
	cmd    reviewusecases.ApproveReviewCommand
}

func (m *mockApproveReviewUC) Execute(ctx context.Context, cmd reviewusecases.ApproveReviewCommand) (*review.Review, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockCreateCategoryUC struct {
	result *catalog.Category
	err    error
	cmd    catalogusecases.CreateCategoryCommand
}

func (m *mockCreateCategoryUC) Execute(ctx context.Context, cmd catalogusecases.CreateCategoryCommand) (*catalog.Category, error) {
	m.cmd = cmd
	return m.result, m.err
}

type adminMocks struct {
	pendingTools   *mockListPendingToolsUC
	approveTool    *mockApproveToolUC
	rejectTool     *mockRejectToolUC
	featureTool    *mockFeatureToolUC
	pendingReviews *mockListPendingReviewsUC
	approveReview  *mockApproveReviewUC
	createCategory *mockCreateCategoryUC
}

func newTestAdminHandler() (*AdminHandler, *adminMocks) {
	m := &adminMocks{
		pendingTools:   &mockListPendingToolsUC{},
		approveTool:    &mockApproveToolUC{},
		rejectTool:     &mockRejectToolUC{},
		featureTool:    &mockFeatureToolUC{},
		pendingReviews: &mockListPendingReviewsUC{},
		approveReview:  &mockApproveReviewUC{},
		createCategory: &mockCreateCategoryUC{},
	}
	h := NewAdminHandler(
		m.pendingTools, m.approveTool, m.rejectTool, m.featureTool,
		m.pendingReviews, m.approveReview, m.createCategory,
		testutil.NewMockLogger(),
	)
	return h, m
}

func TestAdminHandler_ListPendingTools_Success(t *testing.T) {
	h, m := newTestAdminHandler()
	m.pendingTools.result = []*catalog.Tool{createTestTool(1, "pending-tool", vo.StatusPending)}

	c, w := testutil.NewTestContext(http.MethodGet, "/api/admin/tools/pending", nil)
	testutil.SetAdminContext(c, 1)

	h.ListPendingTools(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), "pending-tool")
}

func TestAdminHandler_ApproveTool_Success(t *testing.T) {
	h, m := newTestAdminHandler()
	m.approveTool.result = createTestTool(3, "approved-tool", vo.StatusLive)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/tools/3/approve", nil)
	testutil.SetURLParam(c, "id", "3")
	testutil.SetAdminContext(c, 1)

	h.ApproveTool(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(3), m.approveTool.cmd.ToolID)
}

func TestAdminHandler_ApproveTool_BadID(t *testing.T) {
	h, _ := newTestAdminHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/tools/abc/approve", nil)
	testutil.SetURLParam(c, "id", "abc")
	testutil.SetAdminContext(c, 1)

	h.ApproveTool(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminHandler_ApproveTool_NotPending(t *testing.T) {
	h, m := newTestAdminHandler()
	m.approveTool.err = apperrors.NewConflictError("tool is not pending")

	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/tools/3/approve", nil)
	testutil.SetURLParam(c, "id", "3")
	testutil.SetAdminContext(c, 1)

	h.ApproveTool(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAdminHandler_RejectTool_Success(t *testing.T) {
	h, m := newTestAdminHandler()
	m.rejectTool.result = createTestTool(4, "rejected-tool", vo.StatusRejected)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/tools/4/reject", nil)
	testutil.SetURLParam(c, "id", "4")
	testutil.SetAdminContext(c, 1)

	h.RejectTool(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(4), m.rejectTool.cmd.ToolID)
}

func TestAdminHandler_FeatureTool_Success(t *testing.T) {
	h, m := newTestAdminHandler()
	m.featureTool.result = createTestTool(5, "featured-tool", vo.StatusLive)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/tools/5/feature", map[string]bool{
		"featured": true,
	})
	testutil.SetURLParam(c, "id", "5")
	testutil.SetAdminContext(c, 1)

	h.FeatureTool(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(5), m.featureTool.cmd.ToolID)
	assert.True(t, m.featureTool.cmd.Featured)
}

func TestAdminHandler_FeatureTool_MissingFlag(t *testing.T) {
	h, _ := newTestAdminHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/tools/5/feature", map[string]string{})
	testutil.SetURLParam(c, "id", "5")
	testutil.SetAdminContext(c, 1)

	h.FeatureTool(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminHandler_ListPendingReviews_Success(t *testing.T) {
	h, m := newTestAdminHandler()
	m.pendingReviews.result = []*review.Review{createTestReview(1, false)}

	c, w := testutil.NewTestContext(http.MethodGet, "/api/admin/reviews/pending", nil)
	testutil.SetAdminContext(c, 1)

	h.ListPendingReviews(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), "solid experience")
}

func TestAdminHandler_ApproveReview_Success(t *testing.T) {
	h, m := newTestAdminHandler()
	m.approveReview.result = createTestReview(7, true)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/reviews/7/approve", nil)
	testutil.SetURLParam(c, "id", "7")
	testutil.SetAdminContext(c, 1)

	h.ApproveReview(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), m.approveReview.cmd.ReviewID)
}

func TestAdminHandler_ApproveReview_AlreadyApproved(t *testing.T) {
	h, m := newTestAdminHandler()
	m.approveReview.err = apperrors.NewConflictError("review is already approved")

	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/reviews/7/approve", nil)
	testutil.SetURLParam(c, "id", "7")
	testutil.SetAdminContext(c, 1)

	h.ApproveReview(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAdminHandler_CreateCategory_Success(t *testing.T) {
	h, m := newTestAdminHandler()
	now := time.Now().UTC()
	m.createCategory.result = catalog.ReconstructCategory(1, "Writing", "writing", "Writing assistants", "pen", "#336699", now, now)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/categories", CreateCategoryRequest{
		Name:        "Writing",
		Description: "Writing assistants",
		Icon:        "pen",
		Color:       "#336699",
	})
	testutil.SetAdminContext(c, 1)

	h.CreateCategory(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Writing", m.createCategory.cmd.Name)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), "writing")
}

func TestAdminHandler_CreateCategory_DuplicateName(t *testing.T) {
	h, m := newTestAdminHandler()
	m.createCategory.err = apperrors.NewConflictError("category already exists")

	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/categories", CreateCategoryRequest{
		Name: "Writing",
	})
	testutil.SetAdminContext(c, 1)

	h.CreateCategory(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}
