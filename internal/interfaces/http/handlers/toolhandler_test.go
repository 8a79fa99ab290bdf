package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolvault/internal/application/catalog/usecases"
	"toolvault/internal/domain/catalog"
	vo "toolvault/internal/domain/catalog/valueobjects"
	"toolvault/internal/interfaces/http/handlers/testutil"
	apperrors "toolvault/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockListToolsUC struct {
	result *usecases.ListToolsResult
	err    error
	query  usecases.ListToolsQuery
}

func (m *mockListToolsUC) Execute(ctx context.Context, query usecases.ListToolsQuery) (*usecases.ListToolsResult, error) {
	m.query = query
	return m.result, m.err
}

type mockFeaturedToolsUC struct {
	result []*catalog.Tool
	err    error
}

func (m *mockFeaturedToolsUC) Execute(ctx context.Context) ([]*catalog.Tool, error) {
	return m.result, m.err
}

type mockGetToolUC struct {
	result *usecases.GetToolResult
	err    error
}

func (m *mockGetToolUC) Execute(ctx context.Context, query usecases.GetToolQuery) (*usecases.GetToolResult, error) {
	return m.result, m.err
}

type mockCreateToolUC struct {
	result *catalog.Tool
	err    error
	cmd    usecases.CreateToolCommand
}

func (m *mockCreateToolUC) Execute(ctx context.Context, cmd usecases.CreateToolCommand) (*catalog.Tool, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockCompareToolsUC struct {
	result []*catalog.Tool
	err    error
	cmd    usecases.CompareToolsCommand
}

func (m *mockCompareToolsUC) Execute(ctx context.Context, cmd usecases.CompareToolsCommand) ([]*catalog.Tool, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockListUserToolsUC struct {
	result []*catalog.Tool
	err    error
}

func (m *mockListUserToolsUC) Execute(ctx context.Context, query usecases.ListUserToolsQuery) ([]*catalog.Tool, error) {
	return m.result, m.err
}

// =====================================================================
// Test helpers
// =====================================================================

func createTestTool(id uint, slug string, status vo.Status) *catalog.Tool {
	now := time.Now().UTC()
	submitter := uint(1)

	return catalog.ReconstructTool(catalog.ToolAttrs{
		ID:               id,
		Name:             "Test Tool",
		Slug:             slug,
		ShortDescription: "A tool for testing",
		LongDescription:  "Long description",
		Website:          "https://example.com",
		PricingModel:     vo.PricingFreemium,
		DifficultyLevel:  vo.DifficultyBeginner,
		KeyFeatures:      []string{"feature one"},
		Status:           status,
		SubmittedBy:      &submitter,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
}

func newTestToolHandler(
	listUC listToolsUseCase,
	featuredUC getFeaturedToolsUseCase,
	getUC getToolUseCase,
	createUC createToolUseCase,
	compareUC compareToolsUseCase,
	myToolsUC listUserToolsUseCase,
) *ToolHandler {
	return NewToolHandler(listUC, featuredUC, getUC, createUC, compareUC, myToolsUC, testutil.NewMockLogger())
}

// =====================================================================
// ListTools
// =====================================================================

func TestToolHandler_ListTools_Success(t *testing.T) {
	listUC := &mockListToolsUC{result: &usecases.ListToolsResult{
		Tools: []*catalog.Tool{createTestTool(1, "test-tool", vo.StatusLive)},
		Total: 1,
	}}
	h := newTestToolHandler(listUC, &mockFeaturedToolsUC{}, &mockGetToolUC{},
		&mockCreateToolUC{}, &mockCompareToolsUC{}, &mockListUserToolsUC{})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tools", nil)

	h.ListTools(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, string(resp.Data), "test-tool")
}

func TestToolHandler_ListTools_PassesFilters(t *testing.T) {
	listUC := &mockListToolsUC{result: &usecases.ListToolsResult{}}
	h := newTestToolHandler(listUC, &mockFeaturedToolsUC{}, &mockGetToolUC{},
		&mockCreateToolUC{}, &mockCompareToolsUC{}, &mockListUserToolsUC{})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tools", nil)
	testutil.SetQueryParams(c, map[string]string{
		"category":        "writing",
		"pricingModel":    "Free",
		"difficultyLevel": "Beginner",
		"search":          "draft",
		"sortBy":          "rating",
		"limit":           "10",
		"offset":          "20",
	})

	h.ListTools(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "writing", listUC.query.CategorySlug)
	assert.Equal(t, "Free", listUC.query.PricingModel)
	assert.Equal(t, "Beginner", listUC.query.DifficultyLevel)
	assert.Equal(t, "draft", listUC.query.Search)
	assert.Equal(t, "rating", listUC.query.SortBy)
	assert.Equal(t, 10, listUC.query.Limit)
	assert.Equal(t, 20, listUC.query.Offset)
}

func TestToolHandler_ListTools_DefaultWindow(t *testing.T) {
	listUC := &mockListToolsUC{result: &usecases.ListToolsResult{}}
	h := newTestToolHandler(listUC, &mockFeaturedToolsUC{}, &mockGetToolUC{},
		&mockCreateToolUC{}, &mockCompareToolsUC{}, &mockListUserToolsUC{})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tools", nil)

	h.ListTools(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 20, listUC.query.Limit)
	assert.Equal(t, 0, listUC.query.Offset)
}

// =====================================================================
// GetFeaturedTools / GetTool
// =====================================================================

func TestToolHandler_GetFeaturedTools_Success(t *testing.T) {
	h := newTestToolHandler(&mockListToolsUC{},
		&mockFeaturedToolsUC{result: []*catalog.Tool{createTestTool(1, "featured-tool", vo.StatusLive)}},
		&mockGetToolUC{}, &mockCreateToolUC{}, &mockCompareToolsUC{}, &mockListUserToolsUC{})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tools/featured", nil)

	h.GetFeaturedTools(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), "featured-tool")
}

func TestToolHandler_GetTool_Success(t *testing.T) {
	h := newTestToolHandler(&mockListToolsUC{}, &mockFeaturedToolsUC{},
		&mockGetToolUC{result: &usecases.GetToolResult{
			Tool:                createTestTool(1, "test-tool", vo.StatusLive),
			LongDescriptionHTML: "<p>Long description</p>",
		}},
		&mockCreateToolUC{}, &mockCompareToolsUC{}, &mockListUserToolsUC{})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tools/test-tool", nil)
	testutil.SetURLParam(c, "slug", "test-tool")

	h.GetTool(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), "test-tool")
}

func TestToolHandler_GetTool_NotFound(t *testing.T) {
	h := newTestToolHandler(&mockListToolsUC{}, &mockFeaturedToolsUC{},
		&mockGetToolUC{err: apperrors.NewNotFoundError("tool not found")},
		&mockCreateToolUC{}, &mockCompareToolsUC{}, &mockListUserToolsUC{})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tools/missing", nil)
	testutil.SetURLParam(c, "slug", "missing")

	h.GetTool(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// CreateTool
// =====================================================================

func TestToolHandler_CreateTool_Success(t *testing.T) {
	createUC := &mockCreateToolUC{result: createTestTool(1, "new-tool", vo.StatusPending)}
	h := newTestToolHandler(&mockListToolsUC{}, &mockFeaturedToolsUC{}, &mockGetToolUC{},
		createUC, &mockCompareToolsUC{}, &mockListUserToolsUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/tools", CreateToolRequest{
		Name:             "New Tool",
		ShortDescription: "A brand new tool",
		Website:          "https://newtool.example.com",
		PricingModel:     "Free",
		DifficultyLevel:  "Beginner",
	})
	testutil.SetAuthContext(c, 7)

	h.CreateTool(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(7), createUC.cmd.SubmitterID)
	assert.Equal(t, "New Tool", createUC.cmd.Name)
}

func TestToolHandler_CreateTool_MissingName(t *testing.T) {
	h := newTestToolHandler(&mockListToolsUC{}, &mockFeaturedToolsUC{}, &mockGetToolUC{},
		&mockCreateToolUC{}, &mockCompareToolsUC{}, &mockListUserToolsUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/tools", map[string]string{
		"website": "https://newtool.example.com",
	})
	testutil.SetAuthContext(c, 7)

	h.CreateTool(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// CompareTools
// =====================================================================

func TestToolHandler_CompareTools_Success(t *testing.T) {
	compareUC := &mockCompareToolsUC{result: []*catalog.Tool{
		createTestTool(1, "tool-a", vo.StatusLive),
		createTestTool(2, "tool-b", vo.StatusLive),
	}}
	h := newTestToolHandler(&mockListToolsUC{}, &mockFeaturedToolsUC{}, &mockGetToolUC{},
		&mockCreateToolUC{}, compareUC, &mockListUserToolsUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/tools/compare", CompareToolsRequest{ToolIDs: []uint{1, 2}})

	h.CompareTools(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []uint{1, 2}, compareUC.cmd.ToolIDs)
	assert.Nil(t, compareUC.cmd.UserID)
}

func TestToolHandler_CompareTools_Authenticated(t *testing.T) {
	compareUC := &mockCompareToolsUC{result: []*catalog.Tool{
		createTestTool(1, "tool-a", vo.StatusLive),
		createTestTool(2, "tool-b", vo.StatusLive),
	}}
	h := newTestToolHandler(&mockListToolsUC{}, &mockFeaturedToolsUC{}, &mockGetToolUC{},
		&mockCreateToolUC{}, compareUC, &mockListUserToolsUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/tools/compare", CompareToolsRequest{ToolIDs: []uint{1, 2}})
	testutil.SetAuthContext(c, 9)

	h.CompareTools(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, compareUC.cmd.UserID)
	assert.Equal(t, uint(9), *compareUC.cmd.UserID)
}

func TestToolHandler_CompareTools_MissingBody(t *testing.T) {
	h := newTestToolHandler(&mockListToolsUC{}, &mockFeaturedToolsUC{}, &mockGetToolUC{},
		&mockCreateToolUC{}, &mockCompareToolsUC{}, &mockListUserToolsUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/tools/compare", nil)

	h.CompareTools(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToolHandler_CompareTools_TooMany(t *testing.T) {
	h := newTestToolHandler(&mockListToolsUC{}, &mockFeaturedToolsUC{}, &mockGetToolUC{},
		&mockCreateToolUC{}, &mockCompareToolsUC{err: apperrors.NewValidationError("at most 3 tools can be compared")},
		&mockListUserToolsUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/tools/compare", CompareToolsRequest{ToolIDs: []uint{1, 2, 3, 4}})

	h.CompareTools(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// ListMyTools
// =====================================================================

func TestToolHandler_ListMyTools_Success(t *testing.T) {
	h := newTestToolHandler(&mockListToolsUC{}, &mockFeaturedToolsUC{}, &mockGetToolUC{},
		&mockCreateToolUC{}, &mockCompareToolsUC{},
		&mockListUserToolsUC{result: []*catalog.Tool{createTestTool(3, "my-tool", vo.StatusPending)}})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tools/mine", nil)
	testutil.SetAuthContext(c, 7)

	h.ListMyTools(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), "my-tool")
}
