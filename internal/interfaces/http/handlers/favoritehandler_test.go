package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolvault/internal/application/favorite/usecases"
	"toolvault/internal/domain/catalog"
	vo "toolvault/internal/domain/catalog/valueobjects"
	"toolvault/internal/interfaces/http/handlers/testutil"
	apperrors "toolvault/internal/shared/errors"
)

type mockAddFavoriteUC struct {
	err error
	cmd usecases.AddFavoriteCommand
}

func (m *mockAddFavoriteUC) Execute(ctx context.Context, cmd usecases.AddFavoriteCommand) error {
	m.cmd = cmd
	return m.err
}

type mockRemoveFavoriteUC struct {
	err error
	cmd usecases.RemoveFavoriteCommand
}

func (m *mockRemoveFavoriteUC) Execute(ctx context.Context, cmd usecases.RemoveFavoriteCommand) error {
	m.cmd = cmd
	return m.err
}

type mockListFavoritesUC struct {
	result []*catalog.Tool
	err    error
}

func (m *mockListFavoritesUC) Execute(ctx context.Context, query usecases.ListFavoritesQuery) ([]*catalog.Tool, error) {
	return m.result, m.err
}

func TestFavoriteHandler_AddFavorite_Success(t *testing.T) {
	addUC := &mockAddFavoriteUC{}
	h := NewFavoriteHandler(addUC, &mockRemoveFavoriteUC{}, &mockListFavoritesUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/user/favorites", AddFavoriteRequest{ToolID: 5})
	testutil.SetAuthContext(c, 2)

	h.AddFavorite(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(2), addUC.cmd.UserID)
	assert.Equal(t, uint(5), addUC.cmd.ToolID)
}

func TestFavoriteHandler_AddFavorite_ToolNotFound(t *testing.T) {
	h := NewFavoriteHandler(
		&mockAddFavoriteUC{err: apperrors.NewNotFoundError("tool not found")},
		&mockRemoveFavoriteUC{}, &mockListFavoritesUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/user/favorites", AddFavoriteRequest{ToolID: 99})
	testutil.SetAuthContext(c, 2)

	h.AddFavorite(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFavoriteHandler_AddFavorite_MissingToolID(t *testing.T) {
	h := NewFavoriteHandler(&mockAddFavoriteUC{}, &mockRemoveFavoriteUC{}, &mockListFavoritesUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/user/favorites", map[string]string{})
	testutil.SetAuthContext(c, 2)

	h.AddFavorite(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFavoriteHandler_RemoveFavorite_Success(t *testing.T) {
	removeUC := &mockRemoveFavoriteUC{}
	h := NewFavoriteHandler(&mockAddFavoriteUC{}, removeUC, &mockListFavoritesUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/user/favorites/5", nil)
	testutil.SetURLParam(c, "toolId", "5")
	testutil.SetAuthContext(c, 2)

	h.RemoveFavorite(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, uint(2), removeUC.cmd.UserID)
	assert.Equal(t, uint(5), removeUC.cmd.ToolID)
}

func TestFavoriteHandler_RemoveFavorite_BadID(t *testing.T) {
	h := NewFavoriteHandler(&mockAddFavoriteUC{}, &mockRemoveFavoriteUC{}, &mockListFavoritesUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/user/favorites/abc", nil)
	testutil.SetURLParam(c, "toolId", "abc")
	testutil.SetAuthContext(c, 2)

	h.RemoveFavorite(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFavoriteHandler_ListFavorites_Success(t *testing.T) {
	h := NewFavoriteHandler(&mockAddFavoriteUC{}, &mockRemoveFavoriteUC{},
		&mockListFavoritesUC{result: []*catalog.Tool{createTestTool(5, "saved-tool", vo.StatusLive)}},
		testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/user/favorites", nil)
	testutil.SetAuthContext(c, 2)

	h.ListFavorites(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), "saved-tool")
}
