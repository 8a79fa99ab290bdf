package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"toolvault/internal/application/catalog/dto"
	favoriteusecases "toolvault/internal/application/favorite/usecases"
	"toolvault/internal/domain/catalog"
	"toolvault/internal/shared/constants"
	"toolvault/internal/shared/logger"
	"toolvault/internal/shared/utils"
)

type addFavoriteUseCase interface {
	Execute(ctx context.Context, cmd favoriteusecases.AddFavoriteCommand) error
}

type removeFavoriteUseCase interface {
	Execute(ctx context.Context, cmd favoriteusecases.RemoveFavoriteCommand) error
}

type listFavoritesUseCase interface {
	Execute(ctx context.Context, query favoriteusecases.ListFavoritesQuery) ([]*catalog.Tool, error)
}

type FavoriteHandler struct {
	addUseCase    addFavoriteUseCase
	removeUseCase removeFavoriteUseCase
	listUseCase   listFavoritesUseCase
	logger        logger.Interface
}

func NewFavoriteHandler(
	addUC addFavoriteUseCase,
	removeUC removeFavoriteUseCase,
	listUC listFavoritesUseCase,
	logger logger.Interface,
) *FavoriteHandler {
	return &FavoriteHandler{
		addUseCase:    addUC,
		removeUseCase: removeUC,
		listUseCase:   listUC,
		logger:        logger,
	}
}

type AddFavoriteRequest struct {
	ToolID uint `json:"toolId" binding:"required"`
}

// AddFavorite godoc
// @Summary Favorite a tool
// @Description Adding an already-favorited tool is a no-op
// @Tags favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddFavoriteRequest true "Tool to favorite"
// @Success 201 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/user/favorites [post]
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.addUseCase.Execute(c.Request.Context(), favoriteusecases.AddFavoriteCommand{
		UserID: c.GetUint(constants.ContextKeyUserID),
		ToolID: req.ToolID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "tool added to favorites", nil)
}

// RemoveFavorite godoc
// @Summary Unfavorite a tool
// @Description Removing an absent favorite is a no-op
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param toolId path int true "Tool id"
// @Success 204
// @Router /api/user/favorites/{toolId} [delete]
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	toolID, err := strconv.ParseUint(c.Param("toolId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "tool id must be a number")
		return
	}

	err = h.removeUseCase.Execute(c.Request.Context(), favoriteusecases.RemoveFavoriteCommand{
		UserID: c.GetUint(constants.ContextKeyUserID),
		ToolID: uint(toolID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListFavorites godoc
// @Summary List the caller's favorite tools
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /api/user/favorites [get]
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	tools, err := h.listUseCase.Execute(c.Request.Context(), favoriteusecases.ListFavoritesQuery{
		UserID: c.GetUint(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.ToolsToSummaryDTO(tools))
}
