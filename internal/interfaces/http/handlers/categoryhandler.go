package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"toolvault/internal/application/catalog/dto"
	catalogusecases "toolvault/internal/application/catalog/usecases"
	"toolvault/internal/domain/catalog"
	"toolvault/internal/shared/logger"
	"toolvault/internal/shared/utils"
)

type listCategoriesUseCase interface {
	Execute(ctx context.Context) ([]*catalog.Category, error)
}

type getCategoryUseCase interface {
	Execute(ctx context.Context, query catalogusecases.GetCategoryQuery) (*catalog.Category, error)
}

type CategoryHandler struct {
	listUseCase listCategoriesUseCase
	getUseCase  getCategoryUseCase
	logger      logger.Interface
}

func NewCategoryHandler(
	listUC listCategoriesUseCase,
	getUC getCategoryUseCase,
	logger logger.Interface,
) *CategoryHandler {
	return &CategoryHandler{
		listUseCase: listUC,
		getUseCase:  getUC,
		logger:      logger,
	}
}

// ListCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.CategoriesToDTO(categories))
}

// GetCategory godoc
// @Summary Get a category by slug
// @Tags categories
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/categories/{slug} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	category, err := h.getUseCase.Execute(c.Request.Context(), catalogusecases.GetCategoryQuery{
		Slug: c.Param("slug"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto.CategoryToDTO(category))
}
