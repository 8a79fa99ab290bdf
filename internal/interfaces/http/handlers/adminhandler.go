package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	catalogdto "toolvault/internal/application/catalog/dto"
	catalogusecases "toolvault/internal/application/catalog/usecases"
	reviewdto "toolvault/internal/application/review/dto"
	reviewusecases "toolvault/internal/application/review/usecases"
	"toolvault/internal/domain/catalog"
	"toolvault/internal/domain/review"
	"toolvault/internal/shared/logger"
	"toolvault/internal/shared/utils"
)

type listPendingToolsUseCase interface {
	Execute(ctx context.Context) ([]*catalog.Tool, error)
}

type approveToolUseCase interface {
	Execute(ctx context.Context, cmd catalogusecases.ApproveToolCommand) (*catalog.Tool, error)
}

type rejectToolUseCase interface {
	Execute(ctx context.Context, cmd catalogusecases.RejectToolCommand) (*catalog.Tool, error)
}

type featureToolUseCase interface {
	Execute(ctx context.Context, cmd catalogusecases.FeatureToolCommand) (*catalog.Tool, error)
}

type listPendingReviewsUseCase interface {
	Execute(ctx context.Context) ([]*review.Review, error)
}

type approveReviewUseCase interface {
	Execute(ctx context.Context, cmd reviewusecases.ApproveReviewCommand) (*review.Review, error)
}

type createCategoryUseCase interface {
	Execute(ctx context.Context, cmd catalogusecases.CreateCategoryCommand) (*catalog.Category, error)
}

type AdminHandler struct {
	pendingToolsUC   listPendingToolsUseCase
	approveToolUC    approveToolUseCase
	rejectToolUC     rejectToolUseCase
	featureToolUC    featureToolUseCase
	pendingReviewsUC listPendingReviewsUseCase
	approveReviewUC  approveReviewUseCase
	createCategoryUC createCategoryUseCase
	logger           logger.Interface
}

func NewAdminHandler(
	pendingToolsUC listPendingToolsUseCase,
	approveToolUC approveToolUseCase,
	rejectToolUC rejectToolUseCase,
	featureToolUC featureToolUseCase,
	pendingReviewsUC listPendingReviewsUseCase,
	approveReviewUC approveReviewUseCase,
	createCategoryUC createCategoryUseCase,
	logger logger.Interface,
) *AdminHandler {
	return &AdminHandler{
		pendingToolsUC:   pendingToolsUC,
		approveToolUC:    approveToolUC,
		rejectToolUC:     rejectToolUC,
		featureToolUC:    featureToolUC,
		pendingReviewsUC: pendingReviewsUC,
		approveReviewUC:  approveReviewUC,
		createCategoryUC: createCategoryUC,
		logger:           logger,
	}
}

type FeatureToolRequest struct {
	Featured *bool `json:"featured" binding:"required"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// ListPendingTools godoc
// @Summary List tool submissions awaiting moderation
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/admin/tools/pending [get]
func (h *AdminHandler) ListPendingTools(c *gin.Context) {
	tools, err := h.pendingToolsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", catalogdto.ToolsToSummaryDTO(tools))
}

// ApproveTool godoc
// @Summary Approve a pending tool submission
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tool id"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/admin/tools/{id}/approve [post]
func (h *AdminHandler) ApproveTool(c *gin.Context) {
	toolID, ok := pathID(c, "id")
	if !ok {
		return
	}

	tool, err := h.approveToolUC.Execute(c.Request.Context(), catalogusecases.ApproveToolCommand{
		ToolID: toolID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "tool approved", catalogdto.ToolToSummaryDTO(tool))
}

// RejectTool godoc
// @Summary Reject a pending tool submission
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tool id"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/admin/tools/{id}/reject [post]
func (h *AdminHandler) RejectTool(c *gin.Context) {
	toolID, ok := pathID(c, "id")
	if !ok {
		return
	}

	tool, err := h.rejectToolUC.Execute(c.Request.Context(), catalogusecases.RejectToolCommand{
		ToolID: toolID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "tool rejected", catalogdto.ToolToSummaryDTO(tool))
}

// FeatureTool godoc
// @Summary Set or clear a tool's featured flag
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Tool id"
// @Param request body FeatureToolRequest true "Featured flag"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/admin/tools/{id}/feature [post]
func (h *AdminHandler) FeatureTool(c *gin.Context) {
	toolID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req FeatureToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	tool, err := h.featureToolUC.Execute(c.Request.Context(), catalogusecases.FeatureToolCommand{
		ToolID:   toolID,
		Featured: *req.Featured,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "tool updated", catalogdto.ToolToSummaryDTO(tool))
}

// ListPendingReviews godoc
// @Summary List reviews awaiting moderation
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/admin/reviews/pending [get]
func (h *AdminHandler) ListPendingReviews(c *gin.Context) {
	reviews, err := h.pendingReviewsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", reviewdto.ReviewsToDTO(reviews))
}

// ApproveReview godoc
// @Summary Approve a pending review
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review id"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/admin/reviews/{id}/approve [post]
func (h *AdminHandler) ApproveReview(c *gin.Context) {
	reviewID, ok := pathID(c, "id")
	if !ok {
		return
	}

	r, err := h.approveReviewUC.Execute(c.Request.Context(), reviewusecases.ApproveReviewCommand{
		ReviewID: reviewID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "review approved", reviewdto.ReviewToDTO(r))
}

// CreateCategory godoc
// @Summary Create a category
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCategoryRequest true "Category"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/admin/categories [post]
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.createCategoryUC.Execute(c.Request.Context(), catalogusecases.CreateCategoryCommand{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "category created", catalogdto.CategoryToDTO(category))
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, name+" must be a number")
		return 0, false
	}
	return uint(id), true
}
