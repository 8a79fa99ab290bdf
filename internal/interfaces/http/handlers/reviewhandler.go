package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"toolvault/internal/application/review/dto"
	reviewusecases "toolvault/internal/application/review/usecases"
	"toolvault/internal/domain/review"
	"toolvault/internal/shared/constants"
	"toolvault/internal/shared/logger"
	"toolvault/internal/shared/utils"
)

type createReviewUseCase interface {
	Execute(ctx context.Context, cmd reviewusecases.CreateReviewCommand) (*review.Review, error)
}

type listToolReviewsUseCase interface {
	Execute(ctx context.Context, query reviewusecases.ListToolReviewsQuery) (*reviewusecases.ListToolReviewsResult, error)
}

type ReviewHandler struct {
	createUseCase createReviewUseCase
	listUseCase   listToolReviewsUseCase
	logger        logger.Interface
}

func NewReviewHandler(
	createUC createReviewUseCase,
	listUC listToolReviewsUseCase,
	logger logger.Interface,
) *ReviewHandler {
	return &ReviewHandler{
		createUseCase: createUC,
		listUseCase:   listUC,
		logger:        logger,
	}
}

type CreateReviewRequest struct {
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Experience   string `json:"experience" binding:"required"`
	Dislikes     string `json:"dislikes"`
	Improvements string `json:"improvements"`
}

type ReviewListResponse struct {
	Reviews []*dto.ReviewDTO `json:"reviews"`
	Total   int64            `json:"total"`
}

// ListToolReviews godoc
// @Summary List approved reviews for a tool
// @Tags reviews
// @Produce json
// @Param slug path string true "Tool slug"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/tools/{slug}/reviews [get]
func (h *ReviewHandler) ListToolReviews(c *gin.Context) {
	window := utils.ParseListWindow(c)

	result, err := h.listUseCase.Execute(c.Request.Context(), reviewusecases.ListToolReviewsQuery{
		ToolSlug: c.Param("slug"),
		Limit:    window.Limit,
		Offset:   window.Offset,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", ReviewListResponse{
		Reviews: dto.ReviewsToDTO(result.Reviews),
		Total:   result.Total,
	})
}

// CreateReview godoc
// @Summary Submit a review
// @Description Reviews stay hidden until approved by a moderator
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Tool slug"
// @Param request body CreateReviewRequest true "Review"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/tools/{slug}/reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	r, err := h.createUseCase.Execute(c.Request.Context(), reviewusecases.CreateReviewCommand{
		ToolSlug:     c.Param("slug"),
		UserID:       c.GetUint(constants.ContextKeyUserID),
		Rating:       req.Rating,
		Experience:   req.Experience,
		Dislikes:     req.Dislikes,
		Improvements: req.Improvements,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "review submitted and awaiting approval", dto.ReviewToDTO(r))
}
