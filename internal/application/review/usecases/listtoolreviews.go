package usecases

import (
	"context"
	"fmt"

	"toolvault/internal/domain/catalog"
	"toolvault/internal/domain/review"
	apperrors "toolvault/internal/shared/errors"
	"toolvault/internal/shared/logger"
)

type ListToolReviewsQuery struct {
	ToolSlug string
	Limit    int
	Offset   int
}

type ListToolReviewsResult struct {
	Reviews []*review.Review
	Total   int64
}

type ListToolReviewsUseCase struct {
	reviewRepo review.Repository
	toolRepo   catalog.ToolRepository
	logger     logger.Interface
}

func NewListToolReviewsUseCase(
	reviewRepo review.Repository,
	toolRepo catalog.ToolRepository,
	logger logger.Interface,
) *ListToolReviewsUseCase {
	return &ListToolReviewsUseCase{
		reviewRepo: reviewRepo,
		toolRepo:   toolRepo,
		logger:     logger,
	}
}

// Execute returns approved reviews only; unapproved submissions never leak
// into public listings.
func (uc *ListToolReviewsUseCase) Execute(ctx context.Context, query ListToolReviewsQuery) (*ListToolReviewsResult, error) {
	tool, err := uc.toolRepo.GetBySlug(ctx, query.ToolSlug)
	if err != nil {
		return nil, err
	}
	if !tool.Status().IsLive() {
		return nil, apperrors.NewNotFoundError("tool not found")
	}

	reviews, total, err := uc.reviewRepo.ListApprovedByTool(ctx, tool.ID(), query.Limit, query.Offset)
	if err != nil {
		uc.logger.Errorw("failed to list reviews", "error", err, "tool_id", tool.ID())
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return &ListToolReviewsResult{Reviews: reviews, Total: total}, nil
}
