package usecases

import (
	"context"
	"fmt"

	"toolvault/internal/domain/review"
	"toolvault/internal/shared/logger"
)

// ListPendingReviewsUseCase feeds the admin review moderation queue.
type ListPendingReviewsUseCase struct {
	reviewRepo review.Repository
	logger     logger.Interface
}

func NewListPendingReviewsUseCase(reviewRepo review.Repository, logger logger.Interface) *ListPendingReviewsUseCase {
	return &ListPendingReviewsUseCase{reviewRepo: reviewRepo, logger: logger}
}

func (uc *ListPendingReviewsUseCase) Execute(ctx context.Context) ([]*review.Review, error) {
	reviews, err := uc.reviewRepo.ListPending(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list pending reviews", "error", err)
		return nil, fmt.Errorf("failed to list pending reviews: %w", err)
	}
	return reviews, nil
}
