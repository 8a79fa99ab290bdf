package usecases

import (
	"context"
	"fmt"

	"toolvault/internal/domain/review"
	apperrors "toolvault/internal/shared/errors"
	"toolvault/internal/shared/logger"
)

type ApproveReviewCommand struct {
	ReviewID uint
}

type ApproveReviewUseCase struct {
	reviewRepo review.Repository
	logger     logger.Interface
}

func NewApproveReviewUseCase(reviewRepo review.Repository, logger logger.Interface) *ApproveReviewUseCase {
	return &ApproveReviewUseCase{reviewRepo: reviewRepo, logger: logger}
}

func (uc *ApproveReviewUseCase) Execute(ctx context.Context, cmd ApproveReviewCommand) (*review.Review, error) {
	r, err := uc.reviewRepo.GetByID(ctx, cmd.ReviewID)
	if err != nil {
		return nil, err
	}

	if err := r.Approve(); err != nil {
		return nil, apperrors.NewConflictError(err.Error())
	}

	if err := uc.reviewRepo.Update(ctx, r); err != nil {
		uc.logger.Errorw("failed to save approved review", "error", err, "review_id", cmd.ReviewID)
		return nil, fmt.Errorf("failed to save review: %w", err)
	}

	uc.logger.Infow("review approved", "review_id", r.ID(), "tool_id", r.ToolID())
	return r, nil
}
