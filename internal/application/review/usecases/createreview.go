package usecases

import (
	"context"
	"fmt"

	"toolvault/internal/domain/catalog"
	"toolvault/internal/domain/review"
	apperrors "toolvault/internal/shared/errors"
	"toolvault/internal/shared/logger"
	"toolvault/internal/shared/services/markdown"
)

// CreateReviewCommand submits a review. Approval is not a caller input; the
// review stays hidden until an admin approves it.
type CreateReviewCommand struct {
	ToolSlug     string
	UserID       uint
	Rating       int
	Experience   string
	Dislikes     string
	Improvements string
}

type CreateReviewUseCase struct {
	reviewRepo review.Repository
	toolRepo   catalog.ToolRepository
	markdown   markdown.Service
	logger     logger.Interface
}

func NewCreateReviewUseCase(
	reviewRepo review.Repository,
	toolRepo catalog.ToolRepository,
	markdown markdown.Service,
	logger logger.Interface,
) *CreateReviewUseCase {
	return &CreateReviewUseCase{
		reviewRepo: reviewRepo,
		toolRepo:   toolRepo,
		markdown:   markdown,
		logger:     logger,
	}
}

func (uc *CreateReviewUseCase) Execute(ctx context.Context, cmd CreateReviewCommand) (*review.Review, error) {
	tool, err := uc.toolRepo.GetBySlug(ctx, cmd.ToolSlug)
	if err != nil {
		return nil, err
	}
	if !tool.Status().IsLive() {
		return nil, apperrors.NewNotFoundError("tool not found")
	}

	exists, err := uc.reviewRepo.ExistsByToolAndUser(ctx, tool.ID(), cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to check existing review", "error", err, "tool_id", tool.ID())
		return nil, fmt.Errorf("failed to check existing review: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("you have already reviewed this tool")
	}

	r, err := review.NewReview(
		tool.ID(),
		cmd.UserID,
		cmd.Rating,
		uc.markdown.Sanitize(cmd.Experience),
		uc.markdown.Sanitize(cmd.Dislikes),
		uc.markdown.Sanitize(cmd.Improvements),
	)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.reviewRepo.Create(ctx, r); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("you have already reviewed this tool")
		}
		uc.logger.Errorw("failed to save review", "error", err, "tool_id", tool.ID())
		return nil, fmt.Errorf("failed to save review: %w", err)
	}

	uc.logger.Infow("review submitted", "review_id", r.ID(), "tool_id", tool.ID(), "user_id", cmd.UserID)
	return r, nil
}
