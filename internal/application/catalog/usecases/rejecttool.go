package usecases

import (
	"context"
	"fmt"

	"toolvault/internal/domain/catalog"
	"toolvault/internal/domain/user"
	apperrors "toolvault/internal/shared/errors"
	"toolvault/internal/shared/logger"
)

type RejectToolCommand struct {
	ToolID uint
}

type RejectToolUseCase struct {
	toolRepo catalog.ToolRepository
	userRepo user.Repository
	mailer   ModerationMailer
	logger   logger.Interface
}

func NewRejectToolUseCase(
	toolRepo catalog.ToolRepository,
	userRepo user.Repository,
	mailer ModerationMailer,
	logger logger.Interface,
) *RejectToolUseCase {
	return &RejectToolUseCase{
		toolRepo: toolRepo,
		userRepo: userRepo,
		mailer:   mailer,
		logger:   logger,
	}
}

func (uc *RejectToolUseCase) Execute(ctx context.Context, cmd RejectToolCommand) (*catalog.Tool, error) {
	tool, err := uc.toolRepo.GetByID(ctx, cmd.ToolID)
	if err != nil {
		return nil, err
	}

	if err := tool.Reject(); err != nil {
		return nil, apperrors.NewConflictError(err.Error())
	}

	if err := uc.toolRepo.Update(ctx, tool); err != nil {
		uc.logger.Errorw("failed to save rejected tool", "error", err, "tool_id", cmd.ToolID)
		return nil, fmt.Errorf("failed to save tool: %w", err)
	}

	uc.logger.Infow("tool rejected", "tool_id", tool.ID(), "slug", tool.Slug())

	if uc.mailer != nil && tool.SubmittedBy() != nil {
		if submitter, err := uc.userRepo.GetByID(ctx, *tool.SubmittedBy()); err == nil {
			if err := uc.mailer.SendToolRejected(ctx, submitter.Email().String(), tool.Name()); err != nil {
				uc.logger.Warnw("failed to send rejection email", "error", err, "tool_id", tool.ID())
			}
		}
	}

	return tool, nil
}
