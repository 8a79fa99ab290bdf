package usecases

import (
	"context"
	"fmt"

	"toolvault/internal/domain/catalog"
	"toolvault/internal/domain/user"
	apperrors "toolvault/internal/shared/errors"
	"toolvault/internal/shared/logger"
)

type ApproveToolCommand struct {
	ToolID uint
}

type ApproveToolUseCase struct {
	toolRepo catalog.ToolRepository
	userRepo user.Repository
	mailer   ModerationMailer
	logger   logger.Interface
}

func NewApproveToolUseCase(
	toolRepo catalog.ToolRepository,
	userRepo user.Repository,
	mailer ModerationMailer,
	logger logger.Interface,
) *ApproveToolUseCase {
	return &ApproveToolUseCase{
		toolRepo: toolRepo,
		userRepo: userRepo,
		mailer:   mailer,
		logger:   logger,
	}
}

func (uc *ApproveToolUseCase) Execute(ctx context.Context, cmd ApproveToolCommand) (*catalog.Tool, error) {
	tool, err := uc.toolRepo.GetByID(ctx, cmd.ToolID)
	if err != nil {
		return nil, err
	}

	if err := tool.Approve(); err != nil {
		return nil, apperrors.NewConflictError(err.Error())
	}

	if err := uc.toolRepo.Update(ctx, tool); err != nil {
		uc.logger.Errorw("failed to save approved tool", "error", err, "tool_id", cmd.ToolID)
		return nil, fmt.Errorf("failed to save tool: %w", err)
	}

	uc.logger.Infow("tool approved", "tool_id", tool.ID(), "slug", tool.Slug())
	uc.notifySubmitter(ctx, tool)

	return tool, nil
}

func (uc *ApproveToolUseCase) notifySubmitter(ctx context.Context, tool *catalog.Tool) {
	if uc.mailer == nil || tool.SubmittedBy() == nil {
		return
	}
	submitter, err := uc.userRepo.GetByID(ctx, *tool.SubmittedBy())
	if err != nil {
		uc.logger.Warnw("failed to load submitter for approval email", "error", err, "user_id", *tool.SubmittedBy())
		return
	}
	if err := uc.mailer.SendToolApproved(ctx, submitter.Email().String(), tool.Name(), tool.Slug()); err != nil {
		uc.logger.Warnw("failed to send approval email", "error", err, "tool_id", tool.ID())
	}
}
