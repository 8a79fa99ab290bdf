package usecases

import (
	"context"
	"fmt"

	"toolvault/internal/domain/catalog"
	"toolvault/internal/shared/logger"
)

type ListUserToolsQuery struct {
	UserID uint
}

type ListUserToolsUseCase struct {
	toolRepo catalog.ToolRepository
	logger   logger.Interface
}

func NewListUserToolsUseCase(toolRepo catalog.ToolRepository, logger logger.Interface) *ListUserToolsUseCase {
	return &ListUserToolsUseCase{toolRepo: toolRepo, logger: logger}
}

// Execute returns the caller's own submissions, any status, newest first.
func (uc *ListUserToolsUseCase) Execute(ctx context.Context, query ListUserToolsQuery) ([]*catalog.Tool, error) {
	tools, err := uc.toolRepo.ListBySubmitter(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list user tools", "error", err, "user_id", query.UserID)
		return nil, fmt.Errorf("failed to list user tools: %w", err)
	}
	return tools, nil
}
