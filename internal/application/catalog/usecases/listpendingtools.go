package usecases

import (
	"context"
	"fmt"

	"toolvault/internal/domain/catalog"
	"toolvault/internal/shared/logger"
)

// ListPendingToolsUseCase feeds the admin moderation queue.
type ListPendingToolsUseCase struct {
	toolRepo catalog.ToolRepository
	logger   logger.Interface
}

func NewListPendingToolsUseCase(toolRepo catalog.ToolRepository, logger logger.Interface) *ListPendingToolsUseCase {
	return &ListPendingToolsUseCase{toolRepo: toolRepo, logger: logger}
}

func (uc *ListPendingToolsUseCase) Execute(ctx context.Context) ([]*catalog.Tool, error) {
	tools, err := uc.toolRepo.ListPending(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list pending tools", "error", err)
		return nil, fmt.Errorf("failed to list pending tools: %w", err)
	}
	return tools, nil
}
