package usecases

import (
	"context"
	"fmt"

	"toolvault/internal/domain/catalog"
	apperrors "toolvault/internal/shared/errors"
	"toolvault/internal/shared/logger"
)

type FeatureToolCommand struct {
	ToolID   uint
	Featured bool
}

type FeatureToolUseCase struct {
	toolRepo catalog.ToolRepository
	cache    FeaturedCache
	logger   logger.Interface
}

func NewFeatureToolUseCase(
	toolRepo catalog.ToolRepository,
	cache FeaturedCache,
	logger logger.Interface,
) *FeatureToolUseCase {
	return &FeatureToolUseCase{
		toolRepo: toolRepo,
		cache:    cache,
		logger:   logger,
	}
}

func (uc *FeatureToolUseCase) Execute(ctx context.Context, cmd FeatureToolCommand) (*catalog.Tool, error) {
	tool, err := uc.toolRepo.GetByID(ctx, cmd.ToolID)
	if err != nil {
		return nil, err
	}

	if err := tool.SetFeatured(cmd.Featured); err != nil {
		return nil, apperrors.NewConflictError(err.Error())
	}

	if err := uc.toolRepo.Update(ctx, tool); err != nil {
		uc.logger.Errorw("failed to save featured flag", "error", err, "tool_id", cmd.ToolID)
		return nil, fmt.Errorf("failed to save tool: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx); err != nil {
			uc.logger.Warnw("failed to invalidate featured cache", "error", err)
		}
	}

	uc.logger.Infow("tool featured flag updated", "tool_id", tool.ID(), "featured", cmd.Featured)
	return tool, nil
}
