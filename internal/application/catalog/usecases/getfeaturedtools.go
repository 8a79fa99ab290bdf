package usecases

import (
	"context"

	"toolvault/internal/domain/catalog"
	"toolvault/internal/shared/constants"
	"toolvault/internal/shared/logger"
)

// FeaturedCache caches the rendered featured listing. A miss returns
// (nil, false, nil).
type FeaturedCache interface {
	Get(ctx context.Context) ([]*catalog.Tool, bool, error)
	Set(ctx context.Context, tools []*catalog.Tool) error
	Invalidate(ctx context.Context) error
}

type GetFeaturedToolsUseCase struct {
	toolRepo catalog.ToolRepository
	cache    FeaturedCache
	logger   logger.Interface
}

func NewGetFeaturedToolsUseCase(
	toolRepo catalog.ToolRepository,
	cache FeaturedCache,
	logger logger.Interface,
) *GetFeaturedToolsUseCase {
	return &GetFeaturedToolsUseCase{
		toolRepo: toolRepo,
		cache:    cache,
		logger:   logger,
	}
}

func (uc *GetFeaturedToolsUseCase) Execute(ctx context.Context) ([]*catalog.Tool, error) {
	if uc.cache != nil {
		tools, hit, err := uc.cache.Get(ctx)
		if err != nil {
			// Cache failures degrade to a store read.
			uc.logger.Warnw("featured cache read failed", "error", err)
		} else if hit {
			return tools, nil
		}
	}

	tools, err := uc.toolRepo.ListFeatured(ctx, constants.FeaturedToolsLimit)
	if err != nil {
		uc.logger.Errorw("failed to list featured tools", "error", err)
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, tools); err != nil {
			uc.logger.Warnw("featured cache write failed", "error", err)
		}
	}

	return tools, nil
}
