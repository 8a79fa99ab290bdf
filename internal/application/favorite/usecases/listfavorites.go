package usecases

import (
	"context"
	"fmt"

	"toolvault/internal/domain/catalog"
	"toolvault/internal/domain/favorite"
	"toolvault/internal/shared/logger"
)

type ListFavoritesQuery struct {
	UserID uint
}

type ListFavoritesUseCase struct {
	favoriteRepo favorite.Repository
	toolRepo     catalog.ToolRepository
	logger       logger.Interface
}

func NewListFavoritesUseCase(
	favoriteRepo favorite.Repository,
	toolRepo catalog.ToolRepository,
	logger logger.Interface,
) *ListFavoritesUseCase {
	return &ListFavoritesUseCase{
		favoriteRepo: favoriteRepo,
		toolRepo:     toolRepo,
		logger:       logger,
	}
}

// Execute resolves the caller's bookmarks to live tools. Favorites pointing
// at tools that have since left live status are filtered out.
func (uc *ListFavoritesUseCase) Execute(ctx context.Context, query ListFavoritesQuery) ([]*catalog.Tool, error) {
	favorites, err := uc.favoriteRepo.ListByUser(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list favorites", "error", err, "user_id", query.UserID)
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	if len(favorites) == 0 {
		return []*catalog.Tool{}, nil
	}

	ids := make([]uint, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.ToolID())
	}

	tools, err := uc.toolRepo.ListLiveByIDs(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to resolve favorite tools", "error", err, "user_id", query.UserID)
		return nil, fmt.Errorf("failed to resolve favorite tools: %w", err)
	}
	return tools, nil
}
