package usecases

import (
	"context"
	"fmt"

	"toolvault/internal/domain/catalog"
	"toolvault/internal/domain/favorite"
	apperrors "toolvault/internal/shared/errors"
	"toolvault/internal/shared/logger"
)

type AddFavoriteCommand struct {
	UserID uint
	ToolID uint
}

type AddFavoriteUseCase struct {
	favoriteRepo favorite.Repository
	toolRepo     catalog.ToolRepository
	logger       logger.Interface
}

func NewAddFavoriteUseCase(
	favoriteRepo favorite.Repository,
	toolRepo catalog.ToolRepository,
	logger logger.Interface,
) *AddFavoriteUseCase {
	return &AddFavoriteUseCase{
		favoriteRepo: favoriteRepo,
		toolRepo:     toolRepo,
		logger:       logger,
	}
}

// Execute bookmarks a live tool. Re-adding an existing favorite succeeds
// without creating a duplicate.
func (uc *AddFavoriteUseCase) Execute(ctx context.Context, cmd AddFavoriteCommand) error {
	tool, err := uc.toolRepo.GetByID(ctx, cmd.ToolID)
	if err != nil {
		return err
	}
	if !tool.Status().IsLive() {
		return apperrors.NewNotFoundError("tool not found")
	}

	fav := favorite.NewFavorite(cmd.UserID, cmd.ToolID)
	if err := uc.favoriteRepo.Add(ctx, fav); err != nil {
		uc.logger.Errorw("failed to add favorite", "error", err, "user_id", cmd.UserID, "tool_id", cmd.ToolID)
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}
