package usecases

import (
	"context"
	"fmt"

	"toolvault/internal/domain/favorite"
	"toolvault/internal/shared/logger"
)

type RemoveFavoriteCommand struct {
	UserID uint
	ToolID uint
}

type RemoveFavoriteUseCase struct {
	favoriteRepo favorite.Repository
	logger       logger.Interface
}

func NewRemoveFavoriteUseCase(favoriteRepo favorite.Repository, logger logger.Interface) *RemoveFavoriteUseCase {
	return &RemoveFavoriteUseCase{favoriteRepo: favoriteRepo, logger: logger}
}

// Execute is idempotent: removing an absent favorite is not an error.
func (uc *RemoveFavoriteUseCase) Execute(ctx context.Context, cmd RemoveFavoriteCommand) error {
	if err := uc.favoriteRepo.Remove(ctx, cmd.UserID, cmd.ToolID); err != nil {
		uc.logger.Errorw("failed to remove favorite", "error", err, "user_id", cmd.UserID, "tool_id", cmd.ToolID)
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}
