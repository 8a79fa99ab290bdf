package usecases

import (
	"context"
	"fmt"

	"toolvault/internal/domain/user"
	apperrors "toolvault/internal/shared/errors"
	"toolvault/internal/shared/logger"
)

type LogoutCommand struct {
	SessionID string
}

type LogoutUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewLogoutUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{sessionRepo: sessionRepo, logger: logger}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if err := uc.sessionRepo.Delete(ctx, cmd.SessionID); err != nil {
		if apperrors.IsNotFoundError(err) {
			// Already gone; logout stays idempotent.
			return nil
		}
		uc.logger.Errorw("failed to delete session", "error", err, "session_id", cmd.SessionID)
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
