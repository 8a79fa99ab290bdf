package usecases

import (
	"context"
	"fmt"

	"toolvault/internal/domain/user"
	"toolvault/internal/shared/config"
	apperrors "toolvault/internal/shared/errors"
	"toolvault/internal/shared/logger"
	"toolvault/internal/shared/utils"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	jwtService  JWTService
	jwtConfig   config.JWTConfig
	logger      logger.Interface
}

func NewRefreshTokenUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	jwtService JWTService,
	jwtConfig config.JWTConfig,
	logger logger.Interface,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtService:  jwtService,
		jwtConfig:   jwtConfig,
		logger:      logger,
	}
}

// Execute rotates the token pair. The presented refresh token is matched by
// hash against its session; the session keeps its expiry but gets the new
// refresh hash, so the old token cannot be replayed.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*LoginResult, error) {
	if cmd.RefreshToken == "" {
		return nil, apperrors.NewUnauthorizedError("refresh token is required")
	}

	session, err := uc.sessionRepo.GetByRefreshTokenHash(ctx, utils.HashToken(cmd.RefreshToken))
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewUnauthorizedError("invalid refresh token")
		}
		uc.logger.Errorw("failed to look up session", "error", err)
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}
	if session.IsExpired() {
		_ = uc.sessionRepo.Delete(ctx, session.ID)
		return nil, apperrors.NewUnauthorizedError("session expired")
	}

	account, err := uc.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load session user", "error", err, "user_id", session.UserID)
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	tokens, err := uc.jwtService.Generate(account.ID(), session.ID, account.Role().String())
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	session.RefreshTokenHash = utils.HashToken(tokens.RefreshToken)
	session.UpdateActivity()
	if err := uc.sessionRepo.Update(ctx, session); err != nil {
		uc.logger.Errorw("failed to rotate session", "error", err, "session_id", session.ID)
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return &LoginResult{
		User:         account,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
