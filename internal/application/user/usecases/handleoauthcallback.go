package usecases

import (
	"context"
	"fmt"

	"toolvault/internal/domain/user"
	uservo "toolvault/internal/domain/user/valueobjects"
	"toolvault/internal/shared/config"
	apperrors "toolvault/internal/shared/errors"
	"toolvault/internal/shared/logger"
)

type HandleOAuthCallbackCommand struct {
	Code      string
	State     string
	IPAddress string
	UserAgent string
}

type HandleOAuthCallbackUseCase struct {
	provider    OAuthProvider
	stateStore  OAuthStateStore
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	jwtService  JWTService
	jwtConfig   config.JWTConfig
	logger      logger.Interface
}

func NewHandleOAuthCallbackUseCase(
	provider OAuthProvider,
	stateStore OAuthStateStore,
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	jwtService JWTService,
	jwtConfig config.JWTConfig,
	logger logger.Interface,
) *HandleOAuthCallbackUseCase {
	return &HandleOAuthCallbackUseCase{
		provider:    provider,
		stateStore:  stateStore,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtService:  jwtService,
		jwtConfig:   jwtConfig,
		logger:      logger,
	}
}

func (uc *HandleOAuthCallbackUseCase) Execute(ctx context.Context, cmd HandleOAuthCallbackCommand) (*LoginResult, error) {
	ok, err := uc.stateStore.Consume(ctx, cmd.State)
	if err != nil {
		uc.logger.Errorw("failed to check oauth state", "error", err)
		return nil, fmt.Errorf("failed to check oauth state: %w", err)
	}
	if !ok {
		return nil, apperrors.NewUnauthorizedError("invalid oauth state")
	}

	info, err := uc.provider.ExchangeAndFetch(ctx, cmd.Code)
	if err != nil {
		uc.logger.Errorw("oauth code exchange failed", "error", err)
		return nil, apperrors.NewUpstreamError("authentication provider unavailable")
	}

	email, err := uservo.NewEmail(info.Email)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	account, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if !apperrors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to get user by email", "error", err)
			return nil, fmt.Errorf("failed to get user: %w", err)
		}
		account, err = user.NewOAuthUser(email, info.FirstName, info.LastName, info.ProfileImageURL)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		if err := uc.userRepo.Create(ctx, account); err != nil {
			uc.logger.Errorw("failed to provision oauth user", "error", err)
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		uc.logger.Infow("oauth user provisioned", "user_id", account.ID())
	}

	result, err := issueSession(ctx, issueSessionParams{
		sessionRepo: uc.sessionRepo,
		jwtService:  uc.jwtService,
		jwtConfig:   uc.jwtConfig,
		account:     account,
		ipAddress:   cmd.IPAddress,
		userAgent:   cmd.UserAgent,
	})
	if err != nil {
		uc.logger.Errorw("failed to create oauth session", "error", err, "user_id", account.ID())
		return nil, err
	}

	uc.logger.Infow("user logged in via oauth", "user_id", account.ID())
	return result, nil
}
