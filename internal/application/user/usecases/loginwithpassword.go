package usecases

import (
	"context"
	"fmt"
	"time"

	"toolvault/internal/domain/user"
	uservo "toolvault/internal/domain/user/valueobjects"
	"toolvault/internal/shared/config"
	apperrors "toolvault/internal/shared/errors"
	"toolvault/internal/shared/logger"
	"toolvault/internal/shared/utils"
)

type LoginWithPasswordCommand struct {
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

type LoginResult struct {
	User         *user.User
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type LoginWithPasswordUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	hasher      user.PasswordHasher
	jwtService  JWTService
	jwtConfig   config.JWTConfig
	logger      logger.Interface
}

func NewLoginWithPasswordUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher user.PasswordHasher,
	jwtService JWTService,
	jwtConfig config.JWTConfig,
	logger logger.Interface,
) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		jwtService:  jwtService,
		jwtConfig:   jwtConfig,
		logger:      logger,
	}
}

func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*LoginResult, error) {
	email, err := uservo.NewEmail(cmd.Email)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}

	// The same generic error covers unknown email and wrong password.
	account, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewUnauthorizedError("invalid email or password")
		}
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !account.HasPassword() {
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}
	if err := uc.hasher.Verify(*account.PasswordHash(), cmd.Password); err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
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
		uc.logger.Errorw("failed to create session", "error", err, "user_id", account.ID())
		return nil, err
	}

	uc.logger.Infow("user logged in", "user_id", account.ID())
	return result, nil
}

type issueSessionParams struct {
	sessionRepo user.SessionRepository
	jwtService  JWTService
	jwtConfig   config.JWTConfig
	account     *user.User
	ipAddress   string
	userAgent   string
}

// issueSession creates a refresh session and a token pair bound to it.
// Shared by password login, token refresh, and the OAuth callback.
func issueSession(ctx context.Context, p issueSessionParams) (*LoginResult, error) {
	expiresAt := time.Now().UTC().Add(time.Duration(p.jwtConfig.RefreshExpDays) * 24 * time.Hour)
	session, err := user.NewSession(p.account.ID(), p.ipAddress, p.userAgent, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	tokens, err := p.jwtService.Generate(p.account.ID(), session.ID, p.account.Role().String())
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	session.RefreshTokenHash = utils.HashToken(tokens.RefreshToken)
	if err := p.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &LoginResult{
		User:         p.account,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
