package usecases

import (
	"context"
	"fmt"

	"toolvault/internal/domain/user"
	uservo "toolvault/internal/domain/user/valueobjects"
	apperrors "toolvault/internal/shared/errors"
	"toolvault/internal/shared/logger"
)

type RegisterWithPasswordCommand struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type RegisterWithPasswordUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewRegisterWithPasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *RegisterWithPasswordUseCase {
	return &RegisterWithPasswordUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *RegisterWithPasswordUseCase) Execute(ctx context.Context, cmd RegisterWithPasswordCommand) (*user.User, error) {
	email, err := uservo.NewEmail(cmd.Email)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if len(cmd.Password) < 8 {
		return nil, apperrors.NewValidationError("password must be at least 8 characters")
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("an account with this email already exists")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account, err := user.NewUser(email, hash, cmd.FirstName, cmd.LastName)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, account); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("an account with this email already exists")
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.logger.Infow("user registered", "user_id", account.ID())
	return account, nil
}
