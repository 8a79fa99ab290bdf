package handlers

import (
	"context"

	userusecases "toolvault/internal/application/user/usecases"
	"toolvault/internal/domain/user"
)

// Use case interfaces for AuthHandler - enables unit testing with mocks.

type registerUseCase interface {
	Execute(ctx context.Context, cmd userusecases.RegisterWithPasswordCommand) (*user.User, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd userusecases.LoginWithPasswordCommand) (*userusecases.LoginResult, error)
}

type refreshTokenUseCase interface {
	Execute(ctx context.Context, cmd userusecases.RefreshTokenCommand) (*userusecases.LoginResult, error)
}

type logoutUseCase interface {
	Execute(ctx context.Context, cmd userusecases.LogoutCommand) error
}

type getCurrentUserUseCase interface {
	Execute(ctx context.Context, query userusecases.GetCurrentUserQuery) (*user.User, error)
}

type initiateOAuthUseCase interface {
	Execute(ctx context.Context) (*userusecases.InitiateOAuthLoginResult, error)
}

type handleOAuthCallbackUseCase interface {
	Execute(ctx context.Context, cmd userusecases.HandleOAuthCallbackCommand) (*userusecases.LoginResult, error)
}
