package usecases

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"toolvault/internal/shared/logger"
)

type InitiateOAuthLoginResult struct {
	AuthURL string
	State   string
}

type InitiateOAuthLoginUseCase struct {
	provider   OAuthProvider
	stateStore OAuthStateStore
	logger     logger.Interface
}

func NewInitiateOAuthLoginUseCase(
	provider OAuthProvider,
	stateStore OAuthStateStore,
	logger logger.Interface,
) *InitiateOAuthLoginUseCase {
	return &InitiateOAuthLoginUseCase{
		provider:   provider,
		stateStore: stateStore,
		logger:     logger,
	}
}

func (uc *InitiateOAuthLoginUseCase) Execute(ctx context.Context) (*InitiateOAuthLoginResult, error) {
	state, err := generateState()
	if err != nil {
		return nil, fmt.Errorf("failed to generate oauth state: %w", err)
	}
	if err := uc.stateStore.Save(ctx, state); err != nil {
		uc.logger.Errorw("failed to save oauth state", "error", err)
		return nil, fmt.Errorf("failed to save oauth state: %w", err)
	}
	return &InitiateOAuthLoginResult{
		AuthURL: uc.provider.AuthCodeURL(state),
		State:   state,
	}, nil
}

func generateState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
