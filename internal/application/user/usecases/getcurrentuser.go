package usecases

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"

	"toolvault/internal/domain/user"
	"toolvault/internal/shared/logger"
)

type GetCurrentUserQuery struct {
	UserID uint
}

// GetCurrentUserUseCase serves the "who am I" read. Bursts of concurrent
// requests for the same account collapse into a single store read.
type GetCurrentUserUseCase struct {
	userRepo user.Repository
	group    singleflight.Group
	logger   logger.Interface
}

func NewGetCurrentUserUseCase(userRepo user.Repository, logger logger.Interface) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, query GetCurrentUserQuery) (*user.User, error) {
	key := fmt.Sprintf("user:%d", query.UserID)
	v, err, _ := uc.group.Do(key, func() (interface{}, error) {
		return uc.userRepo.GetByID(ctx, query.UserID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*user.User), nil
}
