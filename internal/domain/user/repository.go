package user

import (
	"context"

	"toolvault/internal/domain/user/valueobjects"
)

// Repository is the persistence port for user accounts.
type Repository interface {
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email *valueobjects.Email) (*User, error)
	ExistsByEmail(ctx context.Context, email *valueobjects.Email) (bool, error)
}
