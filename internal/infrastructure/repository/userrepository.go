package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"toolvault/internal/domain/user"
	uservo "toolvault/internal/domain/user/valueobjects"
	"toolvault/internal/infrastructure/persistence/mappers"
	"toolvault/internal/infrastructure/persistence/models"
	"toolvault/internal/shared/db"
	apperrors "toolvault/internal/shared/errors"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := mappers.UserToModel(u)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	u.SetID(model.ID)
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := mappers.UserToModel(u)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"first_name":             model.FirstName,
			"last_name":              model.LastName,
			"profile_image_url":      model.ProfileImageURL,
			"role":                   model.Role,
			"is_premium":             model.IsPremium,
			"stripe_customer_id":     model.StripeCustomerID,
			"stripe_subscription_id": model.StripeSubscriptionID,
			"updated_at":             model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return mappers.UserToDomain(&model)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email *uservo.Email) (*user.User, error) {
	var model models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).Where("email = ?", email.String()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return mappers.UserToDomain(&model)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email *uservo.Email) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.UserModel{}).
		Where("email = ?", email.String()).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}
