package mappers

import (
	"fmt"

	"toolvault/internal/domain/user"
	uservo "toolvault/internal/domain/user/valueobjects"
	"toolvault/internal/infrastructure/persistence/models"
)

func UserToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:                   u.ID(),
		Email:                u.Email().String(),
		PasswordHash:         u.PasswordHash(),
		FirstName:            u.FirstName(),
		LastName:             u.LastName(),
		ProfileImageURL:      u.ProfileImageURL(),
		Role:                 u.Role().String(),
		IsPremium:            u.IsPremium(),
		StripeCustomerID:     u.StripeCustomerID(),
		StripeSubscriptionID: u.StripeSubscriptionID(),
		CreatedAt:            u.CreatedAt(),
		UpdatedAt:            u.UpdatedAt(),
	}
}

func UserToDomain(m *models.UserModel) (*user.User, error) {
	email, err := uservo.NewEmail(m.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid stored email: %w", err)
	}
	role, err := uservo.NewRole(m.Role)
	if err != nil {
		return nil, fmt.Errorf("invalid stored role: %w", err)
	}

	return user.ReconstructUser(user.UserAttrs{
		ID:                   m.ID,
		Email:                email,
		PasswordHash:         m.PasswordHash,
		FirstName:            m.FirstName,
		LastName:             m.LastName,
		ProfileImageURL:      m.ProfileImageURL,
		Role:                 role,
		IsPremium:            m.IsPremium,
		StripeCustomerID:     m.StripeCustomerID,
		StripeSubscriptionID: m.StripeSubscriptionID,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}), nil
}
