package dto

import (
	"toolvault/internal/domain/user"
	"toolvault/internal/shared/biztime"
)

// UserDTO is the API shape of an account. Password hashes and gateway
// identifiers never leave the server.
type UserDTO struct {
	ID              uint   `json:"id"`
	Email           string `json:"email"`
	FirstName       string `json:"firstName,omitempty"`
	LastName        string `json:"lastName,omitempty"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
	Role            string `json:"role"`
	IsPremium       bool   `json:"isPremium"`
	CreatedAt       string `json:"createdAt"`
}

func UserToDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:              u.ID(),
		Email:           u.Email().String(),
		FirstName:       u.FirstName(),
		LastName:        u.LastName(),
		ProfileImageURL: u.ProfileImageURL(),
		Role:            u.Role().String(),
		IsPremium:       u.IsPremium(),
		CreatedAt:       biztime.FormatAPI(u.CreatedAt()),
	}
}

// AuthResultDTO pairs an account with its issued tokens.
type AuthResultDTO struct {
	User         *UserDTO `json:"user"`
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	ExpiresIn    int64    `json:"expiresIn"`
}
