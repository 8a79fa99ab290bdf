package mappers

import (
	"toolvault/internal/domain/user"
	"toolvault/internal/infrastructure/persistence/models"
)

func SessionToModel(s *user.Session) *models.SessionModel {
	return &models.SessionModel{
		ID:               s.ID,
		UserID:           s.UserID,
		IPAddress:        s.IPAddress,
		UserAgent:        s.UserAgent,
		RefreshTokenHash: s.RefreshTokenHash,
		ExpiresAt:        s.ExpiresAt,
		LastActivityAt:   s.LastActivityAt,
		CreatedAt:        s.CreatedAt,
	}
}

func SessionToDomain(m *models.SessionModel) *user.Session {
	return &user.Session{
		ID:               m.ID,
		UserID:           m.UserID,
		IPAddress:        m.IPAddress,
		UserAgent:        m.UserAgent,
		RefreshTokenHash: m.RefreshTokenHash,
		ExpiresAt:        m.ExpiresAt,
		LastActivityAt:   m.LastActivityAt,
		CreatedAt:        m.CreatedAt,
	}
}
