package user

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"toolvault/internal/shared/biztime"
)

// Session is a refresh-token session backing JWT renewal.
type Session struct {
	ID               string
	UserID           uint
	IPAddress        string
	UserAgent        string
	RefreshTokenHash string
	ExpiresAt        time.Time
	LastActivityAt   time.Time
	CreatedAt        time.Time
}

func NewSession(userID uint, ipAddress, userAgent string, expiresAt time.Time) (*Session, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	id, err := generateSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session ID: %w", err)
	}

	now := biztime.NowUTC()
	return &Session{
		ID:             id,
		UserID:         userID,
		IPAddress:      ipAddress,
		UserAgent:      userAgent,
		ExpiresAt:      expiresAt,
		LastActivityAt: now,
		CreatedAt:      now,
	}, nil
}

func (s *Session) IsExpired() bool {
	return biztime.NowUTC().After(s.ExpiresAt)
}

func (s *Session) UpdateActivity() {
	s.LastActivityAt = biztime.NowUTC()
}

func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, sessionID string) (*Session, error)
	GetByRefreshTokenHash(ctx context.Context, refreshTokenHash string) (*Session, error)
	Update(ctx context.Context, session *Session) error
	Delete(ctx context.Context, sessionID string) error
	DeleteByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}
