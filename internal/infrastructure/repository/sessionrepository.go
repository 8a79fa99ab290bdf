package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"toolvault/internal/domain/user"
	"toolvault/internal/infrastructure/persistence/mappers"
	"toolvault/internal/infrastructure/persistence/models"
	"toolvault/internal/shared/db"
	apperrors "toolvault/internal/shared/errors"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, session *user.Session) error {
	model := mappers.SessionToModel(session)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, sessionID string) (*user.Session, error) {
	var model models.SessionModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", sessionID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("session not found")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return mappers.SessionToDomain(&model), nil
}

func (r *SessionRepository) GetByRefreshTokenHash(ctx context.Context, refreshTokenHash string) (*user.Session, error) {
	var model models.SessionModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("refresh_token_hash = ?", refreshTokenHash).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("session not found")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return mappers.SessionToDomain(&model), nil
}

func (r *SessionRepository) Update(ctx context.Context, session *user.Session) error {
	model := mappers.SessionToModel(session)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SessionModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"refresh_token_hash": model.RefreshTokenHash,
			"last_activity_at":   model.LastActivityAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update session: %w", result.Error)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	result := db.GetTxFromContext(ctx, r.db).
		Where("id = ?", sessionID).
		Delete(&models.SessionModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("session not found")
	}
	return nil
}

func (r *SessionRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Delete(&models.SessionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete sessions: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Where("expires_at < ?", time.Now().UTC()).
		Delete(&models.SessionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return nil
}
