package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"toolvault/internal/domain/comparison"
	"toolvault/internal/infrastructure/persistence/mappers"
	"toolvault/internal/infrastructure/persistence/models"
	"toolvault/internal/shared/db"
)

type ComparisonRepository struct {
	db *gorm.DB
}

func NewComparisonRepository(db *gorm.DB) *ComparisonRepository {
	return &ComparisonRepository{db: db}
}

func (r *ComparisonRepository) Create(ctx context.Context, cmp *comparison.Comparison) error {
	model := mappers.ComparisonToModel(cmp)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create comparison: %w", err)
	}
	cmp.SetID(model.ID)
	return nil
}

func (r *ComparisonRepository) ListByUser(ctx context.Context, userID uint) ([]*comparison.Comparison, error) {
	var ms []*models.ComparisonModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list comparisons: %w", err)
	}
	out := make([]*comparison.Comparison, 0, len(ms))
	for _, m := range ms {
		out = append(out, mappers.ComparisonToDomain(m))
	}
	return out, nil
}
