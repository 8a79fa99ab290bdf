package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"toolvault/internal/domain/catalog"
	"toolvault/internal/infrastructure/persistence/mappers"
	"toolvault/internal/infrastructure/persistence/models"
	"toolvault/internal/shared/db"
	apperrors "toolvault/internal/shared/errors"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *catalog.Category) error {
	model := mappers.CategoryToModel(category)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	category.SetID(model.ID)
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint) (*catalog.Category, error) {
	var model models.CategoryModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("category not found")
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return mappers.CategoryToDomain(&model), nil
}

func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	var model models.CategoryModel
	if err := db.GetTxFromContext(ctx, r.db).Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("category not found")
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return mappers.CategoryToDomain(&model), nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*catalog.Category, error) {
	var ms []*models.CategoryModel
	if err := db.GetTxFromContext(ctx, r.db).Order("name ASC").Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return mappers.CategoriesToDomain(ms), nil
}

func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.CategoryModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return count, nil
}
