package usecases

import (
	"context"
	"fmt"

	"toolvault/internal/domain/catalog"
	apperrors "toolvault/internal/shared/errors"
	"toolvault/internal/shared/logger"
	"toolvault/internal/shared/utils"
)

type CreateCategoryCommand struct {
	Name        string
	Description string
	Icon        string
	Color       string
}

type CreateCategoryUseCase struct {
	categoryRepo catalog.CategoryRepository
	logger       logger.Interface
}

func NewCreateCategoryUseCase(categoryRepo catalog.CategoryRepository, logger logger.Interface) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{categoryRepo: categoryRepo, logger: logger}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*catalog.Category, error) {
	slug := utils.Slugify(cmd.Name)
	if slug == "" {
		return nil, apperrors.NewValidationError("category name is required")
	}

	if _, err := uc.categoryRepo.GetBySlug(ctx, slug); err == nil {
		return nil, apperrors.NewConflictError("a category with this name already exists")
	} else if !apperrors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to check category slug", "error", err, "slug", slug)
		return nil, fmt.Errorf("failed to check category slug: %w", err)
	}

	category, err := catalog.NewCategory(cmd.Name, slug, cmd.Description, cmd.Icon, cmd.Color)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("a category with this name already exists")
		}
		uc.logger.Errorw("failed to create category", "error", err, "slug", slug)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	uc.logger.Infow("category created", "category_id", category.ID(), "slug", slug)
	return category, nil
}
