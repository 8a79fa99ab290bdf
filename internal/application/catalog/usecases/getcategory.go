package usecases

import (
	"context"

	"toolvault/internal/domain/catalog"
	apperrors "toolvault/internal/shared/errors"
	"toolvault/internal/shared/logger"
)

type GetCategoryQuery struct {
	Slug string
}

type GetCategoryUseCase struct {
	categoryRepo catalog.CategoryRepository
	logger       logger.Interface
}

func NewGetCategoryUseCase(categoryRepo catalog.CategoryRepository, logger logger.Interface) *GetCategoryUseCase {
	return &GetCategoryUseCase{categoryRepo: categoryRepo, logger: logger}
}

func (uc *GetCategoryUseCase) Execute(ctx context.Context, query GetCategoryQuery) (*catalog.Category, error) {
	category, err := uc.categoryRepo.GetBySlug(ctx, query.Slug)
	if err != nil {
		if !apperrors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to get category", "error", err, "slug", query.Slug)
		}
		return nil, err
	}
	return category, nil
}
