package usecases

import (
	"context"
	"fmt"

	"toolvault/internal/domain/catalog"
	vo "toolvault/internal/domain/catalog/valueobjects"
	apperrors "toolvault/internal/shared/errors"
	"toolvault/internal/shared/logger"
)

// ListToolsQuery carries the raw listing parameters. Enum-valued filters
// outside their sets are ignored; an unknown category slug yields an empty
// result rather than an unfiltered one.
type ListToolsQuery struct {
	CategorySlug    string
	PricingModel    string
	DifficultyLevel string
	Search          string
	SortBy          string
	Limit           int
	Offset          int
}

type ListToolsResult struct {
	Tools []*catalog.Tool
	Total int64
}

type ListToolsUseCase struct {
	toolRepo     catalog.ToolRepository
	categoryRepo catalog.CategoryRepository
	logger       logger.Interface
}

func NewListToolsUseCase(
	toolRepo catalog.ToolRepository,
	categoryRepo catalog.CategoryRepository,
	logger logger.Interface,
) *ListToolsUseCase {
	return &ListToolsUseCase{
		toolRepo:     toolRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *ListToolsUseCase) Execute(ctx context.Context, query ListToolsQuery) (*ListToolsResult, error) {
	filter := catalog.ListToolsFilter{
		PricingModel:    vo.ParsePricingModel(query.PricingModel),
		DifficultyLevel: vo.ParseDifficultyLevel(query.DifficultyLevel),
		Search:          query.Search,
		Sort:            vo.ParseSortKey(query.SortBy),
		Limit:           query.Limit,
		Offset:          query.Offset,
	}

	if query.CategorySlug != "" {
		category, err := uc.categoryRepo.GetBySlug(ctx, query.CategorySlug)
		if err != nil {
			if apperrors.IsNotFoundError(err) {
				// An unknown category is a valid query with no matches,
				// not an unfiltered listing.
				uc.logger.Debugw("category slug not found, returning empty listing", "slug", query.CategorySlug)
				return &ListToolsResult{Tools: []*catalog.Tool{}, Total: 0}, nil
			}
			uc.logger.Errorw("failed to resolve category", "error", err, "slug", query.CategorySlug)
			return nil, fmt.Errorf("failed to resolve category: %w", err)
		}
		id := category.ID()
		filter.CategoryID = &id
	}

	tools, total, err := uc.toolRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tools", "error", err)
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}

	return &ListToolsResult{Tools: tools, Total: total}, nil
}
