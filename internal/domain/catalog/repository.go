package catalog

import (
	"context"

	"toolvault/internal/domain/catalog/valueobjects"
)

// ListToolsFilter narrows and orders a public catalog listing. All filter
// fields are optional; nil/empty means "no constraint". Listings only ever
// see live tools regardless of the filter.
type ListToolsFilter struct {
	CategoryID      *uint
	PricingModel    *valueobjects.PricingModel
	DifficultyLevel *valueobjects.DifficultyLevel
	Search          string
	Sort            valueobjects.SortKey
	Limit           int
	Offset          int
}

// ToolRepository is the persistence port of the catalog aggregate.
type ToolRepository interface {
	Create(ctx context.Context, tool *Tool) error
	Update(ctx context.Context, tool *Tool) error
	GetByID(ctx context.Context, id uint) (*Tool, error)
	GetBySlug(ctx context.Context, slug string) (*Tool, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)

	// List returns one page of live tools matching the filter plus the
	// total match count before pagination.
	List(ctx context.Context, filter ListToolsFilter) ([]*Tool, int64, error)
	ListFeatured(ctx context.Context, limit int) ([]*Tool, error)
	ListBySubmitter(ctx context.Context, userID uint) ([]*Tool, error)
	ListPending(ctx context.Context) ([]*Tool, error)

	// ListLiveByIDs resolves a comparison set: live tools only, ordered
	// by name ascending. Unknown IDs are silently dropped.
	ListLiveByIDs(ctx context.Context, ids []uint) ([]*Tool, error)

	// IncrementViews bumps the view counter atomically in the store.
	IncrementViews(ctx context.Context, id uint) error
}

// CategoryRepository is the persistence port for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, id uint) (*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	Count(ctx context.Context) (int64, error)
}
