package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolvault/internal/domain/catalog"
	vo "toolvault/internal/domain/catalog/valueobjects"
	apperrors "toolvault/internal/shared/errors"
)

type memCategoryRepo struct {
	categories map[string]*catalog.Category
}

func newMemCategoryRepo(categories ...*catalog.Category) *memCategoryRepo {
	r := &memCategoryRepo{categories: make(map[string]*catalog.Category)}
	for _, c := range categories {
		r.categories[c.Slug()] = c
	}
	return r
}

func (r *memCategoryRepo) Create(_ context.Context, c *catalog.Category) error {
	r.categories[c.Slug()] = c
	return nil
}

func (r *memCategoryRepo) GetByID(_ context.Context, id uint) (*catalog.Category, error) {
	for _, c := range r.categories {
		if c.ID() == id {
			return c, nil
		}
	}
	return nil, apperrors.NewNotFoundError("category not found")
}

func (r *memCategoryRepo) GetBySlug(_ context.Context, slug string) (*catalog.Category, error) {
	c, ok := r.categories[slug]
	if !ok {
		return nil, apperrors.NewNotFoundError("category not found")
	}
	return c, nil
}

func (r *memCategoryRepo) List(_ context.Context) ([]*catalog.Category, error) {
	out := make([]*catalog.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCategoryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.categories)), nil
}

func testCategory(id uint, slug string) *catalog.Category {
	now := time.Now().UTC()
	return catalog.ReconstructCategory(id, "Writing", slug, "", "pen", "#fff", now, now)
}

func TestListTools_UnknownCategorySlugYieldsEmptyResult(t *testing.T) {
	repo := newMemToolRepo(liveTool(1, "Alpha", "alpha"))
	uc := NewListToolsUseCase(repo, newMemCategoryRepo(), nopLogger{})

	result, err := uc.Execute(context.Background(), ListToolsQuery{CategorySlug: "nope", Limit: 20})
	require.NoError(t, err)

	assert.Empty(t, result.Tools)
	assert.Zero(t, result.Total)
}

func TestListTools_ResolvesCategorySlugToFilter(t *testing.T) {
	repo := newMemToolRepo(liveTool(1, "Alpha", "alpha"))
	uc := NewListToolsUseCase(repo, newMemCategoryRepo(testCategory(4, "writing")), nopLogger{})

	_, err := uc.Execute(context.Background(), ListToolsQuery{CategorySlug: "writing", Limit: 20})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.CategoryID)
	assert.Equal(t, uint(4), *repo.lastFilter.CategoryID)
}

func TestListTools_IgnoresUnknownEnumFilters(t *testing.T) {
	repo := newMemToolRepo(liveTool(1, "Alpha", "alpha"))
	uc := NewListToolsUseCase(repo, newMemCategoryRepo(), nopLogger{})

	_, err := uc.Execute(context.Background(), ListToolsQuery{
		PricingModel:    "Shareware",
		DifficultyLevel: "Wizard",
		SortBy:          "bogus",
		Limit:           20,
	})
	require.NoError(t, err)

	assert.Nil(t, repo.lastFilter.PricingModel)
	assert.Nil(t, repo.lastFilter.DifficultyLevel)
	assert.Equal(t, vo.SortPopularity, repo.lastFilter.Sort)
}

func TestListTools_PassesRecognizedFilters(t *testing.T) {
	repo := newMemToolRepo(liveTool(1, "Alpha", "alpha"))
	uc := NewListToolsUseCase(repo, newMemCategoryRepo(), nopLogger{})

	result, err := uc.Execute(context.Background(), ListToolsQuery{
		PricingModel:    "Free",
		DifficultyLevel: "Beginner",
		Search:          "alp",
		SortBy:          "name",
		Limit:           10,
		Offset:          5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)

	require.NotNil(t, repo.lastFilter.PricingModel)
	assert.Equal(t, vo.PricingFree, *repo.lastFilter.PricingModel)
	require.NotNil(t, repo.lastFilter.DifficultyLevel)
	assert.Equal(t, vo.DifficultyBeginner, *repo.lastFilter.DifficultyLevel)
	assert.Equal(t, "alp", repo.lastFilter.Search)
	assert.Equal(t, vo.SortName, repo.lastFilter.Sort)
	assert.Equal(t, 10, repo.lastFilter.Limit)
	assert.Equal(t, 5, repo.lastFilter.Offset)
}
