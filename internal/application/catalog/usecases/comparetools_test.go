package usecases

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolvault/internal/domain/catalog"
	vo "toolvault/internal/domain/catalog/valueobjects"
	"toolvault/internal/domain/comparison"
	apperrors "toolvault/internal/shared/errors"
	"toolvault/internal/shared/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...any)            {}
func (nopLogger) Info(string, ...any)             {}
func (nopLogger) Warn(string, ...any)             {}
func (nopLogger) Error(string, ...any)            {}
func (n nopLogger) With(...any) logger.Interface  { return n }
func (n nopLogger) Named(string) logger.Interface { return n }
func (nopLogger) Debugw(string, ...interface{})   {}
func (nopLogger) Infow(string, ...interface{})    {}
func (nopLogger) Warnw(string, ...interface{})    {}
func (nopLogger) Errorw(string, ...interface{})   {}

// memToolRepo serves the listing ports from an in-memory map.
type memToolRepo struct {
	tools       map[uint]*catalog.Tool
	requestedBy []uint
	lastFilter  catalog.ListToolsFilter
}

func newMemToolRepo(tools ...*catalog.Tool) *memToolRepo {
	r := &memToolRepo{tools: make(map[uint]*catalog.Tool)}
	for _, tool := range tools {
		r.tools[tool.ID()] = tool
	}
	return r
}

func (r *memToolRepo) Create(_ context.Context, tool *catalog.Tool) error { return nil }
func (r *memToolRepo) Update(_ context.Context, tool *catalog.Tool) error { return nil }

func (r *memToolRepo) GetByID(_ context.Context, id uint) (*catalog.Tool, error) {
	tool, ok := r.tools[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("tool not found")
	}
	return tool, nil
}

func (r *memToolRepo) GetBySlug(_ context.Context, slug string) (*catalog.Tool, error) {
	for _, tool := range r.tools {
		if tool.Slug() == slug {
			return tool, nil
		}
	}
	return nil, apperrors.NewNotFoundError("tool not found")
}

func (r *memToolRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	_, err := r.GetBySlug(ctx, slug)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *memToolRepo) List(_ context.Context, filter catalog.ListToolsFilter) ([]*catalog.Tool, int64, error) {
	r.lastFilter = filter
	out := make([]*catalog.Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		if tool.Status() == vo.StatusLive {
			out = append(out, tool)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memToolRepo) ListFeatured(_ context.Context, _ int) ([]*catalog.Tool, error) {
	return nil, nil
}

func (r *memToolRepo) ListBySubmitter(_ context.Context, _ uint) ([]*catalog.Tool, error) {
	return nil, nil
}

func (r *memToolRepo) ListPending(_ context.Context) ([]*catalog.Tool, error) { return nil, nil }

func (r *memToolRepo) ListLiveByIDs(_ context.Context, ids []uint) ([]*catalog.Tool, error) {
	r.requestedBy = ids
	out := make([]*catalog.Tool, 0, len(ids))
	for _, id := range ids {
		tool, ok := r.tools[id]
		if ok && tool.Status() == vo.StatusLive {
			out = append(out, tool)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}

func (r *memToolRepo) IncrementViews(_ context.Context, _ uint) error { return nil }

type memComparisonRepo struct {
	records []*comparison.Comparison
}

func (r *memComparisonRepo) Create(_ context.Context, cmp *comparison.Comparison) error {
	r.records = append(r.records, cmp)
	return nil
}

func (r *memComparisonRepo) ListByUser(_ context.Context, _ uint) ([]*comparison.Comparison, error) {
	return r.records, nil
}

func liveTool(id uint, name, slug string) *catalog.Tool {
	now := time.Now().UTC()
	submitter := uint(1)
	return catalog.ReconstructTool(catalog.ToolAttrs{
		ID:               id,
		Name:             name,
		Slug:             slug,
		ShortDescription: "short",
		Website:          "https://example.com",
		PricingModel:     vo.PricingFree,
		DifficultyLevel:  vo.DifficultyBeginner,
		Status:           vo.StatusLive,
		SubmittedBy:      &submitter,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
}

func TestCompareTools_DedupsAndIgnoresMissing(t *testing.T) {
	repo := newMemToolRepo(
		liveTool(1, "Alpha", "alpha"),
		liveTool(2, "Beta", "beta"),
	)
	uc := NewCompareToolsUseCase(repo, &memComparisonRepo{}, nopLogger{})

	tools, err := uc.Execute(context.Background(), CompareToolsCommand{ToolIDs: []uint{1, 2, 2, 99}})
	require.NoError(t, err)

	assert.Equal(t, []uint{1, 2, 99}, repo.requestedBy)
	require.Len(t, tools, 2)
	assert.Equal(t, "Alpha", tools[0].Name())
	assert.Equal(t, "Beta", tools[1].Name())
}

func TestCompareTools_OrderedByName(t *testing.T) {
	repo := newMemToolRepo(
		liveTool(1, "Zeta", "zeta"),
		liveTool(2, "Alpha", "alpha"),
		liveTool(3, "Mid", "mid"),
	)
	uc := NewCompareToolsUseCase(repo, &memComparisonRepo{}, nopLogger{})

	tools, err := uc.Execute(context.Background(), CompareToolsCommand{ToolIDs: []uint{1, 2, 3}})
	require.NoError(t, err)

	require.Len(t, tools, 3)
	assert.Equal(t, "Alpha", tools[0].Name())
	assert.Equal(t, "Mid", tools[1].Name())
	assert.Equal(t, "Zeta", tools[2].Name())
}

func TestCompareTools_BoundsAfterDedup(t *testing.T) {
	uc := NewCompareToolsUseCase(newMemToolRepo(), &memComparisonRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), CompareToolsCommand{ToolIDs: []uint{1, 2, 3, 4}})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), CompareToolsCommand{ToolIDs: nil})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))

	// Four ids collapsing to three distinct ones pass the bound check.
	repo := newMemToolRepo(liveTool(1, "A", "a"), liveTool(2, "B", "b"), liveTool(3, "C", "c"))
	uc = NewCompareToolsUseCase(repo, &memComparisonRepo{}, nopLogger{})
	_, err = uc.Execute(context.Background(), CompareToolsCommand{ToolIDs: []uint{1, 1, 2, 3}})
	require.NoError(t, err)
}

func TestCompareTools_RecordsAuthenticatedUsage(t *testing.T) {
	repo := newMemToolRepo(liveTool(1, "Alpha", "alpha"))
	comparisons := &memComparisonRepo{}
	uc := NewCompareToolsUseCase(repo, comparisons, nopLogger{})

	userID := uint(9)
	_, err := uc.Execute(context.Background(), CompareToolsCommand{ToolIDs: []uint{1}, UserID: &userID})
	require.NoError(t, err)
	require.Len(t, comparisons.records, 1)
	assert.Equal(t, uint(9), comparisons.records[0].UserID())

	_, err = uc.Execute(context.Background(), CompareToolsCommand{ToolIDs: []uint{1}})
	require.NoError(t, err)
	assert.Len(t, comparisons.records, 1)
}
