package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolvault/internal/domain/catalog"
	vo "toolvault/internal/domain/catalog/valueobjects"
	apperrors "toolvault/internal/shared/errors"
)

func TestToolRepository_List_LiveOnly(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewToolRepository(gdb)

	seedTool(t, gdb, repo, toolFixture{name: "Live Tool", live: true})
	seedTool(t, gdb, repo, toolFixture{name: "Pending Tool"})

	rejected := seedTool(t, gdb, repo, toolFixture{name: "Rejected Tool"})
	require.NoError(t, rejected.Reject())
	require.NoError(t, repo.Update(context.Background(), rejected))

	tools, total, err := repo.List(context.Background(), catalog.ListToolsFilter{Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, tools, 1)
	assert.Equal(t, "Live Tool", tools[0].Name())
}

func TestToolRepository_List_TotalCountsBeyondPage(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewToolRepository(gdb)

	for _, name := range []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon"} {
		seedTool(t, gdb, repo, toolFixture{name: name, live: true})
	}

	tools, total, err := repo.List(context.Background(), catalog.ListToolsFilter{
		Sort:  vo.SortName,
		Limit: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, tools, 2)
	assert.Equal(t, "Alpha", tools[0].Name())
	assert.Equal(t, "Beta", tools[1].Name())

	page2, total2, err := repo.List(context.Background(), catalog.ListToolsFilter{
		Sort:   vo.SortName,
		Limit:  2,
		Offset: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total2)
	require.Len(t, page2, 1)
	assert.Equal(t, "Gamma", page2[0].Name())
}

func TestToolRepository_List_EmptyPageIsNotAnError(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewToolRepository(gdb)

	seedTool(t, gdb, repo, toolFixture{name: "Only One", live: true})

	tools, total, err := repo.List(context.Background(), catalog.ListToolsFilter{Limit: 20, Offset: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Empty(t, tools)
}

func TestToolRepository_List_SortOrders(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewToolRepository(gdb)

	seedTool(t, gdb, repo, toolFixture{name: "Zeta", live: true, views: 10, overallScore: scorePtr(6.0)})
	seedTool(t, gdb, repo, toolFixture{name: "Alpha", live: true, views: 300, overallScore: scorePtr(9.5)})
	seedTool(t, gdb, repo, toolFixture{name: "Mid", live: true, views: 50, overallScore: scorePtr(8.0)})

	byPopularity, _, err := repo.List(context.Background(), catalog.ListToolsFilter{Sort: vo.SortPopularity, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Mid", "Zeta"}, names(byPopularity))

	byName, _, err := repo.List(context.Background(), catalog.ListToolsFilter{Sort: vo.SortName, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Mid", "Zeta"}, names(byName))

	byRating, _, err := repo.List(context.Background(), catalog.ListToolsFilter{Sort: vo.SortRating, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Mid", "Zeta"}, names(byRating))
}

func TestToolRepository_List_SearchCaseInsensitive(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewToolRepository(gdb)

	seedTool(t, gdb, repo, toolFixture{name: "ChatGPT", live: true})
	seedTool(t, gdb, repo, toolFixture{name: "Writer", shortDesc: "drafting with chat assistance", live: true})
	seedTool(t, gdb, repo, toolFixture{name: "Painter", live: true})

	tools, total, err := repo.List(context.Background(), catalog.ListToolsFilter{
		Search: "CHAT",
		Sort:   vo.SortName,
		Limit:  20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, []string{"ChatGPT", "Writer"}, names(tools))
}

func TestToolRepository_List_SearchLiteralWildcards(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewToolRepository(gdb)

	seedTool(t, gdb, repo, toolFixture{name: "Scale 100% Fast", live: true})
	seedTool(t, gdb, repo, toolFixture{name: "Scale 1000 Fast", live: true})

	tools, total, err := repo.List(context.Background(), catalog.ListToolsFilter{
		Search: "100%",
		Sort:   vo.SortName,
		Limit:  20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, []string{"Scale 100% Fast"}, names(tools))
}

func TestToolRepository_List_EnumFilters(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewToolRepository(gdb)

	seedTool(t, gdb, repo, toolFixture{name: "Free Easy", live: true, pricingModel: vo.PricingFree, difficultyLevel: vo.DifficultyBeginner})
	seedTool(t, gdb, repo, toolFixture{name: "Paid Hard", live: true, pricingModel: vo.PricingPaid, difficultyLevel: vo.DifficultyExpert})

	paid := vo.PricingPaid
	tools, total, err := repo.List(context.Background(), catalog.ListToolsFilter{PricingModel: &paid, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Paid Hard", tools[0].Name())

	expert := vo.DifficultyExpert
	tools, _, err = repo.List(context.Background(), catalog.ListToolsFilter{DifficultyLevel: &expert, Limit: 20})
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal(t, "Paid Hard", tools[0].Name())
}

func TestToolRepository_List_CategoryFilter(t *testing.T) {
	gdb := setupTestDB(t)
	toolRepo := NewToolRepository(gdb)
	catRepo := NewCategoryRepository(gdb)

	cat, err := catalog.NewCategory("Writing", "writing", "", "", "")
	require.NoError(t, err)
	require.NoError(t, catRepo.Create(context.Background(), cat))
	catID := cat.ID()

	seedTool(t, gdb, toolRepo, toolFixture{name: "In Category", live: true, categoryID: &catID})
	seedTool(t, gdb, toolRepo, toolFixture{name: "No Category", live: true})

	tools, total, err := toolRepo.List(context.Background(), catalog.ListToolsFilter{CategoryID: &catID, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "In Category", tools[0].Name())
}

func TestToolRepository_ListFeatured(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewToolRepository(gdb)

	seedTool(t, gdb, repo, toolFixture{name: "Featured Low", live: true, featured: true, views: 5})
	seedTool(t, gdb, repo, toolFixture{name: "Featured High", live: true, featured: true, views: 500})
	seedTool(t, gdb, repo, toolFixture{name: "Live Plain", live: true, views: 900})

	tools, err := repo.ListFeatured(context.Background(), 6)
	require.NoError(t, err)
	assert.Equal(t, []string{"Featured High", "Featured Low"}, names(tools))
}

func TestToolRepository_ListLiveByIDs(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewToolRepository(gdb)

	b := seedTool(t, gdb, repo, toolFixture{name: "Bravo", live: true})
	a := seedTool(t, gdb, repo, toolFixture{name: "Alpha", live: true})
	pending := seedTool(t, gdb, repo, toolFixture{name: "Pending"})

	tools, err := repo.ListLiveByIDs(context.Background(), []uint{b.ID(), a.ID(), pending.ID(), 99999})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Bravo"}, names(tools), "live only, ordered by name, unknown ids dropped")
}

func TestToolRepository_IncrementViews_Concurrent(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewToolRepository(gdb)

	tool := seedTool(t, gdb, repo, toolFixture{name: "Counter", live: true})

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.IncrementViews(context.Background(), tool.ID()))
		}()
	}
	wg.Wait()

	stored, err := repo.GetByID(context.Background(), tool.ID())
	require.NoError(t, err)
	assert.Equal(t, uint(n), stored.Views())
}

func TestToolRepository_IncrementViews_Missing(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewToolRepository(gdb)

	err := repo.IncrementViews(context.Background(), 12345)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestToolRepository_RoundTripDetailFields(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewToolRepository(gdb)

	scores, err := vo.NewEvaluationScores(8, 9, 7, 6, 8)
	require.NoError(t, err)

	tool, err := catalog.NewTool(catalog.NewToolParams{
		Name:             "Round Trip",
		Slug:             "round-trip",
		ShortDescription: "short",
		Website:          "https://roundtrip.dev",
		PricingModel:     vo.PricingFreemium,
		DifficultyLevel:  vo.DifficultyIntermediate,
		KeyFeatures:      []string{"one", "two"},
		Pros:             []string{"fast"},
		Cons:             []string{"pricey"},
		Faqs:             []catalog.FAQ{{Question: "Q", Answer: "A"}},
		PricingTiers:     []catalog.PricingTier{{Name: "Pro", Price: "$10", Features: []string{"all"}}},
	}, 3, true)
	require.NoError(t, err)
	tool.SetScores(scores)
	require.NoError(t, repo.Create(context.Background(), tool))

	stored, err := repo.GetBySlug(context.Background(), "round-trip")
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, stored.KeyFeatures())
	require.Len(t, stored.Faqs(), 1)
	assert.Equal(t, "Q", stored.Faqs()[0].Question)
	require.Len(t, stored.PricingTiers(), 1)
	assert.Equal(t, "Pro", stored.PricingTiers()[0].Name)
	require.NotNil(t, stored.OverallScore())
	assert.InDelta(t, 7.6, *stored.OverallScore(), 0.001)
	assert.True(t, stored.IsPremiumListing())
	require.NotNil(t, stored.SubmittedBy())
	assert.Equal(t, uint(3), *stored.SubmittedBy())
}

func names(tools []*catalog.Tool) []string {
	out := make([]string, 0, len(tools))
	for _, tool := range tools {
		out = append(out, tool.Name())
	}
	return out
}
