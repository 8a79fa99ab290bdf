package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"toolvault/internal/domain/catalog"
	vo "toolvault/internal/domain/catalog/valueobjects"
	"toolvault/internal/infrastructure/persistence/models"
)

// setupTestDB opens an in-memory SQLite store. A single connection keeps
// the shared memory database visible to every goroutine in a test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(
		&models.ToolModel{},
		&models.CategoryModel{},
		&models.UserModel{},
		&models.SessionModel{},
		&models.ReviewModel{},
		&models.FavoriteModel{},
		&models.ComparisonModel{},
	))
	return gdb
}

type toolFixture struct {
	name            string
	pricingModel    vo.PricingModel
	difficultyLevel vo.DifficultyLevel
	categoryID      *uint
	shortDesc       string
	live            bool
	featured        bool
	views           uint
	overallScore    *float64
}

func seedTool(t *testing.T, gdb *gorm.DB, repo *ToolRepository, f toolFixture) *catalog.Tool {
	t.Helper()

	if f.pricingModel == "" {
		f.pricingModel = vo.PricingFree
	}
	if f.difficultyLevel == "" {
		f.difficultyLevel = vo.DifficultyBeginner
	}
	if f.shortDesc == "" {
		f.shortDesc = f.name + " short description"
	}

	tool, err := catalog.NewTool(catalog.NewToolParams{
		Name:             f.name,
		Slug:             slugFor(f.name),
		ShortDescription: f.shortDesc,
		Website:          "https://example.com/" + slugFor(f.name),
		PricingModel:     f.pricingModel,
		DifficultyLevel:  f.difficultyLevel,
		CategoryID:       f.categoryID,
	}, 1, false)
	require.NoError(t, err)

	if f.live {
		require.NoError(t, tool.Approve())
	}
	if f.featured {
		require.NoError(t, tool.SetFeatured(true))
	}

	require.NoError(t, repo.Create(context.Background(), tool))

	updates := map[string]interface{}{}
	if f.views > 0 {
		updates["views"] = f.views
	}
	if f.overallScore != nil {
		updates["overall_score"] = *f.overallScore
	}
	if len(updates) > 0 {
		require.NoError(t, gdb.Model(&models.ToolModel{}).Where("id = ?", tool.ID()).Updates(updates).Error)
	}
	return tool
}

func slugFor(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+32)
		default:
			out = append(out, '-')
		}
	}
	return string(out)
}

func scorePtr(v float64) *float64 {
	return &v
}
