package http

import (
	"gorm.io/gorm"

	"toolvault/internal/infrastructure/repository"
)

// repositories groups the persistence adapters shared by the use cases.
type repositories struct {
	user       *repository.UserRepository
	session    *repository.SessionRepository
	category   *repository.CategoryRepository
	tool       *repository.ToolRepository
	review     *repository.ReviewRepository
	favorite   *repository.FavoriteRepository
	comparison *repository.ComparisonRepository
}

func buildRepositories(gormDB *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(gormDB),
		session:    repository.NewSessionRepository(gormDB),
		category:   repository.NewCategoryRepository(gormDB),
		tool:       repository.NewToolRepository(gormDB),
		review:     repository.NewReviewRepository(gormDB),
		favorite:   repository.NewFavoriteRepository(gormDB),
		comparison: repository.NewComparisonRepository(gormDB),
	}
}
