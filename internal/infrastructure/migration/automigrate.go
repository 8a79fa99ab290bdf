package migration

import (
	"toolvault/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.SessionModel{},
		&models.CategoryModel{},
		&models.ToolModel{},
		&models.ReviewModel{},
		&models.FavoriteModel{},
		&models.ComparisonModel{},
	}
}
