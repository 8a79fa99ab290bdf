package mappers

import (
	"toolvault/internal/domain/comparison"
	"toolvault/internal/domain/favorite"
	"toolvault/internal/infrastructure/persistence/models"
)

func FavoriteToModel(f *favorite.Favorite) *models.FavoriteModel {
	return &models.FavoriteModel{
		ID:        f.ID(),
		UserID:    f.UserID(),
		ToolID:    f.ToolID(),
		CreatedAt: f.CreatedAt(),
	}
}

func FavoriteToDomain(m *models.FavoriteModel) *favorite.Favorite {
	return favorite.ReconstructFavorite(m.ID, m.UserID, m.ToolID, m.CreatedAt)
}

func FavoritesToDomain(ms []*models.FavoriteModel) []*favorite.Favorite {
	out := make([]*favorite.Favorite, 0, len(ms))
	for _, m := range ms {
		out = append(out, FavoriteToDomain(m))
	}
	return out
}

func ComparisonToModel(c *comparison.Comparison) *models.ComparisonModel {
	return &models.ComparisonModel{
		ID:        c.ID(),
		UserID:    c.UserID(),
		ToolIDs:   models.UintList(c.ToolIDs()),
		CreatedAt: c.CreatedAt(),
	}
}

func ComparisonToDomain(m *models.ComparisonModel) *comparison.Comparison {
	return comparison.ReconstructComparison(m.ID, m.UserID, m.ToolIDs, m.CreatedAt)
}
