package mappers

import (
	"toolvault/internal/domain/catalog"
	"toolvault/internal/infrastructure/persistence/models"
)

func CategoryToModel(c *catalog.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:          c.ID(),
		Name:        c.Name(),
		Slug:        c.Slug(),
		Description: c.Description(),
		Icon:        c.Icon(),
		Color:       c.Color(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

func CategoryToDomain(m *models.CategoryModel) *catalog.Category {
	return catalog.ReconstructCategory(m.ID, m.Name, m.Slug, m.Description, m.Icon, m.Color, m.CreatedAt, m.UpdatedAt)
}

func CategoriesToDomain(ms []*models.CategoryModel) []*catalog.Category {
	out := make([]*catalog.Category, 0, len(ms))
	for _, m := range ms {
		out = append(out, CategoryToDomain(m))
	}
	return out
}
