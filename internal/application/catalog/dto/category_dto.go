package dto

import "toolvault/internal/domain/catalog"

// CategoryDTO is the API shape of a category.
type CategoryDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
}

func CategoryToDTO(c *catalog.Category) *CategoryDTO {
	if c == nil {
		return nil
	}
	return &CategoryDTO{
		ID:          c.ID(),
		Name:        c.Name(),
		Slug:        c.Slug(),
		Description: c.Description(),
		Icon:        c.Icon(),
		Color:       c.Color(),
	}
}

func CategoriesToDTO(categories []*catalog.Category) []*CategoryDTO {
	out := make([]*CategoryDTO, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryToDTO(c))
	}
	return out
}
