package catalog

import (
	"fmt"
	"strings"
	"time"

	"toolvault/internal/shared/biztime"
)

// Category groups tools into browsable sections of the directory.
type Category struct {
	id          uint
	name        string
	slug        string
	description string
	icon        string
	color       string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCategory(name, slug, description, icon, color string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("category name cannot be empty")
	}
	if strings.TrimSpace(slug) == "" {
		return nil, fmt.Errorf("category slug cannot be empty")
	}

	now := biztime.NowUTC()
	return &Category{
		name:        name,
		slug:        slug,
		description: description,
		icon:        icon,
		color:       color,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructCategory(id uint, name, slug, description, icon, color string, createdAt, updatedAt time.Time) *Category {
	return &Category{
		id:          id,
		name:        name,
		slug:        slug,
		description: description,
		icon:        icon,
		color:       color,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (c *Category) SetID(id uint) {
	c.id = id
}

func (c *Category) ID() uint             { return c.id }
func (c *Category) Name() string         { return c.name }
func (c *Category) Slug() string         { return c.slug }
func (c *Category) Description() string  { return c.description }
func (c *Category) Icon() string         { return c.icon }
func (c *Category) Color() string        { return c.color }
func (c *Category) CreatedAt() time.Time { return c.createdAt }
func (c *Category) UpdatedAt() time.Time { return c.updatedAt }
