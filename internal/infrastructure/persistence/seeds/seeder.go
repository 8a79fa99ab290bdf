package seeds

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"toolvault/internal/domain/catalog"
	"toolvault/internal/shared/logger"
)

type categoryEntry struct {
	Name        string `yaml:"name"`
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Color       string `yaml:"color"`
}

type seedFile struct {
	Categories []categoryEntry `yaml:"categories"`
}

// Seeder loads the default catalog data from a YAML file.
type Seeder struct {
	categoryRepo catalog.CategoryRepository
	logger       logger.Interface
}

func NewSeeder(categoryRepo catalog.CategoryRepository, log logger.Interface) *Seeder {
	return &Seeder{
		categoryRepo: categoryRepo,
		logger:       log,
	}
}

// SeedCategories inserts the categories from path. An already-seeded store
// is left untouched.
func (s *Seeder) SeedCategories(ctx context.Context, path string) error {
	count, err := s.categoryRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		s.logger.Infow("categories already seeded, skipping", "count", count)
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	for _, entry := range file.Categories {
		category, err := catalog.NewCategory(entry.Name, entry.Slug, entry.Description, entry.Icon, entry.Color)
		if err != nil {
			return fmt.Errorf("invalid seed category %q: %w", entry.Name, err)
		}
		if err := s.categoryRepo.Create(ctx, category); err != nil {
			return fmt.Errorf("failed to create category %q: %w", entry.Name, err)
		}
	}

	s.logger.Infow("seeded default categories", "count", len(file.Categories))
	return nil
}
