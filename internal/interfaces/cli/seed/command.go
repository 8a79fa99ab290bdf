package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"toolvault/internal/infrastructure/config"
	"toolvault/internal/infrastructure/database"
	"toolvault/internal/infrastructure/persistence/seeds"
	"toolvault/internal/infrastructure/repository"
	"toolvault/internal/shared/logger"
)

var (
	env  string
	path string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed reference data",
		Long:  `Load the default categories into an empty database. Seeding is skipped when categories already exist.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVar(&path, "file", "./internal/infrastructure/persistence/seeds/categories.yaml", "Path to the category seed file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	categoryRepo := repository.NewCategoryRepository(database.Get())
	seeder := seeds.NewSeeder(categoryRepo, logger.NewLogger())

	if err := seeder.SeedCategories(context.Background(), path); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	logger.Info("seeding completed")
	return nil
}
