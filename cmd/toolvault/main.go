package main

import (
	"os"

	"github.com/spf13/cobra"

	"toolvault/internal/interfaces/cli/migrate"
	"toolvault/internal/interfaces/cli/seed"
	"toolvault/internal/interfaces/cli/server"
)

// @title ToolVault API
// @version 1.0
// @description Backend for the ToolVault AI tool directory.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "toolvault",
		Short: "ToolVault - AI tool directory backend",
		Long:  `ToolVault serves the AI tool directory API: catalog, reviews, favorites, moderation, and billing.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
