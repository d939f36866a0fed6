package main

import (
	"os"

	"github.com/spf13/cobra"

	"jirant/internal/interfaces/cli/migrate"
	"jirant/internal/interfaces/cli/seed"
	"jirant/internal/interfaces/cli/server"
	"jirant/internal/interfaces/cli/token"
	"jirant/internal/shared/version"
)

// @title Jirant API
// @version 1.0
// @description Structured ticket generation from user-defined ticket types, with a ticket relationship graph.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	rootCmd := &cobra.Command{
		Use:     "jirant",
		Short:   "Jirant - AI-assisted ticket writing",
		Long:    `Jirant turns short descriptions into structured tickets using user-defined ticket types, with a relationship graph between tickets.`,
		Version: version.String(),
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
