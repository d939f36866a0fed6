package seed

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"jirant/internal/application/tickettemplate/usecases"
	"jirant/internal/infrastructure/database"
	"jirant/internal/infrastructure/repository"
	"jirant/internal/infrastructure/template"
	"jirant/internal/interfaces/cli/clienv"
)

var (
	env        string
	configPath string
	userID     string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Give a user the default ticket types",
		Long:  `Create the default ticket types for a user. Names the user already owns are skipped, so the command can be rerun safely.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&userID, "user", "u", "", "User ID to seed (required)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := clienv.LoadWithDatabase(clienv.GinMode(env), configPath)
	if err != nil {
		return err
	}
	defer database.Close()

	uc := usecases.NewSeedDefaultTicketTypesUseCase(
		repository.NewTicketTemplateRepository(database.Get(), log),
		template.NewDefaultTemplateLoader(cfg.Templates.DefaultsPath, log),
		log,
	)

	result, err := uc.Execute(cmd.Context(), usecases.SeedDefaultTicketTypesCommand{UserID: strings.TrimSpace(userID)})
	if err != nil {
		return fmt.Errorf("failed to seed default ticket types: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, created := range result.Created {
		fmt.Fprintf(out, "created  %s  %s\n", created.ID, created.Name)
	}
	for _, skipped := range result.Skipped {
		fmt.Fprintf(out, "skipped  %s (already exists)\n", skipped)
	}
	return nil
}
