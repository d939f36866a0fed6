package token

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"jirant/internal/infrastructure/auth"
	"jirant/internal/interfaces/cli/clienv"
	"jirant/internal/shared/authorization"
)

var (
	env        string
	configPath string
	userID     string
	role       string
	ttl        time.Duration
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for development",
		Long:  `Sign a bearer token with the configured JWT secret. Intended for local development and tests.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&userID, "user", "u", "", "User ID carried by the token (required)")
	cmd.Flags().StringVarP(&role, "role", "r", string(authorization.RoleUser), "Role: user or admin")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime (default: auth.jwt.access_exp_minutes)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, _, err := clienv.Load(clienv.GinMode(env), configPath)
	if err != nil {
		return err
	}

	parsed := authorization.UserRole(role)
	if !parsed.IsValid() {
		return fmt.Errorf("invalid role %q", role)
	}

	svc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	var token string
	if ttl > 0 {
		token, err = svc.GenerateWithExpiry(userID, parsed, ttl)
	} else {
		token, err = svc.Generate(userID, parsed)
	}
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
