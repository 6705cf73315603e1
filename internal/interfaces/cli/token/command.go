package token

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tripline/tripline/internal/infrastructure/auth"
	"github.com/tripline/tripline/internal/infrastructure/config"
	"github.com/tripline/tripline/internal/interfaces/cli/bootstrap"
	"github.com/tripline/tripline/internal/shared/constants"
)

var (
	env        string
	configPath string
	memberID   uint
	role       string
)

// NewCommand returns the command that signs access tokens with the configured
// secret. Member accounts live in an external identity service, so this is
// how operators obtain tokens for local testing.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token",
		Long:  `Sign a bearer token for a member using the configured JWT secret and issuer.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().UintVarP(&memberID, "member", "m", 0, "Member ID the token identifies (required)")
	cmd.Flags().StringVarP(&role, "role", "r", string(auth.RoleMember), "Role claim (member, admin)")
	_ = cmd.MarkFlagRequired("member")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, _, err := bootstrap.Load(env, configPath)
	if err != nil {
		return err
	}
	return issue(cmd.OutOrStdout(), cfg, memberID, auth.Role(role))
}

func issue(out io.Writer, cfg *config.Config, memberID uint, role auth.Role) error {
	if memberID == 0 {
		return fmt.Errorf("member id must be positive")
	}
	if !role.IsValid() {
		return fmt.Errorf("unknown role %q", role)
	}

	svc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer, cfg.Auth.JWT.AccessExpMinutes)
	signed, err := svc.Generate(memberID, role)
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}

	_, err = fmt.Fprintln(out, signed)
	return err
}
