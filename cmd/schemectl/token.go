package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/netscheme-backend/internal/auth"
	"github.com/heartmarshall/netscheme-backend/internal/domain"
)

func newTokenCmd(e *env) *cobra.Command {
	var user, role string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token signed with the configured secret",
		Long: `Mint an access token for scripts and smoke tests. The token carries
the given user id and role and expires after auth.access_token_ttl.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := uuid.Parse(user)
			if err != nil {
				return fmt.Errorf("--user: %w", err)
			}
			r := domain.UserRole(role)
			if !r.IsValid() {
				return fmt.Errorf("--role: unknown role %q", role)
			}
			if err := e.load(); err != nil {
				return err
			}

			jwt := auth.NewJWTManager(e.cfg.Auth.JWTSecret, e.cfg.Auth.JWTIssuer, e.cfg.Auth.AccessTokenTTL)
			tok, err := jwt.GenerateAccessToken(userID, r)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "user id (uuid)")
	cmd.Flags().StringVar(&role, "role", string(domain.UserRoleMaker), "admin, maker or checker")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
