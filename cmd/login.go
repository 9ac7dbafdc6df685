package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	tokenadapter "github.com/umesh576/servicehub-cli/internal/adapters/token"
)

func newLoginCmd(app *app) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Exchange credentials for a session token and store it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := app.client.Login(cmd.Context(), email, password)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}

			if err := app.creds.Set(cmd.Context(), token); err != nil {
				return fmt.Errorf("store session token: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged in.")

			if claims, err := tokenadapter.Peek(token); err == nil && !claims.ExpiresAt.IsZero() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Session valid until %s\n", claims.ExpiresAt.Format("2006-01-02 03:04 PM"))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Destroy the current session and its stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.validator.Destroy(cmd.Context(), nil); err != nil {
				return fmt.Errorf("logout: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}
