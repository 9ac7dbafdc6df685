package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	tokenadapter "github.com/umesh576/servicehub-cli/internal/adapters/token"
)

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Validate the stored session and show the resolved identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.validator.Validate(cmd.Context())
			if err != nil {
				return reportRejection(cmd.ErrOrStderr(), err, "")
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (#%d)\n", session.Identity.Name, session.Identity.ID)
			if session.Identity.Role != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "role: %s\n", session.Identity.Role)
			}

			// Unverified claims are shown for information only; the identity
			// above is always the authority's answer.
			if claims, peekErr := tokenadapter.Peek(session.Token); peekErr == nil {
				if claims.Email != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "email: %s\n", claims.Email)
				}
				if !claims.ExpiresAt.IsZero() {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "token expires: %s\n", claims.ExpiresAt.Format("2006-01-02 03:04 PM"))
				}
			}

			return nil
		},
	}
}
