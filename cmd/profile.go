package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/umesh576/servicehub-cli/internal/adapters/render/booking"
	"github.com/umesh576/servicehub-cli/internal/application"
)

func newProfileCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "profile [user-id]",
		Short: "Show a user profile with its linked booking and service",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.validator.Validate(cmd.Context())
			if err != nil {
				return reportRejection(cmd.ErrOrStderr(), err, "profile")
			}

			userID := session.Identity.ID
			if len(args) == 1 {
				userID, err = parsePositiveID(args[0], "user id")
				if err != nil {
					return err
				}
			}

			var view application.ProfileView
			err = runResolveSpinner(cmd.Context(), cmd.ErrOrStderr(), "Loading profile...", func(ctx context.Context) error {
				var resolveErr error
				view, resolveErr = app.resolver.ResolveProfile(ctx, session, userID)
				return resolveErr
			})
			if err != nil {
				return fmt.Errorf("resolve profile: %w", err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(view)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), booking.RenderProfile(view))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
