package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/umesh576/servicehub-cli/internal/application"
)

// rebook is the profile-resolved entry shape: the service id comes from the
// booking already linked to the user's profile instead of the command line.
func newRebookCmd(app *app) *cobra.Command {
	var date string
	var timeSlot string
	var message string

	cmd := &cobra.Command{
		Use:   "rebook",
		Short: "Book the service linked from your profile again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.validator.Validate(cmd.Context())
			if err != nil {
				return reportRejection(cmd.ErrOrStderr(), err, "profile")
			}

			var view application.ProfileView
			err = runResolveSpinner(cmd.Context(), cmd.ErrOrStderr(), "Loading booking details...", func(ctx context.Context) error {
				var resolveErr error
				view, resolveErr = app.resolver.ResolveProfile(ctx, session, session.Identity.ID)
				return resolveErr
			})
			if err != nil {
				return fmt.Errorf("resolve profile: %w", err)
			}

			if view.Service == nil {
				return errors.New("no service is linked to your profile yet")
			}

			orchestrator := app.newOrchestrator(application.EntryResolved)
			orchestrator.Adopt(session, *view.Service)

			return runBookingSubmission(cmd, orchestrator, date, timeSlot, message)
		},
	}

	bindBookingFlags(cmd, &date, &timeSlot, &message)

	return cmd
}
