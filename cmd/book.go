package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/umesh576/servicehub-cli/internal/adapters/render/booking"
	"github.com/umesh576/servicehub-cli/internal/application"
	"github.com/umesh576/servicehub-cli/internal/domain"
)

func newBookCmd(app *app) *cobra.Command {
	var date string
	var timeSlot string
	var message string

	cmd := &cobra.Command{
		Use:   "book <service-id>",
		Short: "Submit a booking request for a service",
		Long:  "book resolves your session and the chosen service, validates the booking form, and submits the request. Time slots run hourly from 09:00 AM to 07:00 PM.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			serviceID, err := parsePositiveID(args[0], "service id")
			if err != nil {
				return err
			}

			orchestrator := app.newOrchestrator(application.EntryRoute)
			redirect := fmt.Sprintf("book-service/%d", serviceID)

			err = runResolveSpinner(cmd.Context(), cmd.ErrOrStderr(), "Loading booking details...", func(ctx context.Context) error {
				return orchestrator.Begin(ctx, serviceID)
			})
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					outcome := application.Outcome{
						Kind:     application.OutcomeServiceMissing,
						Message:  "Service not found",
						Navigate: domain.NavigateServiceList(),
					}
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), booking.RenderOutcome(outcome))
					return err
				}
				return reportRejection(cmd.ErrOrStderr(), err, redirect)
			}

			return runBookingSubmission(cmd, orchestrator, date, timeSlot, message)
		},
	}

	bindBookingFlags(cmd, &date, &timeSlot, &message)

	return cmd
}

func bindBookingFlags(cmd *cobra.Command, date, timeSlot, message *string) {
	cmd.Flags().StringVar(date, "date", "", "Service date (YYYY-MM-DD, today through today+60)")
	cmd.Flags().StringVar(timeSlot, "time", "", `Time slot, e.g. "11:00 AM"`)
	cmd.Flags().StringVar(message, "message", "", "Service requirement description (min 10 characters)")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("time")
	_ = cmd.MarkFlagRequired("message")
}

func runBookingSubmission(cmd *cobra.Command, orchestrator *application.Orchestrator, date, timeSlot, message string) error {
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), booking.RenderService(orchestrator.Service()))

	form := orchestrator.Form()
	form.SetDate(date)
	form.SetTimeSlot(timeSlot)
	form.SetMessage(message)

	outcome, err := orchestrator.Submit(cmd.Context())
	if err != nil {
		if errors.Is(err, domain.ErrSubmissionInFlight) {
			return err
		}
		return fmt.Errorf("submit booking: %w", err)
	}

	if outcome.Kind == application.OutcomeBlocked && outcome.Missing == application.MissingDraft {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), booking.RenderFieldErrors(form.Errors()))
		return errors.New("booking form has validation errors")
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), booking.RenderOutcome(outcome))

	if outcome.Kind == application.OutcomeSuccess {
		// Linger on the success message before handing the terminal back.
		time.Sleep(application.SuccessNavigateDelay)
		return nil
	}

	return errors.New(outcome.Message)
}
