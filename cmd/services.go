package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/umesh576/servicehub-cli/internal/adapters/render/booking"
)

func newServicesCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "services",
		Short: "List the service catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			listings, err := app.client.ListServices(cmd.Context())
			if err != nil {
				return fmt.Errorf("list services: %w", err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(listings)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), booking.RenderServiceList(listings))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.AddCommand(newServicesShowCmd(app))

	return cmd
}

func newServicesShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <service-id>",
		Short: "Show one service listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			serviceID, err := parsePositiveID(args[0], "service id")
			if err != nil {
				return err
			}

			// The detail endpoint accepts an absent bearer credential.
			token, _ := app.creds.Get(cmd.Context())

			listing, err := app.client.FetchService(cmd.Context(), token, serviceID)
			if err != nil {
				return fmt.Errorf("fetch service %d: %w", serviceID, err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), booking.RenderService(listing))
			return err
		},
	}
}

func parsePositiveID(raw, label string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive number, got %q", label, raw)
	}

	return n, nil
}
