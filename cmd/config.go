package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/umesh576/servicehub-cli/internal/adapters/config"
)

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and manage configuration",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the active configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "api base url: %s\n", app.cfg.BaseURL)
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "credential path: %s\n", app.cfg.CredentialPath)
				return nil
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Write the active configuration to ~/.servicehub/config.toml",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				path, err := config.WriteDefault(app.cfg)
				if err != nil {
					return fmt.Errorf("init config: %w", err)
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
				return nil
			},
		},
	)

	return cmd
}
