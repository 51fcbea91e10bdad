package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/guilhermegouw/leaguebook/internal/export"
)

func newExportCmd(flags *rootFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <players|teams|matches|finances>",
		Short: "Export one collection as CSV",
		Long: `Write one collection of the league as a CSV table, one header row
followed by one row per entry. Finances are computed from the current
teams and players without changing the saved league.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := export.ParseKind(args[0])
			if err != nil {
				return err
			}

			a, err := openApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }() //nolint:errcheck // best-effort cleanup

			if output == "" {
				return export.Write(cmd.OutOrStdout(), kind, a.ctrl.League())
			}

			f, err := os.Create(output) //nolint:gosec // user-chosen output path
			if err != nil {
				return fmt.Errorf("creating %s: %w", output, err)
			}
			defer func() { _ = f.Close() }() //nolint:errcheck // write errors surface through Sync

			if err := export.Write(f, kind, a.ctrl.League()); err != nil {
				return err
			}
			if err := f.Sync(); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %s to %s\n", kind, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")

	return cmd
}
