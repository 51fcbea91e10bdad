// Package cmd provides the CLI commands for the league record manager.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/guilhermegouw/leaguebook/internal/tui"
)

// rootFlags are the persistent flags shared by every command.
type rootFlags struct {
	backend string
	data    string
	debug   bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "league",
		Short: "Sports league record manager",
		Long: `League keeps the record of a sports league: its players, teams,
matches and the finances derived from them.

Run without arguments on a terminal to open the interactive console.
When stdin is not a terminal, each input line is run as one command:

  league < season.txt
  echo "listTeam" | league`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConsole(cmd, flags)
		},
	}

	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Enable debug logging to debug.log in the data directory")
	cmd.PersistentFlags().StringVar(&flags.data, "data", "", "Data file to use instead of the configured one")
	cmd.PersistentFlags().StringVar(&flags.backend, "backend", "", "Storage backend (json or sqlite)")

	cmd.AddCommand(newExecCmd(flags))
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newStatusCmd(flags))
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runConsole(cmd *cobra.Command, flags *rootFlags) error {
	a, err := openApp(cmd.Context(), flags)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }() //nolint:errcheck // best-effort cleanup

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return runScript(cmd.Context(), a.ctrl, cmd.InOrStdin(), cmd.OutOrStdout())
	}
	if err := tui.Run(cmd.Context(), a.ctrl, a.hub); err != nil {
		return fmt.Errorf("running console: %w", err)
	}
	return nil
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}
