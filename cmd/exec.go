package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/guilhermegouw/leaguebook/internal/tui"
)

func newExecCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <command...>",
		Short: "Run one league command",
		Long: `Run a single league command, print its reply and save the league.

Examples:
  league exec listTeam
  league exec addTeam Arsenal c/England s/90000000 w/26 d/6 l/6`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }() //nolint:errcheck // best-effort cleanup

			result, err := a.ctrl.Execute(cmd.Context(), strings.Join(args, " "))
			if _, werr := fmt.Fprintln(cmd.OutOrStdout(), tui.RenderResult(result, 0)); werr != nil {
				return fmt.Errorf("writing reply: %w", werr)
			}
			return err
		},
	}
}
