package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/guilhermegouw/leaguebook/internal/config"
	"github.com/guilhermegouw/leaguebook/internal/debug"
)

func newStatusCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the league size, storage and configuration",
		Long: `Display the current league status including:
  - Storage backend and data file
  - Number of players, teams and matches
  - Event broker statistics for this run
  - Configuration and debug log locations`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }() //nolint:errcheck // best-effort cleanup

			printStatus(cmd.OutOrStdout(), a)
			return nil
		},
	}
}

func printStatus(w io.Writer, a *app) {
	league := a.ctrl.League()
	players, teams, matches := league.Counts()

	fmt.Fprintln(w, "League Status")
	fmt.Fprintln(w, strings.Repeat("─", 40))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Backend:   %s\n", a.cfg.Backend())
	fmt.Fprintf(w, "Data File: %s\n", a.ctrl.StoragePath())
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Record:")
	fmt.Fprintf(w, "  Players: %d\n", players)
	fmt.Fprintf(w, "  Teams:   %d\n", teams)
	fmt.Fprintf(w, "  Matches: %d\n", matches)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events:")
	for _, m := range a.hub.AllMetrics() {
		fmt.Fprintf(w, "  %s: published=%d dropped=%d subscribers=%d\n",
			m.Name, m.PublishCount, m.DropCount, m.SubscriberCount)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Config File: %s\n", config.GlobalConfigPath())
	if debug.IsEnabled() {
		fmt.Fprintf(w, "Debug Log:   %s\n", debug.LogPath())
	} else {
		fmt.Fprintln(w, "Debug Log:   off")
	}
}
