package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-league-stats/internal/aggregator"
	"github.com/pable/go-league-stats/internal/report"
)

var (
	standingsLive bool
	standingsTeam int
	standingsJSON bool
)

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show the top-8 standings table from finished matches",
	Args:  cobra.NoArgs,
	RunE:  runStandings,
}

func init() {
	standingsCmd.Flags().BoolVar(&standingsLive, "live", false, "fetch from the API instead of the local snapshot")
	standingsCmd.Flags().IntVar(&standingsTeam, "team", 0, "highlight team ID")
	standingsCmd.Flags().BoolVar(&standingsJSON, "json", false, "print rows as JSON")
}

func runStandings(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	snap, err := loadSnapshot(cmd.Context(), cfg, cfg.NewLogger(), standingsLive)
	if err != nil {
		return err
	}

	rows := aggregator.ComputeStandings(snap.Matches, snap.Teams)
	if standingsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	report.PrintStandings(os.Stdout, rows, standingsTeam)
	return nil
}
