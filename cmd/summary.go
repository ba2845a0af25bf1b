package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-league-stats/internal/aggregator"
	"github.com/pable/go-league-stats/internal/model"
	"github.com/pable/go-league-stats/internal/report"
)

var summaryLive bool

// summaryCmd is the cobra command for the dashboard-style overview.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show headline counters, top teams and players per league",
	Long: `Display the totals for every collection, finished vs pending matches,
the top-8 standings table and the player distribution by league.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().BoolVar(&summaryLive, "live", false, "fetch from the API instead of the local snapshot")
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if !summaryLive {
		info, err := snapshotInfo(ctx)
		if err != nil {
			return fmt.Errorf("read snapshot info: %w", err)
		}
		if info == nil {
			fmt.Fprintln(os.Stdout, "No snapshot stored yet. Run 'leaguestats fetch' to create one.")
			return nil
		}
		report.PrintSnapshotHeader(os.Stdout, info.Source, info.FetchedAt)
	}

	snap, err := loadSnapshot(ctx, cfg, cfg.NewLogger(), summaryLive)
	if err != nil {
		return err
	}
	printSummary(snap)
	return nil
}

func printSummary(snap model.Snapshot) {
	fmt.Fprintf(os.Stdout, "=== League Summary ===\n\n")
	report.PrintOverview(os.Stdout, aggregator.ComputeOverview(snap))

	fmt.Fprintf(os.Stdout, "\n--- Top Teams ---\n\n")
	report.PrintStandings(os.Stdout, aggregator.ComputeStandings(snap.Matches, snap.Teams), 0)

	fmt.Fprintf(os.Stdout, "\n--- Players per League ---\n\n")
	report.PrintDistribution(os.Stdout, aggregator.ComputeDistribution(snap.Leagues, snap.Players))
}
