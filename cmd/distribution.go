package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-league-stats/internal/aggregator"
	"github.com/pable/go-league-stats/internal/report"
)

var (
	distributionLive bool
	distributionJSON bool
)

var distributionCmd = &cobra.Command{
	Use:   "distribution",
	Short: "Show players per league, relative to the largest league",
	Args:  cobra.NoArgs,
	RunE:  runDistribution,
}

func init() {
	distributionCmd.Flags().BoolVar(&distributionLive, "live", false, "fetch from the API instead of the local snapshot")
	distributionCmd.Flags().BoolVar(&distributionJSON, "json", false, "print rows as JSON")
}

func runDistribution(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	snap, err := loadSnapshot(cmd.Context(), cfg, cfg.NewLogger(), distributionLive)
	if err != nil {
		return err
	}

	rows := aggregator.ComputeDistribution(snap.Leagues, snap.Players)
	if distributionJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	report.PrintDistribution(os.Stdout, rows)
	return nil
}
