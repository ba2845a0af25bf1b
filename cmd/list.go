package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-league-stats/internal/report"
	"github.com/pable/go-league-stats/internal/storage"
)

var listCmd = &cobra.Command{
	Use:       "list <leagues|teams|players|coaches|matches>",
	Short:     "List one stored collection",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"leagues", "teams", "players", "coaches", "matches"},
	RunE:      runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := openStorage()
	if err != nil {
		return err
	}
	defer db.Close()
	return printCollection(cmd.Context(), db, args[0])
}

// printCollection renders the named collection from the snapshot.
func printCollection(ctx context.Context, db *storage.DB, kind string) error {
	empty := func(n int) bool {
		if n == 0 {
			fmt.Fprintf(os.Stdout, "No %s stored. Run 'leaguestats fetch' first.\n", kind)
			return true
		}
		return false
	}

	switch kind {
	case "leagues":
		leagues, err := db.ListLeagues(ctx)
		if err != nil {
			return fmt.Errorf("list leagues: %w", err)
		}
		if !empty(len(leagues)) {
			report.PrintLeagues(os.Stdout, leagues)
		}
	case "teams":
		teams, err := db.ListTeams(ctx)
		if err != nil {
			return fmt.Errorf("list teams: %w", err)
		}
		if !empty(len(teams)) {
			report.PrintTeams(os.Stdout, teams)
		}
	case "players":
		players, err := db.ListPlayers(ctx)
		if err != nil {
			return fmt.Errorf("list players: %w", err)
		}
		if !empty(len(players)) {
			report.PrintPlayers(os.Stdout, players)
		}
	case "coaches":
		coaches, err := db.ListCoaches(ctx)
		if err != nil {
			return fmt.Errorf("list coaches: %w", err)
		}
		if !empty(len(coaches)) {
			report.PrintCoaches(os.Stdout, coaches)
		}
	case "matches":
		matches, err := db.ListMatches(ctx)
		if err != nil {
			return fmt.Errorf("list matches: %w", err)
		}
		if !empty(len(matches)) {
			report.PrintMatches(os.Stdout, matches)
		}
	default:
		return fmt.Errorf("unknown collection %q (want leagues, teams, players, coaches or matches)", kind)
	}
	return nil
}
