package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/go-league-stats/internal/report"
	"github.com/pable/go-league-stats/internal/storage"
)

var sqlCmd = &cobra.Command{
	Use:   "sql <query>",
	Short: "Run a raw SQL query against the local snapshot",
	Long: `Run an arbitrary SQL query against the snapshot database and print results as a table.

Schema overview:
  leagues(id, name, category, description)
  teams(id, name, nickname, league_id, league_name, coach_id, coach_name)
  players(id, name, position, number, age, team_id, team_name, league_id, league_name)
  coaches(id, name, experience_years, specialty)
  matches(id, match_date, venue, home_team_id, home_team_name, away_team_id,
    away_team_name, home_score, away_score, finished)
  snapshot_meta(id, fetched_at, source)

Note: home_score/away_score are NULL until a result is recorded; finished is 0 or 1.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSQL,
}

func runSQL(cmd *cobra.Command, args []string) error {
	db, err := openStorage()
	if err != nil {
		return err
	}
	defer db.Close()
	return runRawQuery(db, strings.Join(args, " "))
}

func runRawQuery(db *storage.DB, query string) error {
	cols, rows, err := db.QueryRaw(query)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stdout, "(no rows)")
		return nil
	}
	report.PrintRaw(os.Stdout, cols, rows)
	fmt.Fprintf(os.Stdout, "\n(%d rows)\n", len(rows))
	return nil
}
