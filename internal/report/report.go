package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/go-league-stats/internal/model"
)

// barWidth is the number of cells a 100% distribution bar occupies.
const barWidth = 20

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintStandings prints the standings table with a position column.
// If focusTeamID is non-zero, that team's row is marked with ">".
func PrintStandings(w io.Writer, rows []model.StandingsRow, focusTeamID int) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No finished matches yet.")
		return
	}
	table := newTable(w)
	table.Header(" ", "#", "TEAM", "LEAGUE", "P", "W", "D", "L", "GF", "GA", "GD", "PTS")
	for i, r := range rows {
		marker := " "
		if focusTeamID != 0 && r.TeamID == focusTeamID {
			marker = ">"
		}
		league := r.LeagueName
		if league == "" {
			league = "—"
		}
		table.Append(
			marker,
			strconv.Itoa(i+1),
			r.Name,
			league,
			strconv.Itoa(r.Played),
			strconv.Itoa(r.Won),
			strconv.Itoa(r.Drawn),
			strconv.Itoa(r.Lost),
			strconv.Itoa(r.GoalsFor),
			strconv.Itoa(r.GoalsAgainst),
			fmt.Sprintf("%+d", r.GoalDifference),
			strconv.Itoa(r.Points),
		)
	}
	table.Render()
}

// PrintDistribution prints players per league with a bar scaled to Percent.
func PrintDistribution(w io.Writer, rows []model.DistributionRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No leagues stored.")
		return
	}
	table := newTable(w)
	table.Header("LEAGUE", "PLAYERS", "%", "")
	for _, r := range rows {
		table.Append(
			r.League,
			strconv.Itoa(r.Count),
			fmt.Sprintf("%d%%", r.Percent),
			Bar(r.Percent),
		)
	}
	table.Render()
}

// Bar renders pct (0-100) as a left-aligned block bar of barWidth cells.
func Bar(pct int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := (pct*barWidth + 50) / 100
	return strings.Repeat("█", filled) + strings.Repeat("·", barWidth-filled)
}

// PrintOverview prints the headline counters.
func PrintOverview(w io.Writer, ov model.Overview) {
	fmt.Fprintf(w, "  Leagues       : %d\n", ov.Leagues)
	fmt.Fprintf(w, "  Teams         : %d\n", ov.Teams)
	fmt.Fprintf(w, "  Players       : %d\n", ov.Players)
	fmt.Fprintf(w, "  Coaches       : %d\n", ov.Coaches)
	fmt.Fprintf(w, "  Matches       : %d (%d finished, %d pending)\n",
		ov.Matches, ov.FinishedMatches, ov.PendingMatches)
}

// PrintSnapshotHeader prints where the data came from and how old it is.
func PrintSnapshotHeader(w io.Writer, source string, fetchedAt time.Time) {
	fmt.Fprintf(w, "\nSource: %s  |  Fetched: %s\n\n", source, fetchedAt.Local().Format("2006-01-02 15:04"))
}
