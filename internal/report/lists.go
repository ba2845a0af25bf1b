package report

import (
	"io"
	"strconv"

	"github.com/pable/go-league-stats/internal/model"
)

// PrintLeagues renders leagues as a table.
func PrintLeagues(w io.Writer, leagues []model.League) {
	table := newTable(w)
	table.Header("ID", "NAME", "CATEGORY", "DESCRIPTION")
	for _, l := range leagues {
		table.Append(strconv.Itoa(l.ID), l.Name, l.Category, l.Description)
	}
	table.Render()
}

// PrintTeams renders teams with their league and coach.
func PrintTeams(w io.Writer, teams []model.Team) {
	table := newTable(w)
	table.Header("ID", "NAME", "NICKNAME", "LEAGUE", "COACH")
	for _, t := range teams {
		coach := t.CoachName
		if coach == "" {
			coach = "—"
		}
		table.Append(strconv.Itoa(t.ID), t.Name, t.Nickname, t.LeagueName, coach)
	}
	table.Render()
}

// PrintPlayers renders players with team and league.
func PrintPlayers(w io.Writer, players []model.Player) {
	table := newTable(w)
	table.Header("ID", "NAME", "POS", "NO", "AGE", "TEAM", "LEAGUE")
	for _, p := range players {
		table.Append(
			strconv.Itoa(p.ID), p.Name, p.Position,
			strconv.Itoa(p.Number), strconv.Itoa(p.Age),
			p.TeamName, p.LeagueName,
		)
	}
	table.Render()
}

// PrintCoaches renders coaches as a table.
func PrintCoaches(w io.Writer, coaches []model.Coach) {
	table := newTable(w)
	table.Header("ID", "NAME", "YEARS", "SPECIALTY")
	for _, c := range coaches {
		table.Append(strconv.Itoa(c.ID), c.Name, strconv.Itoa(c.ExperienceYears), c.Specialty)
	}
	table.Render()
}

// PrintMatches lists fixtures with their score line and status.
func PrintMatches(w io.Writer, matches []model.Match) {
	table := newTable(w)
	table.Header("ID", "DATE", "VENUE", "MATCH", "STATUS")
	for _, m := range matches {
		status := "pending"
		if m.Finished {
			status = "final"
		}
		table.Append(strconv.Itoa(m.ID), m.Date, m.Venue, m.ScoreLine(), status)
	}
	table.Render()
}

// PrintRaw renders arbitrary query results.
func PrintRaw(w io.Writer, cols []string, rows [][]string) {
	table := newTable(w)
	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	table.Header(header...)
	for _, row := range rows {
		cells := make([]any, len(row))
		for i, v := range row {
			cells[i] = v
		}
		table.Append(cells...)
	}
	table.Render()
}
