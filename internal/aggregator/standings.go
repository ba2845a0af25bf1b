package aggregator

import (
	"sort"

	"github.com/pable/go-league-stats/internal/model"
)

// StandingsLimit is the number of rows ComputeStandings keeps.
const StandingsLimit = 8

// Points awarded per outcome.
const (
	pointsWin  = 3
	pointsDraw = 1
)

// ComputeStandings folds the finished matches into one row per team and
// returns the best StandingsLimit rows ordered by points, goal difference and
// goals scored. Unfinished matches are ignored. Teams are looked up only to
// resolve names the match does not carry.
//
// Rows still tied on all three keys keep the order in which their teams first
// appeared in matches.
func ComputeStandings(matches []model.Match, teams []model.Team) []model.StandingsRow {
	teamsByID := make(map[int]model.Team, len(teams))
	for _, t := range teams {
		if _, ok := teamsByID[t.ID]; !ok {
			teamsByID[t.ID] = t
		}
	}

	// Map for lookup, slice for first-seen order.
	entries := make(map[int]*model.StandingsRow)
	var order []*model.StandingsRow

	ensure := func(id int, matchName string) *model.StandingsRow {
		if row, ok := entries[id]; ok {
			return row
		}
		t, known := teamsByID[id]
		name := matchName
		if name == "" && known {
			name = t.Name
		}
		if name == "" {
			name = model.FallbackName(id)
		}
		row := &model.StandingsRow{TeamID: id, Name: name, LeagueName: t.LeagueName}
		entries[id] = row
		order = append(order, row)
		return row
	}

	for _, m := range matches {
		if !m.Finished {
			continue
		}
		home := ensure(m.HomeTeamID, m.HomeTeamName)
		away := ensure(m.AwayTeamID, m.AwayTeamName)
		hg, ag := m.HomeGoals(), m.AwayGoals()

		home.Played++
		away.Played++
		home.GoalsFor += hg
		home.GoalsAgainst += ag
		away.GoalsFor += ag
		away.GoalsAgainst += hg

		switch {
		case hg > ag:
			home.Won++
			home.Points += pointsWin
			away.Lost++
		case hg < ag:
			away.Won++
			away.Points += pointsWin
			home.Lost++
		default:
			home.Drawn++
			home.Points += pointsDraw
			away.Drawn++
			away.Points += pointsDraw
		}
	}

	rows := make([]model.StandingsRow, 0, len(order))
	for _, r := range order {
		r.GoalDifference = r.GoalsFor - r.GoalsAgainst
		rows = append(rows, *r)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		return a.GoalsFor > b.GoalsFor
	})

	if len(rows) > StandingsLimit {
		rows = rows[:StandingsLimit]
	}
	return rows
}
