// Package aggregator derives summary views (standings, player distribution,
// overview counters) from already-fetched league collections. All functions
// are pure: they never mutate their inputs and never fail.
package aggregator

import (
	"math"

	"github.com/pable/go-league-stats/internal/model"
)

// ComputeOverview counts the snapshot's collections and splits matches into
// finished and pending.
func ComputeOverview(s model.Snapshot) model.Overview {
	ov := model.Overview{
		Leagues: len(s.Leagues),
		Teams:   len(s.Teams),
		Players: len(s.Players),
		Coaches: len(s.Coaches),
		Matches: len(s.Matches),
	}
	for _, m := range s.Matches {
		if m.Finished {
			ov.FinishedMatches++
		}
	}
	ov.PendingMatches = ov.Matches - ov.FinishedMatches
	return ov
}

// Percent returns part/total as a rounded integer percentage, or 0 when total is 0.
func Percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
