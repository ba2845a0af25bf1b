package aggregator

import (
	"sort"

	"github.com/pable/go-league-stats/internal/model"
)

// ComputeDistribution counts players per league and returns one row for every
// league in leagues, largest first. Percent is relative to the largest league;
// with no players at all every row is 0%. Leagues with equal counts keep their
// order from leagues.
func ComputeDistribution(leagues []model.League, players []model.Player) []model.DistributionRow {
	counts := make(map[int]int)
	for _, p := range players {
		counts[p.LeagueID]++
	}

	largest := 1
	for _, c := range counts {
		if c > largest {
			largest = c
		}
	}

	rows := make([]model.DistributionRow, 0, len(leagues))
	for _, l := range leagues {
		c := counts[l.ID]
		rows = append(rows, model.DistributionRow{
			League:  l.Name,
			Count:   c,
			Percent: Percent(c, largest),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})
	return rows
}
