package model

import (
	"fmt"
	"strconv"
)

func scoreLine(m Match) string {
	return fmt.Sprintf("%s %s - %s %s",
		displayName(m.HomeTeamName, m.HomeTeamID), score(m.HomeScore),
		score(m.AwayScore), displayName(m.AwayTeamName, m.AwayTeamID),
	)
}

func score(s *int) string {
	if s == nil {
		return "-"
	}
	return strconv.Itoa(*s)
}

func displayName(name string, id int) string {
	if name != "" {
		return name
	}
	return FallbackName(id)
}

// FallbackName is the label used for a team whose name cannot be resolved.
func FallbackName(id int) string {
	return "#" + strconv.Itoa(id)
}
