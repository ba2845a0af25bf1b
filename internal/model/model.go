package model

// ---- Reference entities as served by the league API ----

// League is a competition grouping teams.
type League struct {
	ID          int    `json:"id"`
	Name        string `json:"nombre"`
	Category    string `json:"categoria"`
	Description string `json:"descripcion"`
}

// Team is a club registered in a league. LeagueName and the coach fields are
// denormalised by the API and may be empty.
type Team struct {
	ID         int    `json:"id"`
	Name       string `json:"nombre"`
	Nickname   string `json:"apodo"`
	LeagueID   int    `json:"ligaId"`
	LeagueName string `json:"ligaNombre"`
	CoachID    *int   `json:"entrenadorId"`
	CoachName  string `json:"entrenadorNombre"`
}

// Player is a registered player; team and league names are denormalised.
type Player struct {
	ID         int    `json:"id"`
	Name       string `json:"nombre"`
	Position   string `json:"posicion"`
	Number     int    `json:"numero"`
	Age        int    `json:"edad"`
	TeamID     int    `json:"equipoId"`
	TeamName   string `json:"equipoNombre"`
	LeagueID   int    `json:"ligaId"`
	LeagueName string `json:"ligaNombre"`
}

// Coach is a team coach.
type Coach struct {
	ID              int    `json:"id"`
	Name            string `json:"nombre"`
	ExperienceYears int    `json:"experienciaAnios"`
	Specialty       string `json:"especialidad"`
}

// Match is a fixture between two teams. Scores are nil until a result is
// recorded; only matches with Finished set count towards standings.
type Match struct {
	ID           int    `json:"id"`
	Date         string `json:"fecha"`
	Venue        string `json:"lugar"`
	HomeTeamID   int    `json:"equipoLocalId"`
	HomeTeamName string `json:"equipoLocalNombre"`
	AwayTeamID   int    `json:"equipoVisitaId"`
	AwayTeamName string `json:"equipoVisitaNombre"`
	HomeScore    *int   `json:"golesLocal"`
	AwayScore    *int   `json:"golesVisita"`
	Finished     bool   `json:"finalizado"`
}

// HomeGoals returns the home score, or 0 when none is recorded.
func (m Match) HomeGoals() int {
	if m.HomeScore == nil {
		return 0
	}
	return *m.HomeScore
}

// AwayGoals returns the away score, or 0 when none is recorded.
func (m Match) AwayGoals() int {
	if m.AwayScore == nil {
		return 0
	}
	return *m.AwayScore
}

// ScoreLine formats the match as "Home 2 - 1 Away". Unrecorded scores print as "-".
func (m Match) ScoreLine() string {
	return scoreLine(m)
}

// Snapshot holds the five reference collections fetched in one load.
type Snapshot struct {
	Leagues []League
	Teams   []Team
	Players []Player
	Coaches []Coach
	Matches []Match
}

// ---- Derived views ----

// StandingsRow is one team's aggregated record across finished matches.
type StandingsRow struct {
	TeamID         int    `json:"teamId"`
	Name           string `json:"name"`
	LeagueName     string `json:"leagueName,omitempty"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
}

// DistributionRow is one league's player count, with Percent relative to the
// largest league.
type DistributionRow struct {
	League  string `json:"league"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

// Overview holds the headline counters for a snapshot.
type Overview struct {
	Leagues         int `json:"leagues"`
	Teams           int `json:"teams"`
	Players         int `json:"players"`
	Coaches         int `json:"coaches"`
	Matches         int `json:"matches"`
	FinishedMatches int `json:"finishedMatches"`
	PendingMatches  int `json:"pendingMatches"`
}
