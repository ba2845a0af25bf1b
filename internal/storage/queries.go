package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pable/go-league-stats/internal/model"
)

// SnapshotInfo describes when and from where the stored snapshot was taken.
type SnapshotInfo struct {
	FetchedAt time.Time
	Source    string
}

// SaveSnapshot replaces every stored collection with s in one transaction.
func (db *DB) SaveSnapshot(ctx context.Context, s model.Snapshot, source string, fetchedAt time.Time) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"leagues", "teams", "players", "coaches", "matches"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if err := insertAll(ctx, tx, `INSERT OR REPLACE INTO leagues(seq, id, name, category, description) VALUES (?,?,?,?,?)`,
		len(s.Leagues), func(i int) []any {
			l := s.Leagues[i]
			return []any{l.ID, l.Name, l.Category, l.Description}
		}); err != nil {
		return fmt.Errorf("insert leagues: %w", err)
	}
	if err := insertAll(ctx, tx, `
		INSERT OR REPLACE INTO teams(seq, id, name, nickname, league_id, league_name, coach_id, coach_name)
		VALUES (?,?,?,?,?,?,?,?)`,
		len(s.Teams), func(i int) []any {
			t := s.Teams[i]
			return []any{t.ID, t.Name, t.Nickname, t.LeagueID, t.LeagueName, nullInt(t.CoachID), t.CoachName}
		}); err != nil {
		return fmt.Errorf("insert teams: %w", err)
	}
	if err := insertAll(ctx, tx, `
		INSERT OR REPLACE INTO players(seq, id, name, position, number, age, team_id, team_name, league_id, league_name)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		len(s.Players), func(i int) []any {
			p := s.Players[i]
			return []any{p.ID, p.Name, p.Position, p.Number, p.Age, p.TeamID, p.TeamName, p.LeagueID, p.LeagueName}
		}); err != nil {
		return fmt.Errorf("insert players: %w", err)
	}
	if err := insertAll(ctx, tx, `INSERT OR REPLACE INTO coaches(seq, id, name, experience_years, specialty) VALUES (?,?,?,?,?)`,
		len(s.Coaches), func(i int) []any {
			c := s.Coaches[i]
			return []any{c.ID, c.Name, c.ExperienceYears, c.Specialty}
		}); err != nil {
		return fmt.Errorf("insert coaches: %w", err)
	}
	if err := insertAll(ctx, tx, `
		INSERT OR REPLACE INTO matches(
			seq, id, match_date, venue,
			home_team_id, home_team_name, away_team_id, away_team_name,
			home_score, away_score, finished
		) VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		len(s.Matches), func(i int) []any {
			m := s.Matches[i]
			return []any{
				m.ID, m.Date, m.Venue,
				m.HomeTeamID, m.HomeTeamName, m.AwayTeamID, m.AwayTeamName,
				nullInt(m.HomeScore), nullInt(m.AwayScore), boolInt(m.Finished),
			}
		}); err != nil {
		return fmt.Errorf("insert matches: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO snapshot_meta(id, fetched_at, source) VALUES (1, ?, ?)`,
		fetchedAt.UTC().Format(time.RFC3339), source); err != nil {
		return fmt.Errorf("write snapshot meta: %w", err)
	}
	return tx.Commit()
}

// insertAll prepares query once and executes it n times. The first
// placeholder receives the row's index in the source slice; args(i) fills the rest.
func insertAll(ctx context.Context, tx *sql.Tx, query string, n int, args func(i int) []any) error {
	if n == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i := 0; i < n; i++ {
		if _, err := stmt.ExecContext(ctx, append([]any{i}, args(i)...)...); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	return nil
}

// GetSnapshotInfo returns nil if no snapshot has been saved yet.
func (db *DB) GetSnapshotInfo(ctx context.Context) (*SnapshotInfo, error) {
	var fetchedAt, source string
	err := db.conn.QueryRowContext(ctx, `SELECT fetched_at, source FROM snapshot_meta WHERE id = 1`).
		Scan(&fetchedAt, &source)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	ts, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("parse fetched_at %q: %w", fetchedAt, err)
	}
	return &SnapshotInfo{FetchedAt: ts, Source: source}, nil
}

// ListLeagues returns all stored leagues in the order they were saved.
func (db *DB) ListLeagues(ctx context.Context) ([]model.League, error) {
	rows, err := db.conn.QueryContext(ctx, `SELECT id, name, category, description FROM leagues ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.League
	for rows.Next() {
		var l model.League
		if err := rows.Scan(&l.ID, &l.Name, &l.Category, &l.Description); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// ListTeams returns all stored teams in the order they were saved.
func (db *DB) ListTeams(ctx context.Context) ([]model.Team, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, name, nickname, league_id, league_name, coach_id, coach_name
		FROM teams ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Team
	for rows.Next() {
		var t model.Team
		var coachID sql.NullInt64
		if err := rows.Scan(&t.ID, &t.Name, &t.Nickname, &t.LeagueID, &t.LeagueName, &coachID, &t.CoachName); err != nil {
			return nil, err
		}
		t.CoachID = intPtr(coachID)
		out = append(out, t)
	}
	return out, rows.Err()
}

// ListPlayers returns all stored players in the order they were saved.
func (db *DB) ListPlayers(ctx context.Context) ([]model.Player, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, name, position, number, age, team_id, team_name, league_id, league_name
		FROM players ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Player
	for rows.Next() {
		var p model.Player
		if err := rows.Scan(&p.ID, &p.Name, &p.Position, &p.Number, &p.Age,
			&p.TeamID, &p.TeamName, &p.LeagueID, &p.LeagueName); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ListCoaches returns all stored coaches in the order they were saved.
func (db *DB) ListCoaches(ctx context.Context) ([]model.Coach, error) {
	rows, err := db.conn.QueryContext(ctx, `SELECT id, name, experience_years, specialty FROM coaches ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Coach
	for rows.Next() {
		var c model.Coach
		if err := rows.Scan(&c.ID, &c.Name, &c.ExperienceYears, &c.Specialty); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ListMatches returns all stored matches in the order they were saved.
func (db *DB) ListMatches(ctx context.Context) ([]model.Match, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, match_date, venue,
		       home_team_id, home_team_name, away_team_id, away_team_name,
		       home_score, away_score, finished
		FROM matches ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Match
	for rows.Next() {
		var m model.Match
		var home, away sql.NullInt64
		var finishedInt int
		if err := rows.Scan(&m.ID, &m.Date, &m.Venue,
			&m.HomeTeamID, &m.HomeTeamName, &m.AwayTeamID, &m.AwayTeamName,
			&home, &away, &finishedInt); err != nil {
			return nil, err
		}
		m.HomeScore = intPtr(home)
		m.AwayScore = intPtr(away)
		m.Finished = finishedInt != 0
		out = append(out, m)
	}
	return out, rows.Err()
}

// QueryRaw runs an arbitrary query and returns column names and rows rendered
// as strings. NULL renders as "NULL".
func (db *DB) QueryRaw(query string) ([]string, [][]string, error) {
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var out [][]string
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			switch x := v.(type) {
			case nil:
				row[i] = "NULL"
			case []byte:
				row[i] = string(x)
			default:
				row[i] = fmt.Sprint(x)
			}
		}
		out = append(out, row)
	}
	return cols, out, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullInt(p *int) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*p), Valid: true}
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
