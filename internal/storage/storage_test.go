package storage

import (
	"context"
	"testing"
	"time"

	"github.com/pable/go-league-stats/internal/aggregator"
	"github.com/pable/go-league-stats/internal/model"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func intp(n int) *int { return &n }

func sampleSnapshot() model.Snapshot {
	coach := 5
	return model.Snapshot{
		Leagues: []model.League{
			{ID: 1, Name: "Primera", Category: "A", Description: "top flight"},
			{ID: 2, Name: "Nacional", Category: "B"},
		},
		Teams: []model.Team{
			{ID: 10, Name: "Atlético", Nickname: "Decano", LeagueID: 1, LeagueName: "Primera", CoachID: &coach, CoachName: "Bielsa"},
			{ID: 11, Name: "Boca", LeagueID: 1, LeagueName: "Primera"},
		},
		Players: []model.Player{
			{ID: 100, Name: "Pérez", Position: "DEL", Number: 9, Age: 24, TeamID: 10, TeamName: "Atlético", LeagueID: 1, LeagueName: "Primera"},
		},
		Coaches: []model.Coach{{ID: 5, Name: "Bielsa", ExperienceYears: 30, Specialty: "pressing"}},
		Matches: []model.Match{
			{ID: 1000, Date: "2025-03-01T18:00:00", Venue: "Monumental", HomeTeamID: 10, HomeTeamName: "Atlético",
				AwayTeamID: 11, AwayTeamName: "Boca", HomeScore: intp(3), AwayScore: intp(1), Finished: true},
			{ID: 1001, HomeTeamID: 11, AwayTeamID: 10},
		},
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	db := openMemDB(t)
	ctx := context.Background()
	want := sampleSnapshot()

	if err := db.SaveSnapshot(ctx, want, "http://api.test", time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	leagues, err := db.ListLeagues(ctx)
	if err != nil {
		t.Fatalf("ListLeagues: %v", err)
	}
	if len(leagues) != 2 || leagues[0] != want.Leagues[0] {
		t.Errorf("leagues mismatch: %+v", leagues)
	}

	teams, err := db.ListTeams(ctx)
	if err != nil {
		t.Fatalf("ListTeams: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(teams))
	}
	if teams[0].CoachID == nil || *teams[0].CoachID != 5 {
		t.Errorf("team 10 coach: want 5, got %v", teams[0].CoachID)
	}
	if teams[1].CoachID != nil {
		t.Errorf("team 11 coach: want nil, got %v", *teams[1].CoachID)
	}

	players, err := db.ListPlayers(ctx)
	if err != nil {
		t.Fatalf("ListPlayers: %v", err)
	}
	if len(players) != 1 || players[0] != want.Players[0] {
		t.Errorf("players mismatch: %+v", players)
	}

	coaches, err := db.ListCoaches(ctx)
	if err != nil {
		t.Fatalf("ListCoaches: %v", err)
	}
	if len(coaches) != 1 || coaches[0] != want.Coaches[0] {
		t.Errorf("coaches mismatch: %+v", coaches)
	}

	matches, err := db.ListMatches(ctx)
	if err != nil {
		t.Fatalf("ListMatches: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if !matches[0].Finished || matches[0].HomeGoals() != 3 || matches[0].AwayGoals() != 1 {
		t.Errorf("finished match mismatch: %+v", matches[0])
	}
	if matches[1].Finished || matches[1].HomeScore != nil || matches[1].AwayScore != nil {
		t.Errorf("pending match should have no scores: %+v", matches[1])
	}

	info, err := db.GetSnapshotInfo(ctx)
	if err != nil {
		t.Fatalf("GetSnapshotInfo: %v", err)
	}
	if info == nil || info.Source != "http://api.test" || info.FetchedAt.Day() != 2 {
		t.Errorf("snapshot info mismatch: %+v", info)
	}
}

func TestSaveSnapshotReplaces(t *testing.T) {
	db := openMemDB(t)
	ctx := context.Background()

	if err := db.SaveSnapshot(ctx, sampleSnapshot(), "a", time.Now()); err != nil {
		t.Fatalf("first SaveSnapshot: %v", err)
	}
	smaller := model.Snapshot{Leagues: []model.League{{ID: 3, Name: "Reserva"}}}
	if err := db.SaveSnapshot(ctx, smaller, "b", time.Now()); err != nil {
		t.Fatalf("second SaveSnapshot: %v", err)
	}

	leagues, _ := db.ListLeagues(ctx)
	if len(leagues) != 1 || leagues[0].Name != "Reserva" {
		t.Errorf("expected only Reserva after replace, got %+v", leagues)
	}
	teams, _ := db.ListTeams(ctx)
	if len(teams) != 0 {
		t.Errorf("expected teams cleared, got %d", len(teams))
	}
	info, _ := db.GetSnapshotInfo(ctx)
	if info == nil || info.Source != "b" {
		t.Errorf("expected source b, got %+v", info)
	}
}

func TestEmptyDB(t *testing.T) {
	db := openMemDB(t)
	ctx := context.Background()

	info, err := db.GetSnapshotInfo(ctx)
	if err != nil {
		t.Fatalf("GetSnapshotInfo: %v", err)
	}
	if info != nil {
		t.Error("expected nil info before any snapshot")
	}
	matches, err := db.ListMatches(ctx)
	if err != nil {
		t.Fatalf("ListMatches: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("expected no matches, got %d", len(matches))
	}
}

func TestQueryRaw(t *testing.T) {
	db := openMemDB(t)
	if err := db.SaveSnapshot(context.Background(), sampleSnapshot(), "x", time.Now()); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	cols, rows, err := db.QueryRaw("SELECT id, home_score FROM matches ORDER BY id")
	if err != nil {
		t.Fatalf("QueryRaw: %v", err)
	}
	if len(cols) != 2 || cols[0] != "id" {
		t.Errorf("unexpected columns %v", cols)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][1] != "3" || rows[1][1] != "NULL" {
		t.Errorf("unexpected rows %v", rows)
	}

	if _, _, err := db.QueryRaw("SELECT * FROM nope"); err == nil {
		t.Error("expected error for unknown table")
	}
}

// Collections come back in the order they were saved, not by id, so tied
// standings rank the same from the snapshot as from the API.
func TestSnapshotPreservesSourceOrder(t *testing.T) {
	db := openMemDB(t)
	ctx := context.Background()

	src := model.Snapshot{
		Leagues: []model.League{{ID: 9, Name: "Z"}, {ID: 1, Name: "A"}},
		Matches: []model.Match{
			{ID: 2, HomeTeamID: 3, AwayTeamID: 4, HomeScore: intp(1), AwayScore: intp(1), Finished: true},
			{ID: 1, HomeTeamID: 1, AwayTeamID: 2, HomeScore: intp(1), AwayScore: intp(1), Finished: true},
		},
	}
	if err := db.SaveSnapshot(ctx, src, "x", time.Now()); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	matches, err := db.ListMatches(ctx)
	if err != nil {
		t.Fatalf("ListMatches: %v", err)
	}
	if len(matches) != 2 || matches[0].ID != 2 || matches[1].ID != 1 {
		t.Fatalf("expected matches in saved order [2 1], got %+v", matches)
	}
	leagues, err := db.ListLeagues(ctx)
	if err != nil {
		t.Fatalf("ListLeagues: %v", err)
	}
	if len(leagues) != 2 || leagues[0].ID != 9 {
		t.Errorf("expected leagues in saved order [9 1], got %+v", leagues)
	}

	live := aggregator.ComputeStandings(src.Matches, nil)
	stored := aggregator.ComputeStandings(matches, nil)
	if len(live) != 4 || len(stored) != 4 {
		t.Fatalf("expected 4 rows, got live=%d stored=%d", len(live), len(stored))
	}
	for i := range live {
		if live[i].TeamID != stored[i].TeamID {
			t.Errorf("row %d: live team %d, snapshot team %d", i, live[i].TeamID, stored[i].TeamID)
		}
	}
	if stored[0].TeamID != 3 {
		t.Errorf("expected team 3 first (first seen), got %d", stored[0].TeamID)
	}
}
