// Package loader fetches the five reference collections one after another and
// hands back a snapshot ready for aggregation.
package loader

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pable/go-league-stats/internal/model"
)

// Source supplies the reference collections. Both the remote API client and
// the SQLite snapshot implement it.
type Source interface {
	ListLeagues(ctx context.Context) ([]model.League, error)
	ListTeams(ctx context.Context) ([]model.Team, error)
	ListPlayers(ctx context.Context) ([]model.Player, error)
	ListCoaches(ctx context.Context) ([]model.Coach, error)
	ListMatches(ctx context.Context) ([]model.Match, error)
}

// Step names, in fetch order.
const (
	StepLeagues = "leagues"
	StepTeams   = "teams"
	StepPlayers = "players"
	StepCoaches = "coaches"
	StepMatches = "matches"
)

// StepError reports which fetch step failed.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

type step struct {
	name string
	run  func(ctx context.Context, s *model.Snapshot) (int, error)
}

func steps(src Source) []step {
	return []step{
		{StepLeagues, func(ctx context.Context, s *model.Snapshot) (n int, err error) {
			s.Leagues, err = src.ListLeagues(ctx)
			return len(s.Leagues), err
		}},
		{StepTeams, func(ctx context.Context, s *model.Snapshot) (n int, err error) {
			s.Teams, err = src.ListTeams(ctx)
			return len(s.Teams), err
		}},
		{StepPlayers, func(ctx context.Context, s *model.Snapshot) (n int, err error) {
			s.Players, err = src.ListPlayers(ctx)
			return len(s.Players), err
		}},
		{StepCoaches, func(ctx context.Context, s *model.Snapshot) (n int, err error) {
			s.Coaches, err = src.ListCoaches(ctx)
			return len(s.Coaches), err
		}},
		{StepMatches, func(ctx context.Context, s *model.Snapshot) (n int, err error) {
			s.Matches, err = src.ListMatches(ctx)
			return len(s.Matches), err
		}},
	}
}

// Load runs the fetch steps sequentially, each only after the previous one
// succeeded. On failure it returns the collections fetched so far together
// with a *StepError naming the failed step; later steps are not attempted and
// nothing is retried. A nil logger discards step logs.
func Load(ctx context.Context, src Source, logger *slog.Logger) (model.Snapshot, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	var snap model.Snapshot
	for _, st := range steps(src) {
		if err := ctx.Err(); err != nil {
			return snap, &StepError{Step: st.name, Err: err}
		}
		n, err := st.run(ctx, &snap)
		if err != nil {
			logger.Error("fetch failed", "step", st.name, "err", err)
			return snap, &StepError{Step: st.name, Err: err}
		}
		logger.Debug("fetched", "step", st.name, "count", n)
	}
	return snap, nil
}
