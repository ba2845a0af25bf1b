package loader

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pable/go-league-stats/internal/model"
)

// fakeSource records call order and fails the step named in failOn.
type fakeSource struct {
	calls  []string
	failOn string
}

var errBoom = errors.New("boom")

func (f *fakeSource) hit(step string) error {
	f.calls = append(f.calls, step)
	if step == f.failOn {
		return errBoom
	}
	return nil
}

func (f *fakeSource) ListLeagues(context.Context) ([]model.League, error) {
	if err := f.hit(StepLeagues); err != nil {
		return nil, err
	}
	return []model.League{{ID: 1, Name: "Primera"}}, nil
}

func (f *fakeSource) ListTeams(context.Context) ([]model.Team, error) {
	if err := f.hit(StepTeams); err != nil {
		return nil, err
	}
	return []model.Team{{ID: 1, Name: "A", LeagueID: 1}, {ID: 2, Name: "B", LeagueID: 1}}, nil
}

func (f *fakeSource) ListPlayers(context.Context) ([]model.Player, error) {
	if err := f.hit(StepPlayers); err != nil {
		return nil, err
	}
	return []model.Player{{ID: 1, LeagueID: 1}}, nil
}

func (f *fakeSource) ListCoaches(context.Context) ([]model.Coach, error) {
	if err := f.hit(StepCoaches); err != nil {
		return nil, err
	}
	return []model.Coach{{ID: 1, Name: "Bielsa"}}, nil
}

func (f *fakeSource) ListMatches(context.Context) ([]model.Match, error) {
	if err := f.hit(StepMatches); err != nil {
		return nil, err
	}
	return []model.Match{{ID: 1, HomeTeamID: 1, AwayTeamID: 2}}, nil
}

func TestLoadSequentialOrder(t *testing.T) {
	src := &fakeSource{}
	snap, err := Load(context.Background(), src, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{StepLeagues, StepTeams, StepPlayers, StepCoaches, StepMatches}, src.calls)
	assert.Len(t, snap.Leagues, 1)
	assert.Len(t, snap.Teams, 2)
	assert.Len(t, snap.Players, 1)
	assert.Len(t, snap.Coaches, 1)
	assert.Len(t, snap.Matches, 1)
}

func TestLoadStopsAtFirstFailure(t *testing.T) {
	src := &fakeSource{failOn: StepPlayers}
	snap, err := Load(context.Background(), src, nil)

	var stepErr *StepError
	require.True(t, errors.As(err, &stepErr))
	assert.Equal(t, StepPlayers, stepErr.Step)
	assert.True(t, errors.Is(err, errBoom))

	// Later steps never run; earlier results are kept.
	assert.Equal(t, []string{StepLeagues, StepTeams, StepPlayers}, src.calls)
	assert.Len(t, snap.Leagues, 1)
	assert.Len(t, snap.Teams, 2)
	assert.Empty(t, snap.Players)
	assert.Empty(t, snap.Matches)
}

func TestLoadCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &fakeSource{}
	_, err := Load(ctx, src, nil)

	var stepErr *StepError
	require.True(t, errors.As(err, &stepErr))
	assert.Equal(t, StepLeagues, stepErr.Step)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, src.calls)
}
