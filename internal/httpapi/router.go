// Package httpapi serves the derived league views as JSON.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/pable/go-league-stats/internal/aggregator"
	"github.com/pable/go-league-stats/internal/model"
)

// SnapshotFunc returns a fresh snapshot for one request.
type SnapshotFunc func(ctx context.Context) (model.Snapshot, error)

// RouterOpts configures NewRouter. A nil Logger falls back to slog.Default.
type RouterOpts struct {
	Logger   *slog.Logger
	Snapshot SnapshotFunc
}

type api struct {
	logger   *slog.Logger
	snapshot SnapshotFunc
}

// NewRouter wires the stats endpoints. Every request recomputes from a fresh
// snapshot; nothing is cached between requests.
func NewRouter(opts RouterOpts) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	a := &api{logger: logger, snapshot: opts.Snapshot}

	r := mux.NewRouter()
	r.HandleFunc("/healthz", a.handleHealth).Methods(http.MethodGet)

	r.HandleFunc("/api/stats/standings", a.handleStandings).Methods(http.MethodGet)
	r.HandleFunc("/api/stats/distribution", a.handleDistribution).Methods(http.MethodGet)
	r.HandleFunc("/api/stats/overview", a.handleOverview).Methods(http.MethodGet)

	// Wrapped outside the router so 404 and 405 responses are logged too.
	return a.logRequests(r)
}

func (a *api) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *api) handleStandings(w http.ResponseWriter, r *http.Request) {
	snap, ok := a.load(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, aggregator.ComputeStandings(snap.Matches, snap.Teams))
}

func (a *api) handleDistribution(w http.ResponseWriter, r *http.Request) {
	snap, ok := a.load(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, aggregator.ComputeDistribution(snap.Leagues, snap.Players))
}

type overviewResponse struct {
	model.Overview
	Standings    []model.StandingsRow    `json:"standings"`
	Distribution []model.DistributionRow `json:"distribution"`
}

func (a *api) handleOverview(w http.ResponseWriter, r *http.Request) {
	snap, ok := a.load(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, overviewResponse{
		Overview:     aggregator.ComputeOverview(snap),
		Standings:    aggregator.ComputeStandings(snap.Matches, snap.Teams),
		Distribution: aggregator.ComputeDistribution(snap.Leagues, snap.Players),
	})
}

func (a *api) load(w http.ResponseWriter, r *http.Request) (model.Snapshot, bool) {
	snap, err := a.snapshot(r.Context())
	if err != nil {
		a.logger.Error("load snapshot", "path", r.URL.Path, "err", err)
		writeLoadError(w, err)
		return model.Snapshot{}, false
	}
	return snap, true
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (a *api) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		a.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}
