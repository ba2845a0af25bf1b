package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pable/go-league-stats/internal/leagueapi"
	"github.com/pable/go-league-stats/internal/loader"
)

type errorEnvelope struct {
	Error apiError `json:"error"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Step    string `json:"step,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeLoadError maps a snapshot load failure to a response. The failing
// step is reported so the client can show which collection is missing.
func writeLoadError(w http.ResponseWriter, err error) {
	env := errorEnvelope{Error: apiError{Code: "load_failed", Message: "could not load league data"}}
	var stepErr *loader.StepError
	if errors.As(err, &stepErr) {
		env.Error.Step = stepErr.Step
	}
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, leagueapi.ErrNoCredential), errors.Is(err, leagueapi.ErrUnauthorized):
		env.Error.Code = "unauthorized"
		env.Error.Message = "league API rejected or is missing the token"
		status = http.StatusUnauthorized
	}
	writeJSON(w, status, env)
}
