// Package leagueapi provides a minimal read client for the league management
// REST API.
package leagueapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pable/go-league-stats/internal/model"
)

var (
	// ErrNoCredential is returned by protected calls when the client has no token.
	ErrNoCredential = errors.New("no API token configured")
	// ErrUnauthorized is returned when the API rejects the token (401/403).
	ErrUnauthorized = errors.New("unauthorized")
)

// HTTPError reports a non-2xx response.
type HTTPError struct {
	Method     string
	Path       string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s: HTTP %d", e.Method, e.Path, e.StatusCode)
}

// Client is a league API client. The token is optional: public endpoints work
// without it.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient returns a client for the API rooted at baseURL, authenticated
// with token when it is non-empty.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// WithToken returns a copy of c using token.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// HasToken reports whether protected endpoints can be called.
func (c *Client) HasToken() bool {
	return c.token != ""
}

// do performs a request against the API and JSON-decodes the response body
// into out when out is non-nil. The bearer token is attached unless path is an
// auth endpoint.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", path, err)
		}
		reader = bytes.NewReader(buf)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" && !isAuthPath(path) {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s %s: %w", method, path, ErrUnauthorized)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &HTTPError{Method: method, Path: path, StatusCode: resp.StatusCode}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// getProtected is get for endpoints that require a token.
func (c *Client) getProtected(ctx context.Context, path string, out any) error {
	if !c.HasToken() {
		return fmt.Errorf("GET %s: %w", path, ErrNoCredential)
	}
	return c.get(ctx, path, out)
}

func isAuthPath(path string) bool {
	return strings.HasPrefix(path, "/api/auth/")
}

// ListLeagues returns every league. Public endpoint.
func (c *Client) ListLeagues(ctx context.Context) ([]model.League, error) {
	var out []model.League
	if err := c.get(ctx, "/api/ligas", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListTeams returns every team.
func (c *Client) ListTeams(ctx context.Context) ([]model.Team, error) {
	var out []model.Team
	if err := c.getProtected(ctx, "/api/equipos", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPlayers returns every player.
func (c *Client) ListPlayers(ctx context.Context) ([]model.Player, error) {
	var out []model.Player
	if err := c.getProtected(ctx, "/api/jugadores", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListCoaches returns every coach.
func (c *Client) ListCoaches(ctx context.Context) ([]model.Coach, error) {
	var out []model.Coach
	if err := c.getProtected(ctx, "/api/entrenadores", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListMatches returns every match, finished or not.
func (c *Client) ListMatches(ctx context.Context) ([]model.Match, error) {
	var out []model.Match
	if err := c.getProtected(ctx, "/api/competencias", &out); err != nil {
		return nil, err
	}
	return out, nil
}
