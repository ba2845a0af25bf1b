// Package config resolves settings from an optional YAML file and the
// environment. Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultAPIURL   = "http://localhost:8080"
	DefaultAddr     = "127.0.0.1:8090"
	DefaultLogLevel = "info"
)

// Config holds the resolved settings for the API client, server and logger.
type Config struct {
	APIURL   string `yaml:"api_url"`
	Token    string `yaml:"token"`
	Addr     string `yaml:"addr"`
	LogLevel string `yaml:"log_level"`
}

// Load reads path (a missing file is not an error) and then the process
// environment. The result is not validated; callers apply their own
// overrides and then call Validate.
func Load(path string) (Config, error) {
	return LoadFrom(path, os.Getenv)
}

// LoadFrom is Load with an injectable getenv.
func LoadFrom(path string, getenv func(string) string) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	return applyEnv(cfg, getenv), nil
}

func applyEnv(cfg Config, getenv func(string) string) Config {
	if v := getenv("LEAGUE_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := getenv("LEAGUE_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := getenv("LEAGUE_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := getenv("LEAGUE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	return cfg
}

// Validate checks the API URL and log level.
func (c Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("api_url: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return errors.New("api_url: must be an absolute URL")
	}
	switch u.Scheme {
	case "http", "https":
	default:
		return errors.New("api_url: scheme must be http or https")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps debug/info/warn/error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("log_level: unknown level %q", s)
}

// NewLogger returns a text logger on stderr at the configured level.
func (c Config) NewLogger() *slog.Logger {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
