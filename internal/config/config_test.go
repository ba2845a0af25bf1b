package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom("", envMap(nil))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.APIURL != DefaultAPIURL || cfg.Addr != DefaultAddr || cfg.LogLevel != DefaultLogLevel {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Token != "" {
		t.Fatalf("token should default to empty, got %q", cfg.Token)
	}
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	if _, err := LoadFrom(filepath.Join(t.TempDir(), "absent.yaml"), envMap(nil)); err != nil {
		t.Fatalf("missing config file: %v", err)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(`api_url: https://league.example.com
token: from-file
log_level: debug
`), 0o600)
	if err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFrom(path, envMap(map[string]string{"LEAGUE_TOKEN": "from-env"}))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.APIURL != "https://league.example.com" {
		t.Fatalf("APIURL: got %q", cfg.APIURL)
	}
	if cfg.Token != "from-env" {
		t.Fatalf("Token: got %q", cfg.Token)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel: got %q", cfg.LogLevel)
	}
}

func TestInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api_url: [unterminated"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFrom(path, envMap(nil)); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidateRejectsBadURL(t *testing.T) {
	for _, u := range []string{"localhost:8080", "ftp://league.example.com", "/relative"} {
		cfg, err := LoadFrom("", envMap(map[string]string{"LEAGUE_API_URL": u}))
		if err != nil {
			t.Fatalf("LoadFrom(%q): %v", u, err)
		}
		if err := cfg.Validate(); err == nil {
			t.Errorf("expected error for api_url %q", u)
		}
	}
}

// A bad environment value must not fail loading when a later override fixes it.
func TestOverrideAfterLoadFixesBadEnv(t *testing.T) {
	cfg, err := LoadFrom("", envMap(map[string]string{
		"LEAGUE_API_URL":   "localhost:8080",
		"LEAGUE_LOG_LEVEL": "loud",
	}))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected Validate to reject env values before overrides")
	}

	cfg.APIURL = "https://league.example.com"
	cfg.LogLevel = "warn"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate after overrides: %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}
