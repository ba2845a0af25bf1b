package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pable/go-league-stats/internal/config"
)

// Persistent flags.
var (
	dbPath     string
	configPath string
	apiURL     string
	apiToken   string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "leaguestats",
	Short: "League standings and distribution tool",
	Long: `Fetch leagues, teams, players, coaches and matches from the league API
and compute standings tables and player-per-league distributions.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	home := filepath.Join(mustUserHome(), ".leaguestats")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", filepath.Join(home, "league.db"), "path to SQLite snapshot database")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", filepath.Join(home, "config.yaml"), "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "league API base URL (overrides config and LEAGUE_API_URL)")
	rootCmd.PersistentFlags().StringVar(&apiToken, "token", "", "API bearer token (overrides config and LEAGUE_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(distributionCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(dropCmd)
}

// loadConfig resolves file and environment settings, then applies any
// persistent flags the user set explicitly.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}
	if apiToken != "" {
		cfg.Token = apiToken
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func mustUserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
