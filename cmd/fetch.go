package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pable/go-league-stats/internal/leagueapi"
	"github.com/pable/go-league-stats/internal/loader"
)

// fetch command flags.
var (
	// fetchEmail logs in with this account when no token is configured.
	fetchEmail string
	// fetchTimeout bounds the whole fetch chain.
	fetchTimeout time.Duration
)

// fetchCmd downloads every collection from the API and replaces the local snapshot.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch all league data from the API into the local snapshot",
	Long: `Fetches leagues, teams, players, coaches and matches, one after another,
and replaces the local SQLite snapshot. If any step fails the previous
snapshot is left untouched.

Leagues are public; the other collections need a token. Pass --token, set
LEAGUE_TOKEN, or log in with --email (password read from LEAGUE_PASSWORD).

Examples:
  leaguestats fetch --api-url https://league.example.com --token <jwt>
  LEAGUE_PASSWORD=... leaguestats fetch --email coach@example.com`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&fetchEmail, "email", "", "log in with this email when no token is set")
	fetchCmd.Flags().DurationVar(&fetchTimeout, "timeout", 2*time.Minute, "overall timeout for the fetch chain")
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := cfg.NewLogger()

	ctx, cancel := context.WithTimeout(cmd.Context(), fetchTimeout)
	defer cancel()

	client := leagueapi.NewClient(cfg.APIURL, cfg.Token)
	if !client.HasToken() && fetchEmail != "" {
		password := os.Getenv("LEAGUE_PASSWORD")
		if password == "" {
			return fmt.Errorf("--email given but LEAGUE_PASSWORD is not set")
		}
		token, err := client.Login(ctx, fetchEmail, password)
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}
		client = client.WithToken(token)
		logger.Info("logged in", "email", fetchEmail)
	}
	if !client.HasToken() {
		fmt.Fprintln(os.Stderr, "warning: no token configured; only public endpoints will succeed")
	}

	snap, err := loader.Load(ctx, client, logger)
	if err != nil {
		return fmt.Errorf("%w (snapshot not updated)", err)
	}

	db, err := openStorage()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.SaveSnapshot(ctx, snap, cfg.APIURL, time.Now()); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Fetched %d leagues, %d teams, %d players, %d coaches, %d matches into %s\n",
		len(snap.Leagues), len(snap.Teams), len(snap.Players), len(snap.Coaches), len(snap.Matches), dbPath)
	return nil
}
