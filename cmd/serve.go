package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pable/go-league-stats/internal/httpapi"
	"github.com/pable/go-league-stats/internal/model"
)

var (
	serveAddr string
	serveLive bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve standings, distribution and overview as JSON",
	Long: `Start an HTTP server exposing:

  GET /api/stats/standings
  GET /api/stats/distribution
  GET /api/stats/overview
  GET /healthz

Each request recomputes from the local snapshot, or from the API with --live.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config and LEAGUE_ADDR)")
	serveCmd.Flags().BoolVar(&serveLive, "live", false, "fetch from the API on every request instead of the local snapshot")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}
	logger := cfg.NewLogger()

	handler := httpapi.NewRouter(httpapi.RouterOpts{
		Logger: logger,
		Snapshot: func(ctx context.Context) (model.Snapshot, error) {
			return loadSnapshot(ctx, cfg, logger, serveLive)
		},
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Addr, "live", serveLive)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
