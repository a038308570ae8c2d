package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lumar-safety/orient/internal/adapters/driving/httpapi"
	"github.com/lumar-safety/orient/internal/logger"
)

const shutdownTimeout = 10 * time.Second

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API for mobile clients",
	Long: `Starts the JSON HTTP API serving the mobile clients on site:
report generation, address extraction and the first-aid chat.

Shuts down gracefully on SIGINT/SIGTERM, draining in-flight requests.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from settings)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if reportService == nil || extractService == nil || chatService == nil {
		return errors.New("services not configured, set an API key first (orient settings key)")
	}

	addr := serveAddr
	if addr == "" && settingsService != nil {
		addr = settingsService.Get().ListenAddr
	}
	if addr == "" {
		return errors.New("no listen address configured")
	}

	if startPromptWatcher != nil {
		if watcher, err := startPromptWatcher(); err == nil {
			defer watcher.Close()
		} else {
			logger.Warn("prompt watcher unavailable: %v", err)
		}
	}

	server := httpapi.NewServer(httpapi.Deps{
		Reports:   reportService,
		Extractor: extractService,
		Chat:      chatService,
		Logger:    logger.L(),
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(addr)
	}()
	logger.Info("serving HTTP API on %s", addr)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
