// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/labpubs/internal/pubs"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the publication list over HTTP",
	Long: `Serve runs an HTTP server exposing the filtered publication list as
JSON. Responses come from a short-lived in-memory cache, so the website
build can poll freely without hammering DBLP.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from config, :8080)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if cfg.Fetch.PID == "" {
		return fmt.Errorf("no DBLP PID configured (config file or LABPUBS_FETCH_PID)")
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}

	logger := newLogger(cmd)
	src := &pubs.DBLPSource{Client: &http.Client{Timeout: cfg.Fetch.Timeout}}
	svc := pubs.NewService(src, cfg.Fetch, logger)

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: pubs.NewHandler(svc, logger),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Server.Addr, "pid", cfg.Fetch.PID)
		errCh <- server.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
