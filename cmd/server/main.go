package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SuryaBeeraka/mental-health-dashboard/internal/api"
	"github.com/SuryaBeeraka/mental-health-dashboard/internal/config"
	"github.com/SuryaBeeraka/mental-health-dashboard/internal/dataset"
	"github.com/SuryaBeeraka/mental-health-dashboard/internal/extractor"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Load the dataset once. It is immutable for the process lifetime, so
	// a malformed or unreachable resource is fatal at startup.
	store, err := loadDataset(cfg)
	if err != nil {
		log.Error("failed to load dataset", "error", err)
		os.Exit(1)
	}
	log.Info("dataset loaded", "categories", store.Len())

	ex := extractor.NewClient(cfg.ExtractorURL)

	srv := api.NewServer(store, ex, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		ex.Close()
	}()

	log.Info("starting dashboard", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}

func loadDataset(cfg config.Config) (*dataset.Store, error) {
	if cfg.DatasetURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return dataset.Fetch(ctx, cfg.DatasetURL)
	}
	return dataset.LoadFile(cfg.DatasetPath)
}
