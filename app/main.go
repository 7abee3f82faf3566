package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"github.com/eubelhor/house-scraper/app/api"
	"github.com/eubelhor/house-scraper/app/cfg"
	"github.com/eubelhor/house-scraper/app/dataset"
	"github.com/eubelhor/house-scraper/app/export"
	"github.com/eubelhor/house-scraper/app/scraper"
	"github.com/eubelhor/house-scraper/app/tasks"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	setupLogger(appCfg.Debug)

	slog.Info("Starting House Scraper", "version", appCfg.Version)

	configCache := scraper.NewConfigCache(appCfg.SourcesDir)
	if err := configCache.Run(); err != nil {
		slog.Error("Failed to load source configurations", "error", err)
		os.Exit(1)
	}
	slog.Info("Source configurations loaded", "count", configCache.GetConfigCount())

	fetcher := scraper.NewFetcher(appCfg.UserAgent,
		time.Duration(appCfg.Timeout)*time.Second,
		appCfg.RetryCount,
		time.Duration(appCfg.RequestDelay)*time.Millisecond)
	acquirer := scraper.NewAcquirer(fetcher, configCache, appCfg.ExpectedSeats)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	members, stats, err := acquirer.Run(ctx)
	if err != nil {
		if errors.Is(err, scraper.ErrNoRecords) {
			slog.Error("All sources failed, no records acquired", "error", err)
		} else {
			slog.Error("Acquisition aborted", "error", err)
		}
		os.Exit(1)
	}

	if appCfg.ExpectedSeats > 0 && stats.Seats < appCfg.ExpectedSeats {
		slog.Warn("Record set is incomplete", "seats", stats.Seats, "expected", appCfg.ExpectedSeats)
	}

	csvExporter := export.NewCSVExporter()
	if err := csvExporter.Run(members, appCfg.OutputFile); err != nil {
		slog.Error("CSV export failed", "error", err)
		os.Exit(1)
	}

	if appCfg.JSONFile != "" {
		if err := export.NewJSONExporter().Run(members, appCfg.JSONFile); err != nil {
			slog.Error("JSON export failed", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Run complete", "seats", stats.Seats, "parsed", stats.Parsed,
		"skipped", stats.Skipped, "sources_consulted", len(stats.Consulted))

	if !appCfg.Serve {
		return
	}

	store := dataset.NewStore()
	store.Set(members, stats)

	refresher := tasks.NewRefresher(acquirer, store,
		time.Duration(appCfg.RefreshInterval)*time.Second)
	refresher.Start()
	defer refresher.Stop()

	handler := api.NewHandler(store, configCache, refresher)
	router := api.NewServer(handler, appCfg.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
	}))
	slog.SetDefault(logger)
}
