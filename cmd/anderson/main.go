package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/MikeSquared-Agency/anderson/internal/agent"
	"github.com/MikeSquared-Agency/anderson/internal/api"
	"github.com/MikeSquared-Agency/anderson/internal/archive"
	"github.com/MikeSquared-Agency/anderson/internal/config"
	"github.com/MikeSquared-Agency/anderson/internal/fetch"
	"github.com/MikeSquared-Agency/anderson/internal/gateway"
	"github.com/MikeSquared-Agency/anderson/internal/hermes"
	"github.com/MikeSquared-Agency/anderson/internal/history"
	"github.com/MikeSquared-Agency/anderson/internal/worklog"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("anderson starting", "port", cfg.Port)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Workspace
	if err := os.MkdirAll(cfg.WorkspaceDir, 0o755); err != nil {
		slog.Error("failed to create workspace", "dir", cfg.WorkspaceDir, "error", err)
		os.Exit(1)
	}
	wl := worklog.New(cfg.WorkspaceDir, slog.Default())
	store := history.NewStore(cfg.WorkspaceDir, slog.Default())

	// Gateway client
	llm := gateway.NewClient(cfg.APIKey, cfg.APIBase, cfg.Model)
	slog.Info("gateway client ready", "base", cfg.APIBase, "model", cfg.Model)

	// NATS/Hermes (optional — anderson works standalone, just no swarm events)
	var hermesClient *hermes.Client
	if cfg.NatsURL != "" {
		var err error
		hermesClient, err = hermes.NewClient(cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer hermesClient.Close()
		slog.Info("NATS connected", "url", cfg.NatsURL)
	} else {
		slog.Warn("NATS not configured — running without swarm events")
	}

	// Exchange archive (optional)
	var archiveStore *archive.Store
	if cfg.DatabaseURL != "" {
		var err error
		archiveStore, err = archive.New(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer archiveStore.Close()
		slog.Info("exchange archive connected")
	} else {
		slog.Warn("DATABASE_URL not set — running without exchange archive")
	}

	// Agent — loads the persisted history
	a := agent.New(llm, fetch.NewAugmenter(wl), store, wl, hermesClient, archiveStore, slog.Default())
	a.StartSession()
	a.Announce(cfg.Port)

	// HTTP API
	srv := api.NewServer(cfg.Port, a, llm, slog.Default())
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("anderson ready", "port", cfg.Port)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	cancel()
	slog.Info("anderson stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
