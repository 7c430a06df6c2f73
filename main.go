package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"paperpod/internal/app"
	"paperpod/internal/config"
	"paperpod/internal/logger"
)

func main() {
	// Initialize structured logger
	base := slog.NewJSONHandler(os.Stdout, nil)
	slog.SetDefault(slog.New(logger.NewContextHandler(base)))

	// 1. Load Config
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. Provider clients and audio store
	ctx := context.Background()
	deps, err := app.Bootstrap(ctx, cfg)
	if err != nil {
		slog.Error("failed to bootstrap dependencies", "error", err)
		os.Exit(1)
	}
	defer deps.Close()

	// 3. Wire and serve
	a := app.New(cfg, deps)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	slog.Info("server starting", "port", cfg.ServerPort)
	if err := http.ListenAndServe(addr, a.Handler); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
