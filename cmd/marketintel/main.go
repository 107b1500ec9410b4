package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"MarketIntel/internal/app"
	"MarketIntel/internal/config"
	"MarketIntel/internal/logging"
	"MarketIntel/internal/usecase"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("application setup failed", "error", err)
		os.Exit(1)
	}

	if len(os.Args) > 1 && os.Args[1] == "resend" {
		if err := application.ResendLatest(ctx); err != nil {
			logger.Error("resend failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := application.Run(ctx); err != nil {
		if errors.Is(err, usecase.ErrNoArticles) {
			logger.Warn("nothing to process", "error", err)
			return
		}
		logger.Error("application stopped", "error", err)
		os.Exit(1)
	}
}
