package app

import (
	"context"
	"log/slog"
	"time"

	"MarketIntel/internal/config"
	"MarketIntel/internal/infrastructure/anthropic"
	"MarketIntel/internal/infrastructure/gemini"
	"MarketIntel/internal/infrastructure/parser"
	"MarketIntel/internal/infrastructure/scheduler"
	"MarketIntel/internal/infrastructure/storage"
	"MarketIntel/internal/infrastructure/telegram"
	"MarketIntel/internal/logging"
	"MarketIntel/internal/ports"
	"MarketIntel/internal/scanner"
	"MarketIntel/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	pipeline *usecase.Pipeline
}

// New builds a runnable application instance. Model capabilities and
// side-effect adapters are wired only when configured; the pipeline degrades
// per its fallback contract when any of them is absent.
func New(ctx context.Context, cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	registry := scanner.NewRegistry()
	registry.Register(parser.NewHeadlineScanner(nil, baseLogger.With("component", "scanner.headline")))

	source := parser.NewStrategySource(registry, cfg.Sites, baseLogger.With("component", "source"))

	var embedder ports.TextEmbedder
	var summarizer ports.AbstractiveSummarizer
	if cfg.Pipeline.UseModels && cfg.Gemini.APIKey != "" {
		client, err := gemini.NewClient(ctx, cfg.Gemini)
		if err != nil {
			baseLogger.Warn("gemini unavailable, model stages will fall back", "error", err)
		} else {
			embedder = client
			summarizer = client
		}
	}

	var sentiment ports.SentimentClassifier
	if cfg.Pipeline.UseModels && cfg.Anthropic.APIKey != "" {
		sentiment = anthropic.NewSentimentClassifier(cfg.Anthropic)
	}

	var repository ports.DigestRepository
	if cfg.Database.DSN != "" {
		db, err := storage.Open(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, err
		}
		repository = storage.NewPostgresRepository(db)
	}

	var notifier ports.Notifier
	if cfg.Notifications.Telegram.BotToken != "" && cfg.Notifications.Telegram.ChatID != "" {
		notifier = telegram.NewNotifier(cfg.Notifications.Telegram.BotToken, cfg.Notifications.Telegram.ChatID)
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:     source,
		Embedder:   embedder,
		Summarizer: summarizer,
		Sentiment:  sentiment,
		Repository: repository,
		Notifier:   notifier,
		Logger:     baseLogger.With("component", "pipeline"),
		Params:     cfg.Pipeline,
	})

	return &Application{cfg: cfg, logger: baseLogger, pipeline: pipeline}, nil
}

// ResendLatest republishes the last stored digest report to the configured
// notification channel.
func (a *Application) ResendLatest(ctx context.Context) error {
	return a.pipeline.ResendLatest(ctx)
}

// Run executes a single pipeline pass, or blocks on the cron schedule when
// one is configured.
func (a *Application) Run(ctx context.Context) error {
	if a.pipeline == nil {
		return nil
	}

	loc := a.cfg.Scheduler.Location()

	if a.cfg.Scheduler.CronExpression == "" {
		_, err := a.pipeline.Run(ctx, time.Now().In(loc))
		return err
	}

	driver := scheduler.NewCronScheduler(a.cfg.Scheduler.CronExpression, loc)
	sched := usecase.NewScheduler(driver, a.pipeline, a.logger.With("component", "scheduler"))
	if err := sched.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return sched.Stop(stopCtx)
}
