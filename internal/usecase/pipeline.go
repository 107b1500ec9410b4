package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"MarketIntel/internal/clustering"
	"MarketIntel/internal/config"
	"MarketIntel/internal/domain"
	"MarketIntel/internal/embedding"
	"MarketIntel/internal/impact"
	"MarketIntel/internal/normalize"
	"MarketIntel/internal/ports"
	"MarketIntel/internal/report"
	"MarketIntel/internal/summarize"
)

// ErrNoArticles signals that nothing survived normalization. This is the one
// condition surfaced to the caller rather than degraded in place, since it
// usually means the upstream fetch failed, not the pipeline.
var ErrNoArticles = errors.New("no articles survived normalization")

// PipelineDeps wires all driven adapters into the orchestration pipeline.
// Every model capability and side-effect port is optional; only Source is
// required for a run to make sense.
type PipelineDeps struct {
	Source     ports.ArticleSource
	Embedder   ports.TextEmbedder
	Summarizer ports.AbstractiveSummarizer
	Sentiment  ports.SentimentClassifier
	Repository ports.DigestRepository
	Notifier   ports.Notifier
	Logger     *slog.Logger
	Params     config.PipelineConfig
}

// Pipeline implements the headline-clustering and market-impact workflow.
type Pipeline struct {
	source     ports.ArticleSource
	provider   *embedding.Provider
	summarizer *summarize.Summarizer
	classifier *impact.Classifier
	repository ports.DigestRepository
	notifier   ports.Notifier
	logger     *slog.Logger
	params     config.PipelineConfig
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		source:     deps.Source,
		provider:   embedding.NewProvider(deps.Embedder, deps.Params.UseModels, deps.Logger),
		summarizer: summarize.New(deps.Summarizer, deps.Params.UseModels, deps.Logger),
		classifier: impact.NewClassifier(deps.Sentiment, deps.Params.UseModels, deps.Logger),
		repository: deps.Repository,
		notifier:   deps.Notifier,
		logger:     deps.Logger,
		params:     deps.Params,
	}
}

// Run executes one full pass: fetch, normalize, embed, cluster, classify,
// aggregate, persist, notify. Each stage consumes the previous stage's
// immutable output; nothing is mutated after construction.
func (p *Pipeline) Run(ctx context.Context, now time.Time) (*domain.MarketDigest, error) {
	if err := p.params.Validate(); err != nil {
		return nil, fmt.Errorf("pipeline parameters: %w", err)
	}

	windowEnd := now
	windowStart := now.AddDate(0, 0, -p.params.DaysBack)

	var raw []domain.RawArticle
	if p.source != nil {
		var err error
		raw, err = p.source.FetchWindow(ctx, windowStart, windowEnd)
		if err != nil {
			return nil, fmt.Errorf("fetch articles: %w", err)
		}
	}

	articles := normalize.Normalize(raw, windowStart, windowEnd)
	p.debug("normalized articles", "raw", len(raw), "kept", len(articles))
	if len(articles) == 0 {
		return nil, ErrNoArticles
	}

	titles := make([]string, len(articles))
	for i, a := range articles {
		titles[i] = a.Title
	}

	vectors := p.provider.Embed(ctx, titles)

	groups, err := clustering.Group(vectors, p.params.SimilarityThreshold, p.params.MinClusterSize)
	if err != nil {
		return nil, fmt.Errorf("cluster headlines: %w", err)
	}
	p.debug("clustered headlines", "articles", len(articles), "clusters", len(groups))

	clusters := make([]domain.Cluster, 0, len(groups))
	for _, members := range groups {
		headlines := make([]string, len(members))
		for i, idx := range members {
			headlines[i] = titles[idx]
		}

		result := p.classifier.Classify(ctx, headlines)
		clusters = append(clusters, domain.Cluster{
			Members:   members,
			Summary:   p.summarizer.Summarize(ctx, headlines),
			Mechanism: result.Mechanism,
			Impact:    result.Impact,
			Intensity: result.Intensity,
			Sentiment: result.Sentiment,
		})
	}

	digest := report.BuildDigest(articles, clusters, now)
	rendered := report.RenderMarkdown(digest)

	if p.repository != nil {
		if err := p.repository.SaveDigest(ctx, &digest, rendered); err != nil {
			return nil, fmt.Errorf("persist digest: %w", err)
		}
	}

	if p.notifier != nil {
		if err := p.notifier.PublishDigest(ctx, rendered); err != nil {
			return nil, fmt.Errorf("publish digest: %w", err)
		}
	}

	return &digest, nil
}

// ResendLatest republishes the most recently persisted report without
// running the pipeline.
func (p *Pipeline) ResendLatest(ctx context.Context) error {
	if p.repository == nil {
		return errors.New("no repository configured")
	}
	if p.notifier == nil {
		return errors.New("no notifier configured")
	}

	rendered, err := p.repository.LatestReport(ctx)
	if err != nil {
		return fmt.Errorf("load latest report: %w", err)
	}
	if rendered == "" {
		return errors.New("no stored report to resend")
	}

	return p.notifier.PublishDigest(ctx, rendered)
}

func (p *Pipeline) debug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}
