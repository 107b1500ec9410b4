package ports

import (
	"context"
	"time"

	"MarketIntel/internal/domain"
)

// ArticleSource pulls raw headlines from upstream providers.
type ArticleSource interface {
	FetchWindow(ctx context.Context, start, end time.Time) ([]domain.RawArticle, error)
}

// TextEmbedder converts a batch of strings into unit vectors, one per input,
// preserving order.
type TextEmbedder interface {
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)
}

// AbstractiveSummarizer condenses a block of text into a short synopsis.
type AbstractiveSummarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// SentimentClassifier labels each text with an affect verdict and confidence.
type SentimentClassifier interface {
	Classify(ctx context.Context, texts []string) ([]domain.SentimentScore, error)
}

// DigestRepository persists completed digests for history/audit and serves
// back the most recent rendered report.
type DigestRepository interface {
	SaveDigest(ctx context.Context, digest *domain.MarketDigest, report string) error
	LatestReport(ctx context.Context) (string, error)
}

// Notifier delivers the rendered digest to an outbound channel.
type Notifier interface {
	PublishDigest(ctx context.Context, report string) error
}

// Scheduler controls when pipeline runs execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
