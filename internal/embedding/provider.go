// Package embedding turns headline titles into unit vectors, either via an
// injected model-backed embedder or a deterministic hash fallback.
package embedding

import (
	"context"
	"hash/fnv"
	"log/slog"
	"math"

	"MarketIntel/internal/ports"
)

// The fallback vector spreads a stable title hash over four co-prime moduli.
// It carries just enough signal for exact-duplicate detection: identical
// titles always map to identical vectors.
var fallbackModuli = [4]uint64{97, 193, 389, 997}

const hashSpace = 1_000_000

// Provider embeds batches of titles. A nil or failing embedder degrades to the
// deterministic fallback; callers never observe an embedding failure.
type Provider struct {
	embedder ports.TextEmbedder
	useModel bool
	logger   *slog.Logger
}

// NewProvider wires the optional model-backed embedder.
func NewProvider(embedder ports.TextEmbedder, useModel bool, logger *slog.Logger) *Provider {
	return &Provider{embedder: embedder, useModel: useModel, logger: logger}
}

// Embed returns one unit vector per title, same order.
func (p *Provider) Embed(ctx context.Context, titles []string) [][]float64 {
	if p.useModel && p.embedder != nil {
		vectors, err := p.embedder.EmbedBatch(ctx, titles)
		if err == nil && len(vectors) == len(titles) {
			for i := range vectors {
				vectors[i] = normalize(vectors[i])
			}
			return vectors
		}
		if p.logger != nil {
			p.logger.Warn("model embedding unavailable, using hash fallback", "error", err)
		}
	}

	vectors := make([][]float64, len(titles))
	for i, title := range titles {
		vectors[i] = FallbackVector(title)
	}
	return vectors
}

// FallbackVector derives a reproducible unit vector from the title text.
// FNV-1a keeps it stable across runs and processes.
func FallbackVector(title string) []float64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(title))
	sum := h.Sum64() % hashSpace

	vec := make([]float64, len(fallbackModuli))
	for i, m := range fallbackModuli {
		vec[i] = float64(sum%m) / float64(m)
	}
	return normalize(vec)
}

func normalize(vec []float64) []float64 {
	var sq float64
	for _, v := range vec {
		sq += v * v
	}
	norm := math.Sqrt(sq) + 1e-9
	out := make([]float64, len(vec))
	for i, v := range vec {
		out[i] = v / norm
	}
	return out
}
