// Package summarize produces a short synopsis for a cluster's headlines.
package summarize

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"MarketIntel/internal/ports"
)

const (
	// maxInputChars bounds the combined headline text sent to the model.
	maxInputChars = 1800
	// truncateAt is the fallback character budget.
	truncateAt = 220

	emptySummary       = "No content"
	continuationMarker = "…"
)

// Summarizer condenses cluster headlines. It never returns an error; a failing
// or absent model degrades to truncation.
type Summarizer struct {
	model    ports.AbstractiveSummarizer
	useModel bool
	logger   *slog.Logger
}

// New wires the optional model-backed summarizer.
func New(model ports.AbstractiveSummarizer, useModel bool, logger *slog.Logger) *Summarizer {
	return &Summarizer{model: model, useModel: useModel, logger: logger}
}

// Summarize joins the headlines, bounds the input length, and either asks the
// model or truncates. Always returns a non-empty string for non-empty input.
func (s *Summarizer) Summarize(ctx context.Context, headlines []string) string {
	if len(headlines) == 0 {
		return emptySummary
	}

	text := truncateRunes(strings.Join(headlines, " "), maxInputChars)

	if s.useModel && s.model != nil {
		out, err := s.model.Summarize(ctx, text)
		if err == nil && strings.TrimSpace(out) != "" {
			return strings.TrimSpace(out)
		}
		if err != nil && s.logger != nil {
			s.logger.Warn("model summary unavailable, truncating", "error", err)
		}
	}

	if len(text) > truncateAt {
		return truncateRunes(text, truncateAt) + continuationMarker
	}
	return text
}

// truncateRunes cuts s to at most limit bytes without splitting a rune.
func truncateRunes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
