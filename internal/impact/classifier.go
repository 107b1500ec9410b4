// Package impact assigns economic-impact classifications to headline clusters
// by combining an always-available keyword engine with an optional
// model-backed sentiment signal.
package impact

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"MarketIntel/internal/domain"
	"MarketIntel/internal/ports"
)

const (
	// sentimentBand is the neutral zone around a zero average score.
	sentimentBand = 0.15
	// maxSentimentChars caps each headline sent to the classifier.
	maxSentimentChars = 256
	// strongDelta is the keyword-count margin that upgrades intensity.
	strongDelta = 3
)

// Result carries both signals together; disagreement between keyword impact
// and model sentiment is a valid, meaningful output.
type Result struct {
	Mechanism string
	Impact    domain.Impact
	Intensity domain.Intensity
	Sentiment domain.Sentiment
}

// Classifier is safe to call without any external capability: the keyword
// engine always runs, and sentiment degrades to Neutral.
type Classifier struct {
	sentiment ports.SentimentClassifier
	useModel  bool
	logger    *slog.Logger
}

// NewClassifier wires the optional sentiment capability.
func NewClassifier(sentiment ports.SentimentClassifier, useModel bool, logger *slog.Logger) *Classifier {
	return &Classifier{sentiment: sentiment, useModel: useModel, logger: logger}
}

// Classify scores the cluster's headlines. Never returns an error.
func (c *Classifier) Classify(ctx context.Context, headlines []string) Result {
	mechanism, impact, intensity := keywordScore(headlines)
	sentiment := c.modelSentiment(ctx, headlines)
	return Result{
		Mechanism: mechanism,
		Impact:    impact,
		Intensity: intensity,
		Sentiment: sentiment,
	}
}

// keywordScore counts bullish/bearish cue presence per headline and tallies
// mechanism categories. A cluster with zero hits anywhere is a no-signal
// cluster and reports Neutral across the board.
func keywordScore(headlines []string) (string, domain.Impact, domain.Intensity) {
	var bull, bear int
	tallies := make([]int, len(mechanismCategories))

	for _, headline := range headlines {
		lower := strings.ToLower(headline)

		for _, w := range bullishWords {
			if strings.Contains(lower, w) {
				bull++
			}
		}
		for _, w := range bearishWords {
			if strings.Contains(lower, w) {
				bear++
			}
		}

		for i, cat := range mechanismCategories {
			for _, w := range cat.keywords {
				if strings.Contains(lower, w) {
					tallies[i]++
					break
				}
			}
		}
	}

	mechanism := topMechanism(tallies)

	if bull == 0 && bear == 0 && mechanism == MechanismNone {
		return MechanismNone, domain.ImpactNeutral, domain.IntensityNeutral
	}

	switch {
	case bull > bear:
		return mechanism, domain.ImpactBullish, intensityFor(bull - bear)
	case bear > bull:
		return mechanism, domain.ImpactBearish, intensityFor(bear - bull)
	default:
		return mechanism, domain.ImpactMixed, domain.IntensityModerate
	}
}

// topMechanism picks the category with the most hits. Ties resolve by the
// fixed priority order of mechanismCategories.
func topMechanism(tallies []int) string {
	best := -1
	label := MechanismNone
	for i, count := range tallies {
		if count > best {
			best = count
			label = mechanismCategories[i].label
		}
	}
	if best <= 0 {
		return MechanismNone
	}
	return label
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

func intensityFor(delta int) domain.Intensity {
	if delta > strongDelta {
		return domain.IntensityStrong
	}
	return domain.IntensityModerate
}

// modelSentiment averages the classifier's signed confidences: positive
// labels add, negative labels subtract. Absence or failure yields Neutral.
func (c *Classifier) modelSentiment(ctx context.Context, headlines []string) domain.Sentiment {
	if !c.useModel || c.sentiment == nil || len(headlines) == 0 {
		return domain.SentimentNeutral
	}

	texts := make([]string, len(headlines))
	for i, h := range headlines {
		texts[i] = truncateRunes(h, maxSentimentChars)
	}

	scores, err := c.sentiment.Classify(ctx, texts)
	if err != nil || len(scores) == 0 {
		if err != nil && c.logger != nil {
			c.logger.Warn("sentiment classifier unavailable, defaulting to neutral", "error", err)
		}
		return domain.SentimentNeutral
	}

	var total float64
	for _, s := range scores {
		label := strings.ToLower(s.Label)
		switch {
		case strings.Contains(label, "positive"):
			total += s.Confidence
		case strings.Contains(label, "negative"):
			total -= s.Confidence
		}
	}

	avg := total / float64(len(scores))
	switch {
	case avg > sentimentBand:
		return domain.SentimentPositive
	case avg < -sentimentBand:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}
