package domain

import "time"

// RawArticle is the loosely-populated record handed over by fetch adapters.
// Missing fields keep their zero values; normalization applies the defaults.
type RawArticle struct {
	Title       string
	URL         string
	Source      string
	PublishedAt *time.Time
}

// Article is a normalized headline. Title is the dedup and clustering key.
type Article struct {
	Title       string
	URL         string
	Source      string
	PublishedAt *time.Time
}

// Impact is the directional market classification of a cluster.
type Impact string

const (
	ImpactBullish Impact = "Bullish"
	ImpactBearish Impact = "Bearish"
	ImpactMixed   Impact = "Mixed"
	ImpactNeutral Impact = "Neutral"
)

// Intensity qualifies the strength of an Impact. Neutral is reported when a
// cluster carries no keyword signal at all.
type Intensity string

const (
	IntensityWeak     Intensity = "Weak"
	IntensityModerate Intensity = "Moderate"
	IntensityStrong   Intensity = "Strong"
	IntensityNeutral  Intensity = "Neutral"
)

// Sentiment is the model-derived affect label, independent of Impact.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// SentimentScore is one classifier verdict for a single text.
type SentimentScore struct {
	Label      string
	Confidence float64
}

// Cluster groups topically related articles by index into the normalized
// article list. Members keep first-discovered order; classification fields
// are computed once and never mutated.
type Cluster struct {
	Members   []int
	Summary   string
	Mechanism string
	Impact    Impact
	Intensity Intensity
	Sentiment Sentiment
}

// Mood aggregates cluster impact labels into headline percentages.
type Mood struct {
	BullishPct   float64
	BearishPct   float64
	MixedCount   int
	NeutralCount int
}

// MarketDigest is the aggregate report for a single pipeline run.
type MarketDigest struct {
	GeneratedAt time.Time
	Articles    []Article
	Clusters    []Cluster
	ThemeCounts map[string]int
	Mood        Mood
}
