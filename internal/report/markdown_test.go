package report

import (
	"strings"
	"testing"
	"time"

	"MarketIntel/internal/domain"
)

func TestRenderMarkdown(t *testing.T) {
	t.Parallel()

	articles := []domain.Article{
		{Title: "OPEC announces output cut", URL: "https://a.example/1"},
		{Title: "OPEC agrees to cut production", URL: "https://a.example/2"},
		{Title: "Stocks rally on Fed rate pause", URL: "https://b.example/3"},
	}
	clusters := []domain.Cluster{
		{
			Members:   []int{0, 1},
			Summary:   "OPEC trims output",
			Mechanism: "Physical supply change",
			Impact:    domain.ImpactMixed,
			Intensity: domain.IntensityModerate,
			Sentiment: domain.SentimentNeutral,
		},
		{
			Members:   []int{2},
			Summary:   "Markets cheer rate pause",
			Mechanism: "Inventory signal (build/draw)",
			Impact:    domain.ImpactBullish,
			Intensity: domain.IntensityModerate,
			Sentiment: domain.SentimentNeutral,
		},
	}

	digest := BuildDigest(articles, clusters, time.Date(2026, time.August, 29, 6, 0, 0, 0, time.UTC))
	rendered := RenderMarkdown(digest)

	wantFragments := []string{
		"# Oil Market Intelligence",
		"_Generated: 2026-08-29 06:00 UTC_",
		"**Headline Mood:** Bullish 50.00% · Bearish 0.00% · Mixed 1 · Neutral 0",
		"## Theme Snapshot",
		"- **Geopolitical**: 0",
		"- **Supply**: 2",
		"- **Monetary**: 1",
		"## Thematic Clusters",
		"### Cluster 1 · 2 article(s)",
		"- **Summary:** OPEC trims output",
		"- **Mechanism:** Physical supply change",
		"- **Impact:** Mixed - Moderate",
		"- **Sentiment (LLM):** Neutral",
		"  - [OPEC announces output cut](https://a.example/1)",
		"### Cluster 2 · 1 article(s)",
	}

	for _, fragment := range wantFragments {
		if !strings.Contains(rendered, fragment) {
			t.Fatalf("rendered report missing %q\n---\n%s", fragment, rendered)
		}
	}
}

func TestRenderMarkdownSkipsOutOfRangeMembers(t *testing.T) {
	t.Parallel()

	digest := domain.MarketDigest{
		GeneratedAt: time.Now(),
		Articles:    []domain.Article{{Title: "only", URL: "u"}},
		Clusters:    []domain.Cluster{{Members: []int{0, 7}}},
		ThemeCounts: map[string]int{},
	}

	rendered := RenderMarkdown(digest)
	if strings.Count(rendered, "  - [") != 1 {
		t.Fatalf("expected exactly one member line:\n%s", rendered)
	}
}
