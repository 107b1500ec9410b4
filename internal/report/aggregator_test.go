package report

import (
	"testing"
	"time"

	"MarketIntel/internal/domain"
)

func TestThemeTally(t *testing.T) {
	t.Parallel()

	titles := []string{
		"War tension lifts crude",                  // geopolitical
		"Refinery output rises as demand slows",    // supply + demand
		"Fed holds rate amid inflation",            // monetary
		"Quiet session for commodity markets",      // nothing
		"Sanction threatens pipeline supply lines", // geopolitical + supply
	}

	counts := ThemeTally(titles)

	want := map[string]int{
		"geopolitical": 2,
		"supply":       2,
		"demand":       1,
		"monetary":     1,
	}
	for theme, expected := range want {
		if counts[theme] != expected {
			t.Fatalf("theme %s: got %d, want %d", theme, counts[theme], expected)
		}
	}
}

func TestThemeTallyHeadlineCountsOncePerTheme(t *testing.T) {
	t.Parallel()

	// Multiple keywords of the same theme in one headline still count once.
	counts := ThemeTally([]string{"War attack sanction escalates tension"})
	if counts["geopolitical"] != 1 {
		t.Fatalf("expected 1 geopolitical hit, got %d", counts["geopolitical"])
	}
}

func TestBuildDigestOrdersClustersBySize(t *testing.T) {
	t.Parallel()

	clusters := []domain.Cluster{
		{Members: []int{0}, Impact: domain.ImpactNeutral},
		{Members: []int{1, 2, 3}, Impact: domain.ImpactBullish},
		{Members: []int{4, 5}, Impact: domain.ImpactBearish},
		{Members: []int{6, 7}, Impact: domain.ImpactMixed},
	}
	articles := make([]domain.Article, 8)
	for i := range articles {
		articles[i] = domain.Article{Title: "t", URL: "u"}
	}

	digest := BuildDigest(articles, clusters, time.Now())

	sizes := make([]int, len(digest.Clusters))
	for i, c := range digest.Clusters {
		sizes[i] = len(c.Members)
	}
	if sizes[0] != 3 || sizes[1] != 2 || sizes[2] != 2 || sizes[3] != 1 {
		t.Fatalf("unexpected size ordering: %v", sizes)
	}
	// Equal sizes keep first-discovered order.
	if digest.Clusters[1].Impact != domain.ImpactBearish || digest.Clusters[2].Impact != domain.ImpactMixed {
		t.Fatal("tie between equal-size clusters not broken by discovery order")
	}
}

func TestMoodPercentages(t *testing.T) {
	t.Parallel()

	clusters := []domain.Cluster{
		{Members: []int{0}, Impact: domain.ImpactBullish},
		{Members: []int{1}, Impact: domain.ImpactBullish},
		{Members: []int{2}, Impact: domain.ImpactBearish},
		{Members: []int{3}, Impact: domain.ImpactMixed},
		{Members: []int{4}, Impact: domain.ImpactNeutral},
		{Members: []int{5}, Impact: domain.ImpactNeutral},
	}

	digest := BuildDigest(nil, clusters, time.Now())

	if digest.Mood.BullishPct != 33.33 {
		t.Fatalf("bullish pct %v, want 33.33", digest.Mood.BullishPct)
	}
	if digest.Mood.BearishPct != 16.67 {
		t.Fatalf("bearish pct %v, want 16.67", digest.Mood.BearishPct)
	}
	if digest.Mood.MixedCount != 1 || digest.Mood.NeutralCount != 2 {
		t.Fatalf("mixed/neutral counts %d/%d, want 1/2", digest.Mood.MixedCount, digest.Mood.NeutralCount)
	}
}

func TestMoodBounds(t *testing.T) {
	t.Parallel()

	// 1 of 32: both shares land on an exact half cent (3.125 / 96.875).
	skewed := []domain.Cluster{{Members: []int{0}, Impact: domain.ImpactBullish}}
	for i := 1; i < 32; i++ {
		skewed = append(skewed, domain.Cluster{Members: []int{i}, Impact: domain.ImpactBearish})
	}

	cases := [][]domain.Cluster{
		nil,
		{{Members: []int{0}, Impact: domain.ImpactBullish}},
		{
			{Members: []int{0}, Impact: domain.ImpactBullish},
			{Members: []int{1}, Impact: domain.ImpactBearish},
			{Members: []int{2}, Impact: domain.ImpactMixed},
		},
		skewed,
	}

	for _, clusters := range cases {
		mood := BuildDigest(nil, clusters, time.Now()).Mood
		if mood.BullishPct < 0 || mood.BullishPct > 100 {
			t.Fatalf("bullish pct out of bounds: %v", mood.BullishPct)
		}
		if mood.BearishPct < 0 || mood.BearishPct > 100 {
			t.Fatalf("bearish pct out of bounds: %v", mood.BearishPct)
		}
		if mood.BullishPct+mood.BearishPct > 100 {
			t.Fatalf("percentages exceed 100: %v + %v", mood.BullishPct, mood.BearishPct)
		}
	}
}

func TestMoodHalfCentRounding(t *testing.T) {
	t.Parallel()

	clusters := []domain.Cluster{{Members: []int{0}, Impact: domain.ImpactBullish}}
	for i := 1; i < 32; i++ {
		clusters = append(clusters, domain.Cluster{Members: []int{i}, Impact: domain.ImpactBearish})
	}

	mood := BuildDigest(nil, clusters, time.Now()).Mood
	if mood.BullishPct != 3.12 {
		t.Fatalf("bullish pct %v, want 3.12", mood.BullishPct)
	}
	if mood.BearishPct != 96.88 {
		t.Fatalf("bearish pct %v, want 96.88", mood.BearishPct)
	}
}

func TestMoodEmptyClusterListDoesNotDivideByZero(t *testing.T) {
	t.Parallel()

	mood := BuildDigest(nil, nil, time.Now()).Mood
	if mood.BullishPct != 0 || mood.BearishPct != 0 {
		t.Fatalf("expected zero percentages, got %v/%v", mood.BullishPct, mood.BearishPct)
	}
}
