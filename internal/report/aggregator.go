// Package report rolls classified clusters into the market digest and renders
// it as a markdown report.
package report

import (
	"math"
	"sort"
	"strings"
	"time"

	"MarketIntel/internal/domain"
)

// Theme names, in the fixed order used for tallying and rendering.
var themeOrder = []string{"geopolitical", "supply", "demand", "monetary"}

// themeKeywords drive the snapshot counts. A headline may count toward
// several themes; themes are tallied over all surviving headlines, not per
// cluster.
var themeKeywords = map[string][]string{
	"geopolitical": {"war", "tension", "attack", "ceasefire", "sanction", "geopolit"},
	"supply":       {"output", "production", "supply", "pipeline", "refinery", "outage", "capacity"},
	"demand":       {"demand", "slowdown", "recession", "china", "pmi", "consumption"},
	"monetary":     {"fed", "rate", "central bank", "inflation", "monetary"},
}

// ThemeTally counts headline matches per theme.
func ThemeTally(titles []string) map[string]int {
	counts := make(map[string]int, len(themeOrder))
	for _, theme := range themeOrder {
		counts[theme] = 0
	}

	for _, title := range titles {
		lower := strings.ToLower(title)
		for _, theme := range themeOrder {
			for _, w := range themeKeywords[theme] {
				if strings.Contains(lower, w) {
					counts[theme]++
					break
				}
			}
		}
	}

	return counts
}

// BuildDigest assembles the digest: theme tally over every surviving
// headline, mood percentages from cluster impact labels, and clusters ordered
// by descending size with first-discovered order breaking ties.
func BuildDigest(articles []domain.Article, clusters []domain.Cluster, generatedAt time.Time) domain.MarketDigest {
	titles := make([]string, len(articles))
	for i, a := range articles {
		titles[i] = a.Title
	}

	ordered := make([]domain.Cluster, len(clusters))
	copy(ordered, clusters)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Members) > len(ordered[j].Members)
	})

	return domain.MarketDigest{
		GeneratedAt: generatedAt,
		Articles:    articles,
		Clusters:    ordered,
		ThemeCounts: ThemeTally(titles),
		Mood:        moodOf(ordered),
	}
}

// moodOf counts clusters per impact label. The divisor is clamped to one so
// an empty cluster list yields zero percentages instead of dividing by zero.
func moodOf(clusters []domain.Cluster) domain.Mood {
	var bull, bear, mixed, neutral int
	for _, c := range clusters {
		switch c.Impact {
		case domain.ImpactBullish:
			bull++
		case domain.ImpactBearish:
			bear++
		case domain.ImpactMixed:
			mixed++
		default:
			neutral++
		}
	}

	total := bull + bear + mixed + neutral
	if total < 1 {
		total = 1
	}

	return domain.Mood{
		BullishPct:   roundPct(100 * float64(bull) / float64(total)),
		BearishPct:   roundPct(100 * float64(bear) / float64(total)),
		MixedCount:   mixed,
		NeutralCount: neutral,
	}
}

// roundPct rounds to two decimals, half to even. Complementary shares can
// both land on an exact half cent; rounding both away from zero would push
// their sum past 100.
func roundPct(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
