package report

import (
	"fmt"
	"strings"

	"MarketIntel/internal/domain"
)

// RenderMarkdown serializes the digest as the ordered text report: headline
// mood, theme snapshot, then one block per cluster with its classification
// and member headlines. Writing the result anywhere is the caller's concern.
func RenderMarkdown(digest domain.MarketDigest) string {
	var b strings.Builder

	b.WriteString("# Oil Market Intelligence\n\n")
	b.WriteString(fmt.Sprintf("_Generated: %s_\n\n", digest.GeneratedAt.UTC().Format("2006-01-02 15:04 UTC")))

	b.WriteString(fmt.Sprintf("**Headline Mood:** Bullish %.2f%% · Bearish %.2f%% · Mixed %d · Neutral %d\n\n",
		digest.Mood.BullishPct,
		digest.Mood.BearishPct,
		digest.Mood.MixedCount,
		digest.Mood.NeutralCount))

	b.WriteString("## Theme Snapshot\n")
	for _, theme := range themeOrder {
		b.WriteString(fmt.Sprintf("- **%s**: %d\n", titleCase(theme), digest.ThemeCounts[theme]))
	}

	b.WriteString("\n---\n\n## Thematic Clusters\n")
	for i, cluster := range digest.Clusters {
		b.WriteString(fmt.Sprintf("\n### Cluster %d · %d article(s)\n", i+1, len(cluster.Members)))
		b.WriteString(fmt.Sprintf("- **Summary:** %s\n", cluster.Summary))
		b.WriteString(fmt.Sprintf("- **Mechanism:** %s\n", cluster.Mechanism))
		b.WriteString(fmt.Sprintf("- **Impact:** %s - %s\n", cluster.Impact, cluster.Intensity))
		b.WriteString(fmt.Sprintf("- **Sentiment (LLM):** %s\n", cluster.Sentiment))
		b.WriteString("- **Articles:**\n")
		for _, idx := range cluster.Members {
			if idx < 0 || idx >= len(digest.Articles) {
				continue
			}
			article := digest.Articles[idx]
			b.WriteString(fmt.Sprintf("  - [%s](%s)\n", article.Title, article.URL))
		}
	}

	return b.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
