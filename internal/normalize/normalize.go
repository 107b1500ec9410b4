// Package normalize canonicalizes raw headline records before the
// clustering pipeline consumes them.
package normalize

import (
	"strings"
	"time"

	"MarketIntel/internal/domain"
)

const defaultSource = "Unknown"

// Normalize maps raw records into Articles, drops records with empty titles,
// deduplicates by trimmed title (first occurrence wins), and applies an
// inclusive calendar-date window. Records without a published date are always
// retained; missing metadata must not drop content. Pure function.
func Normalize(raw []domain.RawArticle, windowStart, windowEnd time.Time) []domain.Article {
	seen := make(map[string]bool, len(raw))
	articles := make([]domain.Article, 0, len(raw))

	for _, r := range raw {
		title := strings.TrimSpace(r.Title)
		if title == "" {
			continue
		}
		if seen[title] {
			continue
		}
		if r.PublishedAt != nil && !withinWindow(*r.PublishedAt, windowStart, windowEnd) {
			continue
		}

		seen[title] = true

		source := r.Source
		if source == "" {
			source = defaultSource
		}

		articles = append(articles, domain.Article{
			Title:       title,
			URL:         r.URL,
			Source:      source,
			PublishedAt: r.PublishedAt,
		})
	}

	return articles
}

// withinWindow compares calendar dates only, both ends inclusive.
func withinWindow(at, start, end time.Time) bool {
	day := truncateToDay(at)
	return !day.Before(truncateToDay(start)) && !day.After(truncateToDay(end))
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
