package parser

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"MarketIntel/internal/domain"
	"MarketIntel/internal/scanner"
)

const (
	scannerName        = "headline"
	defaultPerPageCap  = 10
	defaultHTTPTimeout = 15 * time.Second
)

// HeadlineScanner pulls headline anchors from a news page using a CSS
// selector supplied via site options. It emits raw records only; dating and
// dedup are the normalizer's job.
type HeadlineScanner struct {
	client *http.Client
	logger *slog.Logger
}

var _ scanner.Scanner = (*HeadlineScanner)(nil)

// NewHeadlineScanner builds the scanner with an optional custom HTTP client.
func NewHeadlineScanner(client *http.Client, logger *slog.Logger) *HeadlineScanner {
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &HeadlineScanner{client: client, logger: logger}
}

// Name identifies the strategy in the registry.
func (h *HeadlineScanner) Name() string {
	return scannerName
}

// Scan visits every configured category page and extracts headline links.
func (h *HeadlineScanner) Scan(ctx context.Context, req scanner.Request) ([]domain.RawArticle, error) {
	selector := strings.TrimSpace(req.Options["selector"])
	if selector == "" {
		return nil, fmt.Errorf("site %s: missing selector option", req.SiteName)
	}

	perPage := defaultPerPageCap
	if v := req.Options["limit"]; v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			perPage = parsed
		}
	}

	var articles []domain.RawArticle
	for _, category := range req.Categories {
		page, err := h.fetchPage(ctx, category.URL)
		if err != nil {
			return nil, fmt.Errorf("site %s category %s: %w", req.SiteName, category.Name, err)
		}

		extracted := extractHeadlines(page, selector, category.URL, req.SiteName, perPage)
		h.debug("category scanned", "site", req.SiteName, "category", category.Name, "headlines", len(extracted))
		articles = append(articles, extracted...)
	}

	return articles, nil
}

func (h *HeadlineScanner) fetchPage(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	return doc, nil
}

func extractHeadlines(doc *goquery.Document, selector, pageURL, site string, limit int) []domain.RawArticle {
	var articles []domain.RawArticle
	doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		title := strings.TrimSpace(sel.Text())
		if title == "" {
			return true
		}

		href, _ := sel.Attr("href")
		articles = append(articles, domain.RawArticle{
			Title:  title,
			URL:    resolveLink(pageURL, href),
			Source: site,
		})
		return len(articles) < limit
	})
	return articles
}

func resolveLink(pageURL, href string) string {
	if href == "" {
		return pageURL
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	return strings.TrimRight(pageURL, "/") + "/" + strings.TrimLeft(href, "/")
}

func (h *HeadlineScanner) debug(msg string, args ...any) {
	if h.logger != nil {
		h.logger.Debug(msg, args...)
	}
}
