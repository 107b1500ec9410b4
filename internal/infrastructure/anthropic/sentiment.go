// Package anthropic adapts the Claude API to the sentiment-classification
// port.
package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"MarketIntel/internal/config"
	"MarketIntel/internal/domain"
	"MarketIntel/internal/ports"
)

const systemPrompt = `You classify the sentiment of commodity-market news headlines.

For every headline in the numbered list, output one object with:
- "label": "positive", "negative" or "neutral"
- "confidence": a number between 0 and 1

Output JSON only, no other text:
{"results": [{"label": "positive", "confidence": 0.9}]}

The results array must have exactly one entry per headline, in input order.`

// SentimentClassifier implements the sentiment port on Claude.
type SentimentClassifier struct {
	client *anthropic.Client
	model  anthropic.Model
}

var _ ports.SentimentClassifier = (*SentimentClassifier)(nil)

// NewSentimentClassifier builds a classifier from configuration.
func NewSentimentClassifier(cfg config.AnthropicConfig) *SentimentClassifier {
	client := anthropic.NewClient(option.WithAPIKey(cfg.APIKey))
	return &SentimentClassifier{
		client: &client,
		model:  anthropic.ModelClaudeHaiku4_5,
	}
}

// Classify labels each text with a sentiment verdict, one per input in order.
func (c *SentimentClassifier) Classify(ctx context.Context, texts []string) ([]domain.SentimentScore, error) {
	if len(texts) == 0 {
		return []domain.SentimentScore{}, nil
	}

	var prompt strings.Builder
	for i, text := range texts {
		fmt.Fprintf(&prompt, "%d. %s\n", i+1, text)
	}

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt.String())),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return nil, fmt.Errorf("no response from anthropic")
	}

	content := cleanJSONResponse(resp.Content[0].Text)

	var parsed struct {
		Results []struct {
			Label      string  `json:"label"`
			Confidence float64 `json:"confidence"`
		} `json:"results"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w, content: %s", err, content)
	}
	if len(parsed.Results) != len(texts) {
		return nil, fmt.Errorf("got %d verdicts for %d headlines", len(parsed.Results), len(texts))
	}

	scores := make([]domain.SentimentScore, len(parsed.Results))
	for i, r := range parsed.Results {
		scores[i] = domain.SentimentScore{Label: r.Label, Confidence: r.Confidence}
	}
	return scores, nil
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
