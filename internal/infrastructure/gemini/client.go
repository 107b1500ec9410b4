// Package gemini adapts the Gemini API to the embedding and summarization
// ports.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"MarketIntel/internal/config"
	"MarketIntel/internal/ports"
)

const summaryPrompt = "Summarize the following commodity-market headlines in one or two plain sentences. " +
	"State only what the headlines say; no preamble, no bullet points.\n\n"

// Client implements TextEmbedder and AbstractiveSummarizer on Gemini models.
type Client struct {
	client     *genai.Client
	embedModel string
	genModel   string
}

var _ ports.TextEmbedder = (*Client)(nil)
var _ ports.AbstractiveSummarizer = (*Client)(nil)

// NewClient builds a client from configuration.
func NewClient(ctx context.Context, cfg config.GeminiConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Client{
		client:     client,
		embedModel: cfg.EmbedModel,
		genModel:   cfg.Model,
	}, nil
}

// EmbedBatch embeds all texts in a single call, preserving order. Vectors are
// returned as produced by the model; the embedding provider normalizes them.
func (c *Client) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return [][]float64{}, nil
	}

	contents := make([]*genai.Content, len(texts))
	for i, text := range texts {
		contents[i] = &genai.Content{
			Parts: []*genai.Part{{Text: text}},
			Role:  "user",
		}
	}

	resp, err := c.client.Models.EmbedContent(ctx, c.embedModel, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("gemini embed call failed: %w", err)
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("gemini returned %d embeddings for %d texts", len(resp.Embeddings), len(texts))
	}

	vectors := make([][]float64, len(resp.Embeddings))
	for i, emb := range resp.Embeddings {
		if emb == nil || len(emb.Values) == 0 {
			return nil, fmt.Errorf("gemini returned empty embedding at index %d", i)
		}
		vec := make([]float64, len(emb.Values))
		for j, v := range emb.Values {
			vec[j] = float64(v)
		}
		vectors[i] = vec
	}

	return vectors, nil
}

// Summarize asks the generation model for a short synopsis of the text.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	contents := []*genai.Content{
		{
			Parts: []*genai.Part{{Text: summaryPrompt + text}},
			Role:  "user",
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.genModel, contents, &genai.GenerateContentConfig{
		MaxOutputTokens: 120,
	})
	if err != nil {
		return "", fmt.Errorf("gemini summary call failed: %w", err)
	}

	out := strings.TrimSpace(resp.Text())
	if out == "" {
		return "", fmt.Errorf("gemini returned an empty summary")
	}
	return out, nil
}
