package telegram

import (
	"context"
	"strings"
	"testing"
)

func TestSplitMessage(t *testing.T) {
	t.Parallel()

	t.Run("short message untouched", func(t *testing.T) {
		t.Parallel()

		chunks := splitMessage("hello", 100)
		if len(chunks) != 1 || chunks[0] != "hello" {
			t.Fatalf("unexpected chunks: %v", chunks)
		}
	})

	t.Run("splits on newline boundaries", func(t *testing.T) {
		t.Parallel()

		lines := make([]string, 50)
		for i := range lines {
			lines[i] = strings.Repeat("a", 40)
		}
		text := strings.Join(lines, "\n")

		chunks := splitMessage(text, 100)
		for i, chunk := range chunks {
			if len(chunk) > 100 {
				t.Fatalf("chunk %d exceeds limit: %d chars", i, len(chunk))
			}
		}

		joined := strings.Join(chunks, "\n")
		if strings.ReplaceAll(joined, "\n", "") != strings.ReplaceAll(text, "\n", "") {
			t.Fatal("content lost while splitting")
		}
	})

	t.Run("hard-splits a single long line", func(t *testing.T) {
		t.Parallel()

		chunks := splitMessage(strings.Repeat("x", 250), 100)
		if len(chunks) != 3 {
			t.Fatalf("expected 3 chunks, got %d", len(chunks))
		}
		for _, chunk := range chunks {
			if len(chunk) > 100 {
				t.Fatalf("chunk exceeds limit: %d chars", len(chunk))
			}
		}
	})
}

func TestPublishDigestMisconfigured(t *testing.T) {
	t.Parallel()

	n := NewNotifier("", "")
	if err := n.PublishDigest(context.Background(), "report"); err == nil {
		t.Fatal("expected error for missing credentials")
	}
}
