package embedding

import (
	"context"
	"errors"
	"math"
	"testing"
)

type stubEmbedder struct {
	vectors [][]float64
	err     error
	calls   int
}

func (s *stubEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float64, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.vectors, nil
}

func TestFallbackVectorDeterminism(t *testing.T) {
	t.Parallel()

	a := FallbackVector("OPEC announces output cut")
	b := FallbackVector("OPEC announces output cut")

	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("component %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestFallbackVectorUnitNorm(t *testing.T) {
	t.Parallel()

	titles := []string{
		"OPEC announces output cut",
		"Stocks rally on Fed rate pause",
		"x",
	}

	for _, title := range titles {
		vec := FallbackVector(title)
		var sq float64
		for _, v := range vec {
			sq += v * v
		}
		if norm := math.Sqrt(sq); math.Abs(norm-1) > 1e-6 {
			t.Fatalf("title %q: norm %v not within tolerance of 1", title, norm)
		}
	}
}

func TestFallbackVectorDistinguishesDifferentTitles(t *testing.T) {
	t.Parallel()

	a := FallbackVector("Brent surges on supply outage")
	b := FallbackVector("Crude glut weighs on prices")

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different titles produced identical vectors")
	}
}

func TestEmbedUsesModelWhenAvailable(t *testing.T) {
	t.Parallel()

	stub := &stubEmbedder{vectors: [][]float64{{3, 0, 0}, {0, 4, 0}}}
	provider := NewProvider(stub, true, nil)

	got := provider.Embed(context.Background(), []string{"a", "b"})
	if len(got) != 2 {
		t.Fatalf("expected 2 vectors, got %d", len(got))
	}
	// Model output must come back unit-normalized.
	if math.Abs(got[0][0]-1) > 1e-6 || math.Abs(got[1][1]-1) > 1e-6 {
		t.Fatalf("vectors not normalized: %v", got)
	}
}

func TestEmbedFallsBackOnError(t *testing.T) {
	t.Parallel()

	stub := &stubEmbedder{err: errors.New("model unavailable")}
	provider := NewProvider(stub, true, nil)

	got := provider.Embed(context.Background(), []string{"OPEC announces output cut"})
	want := FallbackVector("OPEC announces output cut")

	if len(got) != 1 {
		t.Fatalf("expected 1 vector, got %d", len(got))
	}
	for i := range want {
		if got[0][i] != want[i] {
			t.Fatalf("fallback vector mismatch at %d: %v vs %v", i, got[0][i], want[i])
		}
	}
}

func TestEmbedFallsBackOnLengthMismatch(t *testing.T) {
	t.Parallel()

	stub := &stubEmbedder{vectors: [][]float64{{1, 0}}}
	provider := NewProvider(stub, true, nil)

	got := provider.Embed(context.Background(), []string{"a", "b"})
	if len(got) != 2 {
		t.Fatalf("expected one vector per title, got %d", len(got))
	}
}

func TestEmbedSkipsModelWhenDisabled(t *testing.T) {
	t.Parallel()

	stub := &stubEmbedder{vectors: [][]float64{{1, 0}}}
	provider := NewProvider(stub, false, nil)

	_ = provider.Embed(context.Background(), []string{"a"})
	if stub.calls != 0 {
		t.Fatalf("embedder called %d times with model mode disabled", stub.calls)
	}
}
