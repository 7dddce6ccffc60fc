package cache

import (
	"context"
	"testing"
	"time"
)

func TestAnswerKeyNormalizesQuestionText(t *testing.T) {
	a := AnswerKey("  Quelles intersections?  ", "last_30_days", "", "", "public", false)
	b := AnswerKey("quelles intersections?", "last_30_days", "", "", "public", false)
	if a != b {
		t.Errorf("keys differ for equivalent questions: %q vs %q", a, b)
	}
}

func TestAnswerKeyVariesOnEveryDimension(t *testing.T) {
	base := AnswerKey("q", "last_30_days", "", "", "public", false)
	variants := []string{
		AnswerKey("autre q", "last_30_days", "", "", "public", false),
		AnswerKey("q", "last_7_days", "", "", "public", false),
		AnswerKey("q", "custom", "2024-01-01", "2024-01-31", "public", false),
		AnswerKey("q", "last_30_days", "", "", "municipal", false),
		AnswerKey("q", "last_30_days", "", "", "public", true),
	}
	for i, v := range variants {
		if v == base {
			t.Errorf("variant %d collides with the base key %q", i, base)
		}
	}
}

func TestNoopProvider(t *testing.T) {
	var p NoopProvider
	if _, err := p.Get(context.Background(), "k"); err != ErrCacheMiss {
		t.Errorf("Get = %v, want ErrCacheMiss", err)
	}
	if err := p.Set(context.Background(), "k", []byte("v"), time.Minute); err != nil {
		t.Errorf("Set = %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close = %v", err)
	}
}
