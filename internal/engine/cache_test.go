package engine

import (
	"context"
	"testing"
	"time"
)

func TestCacheKey(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		k1 := CacheKey("job_match", "golang backend engineer")
		k2 := CacheKey("job_match", "golang backend engineer")
		if k1 != k2 {
			t.Errorf("CacheKey not deterministic: %q != %q", k1, k2)
		}
	})

	t.Run("different inputs differ", func(t *testing.T) {
		k1 := CacheKey("job_match", "golang")
		k2 := CacheKey("job_match", "python")
		if k1 == k2 {
			t.Errorf("different inputs produced same key: %q", k1)
		}
	})

	t.Run("has prefix", func(t *testing.T) {
		k := CacheKey("test")
		if k[:3] != "gr:" {
			t.Errorf("expected gr: prefix, got %q", k[:3])
		}
	})
}

func TestCacheJSONRoundTrip(t *testing.T) {
	// Init minimal cache (no Redis)
	InitCache("", 1*time.Minute, 100, 5*time.Minute)

	ctx := context.Background()
	key := CacheKey("test", "round-trip")

	type payload struct {
		Score int      `json:"score"`
		Tags  []string `json:"tags"`
	}

	// Miss
	if _, ok := CacheLoadJSON[payload](ctx, key); ok {
		t.Error("expected cache miss on empty cache")
	}

	// Set
	CacheStoreJSON(ctx, key, payload{Score: 75, Tags: []string{"go", "sql"}})

	// Hit
	got, ok := CacheLoadJSON[payload](ctx, key)
	if !ok {
		t.Fatal("expected cache hit after set")
	}
	if got.Score != 75 || len(got.Tags) != 2 {
		t.Errorf("got %+v, want score 75 with 2 tags", got)
	}
}

func TestCacheExpiry(t *testing.T) {
	InitCache("", 10*time.Millisecond, 100, 5*time.Minute)

	ctx := context.Background()
	key := CacheKey("test", "expiry")
	CacheStoreJSON(ctx, key, "value")

	if _, ok := CacheLoadJSON[string](ctx, key); !ok {
		t.Fatal("expected hit before expiry")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := CacheLoadJSON[string](ctx, key); ok {
		t.Error("expected miss after expiry")
	}
}
