package cache

import (
	"context"
	"testing"
	"time"

	"warehouse/internal/config"
)

type snapshot struct {
	Total int64             `json:"total"`
	ByKey map[string]string `json:"by_key"`
}

func TestMemoryRoundTrip(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	if err := c.Set(ctx, "stats", snapshot{Total: 3, ByKey: map[string]string{"a": "b"}}, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var got snapshot
	ok, err := c.Get(ctx, "stats", &got)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got.Total != 3 || got.ByKey["a"] != "b" {
		t.Errorf("got %+v", got)
	}
}

func TestMemoryMissAndDelete(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	var v string
	if ok, _ := c.Get(ctx, "missing", &v); ok {
		t.Fatal("hit on missing key")
	}

	_ = c.Set(ctx, "k", "v", 0)
	_ = c.Delete(ctx, "k", "other")
	if ok, _ := c.Get(ctx, "k", &v); ok {
		t.Error("key survived Delete")
	}
}

func TestMemoryExpiry(t *testing.T) {
	now := time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC)
	c := &memoryCache{entries: map[string]memoryEntry{}, now: func() time.Time { return now }}
	ctx := context.Background()

	_ = c.Set(ctx, "k", 42, time.Minute)
	now = now.Add(59 * time.Second)

	var v int
	if ok, _ := c.Get(ctx, "k", &v); !ok || v != 42 {
		t.Fatalf("expired too early: ok=%v v=%d", ok, v)
	}

	now = now.Add(2 * time.Second)
	if ok, _ := c.Get(ctx, "k", &v); ok {
		t.Error("entry outlived its ttl")
	}
}

func TestNewWithoutRedisUsesMemory(t *testing.T) {
	c := New(context.Background(), config.RedisConfig{})
	if _, ok := c.(*memoryCache); !ok {
		t.Fatalf("New returned %T", c)
	}
}
