package cache

import (
	"testing"
	"time"

	"github.com/termtrack/termtrack/internal/model"
)

func TestKey(t *testing.T) {
	a := Key("lease.txt", "some contract text")
	b := Key("lease.txt", "some contract text")
	if a != b {
		t.Error("Identical inputs must produce identical keys")
	}
	if a == Key("lease.txt", "different text") {
		t.Error("Different text must change the key")
	}
	if a == Key("other.txt", "some contract text") {
		t.Error("Different source must change the key")
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	key := Key("lease.txt", "text")
	if _, found := c.Get(key); found {
		t.Error("Empty cache reported a hit")
	}

	items := []model.Item{{ID: "1", Type: model.TypeNotice, Date: "2026-10-02"}}
	c.Set(key, items, time.Minute)

	got, found := c.Get(key)
	if !found {
		t.Fatal("Expected a hit after Set")
	}
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("Unexpected cached items: %+v", got)
	}

	c.Clear()
	if _, found := c.Get(key); found {
		t.Error("Expected a miss after Clear")
	}
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	key := Key("lease.txt", "text")
	c.Set(key, []model.Item{{ID: "1"}}, 10*time.Millisecond)

	time.Sleep(30 * time.Millisecond)
	if _, found := c.Get(key); found {
		t.Error("Expected expiry after the TTL elapsed")
	}
}
