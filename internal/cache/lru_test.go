package cache

import (
	"testing"
	"time"
)

func TestLRUSetGet(t *testing.T) {
	c := NewLRU[string](3, time.Minute)

	c.Set("a", "1")
	got, ok := c.Get("a")
	if !ok || got != "1" {
		t.Fatalf("get a: got %q, ok=%v", got, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Fatalf("expected miss for unknown key")
	}
}

func TestLRUReplaceExisting(t *testing.T) {
	c := NewLRU[string](3, time.Minute)

	c.Set("a", "1")
	c.Set("a", "2")
	if got, _ := c.Get("a"); got != "2" {
		t.Fatalf("got %q, want replaced value", got)
	}
	if c.Size() != 1 {
		t.Fatalf("replace must not grow the cache, size=%d", c.Size())
	}
}

func TestLRUEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU[int](2, time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a") // a is now most recently used
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Fatalf("b should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Fatalf("a should survive, it was used most recently")
	}
	if c.Size() != 2 {
		t.Fatalf("size=%d, want 2", c.Size())
	}
}

func TestLRUExpiry(t *testing.T) {
	c := NewLRU[int](10, 10*time.Millisecond)

	c.Set("a", 1)
	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get("a"); ok {
		t.Fatalf("expired entry must be a miss")
	}
	if c.Size() != 0 {
		t.Fatalf("expired entry must be removed on access, size=%d", c.Size())
	}
}

func TestLRUCleanExpired(t *testing.T) {
	c := NewLRU[int](10, 10*time.Millisecond)

	c.Set("a", 1)
	c.Set("b", 2)
	time.Sleep(20 * time.Millisecond)
	c.Set("c", 3)

	if removed := c.CleanExpired(); removed != 2 {
		t.Fatalf("removed %d, want 2", removed)
	}
	if _, ok := c.Get("c"); !ok {
		t.Fatalf("fresh entry must survive cleanup")
	}
}

func TestLRUDelete(t *testing.T) {
	c := NewLRU[int](10, time.Minute)

	c.Set("a", 1)
	c.Delete("a")
	c.Delete("a") // deleting twice is fine

	if _, ok := c.Get("a"); ok {
		t.Fatalf("deleted entry must be a miss")
	}
}
