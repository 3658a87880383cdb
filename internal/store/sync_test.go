package store

import (
	"context"
	"testing"

	"budgetwise/internal/core"
	"budgetwise/internal/storage"
)

func TestSaveNilCollectionStoresEmptyArray(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()
	syncer := NewSynchronizer(kv)

	syncer.SaveTransactions(ctx, nil)

	value, found, err := kv.Get(ctx, keyTransactions)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found {
		t.Fatalf("nothing stored")
	}
	if got := string(value); got != "[]" {
		t.Fatalf("expected empty array, got %s", got)
	}
}

func TestLoadMissingKeyReturnsNil(t *testing.T) {
	kv := storage.NewMemoryKV()
	syncer := NewSynchronizer(kv)

	if got := syncer.LoadNotes(context.Background()); got != nil {
		t.Fatalf("expected nil for missing key, got %+v", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()
	syncer := NewSynchronizer(kv)

	in := []core.Note{
		{ID: "n1", Title: "first", Content: "body"},
		{ID: "n2", Title: "second", Content: "body"},
	}
	syncer.SaveNotes(ctx, in)

	out := syncer.LoadNotes(ctx)
	if len(out) != 2 || out[0] != in[0] || out[1] != in[1] {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}
