package storage

import (
	"context"
	"path/filepath"
	"testing"
)

// Every substrate must behave identically through the KV interface.
func testKVContract(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	if _, found, err := kv.Get(ctx, "transactions"); err != nil || found {
		t.Fatalf("fresh store: found=%v err=%v", found, err)
	}

	if err := kv.Put(ctx, "transactions", []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	value, found, err := kv.Get(ctx, "transactions")
	if err != nil || !found {
		t.Fatalf("get after put: found=%v err=%v", found, err)
	}
	if string(value) != `[{"id":"a"}]` {
		t.Fatalf("got %s", value)
	}

	// Put replaces.
	if err := kv.Put(ctx, "transactions", []byte(`[]`)); err != nil {
		t.Fatalf("replace: %v", err)
	}
	value, _, _ = kv.Get(ctx, "transactions")
	if string(value) != `[]` {
		t.Fatalf("replace: got %s", value)
	}

	// Keys are independent.
	if _, found, _ := kv.Get(ctx, "notes"); found {
		t.Fatalf("notes key must be unset")
	}
}

func TestMemoryKV(t *testing.T) {
	kv := NewMemoryKV()
	defer kv.Close()
	testKVContract(t, kv)
}

func TestBoltKV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	kv, err := NewBoltKV(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer kv.Close()
	testKVContract(t, kv)
}

func TestBoltKVPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	kv, err := NewBoltKV(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := kv.Put(ctx, "reminders", []byte(`[{"id":"r1"}]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	kv, err = NewBoltKV(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer kv.Close()
	value, found, err := kv.Get(ctx, "reminders")
	if err != nil || !found {
		t.Fatalf("get after reopen: found=%v err=%v", found, err)
	}
	if string(value) != `[{"id":"r1"}]` {
		t.Fatalf("got %s", value)
	}
}

func TestSQLiteKV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.sqlite")
	kv, err := NewSQLiteKV(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer kv.Close()
	testKVContract(t, kv)
}
