package store

import (
	"context"
	"encoding/json"
	"log/slog"

	"budgetwise/internal/core"
	"budgetwise/internal/storage"
)

// Collection keys in the durable store.
const (
	keyTransactions = "transactions"
	keyBudgetGoals  = "budget_goals"
	keyReminders    = "reminders"
	keyNotes        = "notes"
)

// Synchronizer mirrors the entity collections into the durable KV store.
// It is a pure side-effect boundary: read failures fall back to empty
// collections, write failures are logged and dropped. The in-memory state
// stays authoritative either way, so nothing here ever returns an error to
// the store.
type Synchronizer struct {
	kv storage.KV
}

func NewSynchronizer(kv storage.KV) *Synchronizer {
	return &Synchronizer{kv: kv}
}

func load[T any](ctx context.Context, kv storage.KV, key string) []T {
	value, found, err := kv.Get(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "Failed to read stored collection, starting empty",
			"key", key, "error", err)
		return nil
	}
	if !found {
		return nil
	}
	var items []T
	if err := json.Unmarshal(value, &items); err != nil {
		slog.WarnContext(ctx, "Corrupt stored collection, starting empty",
			"key", key, "error", err)
		return nil
	}
	return items
}

func save[T any](ctx context.Context, kv storage.KV, key string, items []T) {
	if items == nil {
		items = []T{} // store an empty array, not null
	}
	value, err := json.Marshal(items)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to serialize collection, write dropped",
			"key", key, "error", err)
		return
	}
	if err := kv.Put(ctx, key, value); err != nil {
		slog.ErrorContext(ctx, "Failed to persist collection, write dropped",
			"key", key, "error", err)
	}
}

func (s *Synchronizer) LoadTransactions(ctx context.Context) []core.Transaction {
	return load[core.Transaction](ctx, s.kv, keyTransactions)
}

func (s *Synchronizer) LoadBudgetGoals(ctx context.Context) []core.BudgetGoal {
	return load[core.BudgetGoal](ctx, s.kv, keyBudgetGoals)
}

func (s *Synchronizer) LoadReminders(ctx context.Context) []core.Reminder {
	return load[core.Reminder](ctx, s.kv, keyReminders)
}

func (s *Synchronizer) LoadNotes(ctx context.Context) []core.Note {
	return load[core.Note](ctx, s.kv, keyNotes)
}

func (s *Synchronizer) SaveTransactions(ctx context.Context, items []core.Transaction) {
	save(ctx, s.kv, keyTransactions, items)
}

func (s *Synchronizer) SaveBudgetGoals(ctx context.Context, items []core.BudgetGoal) {
	save(ctx, s.kv, keyBudgetGoals, items)
}

func (s *Synchronizer) SaveReminders(ctx context.Context, items []core.Reminder) {
	save(ctx, s.kv, keyReminders, items)
}

func (s *Synchronizer) SaveNotes(ctx context.Context, items []core.Note) {
	save(ctx, s.kv, keyNotes, items)
}
