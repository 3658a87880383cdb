// Package store owns the four mutable collections: transactions, budget
// goals, reminders and notes. It is the single source of truth; the
// synchronizer only mirrors what happens here.
package store

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"budgetwise/internal/core"
)

// Store is constructed once at startup and passed to every consumer.
// Mutations are applied in call order under the mutex and written through
// to the synchronizer after they commit.
type Store struct {
	mu     sync.Mutex
	syncer *Synchronizer
	ready  bool

	// Injected for tests.
	now   func() time.Time
	newID func() string

	transactions []core.Transaction // newest-first
	goals        []core.BudgetGoal  // at most one per category
	reminders    []core.Reminder    // ascending by event time
	notes        []core.Note        // newest-first
}

func New(syncer *Synchronizer) *Store {
	return &Store{
		syncer: syncer,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Load hydrates the collections from the durable store. Until it has run,
// reads see empty defaults and mutations are not written through, so a
// half-started process cannot clobber stored data with defaults.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready {
		return
	}
	s.transactions = s.syncer.LoadTransactions(ctx)
	s.goals = s.syncer.LoadBudgetGoals(ctx)
	s.reminders = s.syncer.LoadReminders(ctx)
	s.notes = s.syncer.LoadNotes(ctx)
	s.ready = true

	slog.InfoContext(ctx, "Store loaded",
		"transactions", len(s.transactions),
		"budget_goals", len(s.goals),
		"reminders", len(s.reminders),
		"notes", len(s.notes))
}

// Ready reports whether Load has completed.
func (s *Store) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// AddTransaction records a new spending entry at the front of the list.
// An absent or unknown category falls back to the uncategorized sentinel.
func (s *Store) AddTransaction(ctx context.Context, description string, amountCents int64, categoryID string) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := core.Transaction{
		ID:          s.newID(),
		Description: strings.TrimSpace(description),
		Amount:      core.Money{Cents: amountCents},
		Date:        s.now(),
		CategoryID:  core.NormalizeCategoryID(categoryID),
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}

	s.transactions = append([]core.Transaction{tx}, s.transactions...)
	s.commitTransactions(ctx)

	slog.InfoContext(ctx, "Transaction added",
		"id", tx.ID,
		"description", tx.Description,
		"amount_cents", tx.Amount.Cents,
		"category_id", tx.CategoryID)
	return tx, nil
}

// DeleteTransaction removes the matching entry. Unknown ids are a no-op,
// not an error.
func (s *Store) DeleteTransaction(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.transactions[:0]
	for _, tx := range s.transactions {
		if tx.ID != id {
			kept = append(kept, tx)
		}
	}
	s.transactions = kept
	s.commitTransactions(ctx)
}

// SetBudgetGoal upserts the goal for a category: the collection never
// holds two entries for the same category.
func (s *Store) SetBudgetGoal(ctx context.Context, categoryID string, amountCents int64) (core.BudgetGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goal := core.BudgetGoal{CategoryID: categoryID, Amount: core.Money{Cents: amountCents}}
	if err := goal.Validate(); err != nil {
		return core.BudgetGoal{}, err
	}

	replaced := false
	for i, g := range s.goals {
		if g.CategoryID == goal.CategoryID {
			s.goals[i] = goal
			replaced = true
			break
		}
	}
	if !replaced {
		s.goals = append(s.goals, goal)
	}
	s.commitBudgetGoals(ctx)

	slog.InfoContext(ctx, "Budget goal set",
		"category_id", goal.CategoryID,
		"amount_cents", goal.Amount.Cents)
	return goal, nil
}

// AddReminder inserts a reminder and keeps the collection sorted ascending
// by event time.
func (s *Store) AddReminder(ctx context.Context, title string, eventTime time.Time) (core.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reminder := core.Reminder{
		ID:        s.newID(),
		Title:     strings.TrimSpace(title),
		EventTime: eventTime,
	}
	if err := reminder.Validate(); err != nil {
		return core.Reminder{}, err
	}

	s.reminders = append(s.reminders, reminder)
	sort.SliceStable(s.reminders, func(i, j int) bool {
		return s.reminders[i].EventTime.Before(s.reminders[j].EventTime)
	})
	s.commitReminders(ctx)

	slog.InfoContext(ctx, "Reminder added", "id", reminder.ID, "event_time", reminder.EventTime)
	return reminder, nil
}

// AddNote prepends a note. Title and content emptiness is the HTTP
// boundary's problem, not this component's.
func (s *Store) AddNote(ctx context.Context, title, content string) core.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	note := core.Note{ID: s.newID(), Title: title, Content: content}
	s.notes = append([]core.Note{note}, s.notes...)
	s.commitNotes(ctx)

	slog.InfoContext(ctx, "Note added", "id", note.ID)
	return note
}

// UpdateNote replaces the note with the given id. Unknown ids are a no-op.
func (s *Store) UpdateNote(ctx context.Context, id, title, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notes {
		if n.ID == id {
			s.notes[i] = core.Note{ID: id, Title: title, Content: content}
			break
		}
	}
	s.commitNotes(ctx)
}

// DeleteNote removes the note with the given id.
func (s *Store) DeleteNote(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.notes[:0]
	for _, n := range s.notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	s.notes = kept
	s.commitNotes(ctx)
}

// Transactions returns a copy of the transaction list, newest first.
func (s *Store) Transactions() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.transactions...)
}

// BudgetGoals returns a copy of the goal list.
func (s *Store) BudgetGoals() []core.BudgetGoal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.BudgetGoal(nil), s.goals...)
}

// Reminders returns a copy of the reminder list, ascending by event time.
func (s *Store) Reminders() []core.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Reminder(nil), s.reminders...)
}

// Notes returns a copy of the note list, newest first.
func (s *Store) Notes() []core.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Note(nil), s.notes...)
}

// Summary projects the current snapshot onto the dashboard view model.
// Derived fresh on every call, never cached.
func (s *Store) Summary() core.MonthSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.Summarize(s.transactions, s.goals, s.now())
}

// The commit hooks run after a mutation has been applied, still under the
// mutex so writes reach the durable store in mutation order. Writes are
// suppressed until Load has run.

func (s *Store) commitTransactions(ctx context.Context) {
	if s.ready {
		s.syncer.SaveTransactions(ctx, s.transactions)
	}
}

func (s *Store) commitBudgetGoals(ctx context.Context) {
	if s.ready {
		s.syncer.SaveBudgetGoals(ctx, s.goals)
	}
}

func (s *Store) commitReminders(ctx context.Context) {
	if s.ready {
		s.syncer.SaveReminders(ctx, s.reminders)
	}
}

func (s *Store) commitNotes(ctx context.Context) {
	if s.ready {
		s.syncer.SaveNotes(ctx, s.notes)
	}
}
