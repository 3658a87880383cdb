// Package worker holds the background pieces of the reminder alert
// pipeline: the scheduler that watches the store and the delivery handler
// the consumer command runs.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"budgetwise/internal/amqp"
	"budgetwise/internal/core"
)

// ReminderPublisher is the slice of the AMQP client the scheduler needs.
type ReminderPublisher interface {
	PublishReminderDue(ctx context.Context, msg *amqp.ReminderDueMessage) error
}

// ReminderSource is the slice of the store the scheduler reads.
type ReminderSource interface {
	Reminders() []core.Reminder
}

// Scheduler polls the store and publishes an alert when a reminder enters
// the lookahead window. Published ids are tracked in memory so a reminder
// alerts once per process; the broker's durable queue carries it from
// there.
type Scheduler struct {
	source    ReminderSource
	publisher ReminderPublisher
	interval  time.Duration
	lookahead time.Duration
	now       func() time.Time

	mu        sync.Mutex
	published map[string]struct{}
}

func NewScheduler(source ReminderSource, publisher ReminderPublisher, interval, lookahead time.Duration) *Scheduler {
	return &Scheduler{
		source:    source,
		publisher: publisher,
		interval:  interval,
		lookahead: lookahead,
		now:       time.Now,
		published: make(map[string]struct{}),
	}
}

// Run polls until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	slog.InfoContext(ctx, "Reminder scheduler started",
		"interval", s.interval,
		"lookahead", s.lookahead)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Reminder scheduler stopping", "reason", ctx.Err())
			return ctx.Err()
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep publishes one alert for every reminder whose event time falls
// inside [now, now+lookahead] and has not been alerted yet. Reminders
// already in the past are skipped, not alerted late.
func (s *Scheduler) Sweep(ctx context.Context) {
	now := s.now()
	deadline := now.Add(s.lookahead)

	for _, reminder := range s.source.Reminders() {
		if reminder.EventTime.Before(now) {
			continue
		}
		if reminder.EventTime.After(deadline) {
			// The list is ascending; everything after is further out.
			break
		}
		if s.alreadyPublished(reminder.ID) {
			continue
		}

		msg := amqp.NewReminderDueMessage(reminder.ID, reminder.Title, reminder.EventTime)
		if err := s.publisher.PublishReminderDue(ctx, msg); err != nil {
			slog.ErrorContext(ctx, "Failed to publish reminder alert, will retry next sweep",
				"reminder_id", reminder.ID,
				"error", err)
			continue
		}
		s.markPublished(reminder.ID)
	}
}

func (s *Scheduler) alreadyPublished(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.published[id]
	return ok
}

func (s *Scheduler) markPublished(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.published[id] = struct{}{}
}
