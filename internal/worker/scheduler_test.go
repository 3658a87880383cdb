package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"budgetwise/internal/amqp"
	"budgetwise/internal/core"
)

type fakeSource struct {
	reminders []core.Reminder
}

func (f *fakeSource) Reminders() []core.Reminder { return f.reminders }

type fakePublisher struct {
	published []*amqp.ReminderDueMessage
	err       error
}

func (f *fakePublisher) PublishReminderDue(ctx context.Context, msg *amqp.ReminderDueMessage) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, msg)
	return nil
}

func newTestScheduler(source ReminderSource, publisher ReminderPublisher, now time.Time) *Scheduler {
	s := NewScheduler(source, publisher, time.Minute, 15*time.Minute)
	s.now = func() time.Time { return now }
	return s
}

func TestSweepPublishesRemindersInWindow(t *testing.T) {
	now := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	source := &fakeSource{reminders: []core.Reminder{
		{ID: "past", Title: "missed", EventTime: now.Add(-time.Hour)},
		{ID: "soon", Title: "in window", EventTime: now.Add(10 * time.Minute)},
		{ID: "later", Title: "beyond lookahead", EventTime: now.Add(2 * time.Hour)},
	}}
	publisher := &fakePublisher{}

	newTestScheduler(source, publisher, now).Sweep(context.Background())

	if len(publisher.published) != 1 {
		t.Fatalf("published %d alerts, want 1", len(publisher.published))
	}
	if publisher.published[0].ReminderID != "soon" {
		t.Fatalf("published %q, want soon", publisher.published[0].ReminderID)
	}
}

func TestSweepPublishesEachReminderOnce(t *testing.T) {
	now := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	source := &fakeSource{reminders: []core.Reminder{
		{ID: "r1", Title: "x", EventTime: now.Add(5 * time.Minute)},
	}}
	publisher := &fakePublisher{}
	s := newTestScheduler(source, publisher, now)

	s.Sweep(context.Background())
	s.Sweep(context.Background())

	if len(publisher.published) != 1 {
		t.Fatalf("published %d alerts across sweeps, want 1", len(publisher.published))
	}
}

func TestSweepRetriesFailedPublish(t *testing.T) {
	now := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	source := &fakeSource{reminders: []core.Reminder{
		{ID: "r1", Title: "x", EventTime: now.Add(5 * time.Minute)},
	}}
	publisher := &fakePublisher{err: errors.New("broker down")}
	s := newTestScheduler(source, publisher, now)

	s.Sweep(context.Background())
	publisher.err = nil
	s.Sweep(context.Background())

	if len(publisher.published) != 1 {
		t.Fatalf("failed publish must be retried on the next sweep, got %d", len(publisher.published))
	}
}

func TestSweepBoundaryIsInclusive(t *testing.T) {
	now := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	source := &fakeSource{reminders: []core.Reminder{
		{ID: "at-now", Title: "x", EventTime: now},
		{ID: "at-deadline", Title: "y", EventTime: now.Add(15 * time.Minute)},
	}}
	publisher := &fakePublisher{}

	newTestScheduler(source, publisher, now).Sweep(context.Background())

	if len(publisher.published) != 2 {
		t.Fatalf("window boundaries must be inclusive, published %d", len(publisher.published))
	}
}

func TestDelivererRejectsEmptyID(t *testing.T) {
	d := NewDeliverer()
	if err := d.HandleReminderDue(context.Background(), &amqp.ReminderDueMessage{}); err == nil {
		t.Fatalf("expected error for message without reminder id")
	}
	msg := amqp.NewReminderDueMessage("r1", "x", time.Now().Add(time.Minute))
	if err := d.HandleReminderDue(context.Background(), msg); err != nil {
		t.Fatalf("deliver: %v", err)
	}
}
