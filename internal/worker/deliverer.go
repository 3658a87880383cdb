package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"budgetwise/internal/amqp"
)

// Deliverer handles reminder alerts on the consumer side. Delivery here is
// a structured log line; a real notification channel would slot in behind
// the same handler.
type Deliverer struct {
	now func() time.Time
}

func NewDeliverer() *Deliverer {
	return &Deliverer{now: time.Now}
}

func (d *Deliverer) HandleReminderDue(ctx context.Context, msg *amqp.ReminderDueMessage) error {
	if msg.ReminderID == "" {
		return fmt.Errorf("message without reminder id")
	}

	until := msg.EventTime.Sub(d.now()).Round(time.Second)
	slog.InfoContext(ctx, "Reminder due",
		"reminder_id", msg.ReminderID,
		"title", msg.Title,
		"event_time", msg.EventTime,
		"time_until", until)
	return nil
}
