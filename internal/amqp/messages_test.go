package amqp

import (
	"testing"
	"time"
)

func TestNewReminderDueMessage(t *testing.T) {
	eventTime := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	msg := NewReminderDueMessage("r-1", "Pay rent", eventTime)

	if msg.ReminderID != "r-1" || msg.Title != "Pay rent" {
		t.Fatalf("unexpected message: %+v", msg)
	}
	if !msg.EventTime.Equal(eventTime) {
		t.Fatalf("event time = %v, want %v", msg.EventTime, eventTime)
	}
	if msg.PublishedAt.IsZero() {
		t.Fatalf("published_at must be stamped")
	}
}

func TestReminderDueMessageJSON(t *testing.T) {
	msg := &ReminderDueMessage{
		ReminderID:  "r-1",
		Title:       "Dentist",
		EventTime:   time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC),
		PublishedAt: time.Date(2025, 7, 1, 8, 45, 0, 0, time.UTC),
	}

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	parsed, err := ReminderDueMessageFromJSON(body)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if parsed.ReminderID != msg.ReminderID || parsed.Title != msg.Title {
		t.Fatalf("round trip mismatch: %+v", parsed)
	}
	if !parsed.EventTime.Equal(msg.EventTime) {
		t.Fatalf("event time mismatch: %v", parsed.EventTime)
	}
}

func TestReminderDueMessageInvalidJSON(t *testing.T) {
	if _, err := ReminderDueMessageFromJSON([]byte(`{"event_time": 42}`)); err == nil {
		t.Fatalf("expected error for malformed payload")
	}
}
