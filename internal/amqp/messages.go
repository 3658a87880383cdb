package amqp

import (
	"encoding/json"
	"time"
)

// ReminderDueMessage tells the delivery worker that a reminder is about to
// fire. It carries the full reminder payload so the worker does not need
// store access.
type ReminderDueMessage struct {
	ReminderID  string    `json:"reminder_id"`
	Title       string    `json:"title"`
	EventTime   time.Time `json:"event_time"`
	PublishedAt time.Time `json:"published_at"`
}

func NewReminderDueMessage(reminderID, title string, eventTime time.Time) *ReminderDueMessage {
	return &ReminderDueMessage{
		ReminderID:  reminderID,
		Title:       title,
		EventTime:   eventTime,
		PublishedAt: time.Now(),
	}
}

func (m *ReminderDueMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ReminderDueMessageFromJSON(data []byte) (*ReminderDueMessage, error) {
	var msg ReminderDueMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
