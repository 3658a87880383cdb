package http

import (
	"fmt"
	"net/http"
	"time"

	"budgetwise/internal/core"
)

type createReminderRequest struct {
	Title     string `json:"title"`
	EventTime string `json:"eventTime"`
}

func (s *Server) handleCreateReminder(w http.ResponseWriter, r *http.Request) {
	var req createReminderRequest
	if err := readJSON(w, r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}

	eventTime, err := time.Parse(time.RFC3339, req.EventTime)
	if err != nil {
		writeValidationError(w, fmt.Errorf("eventTime must be RFC 3339: %w", err))
		return
	}

	reminder, err := s.store.AddReminder(r.Context(), sanitizeInput(req.Title), eventTime)
	if err != nil {
		writeValidationError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, reminder)
}

func (s *Server) handleListReminders(w http.ResponseWriter, r *http.Request) {
	reminders := s.store.Reminders()
	if reminders == nil {
		reminders = []core.Reminder{}
	}
	writeJSON(w, http.StatusOK, reminders)
}
