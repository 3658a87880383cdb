package http

import (
	"net/http"

	"budgetwise/internal/core"
)

type noteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Note emptiness is checked here, not in the store: this boundary owns
// the note form contract.
func (req noteRequest) validate() error {
	return core.Note{Title: req.Title, Content: req.Content}.Validate()
}

func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := readJSON(w, r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}
	if err := req.validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	note := s.store.AddNote(r.Context(), sanitizeInput(req.Title), req.Content)
	writeJSON(w, http.StatusCreated, note)
}

func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := readJSON(w, r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}
	if err := req.validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	s.store.UpdateNote(r.Context(), r.PathValue("id"), sanitizeInput(req.Title), req.Content)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	s.store.DeleteNote(r.Context(), r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	notes := s.store.Notes()
	if notes == nil {
		notes = []core.Note{}
	}
	writeJSON(w, http.StatusOK, notes)
}
