package http

import (
	"net/http"

	"budgetwise/internal/core"
)

// handleDashboard recomputes the month summary on every request. The view
// is cheap to derive and stale budget numbers are worse than the work.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	summary := s.store.Summary()
	if summary.RecentTransactions == nil {
		summary.RecentTransactions = []core.Transaction{}
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, core.Categories)
}

type suggestRequest struct {
	Description string `json:"description"`
}

type suggestResponse struct {
	CategoryID *string `json:"categoryId"`
}

// handleSuggest never fails toward the client: when nothing confident
// comes back, categoryId is null.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := readJSON(w, r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}

	s.metrics.suggestRequests.Add(1)

	resp := suggestResponse{}
	if id, ok := s.suggester.Suggest(r.Context(), req.Description); ok {
		resp.CategoryID = &id
		s.metrics.suggestHits.Add(1)
	}
	writeJSON(w, http.StatusOK, resp)
}
