package http

import (
	"fmt"
	"net/http"

	"budgetwise/internal/core"
)

type setBudgetGoalRequest struct {
	CategoryID string `json:"categoryId"`
	Amount     string `json:"amount"`
}

func (s *Server) handleSetBudgetGoal(w http.ResponseWriter, r *http.Request) {
	var req setBudgetGoalRequest
	if err := readJSON(w, r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}

	amount := sanitizeInput(req.Amount)
	var cents int64
	// Zero clears a category's budget; the decimal parser rejects it, so
	// it is handled before parsing.
	if !isZeroAmount(amount) {
		var err error
		cents, err = core.ParseDecimalToCents(amount)
		if err != nil {
			writeValidationError(w, fmt.Errorf("amount: %w", err))
			return
		}
	}

	if _, err := s.store.SetBudgetGoal(r.Context(), req.CategoryID, cents); err != nil {
		writeValidationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.goalList())
}

func (s *Server) handleListBudgetGoals(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.goalList())
}

// isZeroAmount recognizes "0", "0.00", "0,0" and the like.
func isZeroAmount(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != '0' && r != '.' && r != ',' {
			return false
		}
	}
	return true
}

func (s *Server) goalList() []core.BudgetGoal {
	goals := s.store.BudgetGoals()
	if goals == nil {
		goals = []core.BudgetGoal{}
	}
	return goals
}
