package http

import (
	"fmt"
	"net/http"

	"budgetwise/internal/core"
)

type createTransactionRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	CategoryID  string `json:"categoryId"`
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := readJSON(w, r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}

	cents, err := core.ParseDecimalToCents(sanitizeInput(req.Amount))
	if err != nil {
		writeValidationError(w, fmt.Errorf("amount: %w", err))
		return
	}

	tx, err := s.store.AddTransaction(r.Context(), sanitizeInput(req.Description), cents, req.CategoryID)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	s.metrics.transactionsCreated.Add(1)
	writeJSON(w, http.StatusCreated, tx)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	s.store.DeleteTransaction(r.Context(), r.PathValue("id"))
	s.metrics.transactionsDeleted.Add(1)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	transactions := s.store.Transactions()
	if transactions == nil {
		transactions = []core.Transaction{}
	}
	writeJSON(w, http.StatusOK, transactions)
}
