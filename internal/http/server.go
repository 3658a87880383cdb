// Package http exposes the JSON API over the entity store, the dashboard
// projection and the suggestion gateway.
package http

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"budgetwise/internal/store"
	"budgetwise/internal/suggest"
)

// Suggester is the slice of the suggestion gateway the server calls.
type Suggester interface {
	Suggest(ctx context.Context, description string) (string, bool)
}

type Server struct {
	http.Server
	store       *store.Store
	suggester   Suggester
	rateLimiter *rateLimiter
	metrics     *appMetrics

	shutdownOnce sync.Once
}

type appMetrics struct {
	startedAt time.Time

	transactionsCreated atomic.Int64
	transactionsDeleted atomic.Int64
	suggestRequests     atomic.Int64
	suggestHits         atomic.Int64
}

// NewServer wires routes and middleware, returning a ready-to-run server.
func NewServer(addr string, entityStore *store.Store, suggester Suggester) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
		store:       entityStore,
		suggester:   suggester,
		rateLimiter: newRateLimiter(),
		metrics:     &appMetrics{startedAt: time.Now()},
	}

	// Entity collections.
	mux.HandleFunc("POST /api/transactions", s.withSecurityHeaders(s.handleCreateTransaction))
	mux.HandleFunc("DELETE /api/transactions/{id}", s.withSecurityHeaders(s.handleDeleteTransaction))
	mux.HandleFunc("GET /api/transactions", s.withSecurityHeaders(s.handleListTransactions))
	mux.HandleFunc("PUT /api/budget-goals", s.withSecurityHeaders(s.handleSetBudgetGoal))
	mux.HandleFunc("GET /api/budget-goals", s.withSecurityHeaders(s.handleListBudgetGoals))
	mux.HandleFunc("POST /api/reminders", s.withSecurityHeaders(s.handleCreateReminder))
	mux.HandleFunc("GET /api/reminders", s.withSecurityHeaders(s.handleListReminders))
	mux.HandleFunc("POST /api/notes", s.withSecurityHeaders(s.handleCreateNote))
	mux.HandleFunc("PUT /api/notes/{id}", s.withSecurityHeaders(s.handleUpdateNote))
	mux.HandleFunc("DELETE /api/notes/{id}", s.withSecurityHeaders(s.handleDeleteNote))
	mux.HandleFunc("GET /api/notes", s.withSecurityHeaders(s.handleListNotes))

	// Derived views and suggestion.
	mux.HandleFunc("GET /api/dashboard", s.withSecurityHeaders(s.handleDashboard))
	mux.HandleFunc("GET /api/categories", s.withSecurityHeaders(s.handleListCategories))
	mux.HandleFunc("POST /api/suggest", s.withSecurityHeaders(s.handleSuggest))

	// Page routes behind the session gate.
	for _, route := range protectedRoutes {
		mux.HandleFunc("GET "+route, s.withSecurityHeaders(s.withSessionGate(s.handlePage(route))))
	}
	for _, route := range publicRoutes {
		mux.HandleFunc("GET "+route, s.withSecurityHeaders(s.withSessionGate(s.handlePage(route))))
	}

	// Operational endpoints stay outside the middleware chain.
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.HandleFunc("GET /metrics", s.handleMetrics)

	return s
}

// Shutdown stops the server and its background cleanup.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

var _ Suggester = (*suggest.Gateway)(nil)
