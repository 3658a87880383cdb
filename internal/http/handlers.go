package http

import (
	"fmt"
	"net/http"
	"time"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(s.metrics.startedAt).String(),
	})
}

// handleReady reports not ready until the store has hydrated from the
// durable backend.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	status := "ready"
	httpStatus := http.StatusOK
	checks := map[string]any{
		"store": "ok",
		"rate_limiter": map[string]any{
			"active_clients": s.rateLimiter.activeClients(),
			"status":         "ok",
		},
	}

	if !s.store.Ready() {
		checks["store"] = "failed: collections not loaded"
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
		"checks":    checks,
	})
}

// handleMetrics reports application counters in plain text.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	fmt.Fprintf(w, "uptime_seconds %d\n", int64(time.Since(s.metrics.startedAt).Seconds()))
	fmt.Fprintf(w, "transactions_created_total %d\n", s.metrics.transactionsCreated.Load())
	fmt.Fprintf(w, "transactions_deleted_total %d\n", s.metrics.transactionsDeleted.Load())
	fmt.Fprintf(w, "suggest_requests_total %d\n", s.metrics.suggestRequests.Load())
	fmt.Fprintf(w, "suggest_hits_total %d\n", s.metrics.suggestHits.Load())
	fmt.Fprintf(w, "rate_limiter_active_clients %d\n", s.rateLimiter.activeClients())
	fmt.Fprintf(w, "store_ready %d\n", boolToInt(s.store.Ready()))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
