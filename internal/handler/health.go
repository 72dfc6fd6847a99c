package handler

import (
	"context"
	"net/http"
	"time"
)

// Pinger reports backing-store connectivity
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse is the health/readiness payload
type HealthResponse struct {
	Status string `json:"status"`
}

// HandleHealthz reports process liveness
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz reports readiness by pinging both stores
func HandleReadyz(stores ...Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		for _, store := range stores {
			if err := store.Ping(ctx); err != nil {
				respondJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
				return
			}
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ready"})
	}
}
