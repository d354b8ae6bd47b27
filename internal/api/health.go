// Package api provides the HTTP handlers for the empty-rooms API
package api

import (
	"encoding/json"
	"net/http"
	"os"
)

// HealthResponse represents the response for health check endpoints
type HealthResponse struct {
	Status string `json:"status"`
}

// HealthLiveHandler handles Kubernetes liveness probe requests
func HealthLiveHandler(w http.ResponseWriter, r *http.Request) {
	writeHealth(w, http.StatusOK, "UP")
}

// HealthReadyHandler returns a Kubernetes readiness probe handler.
// Availability queries need the room registry, so readiness reports
// DOWN while the registry file is unreadable.
func HealthReadyHandler(roomsFile string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := os.Open(roomsFile)
		if err != nil {
			writeHealth(w, http.StatusServiceUnavailable, "DOWN")
			return
		}
		f.Close()

		writeHealth(w, http.StatusOK, "UP")
	}
}

func writeHealth(w http.ResponseWriter, status int, state string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(HealthResponse{Status: state})
}
