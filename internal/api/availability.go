package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/campusops/emptyrooms/internal/availability"
	"github.com/campusops/emptyrooms/internal/service"
)

// AvailabilityHandler handles HTTP requests for the empty-room listing
type AvailabilityHandler struct {
	service AvailabilityServicer
}

// NewAvailabilityHandler creates a new availability handler backed by
// the given service
func NewAvailabilityHandler(service AvailabilityServicer) *AvailabilityHandler {
	return &AvailabilityHandler{service: service}
}

// availabilityResponse wraps the result with join diagnostics when the
// caller asks for them
type availabilityResponse struct {
	EmptyRooms  availability.Result      `json:"empty_rooms"`
	Diagnostics availability.Diagnostics `json:"diagnostics"`
}

// ServeHTTP handles GET /api/empty-rooms. The response body is a JSON
// object keyed by time slot in chronological order; with
// ?diagnostics=1 the object is wrapped together with the join
// diagnostics.
func (h *AvailabilityHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	result, diag, err := h.service.EmptyRooms(r.Context())
	if errors.Is(err, service.ErrMissingInput) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		log.Printf("Error computing empty rooms: %v", err)
		http.Error(w, "Failed to compute empty rooms", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if r.URL.Query().Get("diagnostics") != "" {
		json.NewEncoder(w).Encode(availabilityResponse{EmptyRooms: result, Diagnostics: diag})
		return
	}
	json.NewEncoder(w).Encode(result)
}
