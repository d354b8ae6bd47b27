package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/campusops/emptyrooms/internal/interchange"
	"github.com/campusops/emptyrooms/internal/service"
)

// ExportHandler serves the stored record sets as downloadable CSV
// tables
type ExportHandler struct {
	service AvailabilityServicer
}

// NewExportHandler creates a handler exporting records from the given
// service
func NewExportHandler(service AvailabilityServicer) *ExportHandler {
	return &ExportHandler{service: service}
}

// HandleAssignments handles GET /api/export/assignments.csv
func (h *ExportHandler) HandleAssignments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	assignments, err := h.service.Assignments(r.Context())
	if err != nil {
		writeExportError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="assignments.csv"`)
	if err := interchange.WriteAssignments(w, assignments); err != nil {
		log.Printf("Error writing assignments export: %v", err)
	}
}

// HandleSchedule handles GET /api/export/schedule.csv
func (h *ExportHandler) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	entries, err := h.service.ScheduleEntries(r.Context())
	if err != nil {
		writeExportError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="schedule.csv"`)
	if err := interchange.WriteScheduleEntries(w, entries); err != nil {
		log.Printf("Error writing schedule export: %v", err)
	}
}

// writeExportError maps a missing record set to 409 and everything
// else to 500
func writeExportError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrMissingInput) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	http.Error(w, "Failed to read stored records", http.StatusInternalServerError)
}
