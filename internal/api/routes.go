package api

import (
	"net/http"

	"github.com/campusops/emptyrooms/internal/config"
)

// SetupRoutes configures the HTTP routes for the API
func SetupRoutes(service AvailabilityServicer, cfg config.ServerConfig) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check endpoints for Kubernetes
	mux.HandleFunc("/health/live", HealthLiveHandler)
	mux.HandleFunc("/health/ready", HealthReadyHandler(cfg.RoomsFile))

	// Document upload endpoints
	uploadHandler := NewUploadHandler(service, cfg.DataDir, cfg.ScheduleSheet)
	mux.HandleFunc("/api/seating-plan", uploadHandler.HandleSeatingPlan)
	mux.HandleFunc("/api/schedule", uploadHandler.HandleSchedule)

	// Availability endpoint
	mux.Handle("/api/empty-rooms", NewAvailabilityHandler(service))

	// CSV exports of the stored record sets
	exportHandler := NewExportHandler(service)
	mux.HandleFunc("/api/export/assignments.csv", exportHandler.HandleAssignments)
	mux.HandleFunc("/api/export/schedule.csv", exportHandler.HandleSchedule)

	return mux
}
