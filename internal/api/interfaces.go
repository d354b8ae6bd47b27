package api

import (
	"context"

	"github.com/campusops/emptyrooms/internal/availability"
	"github.com/campusops/emptyrooms/internal/models"
)

// AvailabilityServicer defines the service operations the API handlers
// depend on
type AvailabilityServicer interface {
	ProcessSeatingPlan(ctx context.Context, path string) (int, error)
	ProcessSchedule(ctx context.Context, path, sheet string) (int, error)
	EmptyRooms(ctx context.Context) (availability.Result, availability.Diagnostics, error)
	Assignments(ctx context.Context) ([]models.RoomAssignment, error)
	ScheduleEntries(ctx context.Context) ([]models.ScheduleEntry, error)
}
