package web

import (
	"context"

	"github.com/campusops/emptyrooms/internal/availability"
)

// AvailabilityServicer defines the contract for the availability
// service used by the SSE layer
type AvailabilityServicer interface {
	EmptyRooms(ctx context.Context) (availability.Result, availability.Diagnostics, error)
}
