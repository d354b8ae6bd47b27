// Package repository defines interfaces for storing the record sets
// extracted from uploaded documents between the upload calls and the
// availability computation
package repository

import (
	"context"
	"errors"
	"log"

	"github.com/campusops/emptyrooms/internal/config"
	"github.com/campusops/emptyrooms/internal/models"
)

// ErrNotFound is returned by every backend when a record set has not
// been stored yet. Any other error from a Get is a storage failure,
// not a missing upload.
var ErrNotFound = errors.New("records not found")

// Repository stores the extracted room assignments and schedule
// entries. Each save replaces the previously stored set of that kind.
type Repository interface {
	SaveAssignments(ctx context.Context, assignments []models.RoomAssignment) error
	GetAssignments(ctx context.Context) ([]models.RoomAssignment, error)

	SaveScheduleEntries(ctx context.Context, entries []models.ScheduleEntry) error
	GetScheduleEntries(ctx context.Context) ([]models.ScheduleEntry, error)

	// Clear drops both stored record sets
	Clear(ctx context.Context) error
}

// NewRepository returns the configured repository implementation:
// Redis when enabled and reachable, otherwise in-memory storage
func NewRepository(cfg config.RedisConfig) (Repository, error) {
	if cfg.Enabled && newRedisRepository != nil {
		repo, err := newRedisRepository(cfg)
		if err == nil {
			log.Println("Using Redis repository")
			return repo, nil
		}
		log.Printf("Redis unavailable, falling back to in-memory storage: %v", err)
	}
	return newMemoryRepository(), nil
}
