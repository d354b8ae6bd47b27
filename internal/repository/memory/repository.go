// Package memory provides an in-memory implementation of the repository interface
package memory

import (
	"context"
	"sync"

	"github.com/campusops/emptyrooms/internal/models"
	"github.com/campusops/emptyrooms/internal/repository"
)

// ErrNotFound is the shared repository sentinel for a record set that
// has not been stored yet
var ErrNotFound = repository.ErrNotFound

func init() {
	repository.RegisterMemory(func() repository.Repository {
		return NewRepository()
	})
}

// Repository implements the repository interface with in-memory storage
type Repository struct {
	mu sync.RWMutex

	assignments    []models.RoomAssignment
	hasAssignments bool

	entries    []models.ScheduleEntry
	hasEntries bool
}

// NewRepository creates a new in-memory repository
func NewRepository() *Repository {
	return &Repository{}
}

// SaveAssignments replaces the stored room assignments
func (r *Repository) SaveAssignments(ctx context.Context, assignments []models.RoomAssignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.assignments = make([]models.RoomAssignment, len(assignments))
	copy(r.assignments, assignments)
	r.hasAssignments = true
	return nil
}

// GetAssignments returns the stored room assignments
func (r *Repository) GetAssignments(ctx context.Context) ([]models.RoomAssignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.hasAssignments {
		return nil, ErrNotFound
	}
	assignments := make([]models.RoomAssignment, len(r.assignments))
	copy(assignments, r.assignments)
	return assignments, nil
}

// SaveScheduleEntries replaces the stored schedule entries
func (r *Repository) SaveScheduleEntries(ctx context.Context, entries []models.ScheduleEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make([]models.ScheduleEntry, len(entries))
	copy(r.entries, entries)
	r.hasEntries = true
	return nil
}

// GetScheduleEntries returns the stored schedule entries
func (r *Repository) GetScheduleEntries(ctx context.Context) ([]models.ScheduleEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.hasEntries {
		return nil, ErrNotFound
	}
	entries := make([]models.ScheduleEntry, len(r.entries))
	copy(entries, r.entries)
	return entries, nil
}

// Clear drops both stored record sets
func (r *Repository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.assignments = nil
	r.hasAssignments = false
	r.entries = nil
	r.hasEntries = false
	return nil
}
