// Package service coordinates document extraction, record storage and
// the empty-room computation.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/campusops/emptyrooms/internal/availability"
	"github.com/campusops/emptyrooms/internal/extract"
	"github.com/campusops/emptyrooms/internal/models"
	"github.com/campusops/emptyrooms/internal/repository"
	"github.com/campusops/emptyrooms/internal/schedule"
	"github.com/campusops/emptyrooms/internal/seating"
)

// ErrMissingInput is returned when a required input (a record set or
// the room registry) is unavailable
var ErrMissingInput = errors.New("missing input")

// UpdateCallback is invoked after an upload changes the stored records.
// The kind names the record set that changed.
type UpdateCallback func(kind string)

// AvailabilityService provides the business logic for turning uploaded
// documents into per-slot empty-room listings
type AvailabilityService struct {
	repo      repository.Repository
	extractor extract.TextExtractor
	grids     extract.GridLoader
	roomsFile string
	callbacks []UpdateCallback
}

// NewAvailabilityService creates a service over the given repository
// and document collaborators. roomsFile points at the canonical room
// registry.
func NewAvailabilityService(repo repository.Repository, extractor extract.TextExtractor, grids extract.GridLoader, roomsFile string) *AvailabilityService {
	return &AvailabilityService{
		repo:      repo,
		extractor: extractor,
		grids:     grids,
		roomsFile: roomsFile,
	}
}

// RegisterUpdateCallback registers a callback function to be called
// when the stored records change
func (s *AvailabilityService) RegisterUpdateCallback(callback UpdateCallback) {
	s.callbacks = append(s.callbacks, callback)
}

// notifyUpdate calls all registered callbacks
func (s *AvailabilityService) notifyUpdate(kind string) {
	for _, callback := range s.callbacks {
		callback(kind)
	}
}

// ProcessSeatingPlan extracts the seating-plan document at path,
// parses its room assignments and stores them. Returns the number of
// distinct assignments found.
func (s *AvailabilityService) ProcessSeatingPlan(ctx context.Context, path string) (int, error) {
	text, err := s.extractor.Extract(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("process seating plan: %w", err)
	}

	set := seating.Extract(text)
	if err := s.repo.SaveAssignments(ctx, set.Items()); err != nil {
		return 0, fmt.Errorf("store room assignments: %w", err)
	}

	log.Printf("Seating plan processed: %d room assignments", set.Len())
	s.notifyUpdate("seating-plan")
	return set.Len(), nil
}

// ProcessSchedule loads the schedule workbook at path, parses the
// named sheet and stores the resulting entries. Returns the number of
// entries found.
func (s *AvailabilityService) ProcessSchedule(ctx context.Context, path, sheet string) (int, error) {
	grid, err := s.grids.LoadGrid(path, sheet)
	if err != nil {
		return 0, fmt.Errorf("process schedule: %w", err)
	}

	entries := schedule.Extract(grid)
	if err := s.repo.SaveScheduleEntries(ctx, entries); err != nil {
		return 0, fmt.Errorf("store schedule entries: %w", err)
	}

	log.Printf("Exam schedule processed: %d entries", len(entries))
	s.notifyUpdate("schedule")
	return len(entries), nil
}

// ProcessBoth runs the two extractions concurrently. The inputs and
// stored record sets are disjoint, so no coordination is needed beyond
// waiting for both; the first error wins but both are awaited.
func (s *AvailabilityService) ProcessBoth(ctx context.Context, seatingPath, schedulePath, sheet string) error {
	errc := make(chan error, 2)

	go func() {
		_, err := s.ProcessSeatingPlan(ctx, seatingPath)
		errc <- err
	}()
	go func() {
		_, err := s.ProcessSchedule(ctx, schedulePath, sheet)
		errc <- err
	}()

	var first error
	for i := 0; i < 2; i++ {
		if err := <-errc; err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Assignments returns the stored room assignments. A seating plan that
// has not been uploaded yet is a missing-input error; a storage
// failure is not.
func (s *AvailabilityService) Assignments(ctx context.Context) ([]models.RoomAssignment, error) {
	assignments, err := s.repo.GetAssignments(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: seating plan not uploaded", ErrMissingInput)
	}
	if err != nil {
		return nil, fmt.Errorf("read room assignments: %w", err)
	}
	return assignments, nil
}

// ScheduleEntries returns the stored exam-schedule entries. A schedule
// that has not been uploaded yet is a missing-input error; a storage
// failure is not.
func (s *AvailabilityService) ScheduleEntries(ctx context.Context) ([]models.ScheduleEntry, error) {
	entries, err := s.repo.GetScheduleEntries(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: exam schedule not uploaded", ErrMissingInput)
	}
	if err != nil {
		return nil, fmt.Errorf("read schedule entries: %w", err)
	}
	return entries, nil
}

// EmptyRooms joins the stored record sets against the room registry
// and returns the per-slot empty rooms with join diagnostics. A record
// set that has not been uploaded yet, or an unreadable registry, is a
// missing-input error; a storage failure passes through unchanged.
func (s *AvailabilityService) EmptyRooms(ctx context.Context) (availability.Result, availability.Diagnostics, error) {
	entries, err := s.ScheduleEntries(ctx)
	if err != nil {
		return nil, availability.Diagnostics{}, err
	}

	assignments, err := s.Assignments(ctx)
	if err != nil {
		return nil, availability.Diagnostics{}, err
	}

	rooms, err := models.LoadRoomList(s.roomsFile)
	if err != nil {
		return nil, availability.Diagnostics{}, fmt.Errorf("%w: room registry: %v", ErrMissingInput, err)
	}

	result, diag := availability.Compute(entries, assignments, rooms)
	if diag.UnmatchedScheduleEntries > 0 || diag.UnmatchedAssignments > 0 {
		log.Printf("Join dropped %d schedule entries and %d assignments with no counterpart",
			diag.UnmatchedScheduleEntries, diag.UnmatchedAssignments)
	}
	return result, diag, nil
}
