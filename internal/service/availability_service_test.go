package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusops/emptyrooms/internal/models"
	"github.com/campusops/emptyrooms/internal/repository/memory"
	"github.com/campusops/emptyrooms/internal/service"
)

// failingRepository simulates a backend outage on every operation
type failingRepository struct {
	err error
}

func (f failingRepository) SaveAssignments(ctx context.Context, assignments []models.RoomAssignment) error {
	return f.err
}

func (f failingRepository) GetAssignments(ctx context.Context) ([]models.RoomAssignment, error) {
	return nil, f.err
}

func (f failingRepository) SaveScheduleEntries(ctx context.Context, entries []models.ScheduleEntry) error {
	return f.err
}

func (f failingRepository) GetScheduleEntries(ctx context.Context) ([]models.ScheduleEntry, error) {
	return nil, f.err
}

func (f failingRepository) Clear(ctx context.Context) error {
	return f.err
}

// stubExtractor returns canned text regardless of the document path
type stubExtractor struct {
	text string
	err  error
}

func (s stubExtractor) Extract(ctx context.Context, path string) (string, error) {
	return s.text, s.err
}

// stubGridLoader returns a canned grid regardless of the workbook path
type stubGridLoader struct {
	grid [][]string
	err  error
}

func (s stubGridLoader) LoadGrid(path, sheet string) ([][]string, error) {
	return s.grid, s.err
}

func writeRoomsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "classrooms.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const seatingText = "CS1234 - Intro to CS MDS-3A Room No. B-230 5th Floor"

var scheduleGrid = [][]string{
	{"", "9:00 to 11:00 am"},
	{"Mon, 12 May", "CS1234 Intro to CS MDS-3A"},
}

func newTestService(t *testing.T) *service.AvailabilityService {
	t.Helper()
	rooms := writeRoomsFile(t, "B-230\nA-110\nC-305\n")
	return service.NewAvailabilityService(
		memory.NewRepository(),
		stubExtractor{text: seatingText},
		stubGridLoader{grid: scheduleGrid},
		rooms,
	)
}

func TestProcessSeatingPlan(t *testing.T) {
	svc := newTestService(t)

	count, err := svc.ProcessSeatingPlan(context.Background(), "seating_plan.pdf")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestProcessSeatingPlanExtractionFailure(t *testing.T) {
	svc := service.NewAvailabilityService(
		memory.NewRepository(),
		stubExtractor{err: errors.New("tool exited with status 1")},
		stubGridLoader{},
		writeRoomsFile(t, "A\n"),
	)

	_, err := svc.ProcessSeatingPlan(context.Background(), "broken.pdf")
	assert.Error(t, err)
}

func TestProcessSchedule(t *testing.T) {
	svc := newTestService(t)

	count, err := svc.ProcessSchedule(context.Background(), "exam_schedule.xlsx", "FSC")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestEmptyRooms(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("MissingBothInputs", func(t *testing.T) {
		_, _, err := svc.EmptyRooms(ctx)
		assert.ErrorIs(t, err, service.ErrMissingInput)
	})

	t.Run("MissingSeatingPlan", func(t *testing.T) {
		_, err := svc.ProcessSchedule(ctx, "exam_schedule.xlsx", "FSC")
		require.NoError(t, err)

		_, _, err = svc.EmptyRooms(ctx)
		assert.ErrorIs(t, err, service.ErrMissingInput)
	})

	t.Run("BothPresent", func(t *testing.T) {
		_, err := svc.ProcessSeatingPlan(ctx, "seating_plan.pdf")
		require.NoError(t, err)

		result, diag, err := svc.EmptyRooms(ctx)
		require.NoError(t, err)

		// The schedule's MDS-3A section joins the seating plan's
		// B-230 assignment, leaving the other registry rooms empty
		empty, ok := result.Rooms("9:00 to 11:00 am")
		require.True(t, ok)
		assert.Equal(t, []string{"A-110", "C-305"}, empty)
		assert.Zero(t, diag.UnmatchedScheduleEntries)
	})
}

func TestEmptyRoomsMissingRegistry(t *testing.T) {
	svc := service.NewAvailabilityService(
		memory.NewRepository(),
		stubExtractor{text: seatingText},
		stubGridLoader{grid: scheduleGrid},
		filepath.Join(t.TempDir(), "does-not-exist.txt"),
	)
	ctx := context.Background()

	_, err := svc.ProcessSeatingPlan(ctx, "seating_plan.pdf")
	require.NoError(t, err)
	_, err = svc.ProcessSchedule(ctx, "exam_schedule.xlsx", "FSC")
	require.NoError(t, err)

	_, _, err = svc.EmptyRooms(ctx)
	assert.ErrorIs(t, err, service.ErrMissingInput)
}

func TestBackendFailureIsNotMissingInput(t *testing.T) {
	cause := errors.New("connection refused")
	svc := service.NewAvailabilityService(
		failingRepository{err: cause},
		stubExtractor{text: seatingText},
		stubGridLoader{grid: scheduleGrid},
		writeRoomsFile(t, "A\n"),
	)
	ctx := context.Background()

	t.Run("EmptyRooms", func(t *testing.T) {
		_, _, err := svc.EmptyRooms(ctx)
		require.Error(t, err)
		assert.NotErrorIs(t, err, service.ErrMissingInput)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("Assignments", func(t *testing.T) {
		_, err := svc.Assignments(ctx)
		require.Error(t, err)
		assert.NotErrorIs(t, err, service.ErrMissingInput)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("ScheduleEntries", func(t *testing.T) {
		_, err := svc.ScheduleEntries(ctx)
		require.Error(t, err)
		assert.NotErrorIs(t, err, service.ErrMissingInput)
		assert.ErrorIs(t, err, cause)
	})
}

func TestProcessBoth(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.ProcessBoth(context.Background(), "seating_plan.pdf", "exam_schedule.xlsx", "FSC"))

	result, _, err := svc.EmptyRooms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"9:00 to 11:00 am"}, result.Slots())
}

func TestProcessBothFirstErrorWins(t *testing.T) {
	svc := service.NewAvailabilityService(
		memory.NewRepository(),
		stubExtractor{err: errors.New("boom")},
		stubGridLoader{grid: scheduleGrid},
		writeRoomsFile(t, "A\n"),
	)

	err := svc.ProcessBoth(context.Background(), "a.pdf", "b.xlsx", "FSC")
	assert.Error(t, err)
}

func TestUpdateCallbacks(t *testing.T) {
	svc := newTestService(t)

	var mu sync.Mutex
	var kinds []string
	svc.RegisterUpdateCallback(func(kind string) {
		mu.Lock()
		defer mu.Unlock()
		kinds = append(kinds, kind)
	})

	_, err := svc.ProcessSeatingPlan(context.Background(), "seating_plan.pdf")
	require.NoError(t, err)
	_, err = svc.ProcessSchedule(context.Background(), "exam_schedule.xlsx", "FSC")
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"seating-plan", "schedule"}, kinds)
}
