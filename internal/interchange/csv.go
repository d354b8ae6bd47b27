// Package interchange reads and writes the tabular CSV formats shared
// with external tools: the room-assignment table scraped from seating
// plans and the schedule-entry table scraped from exam timetables.
package interchange

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/campusops/emptyrooms/internal/models"
)

// ErrSchemaMismatch is returned when a table is missing an expected
// column. It is surfaced before any join is attempted.
var ErrSchemaMismatch = errors.New("unexpected table header")

var (
	assignmentHeader = []string{"Room", "Course Code", "Section"}
	scheduleHeader   = []string{"Date", "Time Slot", "Course Code", "Section"}
)

// WriteAssignments writes the assignment table, header row included
func WriteAssignments(w io.Writer, assignments []models.RoomAssignment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(assignmentHeader); err != nil {
		return fmt.Errorf("write assignment header: %w", err)
	}
	for _, a := range assignments {
		if err := cw.Write([]string{a.Room, a.CourseCode, a.Section}); err != nil {
			return fmt.Errorf("write assignment row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadAssignments reads an assignment table and validates its header
func ReadAssignments(r io.Reader) ([]models.RoomAssignment, error) {
	rows, err := readTable(r, assignmentHeader)
	if err != nil {
		return nil, err
	}
	assignments := make([]models.RoomAssignment, 0, len(rows))
	for _, row := range rows {
		assignments = append(assignments, models.RoomAssignment{
			Room:       row[0],
			CourseCode: row[1],
			Section:    row[2],
		})
	}
	return assignments, nil
}

// WriteScheduleEntries writes the schedule table, header row included
func WriteScheduleEntries(w io.Writer, entries []models.ScheduleEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(scheduleHeader); err != nil {
		return fmt.Errorf("write schedule header: %w", err)
	}
	for _, e := range entries {
		if err := cw.Write([]string{e.Date, e.TimeSlot, e.CourseCode, e.Section}); err != nil {
			return fmt.Errorf("write schedule row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadScheduleEntries reads a schedule table and validates its header
func ReadScheduleEntries(r io.Reader) ([]models.ScheduleEntry, error) {
	rows, err := readTable(r, scheduleHeader)
	if err != nil {
		return nil, err
	}
	entries := make([]models.ScheduleEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.ScheduleEntry{
			Date:       row[0],
			TimeSlot:   row[1],
			CourseCode: row[2],
			Section:    row[3],
		})
	}
	return entries, nil
}

// readTable reads all records and checks the header against the
// expected column names
func readTable(r io.Reader, header []string) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)

	got, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty table, want columns %s",
			ErrSchemaMismatch, strings.Join(header, ", "))
	}
	if err != nil {
		return nil, fmt.Errorf("read table header: %w", err)
	}
	for i, want := range header {
		if strings.TrimSpace(got[i]) != want {
			return nil, fmt.Errorf("%w: column %d is %q, want %q",
				ErrSchemaMismatch, i, got[i], want)
		}
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read table rows: %w", err)
	}
	return rows, nil
}
