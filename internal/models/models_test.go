package models_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusops/emptyrooms/internal/models"
)

func TestAssignmentSet(t *testing.T) {
	set := models.NewAssignmentSet()
	a := models.RoomAssignment{Room: "B-230", CourseCode: "CS1234", Section: "MDS-3A"}

	assert.True(t, set.Add(a))
	assert.False(t, set.Add(a), "second insert of the same triple should be a no-op")
	assert.Equal(t, 1, set.Len())
	assert.True(t, set.Contains(a))

	b := models.RoomAssignment{Room: "B-231", CourseCode: "CS1234", Section: "MDS-3A"}
	assert.True(t, set.Add(b))
	assert.Equal(t, []models.RoomAssignment{a, b}, set.Items(), "items keep insertion order")
}

func TestJoinKey(t *testing.T) {
	entry := models.ScheduleEntry{Date: "Mon", TimeSlot: "9 to 11 am", CourseCode: "CS1234", Section: "CS-A"}
	assignment := models.RoomAssignment{Room: "A-101", CourseCode: "CS1234", Section: "CS-A"}

	assert.Equal(t, entry.Key(), assignment.Key())
	assert.NotEqual(t, entry.Key(), models.RoomAssignment{CourseCode: "CS1234", Section: "CS-B"}.Key())
}

func TestReadRoomList(t *testing.T) {
	t.Run("LockedMarkerStopsParsing", func(t *testing.T) {
		registry := strings.NewReader("A-101\nA-102\n\nB-201\nLocked: under renovation\nC-301\n")
		rooms, err := models.ReadRoomList(registry)
		require.NoError(t, err)
		assert.Equal(t, []string{"A-101", "A-102", "B-201"}, rooms.Rooms())
		assert.False(t, rooms.Contains("C-301"))
	})

	t.Run("BlankLinesDropped", func(t *testing.T) {
		rooms, err := models.ReadRoomList(strings.NewReader("\n\nA-101\n   \nA-102\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"A-101", "A-102"}, rooms.Rooms())
	})

	t.Run("Empty", func(t *testing.T) {
		rooms, err := models.ReadRoomList(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, 0, rooms.Len())
	})
}

func TestRoomListOrderAndMembership(t *testing.T) {
	rooms := models.NewRoomList([]string{"C", "A", "B", "A"})
	assert.Equal(t, []string{"C", "A", "B"}, rooms.Rooms(), "order preserved, duplicates dropped")
	assert.True(t, rooms.Contains("B"))
	assert.False(t, rooms.Contains("D"))
}
