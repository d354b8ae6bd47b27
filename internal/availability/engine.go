// Package availability joins schedule entries against room assignments
// and reports, per time slot, which registry rooms are unoccupied.
package availability

import (
	"github.com/campusops/emptyrooms/internal/models"
)

// Diagnostics counts records whose join key had no counterpart on the
// other side. Such records are dropped from the joined view; the
// counts make silent data-entry mismatches visible.
type Diagnostics struct {
	UnmatchedScheduleEntries int `json:"unmatched_schedule_entries"`
	UnmatchedAssignments     int `json:"unmatched_assignments"`
}

// Compute joins the schedule entries and room assignments on
// (course code, section) and, for every time slot present in the
// schedule, lists the registry rooms with no joined occupancy during
// that slot. Rooms keep the registry order; slots are ordered
// chronologically. A slot with no occupancy at all still appears, with
// every registry room empty.
func Compute(entries []models.ScheduleEntry, assignments []models.RoomAssignment, rooms *models.RoomList) (Result, Diagnostics) {
	roomsByKey := make(map[models.JoinKey][]string)
	for _, a := range assignments {
		roomsByKey[a.Key()] = append(roomsByKey[a.Key()], a.Room)
	}

	var diag Diagnostics
	occupied := make(map[string]map[string]struct{})
	slotSet := make(map[string]struct{})
	matchedKeys := make(map[models.JoinKey]struct{})

	for _, e := range entries {
		slotSet[e.TimeSlot] = struct{}{}
		assigned, ok := roomsByKey[e.Key()]
		if !ok {
			diag.UnmatchedScheduleEntries++
			continue
		}
		matchedKeys[e.Key()] = struct{}{}
		busy := occupied[e.TimeSlot]
		if busy == nil {
			busy = make(map[string]struct{})
			occupied[e.TimeSlot] = busy
		}
		for _, room := range assigned {
			busy[room] = struct{}{}
		}
	}

	for _, a := range assignments {
		if _, ok := matchedKeys[a.Key()]; !ok {
			diag.UnmatchedAssignments++
		}
	}

	slots := make([]string, 0, len(slotSet))
	for slot := range slotSet {
		slots = append(slots, slot)
	}

	result := make(Result, 0, len(slots))
	for _, slot := range models.SortSlots(slots) {
		busy := occupied[slot]
		empty := make([]string, 0, rooms.Len())
		for _, room := range rooms.Rooms() {
			if _, taken := busy[room]; !taken {
				empty = append(empty, room)
			}
		}
		result = append(result, SlotRooms{TimeSlot: slot, Rooms: empty})
	}
	return result, diag
}
