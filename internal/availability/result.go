package availability

import (
	"bytes"
	"encoding/json"
)

// SlotRooms lists the rooms free during one time slot
type SlotRooms struct {
	TimeSlot string
	Rooms    []string
}

// Result maps time slots to their free rooms, in chronological slot
// order
type Result []SlotRooms

// Slots returns the slot labels in result order
func (r Result) Slots() []string {
	slots := make([]string, len(r))
	for i, s := range r {
		slots[i] = s.TimeSlot
	}
	return slots
}

// Rooms returns the free rooms for the given slot
func (r Result) Rooms(slot string) ([]string, bool) {
	for _, s := range r {
		if s.TimeSlot == slot {
			return s.Rooms, true
		}
	}
	return nil, false
}

// MarshalJSON renders the result as a JSON object whose keys keep the
// chronological slot order
func (r Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(s.TimeSlot)
		if err != nil {
			return nil, err
		}
		rooms := s.Rooms
		if rooms == nil {
			rooms = []string{}
		}
		value, err := json.Marshal(rooms)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
