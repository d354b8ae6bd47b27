package models

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// TimeSlot is a parsed exam period label such as "9:00 to 11:30 am".
// The start time may omit its own am/pm marker, in which case it is
// inferred from the end time. Minutes are counted from midnight.
type TimeSlot struct {
	Raw          string
	StartMinutes int
	EndMinutes   int
}

// slotPattern matches "<start> to <end> <am|pm>" where the start's
// period marker is optional and minutes may be omitted on either side
var slotPattern = regexp.MustCompile(
	`(?i)^\s*(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\s+to\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)\s*$`)

// ParseTimeSlot parses a time slot label. The second return value is
// false when the label does not have the expected shape.
func ParseTimeSlot(raw string) (TimeSlot, bool) {
	m := slotPattern.FindStringSubmatch(raw)
	if m == nil {
		return TimeSlot{Raw: raw}, false
	}

	startHour, _ := strconv.Atoi(m[1])
	startMin := 0
	if m[2] != "" {
		startMin, _ = strconv.Atoi(m[2])
	}
	startPeriod := strings.ToLower(m[3])

	endHour, _ := strconv.Atoi(m[4])
	endMin := 0
	if m[5] != "" {
		endMin, _ = strconv.Atoi(m[5])
	}
	endPeriod := strings.ToLower(m[6])

	if startPeriod == "" {
		startPeriod = inferStartPeriod(startHour, endHour, endPeriod)
	}

	return TimeSlot{
		Raw:          raw,
		StartMinutes: clockMinutes(startHour, startMin, startPeriod),
		EndMinutes:   clockMinutes(endHour, endMin, endPeriod),
	}, true
}

// inferStartPeriod resolves a missing start am/pm marker from the end
// time. A range ending at 12 with a different start hour crosses the
// noon/midnight boundary, so the start falls in the opposite period.
func inferStartPeriod(startHour, endHour int, endPeriod string) string {
	if endHour == 12 && startHour != 12 {
		if endPeriod == "pm" {
			return "am"
		}
		return "pm"
	}
	return endPeriod
}

// clockMinutes converts a 12-hour clock reading to minutes past midnight
func clockMinutes(hour, min int, period string) int {
	h := hour % 12
	if period == "pm" {
		h += 12
	}
	return h*60 + min
}

// Before reports whether t starts before other, with ties broken by
// the end time
func (t TimeSlot) Before(other TimeSlot) bool {
	if t.StartMinutes != other.StartMinutes {
		return t.StartMinutes < other.StartMinutes
	}
	return t.EndMinutes < other.EndMinutes
}

// SortSlots orders time slot labels chronologically. Labels that do
// not parse as time slots sort after all parsable ones, in lexical
// order.
func SortSlots(raw []string) []string {
	parsed := make([]TimeSlot, 0, len(raw))
	var unparsed []string
	for _, label := range raw {
		if slot, ok := ParseTimeSlot(label); ok {
			parsed = append(parsed, slot)
		} else {
			unparsed = append(unparsed, label)
		}
	}

	sort.SliceStable(parsed, func(i, j int) bool {
		return parsed[i].Before(parsed[j])
	})
	sort.Strings(unparsed)

	ordered := make([]string, 0, len(raw))
	for _, slot := range parsed {
		ordered = append(ordered, slot.Raw)
	}
	return append(ordered, unparsed...)
}
