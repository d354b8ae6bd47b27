package models

// ScheduleEntry records that a course section sits an exam during a
// time slot on a given date
type ScheduleEntry struct {
	Date       string `json:"date"`
	TimeSlot   string `json:"time_slot"`
	CourseCode string `json:"course_code"`
	Section    string `json:"section"`
}

// Key returns the join key for this entry
func (e ScheduleEntry) Key() JoinKey {
	return JoinKey{CourseCode: e.CourseCode, Section: e.Section}
}
