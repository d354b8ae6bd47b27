package models

// RoomAssignment records that a course section sits its exam in a room
type RoomAssignment struct {
	Room       string `json:"room"`
	CourseCode string `json:"course_code"`
	Section    string `json:"section"`
}

// Key returns the join key for this assignment
func (a RoomAssignment) Key() JoinKey {
	return JoinKey{CourseCode: a.CourseCode, Section: a.Section}
}

// JoinKey identifies the (course code, section) pair that schedule
// entries and room assignments are joined on
type JoinKey struct {
	CourseCode string
	Section    string
}

// AssignmentSet is a deduplicated collection of room assignments that
// remembers insertion order
type AssignmentSet struct {
	index map[RoomAssignment]struct{}
	items []RoomAssignment
}

// NewAssignmentSet creates an empty assignment set
func NewAssignmentSet() *AssignmentSet {
	return &AssignmentSet{
		index: make(map[RoomAssignment]struct{}),
	}
}

// Add inserts an assignment into the set
// Returns false if the assignment was already present
func (s *AssignmentSet) Add(a RoomAssignment) bool {
	if _, exists := s.index[a]; exists {
		return false
	}
	s.index[a] = struct{}{}
	s.items = append(s.items, a)
	return true
}

// Contains reports whether the set holds the given assignment
func (s *AssignmentSet) Contains(a RoomAssignment) bool {
	_, ok := s.index[a]
	return ok
}

// Items returns the assignments in insertion order
func (s *AssignmentSet) Items() []RoomAssignment {
	items := make([]RoomAssignment, len(s.items))
	copy(items, s.items)
	return items
}

// Len returns the number of distinct assignments in the set
func (s *AssignmentSet) Len() int {
	return len(s.items)
}
