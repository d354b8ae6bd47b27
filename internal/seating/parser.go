// Package seating extracts room assignments from seating-plan text.
package seating

import (
	"regexp"

	"github.com/campusops/emptyrooms/internal/models"
	"github.com/campusops/emptyrooms/internal/section"
)

// Structural rules of one seating-plan entry, kept as separate
// fragments so each can be exercised on its own. Keyword matching is
// case-insensitive; the letter casing of course codes and sections is
// exact.
const (
	courseCodeExpr = `[A-Z]{2}[0-9]{4}`
	courseNameExpr = `[\w\s]+`
	sectionExpr    = `[A-Z]{3}-[0-9]+[A-Z]?`
	roomExpr       = `(?i:Room\s+No\.)\s*([\w\-]+)`
	labExpr        = `((?:[A-Za-z]+\s+)+(?i:Lab)-[IVX]+)`
	floorExpr      = `[0-9]+(?i:st|nd|rd|th)\s+(?i:Floor)`
)

// Anchored matchers for the individual rules, used by tests and by
// anyone validating tokens outside a full entry
var (
	CourseCodeRule = regexp.MustCompile(`^(?:` + courseCodeExpr + `)$`)
	SectionRule    = regexp.MustCompile(`^(?:` + sectionExpr + `)$`)
	FloorRule      = regexp.MustCompile(`^(?:` + floorExpr + `)$`)
)

// entryPattern describes one full seating-plan entry:
// "<code> - <name> <section> <room-or-lab> <floor>". The floor suffix
// is mandatory; an entry without it is not extracted.
var entryPattern = regexp.MustCompile(
	`(` + courseCodeExpr + `)` +
		`\s*-\s*` + courseNameExpr +
		`\s+(` + sectionExpr + `)` +
		`\s+(?:` + roomExpr + `|` + labExpr + `)` +
		`\s+` + floorExpr)

// Extract scans whitespace-normalized seating-plan text and returns
// the deduplicated set of room assignments found in it. Zero matches
// yield an empty set, not an error.
func Extract(text string) *models.AssignmentSet {
	set := models.NewAssignmentSet()
	for _, m := range entryPattern.FindAllStringSubmatch(text, -1) {
		room := m[3]
		if room == "" {
			room = m[4]
		}
		if room == "" {
			continue
		}
		set.Add(models.RoomAssignment{
			Room:       room,
			CourseCode: m[1],
			Section:    section.Normalize(m[2]),
		})
	}
	return set
}
