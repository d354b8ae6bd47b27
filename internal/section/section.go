// Package section canonicalizes section labels so the seating plan and
// the exam schedule agree on a single spelling for each cohort.
package section

import (
	"regexp"
	"strings"
)

// semesterPrefix matches an embedded semester number directly before a
// section letter, e.g. the "5" in "DS-5D"
var semesterPrefix = regexp.MustCompile(`[0-9]+([A-Z])`)

// Normalize canonicalizes a section label. Master's sections (leading
// "M") are already canonical and returned unchanged. Otherwise a
// leading "B" is dropped and any digit run directly before an
// uppercase letter collapses to just that letter, so "B5D" becomes "D"
// and "DS-5D" becomes "DS-D". Normalize is idempotent.
func Normalize(s string) string {
	if strings.HasPrefix(s, "M") {
		return s
	}
	s = strings.TrimPrefix(s, "B")
	return semesterPrefix.ReplaceAllString(s, "$1")
}
