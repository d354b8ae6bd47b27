// Package schedule extracts exam schedule entries from a spreadsheet
// cell grid. The first grid row carries time-slot headers (column 0 is
// reserved for dates); later rows carry a date in column 0, or a blank
// meaning the most recent date still applies, plus free-form course
// cells.
package schedule

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/campusops/emptyrooms/internal/models"
	"github.com/campusops/emptyrooms/internal/section"
)

var (
	// courseCodePattern matches codes like "CY1101" or "MGMT2010"
	courseCodePattern = regexp.MustCompile(`[A-Z]{2,4}[0-9]{4}`)

	// bachelorPattern captures compound bachelor annotations such as
	// "CY(CY)-ABC,DEF": the parenthesized department and the letter
	// groups naming the sections
	bachelorPattern = regexp.MustCompile(`\b[A-Z]{2,4}\(([A-Z]{2,4})\)\s*[-\s]*\(?([A-Z,]+)\)?`)

	// masterPattern captures master annotations such as "MDS-3A" or
	// "MS(CY)": the department (parentheses included) and an optional
	// trailing section
	masterPattern = regexp.MustCompile(`\b(M[A-Z]{2,4}(?:\([A-Z]{2,4}\))?)(?:-([A-Z0-9]+))?`)

	spaceRun   = regexp.MustCompile(`\s+`)
	tokenSplit = regexp.MustCompile(`[,\s]+`)
	parens     = strings.NewReplacer("(", "", ")", "")
)

// Extract walks the grid and returns one schedule entry per
// (course code, section) pair found in each mapped cell. Cells whose
// course code expands to zero sections are dropped.
func Extract(grid [][]string) []models.ScheduleEntry {
	if len(grid) == 0 {
		return nil
	}

	// Column to time-slot map from the header row
	slots := make(map[int]string)
	for col := 1; col < len(grid[0]); col++ {
		if header := strings.TrimSpace(grid[0][col]); header != "" {
			slots[col] = header
		}
	}

	var entries []models.ScheduleEntry
	var currentDate string

	for _, row := range grid[1:] {
		if len(row) > 0 {
			if date := strings.TrimSpace(row[0]); date != "" {
				currentDate = date
			}
		}
		for col := 1; col < len(row); col++ {
			slot, ok := slots[col]
			if !ok || strings.TrimSpace(row[col]) == "" {
				continue
			}
			code, sections := ParseCell(row[col])
			if code == "" {
				continue
			}
			for _, sec := range sections {
				entries = append(entries, models.ScheduleEntry{
					Date:       currentDate,
					TimeSlot:   slot,
					CourseCode: code,
					Section:    sec,
				})
			}
		}
	}
	return entries
}

// ParseCell extracts the course code and the expanded, deduplicated
// section labels from one course cell. A cell without a course code
// returns an empty code and no sections.
func ParseCell(cell string) (string, []string) {
	cell = spaceRun.ReplaceAllString(strings.ReplaceAll(cell, "\n", " "), " ")

	code := courseCodePattern.FindString(cell)
	if code == "" {
		return "", nil
	}

	sections := append(masterSections(cell), bachelorSections(cell)...)

	seen := make(map[string]struct{}, len(sections))
	deduped := sections[:0]
	for _, sec := range sections {
		if _, dup := seen[sec]; dup {
			continue
		}
		seen[sec] = struct{}{}
		deduped = append(deduped, sec)
	}
	return code, deduped
}

// bachelorSections expands compound bachelor annotations. Each letter
// group explodes into one section per letter, with "R" repeater
// markers dropped, so "CY(CY)-ABC" yields CY-A, CY-B and CY-C.
func bachelorSections(cell string) []string {
	var out []string
	for _, m := range bachelorPattern.FindAllStringSubmatch(cell, -1) {
		dept := m[1]
		for _, token := range tokenSplit.Split(m[2], -1) {
			for _, r := range token {
				if r == 'R' || !unicode.IsLetter(r) {
					continue
				}
				out = append(out, section.Normalize(fmt.Sprintf("%s-%c", dept, r)))
			}
		}
	}
	return out
}

// masterSections expands master annotations. The department keeps its
// letters with any parentheses stripped; an annotation like "MS(CY)"
// that names a department but no section gets the "Default" section.
// A bare run of letters with neither a parenthesized department nor a
// trailing section is not an annotation and is skipped.
func masterSections(cell string) []string {
	var out []string
	for _, m := range masterPattern.FindAllStringSubmatch(cell, -1) {
		sec := strings.TrimSpace(m[2])
		if sec == "" {
			if !strings.Contains(m[1], "(") {
				continue
			}
			sec = "Default"
		}
		out = append(out, section.Normalize(parens.Replace(m[1])+"-"+sec))
	}
	return out
}
