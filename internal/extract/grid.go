package extract

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// GridLoader materializes a spreadsheet sheet as a two-dimensional
// cell grid, stripped of blank rows and leading title rows so row 0 is
// the time-slot header row
type GridLoader interface {
	LoadGrid(path, sheet string) ([][]string, error)
}

// ExcelGridLoader reads xlsx workbooks. SkipRows counts the title rows
// above the time-slot header that are discarded after blank rows are
// removed; exported exam timetables carry two.
type ExcelGridLoader struct {
	SkipRows int
}

// LoadGrid opens the workbook and returns the named sheet as a grid
func (l ExcelGridLoader) LoadGrid(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q of %s: %w", sheet, path, err)
	}
	return TrimGrid(rows, l.SkipRows), nil
}

// TrimGrid removes fully blank rows from the grid, then drops skip
// leading title rows
func TrimGrid(rows [][]string, skip int) [][]string {
	kept := make([][]string, 0, len(rows))
	for _, row := range rows {
		if blankRow(row) {
			continue
		}
		kept = append(kept, row)
	}
	if skip >= len(kept) {
		return nil
	}
	return kept[skip:]
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
