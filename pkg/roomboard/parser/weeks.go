package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/roomboard-go/pkg/roomboard/models"
)

// weekDayMarker is the day name that anchors a week column.
const weekDayMarker = "SATURDAY"

// DiscoverWeeks scans the header rows for Saturday columns.
// Columns whose day cell lacks "SATURDAY" or whose date cell is empty are
// skipped. An unparseable date or a repeated date is an error.
func DiscoverWeeks(g Grid, layout Layout, opts Options) ([]models.Week, error) {
	for _, row := range []int{layout.DateRow, layout.DayRow} {
		if !g.HasRow(row) {
			return nil, &CellError{Row: row + 1, Reason: "header row missing"}
		}
	}

	var weeks []models.Week
	seen := make(map[string]int)
	width := g.Width()
	for col := layout.FirstWeekColumn; col < width; col += layout.WeekColumnStride {
		day := g.Cell(layout.DayRow, col)
		if !strings.Contains(strings.ToUpper(day), weekDayMarker) {
			continue
		}
		raw := g.Cell(layout.DateRow, col)
		if strings.TrimSpace(raw) == "" {
			continue
		}

		date, err := ParseDate(raw, opts.Date1904)
		if err != nil {
			return nil, &CellError{Row: layout.DateRow + 1, Column: col + 1, Reason: "bad week date", Err: err}
		}

		week := models.Week{
			Column:  col,
			Date:    date,
			Display: date.Format(DisplayLayout),
			WeekNum: WeekNumber(date),
		}
		if prev, ok := seen[week.Key()]; ok {
			return nil, &CellError{
				Row:    layout.DateRow + 1,
				Column: col + 1,
				Reason: fmt.Sprintf("week %s already defined in column %d", week.Key(), prev+1),
			}
		}
		seen[week.Key()] = col
		weeks = append(weeks, week)
	}
	return weeks, nil
}
