package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// DisplayLayout renders a week date as day and abbreviated month.
const DisplayLayout = "02 Jan"

// dateLayouts are the textual date forms accepted besides Excel serials.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"01-02-06",
	"1/2/2006",
	"1/2/06",
	"02 Jan 2006",
	"2 January 2006",
}

// ParseDate parses a header date cell. Numeric cells are Excel serial
// dates in the workbook's date system (1904 when date1904 is set, else
// 1900); text cells must match one of dateLayouts.
// The result is midnight UTC of the calendar day.
func ParseDate(s string, date1904 bool) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, date1904)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid Excel date %q: %w", s, err)
		}
		return dateOnly(t), nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dateOnly(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeekNumber returns the ISO-8601 week number of t.
func WeekNumber(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}
