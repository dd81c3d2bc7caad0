package parser

import "fmt"

// Layout pins down where things live in the booking sheet.
// Row and column indexes are 0-based except AllowedRows, which uses
// spreadsheet row numbers (1-based) as they appear in Excel.
type Layout struct {
	// DateRow holds each week's date.
	DateRow int `toml:"date_row"`
	// DayRow holds each week's day name ("SATURDAY").
	DayRow int `toml:"day_row"`
	// FirstWeekColumn is the first candidate week column.
	FirstWeekColumn int `toml:"first_week_column"`
	// WeekColumnStride is the distance between candidate week columns.
	WeekColumnStride int `toml:"week_column_stride"`
	// BuildingColumn holds the building label of a room row.
	BuildingColumn int `toml:"building_column"`
	// RoomNumberColumn holds the room number of a room row.
	RoomNumberColumn int `toml:"room_number_column"`
	// AllowedRows lists the room rows to report, in output order.
	AllowedRows []int `toml:"allowed_rows"`
}

// Options carries workbook-level settings that affect how cells are read.
type Options struct {
	// Date1904 selects the 1904 date system for serial date cells.
	Date1904 bool
}

// Validate checks that the layout can be scanned.
func (l Layout) Validate() error {
	if l.DateRow < 0 || l.DayRow < 0 {
		return fmt.Errorf("header rows must not be negative")
	}
	if l.FirstWeekColumn < 0 || l.BuildingColumn < 0 || l.RoomNumberColumn < 0 {
		return fmt.Errorf("columns must not be negative")
	}
	if l.WeekColumnStride <= 0 {
		return fmt.Errorf("week_column_stride must be positive, got %d", l.WeekColumnStride)
	}
	if len(l.AllowedRows) == 0 {
		return fmt.Errorf("allowed_rows is empty")
	}
	for _, row := range l.AllowedRows {
		if row < 1 {
			return fmt.Errorf("allowed row %d is not a spreadsheet row number", row)
		}
	}
	return nil
}
