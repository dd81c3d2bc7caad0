package roomboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/ukaji3/roomboard-go/pkg/roomboard/parser"
	"github.com/xuri/excelize/v2"
)

const testSheet = "Bookings"

func testLayout() parser.Layout {
	return parser.Layout{
		DateRow:          0,
		DayRow:           1,
		FirstWeekColumn:  3,
		WeekColumnStride: 2,
		BuildingColumn:   0,
		RoomNumberColumn: 1,
		AllowedRows:      []int{6, 4},
	}
}

// buildWorkbook returns an xlsx with two Saturday weeks, one Sunday
// column and rooms on rows 4 and 6.
func buildWorkbook(t *testing.T) []byte {
	t.Helper()
	return buildWorkbookWithDateSystem(t, false)
}

// buildWorkbookWithDateSystem is buildWorkbook with the date cells stored
// in the 1904 date system when date1904 is set.
func buildWorkbookWithDateSystem(t *testing.T, date1904 bool) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", testSheet))
	if date1904 {
		require.NoError(t, f.SetWorkbookProps(&excelize.WorkbookPropsOptions{Date1904: &date1904}))
	}

	set := func(cell string, value interface{}) {
		require.NoError(t, f.SetCellValue(testSheet, cell, value))
	}
	set("D1", time.Date(2026, 5, 16, 0, 0, 0, 0, time.UTC))
	set("D2", "SATURDAY")
	set("F1", time.Date(2026, 5, 23, 0, 0, 0, 0, time.UTC))
	set("F2", "saturday ")
	set("H1", time.Date(2026, 5, 24, 0, 0, 0, 0, time.UTC))
	set("H2", "SUNDAY")

	set("A4", "EU OR UK   ROOM")
	set("B4", 12)
	set("D4", "Booked by the Lindqvist family reunion")
	set("H4", "ignored")

	set("A6", "VILLA")
	set("B6", "3")
	set("F6", "Holm")

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}
