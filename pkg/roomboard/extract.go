package roomboard

import (
	"fmt"
	"time"

	"github.com/ukaji3/roomboard-go/pkg/roomboard/models"
	"github.com/ukaji3/roomboard-go/pkg/roomboard/parser"
	"github.com/xuri/excelize/v2"
)

// Extract reads the booking workbook at path and returns the normalized dataset.
// Layout problems are reported as *MalformedSourceError.
func Extract(path string, sheetName string, layout parser.Layout) (*models.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewMalformedSourceError(sheetName, fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	defer f.Close()

	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, NewMalformedSourceError("", fmt.Errorf("%w: workbook has no sheets", ErrInvalidFormat))
		}
		sheetName = sheets[0]
	}

	grid, err := parser.ReadGrid(f, sheetName)
	if err != nil {
		return nil, NewMalformedSourceError(sheetName, err)
	}

	props, err := f.GetWorkbookProps()
	if err != nil {
		return nil, NewMalformedSourceError(sheetName, fmt.Errorf("reading workbook properties: %w", err))
	}
	opts := parser.Options{Date1904: props.Date1904 != nil && *props.Date1904}

	ds, err := parser.Parse(grid, layout, opts)
	if err != nil {
		return nil, NewMalformedSourceError(sheetName, err)
	}
	ds.GeneratedAt = models.Timestamp(time.Now())
	return ds, nil
}
