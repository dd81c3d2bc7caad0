// Package parser turns the raw booking sheet into the normalized dataset.
package parser

import (
	"github.com/xuri/excelize/v2"
)

// Grid is a 0-indexed, possibly ragged table of cell text.
type Grid [][]string

// ReadGrid reads every row of a sheet as raw cell values.
// Raw values keep date cells as Excel serial numbers instead of
// whatever number format the author picked.
func ReadGrid(f *excelize.File, sheetName string) (Grid, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	return Grid(rows), nil
}

// Rows returns the number of rows in the grid.
func (g Grid) Rows() int {
	return len(g)
}

// Width returns the length of the longest row.
func (g Grid) Width() int {
	width := 0
	for _, row := range g {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// HasRow reports whether the 0-based row index exists.
func (g Grid) HasRow(row int) bool {
	return row >= 0 && row < len(g)
}

// Cell returns the cell at (row, col), or "" when it lies outside the grid.
func (g Grid) Cell(row, col int) string {
	if !g.HasRow(row) || col < 0 || col >= len(g[row]) {
		return ""
	}
	return g[row][col]
}
