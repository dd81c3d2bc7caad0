package parser

import (
	"fmt"
	"strings"
)

// CellError locates a problem in the grid.
type CellError struct {
	// Row is the 1-based spreadsheet row, or 0 when not tied to a row.
	Row int
	// Column is the 1-based column, or 0 when not tied to a column.
	Column int
	Reason string
	Err    error
}

func (e *CellError) Error() string {
	var b strings.Builder
	if e.Row > 0 {
		fmt.Fprintf(&b, "row %d", e.Row)
	}
	if e.Column > 0 {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "column %d", e.Column)
	}
	if b.Len() > 0 {
		b.WriteString(": ")
	}
	b.WriteString(e.Reason)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *CellError) Unwrap() error {
	return e.Err
}
