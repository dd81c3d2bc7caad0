// Package models defines the normalized room availability dataset.
package models

import (
	"encoding/json"
	"time"
)

// DateLayout is the key format used for week dates in JSON and availability maps.
const DateLayout = "2006-01-02"

// Week represents one bookable week column anchored to a Saturday.
type Week struct {
	// Column is the 0-based column index of the week's data column.
	Column int
	// Date is the reference Saturday of the week.
	Date time.Time
	// Display is the short label, e.g. "16 May".
	Display string
	// WeekNum is the ISO-8601 week number of Date.
	WeekNum int
}

// Key returns the date key used in Room.Availability.
func (w Week) Key() string {
	return w.Date.Format(DateLayout)
}

type weekJSON struct {
	Column  int    `json:"col"`
	Date    string `json:"date"`
	Display string `json:"display"`
	WeekNum int    `json:"weekNum"`
}

// MarshalJSON writes Date as a plain YYYY-MM-DD string.
func (w Week) MarshalJSON() ([]byte, error) {
	return json.Marshal(weekJSON{
		Column:  w.Column,
		Date:    w.Key(),
		Display: w.Display,
		WeekNum: w.WeekNum,
	})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (w *Week) UnmarshalJSON(data []byte) error {
	var raw weekJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	date, err := time.Parse(DateLayout, raw.Date)
	if err != nil {
		return err
	}
	*w = Week{Column: raw.Column, Date: date, Display: raw.Display, WeekNum: raw.WeekNum}
	return nil
}
