package models

import (
	"encoding/json"
	"time"
)

// TimestampLayout is the layout of Dataset.GeneratedAt in JSON.
const TimestampLayout = "2006-01-02 15:04"

// Timestamp is a time serialized with minute precision.
type Timestamp time.Time

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).Format(TimestampLayout))
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.ParseInLocation(TimestampLayout, s, time.Local)
	if err != nil {
		return err
	}
	*t = Timestamp(parsed)
	return nil
}

// String returns the timestamp in TimestampLayout.
func (t Timestamp) String() string {
	return time.Time(t).Format(TimestampLayout)
}

// Dataset is the full normalized payload embedded into the report.
type Dataset struct {
	// GeneratedAt is the extraction time.
	GeneratedAt Timestamp `json:"generated"`
	// Weeks lists the discovered week columns in column order.
	Weeks []Week `json:"saturdays"`
	// Rooms lists one record per allow-listed row, in allow-list order.
	Rooms []Room `json:"rooms"`
}
