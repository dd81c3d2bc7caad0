package models

// BookedByMaxLen is the maximum number of characters kept from a booked cell.
const BookedByMaxLen = 25

// Slot is the availability of one room in one week.
type Slot struct {
	// Available is true when the source cell is empty.
	Available bool `json:"available"`
	// BookedBy is the cell text, truncated to BookedByMaxLen characters.
	BookedBy string `json:"bookedBy"`
}

// Room represents one allow-listed source row.
type Room struct {
	// Row is the 1-based spreadsheet row number.
	Row int `json:"row"`
	// Name is the cleaned-up display name.
	Name string `json:"name"`
	// Building is the trimmed building cell.
	Building string `json:"building"`
	// RoomNumber is the trimmed room number cell.
	RoomNumber string `json:"roomNumber"`
	// Availability maps a week date key (YYYY-MM-DD) to its slot.
	Availability map[string]Slot `json:"availability"`
}

// IsAvailable reports whether the room is free in the given week.
func (r Room) IsAvailable(w Week) bool {
	return r.Availability[w.Key()].Available
}
