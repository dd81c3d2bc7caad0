package output

import (
	"github.com/montanaflynn/stats"
	"github.com/ukaji3/roomboard-go/pkg/roomboard/models"
)

// AllBuildings is the filter value that shows every room.
const AllBuildings = "all"

// Summary holds the headline numbers of the report. It is always computed
// over the whole dataset, never over a filtered view.
type Summary struct {
	Rooms          int
	Weeks          int
	AvailableSlots int
	// Percent is round(AvailableSlots / (Rooms*Weeks) * 100), 0 for an empty grid.
	Percent int
}

// Summarize computes the headline numbers.
func Summarize(ds *models.Dataset) Summary {
	s := Summary{
		Rooms: len(ds.Rooms),
		Weeks: len(ds.Weeks),
	}
	total := s.Rooms * s.Weeks
	if total == 0 {
		return s
	}

	for _, room := range ds.Rooms {
		for _, week := range ds.Weeks {
			if room.IsAvailable(week) {
				s.AvailableSlots++
			}
		}
	}
	percent, _ := stats.Round(float64(s.AvailableSlots)/float64(total)*100, 0)
	s.Percent = int(percent)
	return s
}

// Buildings returns the distinct building values in first-seen order.
func Buildings(ds *models.Dataset) []string {
	seen := make(map[string]bool)
	var out []string
	for _, room := range ds.Rooms {
		if seen[room.Building] {
			continue
		}
		seen[room.Building] = true
		out = append(out, room.Building)
	}
	return out
}

func matchesBuilding(room models.Room, building string) bool {
	return building == AllBuildings || room.Building == building
}

// FilterRooms returns the rooms shown for a building filter.
func FilterRooms(ds *models.Dataset, building string) []models.Room {
	var out []models.Room
	for _, room := range ds.Rooms {
		if matchesBuilding(room, building) {
			out = append(out, room)
		}
	}
	return out
}

// WeekEntry is one section of the per-week view.
type WeekEntry struct {
	Week models.Week
	// Available counts every free room this week, whatever the filter.
	Available int
	// Rooms are the displayed rooms that are free this week.
	Rooms []models.Room
}

// RoomsPerWeek lists, for every week, the free rooms passing the filter.
// Every week gets a section even when nothing in it is free.
func RoomsPerWeek(ds *models.Dataset, building string) []WeekEntry {
	entries := make([]WeekEntry, 0, len(ds.Weeks))
	for _, week := range ds.Weeks {
		entry := WeekEntry{Week: week}
		for _, room := range ds.Rooms {
			if !room.IsAvailable(week) {
				continue
			}
			entry.Available++
			if matchesBuilding(room, building) {
				entry.Rooms = append(entry.Rooms, room)
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

// View is everything the report displays for one filter value.
type View struct {
	Summary   Summary
	Buildings []string
	Filter    string
	Rooms     []models.Room
	Weeks     []WeekEntry
}

// BuildView computes both views for a building filter.
func BuildView(ds *models.Dataset, building string) View {
	return View{
		Summary:   Summarize(ds),
		Buildings: Buildings(ds),
		Filter:    building,
		Rooms:     FilterRooms(ds, building),
		Weeks:     RoomsPerWeek(ds, building),
	}
}
