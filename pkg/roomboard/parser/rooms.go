package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/roomboard-go/pkg/roomboard/models"
)

// ExtractRooms reads one Room per allow-listed row, in allow-list order.
// A row outside the grid is an error; blank building or room cells are not.
func ExtractRooms(g Grid, layout Layout, weeks []models.Week) ([]models.Room, error) {
	rooms := make([]models.Room, 0, len(layout.AllowedRows))
	for _, rowNum := range layout.AllowedRows {
		idx := rowNum - 1
		if !g.HasRow(idx) {
			return nil, &CellError{
				Row:    rowNum,
				Reason: fmt.Sprintf("allow-listed row missing (sheet has %d rows)", g.Rows()),
			}
		}

		building := strings.TrimSpace(g.Cell(idx, layout.BuildingColumn))
		roomNumber := strings.TrimSpace(g.Cell(idx, layout.RoomNumberColumn))

		availability := make(map[string]models.Slot, len(weeks))
		for _, week := range weeks {
			availability[week.Key()] = ParseSlot(g.Cell(idx, week.Column))
		}

		rooms = append(rooms, models.Room{
			Row:          rowNum,
			Name:         DisplayName(building, roomNumber),
			Building:     building,
			RoomNumber:   roomNumber,
			Availability: availability,
		})
	}
	return rooms, nil
}

// ParseSlot applies the availability rule to a booking cell:
// empty or whitespace-only means available, anything else is a booking.
func ParseSlot(cell string) models.Slot {
	if strings.TrimSpace(cell) == "" {
		return models.Slot{Available: true}
	}
	return models.Slot{BookedBy: truncate(cell, models.BookedByMaxLen)}
}

// truncate keeps the first n characters of s.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
