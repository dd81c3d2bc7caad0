package parser

import "github.com/ukaji3/roomboard-go/pkg/roomboard/models"

// Parse extracts weeks and rooms from the grid. GeneratedAt is left for
// the caller to stamp.
func Parse(g Grid, layout Layout, opts Options) (*models.Dataset, error) {
	weeks, err := DiscoverWeeks(g, layout, opts)
	if err != nil {
		return nil, err
	}
	rooms, err := ExtractRooms(g, layout, weeks)
	if err != nil {
		return nil, err
	}
	return &models.Dataset{
		Weeks: weeks,
		Rooms: rooms,
	}, nil
}
