package parser

import "strings"

// spaceRuns are replaced by a single space, longest first.
var spaceRuns = []string{"     ", "    ", "   ", "  "}

// nameRewrites shorten the two known long room labels. Order matters:
// "EU ROOM" is a substring of the first label once it is collapsed.
var nameRewrites = []struct{ from, to string }{
	{"EU OR UK  ROOM", "EU/UK"},
	{"EU ROOM", "EU"},
}

// CollapseSpaces replaces runs of two to five spaces with a single space.
func CollapseSpaces(s string) string {
	for _, run := range spaceRuns {
		s = strings.ReplaceAll(s, run, " ")
	}
	return s
}

// DisplayName joins building and room number into the label shown in the report.
// Rewrite patterns are collapsed the same way as the name so they still
// match after the interior spaces are squeezed.
func DisplayName(building, roomNumber string) string {
	name := CollapseSpaces(strings.TrimSpace(building + " " + roomNumber))
	for _, rw := range nameRewrites {
		name = strings.ReplaceAll(name, CollapseSpaces(rw.from), rw.to)
	}
	return name
}
