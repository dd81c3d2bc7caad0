package roomboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg, err := DefaultConfig()
	require.NoError(t, err)

	assert.Contains(t, cfg.Source.URL, "STEPH-VERSION-ALL-ROOMS-2026.xlsx")
	assert.Equal(t, "", cfg.Source.Sheet)
	assert.Equal(t, 60*time.Second, cfg.GetTimeout())
	assert.Equal(t, "index.html", cfg.Output.Path)
	assert.Equal(t, "WILDWIND 2026", cfg.Output.Page().Heading)
	assert.Equal(t, "pia@seafari.se", cfg.Output.Page().ContactEmail)
	assert.Equal(t, "Sidan uppdateras automatiskt varje morgon kl 06:00", cfg.Output.Page().FooterNote)

	assert.Equal(t, 0, cfg.Layout.DateRow)
	assert.Equal(t, 1, cfg.Layout.DayRow)
	assert.Equal(t, 3, cfg.Layout.FirstWeekColumn)
	assert.Equal(t, 2, cfg.Layout.WeekColumnStride)
	assert.Equal(t, 0, cfg.Layout.BuildingColumn)
	assert.Equal(t, 1, cfg.Layout.RoomNumberColumn)
	require.Len(t, cfg.Layout.AllowedRows, 22)
	assert.Equal(t, 44, cfg.Layout.AllowedRows[0])
	assert.Equal(t, 284, cfg.Layout.AllowedRows[21])
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"unknown field", `
[source]
url = "http://example.com/a.xlsx"
timeout = "1s"
retries = 3
[output]
path = "out.html"
[layout]
week_column_stride = 2
allowed_rows = [1]
`},
		{"missing url", `
[source]
timeout = "1s"
[output]
path = "out.html"
[layout]
week_column_stride = 2
allowed_rows = [1]
`},
		{"bad timeout", `
[source]
url = "http://example.com/a.xlsx"
timeout = "soon"
[output]
path = "out.html"
[layout]
week_column_stride = 2
allowed_rows = [1]
`},
		{"missing output", `
[source]
url = "http://example.com/a.xlsx"
timeout = "1s"
[layout]
week_column_stride = 2
allowed_rows = [1]
`},
		{"zero stride", `
[source]
url = "http://example.com/a.xlsx"
timeout = "1s"
[output]
path = "out.html"
[layout]
allowed_rows = [1]
`},
		{"not toml", `[source`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.toml))
			assert.Error(t, err)
		})
	}
}
