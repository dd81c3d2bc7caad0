package roomboard

import (
	"bytes"
	"context"
	"os"

	"github.com/ukaji3/roomboard-go/internal/logging"
	"github.com/ukaji3/roomboard-go/pkg/roomboard/output"
)

// Run downloads the workbook, extracts the dataset and writes the report.
// The downloaded file is removed before Run returns, whatever the outcome.
func Run(ctx context.Context, cfg Config, log *logging.Logger) error {
	log.Info("Downloading workbook from %s", cfg.Source.URL)
	tmp, err := NewFetcher(cfg.GetTimeout()).Download(ctx, cfg.Source.URL)
	if err != nil {
		return err
	}
	defer func() {
		if err := tmp.Remove(); err != nil {
			log.Warn("Could not remove %s: %v", tmp.Path, err)
		}
	}()
	log.Info("Downloaded %d bytes", tmp.Size)

	ds, err := Extract(tmp.Path, cfg.Source.Sheet, cfg.Layout)
	if err != nil {
		return err
	}
	log.Info("Found %d weeks and %d rooms", len(ds.Weeks), len(ds.Rooms))
	if len(ds.Weeks) == 0 {
		log.Warn("No Saturday columns found; the report will be empty")
	}
	for _, week := range ds.Weeks {
		log.Debug("Week %s (v%d) in column %d", week.Key(), week.WeekNum, week.Column+1)
	}

	var buf bytes.Buffer
	if err := output.RenderHTML(&buf, ds, cfg.Output.Page()); err != nil {
		return NewWriteError(cfg.Output.Path, err)
	}
	if err := os.WriteFile(cfg.Output.Path, buf.Bytes(), 0644); err != nil {
		return NewWriteError(cfg.Output.Path, err)
	}

	summary := output.Summarize(ds)
	log.Info("Generated %s (%d of %d slots free, %d%%)",
		cfg.Output.Path, summary.AvailableSlots, summary.Rooms*summary.Weeks, summary.Percent)
	return nil
}
