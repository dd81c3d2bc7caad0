// Package roomboard builds the static room availability report from the
// booking workbook.
package roomboard

import (
	"bytes"
	_ "embed"
	"fmt"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/ukaji3/roomboard-go/pkg/roomboard/output"
	"github.com/ukaji3/roomboard-go/pkg/roomboard/parser"
)

//go:embed config.toml
var defaultConfigTOML []byte

// Config is the process-wide configuration. It is built once at startup
// and never modified.
type Config struct {
	Source SourceConfig  `toml:"source"`
	Output OutputConfig  `toml:"output"`
	Layout parser.Layout `toml:"layout"`
}

// SourceConfig describes where the workbook comes from.
type SourceConfig struct {
	// URL is fetched with a plain GET.
	URL string `toml:"url"`
	// Sheet selects the worksheet; empty means the first one.
	Sheet string `toml:"sheet"`
	// Timeout bounds the whole download, as a Go duration string.
	Timeout string `toml:"timeout"`
}

// OutputConfig describes the generated report.
type OutputConfig struct {
	Path         string `toml:"path"`
	Title        string `toml:"title"`
	Heading      string `toml:"heading"`
	ContactEmail string `toml:"contact_email"`
	FooterNote   string `toml:"footer_note"`
}

// Page returns the fixed report text.
func (o OutputConfig) Page() output.Page {
	return output.Page{
		Title:        o.Title,
		Heading:      o.Heading,
		ContactEmail: o.ContactEmail,
		FooterNote:   o.FooterNote,
	}
}

// DefaultConfig returns the compiled-in configuration.
func DefaultConfig() (Config, error) {
	return ParseConfig(defaultConfigTOML)
}

// ParseConfig decodes and validates a TOML configuration.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Source.URL == "" {
		return fmt.Errorf("source.url is required")
	}
	if _, err := time.ParseDuration(c.Source.Timeout); err != nil {
		return fmt.Errorf("invalid source.timeout: %w", err)
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output.path is required")
	}
	if err := c.Layout.Validate(); err != nil {
		return fmt.Errorf("invalid layout: %w", err)
	}
	return nil
}

// GetTimeout returns the download timeout.
func (c Config) GetTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Source.Timeout)
	return d
}
