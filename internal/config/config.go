// Package config loads ciextract settings from YAML and the environment.
package config

import (
	"fmt"
	"os"

	"github.com/ukaji3/ciextract-go/pkg/ciextract"
	"github.com/ukaji3/ciextract-go/pkg/ciextract/parser"
	"gopkg.in/yaml.v3"
)

// Config is the full configuration.
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	Layout  LayoutConfig  `yaml:"layout"`
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
}

// SourceConfig locates the workbook.
type SourceConfig struct {
	Path  string `yaml:"path"`
	Sheet string `yaml:"sheet"` // empty selects the first sheet
}

// RangeConfig is an inclusive zero-based column range.
type RangeConfig struct {
	First int `yaml:"first"`
	Last  int `yaml:"last"`
}

// LayoutConfig describes the positional sheet convention.
type LayoutConfig struct {
	HeaderRow         int         `yaml:"header_row"`
	KeyColumn         int         `yaml:"key_column"`
	StageColumns      RangeConfig `yaml:"stage_columns"`
	DetailColumns     RangeConfig `yaml:"detail_columns"`
	DetailFlagColumns []int       `yaml:"detail_flag_columns"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// ServerConfig configures the HTTP front end.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	l := parser.DefaultLayout()
	return &Config{
		Source: SourceConfig{Path: ciextract.DefaultSource},
		Layout: LayoutConfig{
			HeaderRow:         l.HeaderRow,
			KeyColumn:         l.KeyColumn,
			StageColumns:      RangeConfig{First: l.StageColumns.First, Last: l.StageColumns.Last},
			DetailColumns:     RangeConfig{First: l.DetailColumns.First, Last: l.DetailColumns.Last},
			DetailFlagColumns: l.DetailFlagColumns,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CIEXTRACT_SOURCE"); v != "" {
		c.Source.Path = v
	}
	if v := os.Getenv("CIEXTRACT_SHEET"); v != "" {
		c.Source.Sheet = v
	}
	if v := os.Getenv("CIEXTRACT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("CIEXTRACT_ADDR"); v != "" {
		c.Server.Addr = v
	}
}

// Validate checks the sheet layout and logging settings.
func (c *Config) Validate() error {
	if err := c.SheetLayout().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ciextract.ErrInvalidLayout, err)
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("invalid log format %q (must be json or console)", c.Logging.Format)
	}
	return nil
}

// SheetLayout converts the layout section.
func (c *Config) SheetLayout() parser.Layout {
	return parser.Layout{
		HeaderRow:         c.Layout.HeaderRow,
		KeyColumn:         c.Layout.KeyColumn,
		StageColumns:      parser.ColumnRange{First: c.Layout.StageColumns.First, Last: c.Layout.StageColumns.Last},
		DetailColumns:     parser.ColumnRange{First: c.Layout.DetailColumns.First, Last: c.Layout.DetailColumns.Last},
		DetailFlagColumns: append([]int(nil), c.Layout.DetailFlagColumns...),
	}
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
