// Package config loads converter settings from TOML profiles. Settings
// resolve in three layers: built-in defaults, then the profile file,
// then explicit command-line flags.
package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"

	"github.com/philipparndt/csvmesh/pkg/csv"
	"github.com/philipparndt/csvmesh/pkg/importer"
)

// Config mirrors the import and output options a profile can set.
type Config struct {
	MeshName       string  `toml:"mesh_name"`
	MergeThreshold float64 `toml:"merge_threshold"`
	Center         bool    `toml:"center"`
	Listing        bool    `toml:"listing"`

	CSV CSVConfig `toml:"csv"`
}

// CSVConfig describes the capture column layout.
type CSVConfig struct {
	Delimiter string `toml:"delimiter"`
	XColumn   int    `toml:"x_column"`
	YColumn   int    `toml:"y_column"`
	ZColumn   int    `toml:"z_column"`
	WColumn   int    `toml:"w_column"`
}

// Default returns the built-in settings.
func Default() Config {
	profile := csv.DefaultProfile()
	return Config{
		MeshName:       importer.DefaultMeshName,
		MergeThreshold: importer.DefaultMergeThreshold,
		Center:         false,
		Listing:        true,
		CSV: CSVConfig{
			Delimiter: string(profile.Delimiter),
			XColumn:   profile.XColumn,
			YColumn:   profile.YColumn,
			ZColumn:   profile.ZColumn,
			WColumn:   profile.WColumn,
		},
	}
}

// Load reads a TOML profile over the defaults. Keys absent from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings for values no import could run with.
func (c Config) Validate() error {
	if c.MergeThreshold < 0 {
		return fmt.Errorf("merge_threshold must not be negative, got %g", c.MergeThreshold)
	}
	if c.CSV.Delimiter != "" && utf8.RuneCountInString(c.CSV.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.CSV.Delimiter)
	}
	return c.Profile().Validate()
}

// Profile returns the CSV column layout the settings describe.
func (c Config) Profile() csv.Profile {
	delimiter, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	if c.CSV.Delimiter == "" {
		delimiter = ','
	}
	return csv.Profile{
		Delimiter: delimiter,
		XColumn:   c.CSV.XColumn,
		YColumn:   c.CSV.YColumn,
		ZColumn:   c.CSV.ZColumn,
		WColumn:   c.CSV.WColumn,
	}
}

// Options returns the importer options the settings describe. A
// threshold set to zero restricts merging to exact duplicates.
func (c Config) Options() importer.Options {
	threshold := c.MergeThreshold
	if threshold == 0 {
		threshold = -1
	}
	return importer.Options{
		MeshName:       c.MeshName,
		Profile:        c.Profile(),
		MergeThreshold: threshold,
	}
}
