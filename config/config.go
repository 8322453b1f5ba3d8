// Package config loads baza's optional startup file. It is read with
// BurntSushi/toml, the same TOML decoder the rest of the example pack
// reaches for when a repo needs a config file.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/kbanas/baza/errs"
)

// Config is baza's on-disk configuration: CSV ingestion and query
// output behavior that a caller can override without recompiling.
type Config struct {
	CSV    CSVConfig    `toml:"csv"`
	Output OutputConfig `toml:"output"`
}

type CSVConfig struct {
	Delimiter string `toml:"delimiter"`
}

type OutputConfig struct {
	PadWidth int `toml:"pad_width"`
}

// Default returns the configuration baza runs with when no config
// file is given: ',' delimited CSV, 20-glyph padded output.
func Default() Config {
	return Config{
		CSV:    CSVConfig{Delimiter: ","},
		Output: OutputConfig{PadWidth: 20},
	}
}

// Delimiter returns the configured CSV field delimiter as a rune,
// falling back to ',' if the configured value isn't exactly one rune.
func (c Config) Delimiter() rune {
	r := []rune(c.CSV.Delimiter)
	if len(r) != 1 {
		return ','
	}
	return r[0]
}

// Load reads and decodes a TOML config file at path, starting from
// Default() so an omitted table or key keeps its default value.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, errs.Newf(errs.FileNotFound, "config file %q not found", path)
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errs.Wrap(errs.IoError, err, "decoding config file "+path)
	}
	return cfg, nil
}
