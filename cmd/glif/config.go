package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

// config holds transcode defaults. Values come from an optional TOML file
// and are overridden by flags given on the command line.
//
//	format   = "json"   # json or binary
//	crc      = true
//	compress = false
//	workers  = 4
type config struct {
	Format   string `toml:"format"`
	CRC      bool   `toml:"crc"`
	Compress bool   `toml:"compress"`
	Workers  int    `toml:"workers"`
}

func defaultConfig() config {
	return config{Format: "json", CRC: true, Workers: 4}
}

// loadConfig reads path over the defaults. An empty path yields defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return config{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// override applies explicitly set flags on top of cfg.
func (cfg config) override(flags *pflag.FlagSet, format string, crc, compress bool, workers int) config {
	if flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Changed("crc") {
		cfg.CRC = crc
	}
	if flags.Changed("compress") {
		cfg.Compress = compress
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	return cfg
}

func (cfg config) validate() error {
	switch cfg.Format {
	case "json", "binary":
	default:
		return fmt.Errorf("unknown format %q (want json or binary)", cfg.Format)
	}
	if cfg.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", cfg.Workers)
	}
	return nil
}
