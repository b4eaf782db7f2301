// Package config loads the engine's on-disk defaults from an optional
// TOML file, following the same load-then-override pattern UCI's
// "setoption" uses at runtime: the file sets the starting point, UCI
// options layered on top of a running engine always take precedence.
package config

import (
	"time"

	"github.com/BurntSushi/toml"
)

// Engine holds every tunable the UCI layer exposes as a "setoption", plus
// anything a user might want pinned before the GUI ever sends one.
type Engine struct {
	HashMB       int           `toml:"hash_mb"`
	Threads      int           `toml:"threads"`
	MoveOverhead time.Duration `toml:"move_overhead"`
	Ponder       bool          `toml:"ponder"`
}

// Default returns the engine's built-in configuration, used when no TOML
// file is given. A given file that can't be read makes Load fail.
func Default() Engine {
	return Engine{
		HashMB:       64,
		Threads:      1,
		MoveOverhead: 30 * time.Millisecond,
		Ponder:       false,
	}
}

// Load reads path (a TOML file) on top of Default, so a file that only
// sets one field still leaves sensible values for the rest.
func Load(path string) (Engine, error) {
	cfg := Default()
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Engine{}, err
	}
	return cfg, nil
}
