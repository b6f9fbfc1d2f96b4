// Package config holds the primmst command configuration: built-in
// defaults, an optional TOML file, and command-line flags layered on top.
package config

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/primmst/mst"
)

// ErrBadConfig indicates a configuration value outside its allowed set.
var ErrBadConfig = errors.New("config: invalid value")

// RandomStart as Start asks for a start vertex drawn from Seed.
const RandomStart = -1

// Config is the resolved command configuration.
type Config struct {
	Method     string `toml:"method"`
	Start      int    `toml:"start"`
	Seed       int64  `toml:"seed"`
	Strategy   string `toml:"strategy"`
	CheckHeap  bool   `toml:"validate"`
	LogLevel   string `toml:"log_level"`
	PrintTree  bool   `toml:"print_tree"`
	PrintGraph bool   `toml:"print_graph"`
}

// Default returns the configuration used when no file or flag overrides it:
// Prim from a random start, delete-then-insert relaxation, info logging.
func Default() *Config {
	return &Config{
		Method:   mst.MethodPrim,
		Start:    RandomStart,
		Seed:     0,
		Strategy: mst.StrategyReinsert.String(),
		LogLevel: "info",
	}
}

// Load decodes the TOML file at path over c. Keys absent from the file keep
// their current values; unknown keys are rejected.
func (c *Config) Load(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config: %s: unknown key %q: %w", path, undecoded[0].String(), ErrBadConfig)
	}

	return nil
}

// RegisterFlags binds c's fields to fs. Flag defaults are c's current
// values, so call it after Load for file values to show as defaults.
func (c *Config) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Method, "method", "m", c.Method, "MST algorithm: prim or kruskal")
	fs.IntVarP(&c.Start, "start", "s", c.Start, "0-based start vertex for prim; -1 picks one at random")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random start vertex; 0 uses the clock")
	fs.StringVar(&c.Strategy, "strategy", c.Strategy, "relaxation: reinsert or decrease-key")
	fs.BoolVar(&c.CheckHeap, "validate", c.CheckHeap, "check heap invariants after every operation")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.BoolVar(&c.PrintTree, "print-tree", c.PrintTree, "print the tree edges")
	fs.BoolVar(&c.PrintGraph, "print-graph", c.PrintGraph, "print the parsed graph")
}

// Validate checks every enumerated field.
func (c *Config) Validate() error {
	switch c.Method {
	case mst.MethodPrim, mst.MethodKruskal:
	default:
		return fmt.Errorf("method %q: %w", c.Method, ErrBadConfig)
	}
	if _, err := mst.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("strategy: %w: %w", ErrBadConfig, err)
	}
	if c.Start < RandomStart {
		return fmt.Errorf("start %d: %w", c.Start, ErrBadConfig)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q: %w", c.LogLevel, ErrBadConfig)
	}

	return nil
}

// PrimOptions translates c into mst options. rnd is used only for a random start.
func (c *Config) PrimOptions(rnd func() int64) ([]mst.Option, error) {
	s, err := mst.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, err
	}
	opts := []mst.Option{mst.WithStrategy(s)}
	if c.Start == RandomStart {
		seed := c.Seed
		if seed == 0 {
			seed = rnd()
		}
		opts = append(opts, mst.WithRandomStart(rand.New(rand.NewSource(seed))))
	} else {
		opts = append(opts, mst.WithStart(c.Start))
	}
	if c.CheckHeap {
		opts = append(opts, mst.WithValidate())
	}

	return opts, nil
}
