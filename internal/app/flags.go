package app

import (
	"flag"
	"fmt"
	"strconv"

	"rulelife/internal/rule"
	"rulelife/internal/sims/rulelife"
)

// Config represents the command-line parameters shared by the front ends.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	Width    int
	Height   int
	Rule     string
	Boundary string
	Storage  string
	Strategy string
	Density  string
	Workers  int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := rulelife.DefaultConfig()
	return &Config{
		Sim:      "rulelife",
		Scale:    4,
		TPS:      15,
		Seed:     42,
		Width:    d.Width,
		Height:   d.Height,
		Boundary: d.Boundary.String(),
		Storage:  d.Storage.String(),
		Strategy: d.Strategy.String(),
		Density:  "1/30",
		Workers:  d.Workers,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random population")
	fs.IntVar(&c.Width, "w", c.Width, "grid width (viewport width when unbounded)")
	fs.IntVar(&c.Height, "h", c.Height, "grid height (viewport height when unbounded)")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule integer in decimal (default: Conway's Life)")
	fs.StringVar(&c.Boundary, "boundary", c.Boundary, "clipped, toroidal or unbounded")
	fs.StringVar(&c.Storage, "storage", c.Storage, "cell storage: set or dense")
	fs.StringVar(&c.Strategy, "strategy", c.Strategy, "step strategy: auto, dense or sparse")
	fs.StringVar(&c.Density, "density", c.Density, "random population density, decimal or n/d")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used by dense scans")
}

// Validate rejects values the sim factory would otherwise silently replace
// with defaults.
func (c *Config) Validate() error {
	if c.Rule != "" {
		if _, err := rule.Parse(c.Rule); err != nil {
			return err
		}
	}
	if _, err := rulelife.ParseBoundary(c.Boundary); err != nil {
		return err
	}
	if _, err := rulelife.ParseDensity(c.Density); err != nil {
		return fmt.Errorf("density %q: %w", c.Density, err)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid size %dx%d must be positive", c.Width, c.Height)
	}
	return nil
}

// SimConfig converts the flags into the key/value map consumed by sim
// factories.
func (c *Config) SimConfig() map[string]string {
	m := map[string]string{
		"w":        strconv.Itoa(c.Width),
		"h":        strconv.Itoa(c.Height),
		"boundary": c.Boundary,
		"storage":  c.Storage,
		"strategy": c.Strategy,
		"density":  c.Density,
		"workers":  strconv.Itoa(c.Workers),
		"seed":     strconv.FormatInt(c.Seed, 10),
	}
	if c.Rule != "" {
		m["rule"] = c.Rule
	}
	return m
}
