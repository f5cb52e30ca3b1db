package rulelife

import (
	"math/big"
	"strconv"
	"strings"

	"rulelife/internal/rule"
)

// Storage selects how a bounded world stores its live cells.
type Storage uint8

const (
	// StorageSet keeps live cells in a hash set; cheap for sparse grids.
	StorageSet Storage = iota
	// StorageDense keeps one byte per cell; cheap for crowded grids.
	StorageDense
)

func (s Storage) String() string {
	if s == StorageDense {
		return "dense"
	}
	return "set"
}

// Strategy selects which cells Step evaluates.
type Strategy uint8

const (
	// Auto picks Sparse for unbounded or thinly populated grids, else Dense.
	Auto Strategy = iota
	// Dense evaluates every cell of the bounded domain.
	Dense
	// Sparse evaluates live cells and their neighbours only.
	Sparse
)

func (s Strategy) String() string {
	switch s {
	case Dense:
		return "dense"
	case Sparse:
		return "sparse"
	}
	return "auto"
}

// Config controls the world dimensions, rule and stepping behaviour.
type Config struct {
	// Width and Height bound the domain. For unbounded worlds they only
	// size the viewport used by Reset and rendering.
	Width  int
	Height int

	Boundary Boundary
	Storage  Storage
	Strategy Strategy

	// Workers splits dense scans into row bands evaluated concurrently.
	Workers int

	Seed    int64
	Density float64

	// Rule is the rule integer; nil selects Conway's Life.
	Rule *big.Int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:    120,
		Height:   60,
		Boundary: Clipped,
		Storage:  StorageSet,
		Strategy: Auto,
		Workers:  1,
		Seed:     1337,
		Density:  1.0 / 30,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that do not parse keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["boundary"]; ok {
		if parsed, err := ParseBoundary(v); err == nil {
			c.Boundary = parsed
		}
	}
	if v, ok := cfg["storage"]; ok {
		switch strings.ToLower(v) {
		case "set":
			c.Storage = StorageSet
		case "dense":
			c.Storage = StorageDense
		}
	}
	if v, ok := cfg["strategy"]; ok {
		switch strings.ToLower(v) {
		case "auto":
			c.Strategy = Auto
		case "dense":
			c.Strategy = Dense
		case "sparse":
			c.Strategy = Sparse
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := ParseDensity(v); err == nil {
			c.Density = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := rule.Parse(v); err == nil {
			c.Rule = parsed
		}
	}
	return c
}

// ParseDensity accepts a decimal ("0.25") or a ratio ("1/30") in (0, 1].
func ParseDensity(s string) (float64, error) {
	s = strings.TrimSpace(s)
	var d float64
	if num, den, ok := strings.Cut(s, "/"); ok {
		r, ok := new(big.Rat).SetString(strings.TrimSpace(num) + "/" + strings.TrimSpace(den))
		if !ok {
			return 0, ErrInvalidDensity
		}
		d, _ = r.Float64()
	} else {
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, ErrInvalidDensity
		}
		d = parsed
	}
	if !validDensity(d) {
		return 0, ErrInvalidDensity
	}
	return d, nil
}

func validDensity(d float64) bool {
	return d > 0 && d <= 1
}
