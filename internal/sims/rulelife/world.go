// Package rulelife implements a two-state, nine-neighbour cellular automaton
// whose transition rule is an arbitrary 512-bit integer. Conway's Life is the
// default rule.
package rulelife

import (
	"fmt"
	"log"
	"math/big"
	"strings"

	"rulelife/internal/core"
	"rulelife/internal/rule"
)

// World owns the current generation, the decoded rule and the boundary
// policy. It is not safe for concurrent use.
type World struct {
	cfg Config

	size     core.Size
	boundary Boundary
	strategy Strategy
	workers  int

	rule  *big.Int
	table rule.Table

	cur core.Grid
	nxt core.Grid

	// candidates is the recycled sparse-scan work set.
	candidates map[core.Coord]struct{}
	generation int
}

// New returns a world of the given dimensions using rule r and defaults for
// everything else.
func New(w, h int, r *big.Int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Rule = r
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options.
func NewWithConfig(cfg Config) (*World, error) {
	if cfg.Boundary.Bounded() && (cfg.Width <= 0 || cfg.Height <= 0) {
		return nil, fmt.Errorf("%s world needs positive dimensions, got %dx%d", cfg.Boundary, cfg.Width, cfg.Height)
	}
	r := cfg.Rule
	if r == nil {
		r = rule.StandardLife()
	}
	table, err := rule.Decode(r)
	if err != nil {
		return nil, err
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	w := &World{
		cfg:        cfg,
		size:       core.Size{W: cfg.Width, H: cfg.Height},
		boundary:   cfg.Boundary,
		strategy:   cfg.Strategy,
		workers:    cfg.Workers,
		rule:       new(big.Int).Set(r),
		table:      table,
		candidates: make(map[core.Coord]struct{}),
	}
	w.cur, w.nxt = w.newGrid(), w.newGrid()
	return w, nil
}

func (w *World) newGrid() core.Grid {
	if !w.boundary.Bounded() {
		return core.NewUnboundedSetGrid()
	}
	if w.cfg.Storage == StorageDense {
		return core.NewByteGrid(w.size.W, w.size.H)
	}
	return core.NewSetGrid(w.size.W, w.size.H)
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "rulelife" }

// Size reports the grid dimensions, or the viewport for unbounded worlds.
func (w *World) Size() core.Size { return w.size }

// Boundary returns the boundary policy fixed at construction.
func (w *World) Boundary() Boundary { return w.boundary }

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Alive reports whether cell (x, y) is alive in the current generation.
func (w *World) Alive(x, y int) bool {
	return w.cur.Contains(core.Coord{X: x, Y: y})
}

// Population returns the number of live cells.
func (w *World) Population() int { return w.cur.Len() }

// Generation returns the number of steps taken since the grid was last
// populated.
func (w *World) Generation() int { return w.generation }

// LiveCells returns the live cells ordered by row, then column.
func (w *World) LiveCells() []core.Coord { return core.Sorted(w.cur) }

// Rule returns a copy of the active rule integer.
func (w *World) Rule() *big.Int { return new(big.Int).Set(w.rule) }

// Table returns the decoded active rule.
func (w *World) Table() rule.Table { return w.table }

// SetRule swaps the active rule. The grid is left untouched.
func (w *World) SetRule(r *big.Int) error {
	table, err := rule.Decode(r)
	if err != nil {
		return err
	}
	w.rule = new(big.Int).Set(r)
	w.table = table
	return nil
}

// SetStrategy changes how subsequent steps enumerate cells.
func (w *World) SetStrategy(s Strategy) { w.strategy = s }

// Insert marks c alive and reports whether the grid kept it. Cells outside a
// bounded domain are dropped.
func (w *World) Insert(c core.Coord) bool { return w.cur.Insert(c) }

// Clear kills every cell and resets the generation counter.
func (w *World) Clear() {
	w.cur.Clear()
	w.generation = 0
}

// Load replaces the grid with cells. Out-of-domain cells are dropped.
func (w *World) Load(cells []core.Coord) {
	w.Clear()
	for _, c := range cells {
		w.cur.Insert(c)
	}
}

// String renders the viewport with '#' for live cells and '.' for dead ones.
func (w *World) String() string {
	var sb strings.Builder
	for y := 0; y < w.size.H; y++ {
		for x := 0; x < w.size.W; x++ {
			if w.Alive(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func init() {
	core.Register("rulelife", func(cfg map[string]string) core.Sim {
		w, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			log.Printf("rulelife: %v; falling back to defaults", err)
			w, _ = NewWithConfig(DefaultConfig())
		}
		return w
	})
}
