package rulelife

import (
	"rulelife/internal/core"

	perlin "github.com/aquilax/go-perlin"
)

// Reset repopulates the grid from seed at the configured density. Unbounded
// worlds are seeded inside the viewport.
func (w *World) Reset(seed int64) {
	rng := core.NewRNG(seed)
	density := w.cfg.Density
	if !validDensity(density) {
		density = DefaultConfig().Density
	}
	if w.boundary.Bounded() {
		_ = w.PopulateRandom(rng, density)
		return
	}
	_ = w.PopulateRect(rng, density, w.size)
}

// PopulateRandom clears the grid, then marks every cell of the bounded domain
// alive with probability density.
func (w *World) PopulateRandom(rng *core.RNG, density float64) error {
	if !w.boundary.Bounded() {
		return ErrBoundsRequired
	}
	return w.PopulateRect(rng, density, w.size)
}

// PopulateRect clears the grid, then marks every cell of [0,rect.W) x
// [0,rect.H) alive with probability density. It works for every boundary;
// cells outside a bounded domain are dropped.
func (w *World) PopulateRect(rng *core.RNG, density float64, rect core.Size) error {
	if !validDensity(density) {
		return ErrInvalidDensity
	}
	w.Clear()
	for y := 0; y < rect.H; y++ {
		for x := 0; x < rect.W; x++ {
			if rng.Chance(density) {
				w.cur.Insert(core.Coord{X: x, Y: y})
			}
		}
	}
	return nil
}

// PopulateNoise clears the grid and seeds clustered blobs: a cell is alive
// where 2-D Perlin noise sampled at (x/scale, y/scale) exceeds threshold.
// Noise values fall roughly in [-1, 1]; thresholds near 0.2 give islands.
func (w *World) PopulateNoise(seed int64, scale, threshold float64) error {
	if !w.boundary.Bounded() {
		return ErrBoundsRequired
	}
	if scale <= 0 {
		scale = 8
	}
	noise := perlin.NewPerlin(2, 2, 3, seed)
	w.Clear()
	for y := 0; y < w.size.H; y++ {
		for x := 0; x < w.size.W; x++ {
			if noise.Noise2D(float64(x)/scale, float64(y)/scale) > threshold {
				w.cur.Insert(core.Coord{X: x, Y: y})
			}
		}
	}
	return nil
}
