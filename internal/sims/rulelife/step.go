package rulelife

import (
	"rulelife/internal/core"

	"golang.org/x/sync/errgroup"
)

// Fingerprint returns the 9-bit neighbourhood index of c: neighbour
// (x+dx-1, y+dy-1) sets bit dx+3*dy, so bit 4 is c itself.
func (w *World) Fingerprint(c core.Coord) int {
	fp := 0
	for dy := 0; dy < 3; dy++ {
		for dx := 0; dx < 3; dx++ {
			n, ok := w.boundary.resolve(c.X+dx-1, c.Y+dy-1, w.size)
			if ok && w.cur.Contains(n) {
				fp |= 1 << (dx + 3*dy)
			}
		}
	}
	return fp
}

// Step advances the world by one generation.
func (w *World) Step() {
	w.nxt.Clear()
	switch w.resolveStrategy() {
	case Dense:
		w.denseScan()
	default:
		w.sparseScan()
	}
	w.cur, w.nxt = w.nxt, w.cur
	w.generation++
}

func (w *World) resolveStrategy() Strategy {
	if !w.boundary.Bounded() {
		return Sparse
	}
	// A rule that births cells with no live neighbours can change cells
	// far from any live cell, which the sparse candidate set never visits.
	if w.table.Alive(0) {
		return Dense
	}
	if w.strategy != Auto {
		return w.strategy
	}
	if 9*w.cur.Len() < w.size.Area() {
		return Sparse
	}
	return Dense
}

func (w *World) denseScan() {
	if w.workers <= 1 || w.size.H < 2 {
		for y := 0; y < w.size.H; y++ {
			w.scanRow(y, func(c core.Coord) { w.nxt.Insert(c) })
		}
		return
	}

	workers := min(w.workers, w.size.H)
	bands := make([][]core.Coord, workers)
	var g errgroup.Group
	for i := 0; i < workers; i++ {
		start := i * w.size.H / workers
		end := (i + 1) * w.size.H / workers
		g.Go(func() error {
			var born []core.Coord
			for y := start; y < end; y++ {
				w.scanRow(y, func(c core.Coord) { born = append(born, c) })
			}
			bands[i] = born
			return nil
		})
	}
	// Bands only read the current generation, so no band can fail.
	_ = g.Wait()
	for _, band := range bands {
		for _, c := range band {
			w.nxt.Insert(c)
		}
	}
}

func (w *World) scanRow(y int, emit func(core.Coord)) {
	for x := 0; x < w.size.W; x++ {
		c := core.Coord{X: x, Y: y}
		if w.table.Alive(w.Fingerprint(c)) {
			emit(c)
		}
	}
}

func (w *World) sparseScan() {
	clear(w.candidates)
	w.cur.Each(func(c core.Coord) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if n, ok := w.boundary.resolve(c.X+dx, c.Y+dy, w.size); ok {
					w.candidates[n] = struct{}{}
				}
			}
		}
	})
	for c := range w.candidates {
		if w.table.Alive(w.Fingerprint(c)) {
			w.nxt.Insert(c)
		}
	}
}
