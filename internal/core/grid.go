package core

import (
	"cmp"
	"slices"
)

// Coord identifies a grid cell.
type Coord struct {
	X, Y int
}

// Grid is a set of live cells. Bounded grids drop insertions that fall
// outside their Size.
type Grid interface {
	Contains(c Coord) bool
	// Insert adds c and reports whether the grid holds it afterwards.
	Insert(c Coord) bool
	Len() int
	Clear()
	Each(fn func(c Coord))
	// Bounds returns the grid extent; ok is false for unbounded grids.
	Bounds() (size Size, ok bool)
}

// ByteGrid stores a bounded 2D grid of live flags in row-major order.
type ByteGrid struct {
	W, H  int
	data  []uint8
	count int
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

func (g *ByteGrid) size() Size { return Size{W: g.W, H: g.H} }

func (g *ByteGrid) Contains(c Coord) bool {
	if !g.size().Contains(c.X, c.Y) {
		return false
	}
	return g.data[g.Index(c.X, c.Y)] != 0
}

func (g *ByteGrid) Insert(c Coord) bool {
	if !g.size().Contains(c.X, c.Y) {
		return false
	}
	idx := g.Index(c.X, c.Y)
	if g.data[idx] == 0 {
		g.data[idx] = 1
		g.count++
	}
	return true
}

func (g *ByteGrid) Len() int { return g.count }

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	clear(g.data)
	g.count = 0
}

// Each visits live cells in row-major order.
func (g *ByteGrid) Each(fn func(c Coord)) {
	for idx, v := range g.data {
		if v != 0 {
			fn(Coord{X: idx % g.W, Y: idx / g.W})
		}
	}
}

func (g *ByteGrid) Bounds() (Size, bool) { return g.size(), true }

// SetGrid stores live cells in a map, bounded or not.
type SetGrid struct {
	cells   map[Coord]struct{}
	size    Size
	bounded bool
}

// NewSetGrid returns a map-backed grid limited to [0,w) x [0,h).
func NewSetGrid(w, h int) *SetGrid {
	return &SetGrid{cells: make(map[Coord]struct{}), size: Size{W: w, H: h}, bounded: true}
}

// NewUnboundedSetGrid returns a map-backed grid that accepts any coordinate.
func NewUnboundedSetGrid() *SetGrid {
	return &SetGrid{cells: make(map[Coord]struct{})}
}

func (g *SetGrid) Contains(c Coord) bool {
	_, ok := g.cells[c]
	return ok
}

func (g *SetGrid) Insert(c Coord) bool {
	if g.bounded && !g.size.Contains(c.X, c.Y) {
		return false
	}
	g.cells[c] = struct{}{}
	return true
}

func (g *SetGrid) Len() int { return len(g.cells) }

func (g *SetGrid) Clear() { clear(g.cells) }

// Each visits live cells in unspecified order.
func (g *SetGrid) Each(fn func(c Coord)) {
	for c := range g.cells {
		fn(c)
	}
}

func (g *SetGrid) Bounds() (Size, bool) { return g.size, g.bounded }

// Sorted returns the live cells of g ordered by row, then column.
func Sorted(g Grid) []Coord {
	out := make([]Coord, 0, g.Len())
	g.Each(func(c Coord) { out = append(out, c) })
	slices.SortFunc(out, func(a, b Coord) int {
		if n := cmp.Compare(a.Y, b.Y); n != 0 {
			return n
		}
		return cmp.Compare(a.X, b.X)
	})
	return out
}

// Equal reports whether two grids hold the same live cells.
func Equal(a, b Grid) bool {
	if a.Len() != b.Len() {
		return false
	}
	same := true
	a.Each(func(c Coord) {
		if same && !b.Contains(c) {
			same = false
		}
	})
	return same
}
