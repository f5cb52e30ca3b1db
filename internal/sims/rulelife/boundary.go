package rulelife

import (
	"fmt"
	"strings"

	"rulelife/internal/core"
)

// Boundary selects how neighbour references at or beyond the grid edge
// resolve.
type Boundary uint8

const (
	// Clipped treats cells outside [0,W) x [0,H) as permanently dead.
	Clipped Boundary = iota
	// Toroidal wraps both axes.
	Toroidal
	// Unbounded has no edges at all.
	Unbounded
)

var boundaryNames = [...]string{
	Clipped:   "clipped",
	Toroidal:  "toroidal",
	Unbounded: "unbounded",
}

func (b Boundary) String() string {
	if int(b) < len(boundaryNames) {
		return boundaryNames[b]
	}
	return fmt.Sprintf("Boundary(%d)", uint8(b))
}

// Bounded reports whether the policy has a finite domain.
func (b Boundary) Bounded() bool { return b != Unbounded }

// ParseBoundary maps a policy name ("clipped", "toroidal"/"torus"/"wrap",
// "unbounded"/"infinite") to a Boundary.
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clipped", "clip":
		return Clipped, nil
	case "toroidal", "torus", "wrap":
		return Toroidal, nil
	case "unbounded", "infinite":
		return Unbounded, nil
	}
	return Clipped, fmt.Errorf("%w: %q", ErrUnknownBoundary, s)
}

// resolve maps the raw neighbour reference (x, y) onto the grid. ok is false
// when the reference falls off a clipped edge.
func (b Boundary) resolve(x, y int, size core.Size) (c core.Coord, ok bool) {
	switch b {
	case Toroidal:
		x, y = size.Wrap(x, y)
		return core.Coord{X: x, Y: y}, true
	case Unbounded:
		return core.Coord{X: x, Y: y}, true
	default:
		if !size.Contains(x, y) {
			return core.Coord{}, false
		}
		return core.Coord{X: x, Y: y}, true
	}
}
