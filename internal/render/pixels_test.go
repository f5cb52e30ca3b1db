package render

import (
	"image/color"
	"slices"
	"testing"

	"rulelife/internal/core"
)

type cellSet map[core.Coord]bool

func (s cellSet) Alive(x, y int) bool { return s[core.Coord{X: x, Y: y}] }

func TestFillRGBA(t *testing.T) {
	view := cellSet{{X: 1, Y: 0}: true, {X: 0, Y: 1}: true}
	size := core.Size{W: 2, H: 2}
	buf := make([]byte, 4*size.Area())
	on := color.RGBA{R: 255, G: 200, B: 100, A: 255}
	off := color.RGBA{A: 255}

	FillRGBA(buf, view, size, on, off)

	want := []byte{
		0, 0, 0, 255, 255, 200, 100, 255,
		255, 200, 100, 255, 0, 0, 0, 255,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels %v, expected %v", buf, want)
	}
}

func TestRows(t *testing.T) {
	view := cellSet{{X: 0, Y: 0}: true, {X: 2, Y: 1}: true}
	got := Rows(view, core.Size{W: 3, H: 2}, '█', ' ')
	want := []string{"█  ", "  █"}
	if !slices.Equal(got, want) {
		t.Fatalf("rows %q, expected %q", got, want)
	}
}
