package rulelife

import (
	"errors"
	"slices"
	"testing"

	"rulelife/internal/core"
)

func TestParseLiteral(t *testing.T) {
	cells, err := ParseLiteral([]string{"   ", "   "}, LiteralOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(cells) != 0 {
		t.Fatalf("blank literal produced %v", cells)
	}

	cells, err = ParseLiteral([]string{"#  ", "   "}, LiteralOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if want := []core.Coord{{X: 0, Y: 0}}; !slices.Equal(cells, want) {
		t.Fatalf("got %v, expected %v", cells, want)
	}
}

func TestParseLiteralRaggedRowsAndGlyphs(t *testing.T) {
	rows := []string{
		"",
		"x#",
		"..#.....",
		"###",
		"   ",
	}
	cells, err := ParseLiteral(rows, LiteralOptions{})
	if err != nil {
		t.Fatal(err)
	}
	want := []core.Coord{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 0, Y: 3}, {X: 1, Y: 3}, {X: 2, Y: 3}}
	if !slices.Equal(cells, want) {
		t.Fatalf("got %v, expected %v", cells, want)
	}
}

func TestParseLiteralMarker(t *testing.T) {
	cells, err := ParseLiteral([]string{"█O█", "O"}, LiteralOptions{Marker: 'O'})
	if err != nil {
		t.Fatal(err)
	}
	if want := []core.Coord{{X: 1, Y: 0}, {X: 0, Y: 1}}; !slices.Equal(cells, want) {
		t.Fatalf("got %v, expected %v", cells, want)
	}

	cells, err = ParseLiteral([]string{"é█"}, LiteralOptions{Marker: '█'})
	if err != nil {
		t.Fatal(err)
	}
	if want := []core.Coord{{X: 1, Y: 0}}; !slices.Equal(cells, want) {
		t.Fatalf("columns must count runes: got %v", cells)
	}
}

func TestParseLiteralStrict(t *testing.T) {
	if _, err := ParseLiteral([]string{"#. ", " .#"}, LiteralOptions{Strict: true}); err != nil {
		t.Fatalf("valid strict literal rejected: %v", err)
	}

	_, err := ParseLiteral([]string{"#..", ".x."}, LiteralOptions{Strict: true})
	if !errors.Is(err, ErrMalformedLiteral) {
		t.Fatalf("expected ErrMalformedLiteral, got %v", err)
	}
	var litErr *LiteralError
	if !errors.As(err, &litErr) {
		t.Fatalf("expected *LiteralError, got %T", err)
	}
	if litErr.Row != 1 || litErr.Col != 1 || litErr.Glyph != 'x' {
		t.Fatalf("error points at row %d col %d glyph %q", litErr.Row, litErr.Col, litErr.Glyph)
	}
}

func TestFromLiteral(t *testing.T) {
	rows := Literal(`
.....
..#..
..#..
..#..
.....`)
	w, err := FromLiteral(sized(5, 5, Clipped), rows, LiteralOptions{Strict: true})
	if err != nil {
		t.Fatal(err)
	}
	w.Step()
	if got, want := w.String(), ".....\n.....\n.###.\n.....\n.....\n"; got != want {
		t.Fatalf("blinker step:\n%s\nexpected:\n%s", got, want)
	}
}

func TestFromLiteralOutsideGrid(t *testing.T) {
	rows := []string{"#...#"}
	w, err := FromLiteral(sized(3, 1, Clipped), rows, LiteralOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if w.Population() != 1 {
		t.Fatalf("population %d, expected the out-of-range cell to be dropped", w.Population())
	}

	if _, err := FromLiteral(sized(3, 1, Clipped), rows, LiteralOptions{Strict: true}); !errors.Is(err, ErrMalformedLiteral) {
		t.Fatalf("strict mode should reject cells outside the grid, got %v", err)
	}

	u, err := FromLiteral(sized(3, 1, Unbounded), rows, LiteralOptions{Strict: true})
	if err != nil {
		t.Fatal(err)
	}
	if u.Population() != 2 {
		t.Fatalf("unbounded population %d, expected 2", u.Population())
	}
}
