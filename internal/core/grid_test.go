package core

import (
	"slices"
	"testing"
)

func TestBoundedGridsDropOutOfRange(t *testing.T) {
	grids := map[string]Grid{
		"set":  NewSetGrid(4, 3),
		"byte": NewByteGrid(4, 3),
	}
	for name, g := range grids {
		if !g.Insert(Coord{X: 1, Y: 1}) {
			t.Fatalf("%s: in-range insert rejected", name)
		}
		for _, c := range []Coord{{4, 0}, {0, 3}, {-1, 0}, {0, -1}, {100, 100}} {
			if g.Insert(c) {
				t.Fatalf("%s: insert of %v should be dropped", name, c)
			}
			if g.Contains(c) {
				t.Fatalf("%s: grid reports out-of-range %v as alive", name, c)
			}
		}
		if g.Len() != 1 {
			t.Fatalf("%s: len %d, expected 1", name, g.Len())
		}
		size, ok := g.Bounds()
		if !ok || size != (Size{W: 4, H: 3}) {
			t.Fatalf("%s: bounds %v/%v", name, size, ok)
		}
	}
}

func TestGridInsertIsIdempotent(t *testing.T) {
	for name, g := range map[string]Grid{"set": NewSetGrid(3, 3), "byte": NewByteGrid(3, 3)} {
		g.Insert(Coord{X: 2, Y: 2})
		g.Insert(Coord{X: 2, Y: 2})
		if g.Len() != 1 {
			t.Fatalf("%s: duplicate insert counted twice", name)
		}
		g.Clear()
		if g.Len() != 0 || g.Contains(Coord{X: 2, Y: 2}) {
			t.Fatalf("%s: Clear left cells behind", name)
		}
	}
}

func TestUnboundedSetGridAcceptsAnything(t *testing.T) {
	g := NewUnboundedSetGrid()
	for _, c := range []Coord{{-5, -5}, {1 << 30, 3}, {0, 0}} {
		if !g.Insert(c) {
			t.Fatalf("unbounded insert of %v rejected", c)
		}
	}
	if _, ok := g.Bounds(); ok {
		t.Fatal("unbounded grid reports bounds")
	}
}

func TestSortedAndEqual(t *testing.T) {
	a := NewSetGrid(5, 5)
	b := NewByteGrid(5, 5)
	for _, c := range []Coord{{3, 1}, {0, 2}, {1, 1}} {
		a.Insert(c)
		b.Insert(c)
	}
	want := []Coord{{1, 1}, {3, 1}, {0, 2}}
	if got := Sorted(a); !slices.Equal(got, want) {
		t.Fatalf("Sorted(set) = %v, expected %v", got, want)
	}
	if got := Sorted(b); !slices.Equal(got, want) {
		t.Fatalf("Sorted(byte) = %v, expected %v", got, want)
	}
	if !Equal(a, b) {
		t.Fatal("grids with the same cells should be equal")
	}
	b.Insert(Coord{X: 4, Y: 4})
	if Equal(a, b) {
		t.Fatal("grids with different cells should differ")
	}
}

func TestSizeWrap(t *testing.T) {
	s := Size{W: 5, H: 3}
	cases := []struct{ x, y, wx, wy int }{
		{-1, -1, 4, 2},
		{5, 3, 0, 0},
		{2, 1, 2, 1},
		{-6, 7, 4, 1},
	}
	for _, tc := range cases {
		x, y := s.Wrap(tc.x, tc.y)
		if x != tc.wx || y != tc.wy {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), expected (%d,%d)", tc.x, tc.y, x, y, tc.wx, tc.wy)
		}
	}
}

func TestAbbreviate(t *testing.T) {
	if got := Abbreviate("123456789", 20); got != "123456789" {
		t.Fatalf("short value changed: %q", got)
	}
	got := Abbreviate("1234567890", 7)
	if len([]rune(got)) != 7 || got != "123…890" {
		t.Fatalf("Abbreviate = %q", got)
	}
}
