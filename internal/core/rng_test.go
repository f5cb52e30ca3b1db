package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(99)
	b := NewRNG(99)
	for i := 0; i < 64; i++ {
		if a.Chance(0.5) != b.Chance(0.5) {
			t.Fatalf("draw %d differs for identical seeds", i)
		}
	}
}

func TestRNGChanceExtremes(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 100; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) fired")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) did not fire")
		}
	}
}

func TestRNGChanceFrequency(t *testing.T) {
	r := NewRNG(7)
	hits := 0
	const n = 20000
	for i := 0; i < n; i++ {
		if r.Chance(0.25) {
			hits++
		}
	}
	if hits < n/5 || hits > n*3/10 {
		t.Fatalf("Chance(0.25) fired %d/%d times", hits, n)
	}
}
