package app

import (
	"errors"
	"flag"
	"testing"

	"rulelife/internal/rule"
	"rulelife/internal/sims/rulelife"
)

func TestBindAndSimConfig(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-w", "32", "-h", "16", "-boundary", "toroidal", "-rule", "1802", "-density", "0.5"})
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	sc := rulelife.FromMap(cfg.SimConfig())
	if sc.Width != 32 || sc.Height != 16 || sc.Boundary != rulelife.Toroidal {
		t.Fatalf("sim config %+v", sc)
	}
	if sc.Rule == nil || sc.Rule.Int64() != 1802 || sc.Density != 0.5 {
		t.Fatalf("rule %v density %v", sc.Rule, sc.Density)
	}
}

func TestValidate(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	bad := NewConfig()
	bad.Rule = "12x"
	if err := bad.Validate(); !errors.Is(err, rule.ErrInvalidRule) {
		t.Fatalf("expected ErrInvalidRule, got %v", err)
	}

	bad = NewConfig()
	bad.Boundary = "sphere"
	if err := bad.Validate(); !errors.Is(err, rulelife.ErrUnknownBoundary) {
		t.Fatalf("expected ErrUnknownBoundary, got %v", err)
	}

	bad = NewConfig()
	bad.Density = "0"
	if err := bad.Validate(); !errors.Is(err, rulelife.ErrInvalidDensity) {
		t.Fatalf("expected ErrInvalidDensity, got %v", err)
	}
}
