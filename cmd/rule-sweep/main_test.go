package main

import (
	"math/big"
	"testing"

	"rulelife/internal/rule"
	"rulelife/internal/sims/rulelife"
)

func TestRunScenarioVerify(t *testing.T) {
	base := rulelife.DefaultConfig()
	base.Width = 24
	base.Height = 16
	base.Boundary = rulelife.Toroidal
	base.Density = 0.3

	for _, r := range []*big.Int{rule.StandardLife(), big.NewInt(1802)} {
		res := runScenario(base, scenario{rule: r, seed: 4}, 20, true)
		if res.err != nil {
			t.Fatal(res.err)
		}
		if res.diverged != 0 {
			t.Fatalf("rule %s diverged at generation %d", r, res.diverged)
		}
		if res.peakPop < res.finalPop {
			t.Fatalf("peak %d below final %d", res.peakPop, res.finalPop)
		}
	}
}

func TestRunScenarioSettles(t *testing.T) {
	base := rulelife.DefaultConfig()
	base.Width = 10
	base.Height = 10
	base.Density = 1
	res := runScenario(base, scenario{rule: big.NewInt(0), seed: 1}, 5, false)
	if res.finalPop != 0 {
		t.Fatalf("rule 0 left %d cells", res.finalPop)
	}
	if res.settledAt != 2 {
		t.Fatalf("settled at %d, expected 2", res.settledAt)
	}
}
