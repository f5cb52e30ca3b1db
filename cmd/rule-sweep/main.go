package main

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"runtime"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"rulelife/internal/core"
	"rulelife/internal/rule"
	"rulelife/internal/sims/rulelife"
)

type scenario struct {
	rule *big.Int
	seed int64
}

type scenarioResult struct {
	scenario
	finalPop  int
	peakPop   int
	settledAt int // generation at which the grid went extinct or static, 0 if never
	diverged  int // first generation where dense and sparse scans disagreed, 0 if never
	err       error
}

func main() {
	steps := flag.Int("steps", 200, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 96, "grid width")
	height := flag.Int("h", 64, "grid height")
	boundary := flag.String("boundary", "toroidal", "clipped, toroidal or unbounded")
	density := flag.String("density", "1/4", "initial population density")
	rulesFlag := flag.String("rules", "", "comma-separated decimal rules (default: Life)")
	randomRules := flag.Int("random", 0, "additional random rules to sweep")
	seeds := flag.Int("seeds", 3, "seeds per rule")
	seed := flag.Int64("seed", 1337, "base seed")
	verify := flag.Bool("verify", false, "step dense and sparse scans in lockstep and report divergence")
	flag.Parse()

	b, err := rulelife.ParseBoundary(*boundary)
	if err != nil {
		log.Fatal(err)
	}
	d, err := rulelife.ParseDensity(*density)
	if err != nil {
		log.Fatal(err)
	}

	var rules []*big.Int
	if *rulesFlag == "" {
		rules = append(rules, rule.StandardLife())
	}
	for _, s := range strings.Split(*rulesFlag, ",") {
		if strings.TrimSpace(s) == "" {
			continue
		}
		r, err := rule.Parse(s)
		if err != nil {
			log.Fatal(err)
		}
		rules = append(rules, r)
	}
	rng := core.NewRNG(*seed)
	for i := 0; i < *randomRules; i++ {
		rules = append(rules, rule.Random(rng.Source()))
	}

	base := rulelife.DefaultConfig()
	base.Width = *width
	base.Height = *height
	base.Boundary = b
	base.Density = d

	var sets []scenario
	for _, r := range rules {
		for i := 0; i < *seeds; i++ {
			sets = append(sets, scenario{rule: r, seed: *seed + int64(i)})
		}
	}

	fmt.Printf("Sweeping %d scenarios (%d rules, %d workers, %d steps, %s %dx%d)\n",
		len(sets), len(rules), *workers, *steps, b, *width, *height)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(base, sc, *steps, *verify)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		if res.err != nil {
			log.Printf("rule %s seed %d: %v", abbrev(res.rule), res.seed, res.err)
			continue
		}
		if res.diverged > 0 {
			fmt.Printf("DIVERGED: rule %s seed %d at generation %d\n", abbrev(res.rule), res.seed, res.diverged)
		}
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].finalPop != all[j].finalPop {
			return all[i].finalPop > all[j].finalPop
		}
		return all[i].peakPop > all[j].peakPop
	})
	elapsed := time.Since(start)

	fmt.Printf("\nResults (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i, res := range all {
		settled := "active"
		if res.settledAt > 0 {
			settled = fmt.Sprintf("settled@%d", res.settledAt)
		}
		fmt.Printf("%3d) final=%d peak=%d %s seed=%d rule=%s\n",
			i+1, res.finalPop, res.peakPop, settled, res.seed, abbrev(res.rule))
	}
}

func runScenario(base rulelife.Config, sc scenario, steps int, verify bool) scenarioResult {
	res := scenarioResult{scenario: sc}

	cfg := base
	cfg.Rule = sc.rule
	cfg.Strategy = rulelife.Auto
	if verify {
		cfg.Strategy = rulelife.Dense
	}
	world, err := rulelife.NewWithConfig(cfg)
	if err != nil {
		res.err = err
		return res
	}
	world.Reset(sc.seed)

	var shadow *rulelife.World
	if verify {
		cfg.Strategy = rulelife.Sparse
		shadow, err = rulelife.NewWithConfig(cfg)
		if err != nil {
			res.err = err
			return res
		}
		shadow.Load(world.LiveCells())
	}

	res.peakPop = world.Population()
	prev := world.LiveCells()
	for step := 1; step <= steps; step++ {
		world.Step()
		cur := world.LiveCells()
		if shadow != nil {
			shadow.Step()
			if res.diverged == 0 && !slices.Equal(cur, shadow.LiveCells()) {
				res.diverged = step
			}
		}
		if len(cur) > res.peakPop {
			res.peakPop = len(cur)
		}
		if res.settledAt == 0 && slices.Equal(prev, cur) {
			res.settledAt = step
		}
		prev = cur
	}
	res.finalPop = world.Population()
	return res
}

func abbrev(r *big.Int) string {
	return core.Abbreviate(r.String(), 24)
}
