package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"rulelife/internal/app"
	"rulelife/internal/sims/rulelife"
	"rulelife/internal/term"

	"github.com/gdamore/tcell/v2"
)

const usage = `usage: rulelife [flags] [rule]

The rule is a decimal integer of at most 512 bits. Bit i gives the next
state of a cell whose 3x3 neighbourhood fingerprint is i, where neighbour
(x+dx-1, y+dy-1) contributes bit dx+3*dy. Without a rule, Conway's Life
is used.

Keys: g fill randomly, n or space step, a auto-run, r random rule,
l Life, arrows pan, q quit.

`

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()
	switch flag.NArg() {
	case 0:
	case 1:
		cfg.Rule = flag.Arg(0)
	default:
		flag.Usage()
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	world, err := rulelife.NewWithConfig(rulelife.FromMap(cfg.SimConfig()))
	if err != nil {
		log.Fatal(err)
	}
	density, _ := rulelife.ParseDensity(cfg.Density)
	world.Reset(cfg.Seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	host := term.New(screen, world, term.Config{Seed: cfg.Seed, Density: density, TPS: cfg.TPS})
	err = host.Run(ctx)
	stop()
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
