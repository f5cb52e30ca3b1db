// Package term drives a rulelife World from a terminal: it draws the live
// cells with tcell and maps keys onto populate, step and rule swaps.
package term

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"rulelife/internal/core"
	"rulelife/internal/rule"
	"rulelife/internal/sims/rulelife"

	"github.com/gdamore/tcell/v2"
)

// Config holds the host-side settings. None of it reaches the engine except
// through PopulateRandom and SetRule.
type Config struct {
	Seed    int64
	Density float64
	// TPS is the auto-run speed in generations per second.
	TPS  int
	Live rune
}

// DefaultConfig returns the standard host configuration.
func DefaultConfig() Config {
	return Config{Seed: 42, Density: 1.0 / 30, TPS: 15, Live: '█'}
}

// Host owns the screen and the auto-run state for one World.
type Host struct {
	screen tcell.Screen
	world  *rulelife.World
	cfg    Config
	rng    *core.RNG
	pacer  *core.FixedStep

	auto    bool
	offsetX int
	offsetY int
	status  string

	liveStyle   tcell.Style
	statusStyle tcell.Style
}

// New builds a Host. The screen must already be initialised.
func New(screen tcell.Screen, world *rulelife.World, cfg Config) *Host {
	if cfg.Live == 0 {
		cfg.Live = DefaultConfig().Live
	}
	if cfg.TPS <= 0 {
		cfg.TPS = DefaultConfig().TPS
	}
	return &Host{
		screen:      screen,
		world:       world,
		cfg:         cfg,
		rng:         core.NewRNG(cfg.Seed),
		pacer:       core.NewFixedStep(cfg.TPS),
		liveStyle:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
		statusStyle: tcell.StyleDefault.Reverse(true),
	}
}

// Auto reports whether auto-run is on.
func (h *Host) Auto() bool { return h.auto }

// Generate repopulates the world at the configured density. Unbounded worlds
// are seeded inside the visible window.
func (h *Host) Generate() error {
	err := h.world.PopulateRandom(h.rng, h.cfg.Density)
	if errors.Is(err, rulelife.ErrBoundsRequired) {
		w, hh := h.screen.Size()
		view := core.Size{W: w, H: max(hh-1, 0)}
		err = h.world.PopulateRect(h.rng, h.cfg.Density, view)
		h.offsetX, h.offsetY = 0, 0
	}
	return err
}

// HandleEvent applies one terminal event and reports whether the host should
// keep running.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
	case *tcell.EventKey:
		return h.handleKey(ev)
	}
	return true
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		h.offsetX--
	case tcell.KeyRight:
		h.offsetX++
	case tcell.KeyUp:
		h.offsetY--
	case tcell.KeyDown:
		h.offsetY++
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'g':
			if err := h.Generate(); err != nil {
				h.status = err.Error()
			} else {
				h.status = ""
			}
		case 'n', ' ':
			h.world.Step()
		case 'a':
			h.auto = !h.auto
			h.pacer.Reset()
		case 'r':
			h.setRule(rule.Random(h.rng.Source()), "random rule")
		case 'l':
			h.setRule(rule.StandardLife(), "life")
		}
	}
	return true
}

func (h *Host) setRule(r *big.Int, label string) {
	if err := h.world.SetRule(r); err != nil {
		h.status = err.Error()
		return
	}
	h.status = label
}

// Tick advances the world when auto-run is on and a step is due. It reports
// whether the world changed.
func (h *Host) Tick() bool {
	if !h.auto || !h.pacer.ShouldStep() {
		return false
	}
	h.world.Step()
	return true
}

// Draw renders the visible window and the status line.
func (h *Host) Draw() {
	h.screen.Clear()
	w, hh := h.screen.Size()
	rows := hh - 1
	for y := 0; y < rows; y++ {
		for x := 0; x < w; x++ {
			if h.world.Alive(x+h.offsetX, y+h.offsetY) {
				h.screen.SetContent(x, y, h.cfg.Live, nil, h.liveStyle)
			}
		}
	}
	if hh > 0 {
		h.drawStatus(hh-1, w)
	}
	h.screen.Show()
}

func (h *Host) drawStatus(y, width int) {
	run := "paused"
	if h.auto {
		run = "running"
	}
	line := fmt.Sprintf(" gen %d  pop %d  %s  %s  rule %s  %s  [g]en [n]ext [a]uto [r]andom [l]ife [q]uit",
		h.world.Generation(), h.world.Population(), h.world.Boundary(), run,
		core.Abbreviate(h.world.Rule().String(), 15), h.status)
	x := 0
	for _, r := range line {
		if x >= width {
			break
		}
		h.screen.SetContent(x, y, r, nil, h.statusStyle)
		x++
	}
	for ; x < width; x++ {
		h.screen.SetContent(x, y, ' ', nil, h.statusStyle)
	}
}

// Run processes events and auto-run ticks until the user quits or ctx is
// cancelled.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	go func() {
		defer close(events)
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	frame := time.NewTicker(time.Second / 60)
	defer frame.Stop()

	h.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !h.HandleEvent(ev) {
				return nil
			}
			h.Draw()
		case <-frame.C:
			if h.Tick() {
				h.Draw()
			}
		}
	}
}
