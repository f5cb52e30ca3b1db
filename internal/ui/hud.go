//go:build ebiten

package ui

import (
	"image/color"
	"strings"

	"rulelife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 8
	hudLineHeight = 16
	hudGlyphWidth = 7
)

var (
	hudBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	hudHeading    = color.RGBA{R: 150, G: 190, B: 255, A: 255}
	hudText       = color.RGBA{R: 220, G: 220, B: 220, A: 255}
)

var hudHelp = []string{
	"KEYS",
	"space/a  run/pause",
	"n        step",
	"g        random fill",
	"s        refill same seed",
	"r        random rule",
	"l        life rule",
	"q        quit",
}

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim      core.Sim
	width    int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width}
}

// Update refreshes the cached parameter snapshot from the simulation.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
}

// Draw paints the HUD panel at offsetX, to the right of the grid.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(hudBackground)

	maxChars := (h.width - 2*hudPadding) / hudGlyphWidth
	y := hudPadding + hudLineHeight
	lines := append(h.snapshot.Lines(), "")
	lines = append(lines, hudHelp...)
	for _, line := range lines {
		if y > height {
			break
		}
		clr := hudText
		if line != "" && line == strings.ToUpper(line) && !strings.Contains(line, ":") {
			clr = hudHeading
		}
		text.Draw(h.panel, core.Abbreviate(line, maxChars), basicfont.Face7x13, hudPadding, y, clr)
		y += hudLineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
