//go:build ebiten

package render

import (
	"image/color"

	"rulelife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a cell view into a single RGBA image.
type GridPainter struct {
	size core.Size
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of the given size.
func NewGridPainter(size core.Size) *GridPainter {
	gp := &GridPainter{size: size, buf: make([]byte, 4*size.Area())}
	gp.img = ebiten.NewImage(size.W, size.H)
	return gp
}

// Blit paints view into the painter image and draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, view core.CellView, on, off color.Color, scale int) {
	FillRGBA(gp.buf, view, gp.size, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() core.Size { return gp.size }
