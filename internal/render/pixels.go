package render

import (
	"image/color"
	"strings"

	"rulelife/internal/core"
)

// FillRGBA paints the size.W x size.H window of view into buf, four bytes per
// cell in row-major order. buf must hold at least 4*size.W*size.H bytes.
func FillRGBA(buf []byte, view core.CellView, size core.Size, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			base := (y*size.W + x) * 4
			if view.Alive(x, y) {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}

// Rows renders the window as text, one string per row.
func Rows(view core.CellView, size core.Size, live, dead rune) []string {
	rows := make([]string, size.H)
	var sb strings.Builder
	for y := 0; y < size.H; y++ {
		sb.Reset()
		for x := 0; x < size.W; x++ {
			if view.Alive(x, y) {
				sb.WriteRune(live)
			} else {
				sb.WriteRune(dead)
			}
		}
		rows[y] = sb.String()
	}
	return rows
}
