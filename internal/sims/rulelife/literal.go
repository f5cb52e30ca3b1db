package rulelife

import (
	"strings"

	"rulelife/internal/core"
)

// LiteralOptions tunes ParseLiteral.
type LiteralOptions struct {
	// Marker is the live-cell glyph; zero means '#'.
	Marker rune
	// Strict rejects any glyph other than Marker, '.' and ' '.
	Strict bool
}

// ParseLiteral reads rows of text into live cells: Marker at column x of row
// y is a live cell at (x, y). Columns count runes, not bytes.
func ParseLiteral(rows []string, opts LiteralOptions) ([]core.Coord, error) {
	marker := literalMarker(opts)
	var cells []core.Coord
	for y, row := range rows {
		x := 0
		for _, glyph := range row {
			switch {
			case glyph == marker:
				cells = append(cells, core.Coord{X: x, Y: y})
			case opts.Strict && glyph != '.' && glyph != ' ':
				return nil, &LiteralError{Row: y, Col: x, Glyph: glyph, Msg: "unexpected glyph"}
			}
			x++
		}
	}
	return cells, nil
}

// FromLiteral builds a world from cfg and loads the literal into it. In
// strict mode a live cell outside a bounded domain is an error; otherwise
// such cells are dropped.
func FromLiteral(cfg Config, rows []string, opts LiteralOptions) (*World, error) {
	cells, err := ParseLiteral(rows, opts)
	if err != nil {
		return nil, err
	}
	w, err := NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	w.Clear()
	for _, c := range cells {
		if !w.cur.Insert(c) && opts.Strict {
			return nil, &LiteralError{Row: c.Y, Col: c.X, Glyph: literalMarker(opts), Msg: "live cell outside the grid"}
		}
	}
	return w, nil
}

// Literal splits a multi-line string into rows for ParseLiteral. A single
// leading newline is dropped so raw string literals can start on their own
// line.
func Literal(s string) []string {
	s = strings.TrimPrefix(s, "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

func literalMarker(opts LiteralOptions) rune {
	if opts.Marker == 0 {
		return '#'
	}
	return opts.Marker
}
