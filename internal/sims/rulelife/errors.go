package rulelife

import (
	"errors"
	"fmt"
)

var (
	// ErrBoundsRequired is returned by operations that need a finite domain
	// when the world is unbounded.
	ErrBoundsRequired = errors.New("operation requires a bounded grid")
	// ErrMalformedLiteral is returned by strict literal parsing.
	ErrMalformedLiteral = errors.New("malformed grid literal")
	// ErrInvalidDensity is returned for population densities outside (0, 1].
	ErrInvalidDensity = errors.New("density must be in (0, 1]")
	// ErrUnknownBoundary is returned when a boundary name cannot be parsed.
	ErrUnknownBoundary = errors.New("unknown boundary policy")
)

// LiteralError pinpoints the offending glyph of a rejected literal.
type LiteralError struct {
	Row, Col int
	Glyph    rune
	Msg      string
}

func (e *LiteralError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: row %d col %d (%q): %s", ErrMalformedLiteral, e.Row, e.Col, e.Glyph, e.Msg)
}

func (e *LiteralError) Unwrap() error { return ErrMalformedLiteral }
