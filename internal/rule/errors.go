package rule

import (
	"errors"
	"fmt"
)

// ErrInvalidRule is returned for rule integers that cannot be decoded into a
// Table: negative values, malformed input, or values wider than Size bits.
var ErrInvalidRule = errors.New("invalid rule")

// Error carries the reason a rule was rejected.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *Error) Unwrap() error { return e.Kind }

func invalidf(format string, args ...any) error {
	return &Error{Kind: ErrInvalidRule, Msg: fmt.Sprintf(format, args...)}
}
