package view

import (
	"strings"

	"github.com/matzehuels/gatexray/pkg/errors"
)

// Mode selects how an operator is drawn.
type Mode int

const (
	// Compact draws the operator's own symbol.
	Compact Mode = iota
	// Exploded draws the internal component grid of a custom operator.
	Exploded
)

// Modes lists the valid modes in toggle order.
var Modes = []Mode{Compact, Exploded}

func (m Mode) String() string {
	switch m {
	case Compact:
		return "compact"
	case Exploded:
		return "xray"
	default:
		return "unknown"
	}
}

// Next returns the other mode.
func (m Mode) Next() Mode {
	if m == Exploded {
		return Compact
	}
	return Exploded
}

// ParseMode accepts "compact", "xray" and the alias "exploded".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "compact":
		return Compact, nil
	case "xray", "x-ray", "exploded":
		return Exploded, nil
	}
	return Compact, errors.New(errors.ErrCodeInvalidMode, "unknown mode %q (want compact or xray)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	parsed, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
