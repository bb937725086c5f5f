package physics

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned when a gravity mode name is not recognised.
var ErrUnknownMode = errors.New("unknown gravity mode")

// GravityMode selects how velocities are updated each tick.
type GravityMode uint8

const (
	// Uniform applies constant downward gravity, wall/floor bounce and pairwise collisions.
	Uniform GravityMode = iota
	// Radial applies mutual inverse-square attraction; collisions are not resolved.
	Radial
)

func (m GravityMode) String() string {
	switch m {
	case Uniform:
		return "uniform"
	case Radial:
		return "radial"
	default:
		return fmt.Sprintf("GravityMode(%d)", uint8(m))
	}
}

// ParseGravityMode accepts "uniform"/"linear" and "radial" (case-insensitive).
func ParseGravityMode(s string) (GravityMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "uniform", "linear":
		return Uniform, nil
	case "radial":
		return Radial, nil
	default:
		return Uniform, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m GravityMode) MarshalText() ([]byte, error) {
	switch m {
	case Uniform, Radial:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, uint8(m))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *GravityMode) UnmarshalText(text []byte) error {
	mode, err := ParseGravityMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
