package bloom

import (
	"errors"
	"fmt"
)

// Point is a 2D position in canvas pixels. The origin is the top-left corner,
// with Y increasing downward.
type Point struct {
	X, Y float64
}

// Segment is a straight line between two points.
type Segment struct {
	A, B Point
}

// Color is an 8-bit RGB triple as handed to the renderer.
type Color struct {
	R, G, B uint8
}

// ColorWhite is the fallback for unparsable palette entries.
var ColorWhite = Color{255, 255, 255}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Mode selects the spawn rule and per-frame force or growth rule.
type Mode uint8

const (
	ModeVine          Mode = iota // growing polyline
	ModeGravity                   // particles arcing up then falling
	ModeBounce                    // particles reflecting off the canvas edges
	ModeBurst                     // short-lived radial flash
	ModeLightning                 // jagged branching bolt
	ModeConstellation             // slow, long-lived drifting stars
	ModeVortex                    // particles spiralling into the spawn point
)

// NumModes is the number of valid modes. Valid values are 0 to NumModes-1.
const NumModes = 7

var modeNames = [NumModes]string{
	"vine", "gravity", "bounce", "burst", "lightning", "constellation", "vortex",
}

// defaultCounts mirror the per-gesture counts of the touch front end.
var defaultCounts = [NumModes]int{1, 5, 3, 12, 1, 5, 8}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m < NumModes
}

func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
	return modeNames[m]
}

// DefaultCount returns how many entities a single brush stroke of this mode
// usually requests.
func (m Mode) DefaultCount() int {
	if !m.Valid() {
		return 0
	}
	return defaultCounts[m]
}

// Kind returns the entity kind this mode produces.
func (m Mode) Kind() Kind {
	switch m {
	case ModeVine:
		return KindVine
	case ModeLightning:
		return KindLightning
	default:
		return KindParticle
	}
}

// MarshalText encodes the mode as its lower-case name.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("bloom: marshal mode %d: %w", uint8(m), ErrInvalidMode)
	}
	return []byte(modeNames[m]), nil
}

// UnmarshalText decodes a lower-case mode name.
func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// ParseMode looks a mode up by its lower-case name.
func ParseMode(name string) (Mode, error) {
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("bloom: unknown mode %q: %w", name, ErrInvalidMode)
}

// Kind distinguishes the three entity collections owned by an Engine.
type Kind uint8

const (
	KindParticle  Kind = iota // free point mass
	KindVine                  // growing polyline
	KindLightning             // immutable segment set with decaying life
)

func (k Kind) String() string {
	switch k {
	case KindParticle:
		return "particle"
	case KindVine:
		return "vine"
	case KindLightning:
		return "lightning"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

var (
	// ErrNullPointer is returned by every mutating method called on a nil Engine.
	ErrNullPointer = errors.New("bloom: nil engine")
	// ErrInvalidMode is returned when a mode value is outside 0-6.
	ErrInvalidMode = errors.New("bloom: invalid mode")
	// ErrOutOfMemory is returned when a spawn asks for more entities than
	// Config.MaxSpawn allows.
	ErrOutOfMemory = errors.New("bloom: out of memory")
)

// Status is the numeric result code used across language boundaries.
type Status uint8

const (
	StatusSuccess     Status = iota // operation completed
	StatusNullPointer               // engine handle was nil or invalid
	StatusInvalidMode               // spawn mode outside the enumeration
	StatusOutOfMemory               // entity allocation refused
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusNullPointer:
		return "NullPointer"
	case StatusInvalidMode:
		return "InvalidMode"
	case StatusOutOfMemory:
		return "OutOfMemory"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// StatusOf maps an error returned by this package to its Status code.
// Unknown non-nil errors map to StatusNullPointer.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, ErrInvalidMode):
		return StatusInvalidMode
	case errors.Is(err, ErrOutOfMemory):
		return StatusOutOfMemory
	default:
		return StatusNullPointer
	}
}
