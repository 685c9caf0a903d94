// Package cycler implements the typewriter effect: a character-by-character
// reveal of one string, or a round-robin over several, with a backspace-style
// erase between items.
package cycler

import (
	"errors"
	"time"
)

// ErrNoItems is returned when a cycler is asked to start with nothing to type.
var ErrNoItems = errors.New("cycler: no items to display")

// Mode is the phase of the typewriter loop.
type Mode int

const (
	Typing Mode = iota
	Pausing
	Deleting
)

func (m Mode) String() string {
	switch m {
	case Typing:
		return "typing"
	case Pausing:
		return "pausing"
	case Deleting:
		return "deleting"
	default:
		return "unknown"
	}
}

// Defaults match the section headings of the site.
const (
	DefaultTypeDelay  = 120 * time.Millisecond
	DefaultEraseDelay = 60 * time.Millisecond
	DefaultHoldDelay  = time.Second
)

// Config holds the per-instance timing options.
type Config struct {
	TypeDelay  time.Duration `json:"type_delay"`
	EraseDelay time.Duration `json:"erase_delay"`
	HoldDelay  time.Duration `json:"hold_delay"`
	// GraceDelay is waited after an item is fully erased and before the next
	// one starts. Zero means TypeDelay.
	GraceDelay time.Duration `json:"grace_delay"`
	// Hold keeps a single item on screen forever instead of erasing and
	// retyping it. It has no effect when there is more than one item.
	Hold bool `json:"hold"`
}

// DefaultConfig returns the timings used by the section headings.
func DefaultConfig() Config {
	return Config{
		TypeDelay:  DefaultTypeDelay,
		EraseDelay: DefaultEraseDelay,
		HoldDelay:  DefaultHoldDelay,
	}
}

// Normalize clamps negative delays to zero and fills in GraceDelay.
func (c Config) Normalize() Config {
	c.TypeDelay = clamp(c.TypeDelay)
	c.EraseDelay = clamp(c.EraseDelay)
	c.HoldDelay = clamp(c.HoldDelay)
	c.GraceDelay = clamp(c.GraceDelay)
	if c.GraceDelay == 0 {
		c.GraceDelay = c.TypeDelay
	}
	return c
}

func clamp(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}

// State is the full typewriter state. The zero Mode is Typing.
type State struct {
	Items  []string `json:"items"`
	Index  int      `json:"index"`
	Length int      `json:"length"`
	Mode   Mode     `json:"mode"`
}

// New returns the initial state for items.
func New(items []string) (State, error) {
	if len(items) == 0 {
		return State{}, ErrNoItems
	}
	cp := make([]string, len(items))
	copy(cp, items)
	return State{Items: cp}, nil
}

// Reset rewinds s to the first item with nothing displayed.
func (s State) Reset() State {
	return State{Items: s.Items}
}

// Current returns the item being typed or erased, or "" when there are none.
func (s State) Current() string {
	if len(s.Items) == 0 {
		return ""
	}
	return s.Items[s.Index%len(s.Items)]
}

// Text is the visible prefix of the current item.
func (s State) Text() string {
	r := []rune(s.Current())
	n := s.Length
	if n > len(r) {
		n = len(r)
	}
	if n < 0 {
		n = 0
	}
	return string(r[:n])
}

// Step is the result of one tick: the next state and how long to wait before
// the following tick. Done means no further ticks are needed.
type Step struct {
	State State
	Delay time.Duration
	Done  bool
}

// Advance performs one tick of the typewriter loop.
func Advance(s State, cfg Config) Step {
	cfg = cfg.Normalize()
	if len(s.Items) == 0 {
		return Step{State: s, Done: true}
	}

	size := len([]rune(s.Current()))
	switch s.Mode {
	case Typing:
		if s.Length < size {
			s.Length++
			return Step{State: s, Delay: cfg.TypeDelay}
		}
		s.Length = size
		s.Mode = Pausing
		return Step{State: s, Delay: cfg.HoldDelay}

	case Pausing:
		if len(s.Items) == 1 && cfg.Hold {
			return Step{State: s, Done: true}
		}
		s.Mode = Deleting
		return Step{State: s, Delay: cfg.EraseDelay}

	case Deleting:
		if s.Length > 0 {
			s.Length--
			return Step{State: s, Delay: cfg.EraseDelay}
		}
		s.Index = (s.Index + 1) % len(s.Items)
		s.Mode = Typing
		return Step{State: s, Delay: cfg.GraceDelay}
	}

	// Unknown mode: restart the current item.
	s.Mode = Typing
	s.Length = 0
	return Step{State: s, Delay: cfg.TypeDelay}
}
