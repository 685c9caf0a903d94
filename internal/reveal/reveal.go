// Package reveal gates page regions on viewport visibility and drives the
// numeric ramp behind the skill progress bars.
package reveal

import (
	"context"
	"errors"
	"math"
	"time"
)

// ErrUnobservable is returned by observers that cannot watch a region.
var ErrUnobservable = errors.New("reveal: region cannot be observed")

// Mode selects what happens when a visible region leaves the viewport.
type Mode int

const (
	// Once keeps a region visible after its first reveal.
	Once Mode = iota
	// Retrigger hides the region again on exit and replays the ramp on re-entry.
	Retrigger
)

// DefaultFrameInterval approximates a 60Hz display refresh.
const DefaultFrameInterval = 16 * time.Millisecond

// Ramp is a linear interpolation from 0 to Target over Duration.
type Ramp struct {
	Target   int
	Duration time.Duration
}

// Value is floor(min(1, elapsed/Duration) * Target).
func (r Ramp) Value(elapsed time.Duration) int {
	if r.Target <= 0 {
		return 0
	}
	if r.Duration <= 0 || elapsed >= r.Duration {
		return r.Target
	}
	if elapsed <= 0 {
		return 0
	}
	progress := float64(elapsed) / float64(r.Duration)
	return int(math.Floor(progress * float64(r.Target)))
}

// Finished reports whether the ramp has reached its target at elapsed.
func (r Ramp) Finished(elapsed time.Duration) bool {
	return r.Duration <= 0 || elapsed >= r.Duration
}

// State is the visible flag and the current ramp value of one region.
type State struct {
	Visible bool `json:"visible"`
	Value   int  `json:"value"`
}

// Gate is the Hidden/Visible state machine for one region.
type Gate struct {
	mode    Mode
	visible bool
	latched bool
}

// NewGate returns a hidden gate.
func NewGate(mode Mode) *Gate {
	return &Gate{mode: mode}
}

// Visible reports the current state.
func (g *Gate) Visible() bool {
	return g.visible
}

// Enter handles an intersection-enter event and reports whether the gate
// transitioned to Visible.
func (g *Gate) Enter() bool {
	if g.visible {
		return false
	}
	g.visible = true
	if g.mode == Once {
		g.latched = true
	}
	return true
}

// Exit handles an intersection-exit event and reports whether the gate
// transitioned to Hidden. A Once gate never hides again.
func (g *Gate) Exit() bool {
	if !g.visible || g.latched {
		return false
	}
	g.visible = false
	return true
}

// Observer is the viewport capability: a stream of visibility changes for a
// named region. The channel is closed when observation ends.
type Observer interface {
	Observe(ctx context.Context, region string) (<-chan bool, error)
}

// Options configures Run.
type Options struct {
	Mode          Mode
	Ramp          Ramp
	FrameInterval time.Duration
}

func (o Options) frameInterval() time.Duration {
	if o.FrameInterval <= 0 {
		return DefaultFrameInterval
	}
	return o.FrameInterval
}

// Run observes region and emits a State on every change until ctx is done or
// the observation stream ends. If the region cannot be observed the region is
// shown at its full ramp value instead. No emit happens after Run returns.
func Run(ctx context.Context, obs Observer, region string, opts Options, emit func(State) error) error {
	var (
		events <-chan bool
		err    = ErrUnobservable
	)
	if obs != nil {
		events, err = obs.Observe(ctx, region)
	}
	if err != nil {
		return emit(State{Visible: true, Value: opts.Ramp.Value(opts.Ramp.Duration)})
	}

	gate := NewGate(opts.Mode)
	interval := opts.frameInterval()

	var (
		ticker  *time.Ticker
		tick    <-chan time.Time
		started time.Time
		last    = -1
	)
	stopRamp := func() {
		if ticker != nil {
			ticker.Stop()
			ticker = nil
			tick = nil
		}
	}
	defer stopRamp()

	// publish sends the ramp value at now, skipping repeats.
	publish := func(now time.Time) error {
		v := 0
		if gate.Visible() {
			v = opts.Ramp.Value(now.Sub(started))
		}
		if v == last {
			return nil
		}
		last = v
		return emit(State{Visible: gate.Visible(), Value: v})
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case visible, ok := <-events:
			if !ok {
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if visible {
				if !gate.Enter() {
					continue
				}
				started = time.Now()
				last = -1
				if err := publish(started); err != nil {
					return err
				}
				if opts.Ramp.Finished(0) {
					continue
				}
				stopRamp()
				ticker = time.NewTicker(interval)
				tick = ticker.C
				continue
			}
			if !gate.Exit() {
				continue
			}
			stopRamp()
			last = -1
			if err := publish(time.Now()); err != nil {
				return err
			}

		case now := <-tick:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if err := publish(now); err != nil {
				return err
			}
			if opts.Ramp.Finished(now.Sub(started)) {
				stopRamp()
			}
		}
	}
}
