package cycler

import (
	"context"
	"time"
)

// Frame is what a Runner hands to its consumer after every tick.
type Frame struct {
	Text  string `json:"text"`
	Index int    `json:"index"`
	Mode  string `json:"mode"`
}

func frameOf(s State) Frame {
	return Frame{Text: s.Text(), Index: s.Index, Mode: s.Mode.String()}
}

// Runner drives Advance on real timers.
type Runner struct {
	items []string
	cfg   Config
}

// NewRunner validates items and returns a Runner ready to Run.
func NewRunner(items []string, cfg Config) (*Runner, error) {
	st, err := New(items)
	if err != nil {
		return nil, err
	}
	return &Runner{items: st.Items, cfg: cfg.Normalize()}, nil
}

// Run emits the initial frame and then one frame per tick until ctx is done,
// emit returns an error, or the loop holds forever. The pending timer is
// stopped before Run returns, so emit is never called afterwards.
func (r *Runner) Run(ctx context.Context, emit func(Frame) error) error {
	st, _ := New(r.items)
	if err := emit(frameOf(st)); err != nil {
		return err
	}

	timer := time.NewTimer(r.cfg.TypeDelay)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		step := Advance(st, r.cfg)
		changed := step.State.Length != st.Length || step.State.Index != st.Index
		st = step.State
		if changed {
			if err := emit(frameOf(st)); err != nil {
				return err
			}
		}
		if step.Done {
			return nil
		}
		timer.Reset(step.Delay)
	}
}

// Preview runs the loop without sleeping and returns the first n frames
// whose visible text differs from the previous one.
func Preview(items []string, cfg Config, n int) ([]Frame, error) {
	st, err := New(items)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return []Frame{}, nil
	}
	frames := []Frame{frameOf(st)}
	// Every item, even an empty one, changes Index within three ticks.
	maxIdle := 3*len(st.Items) + 3
	idle := 0
	for len(frames) < n && idle <= maxIdle {
		step := Advance(st, cfg)
		if step.State.Length != st.Length || step.State.Index != st.Index {
			frames = append(frames, frameOf(step.State))
			idle = 0
		} else {
			idle++
		}
		st = step.State
		if step.Done {
			break
		}
	}
	return frames, nil
}
