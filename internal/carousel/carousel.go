// Package carousel auto-advances the video blog slideshow.
package carousel

import (
	"context"
	"time"
)

// DefaultInterval is how long each slide stays up.
const DefaultInterval = time.Second

// Next returns the slide after i in a ring of n slides.
func Next(i, n int) int {
	if n <= 0 {
		return 0
	}
	return (i + 1) % n
}

// Run emits the index of the visible slide, starting at 0, and advances every
// interval until ctx is done or emit fails. It returns immediately for n == 0.
func Run(ctx context.Context, n int, interval time.Duration, emit func(int) error) error {
	if n <= 0 {
		return nil
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	i := 0
	if err := emit(i); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			i = Next(i, n)
			if err := emit(i); err != nil {
				return err
			}
		}
	}
}
