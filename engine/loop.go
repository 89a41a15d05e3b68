package engine

import (
	"context"
	"time"
)

// stallAbsorber is a clock that can hide real-time gaps
type stallAbsorber interface {
	Absorb(d time.Duration)
}

// Loop drives a frame callback at a fixed rate until cancelled or the callback fails
type Loop struct {
	Clock    Clock
	Interval time.Duration
	// MaxDelta caps the animation step after a stall when the clock can absorb it, 0 disables
	MaxDelta time.Duration
	Frame    func(elapsed float64) error
	// Provider measures real frame gaps, nil uses the real clock
	Provider TimeProvider
}

// Run blocks until ctx is done (returns nil) or Frame returns an error
func (l *Loop) Run(ctx context.Context) error {
	provider := l.Provider
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	interval := l.Interval
	if interval <= 0 {
		interval = time.Second / 30
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := provider.Now()
	if err := l.Frame(l.Clock.Elapsed()); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			now := provider.Now()
			l.absorb(now.Sub(last))
			last = now
			if err := l.Frame(l.Clock.Elapsed()); err != nil {
				return err
			}
		}
	}
}

// absorb hides the part of a frame gap beyond MaxDelta
func (l *Loop) absorb(gap time.Duration) {
	if l.MaxDelta <= 0 || gap <= l.MaxDelta {
		return
	}
	if a, ok := l.Clock.(stallAbsorber); ok {
		a.Absorb(gap - l.MaxDelta)
	}
}
