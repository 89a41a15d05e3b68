package engine

import (
	"sync"
	"time"
)

// Clock yields animation time in seconds since the animation started
type Clock interface {
	Elapsed() float64
}

// MonotonicClock follows real time minus pauses and absorbed stalls
// Safe for concurrent use: presenters pause from their event goroutine
type MonotonicClock struct {
	mu       sync.RWMutex
	provider TimeProvider

	start      time.Time
	paused     bool
	pauseStart time.Time
	skipped    time.Duration // cumulative pause and stall time
}

// NewMonotonicClock creates a running clock starting now
// A nil provider uses the real monotonic clock
func NewMonotonicClock(provider TimeProvider) *MonotonicClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &MonotonicClock{provider: provider, start: provider.Now()}
}

// Elapsed returns animation seconds, frozen while paused
func (c *MonotonicClock) Elapsed() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	now := c.provider.Now()
	if c.paused {
		now = c.pauseStart
	}
	return (now.Sub(c.start) - c.skipped).Seconds()
}

// Pause freezes animation time, no-op if already paused
func (c *MonotonicClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		return
	}
	c.paused = true
	c.pauseStart = c.provider.Now()
}

// Resume continues animation time from where it froze
func (c *MonotonicClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.paused {
		return
	}
	c.skipped += c.provider.Now().Sub(c.pauseStart)
	c.paused = false
	c.pauseStart = time.Time{}
}

// IsPaused reports the pause state
func (c *MonotonicClock) IsPaused() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.paused
}

// Absorb drops d of real time from the animation, used to hide stalls
// Ignored while paused, the pause already hides it
func (c *MonotonicClock) Absorb(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		return
	}
	c.skipped += d
}

// Reset restarts animation time at zero, keeping the pause state
func (c *MonotonicClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.start = c.provider.Now()
	c.skipped = 0
	if c.paused {
		c.pauseStart = c.start
	}
}

// StepClock advances a fixed step per frame, independent of real time
// Offline capture and tests use it for reproducible frames
type StepClock struct {
	frame int
	step  float64
}

// NewStepClock creates a clock ticking at fps frames per second, minimum 1
func NewStepClock(fps int) *StepClock {
	return &StepClock{step: 1 / float64(max(fps, 1))}
}

// Elapsed returns frame × step seconds
func (c *StepClock) Elapsed() float64 {
	return float64(c.frame) * c.step
}

// Step advances one frame
func (c *StepClock) Step() {
	c.frame++
}

// Frame returns the current frame index
func (c *StepClock) Frame() int {
	return c.frame
}

// Reset returns to frame zero
func (c *StepClock) Reset() {
	c.frame = 0
}
