package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/neon-atom/engine"
	"github.com/lixenwraith/neon-atom/parameter"
)

// Chimer turns revolution events into chimes, one pitch per orbit
type Chimer struct {
	mu       sync.Mutex
	player   Player
	rate     beep.SampleRate
	freqs    []float64
	volume   float64
	minGap   time.Duration
	provider engine.TimeProvider
	last     map[int]time.Time
	played   int
}

// NewChimer creates a chimer feeding player; a nil provider uses real time
func NewChimer(player Player, rate beep.SampleRate, freqs []float64, volume float64, provider engine.TimeProvider) *Chimer {
	if provider == nil {
		provider = engine.NewMonotonicTimeProvider()
	}
	if len(freqs) == 0 {
		freqs = parameter.ChimeFrequencies[:]
	}
	return &Chimer{
		player:   player,
		rate:     rate,
		freqs:    append([]float64(nil), freqs...),
		volume:   volume,
		minGap:   parameter.ChimeMinGap,
		provider: provider,
		last:     make(map[int]time.Time),
	}
}

// Frequency returns the pitch assigned to orbit
func (c *Chimer) Frequency(orbit int) float64 {
	if orbit < 0 {
		orbit = -orbit
	}
	return c.freqs[orbit%len(c.freqs)]
}

// Played returns the number of chimes sent to the player
func (c *Chimer) Played() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.played
}

// Revolution matches the scene revolution callback
func (c *Chimer) Revolution(orbit, revolutions int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.provider.Now()
	if prev, ok := c.last[orbit]; ok && now.Sub(prev) < c.minGap {
		return
	}
	c.last[orbit] = now

	st, err := NewChime(c.Frequency(orbit), c.volume, c.rate)
	if err != nil {
		log.Printf("audio: orbit %d revolution %d: %v", orbit, revolutions, err)
		return
	}
	c.player.Play(st)
	c.played++
}
