package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/neon-atom/parameter"
)

// Player accepts finite streamers for immediate playback
type Player interface {
	Play(s beep.Streamer)
}

// Speaker plays through the system audio device via a shared mixer
type Speaker struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	mixer  *beep.Mixer
	opened bool
}

// OpenSpeaker initializes the device at the default rate
func OpenSpeaker() (*Speaker, error) {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return nil, errors.Wrap(err, "init speaker")
	}
	s := &Speaker{rate: rate, mixer: &beep.Mixer{}, opened: true}
	speaker.Play(s.mixer)
	return s, nil
}

// SampleRate returns the device rate
func (s *Speaker) SampleRate() beep.SampleRate {
	return s.rate
}

// Play adds st to the mixer; drained streamers are removed by the mixer
func (s *Speaker) Play(st beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.opened {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops playback and releases the device
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.opened {
		return
	}
	s.opened = false
	speaker.Clear()
	speaker.Close()
}
