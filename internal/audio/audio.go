// Package audio plays synthesized sound effects for game events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/starwave/internal/event"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes one short effect per game event into the speaker. Until Init
// succeeds every event is ignored, so a machine without audio still plays.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a silent player. Call Init to open the speaker.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the default audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// OnEvent implements event.Listener.
func (p *Player) OnEvent(e event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := Effect(e.Type, sampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences all playing effects.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Effect returns the sound for an event type, or nil for silent events.
func Effect(t event.Type, rate beep.SampleRate) beep.Streamer {
	switch t {
	case event.Fired:
		return shaped(newSweep(1200, 500, 70*time.Millisecond, waveSquare, rate), 70*time.Millisecond, 0.15, rate)
	case event.EnemyFired:
		return shaped(newSweep(320, 180, 90*time.Millisecond, waveSaw, rate), 90*time.Millisecond, 0.1, rate)
	case event.EnemyHit:
		return shaped(newSweep(200, 200, 50*time.Millisecond, waveSquare, rate), 50*time.Millisecond, 0.2, rate)
	case event.EnemyDestroyed:
		return shaped(newSweep(0, 0, 160*time.Millisecond, waveNoise, rate), 160*time.Millisecond, 0.25, rate)
	case event.WaveStarted:
		return beep.Seq(
			shaped(newSweep(523, 523, 90*time.Millisecond, waveSine, rate), 90*time.Millisecond, 0.2, rate),
			shaped(newSweep(784, 784, 140*time.Millisecond, waveSine, rate), 140*time.Millisecond, 0.2, rate),
		)
	case event.Defeated:
		return shaped(newSweep(440, 55, 700*time.Millisecond, waveSaw, rate), 700*time.Millisecond, 0.3, rate)
	default:
		return nil
	}
}

var _ event.Listener = (*Player)(nil)
