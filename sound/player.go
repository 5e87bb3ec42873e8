// Package sound plays short synthesized cues for board events.
package sound

import (
	"sync"
	"time"

	"github.com/Valerolactone/Tetris/tetris"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes cues into a single speaker stream. Handle is a no-op until
// Init succeeded, so a game without an audio device stays silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// New creates a player with a volume in [0, 1].
func New(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the speaker and starts streaming the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Handle queues the cue for e. It has the signature of a session listener.
func (p *Player) Handle(e tetris.Event) {
	tones := Cue(e)
	if len(tones) == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	streamer, err := Streamer(sampleRate, p.volume, tones...)
	if err != nil {
		return
	}

	speaker.Lock()
	if e.Kind == tetris.EventGameOver {
		p.mixer.Clear()
	}
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// Close stops every cue and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
