package sound

import (
	"fmt"
	"math"
	"time"

	"github.com/Valerolactone/Tetris/tetris"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Wave defines oscillator wave shapes.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
	WaveSaw
)

// Tone is one note of a cue.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Wave     Wave
}

// clearNotes climb a C major arpeggio, one note per removed row.
var clearNotes = []float64{523.25, 659.25, 783.99, 1046.50}

// Cue returns the notes played for an event, in order. Events without a
// sound return nil.
func Cue(e tetris.Event) []Tone {
	switch e.Kind {
	case tetris.EventMove:
		return []Tone{{Freq: 220, Duration: 25 * time.Millisecond, Wave: WaveSquare}}
	case tetris.EventRotate:
		return []Tone{{Freq: 330, Duration: 35 * time.Millisecond, Wave: WaveSquare}}
	case tetris.EventLock:
		return []Tone{{Freq: 110, Duration: 60 * time.Millisecond, Wave: WaveTriangle}}
	case tetris.EventClear:
		n := min(max(e.Lines, 1), len(clearNotes))
		tones := make([]Tone, n)
		for i := range n {
			tones[i] = Tone{Freq: clearNotes[i], Duration: 70 * time.Millisecond, Wave: WaveSine}
		}
		return tones
	case tetris.EventLevelUp:
		return []Tone{
			{Freq: 784, Duration: 90 * time.Millisecond, Wave: WaveSine},
			{Freq: 1568, Duration: 150 * time.Millisecond, Wave: WaveSine},
		}
	case tetris.EventGameOver:
		return []Tone{
			{Freq: 392, Duration: 200 * time.Millisecond, Wave: WaveSaw},
			{Freq: 294, Duration: 200 * time.Millisecond, Wave: WaveSaw},
			{Freq: 196, Duration: 400 * time.Millisecond, Wave: WaveSaw},
		}
	}
	return nil
}

// Streamer renders tones one after another at the given volume in [0, 1].
func Streamer(rate beep.SampleRate, volume float64, tones ...Tone) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(tones))
	for _, tone := range tones {
		osc, err := oscillator(rate, tone)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(rate.N(tone.Duration), osc))
	}
	return newVolume(beep.Seq(parts...), volume), nil
}

func oscillator(rate beep.SampleRate, tone Tone) (beep.Streamer, error) {
	var (
		osc beep.Streamer
		err error
	)
	switch tone.Wave {
	case WaveSine:
		osc, err = generators.SineTone(rate, tone.Freq)
	case WaveSquare:
		osc, err = generators.SquareTone(rate, tone.Freq)
	case WaveTriangle:
		osc, err = generators.TriangleTone(rate, tone.Freq)
	case WaveSaw:
		osc, err = generators.SawtoothTone(rate, tone.Freq)
	default:
		return nil, fmt.Errorf("unknown wave %d", tone.Wave)
	}
	if err != nil {
		return nil, fmt.Errorf("%g Hz tone: %w", tone.Freq, err)
	}
	return osc, nil
}

// math.Log2(0) is -Inf, so zero volume is handled as silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
