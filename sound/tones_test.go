package sound_test

import (
	"testing"
	"time"

	"github.com/Valerolactone/Tetris/sound"
	"github.com/Valerolactone/Tetris/tetris"
	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCue(t *testing.T) {
	tests := []struct {
		event tetris.Event
		notes int
	}{
		{tetris.Event{Kind: tetris.EventSpawn}, 0},
		{tetris.Event{Kind: tetris.EventMove}, 1},
		{tetris.Event{Kind: tetris.EventRotate}, 1},
		{tetris.Event{Kind: tetris.EventLock}, 1},
		{tetris.Event{Kind: tetris.EventClear, Lines: 1}, 1},
		{tetris.Event{Kind: tetris.EventClear, Lines: 3}, 3},
		{tetris.Event{Kind: tetris.EventClear, Lines: 6}, 4},
		{tetris.Event{Kind: tetris.EventLevelUp}, 2},
		{tetris.Event{Kind: tetris.EventGameOver}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.event.Kind.String(), func(t *testing.T) {
			assert.Len(t, sound.Cue(tt.event), tt.notes)
		})
	}
}

func TestClearCueClimbs(t *testing.T) {
	tones := sound.Cue(tetris.Event{Kind: tetris.EventClear, Lines: 4})
	for i := 1; i < len(tones); i++ {
		assert.Greater(t, tones[i].Freq, tones[i-1].Freq)
	}
}

func TestStreamerLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	tones := sound.Cue(tetris.Event{Kind: tetris.EventLevelUp})

	streamer, err := sound.Streamer(rate, 0.5, tones...)
	require.NoError(t, err)

	want := rate.N(90*time.Millisecond) + rate.N(150*time.Millisecond)
	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := streamer.Stream(buf)
		total += n
		for _, s := range buf[:n] {
			assert.InDelta(t, 0, s[0], 1.0)
		}
		if !ok {
			break
		}
	}
	assert.Equal(t, want, total)
	assert.NoError(t, streamer.Err())
}

func TestStreamerSilence(t *testing.T) {
	rate := beep.SampleRate(44100)
	streamer, err := sound.Streamer(rate, 0, sound.Tone{Freq: 440, Duration: 10 * time.Millisecond})
	require.NoError(t, err)

	buf := make([][2]float64, 64)
	n, _ := streamer.Stream(buf)
	require.Positive(t, n)
	for _, s := range buf[:n] {
		assert.Zero(t, s[0])
		assert.Zero(t, s[1])
	}
}

func TestStreamerRejectsBadTones(t *testing.T) {
	rate := beep.SampleRate(44100)

	_, err := sound.Streamer(rate, 1, sound.Tone{Freq: 30000, Duration: time.Millisecond})
	assert.Error(t, err, "above the Nyquist frequency")

	_, err = sound.Streamer(rate, 1, sound.Tone{Freq: 440, Duration: time.Millisecond, Wave: sound.Wave(99)})
	assert.Error(t, err)
}

func TestPlayerWithoutSpeaker(t *testing.T) {
	p := sound.New(0.5)
	assert.NotPanics(t, func() {
		p.Handle(tetris.Event{Kind: tetris.EventClear, Lines: 2})
		p.Close()
	})
}
