package main

import (
	"context"
	"testing"
	"time"

	"github.com/Valerolactone/Tetris/config"
	"github.com/Valerolactone/Tetris/loop"
	"github.com/Valerolactone/Tetris/session"
	"github.com/Valerolactone/Tetris/tetris"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolds(t *testing.T) {
	h := newHolds(100 * time.Millisecond)
	assert.Equal(t, tetris.Intents{}, h.intents())

	h.press(actionSoftDrop)
	h.press(actionLeft)
	assert.Equal(t, tetris.Intents{Left: true, SoftDrop: true}, h.intents())

	h.advance(60 * time.Millisecond)
	h.press(actionSoftDrop) // auto-repeat
	h.advance(60 * time.Millisecond)
	assert.Equal(t, tetris.Intents{SoftDrop: true}, h.intents())

	h.advance(time.Second)
	assert.Equal(t, tetris.Intents{}, h.intents())
}

func TestInputSystem(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 5
	s := session.New(cfg, nil)

	events := make(chan tcell.Event, 10)
	quit := false
	input := &InputSystem{
		Session: s,
		Events:  events,
		Quit:    func() { quit = true },
		holds:   newHolds(holdWindow),
	}

	scheduler := loop.NewScheduler()
	scheduler.Register(input)

	events <- tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)
	events <- tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)
	scheduler.Once(16 * time.Millisecond)
	assert.Equal(t, tetris.Intents{Right: true, SoftDrop: true}, s.Input)

	scheduler.Once(holdWindow)
	scheduler.Once(16 * time.Millisecond)
	assert.Equal(t, tetris.Intents{}, s.Input, "released once the window has passed")

	events <- tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)
	scheduler.Once(16 * time.Millisecond)
	assert.True(t, quit)
}

func TestPollEventsStopsWhenCancelled(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	defer screen.Fini()

	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan tcell.Event)
	done := make(chan struct{})
	go func() {
		pollEvents(ctx, screen, events)
		close(done)
	}()

	screen.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	select {
	case ev := <-events:
		key, ok := ev.(*tcell.EventKey)
		require.True(t, ok)
		assert.Equal(t, tcell.KeyLeft, key.Key())
	case <-time.After(time.Second):
		t.Fatal("event was not forwarded")
	}

	// nobody reads events any more: the pending send must give up
	cancel()
	screen.InjectKey(tcell.KeyRight, 0, tcell.ModNone)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller stayed blocked after cancellation")
	}
}
