package main

import (
	"context"
	"time"

	"github.com/Valerolactone/Tetris/loop"
	"github.com/Valerolactone/Tetris/session"
	"github.com/Valerolactone/Tetris/tetris"
	"github.com/gdamore/tcell/v2"
)

// holdWindow covers the initial delay of typical keyboard auto-repeat.
const holdWindow = 180 * time.Millisecond

type action int

const (
	actionLeft action = iota
	actionRight
	actionRotate
	actionSoftDrop
	actionCount
)

// holds treats a key as pressed until window has passed since its last
// press event.
type holds struct {
	window time.Duration
	left   [actionCount]time.Duration
}

func newHolds(window time.Duration) *holds {
	return &holds{window: window}
}

func (h *holds) press(a action) {
	h.left[a] = h.window
}

// advance ages every hold by dt. It runs after intents are read so a press
// always lasts at least one frame.
func (h *holds) advance(dt time.Duration) {
	for i := range h.left {
		h.left[i] = max(h.left[i]-dt, 0)
	}
}

func (h *holds) reset() {
	h.left = [actionCount]time.Duration{}
}

func (h *holds) intents() tetris.Intents {
	return tetris.Intents{
		Left:     h.left[actionLeft] > 0,
		Right:    h.left[actionRight] > 0,
		Rotate:   h.left[actionRotate] > 0,
		SoftDrop: h.left[actionSoftDrop] > 0,
	}
}

func keyAction(ev *tcell.EventKey) (action, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return actionLeft, true
	case tcell.KeyRight:
		return actionRight, true
	case tcell.KeyUp:
		return actionRotate, true
	case tcell.KeyDown:
		return actionSoftDrop, true
	}
	return 0, false
}

// pollEvents forwards terminal events until the screen is finalized or ctx
// is cancelled.
func pollEvents(ctx context.Context, screen tcell.Screen, events chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// InputSystem drains pending terminal events and turns them into intents.
type InputSystem struct {
	Session *session.Session
	Events  <-chan tcell.Event
	Quit    func()

	holds *holds
}

func (s *InputSystem) Execute(frame *loop.Frame) {
drain:
	for {
		select {
		case ev := <-s.Events:
			s.handle(ev)
		default:
			break drain
		}
	}

	s.Session.Input = s.holds.intents()
	s.holds.advance(frame.DeltaTime)
}

func (s *InputSystem) handle(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}

	switch {
	case key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC:
		s.Quit()
		return
	case key.Key() == tcell.KeyRune && key.Rune() == 'q':
		s.Quit()
		return
	case key.Key() == tcell.KeyRune && (key.Rune() == 'r' || key.Rune() == 'R'):
		s.Session.RequestRestart()
		s.holds.reset()
		return
	}

	if a, ok := keyAction(key); ok {
		s.holds.press(a)
	}
}
