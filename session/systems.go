package session

import (
	"github.com/Valerolactone/Tetris/loop"
	"github.com/Valerolactone/Tetris/tetris"
)

// TickSystem advances the session's board by the frame's delta time.
type TickSystem struct {
	Session *Session
}

func (s *TickSystem) Execute(frame *loop.Frame) {
	s.Session.Tick(frame.DeltaTime)
}

// RestartSystem starts a new round at the end of the frame once the game is
// over and a restart was requested.
type RestartSystem struct {
	Session *Session
}

func (s *RestartSystem) Execute(frame *loop.Frame) {
	session := s.Session
	if !session.restart {
		return
	}
	if session.State() != tetris.StateGameOver {
		session.restart = false
		return
	}
	frame.Commands.Defer(session.Restart)
}

// Systems returns the systems a front-end registers after its own input
// system, in order.
func (s *Session) Systems() []loop.System {
	return []loop.System{
		&TickSystem{Session: s},
		&RestartSystem{Session: s},
	}
}
