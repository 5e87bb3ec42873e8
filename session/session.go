// Package session ties one playable board to its configuration, its input
// and the systems that drive it from a loop.Scheduler.
package session

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/Valerolactone/Tetris/config"
	"github.com/Valerolactone/Tetris/tetris"
	"github.com/google/uuid"
)

// Session is a single game. It is not safe for concurrent use; front-ends
// touch it from their frame loop only.
type Session struct {
	ID uuid.UUID

	// Input holds the intents applied on the next tick. Front-ends
	// overwrite it every frame.
	Input tetris.Intents

	cfg       config.Config
	seed      uint64
	logger    *log.Logger
	board     *tetris.Board
	listeners []func(tetris.Event)
	round     int
	restart   bool
}

// New builds a session from cfg and spawns the first piece. Log lines are
// prefixed with the short session id; a nil logger means log.Default().
func New(cfg config.Config, logger *log.Logger) *Session {
	id := uuid.New()

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	if logger == nil {
		logger = log.Default()
	}
	prefix := fmt.Sprintf("[%s] ", id.String()[:8])

	s := &Session{
		ID:     id,
		cfg:    cfg,
		seed:   seed,
		logger: log.New(logger.Writer(), logger.Prefix()+prefix, logger.Flags()),
		round:  1,
	}

	source := tetris.NewQueue(tetris.NewRandomSource(seed), cfg.Preview)
	s.board = tetris.New(cfg.Board(), source, tetris.Hooks{
		Progress: s.onProgress,
		Event:    s.onEvent,
	})

	s.logger.Printf("session started: %dx%d board, seed %d", cfg.Columns, cfg.Rows, seed)
	return s
}

// Seed returns the seed of the shape sequence.
func (s *Session) Seed() uint64 {
	return s.seed
}

// Round counts restarts, starting at 1.
func (s *Session) Round() int {
	return s.round
}

// Config returns the configuration the session was built from.
func (s *Session) Config() config.Config {
	return s.cfg
}

// View returns a read-only view of the board.
func (s *Session) View() tetris.View {
	return s.board.View()
}

// State returns the board state.
func (s *Session) State() tetris.State {
	return s.board.State()
}

// Listen adds fn to the functions called for every board event, in the
// order they were added.
func (s *Session) Listen(fn func(tetris.Event)) {
	s.listeners = append(s.listeners, fn)
}

// Tick advances the board by elapsed using the current Input.
func (s *Session) Tick(elapsed time.Duration) tetris.State {
	return s.board.Tick(elapsed, s.Input)
}

// RequestRestart asks RestartSystem to start a new round once the current
// one is over. Requests made while the game is running are dropped.
func (s *Session) RequestRestart() {
	s.restart = true
}

// Restart clears the board and starts a new round immediately.
func (s *Session) Restart() {
	s.round++
	s.restart = false
	s.Input = tetris.Intents{}
	s.logger.Printf("round %d started", s.round)
	s.board.Reset()
}

func (s *Session) onProgress(p tetris.Progress) {
	s.logger.Printf("lines=%d score=%d level=%d", p.Lines, p.Score, p.Level)
}

func (s *Session) onEvent(e tetris.Event) {
	switch e.Kind {
	case tetris.EventSpawn:
		if s.cfg.Verbose {
			s.logger.Printf("spawned %s", e.Shape)
		}
	case tetris.EventClear:
		s.logger.Printf("cleared %d rows", e.Lines)
	case tetris.EventLevelUp:
		s.logger.Printf("level %d, gravity %s", e.Progress.Level, s.board.View().Gravity())
	case tetris.EventGameOver:
		s.logger.Printf("game over in round %d: lines=%d score=%d level=%d",
			s.round, e.Progress.Lines, e.Progress.Score, e.Progress.Level)
	}

	for _, fn := range s.listeners {
		fn(e)
	}
}
