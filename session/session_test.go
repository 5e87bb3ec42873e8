package session_test

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/Valerolactone/Tetris/config"
	"github.com/Valerolactone/Tetris/loop"
	"github.com/Valerolactone/Tetris/session"
	"github.com/Valerolactone/Tetris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const step = 200 * time.Millisecond

func smallConfig() config.Config {
	cfg := config.Default()
	cfg.Columns = 4
	cfg.Rows = 4
	cfg.Seed = 42
	return cfg
}

func newSession(t *testing.T, cfg config.Config) (*session.Session, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return session.New(cfg, log.New(&buf, "", 0)), &buf
}

// playUntilOver ticks without input until the stack reaches the top.
func playUntilOver(t *testing.T, s *session.Session) {
	t.Helper()
	for range 1000 {
		if s.Tick(step) == tetris.StateGameOver {
			return
		}
	}
	require.FailNow(t, "game never ended")
}

func TestNew(t *testing.T) {
	s, buf := newSession(t, smallConfig())

	assert.NotEqual(t, [16]byte{}, [16]byte(s.ID))
	assert.Equal(t, uint64(42), s.Seed())
	assert.Equal(t, 1, s.Round())
	assert.Equal(t, tetris.StateFalling, s.State())
	assert.Len(t, s.View().Preview(), 3)
	assert.Contains(t, buf.String(), "["+s.ID.String()[:8]+"] session started: 4x4 board, seed 42")
}

func TestSameSeedSameShapes(t *testing.T) {
	a, _ := newSession(t, smallConfig())
	b, _ := newSession(t, smallConfig())

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.View().Preview(), b.View().Preview())

	shapeA, _ := a.View().ActiveShape()
	shapeB, _ := b.View().ActiveShape()
	assert.Equal(t, shapeA, shapeB)
}

func TestZeroSeedIsRandomized(t *testing.T) {
	cfg := smallConfig()
	cfg.Seed = 0
	s, _ := newSession(t, cfg)
	assert.NotZero(t, s.Seed())
}

func TestListenersSeeEvents(t *testing.T) {
	s, _ := newSession(t, smallConfig())

	var kinds []tetris.EventKind
	s.Listen(func(e tetris.Event) { kinds = append(kinds, e.Kind) })

	playUntilOver(t, s)

	require.NotEmpty(t, kinds)
	assert.Contains(t, kinds, tetris.EventSpawn)
	assert.Contains(t, kinds, tetris.EventLock)
	assert.Equal(t, tetris.EventGameOver, kinds[len(kinds)-1])
}

func TestGameOverIsLogged(t *testing.T) {
	s, buf := newSession(t, smallConfig())
	playUntilOver(t, s)
	assert.Contains(t, buf.String(), "game over in round 1")
	assert.NotContains(t, buf.String(), "spawned", "spawns are only logged when verbose")
}

func TestVerboseLogsSpawns(t *testing.T) {
	cfg := smallConfig()
	cfg.Verbose = true
	_, buf := newSession(t, cfg)
	assert.Contains(t, buf.String(), "spawned ")
}

func TestInputDrivesBoard(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 3
	s, _ := newSession(t, cfg)

	before, ok := s.View().Active()
	require.True(t, ok)

	s.Input = tetris.Intents{Left: true}
	s.Tick(time.Millisecond)

	after, ok := s.View().Active()
	require.True(t, ok)
	assert.Equal(t, before[0].X-1, after[0].X)
}

func TestSystems(t *testing.T) {
	s, _ := newSession(t, smallConfig())

	scheduler := loop.NewScheduler()
	for _, system := range s.Systems() {
		scheduler.Register(system)
	}

	t.Run("restart requests are dropped while playing", func(t *testing.T) {
		s.RequestRestart()
		scheduler.Once(time.Millisecond)
		assert.Equal(t, 1, s.Round())

		for range 1000 {
			if s.State() == tetris.StateGameOver {
				break
			}
			scheduler.Once(step)
		}
		require.Equal(t, tetris.StateGameOver, s.State())
		assert.Equal(t, 1, s.Round(), "the dropped request must not restart the finished game")
	})

	t.Run("restart after game over", func(t *testing.T) {
		s.Input = tetris.Intents{SoftDrop: true}
		s.RequestRestart()
		scheduler.Once(step)

		assert.Equal(t, 2, s.Round())
		assert.Equal(t, tetris.StateFalling, s.State())
		assert.Zero(t, s.View().LockedCount())
		assert.Equal(t, tetris.Progress{Level: 1}, s.View().Progress())
		assert.Equal(t, tetris.Intents{}, s.Input)
	})

	stats := scheduler.Stats()
	assert.Equal(t, "TickSystem", stats.Systems[0].Name)
	assert.Equal(t, "RestartSystem", stats.Systems[1].Name)
}
