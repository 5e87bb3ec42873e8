// Command tetris-stress plays many boards with random input as fast as
// possible and prints a timing and memory report.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/Valerolactone/Tetris/config"
	"github.com/Valerolactone/Tetris/loop"
	"github.com/Valerolactone/Tetris/session"
	"github.com/Valerolactone/Tetris/tetris"
)

// frameStep is the simulated time of one update.
const frameStep = time.Second / 60

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	boardCount := flag.Int("boards", 100, "The number of boards played side by side.")
	seed := flag.Uint64("seed", 1, "Seed for shapes and bot input.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting tetris stress test...")

	cfg := config.Default()
	cfg.Sound = false
	quiet := log.New(io.Discard, "", 0)

	// 1. Setup sessions, bots and the scheduler
	scheduler := loop.NewScheduler()
	counters := &Counters{}
	log.Printf("Creating %d boards...\n", *boardCount)
	for i := range *boardCount {
		cfg.Seed = *seed + uint64(i)
		s := session.New(cfg, quiet)
		s.Listen(counters.Handle)

		scheduler.Register(&BotSystem{
			Session: s,
			rng:     rand.New(rand.NewPCG(cfg.Seed, uint64(i))),
		})
		for _, system := range s.Systems() {
			scheduler.Register(system)
		}
	}
	log.Println("Boards ready.")

	// 2. Run the simulation loop
	report := &Report{
		Duration:       *duration,
		Boards:         *boardCount,
		Columns:        cfg.Columns,
		Rows:           cfg.Rows,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			scheduler.Once(frameStep)
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.SimulatedTime = time.Duration(totalUpdates) * frameStep
	report.Counters = *counters
	report.Systems = summarize(scheduler.Stats())
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 3. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// Counters totals the events of every board.
type Counters struct {
	Pieces   int64
	Lines    int64
	LevelUps int64
	Games    int64
}

func (c *Counters) Handle(e tetris.Event) {
	switch e.Kind {
	case tetris.EventLock:
		c.Pieces++
	case tetris.EventClear:
		c.Lines += int64(e.Lines)
	case tetris.EventLevelUp:
		c.LevelUps++
	case tetris.EventGameOver:
		c.Games++
	}
}

// BotSystem presses random keys and restarts its board after game over.
type BotSystem struct {
	Session *session.Session
	rng     *rand.Rand
}

func (b *BotSystem) Execute(frame *loop.Frame) {
	if b.Session.State() == tetris.StateGameOver {
		b.Session.RequestRestart()
		return
	}

	b.Session.Input = tetris.Intents{
		Left:     b.rng.IntN(4) == 0,
		Right:    b.rng.IntN(4) == 0,
		Rotate:   b.rng.IntN(6) == 0,
		SoftDrop: b.rng.IntN(2) == 0,
	}
}
