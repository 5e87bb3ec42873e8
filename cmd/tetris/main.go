// Command tetris opens a window and plays a falling-block game.
//
// Controls: Left/Right move, Up rotates, Down soft-drops, R restarts after
// game over, F1 toggles the debug overlay, Escape quits.
package main

import (
	"io"
	"log"
	"os"

	"github.com/Valerolactone/Tetris/config"
	"github.com/Valerolactone/Tetris/debugui"
	debugui_ebiten "github.com/Valerolactone/Tetris/debugui/ebiten"
	"github.com/Valerolactone/Tetris/loop"
	"github.com/Valerolactone/Tetris/session"
	"github.com/Valerolactone/Tetris/sound"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logFile, err := cfg.OpenLog()
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
		log.SetOutput(io.MultiWriter(os.Stderr, logFile))
	}

	s := session.New(cfg, log.Default())

	if cfg.Sound {
		player := sound.New(cfg.Volume)
		if err := player.Init(); err != nil {
			log.Printf("Sound disabled: %v", err)
		} else {
			defer player.Close()
			s.Listen(player.Handle)
		}
	}

	layout := newLayout(cfg)

	// The ImGui backend sizes the window itself, so it is created before
	// the window options are applied.
	imguiBackend := debugui_ebiten.NewImguiBackend("Tetris", layout.width, layout.height)
	ebiten.SetWindowSize(layout.width, layout.height)
	ebiten.SetWindowTitle("Tetris")

	scheduler := loop.NewScheduler()
	frames := debugui.NewPerformanceStats(120, scheduler.Stats)

	overlay := debugui.NewOverlay(
		debugui.NewBoardInspector(s.View, s.Round),
		frames,
	)
	overlay.Visible = cfg.Debug

	scheduler.Register(&InputSystem{Session: s, Overlay: overlay})
	for _, system := range s.Systems() {
		scheduler.Register(system)
	}
	scheduler.Register(&debugui.System{Overlay: overlay})
	scheduler.Register(loop.SystemFunc(func(frame *loop.Frame) {
		frames.Record(frame.DeltaTime)
	}))

	game := &Game{
		Session:      s,
		Scheduler:    scheduler,
		Overlay:      overlay,
		ImguiBackend: imguiBackend,
		layout:       layout,
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game stopped: %v", err)
	}
}
