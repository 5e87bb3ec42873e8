// Command tetris-term plays the falling-block game in a terminal.
//
// Controls: Left/Right move, Up rotates, Down soft-drops, r restarts after
// game over, Escape or q quits. Terminals report key presses but no
// releases, so a key counts as held for a short window after each press
// and the keyboard's auto-repeat keeps it held.
package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/Valerolactone/Tetris/config"
	"github.com/Valerolactone/Tetris/loop"
	"github.com/Valerolactone/Tetris/session"
	"github.com/Valerolactone/Tetris/sound"
	"github.com/gdamore/tcell/v2"
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
		log.SetOutput(logFile)
	} else {
		log.SetOutput(io.Discard)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()
	screen.HideCursor()

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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan tcell.Event, 100)
	go pollEvents(ctx, screen, events)

	scheduler := loop.NewScheduler()
	scheduler.Register(&InputSystem{
		Session: s,
		Events:  events,
		Quit:    cancel,
		holds:   newHolds(holdWindow),
	})
	for _, system := range s.Systems() {
		scheduler.Register(system)
	}
	scheduler.Register(&RenderSystem{Screen: screen, Session: s})

	scheduler.Run(ctx, cfg.TickRate)
	log.Printf("Session %s closed", s.ID)
}
