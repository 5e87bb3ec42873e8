package main

import (
	"time"

	"github.com/Valerolactone/Tetris/debugui"
	debugui_ebiten "github.com/Valerolactone/Tetris/debugui/ebiten"
	"github.com/Valerolactone/Tetris/loop"
	"github.com/Valerolactone/Tetris/session"
	"github.com/Valerolactone/Tetris/tetris"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game implements ebiten.Game and drives the scheduler once per update.
type Game struct {
	Session      *session.Session
	Scheduler    *loop.Scheduler
	Overlay      *debugui.Overlay
	ImguiBackend *debugui_ebiten.ImguiBackend

	layout     layout
	imguiFrame bool
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.imguiFrame = g.ImguiBackend.BeginOverlay(g.Overlay)
	g.Scheduler.Once(time.Second / time.Duration(ebiten.TPS()))
	if g.imguiFrame {
		g.ImguiBackend.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawBoard(screen, g.layout, g.Session.View())

	if g.imguiFrame {
		g.ImguiBackend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ImguiBackend.Layout(g.layout.width, g.layout.height)
	return g.layout.width, g.layout.height
}

// InputSystem turns the keyboard state into board intents. Keys are ignored
// while the debug overlay has keyboard focus.
type InputSystem struct {
	Session *session.Session
	Overlay *debugui.Overlay
}

func (s *InputSystem) Execute(frame *loop.Frame) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		// Toggled after the frame so the overlay never renders outside an
		// ImGui frame.
		frame.Commands.Defer(func() { s.Overlay.Toggle() })
	}

	if s.Overlay.Input.WantCaptureKeyboard {
		s.Session.Input = tetris.Intents{}
		return
	}

	s.Session.Input = tetris.Intents{
		Left:     ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:    ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Rotate:   ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		SoftDrop: ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Session.RequestRestart()
	}
}
