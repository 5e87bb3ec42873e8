// Package debugui renders Dear ImGui debug panels on top of a running game.
// Panels are queued as deferred commands so they draw after every game
// system of the frame has run.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/Valerolactone/Tetris/loop"
)

// Panel draws one ImGui window.
type Panel interface {
	Render()
}

// PanelFunc adapts a render function to the Panel interface.
type PanelFunc func()

func (f PanelFunc) Render() { f() }

// InputState tracks whether ImGui is consuming mouse or keyboard input.
// Front-ends skip their own key handling while WantCaptureKeyboard is set.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay is the set of panels shown while it is visible.
type Overlay struct {
	Visible bool
	Input   InputState

	panels []Panel
}

func NewOverlay(panels ...Panel) *Overlay {
	return &Overlay{panels: panels}
}

// Add appends a panel; panels render in the order they were added.
func (o *Overlay) Add(p Panel) {
	o.panels = append(o.panels, p)
}

// Toggle flips visibility and returns the new value.
func (o *Overlay) Toggle() bool {
	o.Visible = !o.Visible
	if !o.Visible {
		o.Input = InputState{}
	}
	return o.Visible
}

// Queue defers the render of every panel when the overlay is visible.
func (o *Overlay) Queue(commands *loop.Commands) {
	if !o.Visible {
		return
	}
	for _, p := range o.panels {
		commands.Defer(p.Render)
	}
}

// System updates the overlay's input capture state and queues its panels.
// It must run between the backend's BeginFrame and EndFrame.
type System struct {
	Overlay *Overlay
}

func (s *System) Execute(frame *loop.Frame) {
	if !s.Overlay.Visible {
		return
	}

	io := imgui.CurrentIO()
	s.Overlay.Input = InputState{
		WantCaptureMouse:    io.WantCaptureMouse(),
		WantCaptureKeyboard: io.WantCaptureKeyboard(),
	}
	s.Overlay.Queue(frame.Commands)
}
