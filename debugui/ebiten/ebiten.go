// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/Valerolactone/Tetris/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and sizes the window. ImGui layout is
// not persisted to an imgui.ini file.
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: backend}
}

// BeginOverlay starts an ImGui frame when the overlay is visible and reports
// whether it did. A true result must be paired with EndFrame.
func (b *ImguiBackend) BeginOverlay(overlay *debugui.Overlay) bool {
	if overlay == nil || !overlay.Visible {
		return false
	}
	b.BeginFrame()
	return true
}
