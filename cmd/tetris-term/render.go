package main

import (
	"fmt"
	"strings"

	"github.com/Valerolactone/Tetris/loop"
	"github.com/Valerolactone/Tetris/session"
	"github.com/Valerolactone/Tetris/tetris"
	"github.com/gdamore/tcell/v2"
)

// Every board cell is two terminal columns wide so blocks look square.
const cellWidth = 2

var (
	frameStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	alertStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	emptyStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
)

// RenderSystem redraws the whole board every frame.
type RenderSystem struct {
	Screen  tcell.Screen
	Session *session.Session
}

func (s *RenderSystem) Execute(frame *loop.Frame) {
	screen := s.Screen
	view := s.Session.View()

	screen.Clear()
	drawFrame(screen, view.Columns(), view.Rows())

	for row := range view.Rows() {
		for col := range view.Columns() {
			drawText(screen, 1+col*cellWidth, 1+row, emptyStyle, " .")
		}
	}
	for blk := range view.Blocks() {
		if blk.Y < 0 {
			continue
		}
		style := tcell.StyleDefault.Foreground(blockColor(blk.Color)).Background(blockColor(blk.Color))
		drawText(screen, 1+blk.X*cellWidth, 1+blk.Y, style, strings.Repeat(" ", cellWidth))
	}

	panelX := 3 + view.Columns()*cellWidth
	progress := view.Progress()
	drawText(screen, panelX, 1, textStyle, fmt.Sprintf("SCORE %d", progress.Score))
	drawText(screen, panelX, 3, textStyle, fmt.Sprintf("LEVEL %d", progress.Level))
	drawText(screen, panelX, 5, textStyle, fmt.Sprintf("LINES %d", progress.Lines))

	if preview := view.Preview(); len(preview) > 0 {
		names := make([]string, len(preview))
		for i, shape := range preview {
			names[i] = shape.String()
		}
		drawText(screen, panelX, 7, textStyle, "NEXT  "+strings.Join(names, " "))
	}

	if view.State() == tetris.StateGameOver {
		mid := 1 + view.Rows()/2
		drawText(screen, panelX, mid, alertStyle, "GAME OVER")
		drawText(screen, panelX, mid+1, textStyle, "r restarts, q quits")
	}

	screen.Show()
}

func blockColor(c tetris.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func drawFrame(screen tcell.Screen, columns, rows int) {
	right := 1 + columns*cellWidth
	bottom := 1 + rows
	for y := 1; y < bottom; y++ {
		screen.SetContent(0, y, '│', nil, frameStyle)
		screen.SetContent(right, y, '│', nil, frameStyle)
	}
	for x := 1; x < right; x++ {
		screen.SetContent(x, 0, '─', nil, frameStyle)
		screen.SetContent(x, bottom, '─', nil, frameStyle)
	}
	screen.SetContent(0, 0, '┌', nil, frameStyle)
	screen.SetContent(right, 0, '┐', nil, frameStyle)
	screen.SetContent(0, bottom, '└', nil, frameStyle)
	screen.SetContent(right, bottom, '┘', nil, frameStyle)
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
