package main

import (
	"fmt"
	"image/color"

	"github.com/Valerolactone/Tetris/config"
	"github.com/Valerolactone/Tetris/tetris"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelWidth   = 200
	previewScale = 0.5
)

var (
	backgroundColor = color.RGBA{24, 24, 28, 255}
	panelColor      = color.RGBA{36, 36, 42, 255}
	gridLineColor   = color.RGBA{60, 60, 66, 255}
	outlineColor    = color.RGBA{0, 0, 0, 255}
	shadeColor      = color.RGBA{0, 0, 0, 160}
)

type layout struct {
	cell          float32
	columns, rows int
	width, height int
}

func newLayout(cfg config.Config) layout {
	return layout{
		cell:    float32(cfg.CellSize),
		columns: cfg.Columns,
		rows:    cfg.Rows,
		width:   cfg.Columns*cfg.CellSize + panelWidth,
		height:  cfg.Rows * cfg.CellSize,
	}
}

func (l layout) boardWidth() float32 {
	return float32(l.columns) * l.cell
}

func rgba(c tetris.Color) color.RGBA {
	return color.RGBA{c.R, c.G, c.B, 255}
}

func drawBoard(screen *ebiten.Image, l layout, view tetris.View) {
	screen.Fill(backgroundColor)

	for col := 1; col < l.columns; col++ {
		x := float32(col) * l.cell
		vector.StrokeLine(screen, x, 0, x, float32(l.rows)*l.cell, 1, gridLineColor, false)
	}
	for row := 1; row < l.rows; row++ {
		y := float32(row) * l.cell
		vector.StrokeLine(screen, 0, y, l.boardWidth(), y, 1, gridLineColor, false)
	}

	for blk := range view.Blocks() {
		if blk.Y < 0 {
			continue
		}
		drawCell(screen, float32(blk.X)*l.cell, float32(blk.Y)*l.cell, l.cell, rgba(blk.Color))
	}

	drawPanel(screen, l, view)

	if view.State() == tetris.StateGameOver {
		vector.DrawFilledRect(screen, 0, 0, l.boardWidth(), float32(l.rows)*l.cell, shadeColor, false)
		ebitenutil.DebugPrintAt(screen, "GAME OVER", int(l.boardWidth()/2)-28, l.height/2-10)
		ebitenutil.DebugPrintAt(screen, "Press R to restart", int(l.boardWidth()/2)-54, l.height/2+10)
	}
}

func drawCell(screen *ebiten.Image, x, y, size float32, c color.Color) {
	vector.DrawFilledRect(screen, x, y, size, size, c, false)
	vector.StrokeRect(screen, x, y, size, size, 1, outlineColor, false)
}

func drawPanel(screen *ebiten.Image, l layout, view tetris.View) {
	left := l.boardWidth()
	vector.DrawFilledRect(screen, left, 0, panelWidth, float32(l.height), panelColor, false)

	progress := view.Progress()
	textX := int(left) + 20
	ebitenutil.DebugPrintAt(screen, "SCORE", textX, 20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", progress.Score), textX, 36)
	ebitenutil.DebugPrintAt(screen, "LEVEL", textX, 64)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", progress.Level), textX, 80)
	ebitenutil.DebugPrintAt(screen, "LINES", textX, 108)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", progress.Lines), textX, 124)

	preview := view.Preview()
	if len(preview) == 0 {
		return
	}

	ebitenutil.DebugPrintAt(screen, "NEXT", textX, 160)
	size := l.cell * previewScale
	top := float32(200)
	for _, shape := range preview {
		def := tetris.Shapes[shape]
		// pivot sits in the second column and the third row of a 4x4 box
		for _, off := range def.Offsets {
			x := left + 20 + float32(off.X+1)*size
			y := top + float32(off.Y+2)*size
			drawCell(screen, x, y, size, rgba(def.Color))
		}
		top += 4*size + 16
	}
}
