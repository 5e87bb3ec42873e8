package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/Valerolactone/Tetris/tetris"
)

const (
	glyphEmpty  = '.'
	glyphLocked = '#'
	glyphActive = '@'
)

// BoardInspector shows the engine state of a board: state machine, timers,
// progression, the upcoming shapes and an ASCII dump of the playfield.
type BoardInspector struct {
	View     func() tetris.View
	Round    func() int
	showGrid bool
}

// NewBoardInspector creates an inspector over view. round may be nil when
// the board is not part of a session.
func NewBoardInspector(view func() tetris.View, round func() int) *BoardInspector {
	return &BoardInspector{View: view, Round: round, showGrid: true}
}

// Summary returns the status lines shown above the grid. An empty line
// marks a separator.
func (bi *BoardInspector) Summary() []string {
	view := bi.View()
	progress := view.Progress()

	var lines []string
	if bi.Round != nil {
		lines = append(lines, fmt.Sprintf("Round: %d", bi.Round()))
	}
	lines = append(lines, fmt.Sprintf("State: %s", view.State()))
	if shape, ok := view.ActiveShape(); ok {
		lines = append(lines, fmt.Sprintf("Active: %s", shape))
	}
	lines = append(lines,
		fmt.Sprintf("Gravity: %s", view.Gravity()),
		fmt.Sprintf("Soft drop: %t", view.SoftDropping()),
		"",
		fmt.Sprintf("Level: %d", progress.Level),
		fmt.Sprintf("Lines: %d", progress.Lines),
		fmt.Sprintf("Score: %d", progress.Score),
		fmt.Sprintf("Locked blocks: %d", view.LockedCount()),
	)

	if preview := view.Preview(); len(preview) > 0 {
		names := make([]string, len(preview))
		for i, s := range preview {
			names[i] = s.String()
		}
		lines = append(lines, "Next: "+strings.Join(names, " "))
	}
	return lines
}

func (bi *BoardInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 520), imgui.CondOnce)

	if !imgui.BeginV("Board Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	for _, line := range bi.Summary() {
		if line == "" {
			imgui.Separator()
			continue
		}
		imgui.Text(line)
	}

	imgui.Separator()
	imgui.Checkbox("Show grid", &bi.showGrid)
	if bi.showGrid {
		for _, row := range Snapshot(bi.View()) {
			imgui.Text(row)
		}
	}

	imgui.End()
}

// Snapshot renders the playfield one string per row: '.' for empty cells,
// '#' for locked blocks and '@' for the active piece. Active blocks above
// the board are not shown.
func Snapshot(view tetris.View) []string {
	cols, rows := view.Columns(), view.Rows()

	cells := make([][]byte, rows)
	for r := range cells {
		cells[r] = []byte(strings.Repeat(string(glyphEmpty), cols))
		for c := range cols {
			if !view.Cell(r, c).IsEmpty() {
				cells[r][c] = glyphLocked
			}
		}
	}

	if active, ok := view.Active(); ok {
		for _, blk := range active {
			if blk.Y >= 0 && blk.Y < rows && blk.X >= 0 && blk.X < cols {
				cells[blk.Y][blk.X] = glyphActive
			}
		}
	}

	out := make([]string, rows)
	for r, row := range cells {
		out[r] = string(row)
	}
	return out
}
