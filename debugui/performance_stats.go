package debugui

import (
	"fmt"
	"slices"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/Valerolactone/Tetris/loop"
)

// PerformanceStats plots frame times and lists per-system timings of a
// scheduler.
type PerformanceStats struct {
	Stats func() *loop.Stats

	historyFrames int
	frameHistory  []float32
	frameIndex    int
	frameCount    int
}

func NewPerformanceStats(historyFrames int, stats func() *loop.Stats) *PerformanceStats {
	return &PerformanceStats{
		Stats:         stats,
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Record adds one frame time to the history ring.
func (ps *PerformanceStats) Record(dt time.Duration) {
	ps.frameHistory[ps.frameIndex] = float32(dt.Seconds() * 1000.0)
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
	ps.frameCount = min(ps.frameCount+1, ps.historyFrames)
}

// AverageFrameTime returns the mean of the recorded frame times in
// milliseconds.
func (ps *PerformanceStats) AverageFrameTime() float32 {
	if ps.frameCount == 0 {
		return 0
	}
	var total float32
	for _, ft := range ps.frameHistory {
		total += ft
	}
	return total / float32(ps.frameCount)
}

// History returns the recorded frame times, oldest first.
func (ps *PerformanceStats) History() []float32 {
	if ps.frameCount < ps.historyFrames {
		return slices.Clone(ps.frameHistory[:ps.frameCount])
	}
	out := make([]float32, 0, ps.historyFrames)
	out = append(out, ps.frameHistory[ps.frameIndex:]...)
	return append(out, ps.frameHistory[:ps.frameIndex]...)
}

func (ps *PerformanceStats) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(280, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(380, 320), imgui.CondOnce)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avgFrameTime := ps.AverageFrameTime()
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	if history := ps.History(); len(history) > 0 {
		imgui.Separator()
		imgui.Text("Frame Time Graph (ms)")
		imgui.PlotLinesFloatPtr("##frametime", &history[0], int32(len(history)))
	}

	if ps.Stats == nil {
		imgui.End()
		return
	}

	stats := ps.Stats()
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Frames: %d  Systems: %d", stats.Frames, stats.SystemCount))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSizingFixedFit
	if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Avg (ms)")
		imgui.TableSetupColumn("Max (ms)")
		imgui.TableSetupColumn("Last (ms)")
		imgui.TableHeadersRow()

		for _, sys := range stats.Systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(sys.Name)
			imgui.TableNextColumn()
			imgui.Text(millis(sys.AvgDuration))
			imgui.TableNextColumn()
			imgui.Text(millis(sys.MaxDuration))
			imgui.TableNextColumn()
			imgui.Text(millis(sys.LastDuration))
		}

		imgui.EndTable()
	}

	imgui.End()
}

func millis(d time.Duration) string {
	return fmt.Sprintf("%.3f", float64(d)/float64(time.Millisecond))
}
