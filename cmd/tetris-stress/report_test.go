package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/Valerolactone/Tetris/loop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()
	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	empty := Stats{}
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestSummarize(t *testing.T) {
	stats := &loop.Stats{Systems: []loop.SystemStats{
		{Name: "BotSystem", ExecutionCount: 10, TotalDuration: 10 * time.Millisecond, MaxDuration: 2 * time.Millisecond},
		{Name: "TickSystem", ExecutionCount: 10, TotalDuration: 40 * time.Millisecond, MaxDuration: 5 * time.Millisecond},
		{Name: "BotSystem", ExecutionCount: 10, TotalDuration: 20 * time.Millisecond, MaxDuration: 3 * time.Millisecond},
	}}

	summary := summarize(stats)
	require.Len(t, summary, 2)

	assert.Equal(t, SystemSummary{
		Name: "TickSystem", Instances: 1, Executions: 10,
		Total: 40 * time.Millisecond, Max: 5 * time.Millisecond, Avg: 4 * time.Millisecond,
	}, summary[0])
	assert.Equal(t, SystemSummary{
		Name: "BotSystem", Instances: 2, Executions: 20,
		Total: 30 * time.Millisecond, Max: 3 * time.Millisecond, Avg: 1500 * time.Microsecond,
	}, summary[1])
}

func TestReportGenerate(t *testing.T) {
	report := &Report{
		Duration:     time.Second,
		Boards:       2,
		Columns:      10,
		Rows:         20,
		TotalUpdates: 60,
		Counters:     Counters{Pieces: 12, Lines: 3, Games: 1},
		Systems:      []SystemSummary{{Name: "TickSystem", Instances: 2, Executions: 120}},
	}

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "**Boards:** 2 (10x20)")
	assert.Contains(t, out, "**Lines Cleared:** 3")
	assert.Contains(t, out, "| TickSystem | 2 | 120 |")
	assert.NotContains(t, out, "GC Pause Durations")
}
