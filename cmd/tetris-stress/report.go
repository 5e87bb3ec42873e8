package main

import (
	"cmp"
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/Valerolactone/Tetris/loop"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Boards   int
	Columns  int
	Rows     int

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	SimulatedTime  time.Duration
	UpdateTime     Stats
	Counters       Counters
	Systems        []SystemSummary
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// SystemSummary aggregates the scheduler stats of every system sharing a
// name, one entry per system kind.
type SystemSummary struct {
	Name       string
	Instances  int
	Executions int64
	Total      time.Duration
	Max        time.Duration
	Avg        time.Duration
}

func summarize(stats *loop.Stats) []SystemSummary {
	byName := make(map[string]*SystemSummary)
	var order []string

	for _, sys := range stats.Systems {
		sum, ok := byName[sys.Name]
		if !ok {
			sum = &SystemSummary{Name: sys.Name}
			byName[sys.Name] = sum
			order = append(order, sys.Name)
		}
		sum.Instances++
		sum.Executions += sys.ExecutionCount
		sum.Total += sys.TotalDuration
		sum.Max = max(sum.Max, sys.MaxDuration)
	}

	out := make([]SystemSummary, 0, len(order))
	for _, name := range order {
		sum := byName[name]
		if sum.Executions > 0 {
			sum.Avg = sum.Total / time.Duration(sum.Executions)
		}
		out = append(out, *sum)
	}
	slices.SortStableFunc(out, func(a, b SystemSummary) int {
		return cmp.Compare(b.Total, a.Total)
	})
	return out
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tetris Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Boards:** {{.Boards}} ({{.Columns}}x{{.Rows}})

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Simulated Game Time:** {{.SimulatedTime}} per board
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Gameplay
- **Pieces Locked:** {{.Counters.Pieces}}
- **Lines Cleared:** {{.Counters.Lines}}
- **Level Ups:** {{.Counters.LevelUps}}
- **Games Finished:** {{.Counters.Games}}

## Systems
| System | Instances | Executions | Avg | Max | Total |
|---|---|---|---|---|---|
{{range .Systems}}| {{.Name}} | {{.Instances}} | {{.Executions}} | {{.Avg}} | {{.Max}} | {{.Total}} |
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
